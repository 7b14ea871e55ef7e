package audit

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/synnergy-network/docaudit/internal/shared"
)

const (
	reportFilePermissionsConstant = 0o644

	markdownWriteErrorTemplateConstant = "unable to write markdown report: %w"
	jsonWriteErrorTemplateConstant     = "unable to write JSON summary: %w"
	reportTrailingNewlineConstant      = "\n"

	extractionCompletedMessageConstant = "documented paths extracted"
	listingCompletedMessageConstant    = "actual files listed"
	collectionCompletedMessageConstant = "manifest dependencies collected"
	auditCompletedMessageConstant      = "inventory audit completed"

	logFieldDocumentedCountConstant   = "documented_count"
	logFieldActualCountConstant       = "actual_count"
	logFieldMissingCountConstant      = "missing_count"
	logFieldUndocumentedCountConstant = "undocumented_count"
	logFieldManifestCountConstant     = "manifest_count"
	logFieldDocumentationPathConstant = "documentation_path"
)

// Service coordinates path extraction, filesystem listing, dependency
// collection, and report rendering for a single audit run.
type Service struct {
	extractor    shared.DocumentedPathExtractor
	lister       shared.ActualFileLister
	collector    shared.DependencyCollector
	renderer     shared.ReportRenderer
	logger       *zap.Logger
	outputWriter io.Writer
}

// NewService constructs a Service from the provided collaborators.
func NewService(extractor shared.DocumentedPathExtractor, lister shared.ActualFileLister, collector shared.DependencyCollector, renderer shared.ReportRenderer, logger *zap.Logger, outputWriter io.Writer) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		extractor:    extractor,
		lister:       lister,
		collector:    collector,
		renderer:     renderer,
		logger:       logger,
		outputWriter: outputWriter,
	}
}

// Run performs the audit and writes the markdown report to the configured
// output writer or file, plus the JSON summary when a summary path is set.
// Any I/O or parse failure aborts the run before output is written.
func (service *Service) Run(options RunOptions) error {
	documentedPaths, extractionError := service.extractor.ExtractDocumentedPaths(options.DocumentationFilePath)
	if extractionError != nil {
		return extractionError
	}
	service.logger.Debug(
		extractionCompletedMessageConstant,
		zap.String(logFieldDocumentationPathConstant, options.DocumentationFilePath),
		zap.Int(logFieldDocumentedCountConstant, len(documentedPaths)),
	)

	actualPaths, listingError := service.lister.ListActualFiles(options.TargetDirectories)
	if listingError != nil {
		return listingError
	}
	service.logger.Debug(
		listingCompletedMessageConstant,
		zap.Int(logFieldActualCountConstant, len(actualPaths)),
	)

	dependenciesByManifest, orderedManifestPaths, collectionError := service.collector.CollectDependencies()
	if collectionError != nil {
		return collectionError
	}
	service.logger.Debug(
		collectionCompletedMessageConstant,
		zap.Int(logFieldManifestCountConstant, len(orderedManifestPaths)),
	)

	auditResult := ComputeAuditResult(documentedPaths, actualPaths, options.Owners)
	auditResult.Dependencies = dependenciesByManifest
	auditResult.ManifestPaths = orderedManifestPaths

	if writeError := service.writeMarkdownReport(auditResult, options); writeError != nil {
		return writeError
	}

	if len(options.JSONSummaryPath) > 0 {
		if writeError := service.writeJSONSummary(auditResult, options.JSONSummaryPath); writeError != nil {
			return writeError
		}
	}

	service.logger.Info(
		auditCompletedMessageConstant,
		zap.Int(logFieldDocumentedCountConstant, len(auditResult.DocumentedPaths)),
		zap.Int(logFieldActualCountConstant, len(auditResult.ActualPaths)),
		zap.Int(logFieldMissingCountConstant, len(auditResult.MissingPaths)),
		zap.Int(logFieldUndocumentedCountConstant, len(auditResult.UndocumentedPaths)),
	)

	return nil
}

func (service *Service) writeMarkdownReport(auditResult shared.AuditResult, options RunOptions) error {
	markdownReport := service.renderer.RenderMarkdown(auditResult, options.Owners) + reportTrailingNewlineConstant

	if len(options.MarkdownOutputPath) > 0 {
		if writeError := os.WriteFile(options.MarkdownOutputPath, []byte(markdownReport), reportFilePermissionsConstant); writeError != nil {
			return fmt.Errorf(markdownWriteErrorTemplateConstant, writeError)
		}
		return nil
	}

	if _, writeError := io.WriteString(service.outputWriter, markdownReport); writeError != nil {
		return fmt.Errorf(markdownWriteErrorTemplateConstant, writeError)
	}
	return nil
}

func (service *Service) writeJSONSummary(auditResult shared.AuditResult, summaryPath string) error {
	summaryDocument, renderError := service.renderer.RenderJSONSummary(auditResult)
	if renderError != nil {
		return renderError
	}

	if writeError := os.WriteFile(summaryPath, summaryDocument, reportFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(jsonWriteErrorTemplateConstant, writeError)
	}
	return nil
}
