package audit

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/synnergy-network/docaudit/internal/dependencies"
	"github.com/synnergy-network/docaudit/internal/shared"
)

const (
	commandNameConstant             = "audit"
	commandShortDescriptionConstant = "Audit documented file references against the repository tree"
	commandLongDescriptionConstant  = "audit scans the documentation file for referenced paths, compares them with the files present under the configured target directories, and reports missing and undocumented files together with manifest dependencies."

	flagOutputNameConstant        = "output"
	flagOutputShorthandConstant   = "o"
	flagOutputDescriptionConstant = "Write the markdown report to the given file instead of standard output."
	flagJSONNameConstant          = "json"
	flagJSONDescriptionConstant   = "Additionally write the JSON summary to the given file."
	flagRootNameConstant          = "root"
	flagRootDescriptionConstant   = "Override the configured repository root."
	flagDocsNameConstant          = "docs"
	flagDocsDescriptionConstant   = "Override the configured documentation file path."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted audit configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the audit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Extractor             shared.DocumentedPathExtractor
	Lister                shared.ActualFileLister
	Collector             shared.DependencyCollector
	Renderer              shared.ReportRenderer
}

// Build constructs the cobra command for inventory audit runs.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().StringP(flagOutputNameConstant, flagOutputShorthandConstant, "", flagOutputDescriptionConstant)
	command.Flags().String(flagJSONNameConstant, "", flagJSONDescriptionConstant)
	command.Flags().String(flagRootNameConstant, "", flagRootDescriptionConstant)
	command.Flags().String(flagDocsNameConstant, "", flagDocsDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration().sanitize()

	if rootOverride, _ := command.Flags().GetString(flagRootNameConstant); len(rootOverride) > 0 {
		configuration.RepositoryRoot = rootOverride
	}
	if docsOverride, _ := command.Flags().GetString(flagDocsNameConstant); len(docsOverride) > 0 {
		configuration.DocumentationFile = docsOverride
	}

	outputPath, _ := command.Flags().GetString(flagOutputNameConstant)
	jsonSummaryPath, _ := command.Flags().GetString(flagJSONNameConstant)

	owners, ownersError := configuration.ResolveOwners()
	if ownersError != nil {
		return ownersError
	}

	extractor, extractorError := dependencies.ResolveDocumentedPathExtractor(builder.Extractor, configuration.ProjectPrefix, configuration.TargetDirectories)
	if extractorError != nil {
		return extractorError
	}

	lister := dependencies.ResolveActualFileLister(builder.Lister, configuration.RepositoryRoot, configuration.SkipFileNames)
	collector := dependencies.ResolveDependencyCollector(builder.Collector, configuration.RepositoryRoot, configuration.GoModFileName, configuration.PackageJSONFileName)
	renderer := dependencies.ResolveReportRenderer(builder.Renderer)

	service := NewService(extractor, lister, collector, renderer, builder.resolveLogger(), command.OutOrStdout())

	runOptions := RunOptions{
		DocumentationFilePath: resolveDocumentationPath(configuration.RepositoryRoot, configuration.DocumentationFile),
		TargetDirectories:     configuration.TargetDirectories,
		Owners:                owners,
		MarkdownOutputPath:    outputPath,
		JSONSummaryPath:       jsonSummaryPath,
	}

	return service.Run(runOptions)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func resolveDocumentationPath(repositoryRoot string, documentationFile string) string {
	if filepath.IsAbs(documentationFile) {
		return documentationFile
	}
	return filepath.Join(repositoryRoot, filepath.FromSlash(documentationFile))
}
