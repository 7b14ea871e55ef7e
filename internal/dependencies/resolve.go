package dependencies

import (
	"github.com/synnergy-network/docaudit/internal/docpaths"
	"github.com/synnergy-network/docaudit/internal/inventory"
	"github.com/synnergy-network/docaudit/internal/manifest"
	"github.com/synnergy-network/docaudit/internal/report"
	"github.com/synnergy-network/docaudit/internal/shared"
)

// ResolveDocumentedPathExtractor returns the provided extractor or a pattern-matching default.
func ResolveDocumentedPathExtractor(existing shared.DocumentedPathExtractor, projectPrefix string, excludedRoots []string) (shared.DocumentedPathExtractor, error) {
	if existing != nil {
		return existing, nil
	}
	return docpaths.NewExtractor(projectPrefix, excludedRoots)
}

// ResolveActualFileLister returns the provided lister or a filesystem-walking default.
func ResolveActualFileLister(existing shared.ActualFileLister, repositoryRoot string, skipFileNames []string) shared.ActualFileLister {
	if existing != nil {
		return existing
	}
	return inventory.NewLister(repositoryRoot, skipFileNames)
}

// ResolveDependencyCollector returns the provided collector or a manifest-walking default.
func ResolveDependencyCollector(existing shared.DependencyCollector, repositoryRoot string, goModFileName string, packageJSONFileName string) shared.DependencyCollector {
	if existing != nil {
		return existing
	}
	return manifest.NewCollector(repositoryRoot, goModFileName, packageJSONFileName)
}

// ResolveReportRenderer returns the provided renderer or the markdown/JSON default.
func ResolveReportRenderer(existing shared.ReportRenderer) shared.ReportRenderer {
	if existing != nil {
		return existing
	}
	return report.NewRenderer()
}
