package shared

import "strings"

const (
	// UnassignedOwnerNameConstant is reported for paths whose directory segment has no owning team.
	UnassignedOwnerNameConstant = "Unassigned"

	pathSegmentSeparatorConstant = "/"
	directorySegmentIndex        = 1
)

// OwnerMap associates top-level directory segments with their owning team names.
type OwnerMap map[string]string

// OwnerForPath resolves the owning team for a repository-relative path.
// Paths without a recognized directory segment resolve to the unassigned owner.
func (owners OwnerMap) OwnerForPath(path string) string {
	directorySegment, segmentFound := DirectorySegment(path)
	if !segmentFound {
		return UnassignedOwnerNameConstant
	}

	ownerName, ownerKnown := owners[directorySegment]
	if !ownerKnown {
		return UnassignedOwnerNameConstant
	}
	return ownerName
}

// DirectorySegment extracts the second slash-separated segment of a repository-relative path.
func DirectorySegment(path string) (string, bool) {
	segments := strings.Split(path, pathSegmentSeparatorConstant)
	if len(segments) <= directorySegmentIndex {
		return "", false
	}
	return segments[directorySegmentIndex], true
}

// AuditResult aggregates the outcome of a single inventory audit run.
type AuditResult struct {
	DocumentedPaths   map[string]struct{}
	ActualPaths       map[string]struct{}
	MissingPaths      []string
	UndocumentedPaths []string
	DocumentedCounts  map[string]int
	ActualCounts      map[string]int
	Dependencies      map[string][]string
	ManifestPaths     []string
}

// DocumentedPathExtractor scans documentation text for referenced repository paths.
type DocumentedPathExtractor interface {
	ExtractDocumentedPaths(documentationFilePath string) (map[string]struct{}, error)
}

// ActualFileLister enumerates real files beneath the configured target directories.
type ActualFileLister interface {
	ListActualFiles(targetDirectories []string) (map[string]struct{}, error)
}

// DependencyCollector gathers declared dependencies from manifest files under the repository root.
type DependencyCollector interface {
	CollectDependencies() (map[string][]string, []string, error)
}

// ReportRenderer produces the human-readable and machine-readable audit reports.
type ReportRenderer interface {
	RenderMarkdown(result AuditResult, owners OwnerMap) string
	RenderJSONSummary(result AuditResult) ([]byte, error)
}
