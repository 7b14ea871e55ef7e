package report

import (
	"encoding/json"
	"fmt"

	"github.com/synnergy-network/docaudit/internal/shared"
)

const jsonSummaryMarshalErrorTemplateConstant = "unable to encode JSON summary: %w"

// Summary is the machine-readable counterpart of the markdown report.
type Summary struct {
	DocumentedTotal   int                 `json:"documented_total"`
	ActualTotal       int                 `json:"actual_total"`
	DocumentedCounts  map[string]int      `json:"documented_counts"`
	ActualCounts      map[string]int      `json:"actual_counts"`
	MissingFiles      []string            `json:"missing_files"`
	UndocumentedFiles []string            `json:"undocumented_files"`
	Dependencies      map[string][]string `json:"dependencies"`
}

// NewSummary assembles a Summary from an audit result with stable, non-nil fields.
func NewSummary(result shared.AuditResult) Summary {
	return Summary{
		DocumentedTotal:   len(result.DocumentedPaths),
		ActualTotal:       len(result.ActualPaths),
		DocumentedCounts:  copyCountMap(result.DocumentedCounts),
		ActualCounts:      copyCountMap(result.ActualCounts),
		MissingFiles:      copyPathSlice(result.MissingPaths),
		UndocumentedFiles: copyPathSlice(result.UndocumentedPaths),
		Dependencies:      copyDependencyMap(result.Dependencies),
	}
}

// RenderJSONSummary encodes the audit result as an indented JSON document.
func (renderer *Renderer) RenderJSONSummary(result shared.AuditResult) ([]byte, error) {
	summaryDocument, marshalError := json.MarshalIndent(NewSummary(result), "", "  ")
	if marshalError != nil {
		return nil, fmt.Errorf(jsonSummaryMarshalErrorTemplateConstant, marshalError)
	}
	return summaryDocument, nil
}

func copyCountMap(counts map[string]int) map[string]int {
	duplicated := make(map[string]int, len(counts))
	for countKey, countValue := range counts {
		duplicated[countKey] = countValue
	}
	return duplicated
}

func copyPathSlice(paths []string) []string {
	duplicated := make([]string, len(paths))
	copy(duplicated, paths)
	return duplicated
}

func copyDependencyMap(dependencies map[string][]string) map[string][]string {
	duplicated := make(map[string][]string, len(dependencies))
	for manifestPath, dependencyEntries := range dependencies {
		duplicated[manifestPath] = copyPathSlice(dependencyEntries)
	}
	return duplicated
}
