package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synnergy-network/docaudit/internal/report"
	"github.com/synnergy-network/docaudit/internal/shared"
)

var reportTestOwners = shared.OwnerMap{
	"core": "Core Team",
	"GUI":  "GUI Team",
	"cmd":  "CLI Team",
}

func sampleAuditResult() shared.AuditResult {
	return shared.AuditResult{
		DocumentedPaths: map[string]struct{}{
			"synnergy-network/core/a.go": {},
			"synnergy-network/core/b.go": {},
		},
		ActualPaths: map[string]struct{}{
			"synnergy-network/core/a.go": {},
			"synnergy-network/GUI/x.js":  {},
		},
		MissingPaths:      []string{"synnergy-network/core/b.go"},
		UndocumentedPaths: []string{"synnergy-network/GUI/x.js"},
		DocumentedCounts:  map[string]int{"core": 2},
		ActualCounts:      map[string]int{"core": 1, "GUI": 1},
		Dependencies: map[string][]string{
			"synnergy-network/go.mod": {"github.com/spf13/cobra v1.10.1"},
			"GUI/wallet/package.json": {"react 18.2.0"},
		},
		ManifestPaths: []string{"synnergy-network/go.mod", "GUI/wallet/package.json"},
	}
}

func sampleEmptyAuditResult() shared.AuditResult {
	return shared.AuditResult{}
}

func TestRenderMarkdownLayout(testFramework *testing.T) {
	renderedReport := report.NewRenderer().RenderMarkdown(sampleAuditResult(), reportTestOwners)

	expectedLines := []string{
		"# Stage 1 Inventory Audit Report",
		"",
		"Documented files: 2",
		"Actual files: 2",
		"",
		"## Directory Counts",
		"| Directory | Owner | Documented | Actual |",
		"| --- | --- | --- | --- |",
		"| GUI | GUI Team | 0 | 1 |",
		"| cmd | CLI Team | 0 | 0 |",
		"| core | Core Team | 2 | 1 |",
		"",
		"## Missing Files (1)",
		"| File | Owner | Priority |",
		"| --- | --- | --- |",
		"| synnergy-network/core/b.go | Core Team | High |",
		"",
		"## Undocumented Files (1)",
		"| File | Owner | Priority |",
		"| --- | --- | --- |",
		"| synnergy-network/GUI/x.js | GUI Team | Review |",
		"",
		"## Dependencies",
		"### synnergy-network/go.mod",
		"- github.com/spf13/cobra v1.10.1",
		"",
		"### GUI/wallet/package.json",
		"- react 18.2.0",
		"",
	}

	require.Equal(testFramework, strings.Join(expectedLines, "\n"), renderedReport)
}

func TestRenderMarkdownEmptyDiffsUseNoneMarkers(testFramework *testing.T) {
	auditResult := shared.AuditResult{
		DocumentedPaths:   map[string]struct{}{"synnergy-network/core/a.go": {}},
		ActualPaths:       map[string]struct{}{"synnergy-network/core/a.go": {}},
		MissingPaths:      []string{},
		UndocumentedPaths: []string{},
		DocumentedCounts:  map[string]int{"core": 1},
		ActualCounts:      map[string]int{"core": 1},
	}

	renderedReport := report.NewRenderer().RenderMarkdown(auditResult, reportTestOwners)

	require.Contains(testFramework, renderedReport, "## Missing Files (0)\n(none)\n")
	require.Contains(testFramework, renderedReport, "## Undocumented Files (0)\n(none)\n")
	require.NotContains(testFramework, renderedReport, "| File | Owner | Priority |")
}

func TestRenderMarkdownUnassignedOwnerFallback(testFramework *testing.T) {
	auditResult := shared.AuditResult{
		DocumentedPaths:  map[string]struct{}{"synnergy-network/walletserver/api.go": {}},
		ActualPaths:      map[string]struct{}{},
		MissingPaths:     []string{"synnergy-network/walletserver/api.go"},
		DocumentedCounts: map[string]int{},
		ActualCounts:     map[string]int{},
	}

	renderedReport := report.NewRenderer().RenderMarkdown(auditResult, reportTestOwners)

	require.Contains(testFramework, renderedReport, "| synnergy-network/walletserver/api.go | Unassigned | High |")
}
