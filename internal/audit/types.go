package audit

import "github.com/synnergy-network/docaudit/internal/shared"

// RunOptions captures the resolved parameters for a single audit run.
type RunOptions struct {
	DocumentationFilePath string
	TargetDirectories     []string
	Owners                shared.OwnerMap
	MarkdownOutputPath    string
	JSONSummaryPath       string
}
