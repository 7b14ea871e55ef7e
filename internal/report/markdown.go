package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/synnergy-network/docaudit/internal/shared"
)

const (
	reportTitleConstant                 = "# Stage 1 Inventory Audit Report"
	documentedTotalTemplateConstant     = "Documented files: %d"
	actualTotalTemplateConstant         = "Actual files: %d"
	directoryCountsHeadingConstant      = "## Directory Counts"
	directoryCountsTableHeaderConstant  = "| Directory | Owner | Documented | Actual |"
	directoryCountsTableDividerConstant = "| --- | --- | --- | --- |"
	directoryCountsRowTemplateConstant  = "| %s | %s | %d | %d |"
	missingFilesHeadingTemplateConstant = "## Missing Files (%d)"
	extraFilesHeadingTemplateConstant   = "## Undocumented Files (%d)"
	fileTableHeaderConstant             = "| File | Owner | Priority |"
	fileTableDividerConstant            = "| --- | --- | --- |"
	fileTableRowTemplateConstant        = "| %s | %s | %s |"
	missingFilePriorityLabelConstant    = "High"
	extraFilePriorityLabelConstant      = "Review"
	emptyTableMarkerConstant            = "(none)"
	dependenciesHeadingConstant         = "## Dependencies"
	manifestSubsectionTemplateConstant  = "### %s"
	dependencyEntryLineTemplateConstant = "- %s"
	reportLineSeparatorConstant         = "\n"
)

// Renderer produces the markdown and JSON forms of an audit result.
type Renderer struct{}

// NewRenderer constructs a report renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderMarkdown renders the fixed-structure markdown audit report.
func (renderer *Renderer) RenderMarkdown(result shared.AuditResult, owners shared.OwnerMap) string {
	reportLines := []string{reportTitleConstant, ""}
	reportLines = append(reportLines, fmt.Sprintf(documentedTotalTemplateConstant, len(result.DocumentedPaths)))
	reportLines = append(reportLines, fmt.Sprintf(actualTotalTemplateConstant, len(result.ActualPaths)))
	reportLines = append(reportLines, "")

	reportLines = append(reportLines, renderer.directoryCountLines(result, owners)...)
	reportLines = append(reportLines, renderer.fileTableLines(missingFilesHeadingTemplateConstant, result.MissingPaths, owners, missingFilePriorityLabelConstant)...)
	reportLines = append(reportLines, renderer.fileTableLines(extraFilesHeadingTemplateConstant, result.UndocumentedPaths, owners, extraFilePriorityLabelConstant)...)
	reportLines = append(reportLines, renderer.dependencyLines(result)...)

	return strings.Join(reportLines, reportLineSeparatorConstant)
}

func (renderer *Renderer) directoryCountLines(result shared.AuditResult, owners shared.OwnerMap) []string {
	countLines := []string{directoryCountsHeadingConstant}

	if len(owners) == 0 {
		countLines = append(countLines, emptyTableMarkerConstant, "")
		return countLines
	}

	directorySegments := make([]string, 0, len(owners))
	for directorySegment := range owners {
		directorySegments = append(directorySegments, directorySegment)
	}
	sort.Strings(directorySegments)

	countLines = append(countLines, directoryCountsTableHeaderConstant, directoryCountsTableDividerConstant)
	for _, directorySegment := range directorySegments {
		countLines = append(countLines, fmt.Sprintf(
			directoryCountsRowTemplateConstant,
			directorySegment,
			owners[directorySegment],
			result.DocumentedCounts[directorySegment],
			result.ActualCounts[directorySegment],
		))
	}
	countLines = append(countLines, "")

	return countLines
}

func (renderer *Renderer) fileTableLines(headingTemplate string, filePaths []string, owners shared.OwnerMap, priorityLabel string) []string {
	tableLines := []string{fmt.Sprintf(headingTemplate, len(filePaths))}

	if len(filePaths) == 0 {
		tableLines = append(tableLines, emptyTableMarkerConstant, "")
		return tableLines
	}

	tableLines = append(tableLines, fileTableHeaderConstant, fileTableDividerConstant)
	for _, filePath := range filePaths {
		tableLines = append(tableLines, fmt.Sprintf(fileTableRowTemplateConstant, filePath, owners.OwnerForPath(filePath), priorityLabel))
	}
	tableLines = append(tableLines, "")

	return tableLines
}

func (renderer *Renderer) dependencyLines(result shared.AuditResult) []string {
	dependencyLines := []string{dependenciesHeadingConstant}

	for _, manifestPath := range result.ManifestPaths {
		dependencyLines = append(dependencyLines, fmt.Sprintf(manifestSubsectionTemplateConstant, manifestPath))
		for _, dependencyEntry := range result.Dependencies[manifestPath] {
			dependencyLines = append(dependencyLines, fmt.Sprintf(dependencyEntryLineTemplateConstant, dependencyEntry))
		}
		dependencyLines = append(dependencyLines, "")
	}

	return dependencyLines
}
