package audit

import (
	"sort"

	"github.com/synnergy-network/docaudit/internal/shared"
)

// ComputeAuditResult derives the missing and undocumented path lists plus the
// per-directory counts from the documented and actual path sets. Both diff
// lists are sorted for deterministic output; counts only cover directory
// segments present in the owner map, while the diff lists keep every path.
func ComputeAuditResult(documentedPaths map[string]struct{}, actualPaths map[string]struct{}, owners shared.OwnerMap) shared.AuditResult {
	return shared.AuditResult{
		DocumentedPaths:   documentedPaths,
		ActualPaths:       actualPaths,
		MissingPaths:      sortedSetDifference(documentedPaths, actualPaths),
		UndocumentedPaths: sortedSetDifference(actualPaths, documentedPaths),
		DocumentedCounts:  countByDirectorySegment(documentedPaths, owners),
		ActualCounts:      countByDirectorySegment(actualPaths, owners),
	}
}

// sortedSetDifference returns the members of first absent from second, sorted.
func sortedSetDifference(first map[string]struct{}, second map[string]struct{}) []string {
	difference := []string{}
	for member := range first {
		if _, presentInSecond := second[member]; presentInSecond {
			continue
		}
		difference = append(difference, member)
	}
	sort.Strings(difference)
	return difference
}

func countByDirectorySegment(paths map[string]struct{}, owners shared.OwnerMap) map[string]int {
	counts := make(map[string]int, len(owners))
	for path := range paths {
		directorySegment, segmentFound := shared.DirectorySegment(path)
		if !segmentFound {
			continue
		}
		if _, segmentOwned := owners[directorySegment]; !segmentOwned {
			continue
		}
		counts[directorySegment]++
	}
	return counts
}
