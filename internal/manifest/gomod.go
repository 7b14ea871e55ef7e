package manifest

import (
	"fmt"
	"os"
	"strings"
)

const (
	goModReadErrorTemplateConstant   = "unable to read go.mod manifest: %w"
	requireBlockOpenMarkerConstant   = "require ("
	requireBlockCloseMarkerConstant  = ")"
	requireSingleLineMarkerConstant  = "require "
	requireBlockContinuationConstant = "("
	manifestLineSeparatorConstant    = "\n"
)

// ParseGoModDependencies extracts the declared dependency lines from a go.mod file.
//
// It recognizes a `require (` block closed by `)` as well as single-line
// `require` declarations. Scanning is best-effort: malformed content yields no
// error, only an unreadable file does.
func ParseGoModDependencies(manifestPath string) ([]string, error) {
	manifestContent, readError := os.ReadFile(manifestPath)
	if readError != nil {
		return nil, fmt.Errorf(goModReadErrorTemplateConstant, readError)
	}

	dependencies := []string{}
	insideRequireBlock := false
	for _, rawLine := range strings.Split(string(manifestContent), manifestLineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(rawLine)

		if strings.HasPrefix(trimmedLine, requireBlockOpenMarkerConstant) {
			insideRequireBlock = true
			continue
		}
		if insideRequireBlock && trimmedLine == requireBlockCloseMarkerConstant {
			insideRequireBlock = false
			continue
		}
		if insideRequireBlock && len(trimmedLine) > 0 {
			dependencies = append(dependencies, trimmedLine)
		} else if strings.HasPrefix(trimmedLine, requireSingleLineMarkerConstant) && !strings.HasSuffix(trimmedLine, requireBlockContinuationConstant) {
			dependencies = append(dependencies, strings.SplitN(trimmedLine, requireSingleLineMarkerConstant, 2)[1])
		}
	}

	return dependencies, nil
}
