package docpaths

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

const (
	pathPatternTemplateConstant             = `%s/[\w./-]+`
	documentationReadErrorTemplateConstant  = "unable to read documentation file: %w"
	projectPrefixRequiredMessageConstant    = "project prefix must be provided"
	pathPatternCompileErrorTemplateConstant = "unable to compile path pattern: %w"
)

// Extractor locates documented repository paths inside documentation text.
type Extractor struct {
	pathPattern   *regexp.Regexp
	excludedRoots map[string]struct{}
}

// NewExtractor builds an extractor for the given project prefix.
// Matches equal to one of the excluded bare directory roots are dropped.
func NewExtractor(projectPrefix string, excludedRoots []string) (*Extractor, error) {
	trimmedPrefix := strings.TrimSpace(projectPrefix)
	if len(trimmedPrefix) == 0 {
		return nil, errors.New(projectPrefixRequiredMessageConstant)
	}

	pathPattern, compileError := regexp.Compile(fmt.Sprintf(pathPatternTemplateConstant, regexp.QuoteMeta(trimmedPrefix)))
	if compileError != nil {
		return nil, fmt.Errorf(pathPatternCompileErrorTemplateConstant, compileError)
	}

	excludedRootSet := make(map[string]struct{}, len(excludedRoots))
	for _, excludedRoot := range excludedRoots {
		trimmedRoot := strings.TrimSpace(excludedRoot)
		if len(trimmedRoot) == 0 {
			continue
		}
		excludedRootSet[trimmedRoot] = struct{}{}
	}

	return &Extractor{pathPattern: pathPattern, excludedRoots: excludedRootSet}, nil
}

// ExtractDocumentedPaths returns the unique documented paths referenced by the documentation file.
// Matching is case-sensitive and performs no path normalization.
func (extractor *Extractor) ExtractDocumentedPaths(documentationFilePath string) (map[string]struct{}, error) {
	documentationContent, readError := os.ReadFile(documentationFilePath)
	if readError != nil {
		return nil, fmt.Errorf(documentationReadErrorTemplateConstant, readError)
	}

	documentedPaths := make(map[string]struct{})
	for _, matchedPath := range extractor.pathPattern.FindAllString(string(documentationContent), -1) {
		if _, isExcluded := extractor.excludedRoots[matchedPath]; isExcluded {
			continue
		}
		documentedPaths[matchedPath] = struct{}{}
	}

	return documentedPaths, nil
}
