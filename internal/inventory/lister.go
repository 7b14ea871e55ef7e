package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	targetDirectoryStatErrorTemplateConstant = "unable to inspect target directory %s: %w"
	targetDirectoryWalkErrorTemplateConstant = "unable to walk target directory %s: %w"
	relativePathErrorTemplateConstant        = "unable to relativize path %s: %w"
)

// Lister enumerates the regular files present beneath configured target directories.
type Lister struct {
	repositoryRoot string
	skipFileNames  map[string]struct{}
}

// NewLister constructs a lister rooted at the repository root.
// Files whose base name appears in skipFileNames are excluded from listings.
func NewLister(repositoryRoot string, skipFileNames []string) *Lister {
	skipSet := make(map[string]struct{}, len(skipFileNames))
	for _, skipFileName := range skipFileNames {
		trimmedName := strings.TrimSpace(skipFileName)
		if len(trimmedName) == 0 {
			continue
		}
		skipSet[trimmedName] = struct{}{}
	}

	return &Lister{repositoryRoot: repositoryRoot, skipFileNames: skipSet}
}

// ListActualFiles walks every existing target directory and returns the set of
// repository-relative slash-separated file paths. Target directories that do
// not exist are skipped silently; traversal failures propagate to the caller.
func (lister *Lister) ListActualFiles(targetDirectories []string) (map[string]struct{}, error) {
	actualPaths := make(map[string]struct{})

	for _, targetDirectory := range targetDirectories {
		targetDirectoryPath := filepath.Join(lister.repositoryRoot, filepath.FromSlash(targetDirectory))

		if _, statError := os.Stat(targetDirectoryPath); statError != nil {
			if errors.Is(statError, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf(targetDirectoryStatErrorTemplateConstant, targetDirectory, statError)
		}

		walkError := filepath.WalkDir(targetDirectoryPath, func(visitedPath string, directoryEntry fs.DirEntry, visitError error) error {
			if visitError != nil {
				return visitError
			}
			if !directoryEntry.Type().IsRegular() {
				return nil
			}
			if _, isSkipped := lister.skipFileNames[directoryEntry.Name()]; isSkipped {
				return nil
			}

			relativePath, relativeError := filepath.Rel(lister.repositoryRoot, visitedPath)
			if relativeError != nil {
				return fmt.Errorf(relativePathErrorTemplateConstant, visitedPath, relativeError)
			}

			actualPaths[filepath.ToSlash(relativePath)] = struct{}{}
			return nil
		})
		if walkError != nil {
			return nil, fmt.Errorf(targetDirectoryWalkErrorTemplateConstant, targetDirectory, walkError)
		}
	}

	return actualPaths, nil
}
