package manifest

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

const (
	manifestWalkErrorTemplateConstant         = "unable to walk repository root %s: %w"
	manifestRelativePathErrorTemplateConstant = "unable to relativize manifest path %s: %w"
)

// Collector discovers manifest files beneath a repository root and parses their dependencies.
type Collector struct {
	repositoryRoot      string
	goModFileName       string
	packageJSONFileName string
}

// NewCollector constructs a collector searching for the given manifest file names.
func NewCollector(repositoryRoot string, goModFileName string, packageJSONFileName string) *Collector {
	return &Collector{
		repositoryRoot:      repositoryRoot,
		goModFileName:       goModFileName,
		packageJSONFileName: packageJSONFileName,
	}
}

// CollectDependencies parses every discovered manifest and returns the
// dependency lists keyed by repository-relative manifest path, together with
// the ordered manifest paths for deterministic rendering. Go manifests are
// listed before Node manifests, each group in lexical traversal order.
func (collector *Collector) CollectDependencies() (map[string][]string, []string, error) {
	goModPaths, packageJSONPaths, discoveryError := collector.discoverManifestPaths()
	if discoveryError != nil {
		return nil, nil, discoveryError
	}

	dependenciesByManifest := make(map[string][]string, len(goModPaths)+len(packageJSONPaths))
	orderedManifestPaths := make([]string, 0, len(goModPaths)+len(packageJSONPaths))

	for _, manifestPath := range goModPaths {
		manifestDependencies, parseError := ParseGoModDependencies(filepath.Join(collector.repositoryRoot, filepath.FromSlash(manifestPath)))
		if parseError != nil {
			return nil, nil, parseError
		}
		dependenciesByManifest[manifestPath] = manifestDependencies
		orderedManifestPaths = append(orderedManifestPaths, manifestPath)
	}

	for _, manifestPath := range packageJSONPaths {
		manifestDependencies, parseError := ParsePackageJSONDependencies(filepath.Join(collector.repositoryRoot, filepath.FromSlash(manifestPath)))
		if parseError != nil {
			return nil, nil, parseError
		}
		dependenciesByManifest[manifestPath] = manifestDependencies
		orderedManifestPaths = append(orderedManifestPaths, manifestPath)
	}

	return dependenciesByManifest, orderedManifestPaths, nil
}

func (collector *Collector) discoverManifestPaths() ([]string, []string, error) {
	var goModPaths []string
	var packageJSONPaths []string

	walkError := filepath.WalkDir(collector.repositoryRoot, func(visitedPath string, directoryEntry fs.DirEntry, visitError error) error {
		if visitError != nil {
			return visitError
		}
		if !directoryEntry.Type().IsRegular() {
			return nil
		}

		entryName := directoryEntry.Name()
		if entryName != collector.goModFileName && entryName != collector.packageJSONFileName {
			return nil
		}

		relativePath, relativeError := filepath.Rel(collector.repositoryRoot, visitedPath)
		if relativeError != nil {
			return fmt.Errorf(manifestRelativePathErrorTemplateConstant, visitedPath, relativeError)
		}

		if entryName == collector.goModFileName {
			goModPaths = append(goModPaths, filepath.ToSlash(relativePath))
		} else {
			packageJSONPaths = append(packageJSONPaths, filepath.ToSlash(relativePath))
		}
		return nil
	})
	if walkError != nil {
		return nil, nil, fmt.Errorf(manifestWalkErrorTemplateConstant, collector.repositoryRoot, walkError)
	}

	return goModPaths, packageJSONPaths, nil
}
