package audit

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/synnergy-network/docaudit/internal/shared"
)

const (
	defaultRepositoryRootConstant      = "."
	defaultDocumentationFileConstant   = "AGENTS.md"
	defaultProjectPrefixConstant       = "synnergy-network"
	defaultGoModFileNameConstant       = "go.mod"
	defaultPackageJSONFileNameConstant = "package.json"
	defaultSkipFileNameConstant        = ".DS_Store"

	coreDirectorySegmentConstant = "core"
	guiDirectorySegmentConstant  = "GUI"
	cliDirectorySegmentConstant  = "cmd"
	coreOwningTeamNameConstant   = "Core Team"
	guiOwningTeamNameConstant    = "GUI Team"
	cliOwningTeamNameConstant    = "CLI Team"

	configurationRepositoryRootKeyConstant    = "repository_root"
	configurationDocumentationFileKeyConstant = "documentation_file"
	configurationProjectPrefixKeyConstant     = "project_prefix"
	configurationTargetDirectoriesKeyConstant = "target_directories"
	configurationSkipFileNamesKeyConstant     = "skip_file_names"
	configurationGoModFileNameKeyConstant     = "go_mod_file_name"
	configurationPackageJSONKeyConstant       = "package_json_file_name"
	configurationOwnersFileKeyConstant        = "owners_file"

	configurationKeySeparatorConstant = "."

	ownersFileReadErrorTemplateConstant  = "unable to read owners file: %w"
	ownersFileParseErrorTemplateConstant = "unable to parse owners file: %w"
)

// OwnerAssignment pairs a top-level directory segment with its owning team.
type OwnerAssignment struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Team      string `mapstructure:"team" yaml:"team"`
}

// CommandConfiguration captures persistent settings for the audit command.
type CommandConfiguration struct {
	RepositoryRoot      string            `mapstructure:"repository_root"`
	DocumentationFile   string            `mapstructure:"documentation_file"`
	ProjectPrefix       string            `mapstructure:"project_prefix"`
	TargetDirectories   []string          `mapstructure:"target_directories"`
	Owners              []OwnerAssignment `mapstructure:"owners"`
	OwnersFile          string            `mapstructure:"owners_file"`
	SkipFileNames       []string          `mapstructure:"skip_file_names"`
	GoModFileName       string            `mapstructure:"go_mod_file_name"`
	PackageJSONFileName string            `mapstructure:"package_json_file_name"`
}

// DefaultCommandConfiguration returns the baseline synnergy-network audit configuration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		RepositoryRoot:    defaultRepositoryRootConstant,
		DocumentationFile: defaultDocumentationFileConstant,
		ProjectPrefix:     defaultProjectPrefixConstant,
		TargetDirectories: []string{
			defaultProjectPrefixConstant + "/" + coreDirectorySegmentConstant,
			defaultProjectPrefixConstant + "/" + guiDirectorySegmentConstant,
			defaultProjectPrefixConstant + "/" + cliDirectorySegmentConstant,
		},
		Owners: []OwnerAssignment{
			{Directory: coreDirectorySegmentConstant, Team: coreOwningTeamNameConstant},
			{Directory: guiDirectorySegmentConstant, Team: guiOwningTeamNameConstant},
			{Directory: cliDirectorySegmentConstant, Team: cliOwningTeamNameConstant},
		},
		SkipFileNames:       []string{defaultSkipFileNameConstant},
		GoModFileName:       defaultGoModFileNameConstant,
		PackageJSONFileName: defaultPackageJSONFileNameConstant,
	}
}

// DefaultConfigurationValues produces Viper defaults for the audit command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationRepositoryRootKeyConstant:    defaults.RepositoryRoot,
		rootKey + configurationKeySeparatorConstant + configurationDocumentationFileKeyConstant: defaults.DocumentationFile,
		rootKey + configurationKeySeparatorConstant + configurationProjectPrefixKeyConstant:     defaults.ProjectPrefix,
		rootKey + configurationKeySeparatorConstant + configurationTargetDirectoriesKeyConstant: defaults.TargetDirectories,
		rootKey + configurationKeySeparatorConstant + configurationSkipFileNamesKeyConstant:     defaults.SkipFileNames,
		rootKey + configurationKeySeparatorConstant + configurationGoModFileNameKeyConstant:     defaults.GoModFileName,
		rootKey + configurationKeySeparatorConstant + configurationPackageJSONKeyConstant:       defaults.PackageJSONFileName,
		rootKey + configurationKeySeparatorConstant + configurationOwnersFileKeyConstant:        defaults.OwnersFile,
	}
}

// sanitize trims configuration values and restores defaults for unset fields.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration

	sanitized.RepositoryRoot = fallbackValue(configuration.RepositoryRoot, defaults.RepositoryRoot)
	sanitized.DocumentationFile = fallbackValue(configuration.DocumentationFile, defaults.DocumentationFile)
	sanitized.ProjectPrefix = fallbackValue(configuration.ProjectPrefix, defaults.ProjectPrefix)
	sanitized.GoModFileName = fallbackValue(configuration.GoModFileName, defaults.GoModFileName)
	sanitized.PackageJSONFileName = fallbackValue(configuration.PackageJSONFileName, defaults.PackageJSONFileName)
	sanitized.OwnersFile = strings.TrimSpace(configuration.OwnersFile)

	sanitized.TargetDirectories = trimEntries(configuration.TargetDirectories)
	if len(sanitized.TargetDirectories) == 0 {
		sanitized.TargetDirectories = append([]string{}, defaults.TargetDirectories...)
	}

	sanitized.SkipFileNames = trimEntries(configuration.SkipFileNames)
	if len(sanitized.SkipFileNames) == 0 {
		sanitized.SkipFileNames = append([]string{}, defaults.SkipFileNames...)
	}

	sanitized.Owners = trimOwnerAssignments(configuration.Owners)
	if len(sanitized.Owners) == 0 {
		sanitized.Owners = append([]OwnerAssignment{}, defaults.Owners...)
	}

	return sanitized
}

// ResolveOwners builds the owner map from the configured assignments, merging
// entries from the optional owners file over the built-in assignments.
func (configuration CommandConfiguration) ResolveOwners() (shared.OwnerMap, error) {
	owners := make(shared.OwnerMap, len(configuration.Owners))
	for _, ownerAssignment := range configuration.Owners {
		owners[ownerAssignment.Directory] = ownerAssignment.Team
	}

	if len(configuration.OwnersFile) == 0 {
		return owners, nil
	}

	ownersFileContent, readError := os.ReadFile(configuration.OwnersFile)
	if readError != nil {
		return nil, fmt.Errorf(ownersFileReadErrorTemplateConstant, readError)
	}

	ownerOverrides := map[string]string{}
	if unmarshalError := yaml.Unmarshal(ownersFileContent, &ownerOverrides); unmarshalError != nil {
		return nil, fmt.Errorf(ownersFileParseErrorTemplateConstant, unmarshalError)
	}

	for directorySegment, owningTeam := range ownerOverrides {
		trimmedSegment := strings.TrimSpace(directorySegment)
		trimmedTeam := strings.TrimSpace(owningTeam)
		if len(trimmedSegment) == 0 || len(trimmedTeam) == 0 {
			continue
		}
		owners[trimmedSegment] = trimmedTeam
	}

	return owners, nil
}

func fallbackValue(raw string, defaultValue string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 0 {
		return defaultValue
	}
	return trimmed
}

func trimEntries(raw []string) []string {
	trimmedEntries := make([]string, 0, len(raw))
	for _, candidate := range raw {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 {
			continue
		}
		trimmedEntries = append(trimmedEntries, trimmed)
	}
	return trimmedEntries
}

func trimOwnerAssignments(raw []OwnerAssignment) []OwnerAssignment {
	trimmedAssignments := make([]OwnerAssignment, 0, len(raw))
	for _, candidate := range raw {
		trimmedDirectory := strings.TrimSpace(candidate.Directory)
		trimmedTeam := strings.TrimSpace(candidate.Team)
		if len(trimmedDirectory) == 0 || len(trimmedTeam) == 0 {
			continue
		}
		trimmedAssignments = append(trimmedAssignments, OwnerAssignment{Directory: trimmedDirectory, Team: trimmedTeam})
	}
	return trimmedAssignments
}
