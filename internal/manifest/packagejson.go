package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

const (
	packageJSONReadErrorTemplateConstant  = "unable to read package.json manifest: %w"
	packageJSONParseErrorTemplateConstant = "unable to parse package.json manifest: %w"
	dependenciesSectionNameConstant       = "dependencies"
	devDependenciesSectionNameConstant    = "devDependencies"
	dependencyEntryTemplateConstant       = "%s %v"
)

// ParsePackageJSONDependencies extracts declared dependencies from a package.json file.
//
// Entries are emitted as "name version" strings preserving the manifest's
// insertion order within each section, with the dependencies section listed
// before devDependencies. Malformed JSON surfaces as a parse error.
func ParsePackageJSONDependencies(manifestPath string) ([]string, error) {
	manifestContent, readError := os.ReadFile(manifestPath)
	if readError != nil {
		return nil, fmt.Errorf(packageJSONReadErrorTemplateConstant, readError)
	}

	sections, parseError := parseDependencySections(manifestContent)
	if parseError != nil {
		return nil, fmt.Errorf(packageJSONParseErrorTemplateConstant, parseError)
	}

	dependencies := []string{}
	dependencies = append(dependencies, sections[dependenciesSectionNameConstant]...)
	dependencies = append(dependencies, sections[devDependenciesSectionNameConstant]...)
	return dependencies, nil
}

// parseDependencySections walks the JSON token stream so that entry order
// inside each dependency section is preserved, which encoding/json map
// decoding would discard.
func parseDependencySections(manifestContent []byte) (map[string][]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(manifestContent))

	if consumeError := consumeObjectOpen(decoder); consumeError != nil {
		return nil, consumeError
	}

	sections := make(map[string][]string)
	for decoder.More() {
		keyToken, keyError := decoder.Token()
		if keyError != nil {
			return nil, keyError
		}
		sectionName, keyIsString := keyToken.(string)
		if !keyIsString {
			return nil, fmt.Errorf("unexpected token %v", keyToken)
		}

		switch sectionName {
		case dependenciesSectionNameConstant, devDependenciesSectionNameConstant:
			sectionEntries, sectionError := decodeDependencySection(decoder)
			if sectionError != nil {
				return nil, sectionError
			}
			sections[sectionName] = sectionEntries
		default:
			if skipError := skipValue(decoder); skipError != nil {
				return nil, skipError
			}
		}
	}

	if _, closeError := decoder.Token(); closeError != nil {
		return nil, closeError
	}

	return sections, nil
}

func consumeObjectOpen(decoder *json.Decoder) error {
	openToken, tokenError := decoder.Token()
	if tokenError != nil {
		return tokenError
	}
	openDelimiter, isDelimiter := openToken.(json.Delim)
	if !isDelimiter || openDelimiter != json.Delim('{') {
		return fmt.Errorf("expected object, found %v", openToken)
	}
	return nil
}

func decodeDependencySection(decoder *json.Decoder) ([]string, error) {
	if consumeError := consumeObjectOpen(decoder); consumeError != nil {
		return nil, consumeError
	}

	entries := []string{}
	for decoder.More() {
		nameToken, nameError := decoder.Token()
		if nameError != nil {
			return nil, nameError
		}
		dependencyName, nameIsString := nameToken.(string)
		if !nameIsString {
			return nil, fmt.Errorf("unexpected token %v", nameToken)
		}

		versionToken, versionError := decoder.Token()
		if versionError != nil {
			return nil, versionError
		}

		// Composite version values are unusual but must not desync the stream.
		if versionDelimiter, versionIsDelimiter := versionToken.(json.Delim); versionIsDelimiter {
			if versionDelimiter == json.Delim('{') || versionDelimiter == json.Delim('[') {
				for decoder.More() {
					if skipError := skipValue(decoder); skipError != nil {
						return nil, skipError
					}
				}
				if _, closeError := decoder.Token(); closeError != nil {
					return nil, closeError
				}
			}
		}

		entries = append(entries, fmt.Sprintf(dependencyEntryTemplateConstant, dependencyName, versionToken))
	}

	if _, closeError := decoder.Token(); closeError != nil {
		return nil, closeError
	}

	return entries, nil
}

func skipValue(decoder *json.Decoder) error {
	valueToken, tokenError := decoder.Token()
	if tokenError != nil {
		return tokenError
	}

	valueDelimiter, isDelimiter := valueToken.(json.Delim)
	if !isDelimiter {
		return nil
	}

	if valueDelimiter == json.Delim('{') || valueDelimiter == json.Delim('[') {
		for decoder.More() {
			if skipError := skipValue(decoder); skipError != nil {
				return skipError
			}
		}
		if _, closeError := decoder.Token(); closeError != nil {
			return closeError
		}
	}

	return nil
}
