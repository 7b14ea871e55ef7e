package manifest_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synnergy-network/docaudit/internal/manifest"
)

const packageJSONFixtureFileName = "package.json"

func TestParsePackageJSONDependencies(testFramework *testing.T) {
	testCases := []struct {
		name            string
		manifestContent string
		expectedEntries []string
	}{
		{
			name:            "listsDependenciesBeforeDevDependencies",
			manifestContent: `{"devDependencies": {"y": "2.0"}, "dependencies": {"x": "1.0"}}`,
			expectedEntries: []string{"x 1.0", "y 2.0"},
		},
		{
			name:            "preservesInsertionOrderWithinSection",
			manifestContent: `{"dependencies": {"zulu": "3.0", "alpha": "1.0", "mike": "2.0"}}`,
			expectedEntries: []string{"zulu 3.0", "alpha 1.0", "mike 2.0"},
		},
		{
			name:            "ignoresUnrelatedSections",
			manifestContent: `{"name": "demo", "scripts": {"build": "tsc"}, "dependencies": {"x": "1.0"}, "engines": {"node": ">=18"}}`,
			expectedEntries: []string{"x 1.0"},
		},
		{
			name:            "emptyManifestYieldsNoEntries",
			manifestContent: `{}`,
			expectedEntries: []string{},
		},
	}

	for _, testCase := range testCases {
		testFramework.Run(testCase.name, func(testFramework *testing.T) {
			manifestPath := writeManifestFixture(testFramework, packageJSONFixtureFileName, testCase.manifestContent)

			parsedEntries, parseError := manifest.ParsePackageJSONDependencies(manifestPath)
			require.NoError(testFramework, parseError)
			require.Equal(testFramework, testCase.expectedEntries, parsedEntries)
		})
	}
}

func TestParsePackageJSONDependenciesSurfacesParseFailure(testFramework *testing.T) {
	manifestPath := writeManifestFixture(testFramework, packageJSONFixtureFileName, `{"dependencies": `)

	_, parseError := manifest.ParsePackageJSONDependencies(manifestPath)
	require.Error(testFramework, parseError)
}

func TestParsePackageJSONDependenciesSurfacesReadFailure(testFramework *testing.T) {
	_, parseError := manifest.ParsePackageJSONDependencies(filepath.Join(testFramework.TempDir(), packageJSONFixtureFileName))
	require.Error(testFramework, parseError)
}
