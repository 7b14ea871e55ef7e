package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synnergy-network/docaudit/internal/inventory"
)

const (
	fixtureDirectoryPermissions = 0o755
	fixtureFilePermissions      = 0o644
	fixtureFileContentConstant  = "content"
	metadataFileNameConstant    = ".DS_Store"
)

func writeFixtureFile(testFramework *testing.T, repositoryRoot string, relativePath string) {
	testFramework.Helper()

	absolutePath := filepath.Join(repositoryRoot, filepath.FromSlash(relativePath))
	require.NoError(testFramework, os.MkdirAll(filepath.Dir(absolutePath), fixtureDirectoryPermissions))
	require.NoError(testFramework, os.WriteFile(absolutePath, []byte(fixtureFileContentConstant), fixtureFilePermissions))
}

func TestListerEnumeratesRegularFiles(testFramework *testing.T) {
	repositoryRoot := testFramework.TempDir()
	writeFixtureFile(testFramework, repositoryRoot, "synnergy-network/core/ledger.go")
	writeFixtureFile(testFramework, repositoryRoot, "synnergy-network/core/sub/keys.go")
	writeFixtureFile(testFramework, repositoryRoot, "synnergy-network/GUI/app.js")
	writeFixtureFile(testFramework, repositoryRoot, "synnergy-network/GUI/"+metadataFileNameConstant)
	writeFixtureFile(testFramework, repositoryRoot, "unrelated/readme.txt")

	lister := inventory.NewLister(repositoryRoot, []string{metadataFileNameConstant})
	actualPaths, listingError := lister.ListActualFiles([]string{"synnergy-network/core", "synnergy-network/GUI"})
	require.NoError(testFramework, listingError)

	require.Equal(testFramework, map[string]struct{}{
		"synnergy-network/core/ledger.go":   {},
		"synnergy-network/core/sub/keys.go": {},
		"synnergy-network/GUI/app.js":       {},
	}, actualPaths)
}

func TestListerSkipsMissingTargetDirectories(testFramework *testing.T) {
	repositoryRoot := testFramework.TempDir()
	writeFixtureFile(testFramework, repositoryRoot, "synnergy-network/cmd/main.go")

	lister := inventory.NewLister(repositoryRoot, []string{metadataFileNameConstant})
	actualPaths, listingError := lister.ListActualFiles([]string{"synnergy-network/cmd", "synnergy-network/absent"})
	require.NoError(testFramework, listingError)

	require.Equal(testFramework, map[string]struct{}{
		"synnergy-network/cmd/main.go": {},
	}, actualPaths)
}

func TestListerReturnsEmptySetWithoutTargets(testFramework *testing.T) {
	lister := inventory.NewLister(testFramework.TempDir(), nil)
	actualPaths, listingError := lister.ListActualFiles(nil)
	require.NoError(testFramework, listingError)
	require.Empty(testFramework, actualPaths)
}
