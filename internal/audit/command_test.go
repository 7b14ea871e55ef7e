package audit_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synnergy-network/docaudit/internal/audit"
)

func TestCommandBuilderBuildsAuditCommand(testFramework *testing.T) {
	builder := audit.CommandBuilder{}

	command, buildError := builder.Build()
	require.NoError(testFramework, buildError)

	require.Equal(testFramework, "audit", command.Use)
	require.NotNil(testFramework, command.Flags().Lookup("output"))
	require.NotNil(testFramework, command.Flags().Lookup("json"))
	require.NotNil(testFramework, command.Flags().Lookup("root"))
	require.NotNil(testFramework, command.Flags().Lookup("docs"))
}

func TestCommandRunsAuditAgainstRepositoryFixture(testFramework *testing.T) {
	repositoryRoot := testFramework.TempDir()
	fixtureFiles := map[string]string{
		"AGENTS.md":                       "synnergy-network/core/ledger.go\n",
		"synnergy-network/core/ledger.go": "package core\n",
		"synnergy-network/cmd/main.go":    "package main\n",
	}
	for relativePath, fileContent := range fixtureFiles {
		absolutePath := filepath.Join(repositoryRoot, filepath.FromSlash(relativePath))
		require.NoError(testFramework, os.MkdirAll(filepath.Dir(absolutePath), serviceFixtureDirectoryPermissions))
		require.NoError(testFramework, os.WriteFile(absolutePath, []byte(fileContent), serviceFixtureFilePermissions))
	}

	builder := audit.CommandBuilder{
		ConfigurationProvider: func() audit.CommandConfiguration {
			configuration := audit.DefaultCommandConfiguration()
			configuration.RepositoryRoot = repositoryRoot
			return configuration
		},
	}

	command, buildError := builder.Build()
	require.NoError(testFramework, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(outputBuffer)
	command.SetArgs([]string{})

	require.NoError(testFramework, command.Execute())

	renderedReport := outputBuffer.String()
	require.Contains(testFramework, renderedReport, "# Stage 1 Inventory Audit Report")
	require.Contains(testFramework, renderedReport, "## Missing Files (0)")
	require.Contains(testFramework, renderedReport, "| synnergy-network/cmd/main.go | CLI Team | Review |")
}

func TestCommandWritesMarkdownToRequestedFile(testFramework *testing.T) {
	repositoryRoot := testFramework.TempDir()
	documentationPath := filepath.Join(repositoryRoot, "AGENTS.md")
	require.NoError(testFramework, os.WriteFile(documentationPath, []byte("no references here\n"), serviceFixtureFilePermissions))

	reportPath := filepath.Join(testFramework.TempDir(), "report.md")

	builder := audit.CommandBuilder{
		ConfigurationProvider: func() audit.CommandConfiguration {
			configuration := audit.DefaultCommandConfiguration()
			configuration.RepositoryRoot = repositoryRoot
			return configuration
		},
	}

	command, buildError := builder.Build()
	require.NoError(testFramework, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(outputBuffer)
	command.SetArgs([]string{"--output", reportPath})

	require.NoError(testFramework, command.Execute())
	require.Empty(testFramework, outputBuffer.String())

	reportContent, readError := os.ReadFile(reportPath)
	require.NoError(testFramework, readError)
	require.Contains(testFramework, string(reportContent), "Documented files: 0")
}

func TestCommandSurfacesMissingDocumentationFile(testFramework *testing.T) {
	builder := audit.CommandBuilder{
		ConfigurationProvider: func() audit.CommandConfiguration {
			configuration := audit.DefaultCommandConfiguration()
			configuration.RepositoryRoot = testFramework.TempDir()
			return configuration
		},
	}

	command, buildError := builder.Build()
	require.NoError(testFramework, buildError)

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{})

	require.Error(testFramework, command.Execute())
}
