package cli_test

import (
	"bytes"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/synnergy-network/docaudit/cmd/cli"
	"github.com/synnergy-network/docaudit/internal/audit"
)

const (
	embeddedConfigurationTypeConstant = "yaml"
	mapstructureTagNameConstant       = "mapstructure"
)

func decodeEmbeddedConfiguration(testFramework *testing.T, target any) {
	testFramework.Helper()

	viperInstance := viper.New()
	viperInstance.SetConfigType(embeddedConfigurationTypeConstant)
	require.NoError(testFramework, viperInstance.ReadConfig(bytes.NewReader(cli.EmbeddedDefaultConfiguration())))

	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: mapstructureTagNameConstant, Result: target})
	require.NoError(testFramework, decoderError)
	require.NoError(testFramework, decoder.Decode(viperInstance.AllSettings()))
}

func TestEmbeddedDefaultConfigurationDecodes(testFramework *testing.T) {
	var applicationConfiguration cli.ApplicationConfiguration
	decodeEmbeddedConfiguration(testFramework, &applicationConfiguration)

	require.Equal(testFramework, "info", applicationConfiguration.Common.LogLevel)
	require.Equal(testFramework, "structured", applicationConfiguration.Common.LogFormat)

	require.Equal(testFramework, ".", applicationConfiguration.Audit.RepositoryRoot)
	require.Equal(testFramework, "AGENTS.md", applicationConfiguration.Audit.DocumentationFile)
	require.Equal(testFramework, "synnergy-network", applicationConfiguration.Audit.ProjectPrefix)
	require.Equal(testFramework, []string{
		"synnergy-network/core",
		"synnergy-network/GUI",
		"synnergy-network/cmd",
	}, applicationConfiguration.Audit.TargetDirectories)
}

func TestEmbeddedDefaultConfigurationPreservesOwnerCase(testFramework *testing.T) {
	var applicationConfiguration cli.ApplicationConfiguration
	decodeEmbeddedConfiguration(testFramework, &applicationConfiguration)

	require.Equal(testFramework, []audit.OwnerAssignment{
		{Directory: "core", Team: "Core Team"},
		{Directory: "GUI", Team: "GUI Team"},
		{Directory: "cmd", Team: "CLI Team"},
	}, applicationConfiguration.Audit.Owners)
}

func TestEmbeddedDefaultConfigurationMatchesPackageDefaults(testFramework *testing.T) {
	var applicationConfiguration cli.ApplicationConfiguration
	decodeEmbeddedConfiguration(testFramework, &applicationConfiguration)

	packageDefaults := audit.DefaultCommandConfiguration()
	require.Equal(testFramework, packageDefaults.TargetDirectories, applicationConfiguration.Audit.TargetDirectories)
	require.Equal(testFramework, packageDefaults.Owners, applicationConfiguration.Audit.Owners)
	require.Equal(testFramework, packageDefaults.SkipFileNames, applicationConfiguration.Audit.SkipFileNames)
	require.Equal(testFramework, packageDefaults.GoModFileName, applicationConfiguration.Audit.GoModFileName)
	require.Equal(testFramework, packageDefaults.PackageJSONFileName, applicationConfiguration.Audit.PackageJSONFileName)
}
