package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "text", config.Format)
	assert.Equal(t, ". ", config.Indent)
	assert.Equal(t, 1000, config.MaxDepth)
	assert.Contains(t, config.Extensions, ".wz")
	assert.NoError(t, config.Validate())
}

func TestLoadConfigYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ".winzigc.yaml")
	configContent := `format: json
jobs: 3
exclude:
  - generated
output_dir: trees
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "json", config.Format)
	assert.Equal(t, 3, config.Jobs)
	assert.Equal(t, []string{"generated"}, config.Exclude)
	assert.Equal(t, "trees", config.OutputDir)
	// Keys missing from the file keep their defaults
	assert.Equal(t, ". ", config.Indent)
	assert.Equal(t, 1000, config.MaxDepth)
}

func TestLoadConfigTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ".winzigc.toml")
	configContent := `format = "yaml"
indent = "| "
max_depth = 50
extensions = [".wz"]
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "| ", config.Indent)
	assert.Equal(t, 50, config.MaxDepth)
	assert.Equal(t, []string{".wz"}, config.Extensions)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ".winzigc.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("format: json\njobs: 2\n"), 0644))

	t.Setenv("WINZIGC_FORMAT", "yaml")
	t.Setenv("WINZIGC_JOBS", "8")
	t.Setenv("WINZIGC_LOG_LEVEL", "debug")

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, 8, config.Jobs)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	tempDir := t.TempDir()

	_, err := LoadConfig(filepath.Join(tempDir, "missing.yaml"))
	assert.Error(t, err)

	badFormat := filepath.Join(tempDir, "bad.yaml")
	require.NoError(t, os.WriteFile(badFormat, []byte("format: xml\n"), 0644))
	_, err = LoadConfig(badFormat)
	assert.ErrorContains(t, err, "unknown format")

	badYAML := filepath.Join(tempDir, "broken.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("jobs: [1\n"), 0644))
	_, err = LoadConfig(badYAML)
	assert.ErrorContains(t, err, "failed to parse config")

	t.Setenv("WINZIGC_JOBS", "many")
	_, err = LoadConfig("")
	assert.ErrorContains(t, err, "WINZIGC_JOBS")
}

func TestFindConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	assert.Equal(t, "", findConfigFile(tempDir))

	tomlPath := filepath.Join(tempDir, ".winzigc.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(""), 0644))
	assert.Equal(t, tomlPath, findConfigFile(tempDir))

	yamlPath := filepath.Join(tempDir, ".winzigc.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(""), 0644))
	assert.Equal(t, yamlPath, findConfigFile(tempDir), "yaml wins over toml")
}

func TestWriteConfigRoundTrip(t *testing.T) {
	tempDir := t.TempDir()

	for _, name := range []string{".winzigc.yaml", ".winzigc.toml"} {
		path := filepath.Join(tempDir, name)
		config := DefaultConfig()
		config.Jobs = 4
		config.OutputDir = "out"

		require.NoError(t, writeConfig(path, config), name)

		loaded, err := LoadConfig(path)
		require.NoError(t, err, name)
		assert.Equal(t, config, loaded, name)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("WINZIGC_TEST_VALUE", "set")

	assert.Equal(t, "set", getEnvOrDefault("WINZIGC_TEST_VALUE", "default"))
	assert.Equal(t, "default", getEnvOrDefault("WINZIGC_TEST_UNSET", "default"))

	n, err := getEnvIntOrDefault("WINZIGC_TEST_UNSET", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
