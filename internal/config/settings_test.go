package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	// t.Setenv also restores the previous value on cleanup.
	t.Setenv("ANACONF_ATOMER_OUTPUTS_DIR", "")
	t.Setenv("ANACONF_BASE_CONFIG_DIR", "")
	t.Setenv("ANACONF_RESULT_CONFIG_DIR", "")
}

func TestLoad_ReadsYAMLSettings(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "atomer_outputs_dir: /data/atomer\nbase_config_dir: /data/base\nresult_config_dir: /data/out\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/atomer", settings.AtomerOutputsDir)
	assert.Equal(t, "/data/base", settings.BaseConfigDir)
	assert.Equal(t, "/data/out", settings.ResultConfigDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANACONF_RESULT_CONFIG_DIR", "/env/out")

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("result_config_dir: /file/out\n"), 0o640))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/out", settings.ResultConfigDir)
}

func TestLoad_MissingExplicitFileIsError(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_MissingDefaultFileIsNotError(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Settings{}, settings)
}

func TestLoad_MalformedYAMLIsError(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml"), 0o640))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("ANACONF_ATOMER_OUTPUTS_DIR", "/env/atomer")

	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/env/atomer", settings.AtomerOutputsDir)
	assert.Empty(t, settings.BaseConfigDir)
}
