// Package config loads anaconf settings from YAML files and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no settings file
// is given explicitly.
const DefaultFile = ".anaconf.yaml"

// Settings is the immutable record of run defaults. CLI arguments override
// environment variables, which override file values.
type Settings struct {
	AtomerOutputsDir string `yaml:"atomer_outputs_dir"`
	BaseConfigDir    string `yaml:"base_config_dir"`
	ResultConfigDir  string `yaml:"result_config_dir"`
}

// Load reads the settings file at path (the default file when path is
// empty), then applies ANACONF_* environment overrides. A missing default
// file is not an error; a missing explicit file is.
func Load(path string) (Settings, error) {
	// .env is optional.
	_ = godotenv.Load()

	var settings Settings

	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)

	switch {
	case err != nil && (explicit || !os.IsNotExist(err)):
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	case err == nil:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}

	applyEnv(&settings)

	return settings, nil
}

func applyEnv(settings *Settings) {
	if v := os.Getenv("ANACONF_ATOMER_OUTPUTS_DIR"); v != "" {
		settings.AtomerOutputsDir = v
	}

	if v := os.Getenv("ANACONF_BASE_CONFIG_DIR"); v != "" {
		settings.BaseConfigDir = v
	}

	if v := os.Getenv("ANACONF_RESULT_CONFIG_DIR"); v != "" {
		settings.ResultConfigDir = v
	}
}
