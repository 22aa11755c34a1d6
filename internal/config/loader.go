// Package config loads the optional gcssh configuration file. A missing file
// is not an error: everything has a built-in default.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"gcssh/internal/errors"
)

const (
	// ConfigDir is the directory under ~/.config holding the config file.
	ConfigDir = "gcssh"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.yaml"
)

// DefaultPath returns ~/.config/gcssh/config.yaml, or "" if the home
// directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", ConfigDir, ConfigFileName)
}

// Load reads the config file at path. When path is "" the default location
// is used; a missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig,
			"Couldn't read config file: "+path,
			"Check the file is valid YAML, or delete it to use defaults.")
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig,
			"Config file has unexpected structure: "+path,
			"Run 'gcssh init --force' to regenerate it.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would break rendering.
func (c *Config) Validate() error {
	if c.Gcloud.Binary == "" {
		return errors.New(errors.ErrConfig,
			"gcloud.binary must not be empty",
			"Remove the setting to use the default 'gcloud'.")
	}
	if c.Layout.FrameWidth < 20 {
		return errors.New(errors.ErrConfig,
			"layout.frame_width must be at least 20",
			"The default is 80.")
	}
	if c.Animations.ProgressSteps < 1 {
		return errors.New(errors.ErrConfig,
			"animations.progress_steps must be at least 1",
			"The default is 20.")
	}
	return nil
}

// Save writes the config as YAML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfig,
			"Couldn't serialize config", "")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, errors.ErrIO,
			"Couldn't create config directory: "+filepath.Dir(path),
			"Check permissions on your home directory.")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrIO,
			"Couldn't write config file: "+path,
			"Check permissions and free disk space.")
	}
	return nil
}
