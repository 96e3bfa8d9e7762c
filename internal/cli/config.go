package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration file.
type Config struct {
	// Database is the path to the store database.
	Database string `yaml:"db"`

	// Format is the default output format (json|text).
	Format string `yaml:"format"`
}

// defaultDatabase is used when neither flags, env, nor config name one.
const defaultDatabase = "primal.db"

// loadConfig reads a YAML config file. A missing file is not an error;
// it simply yields the zero config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfigPath locates the per-user config file.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "primal", "config.yaml")
}

// resolve fills unset options from the environment and the config file.
// Precedence: flag > environment > config file > built-in default.
// formatSet reports whether --format was given explicitly.
func (o *RootOptions) resolve(formatSet bool) error {
	if o.Config == "" {
		o.Config = os.Getenv("PRIMAL_CONFIG")
	}
	if o.Config == "" {
		o.Config = defaultConfigPath()
	}

	var cfg Config
	if o.Config != "" {
		var err error
		cfg, err = loadConfig(o.Config)
		if err != nil {
			return err
		}
	}

	if o.Database == "" {
		o.Database = os.Getenv("PRIMAL_DB")
	}
	if o.Database == "" {
		o.Database = cfg.Database
	}
	if o.Database == "" {
		o.Database = defaultDatabase
	}

	if o.Password == "" {
		o.Password = os.Getenv("PRIMAL_PASSWORD")
	}

	if !formatSet && cfg.Format != "" {
		if !isValidFormat(cfg.Format) {
			return fmt.Errorf("invalid format %q in config: must be one of %v", cfg.Format, ValidFormats)
		}
		o.Format = cfg.Format
	}

	return nil
}
