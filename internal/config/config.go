package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the config file is looked up when no flag is given.
const DefaultPath = "recordbook.yaml"

// Storage drivers and the files they use when no path is configured.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"

	DefaultJSONPath   = "save.json"
	DefaultSQLitePath = "save.db"
)

// Config holds all recordbook configuration.
type Config struct {
	// Persistence of the address book
	Book BookConfig `yaml:"book"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Console presentation
	UI UIConfig `yaml:"ui"`
}

// BookConfig selects where the address book lives.
type BookConfig struct {
	Driver string `yaml:"driver" env:"RECORDBOOK_BOOK_DRIVER"` // json, sqlite
	Path   string `yaml:"path,omitempty" env:"RECORDBOOK_BOOK_PATH"`
}

// Location returns Path, or the driver's default file when Path is empty.
func (b BookConfig) Location() string {
	switch {
	case b.Path != "":
		return b.Path
	case b.Driver == DriverSQLite:
		return DefaultSQLitePath
	default:
		return DefaultJSONPath
	}
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Book: BookConfig{
			Driver: DriverJSON,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		UI: UIConfig{
			HelpStyle:  HelpPlain,
			PagePrompt: true,
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv exports the variables from the given .env files (".env" when none
// are named) without overriding variables that are already set. Missing files
// are ignored.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides copies every set RECORDBOOK_* variable into c. Unset or
// empty variables leave the current value alone.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains([]string{DriverJSON, DriverSQLite}, c.Book.Driver) {
		return fmt.Errorf("invalid book driver: %q (valid: %s, %s)", c.Book.Driver, DriverJSON, DriverSQLite)
	}
	if err := c.Logging.validate(); err != nil {
		return err
	}
	return c.UI.validate()
}
