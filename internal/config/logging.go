package config

import (
	"fmt"
	"slices"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"RECORDBOOK_LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"RECORDBOOK_LOG_FORMAT"` // console, json
	File   string `yaml:"file" env:"RECORDBOOK_LOG_FILE"`     // empty disables logging

	// Categories toggles individual loggers; a missing entry means enabled.
	Categories map[string]bool `yaml:"categories,omitempty"`
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// Enabled reports whether logs will be written at all.
func (c *LoggingConfig) Enabled() bool {
	return c.File != ""
}

// IsCategoryEnabled returns false when logging is off, otherwise the category
// toggle (enabled if not listed).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.Enabled() {
		return false
	}
	enabled, exists := c.Categories[category]
	return !exists || enabled
}

func (c *LoggingConfig) validate() error {
	if !slices.Contains(validLevels, c.Level) {
		return fmt.Errorf("invalid log level: %q (valid: %v)", c.Level, validLevels)
	}
	if !slices.Contains(validFormats, c.Format) {
		return fmt.Errorf("invalid log format: %q (valid: %v)", c.Format, validFormats)
	}
	return nil
}
