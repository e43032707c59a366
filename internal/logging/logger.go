// Package logging builds the categorized zap loggers used across recordbook.
// Logging is off unless a log file is configured or verbose mode is on,
// because stdout belongs to the interactive session.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"recordbook/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config, backend selection
	CategoryStore   Category = "store"   // Book load/save
	CategoryCommand Category = "command" // Dispatching and handler failures
	CategorySession Category = "session" // REPL lifecycle
)

// Loggers hands out one named logger per category.
type Loggers struct {
	root *zap.Logger
	cfg  config.LoggingConfig
}

// Nop returns loggers that discard everything.
func Nop() *Loggers {
	return &Loggers{root: zap.NewNop()}
}

// New builds the root logger from cfg. Verbose forces debug level and, with no
// file configured, writes to stderr.
func New(cfg config.LoggingConfig, verbose bool) (*Loggers, error) {
	output := cfg.File
	if output == "" {
		if !verbose {
			return Nop(), nil
		}
		output = "stderr"
		cfg.File = output
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = cfg.Format
	zcfg.Sampling = nil
	zcfg.OutputPaths = []string{output}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	root, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Loggers{root: root, cfg: cfg}, nil
}

// Get returns the logger for category, or a no-op logger when the category is
// switched off.
func (l *Loggers) Get(category Category) *zap.Logger {
	if !l.cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return l.root.Named(string(category))
}

// Sync flushes buffered entries.
func (l *Loggers) Sync() error {
	return l.root.Sync()
}
