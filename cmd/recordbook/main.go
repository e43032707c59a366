package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recordbook/cmd/recordbook/shell"
	"recordbook/internal/book"
	"recordbook/internal/config"
	"recordbook/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	bookPath   string
	driver     string

	// Set up by PersistentPreRunE
	cfg     *config.Config
	loggers = logging.Nop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "recordbook",
	Short: "recordbook - interactive contact book",
	Long: `recordbook keeps names, phones, emails, addresses and birthdays in a
local book and lets you manage them from an interactive prompt.

Run without arguments to start a session. Type "help" inside the session
for the list of commands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config init must work even when the existing file is broken
		if cmd == configInitCmd {
			return nil
		}
		if err := config.LoadDotEnv(); err != nil {
			return err
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if bookPath != "" {
			loaded.Book.Path = bookPath
		}
		if driver != "" {
			loaded.Book.Driver = driver
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded

		loggers, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		loggers.Get(logging.CategoryBoot).Debug("configuration loaded",
			zap.String("config", configPath),
			zap.String("driver", cfg.Book.Driver),
			zap.String("book", cfg.Book.Location()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = loggers.Sync()
	},
	RunE: runSession,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (to stderr unless logging.file is set)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVarP(&bookPath, "book", "b", "", "Book file (overrides book.path)")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Storage driver: json or sqlite (overrides book.driver)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openBackend returns the storage selected by the book configuration.
func openBackend(c config.BookConfig) (book.Backend, error) {
	switch c.Driver {
	case config.DriverSQLite:
		return book.OpenSQLite(c.Location())
	case config.DriverJSON:
		return book.NewJSONFile(c.Location()), nil
	}
	return nil, fmt.Errorf("unknown book driver: %q", c.Driver)
}

// runSession loads the book and runs the interactive prompt.
func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	boot := loggers.Get(logging.CategoryBoot)

	backend, err := openBackend(cfg.Book)
	if err != nil {
		return err
	}
	defer backend.Close()

	b := book.New(backend, loggers.Get(logging.CategoryStore))
	if err := b.Load(ctx); err != nil {
		return err
	}
	boot.Info("book ready", zap.String("book", cfg.Book.Location()), zap.Int("records", b.Len()))

	out := cmd.OutOrStdout()
	sess := shell.New(cmd.InOrStdin(), out, b, shell.Options{
		UI:            cfg.UI,
		Logger:        loggers.Get(logging.CategorySession),
		CommandLogger: loggers.Get(logging.CategoryCommand),
	})

	// Handle interrupts: leave without saving, like "not save"
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigCh)
		close(sigCh)
	}()
	go func() {
		sig, ok := <-sigCh
		if !ok {
			return
		}
		boot.Info("Received shutdown signal", zap.String("signal", sig.String()))
		fmt.Fprintln(out, "\nInterrupted. Will NOT save! BB!")
		_ = loggers.Sync()
		os.Exit(130)
	}()

	return sess.Run(ctx)
}
