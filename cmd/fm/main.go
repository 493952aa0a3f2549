// Package main provides the fm CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/blackroad/facilities/internal/config"
	"github.com/blackroad/facilities/internal/logging"
	"github.com/blackroad/facilities/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags
var Version = "dev"

// Persistent flags.
var (
	humanOutput bool
	dbFlag      string
	verbose     bool
)

// Resolved once per invocation in PersistentPreRunE.
var (
	settings *config.Settings
	logger   = zap.NewNop()
)

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	logger.Sync() //nolint:errcheck // stderr sync fails on some terminals
	if err != nil {
		os.Exit(reportError(rootCmd, err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "fm",
	Short: "Facilities inventory tracker",
	Long: `fm records buildings, the rooms inside them, and the assets inside those rooms.

Data lives in a local SQLite file (default ~/.blackroad/facilities-management.db).
All commands output JSON by default; pass --human for colorized text.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the store (overrides FM_DB_PATH and config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.Version = Version
}

// setup resolves configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	s, err := config.Resolve(config.Overrides{DBPath: dbFlag, Verbose: verbose})
	if err != nil {
		return configError{err}
	}
	l, err := logging.New(cmd.ErrOrStderr(), s.LogLevel)
	if err != nil {
		return configError{err}
	}

	settings = s
	logger = l
	colorEnabled = colorFor(s.Color, cmd.OutOrStdout())
	logger.Debug("configuration resolved",
		zap.String("db_path", s.DBPath),
		zap.String("db_source", s.DBSource),
		zap.String("config_path", s.ConfigPath))
	return nil
}

// openStore opens the configured store. The caller must Close it.
func openStore(cmd *cobra.Command) (*storage.DB, error) {
	db, err := storage.OpenDB(commandContext(cmd), settings.DBPath, storage.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", settings.DBPath, err)
	}
	return db, nil
}

// commandContext returns the command's context, or Background when run outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
