package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Show where the store lives and which settings are in effect.

The store path comes from --db, then FM_DB_PATH, then db_path in the
global config file, then ~/.blackroad/facilities-management.db.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !humanOutput {
		return outputJSON(out, settings)
	}

	printHeading(out, "Configuration")
	fmt.Fprintln(out, formatKV("db_path", fmt.Sprintf("%s (%s)", settings.DBPath, settings.DBSource)))
	fmt.Fprintln(out, formatKV("log_level", settings.LogLevel))
	fmt.Fprintln(out, formatKV("color", settings.Color))
	fmt.Fprintln(out, formatKV("config_path", settings.ConfigPath))
	return nil
}
