package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the export to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Long: `Export every building (active or not), room, and asset as JSON.

Examples:
  fm export
  fm export -o facilities.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	data, err := db.Export(commandContext(cmd))
	if err != nil {
		return err
	}

	if exportOutput == "" {
		return outputJSON(cmd.OutOrStdout(), data)
	}

	var buf bytes.Buffer
	if err := outputJSON(&buf, data); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	if err := os.WriteFile(exportOutput, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	logger.Debug("export written", zap.String("path", exportOutput), zap.Int("bytes", buf.Len()))

	if humanOutput {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d buildings, %d rooms, %d assets to %s\n",
			paint("✓", styleGreen), len(data.Buildings), len(data.Rooms), len(data.Assets), exportOutput)
		return nil
	}
	return outputJSON(cmd.OutOrStdout(), StatusResponse{Status: "exported", Path: exportOutput})
}
