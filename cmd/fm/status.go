package main

import (
	"fmt"
	"io"
	"os"

	"github.com/blackroad/facilities/internal/facility"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show summary counts",
	Long: `Show the number of active buildings, rooms, available rooms, and assets.

Example:
  fm status --human`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := db.Status(commandContext(cmd))
	if err != nil {
		return err
	}

	if !humanOutput {
		return outputJSON(cmd.OutOrStdout(), s)
	}
	printStatusHuman(cmd.OutOrStdout(), s)
	return nil
}

func printStatusHuman(out io.Writer, s *facility.Summary) {
	printHeading(out, "Facilities Management Status")
	fmt.Fprintln(out, formatKV("active_buildings", s.ActiveBuildings))
	fmt.Fprintln(out, formatKV("total_rooms", s.TotalRooms))
	fmt.Fprintln(out, formatKV("available_rooms", s.AvailableRooms))
	fmt.Fprintln(out, formatKV("total_assets", s.TotalAssets))
	fmt.Fprintln(out, formatKV("db_path", s.DBPath))
	if info, err := os.Stat(s.DBPath); err == nil {
		fmt.Fprintln(out, formatKV("db_size", humanize.Bytes(uint64(info.Size()))))
	}
}
