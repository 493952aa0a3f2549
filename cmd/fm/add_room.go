package main

import (
	"fmt"

	"github.com/blackroad/facilities/internal/facility"
	"github.com/spf13/cobra"
)

var (
	roomFloor    int
	roomCapacity int
	roomType     string
)

func init() {
	addRoomCmd.Flags().IntVar(&roomFloor, "floor", facility.DefaultRoomFloor, "Floor number")
	addRoomCmd.Flags().IntVar(&roomCapacity, "capacity", facility.DefaultCapacity, "Seating capacity")
	addRoomCmd.Flags().StringVar(&roomType, "type", facility.DefaultRoomType, "Room type")
	rootCmd.AddCommand(addRoomCmd)
}

var addRoomCmd = &cobra.Command{
	Use:   "add-room <building> <room-name>",
	Short: "Add a room to a building",
	Long: `Add a room to an existing building, looked up by exact name.

Example:
  fm add-room "HQ" "Room 101" --capacity 20`,
	Args: cobra.ExactArgs(2),
	RunE: runAddRoom,
}

func runAddRoom(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	r, err := db.AddRoom(commandContext(cmd), facility.NewRoom{
		BuildingName: args[0],
		Name:         args[1],
		Floor:        roomFloor,
		Capacity:     roomCapacity,
		Type:         roomType,
	})
	if err != nil {
		return err
	}

	if humanOutput {
		fmt.Fprintln(cmd.OutOrStdout(), formatCreated("Room", r.Name, "added", r.ID))
		return nil
	}
	return outputJSON(cmd.OutOrStdout(), r)
}
