package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// List targets.
const (
	targetBuildings = "buildings"
	targetRooms     = "rooms"
	targetAssets    = "assets"
)

var (
	listBuilding string
	listRoomID   int64
)

func init() {
	listCmd.Flags().StringVar(&listBuilding, "building", "", "Only rooms in this building (rooms target)")
	listCmd.Flags().Int64Var(&listRoomID, "room-id", 0, "Only assets in this room; 0 means all (assets target)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [buildings|rooms|assets]",
	Short: "List buildings, rooms, or assets",
	Long: `List buildings, rooms, or assets. The default target is buildings.

Only active buildings are listed. An unknown --building yields an empty list.

Examples:
  fm list
  fm list rooms --building HQ
  fm list assets --room-id 3 --human`,
	ValidArgs: []string{targetBuildings, targetRooms, targetAssets},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE:      runList,
}

func runList(cmd *cobra.Command, args []string) error {
	target := targetBuildings
	if len(args) == 1 {
		target = args[0]
	}

	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	switch target {
	case targetRooms:
		rooms, err := db.ListRooms(ctx, listBuilding)
		if err != nil {
			return err
		}
		if !humanOutput {
			return outputJSON(out, rooms)
		}
		label := "all buildings"
		if listBuilding != "" {
			label = "building=" + listBuilding
		}
		printHeading(out, "Rooms (%d) — %s", len(rooms), label)
		for _, r := range rooms {
			fmt.Fprintln(out, formatRoom(r))
		}
		if len(rooms) == 0 {
			printNone(out)
		}

	case targetAssets:
		assets, err := db.ListAssets(ctx, listRoomID)
		if err != nil {
			return err
		}
		if !humanOutput {
			return outputJSON(out, assets)
		}
		label := "all rooms"
		if listRoomID != 0 {
			label = fmt.Sprintf("room=%d", listRoomID)
		}
		printHeading(out, "Assets (%d) — %s", len(assets), label)
		for _, a := range assets {
			fmt.Fprintln(out, formatAsset(a))
		}
		if len(assets) == 0 {
			printNone(out)
		}

	default:
		buildings, err := db.ListBuildings(ctx)
		if err != nil {
			return err
		}
		if !humanOutput {
			return outputJSON(out, buildings)
		}
		printHeading(out, "Buildings (%d)", len(buildings))
		for _, b := range buildings {
			fmt.Fprintln(out, formatBuilding(b))
		}
		if len(buildings) == 0 {
			printNone(out)
		}
	}

	return nil
}
