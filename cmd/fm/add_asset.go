package main

import (
	"fmt"
	"strconv"

	"github.com/blackroad/facilities/internal/facility"
	"github.com/spf13/cobra"
)

var (
	assetType         string
	assetSerial       string
	assetPurchaseDate string
	assetCondition    string
	assetNotes        string
	assetRequireRoom  bool
)

func init() {
	addAssetCmd.Flags().StringVar(&assetType, "type", facility.DefaultAssetType, "Asset type")
	addAssetCmd.Flags().StringVar(&assetSerial, "serial", "", "Serial number")
	addAssetCmd.Flags().StringVar(&assetPurchaseDate, "purchase-date", "", "Purchase date (e.g. 2025-01-31)")
	addAssetCmd.Flags().StringVar(&assetCondition, "condition", facility.DefaultCondition, "Condition: excellent, good, fair, poor")
	addAssetCmd.Flags().StringVar(&assetNotes, "notes", "", "Free-text notes")
	addAssetCmd.Flags().BoolVar(&assetRequireRoom, "require-room", false, "Fail if the room id does not exist")
	rootCmd.AddCommand(addAssetCmd)
}

var addAssetCmd = &cobra.Command{
	Use:   "add-asset <room-id> <name>",
	Short: "Register an asset in a room",
	Long: `Register an asset in a room.

The room id is recorded as given and is not checked unless --require-room is set.

Example:
  fm add-asset 1 "Projector" --condition fair --serial PX-100`,
	Args: cobra.ExactArgs(2),
	RunE: runAddAsset,
}

func runAddAsset(cmd *cobra.Command, args []string) error {
	roomID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: room id %q is not an integer", facility.ErrInvalid, args[0])
	}

	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	a, err := db.AddAsset(commandContext(cmd), facility.NewAsset{
		RoomID:       roomID,
		Name:         args[1],
		Type:         assetType,
		SerialNumber: assetSerial,
		PurchaseDate: assetPurchaseDate,
		Condition:    assetCondition,
		Notes:        assetNotes,
		RequireRoom:  assetRequireRoom,
	})
	if err != nil {
		return err
	}

	if humanOutput {
		fmt.Fprintln(cmd.OutOrStdout(), formatCreated("Asset", a.Name, "registered", a.ID))
		return nil
	}
	return outputJSON(cmd.OutOrStdout(), a)
}
