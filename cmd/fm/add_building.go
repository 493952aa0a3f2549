package main

import (
	"fmt"

	"github.com/blackroad/facilities/internal/facility"
	"github.com/spf13/cobra"
)

var (
	buildingAddress string
	buildingFloors  int
	buildingSqft    float64
	buildingType    string
)

func init() {
	addBuildingCmd.Flags().StringVar(&buildingAddress, "address", "", "Street address")
	addBuildingCmd.Flags().IntVar(&buildingFloors, "floors", facility.DefaultFloors, "Number of floors")
	addBuildingCmd.Flags().Float64Var(&buildingSqft, "sqft", 0, "Total area in square feet")
	addBuildingCmd.Flags().StringVar(&buildingType, "type", facility.DefaultBuildingType, "Building type")
	rootCmd.AddCommand(addBuildingCmd)
}

var addBuildingCmd = &cobra.Command{
	Use:   "add-building <name>",
	Short: "Register a building",
	Long: `Register a building. Names are unique across all buildings.

Example:
  fm add-building "HQ" --floors 5 --sqft 12500 --address "1 Main St"`,
	Args: cobra.ExactArgs(1),
	RunE: runAddBuilding,
}

func runAddBuilding(cmd *cobra.Command, args []string) error {
	db, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	b, err := db.AddBuilding(commandContext(cmd), facility.NewBuilding{
		Name:    args[0],
		Address: buildingAddress,
		Floors:  buildingFloors,
		Sqft:    buildingSqft,
		Type:    buildingType,
	})
	if err != nil {
		return err
	}

	if humanOutput {
		fmt.Fprintln(cmd.OutOrStdout(), formatCreated("Building", b.Name, "registered", b.ID))
		return nil
	}
	return outputJSON(cmd.OutOrStdout(), b)
}
