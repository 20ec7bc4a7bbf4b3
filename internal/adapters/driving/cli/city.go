package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var cityCmd = &cobra.Command{
	Use:   "city",
	Short: "Manage cities",
	Long: `Add, rename, remove and list cities.

Up to 30 cities can be kept. Names are single words such as Colombo or
Nuwara_Eliya. Cities are numbered from 1 in the order they were added.`,
}

var cityAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a city",
	Args:  cobra.ExactArgs(1),
	RunE:  runCityAdd,
}

var cityRenameCmd = &cobra.Command{
	Use:   "rename <number> <name>",
	Short: "Rename a city",
	Args:  cobra.ExactArgs(2),
	RunE:  runCityRename,
}

var cityRemoveCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove a city and its distances",
	Long: `Remove a city together with its row and column of distances.
Cities after it move up one number. A city used by a recorded delivery
cannot be removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCityRemove,
}

var cityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cities",
	Args:  cobra.NoArgs,
	RunE:  runCityList,
}

func init() {
	cityCmd.AddCommand(cityAddCmd)
	cityCmd.AddCommand(cityRenameCmd)
	cityCmd.AddCommand(cityRemoveCmd)
	cityCmd.AddCommand(cityListCmd)
	rootCmd.AddCommand(cityCmd)
}

func runCityAdd(cmd *cobra.Command, args []string) error {
	if networkService == nil {
		return errors.New("network service not configured")
	}

	city, err := networkService.AddCity(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to add city: %w", err)
	}

	cmd.Printf("Added city %s\n", city)
	return nil
}

func runCityRename(cmd *cobra.Command, args []string) error {
	if networkService == nil {
		return errors.New("network service not configured")
	}

	index, err := parseCityIndex(args[0])
	if err != nil {
		return err
	}
	if err := networkService.RenameCity(cmd.Context(), index, args[1]); err != nil {
		return fmt.Errorf("failed to rename city: %w", err)
	}

	cmd.Printf("Renamed city %d to %s\n", index+1, args[1])
	return nil
}

func runCityRemove(cmd *cobra.Command, args []string) error {
	if networkService == nil {
		return errors.New("network service not configured")
	}

	index, err := parseCityIndex(args[0])
	if err != nil {
		return err
	}
	city, err := networkService.RemoveCity(cmd.Context(), index)
	if err != nil {
		return fmt.Errorf("failed to remove city: %w", err)
	}

	cmd.Printf("Removed city %s\n", city.Name)
	return nil
}

func runCityList(cmd *cobra.Command, _ []string) error {
	if networkService == nil {
		return errors.New("network service not configured")
	}

	cities, err := networkService.ListCities(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list cities: %w", err)
	}

	if len(cities) == 0 {
		cmd.Println("No cities yet. Add one with: fleetbook city add <name>")
		return nil
	}
	for _, c := range cities {
		cmd.Println(c.String())
	}
	return nil
}
