package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Manage distances between cities",
	Long: `Set and view road distances in kilometres. A distance applies in both
directions. The distance from a city to itself is always 0.`,
}

var distanceSetCmd = &cobra.Command{
	Use:   "set <from> <to> <km>",
	Short: "Set the distance between two cities",
	Args:  cobra.ExactArgs(3),
	RunE:  runDistanceSet,
}

var distanceGetCmd = &cobra.Command{
	Use:   "get <from> <to>",
	Short: "Show the distance between two cities",
	Args:  cobra.ExactArgs(2),
	RunE:  runDistanceGet,
}

var distanceTableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the distance table",
	Args:  cobra.NoArgs,
	RunE:  runDistanceTable,
}

func init() {
	distanceCmd.AddCommand(distanceSetCmd)
	distanceCmd.AddCommand(distanceGetCmd)
	distanceCmd.AddCommand(distanceTableCmd)
	rootCmd.AddCommand(distanceCmd)
}

func parsePair(args []string) (from, to int, err error) {
	if from, err = parseCityIndex(args[0]); err != nil {
		return 0, 0, err
	}
	if to, err = parseCityIndex(args[1]); err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

func runDistanceSet(cmd *cobra.Command, args []string) error {
	if networkService == nil {
		return errors.New("network service not configured")
	}

	from, to, err := parsePair(args)
	if err != nil {
		return err
	}
	km, err := parseAmount("distance", args[2])
	if err != nil {
		return err
	}

	applied, err := networkService.SetDistance(cmd.Context(), from, to, km)
	if err != nil {
		return fmt.Errorf("failed to set distance: %w", err)
	}
	if !applied {
		cmd.Println("Distance from a city to itself is always 0; nothing changed.")
		return nil
	}

	names, err := cityNames(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Printf("Distance %s <-> %s set to %s km\n",
		names.NameOr(from), names.NameOr(to), domain.FormatAmount(km))
	return nil
}

func runDistanceGet(cmd *cobra.Command, args []string) error {
	if networkService == nil {
		return errors.New("network service not configured")
	}

	from, to, err := parsePair(args)
	if err != nil {
		return err
	}
	km, set, err := networkService.GetDistance(cmd.Context(), from, to)
	if err != nil {
		return fmt.Errorf("failed to get distance: %w", err)
	}

	names, err := cityNames(cmd.Context())
	if err != nil {
		return err
	}
	if !set {
		cmd.Printf("No distance set between %s and %s\n", names.NameOr(from), names.NameOr(to))
		return nil
	}
	cmd.Printf("%s <-> %s: %s km\n", names.NameOr(from), names.NameOr(to), domain.FormatAmount(km))
	return nil
}

func runDistanceTable(cmd *cobra.Command, _ []string) error {
	if networkService == nil {
		return errors.New("network service not configured")
	}

	dt, err := networkService.DistanceTable(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to build distance table: %w", err)
	}
	if len(dt.Cities) == 0 {
		cmd.Println("No cities yet.")
		return nil
	}

	cmd.Println(renderDistanceTable(dt))
	return nil
}
