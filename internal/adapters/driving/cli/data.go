package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

var (
	dataRoutesOnly     bool
	dataDeliveriesOnly bool
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Save or reload stored data",
	Long: `Every command loads routes.txt and deliveries.txt before it runs and
saves them after a change. These commands do the same explicitly and
report what was found. --routes or --deliveries limits them to one file.`,
}

var dataSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write cities, distances and deliveries to disk",
	Args:  cobra.NoArgs,
	RunE:  runDataSave,
}

var dataLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Read cities, distances and deliveries from disk",
	Args:  cobra.NoArgs,
	RunE:  runDataLoad,
}

func init() {
	dataCmd.PersistentFlags().BoolVar(&dataRoutesOnly, "routes", false, "only cities and distances (routes.txt)")
	dataCmd.PersistentFlags().BoolVar(&dataDeliveriesOnly, "deliveries", false, "only the delivery ledger (deliveries.txt)")
	dataCmd.AddCommand(dataSaveCmd)
	dataCmd.AddCommand(dataLoadCmd)
	rootCmd.AddCommand(dataCmd)
}

// dataScope returns which stores a data command works on.
func dataScope() (routes, deliveries bool, err error) {
	if dataRoutesOnly && dataDeliveriesOnly {
		return false, false, errors.New("--routes and --deliveries cannot be used together")
	}
	if !dataRoutesOnly && !dataDeliveriesOnly {
		return true, true, nil
	}
	return dataRoutesOnly, dataDeliveriesOnly, nil
}

func runDataSave(cmd *cobra.Command, _ []string) error {
	if dataService == nil {
		return errors.New("data service not configured")
	}
	withRoutes, withDeliveries, err := dataScope()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	switch {
	case withRoutes && withDeliveries:
		err = dataService.Save(ctx)
	case withRoutes:
		err = dataService.SaveRoutes(ctx)
	default:
		err = dataService.SaveDeliveries(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}

	routes, deliveries := dataService.Locations()
	if withRoutes {
		cmd.Printf("Saved %s\n", routes)
	}
	if withDeliveries {
		cmd.Printf("Saved %s\n", deliveries)
	}
	return nil
}

func runDataLoad(cmd *cobra.Command, _ []string) error {
	if dataService == nil {
		return errors.New("data service not configured")
	}
	withRoutes, withDeliveries, err := dataScope()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var report *driving.LoadReport
	switch {
	case withRoutes && withDeliveries:
		report, err = dataService.Load(ctx)
	case withRoutes:
		report, err = dataService.LoadRoutes(ctx)
	default:
		report, err = dataService.LoadDeliveries(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}
	warnResets(cmd, report)

	routes, deliveries := dataService.Locations()
	if withRoutes {
		cmd.Printf("Loaded %d cities from %s\n", report.Cities, routes)
	}
	if withDeliveries {
		cmd.Printf("Loaded %d deliveries from %s\n", report.Deliveries, deliveries)
	}
	return nil
}
