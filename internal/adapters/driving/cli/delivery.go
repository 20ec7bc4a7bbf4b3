package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

var deliveryCmd = &cobra.Command{
	Use:   "delivery",
	Short: "Price and record deliveries",
	Long: `Price a delivery between two cities and record it in the ledger.

Vehicles:
  1 Van    1000 kg   30.00/km  60 km/h  12 km/L
  2 Truck  5000 kg   40.00/km  50 km/h   6 km/L
  3 Lorry  10000 kg  80.00/km  45 km/h   4 km/L

The ledger holds up to 50 deliveries.`,
}

var deliveryNewCmd = &cobra.Command{
	Use:   "new <from> <to> <vehicle> <kg>",
	Short: "Price a delivery and record it",
	Example: `  fleetbook delivery new 1 2 van 500
  fleetbook delivery new 2 3 3 8000`,
	Args: cobra.ExactArgs(4),
	RunE: runDeliveryNew,
}

var deliveryEstimateCmd = &cobra.Command{
	Use:   "estimate <from> <to> <vehicle> <kg>",
	Short: "Price a delivery without recording it",
	Args:  cobra.ExactArgs(4),
	RunE:  runDeliveryEstimate,
}

var deliveryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded deliveries",
	Args:  cobra.NoArgs,
	RunE:  runDeliveryList,
}

func init() {
	deliveryCmd.AddCommand(deliveryNewCmd)
	deliveryCmd.AddCommand(deliveryEstimateCmd)
	deliveryCmd.AddCommand(deliveryListCmd)
	rootCmd.AddCommand(deliveryCmd)
}

func parseDeliveryRequest(args []string) (domain.DeliveryRequest, error) {
	from, to, err := parsePair(args)
	if err != nil {
		return domain.DeliveryRequest{}, err
	}
	vehicle, err := domain.ParseVehicleClass(args[2])
	if err != nil {
		return domain.DeliveryRequest{}, err
	}
	weight, err := parseAmount("weight", args[3])
	if err != nil {
		return domain.DeliveryRequest{}, err
	}
	return domain.DeliveryRequest{
		Source:      from,
		Destination: to,
		Vehicle:     vehicle,
		WeightKg:    weight,
	}, nil
}

func runDeliveryNew(cmd *cobra.Command, args []string) error {
	return runDeliveryQuote(cmd, args, true)
}

func runDeliveryEstimate(cmd *cobra.Command, args []string) error {
	return runDeliveryQuote(cmd, args, false)
}

func runDeliveryQuote(cmd *cobra.Command, args []string, record bool) error {
	if deliveryService == nil || networkService == nil {
		return errors.New("delivery service not configured")
	}

	req, err := parseDeliveryRequest(args)
	if err != nil {
		return err
	}

	var d domain.Delivery
	if record {
		d, err = deliveryService.QuoteAndRecord(cmd.Context(), req)
	} else {
		d, err = deliveryService.Estimate(cmd.Context(), req)
	}
	if err != nil {
		return fmt.Errorf("failed to price delivery: %w", err)
	}

	names, err := cityNames(cmd.Context())
	if err != nil {
		return err
	}
	printQuote(cmd, names, d)

	if record {
		count, err := deliveryCount(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("\nDelivery recorded (%d of %d).\n", count, domain.MaxDeliveries)
	}
	return nil
}

func deliveryCount(ctx context.Context) (int, error) {
	list, err := deliveryService.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// printQuote writes every figure of a priced delivery.
func printQuote(cmd *cobra.Command, names domain.CityNames, d domain.Delivery) {
	cmd.Printf("Route:            %s -> %s (%s km)\n",
		names.NameOr(d.Source), names.NameOr(d.Destination), domain.FormatAmount(d.DistanceKm))
	cmd.Printf("Vehicle:          %s\n", d.Vehicle)
	cmd.Printf("Weight:           %s kg\n", domain.FormatAmount(d.WeightKg))
	cmd.Printf("Base cost:        %s\n", domain.FormatAmount(d.BaseCost))
	cmd.Printf("Fuel used:        %s L\n", domain.FormatAmount(d.FuelUsed))
	cmd.Printf("Fuel cost:        %s\n", domain.FormatAmount(d.FuelCost))
	cmd.Printf("Operational cost: %s\n", domain.FormatAmount(d.OperationalCost))
	cmd.Printf("Profit:           %s\n", domain.FormatAmount(d.Profit))
	cmd.Printf("Customer charge:  %s\n", domain.FormatAmount(d.CustomerCharge))
	cmd.Printf("Estimated time:   %s h\n", domain.FormatAmount(d.EstimatedTime))
}

func runDeliveryList(cmd *cobra.Command, _ []string) error {
	if deliveryService == nil || networkService == nil {
		return errors.New("delivery service not configured")
	}

	deliveries, err := deliveryService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list deliveries: %w", err)
	}
	if len(deliveries) == 0 {
		cmd.Println("No deliveries recorded.")
		return nil
	}

	names, err := cityNames(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Println(renderDeliveryTable(names, deliveries))
	return nil
}
