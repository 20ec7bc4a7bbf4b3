package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarise recorded deliveries",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if deliveryService == nil {
		return errors.New("delivery service not configured")
	}

	sum, err := deliveryService.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to summarise deliveries: %w", err)
	}

	cmd.Println("Delivery Report")
	cmd.Println("===============")
	cmd.Printf("Deliveries:         %d\n", sum.Count)
	cmd.Printf("Total distance:     %s km\n", domain.FormatAmount(sum.TotalDistance))
	cmd.Printf("Average time:       %s h\n", domain.FormatAmount(sum.AverageTime))
	cmd.Printf("Total revenue:      %s\n", domain.FormatAmount(sum.TotalRevenue))
	cmd.Printf("Total profit:       %s\n", domain.FormatAmount(sum.TotalProfit))
	if sum.Count == 0 {
		return nil
	}
	cmd.Printf("Longest route:      %s km\n", domain.FormatAmount(sum.LongestDistance))
	cmd.Printf("Shortest route:     %s km\n", domain.FormatAmount(sum.ShortestDistance))
	cmd.Println()
	cmd.Println("[By vehicle]")
	for _, v := range deliveryService.Vehicles() {
		cmd.Printf("  %-6s %d\n", v.Name, sum.ByVehicle[v.Class])
	}
	return nil
}
