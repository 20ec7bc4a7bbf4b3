package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// renderDistanceTable draws the matrix with numbered row and column
// headers; unset pairs show "-".
func renderDistanceTable(dt domain.DistanceTable) string {
	headers := make([]string, 0, len(dt.Cities)+1)
	headers = append(headers, "")
	for i := range dt.Cities {
		headers = append(headers, strconv.Itoa(i+1))
	}

	rows := make([][]string, len(dt.Cells))
	for i, cells := range dt.Cells {
		row := make([]string, 0, len(cells)+1)
		row = append(row, strconv.Itoa(i+1)+". "+dt.Cities[i])
		row = append(row, cells...)
		rows[i] = row
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

// renderDeliveryTable lists recorded deliveries, one per row.
func renderDeliveryTable(names domain.CityNames, deliveries []domain.Delivery) string {
	rows := make([][]string, len(deliveries))
	for i, d := range deliveries {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			names.NameOr(d.Source),
			names.NameOr(d.Destination),
			d.Vehicle.String(),
			domain.FormatAmount(d.WeightKg),
			domain.FormatAmount(d.DistanceKm),
			domain.FormatAmount(d.CustomerCharge),
			domain.FormatAmount(d.EstimatedTime),
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "From", "To", "Vehicle", "Kg", "Km", "Charge", "Hours").
		Rows(rows...).
		String()
}
