// Package table renders distance and delivery grids for the TUI.
package table

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// styled applies the theme. The first textCols columns are left aligned
// and numbers to their right are right aligned.
func styled(s *styles.Styles, t *table.Table, rows [][]string, textCols int) *table.Table {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return t.
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(s.Theme().Border)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.TableHeader
			case row >= 0 && row < len(rows) && col < len(rows[row]) && rows[row][col] == "-":
				return s.Unset
			case col < textCols:
				return s.TableCell.Align(lipgloss.Left)
			}
			return s.TableCell
		})
}

// Distances renders the matrix with numbered headers.
func Distances(s *styles.Styles, dt domain.DistanceTable) string {
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

	return styled(s, table.New().Headers(headers...).Rows(rows...), rows, 1).String()
}

// Deliveries renders one row per ledger record. Names label the city
// indices; an index without a name shows its display number.
func Deliveries(s *styles.Styles, names domain.CityNames, deliveries []domain.Delivery) string {
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
			domain.FormatAmount(d.Profit),
			domain.FormatAmount(d.EstimatedTime),
		}
	}

	t := table.New().
		Headers("#", "From", "To", "Vehicle", "Kg", "Km", "Charge", "Profit", "Hours").
		Rows(rows...)
	return styled(s, t, rows, 4).String()
}
