// Package reports provides the ledger report view for the TUI.
package reports

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/components/table"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

// View shows the ledger summary and its records.
type View struct {
	styles   *styles.Styles
	network  driving.NetworkService
	delivery driving.DeliveryService

	summary    domain.Summary
	deliveries []domain.Delivery
	names      []string
	loading    bool
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a new report view.
func NewView(s *styles.Styles, network driving.NetworkService, delivery driving.DeliveryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		network:  network,
		delivery: delivery,
	}
}

// Init loads the report.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadReport()
}

func (v *View) loadReport() tea.Cmd {
	return func() tea.Msg {
		if v.delivery == nil || v.network == nil {
			return messages.ReportLoaded{Err: errors.New("delivery service not available")}
		}
		ctx := context.Background()
		summary, err := v.delivery.Summary(ctx)
		if err != nil {
			return messages.ReportLoaded{Err: err}
		}
		deliveries, err := v.delivery.List(ctx)
		if err != nil {
			return messages.ReportLoaded{Err: err}
		}
		cities, err := v.network.ListCities(ctx)
		if err != nil {
			return messages.ReportLoaded{Err: err}
		}
		return messages.ReportLoaded{Summary: summary, Deliveries: deliveries, Cities: cities}
	}
}

// Update handles messages for the report view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ReportLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.summary = msg.Summary
		v.deliveries = msg.Deliveries
		v.names = make([]string, len(msg.Cities))
		for i, c := range msg.Cities {
			v.names[i] = c.Name
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "ctrl+r", "r":
			v.loading = true
			return v, v.loadReport()
		}
	}

	return v, nil
}

// View renders the summary followed by the delivery table.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Delivery Report"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading report..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err)))
		b.WriteString("\n\n")
	default:
		b.WriteString(v.renderSummary())
		b.WriteString("\n")
		if len(v.deliveries) > 0 {
			b.WriteString(table.Deliveries(v.styles, v.names, v.deliveries))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(v.styles.Help.Render("[r] reload  [esc] back"))
	return b.String()
}

func (v *View) renderSummary() string {
	s := v.summary
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(v.styles.Label.Render(label))
		b.WriteString(v.styles.Figure.Render(value))
		b.WriteString("\n")
	}
	money := func(label string, amount float64) {
		b.WriteString(v.styles.Label.Render(label))
		b.WriteString(v.styles.Money.Render(domain.FormatAmount(amount)))
		b.WriteString("\n")
	}

	line("Deliveries", fmt.Sprintf("%d of %d", s.Count, domain.MaxDeliveries))
	line("Total distance", domain.FormatAmount(s.TotalDistance)+" km")
	line("Average time", domain.FormatAmount(s.AverageTime)+" h")
	money("Total revenue", s.TotalRevenue)
	money("Total profit", s.TotalProfit)
	if s.Count == 0 {
		return b.String()
	}
	line("Longest route", domain.FormatAmount(s.LongestDistance)+" km")
	line("Shortest route", domain.FormatAmount(s.ShortestDistance)+" km")
	for _, veh := range domain.Vehicles() {
		line(veh.Name+" trips", strconv.Itoa(s.ByVehicle[veh.Class]))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Summary returns the loaded summary.
func (v *View) Summary() domain.Summary {
	return v.summary
}

// Deliveries returns the loaded records.
func (v *View) Deliveries() []domain.Delivery {
	return v.deliveries
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
