// Package delivery provides the new delivery view for the TUI.
// The operator fills in a request, reviews the priced quote and confirms
// it before anything is written to the ledger.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

var errNoService = errors.New("delivery service not available")

// Stage tracks where the operator is in the flow.
type Stage int

const (
	StageForm Stage = iota
	StageQuote
	StageRecorded
)

// View prices and records one delivery at a time.
type View struct {
	styles   *styles.Styles
	network  driving.NetworkService
	delivery driving.DeliveryService

	cities  []domain.City
	form    *input.Form
	stage   Stage
	request domain.DeliveryRequest
	quote   domain.Delivery
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new delivery view.
func NewView(s *styles.Styles, network driving.NetworkService, delivery driving.DeliveryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		network:  network,
		delivery: delivery,
		form: input.NewForm(
			input.NewField(s, "From city #", "1", 2),
			input.NewField(s, "To city #", "2", 2),
			input.NewField(s, "Vehicle", "1-3 or name", 8),
			input.NewField(s, "Weight (kg)", "500", 12),
		),
	}
}

// Init loads city names for reference and starts the form.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.loadCities(), v.form.Init())
}

// Reset clears the form and any quote.
func (v *View) Reset() {
	v.stage = StageForm
	v.err = nil
	v.quote = domain.Delivery{}
	v.form.Reset()
}

func (v *View) loadCities() tea.Cmd {
	return func() tea.Msg {
		if v.network == nil {
			return messages.CitiesLoaded{Err: errors.New("network service not available")}
		}
		cities, err := v.network.ListCities(context.Background())
		return messages.CitiesLoaded{Cities: cities, Err: err}
	}
}

// Update handles messages for the delivery view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CitiesLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.cities = msg.Cities
		return v, nil

	case messages.QuotePriced:
		if msg.Err != nil {
			v.err = msg.Err
			v.stage = StageForm
			return v, nil
		}
		v.err = nil
		v.quote = msg.Delivery
		if msg.Recorded {
			v.stage = StageRecorded
		} else {
			v.stage = StageQuote
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.stage {
	case StageQuote:
		switch msg.String() {
		case "enter", "y":
			return v, v.price(v.request, true)
		case "esc", "n":
			v.stage = StageForm
		}
		return v, nil

	case StageRecorded:
		switch msg.String() {
		case "esc":
			return v, backToMenu
		case "enter", "n":
			v.stage = StageForm
			v.err = nil
			return v, v.form.Reset()
		}
		return v, nil

	case StageForm:
	}

	switch msg.String() {
	case "esc":
		return v, backToMenu
	case "enter":
		req, err := parseRequest(v.form.Values())
		if err != nil {
			v.err = err
			return v, nil
		}
		v.request = req
		return v, v.price(req, false)
	}
	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	return v, cmd
}

func backToMenu() tea.Msg {
	return messages.ViewChanged{View: messages.ViewMenu}
}

// parseRequest reads 1-based city numbers, a vehicle and a weight.
func parseRequest(values []string) (domain.DeliveryRequest, error) {
	var req domain.DeliveryRequest
	var err error
	if req.Source, err = parseCity(values[0]); err != nil {
		return req, err
	}
	if req.Destination, err = parseCity(values[1]); err != nil {
		return req, err
	}
	if req.Vehicle, err = domain.ParseVehicleClass(values[2]); err != nil {
		return req, err
	}
	if req.WeightKg, err = strconv.ParseFloat(values[3], 64); err != nil {
		return req, fmt.Errorf("invalid weight %q: %w", values[3], domain.ErrInvalidValue)
	}
	return req, nil
}

func parseCity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid city number %q: %w", s, domain.ErrInvalidCities)
	}
	return n - 1, nil
}

// price estimates req, or records it when record is set.
func (v *View) price(req domain.DeliveryRequest, record bool) tea.Cmd {
	return func() tea.Msg {
		if v.delivery == nil {
			return messages.QuotePriced{Err: errNoService}
		}
		ctx := context.Background()
		var d domain.Delivery
		var err error
		if record {
			d, err = v.delivery.QuoteAndRecord(ctx, req)
		} else {
			d, err = v.delivery.Estimate(ctx, req)
		}
		return messages.QuotePriced{Delivery: d, Recorded: record && err == nil, Err: err}
	}
}

// View renders the current stage.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("New Delivery"))
	b.WriteString("\n\n")

	switch v.stage {
	case StageForm:
		b.WriteString(v.renderReference())
		b.WriteString("\n")
		b.WriteString(v.form.View())
		b.WriteString("\n")
	case StageQuote, StageRecorded:
		b.WriteString(v.renderQuote())
	}

	b.WriteString("\n")
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err)))
		b.WriteString("\n\n")
	}

	switch v.stage {
	case StageForm:
		b.WriteString(v.styles.Help.Render("[tab] next field  [enter] get quote  [esc] back"))
	case StageQuote:
		b.WriteString(v.styles.Warning.Render("Record this delivery?"))
		b.WriteString("  ")
		b.WriteString(v.styles.Help.Render("[y/enter] confirm  [n/esc] edit"))
	case StageRecorded:
		b.WriteString(v.styles.Success.Render("Delivery recorded."))
		b.WriteString("  ")
		b.WriteString(v.styles.Help.Render("[enter] new delivery  [esc] back"))
	}
	return b.String()
}

func (v *View) renderReference() string {
	var b strings.Builder
	if len(v.cities) == 0 {
		b.WriteString(v.styles.Muted.Render("No cities yet."))
		b.WriteString("\n")
	}
	for _, c := range v.cities {
		b.WriteString(v.styles.Muted.Render(c.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, veh := range domain.Vehicles() {
		line := fmt.Sprintf("%d. %-6s up to %s kg", int(veh.Class)+1, veh.Name, domain.FormatAmount(veh.CapacityKg))
		b.WriteString(v.styles.Muted.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderQuote() string {
	d := v.quote
	rows := []struct {
		label string
		value string
		money bool
	}{
		{"Route", fmt.Sprintf("%s -> %s", v.cityName(d.Source), v.cityName(d.Destination)), false},
		{"Distance", domain.FormatAmount(d.DistanceKm) + " km", false},
		{"Vehicle", d.Vehicle.String(), false},
		{"Weight", domain.FormatAmount(d.WeightKg) + " kg", false},
		{"Base cost", domain.FormatAmount(d.BaseCost), true},
		{"Fuel used", domain.FormatAmount(d.FuelUsed) + " L", false},
		{"Fuel cost", domain.FormatAmount(d.FuelCost), true},
		{"Operational cost", domain.FormatAmount(d.OperationalCost), true},
		{"Profit", domain.FormatAmount(d.Profit), true},
		{"Customer charge", domain.FormatAmount(d.CustomerCharge), true},
		{"Estimated time", domain.FormatAmount(d.EstimatedTime) + " h", false},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(v.styles.Label.Render(r.label))
		if r.money {
			b.WriteString(v.styles.Money.Render(r.value))
		} else {
			b.WriteString(v.styles.Figure.Render(r.value))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) cityName(index int) string {
	if index >= 0 && index < len(v.cities) {
		return v.cities[index].Name
	}
	return "#" + strconv.Itoa(index+1)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.form.SetWidth(width)
}

// FormActive reports whether the request form has focus.
func (v *View) FormActive() bool {
	return v.stage == StageForm
}

// Stage returns the current stage.
func (v *View) Stage() Stage {
	return v.stage
}

// Quote returns the last priced delivery.
func (v *View) Quote() domain.Delivery {
	return v.quote
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
