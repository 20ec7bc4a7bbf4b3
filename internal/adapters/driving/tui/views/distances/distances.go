// Package distances provides the distance management view for the TUI.
package distances

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/components/table"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

var errNoService = errors.New("network service not available")

// View shows the distance table and sets pair distances.
type View struct {
	styles  *styles.Styles
	network driving.NetworkService

	table   domain.DistanceTable
	form    *input.Form
	editing bool
	notice  string
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new distance management view.
func NewView(s *styles.Styles, network driving.NetworkService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		network: network,
		form: input.NewForm(
			input.NewField(s, "From city #", "1", 2),
			input.NewField(s, "To city #", "2", 2),
			input.NewField(s, "Distance (km)", "115", 12),
		),
	}
}

// Init loads the distance table.
func (v *View) Init() tea.Cmd {
	return v.loadTable()
}

// Reset closes the form and clears any message.
func (v *View) Reset() {
	v.editing = false
	v.notice = ""
	v.err = nil
	v.form.Reset()
}

func (v *View) loadTable() tea.Cmd {
	return func() tea.Msg {
		if v.network == nil {
			return messages.DistancesLoaded{Err: errNoService}
		}
		t, err := v.network.DistanceTable(context.Background())
		return messages.DistancesLoaded{Table: t, Err: err}
	}
}

// Update handles messages for the distance view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.DistancesLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.table = msg.Table
		return v, nil

	case messages.DistanceSet:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.err = nil
		v.notice = msg.Message
		return v, v.loadTable()

	case tea.KeyMsg:
		if v.editing {
			return v.handleFormKey(msg)
		}
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "s", "enter":
			v.editing = true
			v.err = nil
			v.notice = ""
			return v, v.form.Reset()
		case "ctrl+r":
			return v, v.loadTable()
		}
	}

	return v, nil
}

func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.editing = false
		return v, nil
	case "enter":
		v.editing = false
		i, j, km, err := parseForm(v.form.Values())
		if err != nil {
			v.err = err
			return v, nil
		}
		return v, v.setDistance(i, j, km)
	}
	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	return v, cmd
}

// parseForm converts 1-based city numbers and a km value.
func parseForm(values []string) (i, j int, km float64, err error) {
	i, err = parseCity(values[0])
	if err != nil {
		return 0, 0, 0, err
	}
	j, err = parseCity(values[1])
	if err != nil {
		return 0, 0, 0, err
	}
	km, err = strconv.ParseFloat(values[2], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid distance %q: %w", values[2], domain.ErrInvalidValue)
	}
	return i, j, km, nil
}

func parseCity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid city number %q: %w", s, domain.ErrIndexOutOfRange)
	}
	return n - 1, nil
}

func (v *View) setDistance(i, j int, km float64) tea.Cmd {
	return func() tea.Msg {
		if v.network == nil {
			return messages.DistanceSet{Err: errNoService}
		}
		applied, err := v.network.SetDistance(context.Background(), i, j, km)
		if err != nil {
			return messages.DistanceSet{Err: err}
		}
		if !applied {
			return messages.DistanceSet{Message: "Distance from a city to itself is always 0; nothing changed."}
		}
		return messages.DistanceSet{
			Message: fmt.Sprintf("Distance %d <-> %d set to %s km", i+1, j+1, domain.FormatAmount(km)),
		}
	}
}

// View renders the table and the open form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Distance Management"))
	b.WriteString("\n\n")

	if len(v.table.Cities) == 0 {
		b.WriteString(v.styles.Muted.Render("No cities yet. Add cities under City Management first."))
		b.WriteString("\n")
	} else {
		b.WriteString(table.Distances(v.styles, v.table))
		b.WriteString("\n")
	}

	if v.editing {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Set distance"))
		b.WriteString("\n")
		b.WriteString(v.form.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err)))
		b.WriteString("\n\n")
	case v.notice != "":
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n\n")
	}

	if v.editing {
		b.WriteString(v.styles.Help.Render("[tab] next field  [enter] save  [esc] cancel"))
	} else {
		b.WriteString(v.styles.Help.Render("[s] set distance  [ctrl+r] reload  [esc] back"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.form.SetWidth(width)
}

// FormActive reports whether the form has focus.
func (v *View) FormActive() bool {
	return v.editing
}

// Table returns the loaded distance table.
func (v *View) Table() domain.DistanceTable {
	return v.table
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Notice returns the last success message.
func (v *View) Notice() string {
	return v.notice
}
