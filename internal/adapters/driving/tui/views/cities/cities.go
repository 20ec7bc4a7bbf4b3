// Package cities provides the city management view for the TUI.
package cities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

var errNoService = errors.New("network service not available")

type mode int

const (
	modeList mode = iota
	modeAdd
	modeRename
)

// View lists cities and edits the registry.
type View struct {
	styles  *styles.Styles
	network driving.NetworkService

	cities   []domain.City
	selected int
	mode     mode
	form     *input.Form
	notice   string
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new city management view.
func NewView(s *styles.Styles, network driving.NetworkService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		network: network,
		form:    input.NewForm(input.NewField(s, "City name", "e.g. Colombo", domain.MaxCityNameLen)),
	}
}

// Init loads the registry.
func (v *View) Init() tea.Cmd {
	return v.loadCities()
}

// Reset returns the view to the list and clears any message.
func (v *View) Reset() {
	v.mode = modeList
	v.notice = ""
	v.err = nil
	v.form.Reset()
}

func (v *View) loadCities() tea.Cmd {
	return func() tea.Msg {
		if v.network == nil {
			return messages.CitiesLoaded{Err: errNoService}
		}
		cities, err := v.network.ListCities(context.Background())
		return messages.CitiesLoaded{Cities: cities, Err: err}
	}
}

// Update handles messages for the city view.
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
		if v.selected >= len(v.cities) {
			v.selected = max(len(v.cities)-1, 0)
		}
		return v, nil

	case messages.CityChanged:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.err = nil
		v.notice = msg.Message
		return v, v.loadCities()

	case tea.KeyMsg:
		if v.mode != modeList {
			return v.handleFormKey(msg)
		}
		return v.handleListKey(msg)
	}

	return v, nil
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.cities)-1 {
			v.selected++
		}
	case "a":
		return v, v.openForm(modeAdd, "")
	case "r", "enter":
		if city, ok := v.current(); ok {
			return v, v.openForm(modeRename, city.Name)
		}
	case "d", "delete":
		if city, ok := v.current(); ok {
			return v, v.removeCity(city.Index)
		}
	case "ctrl+r":
		return v, v.loadCities()
	}
	return v, nil
}

func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = modeList
		return v, nil
	case "enter":
		name := v.form.Values()[0]
		m := v.mode
		v.mode = modeList
		if m == modeAdd {
			return v, v.addCity(name)
		}
		if city, ok := v.current(); ok {
			return v, v.renameCity(city.Index, name)
		}
		return v, nil
	}
	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	return v, cmd
}

func (v *View) openForm(m mode, value string) tea.Cmd {
	v.mode = m
	v.err = nil
	v.notice = ""
	cmd := v.form.Reset()
	v.form.Field(0).SetValue(value)
	return cmd
}

func (v *View) current() (domain.City, bool) {
	if v.selected < 0 || v.selected >= len(v.cities) {
		return domain.City{}, false
	}
	return v.cities[v.selected], true
}

func (v *View) addCity(name string) tea.Cmd {
	return func() tea.Msg {
		if v.network == nil {
			return messages.CityChanged{Err: errNoService}
		}
		city, err := v.network.AddCity(context.Background(), name)
		if err != nil {
			return messages.CityChanged{Err: err}
		}
		return messages.CityChanged{Message: fmt.Sprintf("Added city %s", city)}
	}
}

func (v *View) renameCity(index int, name string) tea.Cmd {
	return func() tea.Msg {
		if v.network == nil {
			return messages.CityChanged{Err: errNoService}
		}
		if err := v.network.RenameCity(context.Background(), index, name); err != nil {
			return messages.CityChanged{Err: err}
		}
		return messages.CityChanged{Message: fmt.Sprintf("Renamed city %d to %s", index+1, name)}
	}
}

func (v *View) removeCity(index int) tea.Cmd {
	return func() tea.Msg {
		if v.network == nil {
			return messages.CityChanged{Err: errNoService}
		}
		city, err := v.network.RemoveCity(context.Background(), index)
		if err != nil {
			return messages.CityChanged{Err: err}
		}
		return messages.CityChanged{Message: fmt.Sprintf("Removed city %s", city.Name)}
	}
}

// View renders the city list or the open form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("City Management"))
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %d of %d", len(v.cities), domain.MaxCities)))
	b.WriteString("\n\n")

	if len(v.cities) == 0 {
		b.WriteString(v.styles.Muted.Render("No cities yet."))
		b.WriteString("\n")
	}
	for i, c := range v.cities {
		line := fmt.Sprintf("%2d. %s", c.DisplayIndex(), c.Name)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	switch v.mode {
	case modeAdd:
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Add city"))
		b.WriteString("\n")
		b.WriteString(v.form.View())
		b.WriteString("\n")
	case modeRename:
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Rename city %d", v.selected+1)))
		b.WriteString("\n")
		b.WriteString(v.form.View())
		b.WriteString("\n")
	case modeList:
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

	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderHelp() string {
	if v.mode != modeList {
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	}
	return v.styles.Help.Render("[a] add  [r] rename  [d] remove  [ctrl+r] reload  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.form.SetWidth(width)
}

// FormActive reports whether a form has focus.
func (v *View) FormActive() bool {
	return v.mode != modeList
}

// Cities returns the loaded registry.
func (v *View) Cities() []domain.City {
	return v.cities
}

// SelectedIndex returns the highlighted row.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Notice returns the last success message.
func (v *View) Notice() string {
	return v.notice
}
