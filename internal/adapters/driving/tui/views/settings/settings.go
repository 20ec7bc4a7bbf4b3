// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionEdit
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
)

// item is one editable setting.
type item struct {
	key     string
	label   string
	boolean bool
	value   func(*domain.AppSettings) string
}

var items = []item{
	{
		key:   "storage.data_dir",
		label: "Data directory",
		value: func(s *domain.AppSettings) string { return s.Storage.DataDir },
	},
	{
		key:   "storage.routes_file",
		label: "Routes file",
		value: func(s *domain.AppSettings) string { return s.Storage.RoutesFile },
	},
	{
		key:   "storage.deliveries_file",
		label: "Deliveries file",
		value: func(s *domain.AppSettings) string { return s.Storage.DeliveriesFile },
	},
	{
		key:     "session.autoload",
		label:   "Load on start",
		boolean: true,
		value:   func(s *domain.AppSettings) string { return strconv.FormatBool(s.Session.AutoLoad) },
	},
	{
		key:     "session.autosave",
		label:   "Save on exit",
		boolean: true,
		value:   func(s *domain.AppSettings) string { return strconv.FormatBool(s.Session.AutoSave) },
	},
}

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	// Current settings
	settings *domain.AppSettings
	err      error
	saved    string

	// Navigation state
	section  Section
	selected int

	editInput textinput.Model

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	editInput := textinput.New()
	editInput.CharLimit = 256
	editInput.Width = 40

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		editInput:       editInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.saved = ""
			return v, nil
		}
		v.err = nil
		v.saved = msg.Key
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.section == SectionEdit {
			return v.handleEditKeys(msg)
		}
		return v.handleOverviewKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(items)-1 {
			v.selected++
		}
	case keyEnter:
		if v.settings == nil {
			return v, nil
		}
		it := items[v.selected]
		current := it.value(v.settings)
		if it.boolean {
			on, _ := strconv.ParseBool(current)
			return v, v.set(it.key, strconv.FormatBool(!on))
		}
		v.section = SectionEdit
		v.saved = ""
		v.editInput.SetValue(current)
		v.editInput.CursorEnd()
		return v, v.editInput.Focus()
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.section = SectionOverview
		v.editInput.Blur()
		return v, nil
	case keyEnter:
		v.section = SectionOverview
		v.editInput.Blur()
		return v, v.set(items[v.selected].key, strings.TrimSpace(v.editInput.Value()))
	}
	var cmd tea.Cmd
	v.editInput, cmd = v.editInput.Update(msg)
	return v, cmd
}

// set returns a command that stores one setting.
func (v *View) set(key, value string) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Key: key, Err: fmt.Errorf("settings service not available")}
		}
		return messages.SettingsSaved{Key: key, Err: v.settingsService.Set(key, value)}
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	b.WriteString(v.renderOverview())

	if v.section == SectionEdit {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(items[v.selected].label))
		b.WriteString("\n")
		b.WriteString(v.styles.InputField.Render(v.editInput.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.saved != "" {
		b.WriteString(v.styles.Success.Render(fmt.Sprintf("Saved %s. Storage changes apply on next start.", v.saved)))
		b.WriteString("\n\n")
	}
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder
	for i, it := range items {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		value := it.value(v.settings)
		if value == "" {
			value = "(default)"
		}
		line := fmt.Sprintf("%s%-18s %s", indicator, it.label, value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderHelp() string {
	if v.section == SectionEdit {
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	}
	return v.styles.Help.Render("[j/k] navigate  [enter] edit/toggle  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.err = nil
	v.saved = ""
	v.editInput.SetValue("")
	v.editInput.Blur()
}

// FormActive reports whether a value is being edited.
func (v *View) FormActive() bool {
	return v.section == SectionEdit
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
