// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/styles"
)

// Item is one numbered menu entry. Selecting it sends Msg when set,
// quits when Quit is set, and otherwise opens View.
type Item struct {
	Label string
	View  messages.ViewType
	Msg   tea.Msg
	Quit  bool
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "City Management", View: messages.ViewCities},
			{Label: "Distance Management", View: messages.ViewDistances},
			{Label: "New Delivery", View: messages.ViewDelivery},
			{Label: "Reports", View: messages.ViewReports},
			{Label: "Save Data", Msg: messages.SaveRequested{}},
			{Label: "Load Data", Msg: messages.LoadRequested{}},
			{Label: "Settings", View: messages.ViewSettings},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Exit", Quit: true},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "home", "g":
			v.selected = 0
			return v, nil

		case "end", "G":
			v.selected = len(v.items) - 1
			return v, nil

		case "enter":
			return v, v.choose(v.items[v.selected])

		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			n := int(msg.String()[0] - '1')
			if n >= len(v.items) {
				return v, nil
			}
			v.selected = n
			return v, v.choose(v.items[n])

		case "q":
			return v, func() tea.Msg { return messages.Quit{} }
		}
	}

	return v, nil
}

func (v *View) choose(item Item) tea.Cmd {
	switch {
	case item.Quit:
		return func() tea.Msg { return messages.Quit{} }
	case item.Msg != nil:
		out := item.Msg
		return func() tea.Msg { return out }
	default:
		return func() tea.Msg {
			return messages.ViewChanged{View: item.View}
		}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Fleetbook"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Routes, Pricing & Deliveries"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == v.selected {
			b.WriteString("> " + v.styles.Title.Render(label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] navigate  [1-9] choose  [enter] select  [q] exit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu items in display order.
func (v *View) Items() []Item {
	return v.items
}
