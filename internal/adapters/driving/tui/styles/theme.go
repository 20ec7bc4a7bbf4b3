// Package styles provides the colour palette and lipgloss styles for the
// interactive menu.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette.
type Theme struct {
	// Primary marks titles, focused fields and the menu cursor.
	Primary lipgloss.Color

	// Secondary marks subtitles and table headers.
	Secondary lipgloss.Color

	// Surface is the status bar background.
	Surface lipgloss.Color

	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Money highlights charges and profit.
	Money lipgloss.Color
}

// DefaultTheme returns the road-sign palette used unless another theme is
// supplied.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#F59E0B"), // amber
		Secondary:  lipgloss.Color("#38BDF8"), // sky
		Surface:    lipgloss.Color("#181825"),
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Border:     lipgloss.Color("#45475A"),
		Success:    lipgloss.Color("#A6E3A1"),
		Warning:    lipgloss.Color("#F9E2AF"),
		Error:      lipgloss.Color("#F38BA8"),
		Money:      lipgloss.Color("#94E2D5"), // teal
	}
}

// Styles holds the styles shared by every view.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Unsaved is the status bar marker for a workspace with changes that
	// have not been written to the stores.
	Unsaved lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style

	// Unset renders "-" cells for city pairs without a distance.
	Unset lipgloss.Style

	// Label is the fixed-width left column of a figure list.
	Label lipgloss.Style

	// Figure renders a quantity (km, kg, litres, hours).
	Figure lipgloss.Style

	// Money renders an amount charged or earned.
	Money lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:   lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:    lipgloss.NewStyle().Foreground(theme.Muted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Surface).
			Background(theme.Primary),
		Help: lipgloss.NewStyle().Foreground(theme.Muted),

		Error:   lipgloss.NewStyle().Foreground(theme.Error),
		Success: lipgloss.NewStyle().Foreground(theme.Success),
		Warning: lipgloss.NewStyle().Foreground(theme.Warning),
		Unsaved: lipgloss.NewStyle().Bold(true).Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Surface).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Padding(0, 1),
		TableCell:   lipgloss.NewStyle().Foreground(theme.Foreground).Padding(0, 1).Align(lipgloss.Right),
		Unset:       lipgloss.NewStyle().Foreground(theme.Muted).Padding(0, 1).Align(lipgloss.Center),

		Label:  lipgloss.NewStyle().Foreground(theme.Muted).Width(18),
		Figure: lipgloss.NewStyle().Foreground(theme.Foreground),
		Money:  lipgloss.NewStyle().Bold(true).Foreground(theme.Money),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette these styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
