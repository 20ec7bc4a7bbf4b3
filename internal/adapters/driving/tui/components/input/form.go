package input

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Form is an ordered set of fields with one focused at a time.
// Submitting and cancelling are left to the owning view.
type Form struct {
	fields []*Field
	focus  int
}

// NewForm creates a form and focuses its first field.
func NewForm(fields ...*Field) *Form {
	f := &Form{fields: fields}
	f.focusField(0)
	return f
}

// Init starts the cursor blinking.
func (f *Form) Init() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focus].Init()
}

// Update moves focus on tab, shift+tab, up and down and sends every
// other message to the focused field.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			return f, f.focusField((f.focus + 1) % len(f.fields))
		case "shift+tab", "up":
			return f, f.focusField((f.focus - 1 + len(f.fields)) % len(f.fields))
		}
	}
	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return f, cmd
}

func (f *Form) focusField(i int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	for _, field := range f.fields {
		field.Blur()
	}
	f.focus = i
	return f.fields[i].Focus()
}

// View renders one field per line.
func (f *Form) View() string {
	lines := make([]string, len(f.fields))
	for i, field := range f.fields {
		lines[i] = field.View()
	}
	return strings.Join(lines, "\n")
}

// Values returns the trimmed field values in order.
func (f *Form) Values() []string {
	out := make([]string, len(f.fields))
	for i, field := range f.fields {
		out[i] = strings.TrimSpace(field.Value())
	}
	return out
}

// Field returns the field at i.
func (f *Form) Field(i int) *Field {
	return f.fields[i]
}

// Focus returns the index of the focused field.
func (f *Form) Focus() int {
	return f.focus
}

// SetWidth sizes every field.
func (f *Form) SetWidth(width int) {
	for _, field := range f.fields {
		field.SetWidth(width)
	}
}

// Reset clears every field and focuses the first.
func (f *Form) Reset() tea.Cmd {
	for _, field := range f.fields {
		field.Reset()
	}
	return f.focusField(0)
}
