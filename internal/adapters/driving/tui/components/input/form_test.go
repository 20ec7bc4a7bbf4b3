package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForm() *Form {
	return NewForm(
		NewField(nil, "From", "", 3),
		NewField(nil, "To", "", 3),
		NewField(nil, "Km", "", 10),
	)
}

func typeForm(f *Form, text string) {
	for _, r := range text {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewForm_FocusesFirstField(t *testing.T) {
	form := newTestForm()

	assert.Equal(t, 0, form.Focus())
	assert.True(t, form.Field(0).Focused())
	assert.False(t, form.Field(1).Focused())
	assert.NotNil(t, form.Init())
}

func TestForm_TabCyclesFocus(t *testing.T) {
	form := newTestForm()

	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, form.Focus())
	assert.True(t, form.Field(1).Focused())
	assert.False(t, form.Field(0).Focused())

	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, form.Focus())

	form.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, form.Focus())
}

func TestForm_TypesIntoFocusedField(t *testing.T) {
	form := newTestForm()

	typeForm(form, "1")
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeForm(form, "2")
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeForm(form, "115 ")

	assert.Equal(t, []string{"1", "2", "115"}, form.Values())
}

func TestForm_Reset(t *testing.T) {
	form := newTestForm()
	typeForm(form, "1")
	form.Update(tea.KeyMsg{Type: tea.KeyTab})

	form.Reset()

	assert.Equal(t, []string{"", "", ""}, form.Values())
	assert.Equal(t, 0, form.Focus())
}

func TestForm_View(t *testing.T) {
	form := newTestForm()
	form.SetWidth(60)

	view := form.View()

	require.NotEmpty(t, view)
	assert.Contains(t, view, "From")
	assert.Contains(t, view, "Km")
}

func TestForm_Empty(t *testing.T) {
	form := NewForm()

	assert.Nil(t, form.Init())
	updated, cmd := form.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Same(t, form, updated)
	assert.Nil(t, cmd)
	assert.Empty(t, form.Values())
}
