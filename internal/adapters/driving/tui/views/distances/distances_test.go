package distances

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/services"
)

func newTestView(t *testing.T, names ...string) (*View, *services.NetworkService) {
	t.Helper()
	network := services.NewNetworkService(services.NewSession(nil))
	for _, name := range names {
		_, err := network.AddCity(context.Background(), name)
		require.NoError(t, err)
	}
	view := NewView(nil, network)
	view.SetDimensions(100, 30)
	run(view, view.Init())
	return view, network
}

func run(v *View, cmd tea.Cmd) {
	for cmd != nil {
		_, cmd = v.Update(cmd())
	}
}

// fill opens the form and enters one value per field.
func fill(v *View, values ...string) {
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	for i, value := range values {
		v.form.Field(i).SetValue(value)
	}
}

func submit(v *View) {
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(v, cmd)
}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil)

	require.NotNil(t, view)
	assert.False(t, view.FormActive())
}

func TestView_Init_LoadsTable(t *testing.T) {
	view, _ := newTestView(t, "Colombo", "Kandy")

	tbl := view.Table()
	assert.Equal(t, []string{"Colombo", "Kandy"}, tbl.Cities)
	assert.Equal(t, "-", tbl.Cells[0][1])
	assert.Equal(t, "0.00", tbl.Cells[1][1])
}

func TestView_SetDistance(t *testing.T) {
	view, network := newTestView(t, "Colombo", "Kandy")

	fill(view, "1", "2", "115")
	require.True(t, view.FormActive())
	submit(view)

	assert.NoError(t, view.Err())
	assert.Equal(t, "Distance 1 <-> 2 set to 115.00 km", view.Notice())
	assert.Equal(t, "115.00", view.Table().Cells[1][0])

	km, set, err := network.GetDistance(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.True(t, set)
	assert.InDelta(t, 115.0, km, 1e-9)
}

func TestView_SetDistance_SameCity(t *testing.T) {
	view, _ := newTestView(t, "Colombo", "Kandy")

	fill(view, "2", "2", "50")
	submit(view)

	assert.NoError(t, view.Err())
	assert.Contains(t, view.Notice(), "nothing changed")
	assert.Equal(t, "0.00", view.Table().Cells[1][1])
}

func TestView_SetDistance_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   error
	}{
		{"not a number", []string{"x", "2", "10"}, domain.ErrIndexOutOfRange},
		{"out of range", []string{"1", "9", "10"}, domain.ErrIndexOutOfRange},
		{"negative km", []string{"1", "2", "-4"}, domain.ErrInvalidValue},
		{"bad km", []string{"1", "2", "far"}, domain.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, _ := newTestView(t, "Colombo", "Kandy")

			fill(view, tt.values...)
			submit(view)

			assert.ErrorIs(t, view.Err(), tt.want)
			assert.Equal(t, "-", view.Table().Cells[0][1])
			assert.Contains(t, view.View(), "Error:")
		})
	}
}

func TestView_FormEscCancels(t *testing.T) {
	view, _ := newTestView(t, "Colombo", "Kandy")

	fill(view, "1", "2", "115")
	view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, view.FormActive())
	assert.Equal(t, "-", view.Table().Cells[0][1])
}

func TestView_EscReturnsToMenu(t *testing.T) {
	view, _ := newTestView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_View(t *testing.T) {
	view, _ := newTestView(t, "Colombo", "Kandy")

	output := view.View()

	assert.Contains(t, output, "Distance Management")
	assert.Contains(t, output, "1. Colombo")
	assert.Contains(t, output, "[s] set distance")
}

func TestView_View_Empty(t *testing.T) {
	view, _ := newTestView(t)

	assert.Contains(t, view.View(), "No cities yet.")
}

func TestView_View_Form(t *testing.T) {
	view, _ := newTestView(t, "Colombo")

	fill(view)

	output := view.View()
	assert.Contains(t, output, "From city #")
	assert.Contains(t, output, "Distance (km)")
}
