package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

func TestDistanceCmd_SetAndGet(t *testing.T) {
	setupServices(t)
	mustExecute(t, "city", "add", "Colombo")
	mustExecute(t, "city", "add", "Kandy")

	out := mustExecute(t, "distance", "set", "1", "2", "115")
	assert.Equal(t, "Distance Colombo <-> Kandy set to 115.00 km\n", out)

	// Symmetric in both directions.
	out = mustExecute(t, "distance", "get", "2", "1")
	assert.Equal(t, "Kandy <-> Colombo: 115.00 km\n", out)
}

func TestDistanceCmd_SetSelfIsNoop(t *testing.T) {
	setupServices(t)
	seedRoute(t)

	out := mustExecute(t, "distance", "set", "2", "2", "40")
	assert.Contains(t, out, "nothing changed")

	out = mustExecute(t, "distance", "get", "2", "2")
	assert.Contains(t, out, "Kandy <-> Kandy: 0.00 km")
}

func TestDistanceCmd_SetErrors(t *testing.T) {
	setupServices(t)
	seedRoute(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"negative distance", []string{"1", "2", "-5"}, domain.ErrInvalidValue},
		{"not a number", []string{"1", "2", "far"}, domain.ErrInvalidValue},
		{"unknown city", []string{"1", "9", "10"}, domain.ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"distance", "set", "--"}, tt.args...)...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	out := mustExecute(t, "distance", "get", "1", "2")
	assert.Contains(t, out, "115.00 km")
}

func TestDistanceCmd_Table(t *testing.T) {
	setupServices(t)
	seedRoute(t)

	out := mustExecute(t, "distance", "table")

	assert.Contains(t, out, "1. Colombo")
	assert.Contains(t, out, "3. Galle")
	assert.Contains(t, out, "115.00")
	assert.Contains(t, out, "0.00")
	assert.Contains(t, out, "-")
}

func TestDistanceCmd_TableEmpty(t *testing.T) {
	setupServices(t)

	out := mustExecute(t, "distance", "table")

	assert.Equal(t, "No cities yet.\n", out)
}

func TestDistanceCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	err := runDistanceTable(distanceTableCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "network service not configured")
}
