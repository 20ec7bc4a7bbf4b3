package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataCmd_Save(t *testing.T) {
	env := setupServices(t)
	mustExecute(t, "city", "add", "Colombo")

	out := mustExecute(t, "data", "save")

	assert.Equal(t, "Saved :memory:\nSaved :memory:\n", out)
	network, err := env.routes.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, network.Count())
}

func TestDataCmd_Load(t *testing.T) {
	setupServices(t)
	seedRoute(t)
	mustExecute(t, "delivery", "new", "1", "2", "van", "500")

	out := mustExecute(t, "data", "load")

	assert.Contains(t, out, "Loaded 3 cities from :memory:")
	assert.Contains(t, out, "Loaded 1 deliveries from :memory:")
}

func TestDataCmd_Save_RoutesOnly(t *testing.T) {
	env := setupServices(t)
	mustExecute(t, "city", "add", "Colombo")

	out := mustExecute(t, "data", "save", "--routes")

	assert.Equal(t, "Saved :memory:\n", out)
	network, err := env.routes.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, network.Count())
}

func TestDataCmd_Load_Partial(t *testing.T) {
	setupServices(t)
	seedRoute(t)
	mustExecute(t, "delivery", "new", "1", "2", "van", "500")

	out := mustExecute(t, "data", "load", "--deliveries")
	assert.Equal(t, "Loaded 1 deliveries from :memory:\n", out)

	dataDeliveriesOnly = false
	out = mustExecute(t, "data", "load", "--routes")
	assert.Equal(t, "Loaded 3 cities from :memory:\n", out)
}

func TestDataCmd_BothScopesRejected(t *testing.T) {
	setupServices(t)

	_, _, err := execute(t, "data", "load", "--routes", "--deliveries")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be used together")
}

func TestDataCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	err := runDataSave(dataSaveCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data service not configured")

	err = runDataLoad(dataLoadCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data service not configured")
}
