package cli

import (
	"bytes"
	"testing"

	"github.com/custodia-labs/fleetbook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driven"
	"github.com/custodia-labs/fleetbook/internal/core/services"
)

// testEnv holds the stores behind the services a test configured.
type testEnv struct {
	routes     driven.RouteStore
	deliveries driven.DeliveryStore
	config     *memory.ConfigStore
	session    *services.Session
}

// setupServices wires real services over in-memory stores and restores
// the package state when the test ends.
func setupServices(t *testing.T) *testEnv {
	t.Helper()
	return setupServicesWith(t, memory.NewRouteStore(), memory.NewDeliveryStore())
}

func setupServicesWith(t *testing.T, routes driven.RouteStore, deliveries driven.DeliveryStore) *testEnv {
	t.Helper()

	env := &testEnv{
		routes:     routes,
		deliveries: deliveries,
		config:     memory.NewConfigStore(),
		session:    services.NewSession(nil),
	}
	SetServices(&Services{
		Network:  services.NewNetworkService(env.session),
		Delivery: services.NewDeliveryService(env.session),
		Data:     services.NewDataService(env.session, routes, deliveries),
		Settings: services.NewSettingsService(env.config),
	})

	previous := serviceBuilder
	serviceBuilder = nil
	t.Cleanup(func() {
		SetServices(nil)
		serviceBuilder = previous
		dataRoutesOnly, dataDeliveriesOnly = false, false
	})
	return env
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// mustExecute runs the root command and fails the test on error.
func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, stderr, err := execute(t, args...)
	if err != nil {
		t.Fatalf("fleetbook %v: %v\n%s", args, err, stderr)
	}
	return out
}

// seedRoute adds Colombo and Kandy 115 km apart, and Galle with no routes.
func seedRoute(t *testing.T) {
	t.Helper()
	mustExecute(t, "city", "add", "Colombo")
	mustExecute(t, "city", "add", "Kandy")
	mustExecute(t, "city", "add", "Galle")
	mustExecute(t, "distance", "set", "1", "2", "115")
}
