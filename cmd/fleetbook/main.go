// Command fleetbook keeps a roster of cities, the road distances between
// them and a ledger of priced deliveries.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/fleetbook/internal/adapters/driven/config/file"
	storefile "github.com/custodia-labs/fleetbook/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/fleetbook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/cli"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driven"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
	"github.com/custodia-labs/fleetbook/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	settings := services.NewSettingsService(configStore)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{Settings: settings})
	cli.SetServiceBuilder(newServiceBuilder(filepath.Dir(configStore.Path()), settings))

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// newServiceBuilder wires the stores and services once the global flags
// are parsed. configDir holds config.toml, the verbose log and, unless
// configured otherwise, both store files.
func newServiceBuilder(configDir string, settings driving.SettingsService) cli.ServiceBuilder {
	return func(opts cli.Options) (*cli.Services, error) {
		routes, deliveries, err := openStores(configDir, settings, opts)
		if err != nil {
			return nil, err
		}

		session := services.NewSession(nil)
		return &cli.Services{
			Network:  services.NewNetworkService(session),
			Delivery: services.NewDeliveryService(session),
			Data:     services.NewDataService(session, routes, deliveries),
			Settings: settings,
			LogFile:  filepath.Join(configDir, "fleetbook.log"),
		}, nil
	}
}

func openStores(
	configDir string,
	settings driving.SettingsService,
	opts cli.Options,
) (driven.RouteStore, driven.DeliveryStore, error) {
	if opts.InMemory {
		return memory.NewRouteStore(), memory.NewDeliveryStore(), nil
	}

	storage := domain.DefaultAppSettings().Storage
	if settings != nil {
		s, err := settings.Get()
		if err != nil {
			return nil, nil, fmt.Errorf("read settings: %w", err)
		}
		storage = s.Storage
	}

	switch {
	case opts.DataDir != "":
		storage.DataDir = opts.DataDir
	case storage.DataDir == "":
		storage.DataDir = configDir
	}

	return storefile.NewRouteStore(storage.RoutesPath()),
		storefile.NewDeliveryStore(storage.DeliveriesPath()),
		nil
}
