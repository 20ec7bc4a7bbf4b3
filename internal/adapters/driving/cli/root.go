// Package cli implements the fleetbook command tree.
//
// Running fleetbook with no arguments on a terminal opens the interactive
// menu. Subcommands cover the same operations for scripting; city
// indices on the command line are the 1-based numbers shown by
// "city list".
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
	"github.com/custodia-labs/fleetbook/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose  bool
	dataDir  string
	inMemory bool
)

// Services configured by the composition root.
var (
	networkService  driving.NetworkService
	deliveryService driving.DeliveryService
	dataService     driving.DataService
	settingsService driving.SettingsService

	// logFile receives verbose output while the interactive menu owns
	// the terminal.
	logFile string
)

// Services holds the driving ports the commands call.
type Services struct {
	Network  driving.NetworkService
	Delivery driving.DeliveryService
	Data     driving.DataService
	Settings driving.SettingsService

	// LogFile is where --verbose output goes during an interactive
	// session. Empty means the system temp directory.
	LogFile string
}

// Options carries the global flags to a ServiceBuilder.
type Options struct {
	DataDir  string
	InMemory bool
}

// ServiceBuilder wires services once flags are parsed.
type ServiceBuilder func(opts Options) (*Services, error)

var serviceBuilder ServiceBuilder

// annotationNoData marks commands that do not load or save the stores.
const annotationNoData = "fleetbook.no-data"

var rootCmd = &cobra.Command{
	Use:   "fleetbook",
	Short: "Plan and price deliveries between cities",
	Long: `fleetbook keeps a list of cities, the road distances between them and a
ledger of priced deliveries.

Run without arguments to open the interactive menu. Data is loaded from
routes.txt and deliveries.txt at start and saved again on exit.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	// Hooks are assigned here to avoid an initialization cycle through usesData.
	rootCmd.PersistentPreRunE = preRun
	rootCmd.PersistentPostRunE = postRun
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding routes.txt and deliveries.txt")
	rootCmd.PersistentFlags().BoolVar(&inMemory, "in-memory", false, "keep data in memory only; nothing is read or written")
}

// SetServices configures the services used by all commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	networkService = s.Network
	deliveryService = s.Delivery
	dataService = s.Data
	settingsService = s.Settings
	logFile = s.LogFile
}

// SetServiceBuilder defers wiring until the global flags are known.
func SetServiceBuilder(b ServiceBuilder) {
	serviceBuilder = b
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func preRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if serviceBuilder != nil {
		services, err := serviceBuilder(Options{DataDir: dataDir, InMemory: inMemory})
		if err != nil {
			return fmt.Errorf("failed to initialise: %w", err)
		}
		SetServices(services)
	}

	if !usesData(cmd) {
		return nil
	}
	if dataService == nil {
		return errors.New("data service not configured")
	}

	logger.Section("Load")
	report, err := dataService.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}
	warnResets(cmd, report)
	return nil
}

func postRun(cmd *cobra.Command, _ []string) error {
	if !usesData(cmd) || dataService == nil || !dataService.Dirty() {
		return nil
	}
	logger.Section("Save")
	if err := dataService.Save(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}
	return nil
}

// usesData reports whether cmd works on the stored cities and deliveries.
// The root command manages its own session in the interactive menu.
func usesData(cmd *cobra.Command) bool {
	if cmd == rootCmd {
		return false
	}
	for c := cmd; c != nil && c != rootCmd; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoData]; ok {
			return false
		}
	}
	return true
}

// warnResets tells the user about a store that could not be read.
func warnResets(cmd *cobra.Command, report *driving.LoadReport) {
	if report == nil {
		return
	}
	routes, deliveries := dataService.Locations()
	if report.RoutesReset {
		cmd.PrintErrf("Warning: %s could not be read; starting with no cities.\n", routes)
	}
	if report.DeliveriesReset {
		cmd.PrintErrf("Warning: %s could not be read; starting with no deliveries.\n", deliveries)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("not a terminal: run 'fleetbook --help' to see the scriptable commands")
	}
	return runTUI(cmd, args)
}
