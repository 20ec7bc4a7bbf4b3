package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change where data is stored and how the interactive menu
loads and saves it.

Keys:
  storage.data_dir         directory holding the store files
  storage.routes_file      city and distance file name
  storage.deliveries_file  delivery ledger file name
  session.autoload         load data when the menu opens (true/false)
  session.autosave         save data when the menu closes (true/false)`,
	Annotations: map[string]string{annotationNoData: "true"},
	RunE:        runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	dir := settings.Storage.DataDir
	if dir == "" {
		dir = "(config directory)"
	}
	cmd.Printf("  Data directory: %s\n", dir)
	cmd.Printf("  Routes file: %s\n", settings.Storage.RoutesFile)
	cmd.Printf("  Deliveries file: %s\n", settings.Storage.DeliveriesFile)
	cmd.Println()

	cmd.Println("[Session]")
	cmd.Printf("  Load on start: %s\n", yesNo(settings.Session.AutoLoad))
	cmd.Printf("  Save on exit: %s\n", yesNo(settings.Session.AutoSave))

	if dataService != nil {
		routes, deliveries := dataService.Locations()
		cmd.Println()
		cmd.Println("[Active files]")
		cmd.Printf("  %s\n  %s\n", routes, deliveries)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}

	cmd.Printf("%s = %s\n", args[0], strconv.Quote(args[1]))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
