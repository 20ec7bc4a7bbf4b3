package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
	"github.com/custodia-labs/fleetbook/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive menu",
	Long: `Open the interactive menu. This is what running fleetbook with no
arguments does on a terminal.

Data is loaded when the menu opens and saved when it closes, unless
session.autoload or session.autosave is turned off in settings.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select / Submit
  Tab      - Next form field
  Esc      - Back / Cancel
  Ctrl+C   - Quit`,
	Annotations: map[string]string{annotationNoData: "true"},
	RunE:        runTUI,
}

// runApp runs the bubbletea program. Tests replace it.
var runApp = func(app *tui.App) error {
	return app.Run()
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if networkService == nil || deliveryService == nil || dataService == nil {
		return errors.New("services not configured")
	}

	ctx := cmd.Context()
	session := sessionSettings()

	if session.AutoLoad {
		logger.Section("Load")
		report, err := dataService.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}
		warnResets(cmd, report)
	}

	app, err := tui.NewApp(tui.NewPorts(networkService, deliveryService, dataService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	if err := runInteractive(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return finishSession(ctx, cmd, session)
}

// runInteractive sends verbose logs to a file while the program runs so
// they do not corrupt the screen.
func runInteractive(app *tui.App) error {
	if logger.IsVerbose() {
		path := logFile
		if path == "" {
			path = filepath.Join(os.TempDir(), "fleetbook.log")
		}
		restore, err := logger.RedirectToFile(path)
		if err != nil {
			return err
		}
		defer func() { _ = restore() }()
	}
	return runApp(app)
}

// finishSession saves changes made in the menu, or warns that they are
// being dropped.
func finishSession(ctx context.Context, cmd *cobra.Command, session domain.SessionSettings) error {
	if !dataService.Dirty() {
		return nil
	}
	if !session.AutoSave {
		cmd.PrintErrln("Warning: unsaved changes discarded (session.autosave is off).")
		return nil
	}
	logger.Section("Save")
	if err := dataService.Save(ctx); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}
	routes, deliveries := dataService.Locations()
	cmd.Printf("Saved %s and %s\n", routes, deliveries)
	return nil
}

// sessionSettings returns the configured session behaviour, falling back
// to the defaults when settings are unavailable.
func sessionSettings() domain.SessionSettings {
	defaults := domain.DefaultAppSettings().Session
	if settingsService == nil {
		return defaults
	}
	s, err := settingsService.Get()
	if err != nil || s == nil {
		logger.Warn("could not read settings, using defaults: %v", err)
		return defaults
	}
	return s.Session
}
