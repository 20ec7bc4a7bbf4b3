package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/views/cities"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/views/delivery"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/views/distances"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/views/reports"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/fleetbook/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	status *status.Bar

	menuView      *menu.View
	citiesView    *cities.View
	distancesView *distances.View
	deliveryView  *delivery.View
	reportsView   *reports.View
	settingsView  *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		status:        status.NewBar(s, km),
		menuView:      menu.NewView(s),
		citiesView:    cities.NewView(s, ports.Network),
		distancesView: distances.NewView(s, ports.Network),
		deliveryView:  delivery.NewView(s, ports.Network, ports.Delivery),
		reportsView:   reports.NewView(s, ports.Network, ports.Delivery),
		settingsView:  settings.NewView(s, ports.Settings),
		currentView:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("fleetbook")
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		cmd = a.forward(msg)

	case messages.ViewChanged:
		a.status.Clear()
		cmd = a.enter(msg.View)

	case messages.SaveRequested:
		a.status.SetState(status.StateWorking)
		a.status.SetMessage("Saving...")
		cmd = a.save()

	case messages.LoadRequested:
		a.status.SetState(status.StateWorking)
		a.status.SetMessage("Loading...")
		cmd = a.load()

	case messages.DataSaved:
		if msg.Err != nil {
			a.setError(msg.Err)
		} else {
			routes, deliveries := a.ports.Data.Locations()
			a.status.SetSuccess(fmt.Sprintf("Saved %s and %s", routes, deliveries))
		}

	case messages.DataLoaded:
		if msg.Err != nil {
			a.setError(msg.Err)
		} else {
			a.status.SetSuccess(describeLoad(msg.Report))
		}

	case messages.ErrorOccurred:
		a.setError(msg.Err)

	case messages.Quit:
		return a, tea.Quit

	default:
		cmd = a.forward(msg)
	}

	a.syncStatus()
	return a, cmd
}

// forward sends msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewCities:
		a.citiesView, cmd = a.citiesView.Update(msg)
	case messages.ViewDistances:
		a.distancesView, cmd = a.distancesView.Update(msg)
	case messages.ViewDelivery:
		a.deliveryView, cmd = a.deliveryView.Update(msg)
	case messages.ViewReports:
		a.reportsView, cmd = a.reportsView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		if k, ok := msg.(tea.KeyMsg); ok && (k.Type == tea.KeyEsc || k.String() == "q") {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

// enter switches to view and runs its initial load.
func (a *App) enter(view messages.ViewType) tea.Cmd {
	a.currentView = view
	switch view {
	case messages.ViewCities:
		a.citiesView.Reset()
		return a.citiesView.Init()
	case messages.ViewDistances:
		a.distancesView.Reset()
		return a.distancesView.Init()
	case messages.ViewDelivery:
		a.deliveryView.Reset()
		return a.deliveryView.Init()
	case messages.ViewReports:
		return a.reportsView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	case messages.ViewMenu, messages.ViewHelp:
	}
	return nil
}

func (a *App) save() tea.Cmd {
	ctx := a.ctx
	data := a.ports.Data
	return func() tea.Msg {
		return messages.DataSaved{Err: data.Save(ctx)}
	}
}

func (a *App) load() tea.Cmd {
	ctx := a.ctx
	data := a.ports.Data
	return func() tea.Msg {
		report, err := data.Load(ctx)
		return messages.DataLoaded{Report: report, Err: err}
	}
}

// describeLoad summarises a load, naming any store that was reset.
func describeLoad(r *driving.LoadReport) string {
	if r == nil {
		return "Loaded"
	}
	out := fmt.Sprintf("Loaded %d cities and %d deliveries", r.Cities, r.Deliveries)
	var reset []string
	if r.RoutesReset {
		reset = append(reset, "routes")
	}
	if r.DeliveriesReset {
		reset = append(reset, "deliveries")
	}
	if len(reset) > 0 {
		out += fmt.Sprintf(" (unreadable %s reset to empty)", strings.Join(reset, " and "))
	}
	return out
}

func (a *App) setError(err error) {
	a.err = err
	a.status.SetError(err)
}

// syncStatus reflects unsaved changes and form focus in the status bar.
func (a *App) syncStatus() {
	a.status.SetDirty(a.ports.Data.Dirty())

	var form bool
	switch a.currentView {
	case messages.ViewCities:
		form = a.citiesView.FormActive()
	case messages.ViewDistances:
		form = a.distancesView.FormActive()
	case messages.ViewDelivery:
		form = a.deliveryView.FormActive()
	case messages.ViewSettings:
		form = a.settingsView.FormActive()
	case messages.ViewMenu, messages.ViewReports, messages.ViewHelp:
	}
	a.status.SetFormActive(form)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewCities:
		body = a.citiesView.View()
	case messages.ViewDistances:
		body = a.distancesView.View()
	case messages.ViewDelivery:
		body = a.deliveryView.View()
	case messages.ViewReports:
		body = a.reportsView.View()
	case messages.ViewSettings:
		body = a.settingsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}

	return body + "\n\n" + a.status.View()
}

// viewHelp renders the keybindings.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(a.styles.Label.Render(h.Key))
			b.WriteString(a.styles.Normal.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Muted.Render(
		"City numbers are the 1-based positions shown in City Management.\n" +
			"Vehicles: 1 Van, 2 Truck, 3 Lorry (or type the name).\n" +
			"A city that appears in a recorded delivery cannot be removed."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// leave room for the status bar
	body := height - 2
	a.menuView.SetDimensions(width, body)
	a.citiesView.SetDimensions(width, body)
	a.distancesView.SetDimensions(width, body)
	a.deliveryView.SetDimensions(width, body)
	a.reportsView.SetDimensions(width, body)
	a.settingsView.SetDimensions(width, body)
	a.status.SetWidth(width)
}
