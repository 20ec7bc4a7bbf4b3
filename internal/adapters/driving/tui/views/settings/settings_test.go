package settings

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fleetbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// MockSettingsService is a mock implementation of driving.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsService) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockSettingsService) Keys() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	args := m.Called()
	return args.Get(0).(domain.AppSettings)
}

// Helper function to create test settings.
func testSettings() *domain.AppSettings {
	s := domain.DefaultAppSettings()
	s.Storage.DataDir = "/var/lib/fleetbook"
	return &s
}

// loadedView returns a view that has received testSettings.
func loadedView(service *MockSettingsService) *View {
	view := NewView(nil, service)
	view.SetDimensions(100, 30)
	view.Update(messages.SettingsLoaded{Settings: testSettings()})
	return view
}

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()
	mockService := new(MockSettingsService)

	view := NewView(s, mockService)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Equal(t, mockService, view.settingsService)
	assert.Equal(t, SectionOverview, view.section)
	assert.Equal(t, 0, view.selected)
	assert.False(t, view.FormActive())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, new(MockSettingsService))

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Init_LoadSettings_Success(t *testing.T) {
	mockService := new(MockSettingsService)
	settings := testSettings()
	mockService.On("Get").Return(settings, nil)

	view := NewView(nil, mockService)
	cmd := view.Init()

	require.NotNil(t, cmd)
	loaded, ok := cmd().(messages.SettingsLoaded)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
	assert.Equal(t, settings, loaded.Settings)
	mockService.AssertExpectations(t)
}

func TestView_Init_LoadSettings_Error(t *testing.T) {
	mockService := new(MockSettingsService)
	expectedErr := fmt.Errorf("failed to load settings")
	mockService.On("Get").Return((*domain.AppSettings)(nil), expectedErr)

	view := NewView(nil, mockService)
	view.Update(view.Init()())

	assert.Equal(t, expectedErr, view.Err())
	assert.Nil(t, view.Settings())
	assert.Contains(t, view.View(), "Error: failed to load settings")
	mockService.AssertExpectations(t)
}

func TestView_Init_NoService(t *testing.T) {
	view := NewView(nil, nil)

	loaded, ok := view.Init()().(messages.SettingsLoaded)

	require.True(t, ok)
	assert.Error(t, loaded.Err)
	assert.Contains(t, loaded.Err.Error(), "settings service not available")
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, new(MockSettingsService))

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 120, Height: 60})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 120, view.width)
	assert.Equal(t, 60, view.height)
}

func TestView_View_Loading(t *testing.T) {
	view := NewView(nil, new(MockSettingsService))

	assert.Contains(t, view.View(), "Loading settings...")
}

func TestView_View_Overview(t *testing.T) {
	view := loadedView(new(MockSettingsService))

	output := view.View()

	assert.Contains(t, output, "Settings")
	assert.Contains(t, output, "/var/lib/fleetbook")
	assert.Contains(t, output, "routes.txt")
	assert.Contains(t, output, "deliveries.txt")
	assert.Contains(t, output, "Load on start")
	assert.Contains(t, output, "true")
}

func TestView_View_DefaultDataDir(t *testing.T) {
	view := NewView(nil, new(MockSettingsService))
	s := domain.DefaultAppSettings()
	view.Update(messages.SettingsLoaded{Settings: &s})

	assert.Contains(t, view.View(), "(default)")
}

func TestView_Navigation(t *testing.T) {
	view := loadedView(new(MockSettingsService))

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.selected)

	for i := 0; i < 10; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	}
	assert.Equal(t, len(items)-1, view.selected)

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, len(items)-2, view.selected)
}

func TestView_ToggleBool(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("Set", "session.autosave", "false").Return(nil)
	mockService.On("Get").Return(testSettings(), nil)
	view := loadedView(mockService)
	view.selected = 4

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.NoError(t, saved.Err)
	assert.Equal(t, "session.autosave", saved.Key)

	_, cmd = view.Update(saved)
	require.NotNil(t, cmd)
	assert.IsType(t, messages.SettingsLoaded{}, cmd())
	assert.Contains(t, view.View(), "Saved session.autosave")
	mockService.AssertExpectations(t)
}

func TestView_EditString(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("Set", "storage.routes_file", "cities.txt").Return(nil)
	view := loadedView(mockService)
	view.selected = 1

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, view.FormActive())
	assert.Equal(t, "routes.txt", view.editInput.Value())

	view.editInput.SetValue("cities.txt")
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, view.FormActive())
	require.NotNil(t, cmd)
	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.NoError(t, saved.Err)
	mockService.AssertExpectations(t)
}

func TestView_EditString_Rejected(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("Set", "storage.routes_file", "a/b").Return(domain.ErrInvalidInput)
	view := loadedView(mockService)
	view.selected = 1

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.editInput.SetValue("a/b")
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, next := view.Update(cmd())

	assert.Nil(t, next)
	assert.ErrorIs(t, view.Err(), domain.ErrInvalidInput)
	mockService.AssertExpectations(t)
}

func TestView_EditEscCancels(t *testing.T) {
	mockService := new(MockSettingsService)
	view := loadedView(mockService)
	view.selected = 2

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, view.FormActive())
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, view.FormActive())
	mockService.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestView_EscReturnsToMenu(t *testing.T) {
	view := loadedView(new(MockSettingsService))

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_EnterBeforeLoad(t *testing.T) {
	view := NewView(nil, new(MockSettingsService))

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, view.FormActive())
}

func TestView_Reset(t *testing.T) {
	view := loadedView(new(MockSettingsService))
	view.selected = 1
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.err = fmt.Errorf("boom")

	view.Reset()

	assert.Equal(t, SectionOverview, view.section)
	assert.Equal(t, 0, view.selected)
	assert.NoError(t, view.Err())
	assert.Equal(t, "", view.editInput.Value())
}
