package ui

import (
	"testing"

	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/test"
	"github.com/alitto/pond/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/mars-photos/internal/config"
	"github.com/ytget/mars-photos/internal/model"
)

type stubViewModel struct {
	state   binding.Untyped
	pool    pond.Pool
	retries int
	closed  bool
}

func newStubViewModel(t *testing.T, state model.MarsUiState) *stubViewModel {
	vm := &stubViewModel{state: binding.NewUntyped(), pool: pond.NewPool(1)}
	t.Cleanup(vm.pool.StopAndWait)
	_ = vm.state.Set(state)
	return vm
}

func (vm *stubViewModel) State() model.MarsUiState {
	value, _ := vm.state.Get()
	return value.(model.MarsUiState)
}

func (vm *stubViewModel) StateItem() binding.DataItem {
	return vm.state
}

func (vm *stubViewModel) GetMarsPhotos() pond.Task {
	vm.retries++
	if vm.closed {
		return nil
	}
	return vm.pool.SubmitErr(func() error { return nil })
}

func newTestScreen(t *testing.T, state model.MarsUiState) (*HomeScreen, *stubViewModel) {
	t.Helper()

	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	log, _ := logtest.NewNullLogger()
	vm := newStubViewModel(t, state)
	screen := NewHomeScreen(HomeScreenConfig{
		Window:       window,
		ViewModel:    vm,
		Settings:     config.NewSettings(app, config.Config{}),
		Localization: NewLocalization(),
		Logger:       log,
	})
	return screen, vm
}

func TestNewHomeScreen_InitialLoading(t *testing.T) {
	screen, _ := newTestScreen(t, model.Loading())

	assert.Equal(t, "Mars Photos", screen.window.Title())
	assert.True(t, screen.loadingView.Visible())
	assert.False(t, screen.successView.Visible())
	assert.False(t, screen.errorView.Visible())
	require.NotNil(t, screen.window.Content())
}

func TestHomeScreen_RenderSuccess(t *testing.T) {
	screen, _ := newTestScreen(t, model.Loading())

	screen.render(model.Success("Success: 2 Mars photos retrieved"))

	assert.True(t, screen.successView.Visible())
	assert.False(t, screen.loadingView.Visible())
	assert.False(t, screen.errorView.Visible())
	assert.Equal(t, "Success: 2 Mars photos retrieved", screen.resultLabel.Text)
}

func TestHomeScreen_RenderError(t *testing.T) {
	screen, _ := newTestScreen(t, model.Loading())

	screen.render(model.Error())

	assert.True(t, screen.errorView.Visible())
	assert.False(t, screen.loadingView.Visible())
	assert.False(t, screen.successView.Visible())
	assert.Equal(t, IconError+" Failed to load", screen.errorLabel.Text)
}

func TestHomeScreen_RenderBackToLoading(t *testing.T) {
	screen, _ := newTestScreen(t, model.Error())
	assert.True(t, screen.errorView.Visible())

	screen.render(model.Loading())

	assert.True(t, screen.loadingView.Visible())
	assert.False(t, screen.errorView.Visible())
}

func TestHomeScreen_RetryButton(t *testing.T) {
	screen, vm := newTestScreen(t, model.Error())

	test.Tap(screen.retryBtn)
	assert.Equal(t, 1, vm.retries)

	vm.closed = true
	test.Tap(screen.retryBtn)
	assert.Equal(t, 2, vm.retries)
}

func TestHomeScreen_FollowsBinding(t *testing.T) {
	screen, vm := newTestScreen(t, model.Loading())

	require.NoError(t, vm.state.Set(model.Success("Success: 5 Mars photos retrieved")))

	assert.Eventually(t, func() bool {
		return screen.resultLabel.Text == "Success: 5 Mars photos retrieved"
	}, waitFor, tick)

	screen.Detach()
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"", true},
		{"https://android-kotlin-fun-mars-server.appspot.com", true},
		{"http://localhost:8080", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"http://", false},
	}

	for _, test := range tests {
		err := validateBaseURL(test.value)
		if test.valid {
			assert.NoError(t, err, "value %q", test.value)
		} else {
			assert.Error(t, err, "value %q", test.value)
		}
	}
}
