package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/alitto/pond/v2"
	"github.com/sirupsen/logrus"

	"github.com/ytget/mars-photos/internal/config"
	"github.com/ytget/mars-photos/internal/model"
)

// PhotosViewModel is the part of the view model the home screen consumes
type PhotosViewModel interface {
	State() model.MarsUiState
	StateItem() binding.DataItem
	GetMarsPhotos() pond.Task
}

// HomeScreen renders the current load state
type HomeScreen struct {
	window       fyne.Window
	viewModel    PhotosViewModel
	settings     *config.Settings
	localization *Localization

	loadingView *fyne.Container
	spinner     *widget.ProgressBarInfinite

	successView *fyne.Container
	resultLabel *widget.Label

	errorView  *fyne.Container
	errorLabel *widget.Label
	retryBtn   *widget.Button

	settingsBtn *widget.Button
	listener    binding.DataListener
	log         logrus.FieldLogger
}

// HomeScreenConfig configures the home screen. Settings may be nil, which
// disables the settings dialog.
type HomeScreenConfig struct {
	Window       fyne.Window
	ViewModel    PhotosViewModel
	Settings     *config.Settings
	Localization *Localization
	Logger       logrus.FieldLogger
}

// NewHomeScreen builds the screen, sets it as the window content and starts
// observing the view model
func NewHomeScreen(cfg HomeScreenConfig) *HomeScreen {
	localization := cfg.Localization
	if localization == nil {
		localization = NewLocalization()
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	screen := &HomeScreen{
		window:       cfg.Window,
		viewModel:    cfg.ViewModel,
		settings:     cfg.Settings,
		localization: localization,
		log:          log.WithField("component", "ui"),
	}

	screen.window.SetTitle(localization.GetText(KeyAppTitle))
	screen.setupUI()

	screen.listener = binding.NewDataListener(func() {
		screen.render(screen.viewModel.State())
	})
	screen.viewModel.StateItem().AddListener(screen.listener)

	return screen
}

// setupUI creates and arranges all UI components
func (s *HomeScreen) setupUI() {
	// Loading
	s.spinner = widget.NewProgressBarInfinite()
	loadingLabel := widget.NewLabel(s.localization.GetText(KeyLoading))
	loadingLabel.Alignment = fyne.TextAlignCenter
	s.loadingView = container.NewVBox(s.spinner, loadingLabel)

	// Success
	s.resultLabel = widget.NewLabel("")
	s.resultLabel.Alignment = fyne.TextAlignCenter
	s.resultLabel.Wrapping = fyne.TextWrapWord
	s.successView = container.NewVBox(s.resultLabel)

	// Error, with no detail on purpose
	s.errorLabel = widget.NewLabel(IconError + " " + s.localization.GetText(KeyLoadingFailed))
	s.errorLabel.Alignment = fyne.TextAlignCenter
	s.retryBtn = widget.NewButton(IconRetry+" "+s.localization.GetText(KeyRetry), s.onRetry)
	s.errorView = container.NewVBox(s.errorLabel, container.NewCenter(s.retryBtn))

	s.settingsBtn = widget.NewButton(IconSettings, s.onShowSettings)
	s.settingsBtn.Importance = widget.LowImportance

	title := widget.NewLabelWithStyle(IconPhotos+" "+s.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	topPanel := container.NewBorder(nil, nil, nil, s.settingsBtn, title)

	body := container.NewCenter(container.NewStack(s.loadingView, s.successView, s.errorView))
	s.window.SetContent(container.NewBorder(topPanel, nil, nil, nil, body))

	s.render(s.viewModel.State())
}

// render shows exactly one of the three views
func (s *HomeScreen) render(state model.MarsUiState) {
	state.Match(
		func() {
			s.successView.Hide()
			s.errorView.Hide()
			s.spinner.Start()
			s.loadingView.Show()
		},
		func(photos string) {
			s.spinner.Stop()
			s.loadingView.Hide()
			s.errorView.Hide()
			s.resultLabel.SetText(photos)
			s.successView.Show()
		},
		func() {
			s.spinner.Stop()
			s.loadingView.Hide()
			s.successView.Hide()
			s.errorView.Show()
		},
	)
}

// onRetry starts a new load
func (s *HomeScreen) onRetry() {
	s.log.Debug("retry requested")
	if task := s.viewModel.GetMarsPhotos(); task == nil {
		s.log.Warn("retry ignored: view model closed")
	}
}

// onShowSettings opens the settings dialog
func (s *HomeScreen) onShowSettings() {
	if s.settings == nil {
		return
	}
	NewSettingsDialog(s.settings, s.localization, s.window).Show()
}

// Detach stops observing the view model
func (s *HomeScreen) Detach() {
	s.viewModel.StateItem().RemoveListener(s.listener)
}
