package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/ytget/mars-photos/internal/config"
	"github.com/ytget/mars-photos/internal/data"
	"github.com/ytget/mars-photos/internal/logging"
	"github.com/ytget/mars-photos/internal/ui"
	"github.com/ytget/mars-photos/internal/viewmodel"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.mars-photos"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.New(cfg.LogLevel)

	log.WithFields(logrus.Fields{
		"version":  version,
		"logLevel": cfg.LogLevel,
	}).Info("Mars Photos starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewMarsTheme())

	myWindow := myApp.NewWindow(AppID)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// User preferences override process config
	settings := config.NewSettings(myApp, cfg)

	// One container, and so one repository, per process
	container := data.NewDefaultAppContainer(data.ContainerConfig{
		BaseURL:        settings.GetBaseURL(),
		RequestTimeout: settings.GetRequestTimeout(),
		Logger:         log,
	})

	scope := viewmodel.NewScope(viewmodel.ScopeConfig{
		MaxInFlight: cfg.MaxInFlightLoads,
		Logger:      log,
	})
	marsViewModel := viewmodel.NewFromContainer(container, scope, log)

	localization := ui.NewLocalization()
	localization.SetLanguage(cfg.Language)

	screen := ui.NewHomeScreen(ui.HomeScreenConfig{
		Window:       myWindow,
		ViewModel:    marsViewModel,
		Settings:     settings,
		Localization: localization,
		Logger:       log,
	})

	myWindow.SetOnClosed(func() {
		screen.Detach()
		marsViewModel.Close()
		log.Info("Mars Photos stopped")
	})

	myWindow.ShowAndRun()
}
