package ui

// Package ui contains the Fyne-based user interface for the application.
// It observes the view model's state binding and renders the loading, success
// and error screens, plus the settings dialog. All UI strings are localized
// via Localization.
