package viewmodel

// Package viewmodel holds the UI state for the Mars photos screen. The view
// model triggers retrieval through the repository, reduces the outcome into a
// MarsUiState and publishes it on a Fyne data binding for the UI to observe.
