package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/mars-photos/internal/config"
)

var (
	errInvalidBaseURL = errors.New("base URL must be an absolute http or https URL")
	errInvalidTimeout = errors.New("timeout must be a whole number of seconds")
)

// SettingsDialog edits the service URL and request timeout. The container is
// built once per process, so saved values apply on the next launch.
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	baseURLEntry *widget.Entry
	timeoutEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultBaseURL)
	sd.baseURLEntry.Validator = validateBaseURL

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeout) + "-" + strconv.Itoa(config.MaxRequestTimeout))

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyRestartRequired)),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.applyEntries(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}

// applyEntries validates both fields and stores them only if both are valid
func (sd *SettingsDialog) applyEntries() error {
	baseURL := strings.TrimSpace(sd.baseURLEntry.Text)
	if err := validateBaseURL(baseURL); err != nil {
		return fmt.Errorf("%s: %w", sd.localization.GetText(KeyBaseURL), err)
	}

	timeout, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text))
	if err != nil {
		return fmt.Errorf("%s: %w", sd.localization.GetText(KeyRequestTimeout), errInvalidTimeout)
	}

	sd.settings.SetBaseURL(baseURL)
	sd.settings.SetRequestTimeoutSeconds(timeout)
	return nil
}

// validateBaseURL accepts an empty value (use the default) or an absolute
// http(s) URL
func validateBaseURL(value string) error {
	if value == "" {
		return nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errInvalidBaseURL
	}
	return nil
}
