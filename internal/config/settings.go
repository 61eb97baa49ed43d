package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/mars-photos/internal/network"
)

// Settings keys for Fyne preferences
const (
	KeyBaseURL        = "base_url"
	KeyRequestTimeout = "request_timeout_seconds"
)

// Bounds and fallbacks
const (
	DefaultBaseURL        = network.DefaultBaseURL
	DefaultRequestTimeout = 30
	MinRequestTimeout     = 1
	MaxRequestTimeout     = 120
)

// Settings manages user preferences. Values not set by the user fall back to
// the process config.
type Settings struct {
	app      fyne.App
	defaults Config
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults Config) *Settings {
	return &Settings{app: app, defaults: defaults}
}

// GetBaseURL returns the configured service base URL
func (s *Settings) GetBaseURL() string {
	url := s.app.Preferences().String(KeyBaseURL)
	if url != "" {
		return url
	}
	if s.defaults.BaseURL != "" {
		return s.defaults.BaseURL
	}
	return DefaultBaseURL
}

// SetBaseURL stores a base URL override. An empty value clears it.
func (s *Settings) SetBaseURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		s.app.Preferences().RemoveValue(KeyBaseURL)
		return
	}
	s.app.Preferences().SetString(KeyBaseURL, url)
}

// GetRequestTimeoutSeconds returns the request timeout in seconds
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value > 0 {
		return value
	}
	if s.defaults.RequestTimeoutSeconds > 0 {
		return clampTimeout(s.defaults.RequestTimeoutSeconds)
	}
	return DefaultRequestTimeout
}

// GetRequestTimeout returns the request timeout as a duration
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSeconds()) * time.Second
}

// SetRequestTimeoutSeconds sets the request timeout
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, clampTimeout(seconds))
}

func clampTimeout(seconds int) int {
	if seconds < MinRequestTimeout {
		return MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		return MaxRequestTimeout
	}
	return seconds
}
