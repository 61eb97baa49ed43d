package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/mars-photos/internal/network"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Config{})

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Config{})

	// Test default value
	if url := settings.GetBaseURL(); url != DefaultBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultBaseURL, url)
	}

	// Test setting custom value
	settings.SetBaseURL(" http://localhost:8080/ ")
	if url := settings.GetBaseURL(); url != "http://localhost:8080" {
		t.Errorf("Expected base URL http://localhost:8080, got %s", url)
	}

	// Test clearing falls back to default
	settings.SetBaseURL("")
	if url := settings.GetBaseURL(); url != DefaultBaseURL {
		t.Errorf("Cleared base URL should fall back to %s, got %s", DefaultBaseURL, url)
	}
}

func TestBaseURL_ProcessDefault(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Config{BaseURL: "http://mars.local"})

	if url := settings.GetBaseURL(); url != "http://mars.local" {
		t.Errorf("Expected process default http://mars.local, got %s", url)
	}

	settings.SetBaseURL("http://override.local")
	if url := settings.GetBaseURL(); url != "http://override.local" {
		t.Errorf("User override should win, got %s", url)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Config{})

	// Test default value
	if timeout := settings.GetRequestTimeoutSeconds(); timeout != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %d, got %d", DefaultRequestTimeout, timeout)
	}

	// Test setting custom value
	settings.SetRequestTimeoutSeconds(10)
	if timeout := settings.GetRequestTimeoutSeconds(); timeout != 10 {
		t.Errorf("Expected timeout 10, got %d", timeout)
	}
	if settings.GetRequestTimeout() != 10*time.Second {
		t.Errorf("Expected 10s, got %s", settings.GetRequestTimeout())
	}

	// Test boundary values
	settings.SetRequestTimeoutSeconds(0) // Should be clamped to 1
	if settings.GetRequestTimeoutSeconds() != MinRequestTimeout {
		t.Error("Timeout should be clamped to minimum 1")
	}

	settings.SetRequestTimeoutSeconds(500) // Should be clamped to 120
	if settings.GetRequestTimeoutSeconds() != MaxRequestTimeout {
		t.Error("Timeout should be clamped to maximum 120")
	}
}

func TestRequestTimeout_ProcessDefault(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Config{RequestTimeoutSeconds: 300})

	if timeout := settings.GetRequestTimeoutSeconds(); timeout != MaxRequestTimeout {
		t.Errorf("Process default should be clamped to %d, got %d", MaxRequestTimeout, timeout)
	}
}

func TestBaseURL_DefaultMatchesService(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Config{BaseURL: ""})

	if settings.GetBaseURL() != network.DefaultBaseURL {
		t.Errorf("Expected fallback %s, got %s", network.DefaultBaseURL, settings.GetBaseURL())
	}
}
