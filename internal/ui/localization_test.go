package ui

import (
	"testing"
	"time"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func TestLocalization_Default(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	if text := l.GetText(KeyRetry); text != "Retry" {
		t.Errorf("Expected 'Retry', got '%s'", text)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if text := l.GetText(KeyRetry); text != "Повторить" {
		t.Errorf("Expected Russian retry text, got '%s'", text)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should map to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for lang, texts := range l.texts {
		for key := range l.texts["en"] {
			if _, ok := texts[key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_UnknownKey(t *testing.T) {
	l := NewLocalization()

	if text := l.GetText("no_such_key"); text != "no_such_key" {
		t.Errorf("Unknown key should return itself, got '%s'", text)
	}
}
