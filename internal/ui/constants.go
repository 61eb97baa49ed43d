package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRetry    = "↻"
	IconError    = "❌"
	IconPhotos   = "🪐"
)

// Window sizing
const (
	WindowWidth  float32 = 480
	WindowHeight float32 = 720
)

// Layout sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
)
