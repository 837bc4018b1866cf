package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconShare    = "⇪"
	IconDone     = "✓"
	IconClose    = "×"
	IconMove     = "↔"
)

// Text fragments
const (
	SelectedCountFormat = "%d"
	SectionTitleFormat  = "%s (%d)"
)

// Cell sizing
const (
	SelectionBorderWidth float32 = 10
	LiftedTranslucency           = 0.5
	CellMinSize          float32 = 24

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonWidth  float32 = 60
	MobileButtonHeight float32 = 48
)

// Window defaults
const (
	DefaultWindowWidth  float32 = 420
	DefaultWindowHeight float32 = 720
	SettingsDialogWidth float32 = 460
	SettingsDialogH     float32 = 380
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)
