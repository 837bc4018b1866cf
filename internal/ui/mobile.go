package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides device dependent sizing for touch screens
type MobileUI struct {
	isMobile func() bool
}

// NewMobileUI creates a helper bound to the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{isMobile: func() bool {
		return fyne.CurrentDevice().IsMobile()
	}}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.isMobile()
}

// CreateButton creates a button that meets the touch target size on mobile
func (m *MobileUI) CreateButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileButtonHeight))
	}
	return btn
}

// TopBarHeight returns the height reserved for the search bar, which the
// expanded photo must stay clear of
func (m *MobileUI) TopBarHeight(bar fyne.CanvasObject) float32 {
	h := bar.MinSize().Height
	if m.IsMobileDevice() && h < MinTouchTargetSize {
		return MinTouchTargetSize
	}
	return h
}
