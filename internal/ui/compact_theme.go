package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand colors
var (
	ColorBlue = color.NRGBA{R: 0, G: 99, B: 220, A: 255}
	ColorPink = color.NRGBA{R: 255, G: 0, B: 132, A: 255}
)

// PhotoTheme is a compact theme that keeps the grid dense and draws
// selections in the brand colors
type PhotoTheme struct {
	base fyne.Theme
}

// NewPhotoTheme creates the application theme
func NewPhotoTheme() fyne.Theme {
	return &PhotoTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *PhotoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return ColorBlue
	case theme.ColorNameFocus:
		return color.NRGBA{R: ColorBlue.R, G: ColorBlue.G, B: ColorBlue.B, A: 0x7f}
	case theme.ColorNameSelection:
		return ColorPink
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 12, G: 12, B: 12, A: 255}
		}
		return color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	}

	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *PhotoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *PhotoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *PhotoTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameInputRadius:
		return 3
	}

	return t.base.Size(name)
}
