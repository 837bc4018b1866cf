package grid

import "fyne.io/fyne/v2"

// Default layout metrics
const (
	DefaultItemsPerRow         = 3
	DefaultInsetTop    float32 = 50
	DefaultInsetLeft   float32 = 20
	DefaultInsetBottom float32 = 50
	DefaultInsetRight  float32 = 20
)

// Insets are the margins around a section
type Insets struct {
	Top, Left, Bottom, Right float32
}

// Layout holds the grid metrics used for item sizing
type Layout struct {
	Insets      Insets
	ItemsPerRow int
	// TopInset is the height covered by bars above the grid
	TopInset float32
}

// DefaultLayout returns three items per row with 20pt side margins
func DefaultLayout() Layout {
	return Layout{
		Insets: Insets{
			Top:    DefaultInsetTop,
			Left:   DefaultInsetLeft,
			Bottom: DefaultInsetBottom,
			Right:  DefaultInsetRight,
		},
		ItemsPerRow: DefaultItemsPerRow,
	}
}

// Spacing is the gap between items and between rows
func (l Layout) Spacing() float32 {
	return l.Insets.Left
}

// ItemSize returns the square cell size for a viewport width. The row holds
// ItemsPerRow items and ItemsPerRow+1 gaps.
func (l Layout) ItemSize(viewportWidth float32) fyne.Size {
	perRow := l.ItemsPerRow
	if perRow < 1 {
		perRow = 1
	}
	padding := l.Insets.Left * float32(perRow+1)
	width := (viewportWidth - padding) / float32(perRow)
	if width < 0 {
		width = 0
	}
	return fyne.NewSize(width, width)
}

// ExpandedBounds returns the box an expanded photo must fit in
func (l Layout) ExpandedBounds(viewport fyne.Size) fyne.Size {
	width := viewport.Width - l.Insets.Left - l.Insets.Right
	height := viewport.Height - l.TopInset - l.Insets.Top - l.Insets.Bottom
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return fyne.NewSize(width, height)
}
