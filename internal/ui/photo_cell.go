package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flickr-search/internal/model"
)

// PhotoCell is a recyclable grid cell that shows one photo
type PhotoCell struct {
	widget.BaseWidget

	position model.Position
	size     fyne.Size

	image    *canvas.Image
	border   *canvas.Rectangle
	activity *widget.Activity

	loading  bool
	selected bool
	lifted   bool

	onTapped          func(model.Position)
	onTappedSecondary func(model.Position)
}

// NewPhotoCell creates an empty cell
func NewPhotoCell() *PhotoCell {
	c := &PhotoCell{}
	c.ExtendBaseWidget(c)
	c.createUI()
	return c
}

func (c *PhotoCell) createUI() {
	c.image = canvas.NewImageFromImage(nil)
	c.image.FillMode = canvas.ImageFillStretch
	c.image.ScaleMode = canvas.ImageScaleSmooth

	c.border = canvas.NewRectangle(color.Transparent)
	c.border.StrokeWidth = SelectionBorderWidth
	c.border.Hide()

	c.activity = widget.NewActivity()
	c.activity.Hide()
}

// SetCallbacks sets the tap handlers. Both receive the position the cell is
// bound to at the time of the tap.
func (c *PhotoCell) SetCallbacks(onTapped, onTappedSecondary func(model.Position)) {
	c.onTapped = onTapped
	c.onTappedSecondary = onTappedSecondary
}

// Bind records the position and size the cell represents
func (c *PhotoCell) Bind(p model.Position, size fyne.Size) {
	c.position = p
	c.size = size
}

// GridPosition returns the grid position the cell is bound to
func (c *PhotoCell) GridPosition() model.Position {
	return c.position
}

// Image returns the image currently shown
func (c *PhotoCell) Image() image.Image {
	return c.image.Image
}

// SetImage replaces the displayed image
func (c *PhotoCell) SetImage(img image.Image) {
	c.image.Image = img
	c.image.Refresh()
}

// SetLoading shows or hides the activity indicator
func (c *PhotoCell) SetLoading(loading bool) {
	if c.loading == loading {
		return
	}
	c.loading = loading
	if loading {
		c.activity.Show()
		c.activity.Start()
	} else {
		c.activity.Stop()
		c.activity.Hide()
	}
}

// Loading reports whether the activity indicator is running
func (c *PhotoCell) Loading() bool {
	return c.loading
}

// SetSelected shows or hides the selection border
func (c *PhotoCell) SetSelected(selected bool) {
	c.selected = selected
	c.updateBorder()
}

// Selected reports whether the selection border is visible
func (c *PhotoCell) Selected() bool {
	return c.selected
}

// SetLifted marks the cell as picked up for a move
func (c *PhotoCell) SetLifted(lifted bool) {
	c.lifted = lifted
	if lifted {
		c.image.Translucency = LiftedTranslucency
	} else {
		c.image.Translucency = 0
	}
	c.image.Refresh()
	c.updateBorder()
}

// Lifted reports whether the cell is picked up for a move
func (c *PhotoCell) Lifted() bool {
	return c.lifted
}

func (c *PhotoCell) updateBorder() {
	switch {
	case c.selected:
		c.border.StrokeColor = theme.Color(theme.ColorNameSelection)
		c.border.Show()
	case c.lifted:
		c.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
		c.border.Show()
	default:
		c.border.Hide()
	}
	c.border.Refresh()
}

// Tapped forwards a tap to the grid
func (c *PhotoCell) Tapped(*fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped(c.position)
	}
}

// TappedSecondary forwards a right click or long press to the grid
func (c *PhotoCell) TappedSecondary(*fyne.PointEvent) {
	if c.onTappedSecondary != nil {
		c.onTappedSecondary(c.position)
	}
}

// MinSize returns the size assigned by the grid
func (c *PhotoCell) MinSize() fyne.Size {
	if c.size.Width > 0 && c.size.Height > 0 {
		return c.size
	}
	return fyne.NewSize(CellMinSize, CellMinSize)
}

// CreateRenderer creates the widget renderer
func (c *PhotoCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(
		c.image,
		c.border,
		container.NewCenter(c.activity),
	))
}
