package grid

import (
	"image"

	"github.com/ytget/flickr-search/internal/model"
)

// Cell is a recyclable visual cell showing one photo
type Cell interface {
	SetImage(img image.Image)
	SetLoading(loading bool)
	SetSelected(selected bool)
}

// View is the grid widget the controller renders into
type View interface {
	// ReloadData re-renders every section
	ReloadData()
	// ReloadItems re-renders the given positions only
	ReloadItems(positions ...model.Position)
	// CellAt returns the cell currently bound to p, or nil when p is not visible
	CellAt(p model.Position) Cell
	// ScrollTo brings p into view
	ScrollTo(p model.Position)
	// SetSearching toggles the loading indicator of the search input
	SetSearching(searching bool)
}

// Sharer presents a system share surface for images and calls done once the
// interaction ends, whatever the outcome.
type Sharer interface {
	Share(images []image.Image, done func(error))
}

// Dispatcher runs fn on the UI thread
type Dispatcher func(fn func())

type noopView struct{}

func (noopView) ReloadData()                   {}
func (noopView) ReloadItems(...model.Position) {}
func (noopView) CellAt(model.Position) Cell    { return nil }
func (noopView) ScrollTo(model.Position)       {}
func (noopView) SetSearching(bool)             {}
