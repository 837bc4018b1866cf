package grid

import (
	"context"
	"errors"
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/ytget/flickr-search/internal/flickr"
	"github.com/ytget/flickr-search/internal/model"
)

// ErrInvalidPosition is returned for positions outside the grid
var ErrInvalidPosition = errors.New("invalid grid position")

// Controller owns the result sets shown in the grid and the interaction mode
type Controller struct {
	ctx    context.Context
	cancel context.CancelFunc

	source   flickr.Source
	sharer   Sharer
	view     View
	dispatch Dispatcher
	layout   Layout
	log      zerolog.Logger

	searches []*model.SearchResults // most recent first
	mode     Mode

	bindings  map[Cell]*model.Photo
	pending   map[*model.Photo]bool // large images in flight
	searching int
	shareOpen bool

	onModeChanged      func(Mode)
	onSelectionChanged func(count int)
	onSearchFailed     func(term string, err error)
}

// NewController creates a controller in browsing mode. A nil dispatcher runs
// completions synchronously on the calling goroutine.
func NewController(source flickr.Source, sharer Sharer, dispatch Dispatcher, log zerolog.Logger) *Controller {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		ctx:      ctx,
		cancel:   cancel,
		source:   source,
		sharer:   sharer,
		view:     noopView{},
		dispatch: dispatch,
		layout:   DefaultLayout(),
		log:      log,
		searches: make([]*model.SearchResults, 0),
		mode:     Browsing{},
		bindings: make(map[Cell]*model.Photo),
		pending:  make(map[*model.Photo]bool),
	}
}

// SetView attaches the grid widget
func (c *Controller) SetView(view View) {
	if view == nil {
		view = noopView{}
	}
	c.view = view
}

// SetLayout replaces the sizing metrics
func (c *Controller) SetLayout(layout Layout) {
	c.layout = layout
}

// Layout returns the sizing metrics
func (c *Controller) Layout() Layout {
	return c.layout
}

// OnModeChanged registers a callback fired after every mode change
func (c *Controller) OnModeChanged(fn func(Mode)) {
	c.onModeChanged = fn
}

// OnSelectionChanged registers a callback fired when the share selection changes
func (c *Controller) OnSelectionChanged(fn func(count int)) {
	c.onSelectionChanged = fn
}

// OnSearchFailed registers a callback fired when a search returns an error
func (c *Controller) OnSearchFailed(fn func(term string, err error)) {
	c.onSearchFailed = fn
}

// Close cancels outstanding requests
func (c *Controller) Close() {
	c.cancel()
}

// Data source

// NumberOfSections returns the number of result sets
func (c *Controller) NumberOfSections() int {
	return len(c.searches)
}

// NumberOfItems returns the number of photos in section
func (c *Controller) NumberOfItems(section int) int {
	if section < 0 || section >= len(c.searches) {
		return 0
	}
	return c.searches[section].Len()
}

// TermForSection returns the search term shown in the section header
func (c *Controller) TermForSection(section int) string {
	if section < 0 || section >= len(c.searches) {
		return ""
	}
	return c.searches[section].Term
}

// PhotoAt returns the photo at p, or nil
func (c *Controller) PhotoAt(p model.Position) *model.Photo {
	if p.Section < 0 || p.Section >= len(c.searches) {
		return nil
	}
	return c.searches[p.Section].At(p.Item)
}

// Searches returns the result sets, most recent first
func (c *Controller) Searches() []*model.SearchResults {
	out := make([]*model.SearchResults, len(c.searches))
	copy(out, c.searches)
	return out
}

func (c *Controller) positionOf(photo *model.Photo) (model.Position, bool) {
	for s, results := range c.searches {
		if i := results.Index(photo); i >= 0 {
			return model.NewPosition(s, i), true
		}
	}
	return model.Position{}, false
}

// Mode state

// Mode returns the current mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// ExpandedPosition returns the expanded position, if any
func (c *Controller) ExpandedPosition() (model.Position, bool) {
	if m, ok := c.mode.(Expanded); ok {
		return m.Position, true
	}
	return model.Position{}, false
}

// Sharing reports whether sharing mode is active
func (c *Controller) Sharing() bool {
	_, ok := c.mode.(Sharing)
	return ok
}

// SelectedCount returns the number of photos selected for sharing
func (c *Controller) SelectedCount() int {
	if m, ok := c.mode.(Sharing); ok {
		return m.Selection.Len()
	}
	return 0
}

// SelectedPhotos returns the photos selected for sharing in selection order
func (c *Controller) SelectedPhotos() []*model.Photo {
	if m, ok := c.mode.(Sharing); ok {
		return m.Selection.Photos()
	}
	return nil
}

// IsSelected reports whether the photo at p is selected for sharing
func (c *Controller) IsSelected(p model.Position) bool {
	m, ok := c.mode.(Sharing)
	if !ok {
		return false
	}
	photo := c.PhotoAt(p)
	return photo != nil && m.Selection.Contains(photo)
}

// Tap handles a tap on the item at p. While sharing it toggles the selection,
// otherwise it toggles the expansion.
func (c *Controller) Tap(p model.Position) {
	photo := c.PhotoAt(p)
	if photo == nil {
		return
	}

	if m, ok := c.mode.(Sharing); ok {
		selected := m.Selection.Toggle(photo)
		if cell := c.view.CellAt(p); cell != nil {
			cell.SetSelected(selected)
		}
		c.log.Debug().Str("photo_id", photo.ID).Bool("selected", selected).Int("count", m.Selection.Len()).Msg("share selection changed")
		c.notifySelection()
		return
	}

	if current, ok := c.ExpandedPosition(); ok && current == p {
		c.setExpanded(nil)
		return
	}
	c.setExpanded(&p)
}

// setExpanded switches between browsing and expanded and reloads only the
// affected items
func (c *Controller) setExpanded(p *model.Position) {
	var reload []model.Position
	if old, ok := c.ExpandedPosition(); ok {
		reload = append(reload, old)
	}

	if p == nil {
		c.mode = Browsing{}
	} else {
		c.mode = Expanded{Position: *p}
		if len(reload) == 0 || reload[0] != *p {
			reload = append(reload, *p)
		}
	}

	c.view.ReloadItems(reload...)
	if p != nil {
		c.view.ScrollTo(*p)
	}
	c.notifyMode()
}

// SetSharing enters or leaves sharing mode. Entering clears any expansion and
// starts with an empty selection; leaving discards the selection.
func (c *Controller) SetSharing(on bool) {
	var reload []model.Position

	switch m := c.mode.(type) {
	case Expanded:
		if !on {
			return
		}
		reload = append(reload, m.Position)
	case Sharing:
		for _, photo := range m.Selection.Photos() {
			if p, ok := c.positionOf(photo); ok {
				reload = append(reload, p)
			}
		}
	case Browsing:
		if !on {
			return
		}
	}

	if on {
		c.mode = Sharing{Selection: NewSelection()}
	} else {
		c.mode = Browsing{}
	}

	if len(reload) > 0 {
		c.view.ReloadItems(reload...)
	}
	c.log.Debug().Bool("sharing", on).Msg("sharing mode changed")
	c.notifyMode()
	c.notifySelection()
}

func (c *Controller) notifyMode() {
	if c.onModeChanged != nil {
		c.onModeChanged(c.mode)
	}
}

func (c *Controller) notifySelection() {
	if c.onSelectionChanged != nil {
		c.onSelectionChanged(c.SelectedCount())
	}
}

// Rendering

// ConfigureCell renders the photo at p into cell and records the binding.
// The expanded item shows its large image, fetching it first when needed.
func (c *Controller) ConfigureCell(cell Cell, p model.Position) {
	// A reused cell may still be spinning for its previous photo
	cell.SetLoading(false)

	photo := c.PhotoAt(p)
	if photo == nil {
		delete(c.bindings, cell)
		cell.SetSelected(false)
		cell.SetImage(nil)
		return
	}

	c.bindings[cell] = photo
	cell.SetSelected(c.IsSelected(p))

	if expanded, ok := c.ExpandedPosition(); !ok || expanded != p {
		cell.SetImage(photo.Thumbnail)
		return
	}

	if photo.HasLarge() {
		cell.SetImage(photo.Large)
		return
	}

	// Thumbnail stretches until the large image arrives
	cell.SetImage(photo.Thumbnail)
	cell.SetLoading(true)
	c.requestLarge(photo)
}

// ReleaseCell forgets the binding of a cell that went off screen
func (c *Controller) ReleaseCell(cell Cell) {
	delete(c.bindings, cell)
}

// BoundPhoto returns the photo cell was last configured with
func (c *Controller) BoundPhoto(cell Cell) *model.Photo {
	return c.bindings[cell]
}

func (c *Controller) requestLarge(photo *model.Photo) {
	if c.pending[photo] {
		return
	}
	c.pending[photo] = true

	c.source.FetchLarge(c.ctx, photo, func(img image.Image, err error) {
		c.dispatch(func() {
			c.largeImageLoaded(photo, img, err)
		})
	})
}

// largeImageLoaded caches the fetched image and shows it only when the
// photo is still the expanded one and the cell on screen at that position is
// still bound to it. Stale results never touch a cell.
func (c *Controller) largeImageLoaded(photo *model.Photo, img image.Image, err error) {
	delete(c.pending, photo)

	cell := c.visibleExpandedCell(photo)

	if err != nil || img == nil {
		if err == nil {
			err = errors.New("empty image")
		}
		c.log.Warn().Err(err).Str("photo_id", photo.ID).Msg("failed to load large image")
		if cell != nil {
			cell.SetLoading(false)
		}
		return
	}

	photo.SetLarge(img)

	if cell == nil {
		c.log.Debug().Str("photo_id", photo.ID).Msg("large image arrived for a stale position")
		return
	}
	cell.SetLoading(false)
	cell.SetImage(photo.Large)
}

func (c *Controller) visibleExpandedCell(photo *model.Photo) Cell {
	expanded, ok := c.ExpandedPosition()
	if !ok || c.PhotoAt(expanded) != photo {
		return nil
	}
	cell := c.view.CellAt(expanded)
	if cell == nil || c.bindings[cell] != photo {
		return nil
	}
	return cell
}

// Sizing

// SizeForItem returns the size of the item at p for the given viewport
func (c *Controller) SizeForItem(p model.Position, viewport fyne.Size) fyne.Size {
	if expanded, ok := c.ExpandedPosition(); ok && expanded == p {
		if photo := c.PhotoAt(p); photo != nil {
			return photo.SizeToFillWidth(c.layout.ExpandedBounds(viewport))
		}
	}
	return c.layout.ItemSize(viewport.Width)
}

// Search

// Search submits term to the photo source. Blank terms are ignored.
func (c *Controller) Search(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}

	c.searching++
	c.view.SetSearching(true)
	c.log.Debug().Str("term", term).Msg("searching")

	c.source.Search(c.ctx, term, func(results *model.SearchResults, err error) {
		c.dispatch(func() {
			c.searchFinished(term, results, err)
		})
	})
	return true
}

func (c *Controller) searchFinished(term string, results *model.SearchResults, err error) {
	c.searching--
	c.view.SetSearching(c.searching > 0)

	if err != nil {
		c.log.Error().Err(err).Str("term", term).Msg("error searching")
		if c.onSearchFailed != nil {
			c.onSearchFailed(term, err)
		}
		return
	}
	if results == nil {
		return
	}

	c.log.Info().Str("term", results.Term).Int("count", results.Len()).Msg("search results received")
	c.searches = append([]*model.SearchResults{results}, c.searches...)

	// Keep the same photo expanded now that every section moved down
	if m, ok := c.mode.(Expanded); ok {
		c.mode = Expanded{Position: model.NewPosition(m.Position.Section+1, m.Position.Item)}
	}

	c.view.ReloadData()
}

// Reorder

// Move moves the photo at src to dst in place. Expansion follows the
// expanded photo.
func (c *Controller) Move(src, dst model.Position) error {
	if c.PhotoAt(src) == nil {
		return ErrInvalidPosition
	}
	if dst.Section < 0 || dst.Section >= len(c.searches) {
		return ErrInvalidPosition
	}
	limit := c.searches[dst.Section].Len()
	if dst.Section == src.Section {
		limit--
	}
	if dst.Item < 0 || dst.Item > limit {
		return ErrInvalidPosition
	}
	if src == dst {
		return nil
	}

	var expandedPhoto *model.Photo
	if p, ok := c.ExpandedPosition(); ok {
		expandedPhoto = c.PhotoAt(p)
	}

	photo := c.searches[src.Section].Remove(src.Item)
	c.searches[dst.Section].Insert(dst.Item, photo)

	if expandedPhoto != nil {
		if p, ok := c.positionOf(expandedPhoto); ok {
			c.mode = Expanded{Position: p}
		}
	}

	c.log.Debug().Str("photo_id", photo.ID).Str("from", src.String()).Str("to", dst.String()).Msg("photo moved")
	c.view.ReloadData()
	return nil
}

// Share

// Share hands the thumbnails of the selected photos to the share mechanism.
// It needs at least one search, sharing mode and a non-empty selection.
// Sharing mode ends when the share interaction completes.
func (c *Controller) Share() bool {
	m, ok := c.mode.(Sharing)
	if !ok || len(c.searches) == 0 || m.Selection.Len() == 0 || c.shareOpen {
		return false
	}

	images := make([]image.Image, 0, m.Selection.Len())
	for _, photo := range m.Selection.Photos() {
		if photo.Thumbnail != nil {
			images = append(images, photo.Thumbnail)
		}
	}
	if len(images) == 0 {
		return false
	}

	c.shareOpen = true
	c.log.Info().Int("count", len(images)).Msg("sharing photos")

	c.sharer.Share(images, func(err error) {
		c.dispatch(func() {
			c.shareOpen = false
			if err != nil {
				c.log.Warn().Err(err).Msg("share finished with error")
			}
			c.SetSharing(false)
		})
	})
	return true
}
