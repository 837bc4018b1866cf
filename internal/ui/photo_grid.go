package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/flickr-search/internal/grid"
	"github.com/ytget/flickr-search/internal/model"
)

// PhotoGrid renders the controller's sections as wrapped rows of photo
// cells. Cells are pooled and re-bound on every reload.
type PhotoGrid struct {
	widget.BaseWidget

	controller   *grid.Controller
	localization *Localization
	log          zerolog.Logger

	scroll    *container.Scroll
	content   *fyne.Container
	searching *widget.Activity

	pool     []*PhotoCell
	bound    map[model.Position]*PhotoCell
	sections []*fyne.Container
	bodies   []*fyne.Container

	lifted   *model.Position
	viewport fyne.Size
	sizeFn   func() fyne.Size

	onNotice func(message string)
}

// NewPhotoGrid creates the grid and attaches it to controller
func NewPhotoGrid(controller *grid.Controller, localization *Localization, log zerolog.Logger) *PhotoGrid {
	g := &PhotoGrid{
		controller:   controller,
		localization: localization,
		log:          log,
		bound:        make(map[model.Position]*PhotoCell),
		searching:    widget.NewActivity(),
	}
	g.ExtendBaseWidget(g)

	g.content = container.NewVBox()
	g.scroll = container.NewVScroll(g.content)
	g.searching.Hide()

	controller.SetView(g)
	return g
}

// SearchIndicator returns the activity shown while searches are running
func (g *PhotoGrid) SearchIndicator() *widget.Activity {
	return g.searching
}

// SetViewportFunc sets the size items are computed against. By default the
// grid uses its own size.
func (g *PhotoGrid) SetViewportFunc(fn func() fyne.Size) {
	g.sizeFn = fn
}

// OnNotice registers a callback for short user facing messages
func (g *PhotoGrid) OnNotice(fn func(message string)) {
	g.onNotice = fn
}

func (g *PhotoGrid) notice(key string) {
	if g.onNotice != nil {
		g.onNotice(g.localization.GetText(key))
	}
}

func (g *PhotoGrid) currentViewport() fyne.Size {
	if g.sizeFn != nil {
		return g.sizeFn()
	}
	return g.Size()
}

// ReloadData rebuilds every section, recycling the cells in use
func (g *PhotoGrid) ReloadData() {
	for p, cell := range g.bound {
		g.release(cell)
		delete(g.bound, p)
	}
	g.clearLift()

	viewport := g.currentViewport()
	layout := g.controller.Layout()

	g.sections = g.sections[:0]
	g.bodies = g.bodies[:0]
	objects := make([]fyne.CanvasObject, 0, g.controller.NumberOfSections())

	for s := 0; s < g.controller.NumberOfSections(); s++ {
		count := g.controller.NumberOfItems(s)
		header := widget.NewLabelWithStyle(
			fmt.Sprintf(SectionTitleFormat, g.controller.TermForSection(s), count),
			fyne.TextAlignLeading,
			fyne.TextStyle{Bold: true},
		)
		header.Truncation = fyne.TextTruncateEllipsis

		items := make([]fyne.CanvasObject, 0, count)
		for i := 0; i < count; i++ {
			p := model.NewPosition(s, i)
			cell := g.acquire()
			g.bind(cell, p, viewport)
			items = append(items, cell)
		}

		body := container.New(newFlowLayout(layout, g.currentViewport), items...)
		var section *fyne.Container
		if count == 0 {
			section = container.NewVBox(header, widget.NewLabel(g.localization.GetText(KeyNoResults)))
		} else {
			section = container.NewVBox(header, body)
		}

		g.sections = append(g.sections, section)
		g.bodies = append(g.bodies, body)
		objects = append(objects, section)
	}

	g.content.Objects = objects
	g.content.Refresh()
	g.scroll.Refresh()
	g.log.Debug().Int("sections", len(objects)).Int("cells", len(g.bound)).Int("pooled", len(g.pool)).Msg("grid reloaded")
}

// ReloadItems re-renders only the given positions
func (g *PhotoGrid) ReloadItems(positions ...model.Position) {
	viewport := g.currentViewport()
	for _, p := range positions {
		cell, ok := g.bound[p]
		if !ok {
			continue
		}
		g.bind(cell, p, viewport)
		cell.Refresh()
	}
	g.content.Refresh()
	g.scroll.Refresh()
}

// CellAt returns the cell bound to p, or nil
func (g *PhotoGrid) CellAt(p model.Position) grid.Cell {
	if cell, ok := g.bound[p]; ok {
		return cell
	}
	return nil
}

// ScrollTo scrolls vertically so the item at p starts at the top
func (g *PhotoGrid) ScrollTo(p model.Position) {
	cell, ok := g.bound[p]
	if !ok || p.Section >= len(g.sections) {
		return
	}

	section := g.sections[p.Section]
	body := g.bodies[p.Section]
	y := section.Position().Y + body.Position().Y + cell.Position().Y

	maxOffset := g.content.MinSize().Height - g.scroll.Size().Height
	if y > maxOffset {
		y = maxOffset
	}
	if y < 0 {
		y = 0
	}
	g.scroll.Offset = fyne.NewPos(0, y)
	g.scroll.Refresh()
}

// SetSearching toggles the search activity indicator
func (g *PhotoGrid) SetSearching(searching bool) {
	if searching {
		g.searching.Show()
		g.searching.Start()
		return
	}
	g.searching.Stop()
	g.searching.Hide()
}

func (g *PhotoGrid) bind(cell *PhotoCell, p model.Position, viewport fyne.Size) {
	cell.Bind(p, g.controller.SizeForItem(p, viewport))
	g.bound[p] = cell
	g.controller.ConfigureCell(cell, p)
}

func (g *PhotoGrid) acquire() *PhotoCell {
	if n := len(g.pool); n > 0 {
		cell := g.pool[n-1]
		g.pool = g.pool[:n-1]
		return cell
	}
	cell := NewPhotoCell()
	cell.SetCallbacks(g.onCellTapped, g.onCellTappedSecondary)
	return cell
}

func (g *PhotoGrid) release(cell *PhotoCell) {
	g.controller.ReleaseCell(cell)
	cell.SetLoading(false)
	cell.SetSelected(false)
	cell.SetLifted(false)
	cell.SetImage(nil)
	g.pool = append(g.pool, cell)
}

// resize recomputes every cell size after the viewport changed
func (g *PhotoGrid) resize(viewport fyne.Size) {
	for p, cell := range g.bound {
		cell.Bind(p, g.controller.SizeForItem(p, viewport))
		cell.Refresh()
	}
	g.content.Refresh()
}

// Reorder

func (g *PhotoGrid) onCellTapped(p model.Position) {
	if g.lifted != nil {
		src := *g.lifted
		g.clearLift()
		if src == p {
			return
		}
		if err := g.controller.Move(src, p); err != nil {
			g.log.Warn().Err(err).Str("from", src.String()).Str("to", p.String()).Msg("error moving photo")
			g.notice(KeyMoveFailed)
		}
		return
	}
	g.controller.Tap(p)
}

func (g *PhotoGrid) onCellTappedSecondary(p model.Position) {
	if g.controller.Sharing() {
		return
	}
	g.clearLift()

	cell, ok := g.bound[p]
	if !ok {
		return
	}
	g.lifted = &p
	cell.SetLifted(true)
	g.notice(KeyMoveHint)
}

func (g *PhotoGrid) clearLift() {
	if g.lifted == nil {
		return
	}
	if cell, ok := g.bound[*g.lifted]; ok {
		cell.SetLifted(false)
	}
	g.lifted = nil
}

// LiftedPosition returns the position picked up for a move, if any
func (g *PhotoGrid) LiftedPosition() (model.Position, bool) {
	if g.lifted == nil {
		return model.Position{}, false
	}
	return *g.lifted, true
}

// CreateRenderer creates the widget renderer
func (g *PhotoGrid) CreateRenderer() fyne.WidgetRenderer {
	return &photoGridRenderer{grid: g}
}

type photoGridRenderer struct {
	grid *PhotoGrid
}

// Layout resizes the scroller and re-sizes cells when the viewport changed
func (r *photoGridRenderer) Layout(size fyne.Size) {
	r.grid.scroll.Resize(size)

	viewport := r.grid.currentViewport()
	if viewport != r.grid.viewport {
		r.grid.viewport = viewport
		r.grid.resize(viewport)
	}
}

func (r *photoGridRenderer) MinSize() fyne.Size {
	return r.grid.scroll.MinSize()
}

func (r *photoGridRenderer) Refresh() {
	r.grid.scroll.Refresh()
}

func (r *photoGridRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.grid.scroll}
}

func (r *photoGridRenderer) Destroy() {}

// flowLayout places items left to right and wraps them into rows using the
// section insets and spacing
type flowLayout struct {
	insets   grid.Insets
	spacing  float32
	viewport func() fyne.Size
}

func newFlowLayout(l grid.Layout, viewport func() fyne.Size) *flowLayout {
	return &flowLayout{insets: l.Insets, spacing: l.Spacing(), viewport: viewport}
}

// rowEpsilon absorbs float rounding when items exactly fill a row
const rowEpsilon float32 = 0.5

func (l *flowLayout) place(objects []fyne.CanvasObject, width float32, apply bool) float32 {
	right := width - l.insets.Right
	x, y, rowHeight := l.insets.Left, float32(0), float32(0)

	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		size := obj.MinSize()
		if x > l.insets.Left && x+size.Width > right+rowEpsilon {
			x = l.insets.Left
			y += rowHeight + l.spacing
			rowHeight = 0
		}
		if apply {
			obj.Resize(size)
			obj.Move(fyne.NewPos(x, y))
		}
		x += size.Width + l.spacing
		if size.Height > rowHeight {
			rowHeight = size.Height
		}
	}
	return y + rowHeight
}

// Layout positions the items within size
func (l *flowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	l.place(objects, size.Width, true)
}

// MinSize returns the height needed to wrap the items at the viewport width.
// The width stays at the insets so the window can still shrink; the scroll
// stretches the body to the viewport and the next layout rewraps it.
func (l *flowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	height := l.place(objects, l.viewport().Width, false)
	return fyne.NewSize(l.insets.Left+l.insets.Right, height+l.insets.Bottom)
}
