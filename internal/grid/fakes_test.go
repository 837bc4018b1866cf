package grid

import (
	"context"
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"github.com/ytget/flickr-search/internal/model"
)

type fakeCell struct {
	img      image.Image
	loading  bool
	selected bool
	updates  int
}

func (c *fakeCell) SetImage(img image.Image) {
	c.img = img
	c.updates++
}

func (c *fakeCell) SetLoading(loading bool) {
	c.loading = loading
}

func (c *fakeCell) SetSelected(selected bool) {
	c.selected = selected
}

type fakeView struct {
	cells      map[model.Position]*fakeCell
	reloads    int
	reloaded   []model.Position
	scrolledTo []model.Position
	searching  []bool
}

func newFakeView() *fakeView {
	return &fakeView{cells: make(map[model.Position]*fakeCell)}
}

func (v *fakeView) ReloadData() { v.reloads++ }

func (v *fakeView) ReloadItems(positions ...model.Position) {
	v.reloaded = append(v.reloaded, positions...)
}

func (v *fakeView) CellAt(p model.Position) Cell {
	if cell, ok := v.cells[p]; ok {
		return cell
	}
	return nil
}

func (v *fakeView) ScrollTo(p model.Position) { v.scrolledTo = append(v.scrolledTo, p) }

func (v *fakeView) SetSearching(searching bool) { v.searching = append(v.searching, searching) }

// show binds a new cell at p and configures it
func (v *fakeView) show(c *Controller, p model.Position) *fakeCell {
	cell := &fakeCell{}
	v.cells[p] = cell
	c.ConfigureCell(cell, p)
	return cell
}

type largeRequest struct {
	photo *model.Photo
	done  func(image.Image, error)
}

type searchRequest struct {
	term string
	done func(*model.SearchResults, error)
}

// fakeSource keeps callbacks until the test completes them
type fakeSource struct {
	searches []searchRequest
	larges   []largeRequest
}

func (s *fakeSource) Search(_ context.Context, term string, done func(*model.SearchResults, error)) {
	s.searches = append(s.searches, searchRequest{term: term, done: done})
}

func (s *fakeSource) FetchLarge(_ context.Context, photo *model.Photo, done func(image.Image, error)) {
	s.larges = append(s.larges, largeRequest{photo: photo, done: done})
}

type fakeSharer struct {
	calls  int
	images []image.Image
	done   func(error)
}

func (s *fakeSharer) Share(images []image.Image, done func(error)) {
	s.calls++
	s.images = images
	s.done = done
}

func newImage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func newPhotos(prefix string, n int) []*model.Photo {
	photos := make([]*model.Photo, n)
	for i := range photos {
		photos[i] = &model.Photo{
			ID:        fmt.Sprintf("%s-%d", prefix, i),
			Title:     fmt.Sprintf("%s %d", prefix, i),
			Thumbnail: newImage(4, 3),
		}
	}
	return photos
}

type fixture struct {
	c      *Controller
	view   *fakeView
	source *fakeSource
	sharer *fakeSharer
}

func newFixture() *fixture {
	f := &fixture{
		view:   newFakeView(),
		source: &fakeSource{},
		sharer: &fakeSharer{},
	}
	f.c = NewController(f.source, f.sharer, nil, zerolog.Nop())
	f.c.SetView(f.view)
	return f
}

// search runs a search and completes it with n photos
func (f *fixture) search(term string, n int) *model.SearchResults {
	results := model.NewSearchResults(term, newPhotos(term, n))
	f.c.Search(term)
	req := f.source.searches[len(f.source.searches)-1]
	req.done(results, nil)
	return results
}
