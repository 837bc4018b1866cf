package ui

import (
	"context"
	"fmt"
	"image"

	"github.com/ytget/flickr-search/internal/model"
)

// stubSource answers searches synchronously with count photos per term
type stubSource struct {
	count    int
	err      error
	terms    []string
	fetched  []*model.Photo
	largeImg image.Image
}

func (s *stubSource) Search(_ context.Context, term string, done func(*model.SearchResults, error)) {
	s.terms = append(s.terms, term)
	if s.err != nil {
		done(nil, s.err)
		return
	}
	photos := make([]*model.Photo, s.count)
	for i := range photos {
		photos[i] = &model.Photo{
			ID:        fmt.Sprintf("%s-%d", term, i),
			Thumbnail: image.NewRGBA(image.Rect(0, 0, 4, 3)),
		}
	}
	done(model.NewSearchResults(term, photos), nil)
}

func (s *stubSource) FetchLarge(_ context.Context, photo *model.Photo, done func(image.Image, error)) {
	s.fetched = append(s.fetched, photo)
	if s.largeImg != nil {
		done(s.largeImg, nil)
	}
}

type stubSharer struct {
	images []image.Image
	err    error
}

func (s *stubSharer) Share(images []image.Image, done func(error)) {
	s.images = images
	done(s.err)
}

func syncDispatch(fn func()) { fn() }
