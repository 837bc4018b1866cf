package flickr

import (
	"context"
	"image"

	"github.com/ytget/flickr-search/internal/model"
)

// Source defines the asynchronous photo source used by the grid.
type Source interface {
	// Search looks up photos matching term. done receives the result set or
	// an error and may be called from any goroutine.
	Search(ctx context.Context, term string, done func(*model.SearchResults, error))

	// FetchLarge downloads the large rendition of photo. It does not mutate
	// the record; caching is up to the caller.
	FetchLarge(ctx context.Context, photo *model.Photo, done func(image.Image, error))
}
