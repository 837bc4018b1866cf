package flickr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/flickr-search/internal/imaging"
	"github.com/ytget/flickr-search/internal/model"
)

// Service defaults
const (
	DefaultEndpoint     = "https://api.flickr.com/services/rest/"
	DefaultPerPage      = 20
	DefaultConcurrency  = 6
	DefaultTimeout      = 15 * time.Second
	MaxResponseBytes    = 32 << 20
	DefaultLargeWorkers = 2
)

// ErrClosed is reported for requests made after Close
var ErrClosed = errors.New("photo source is closed")

// Options configures a Service
type Options struct {
	Endpoint    string
	APIKey      func() string
	PerPage     func() int
	Concurrency int
	Timeout     time.Duration

	// ImageHost replaces the CDN host in image URLs when set
	ImageHost string

	HTTPClient *http.Client
}

// Service is a Flickr backed photo source
type Service struct {
	client      *http.Client
	endpoint    string
	apiKey      func() string
	perPage     func() int
	concurrency int
	imageHost   string

	pool   pond.Pool
	closed atomic.Bool
	log    zerolog.Logger
}

var _ Source = (*Service)(nil)

// NewService creates a new photo source
func NewService(opts Options, log zerolog.Logger) *Service {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.APIKey == nil {
		opts.APIKey = func() string { return "" }
	}
	if opts.PerPage == nil {
		opts.PerPage = func() int { return DefaultPerPage }
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	return &Service{
		client:      client,
		endpoint:    opts.Endpoint,
		apiKey:      opts.APIKey,
		perPage:     opts.PerPage,
		concurrency: opts.Concurrency,
		imageHost:   strings.TrimRight(opts.ImageHost, "/"),
		pool:        pond.NewPool(DefaultLargeWorkers),
		log:         log,
	}
}

// Search runs SearchSync on a background goroutine
func (s *Service) Search(ctx context.Context, term string, done func(*model.SearchResults, error)) {
	if s.closed.Load() {
		done(nil, ErrClosed)
		return
	}
	go func() {
		done(s.SearchSync(ctx, term))
	}()
}

// SearchSync performs a search and downloads the thumbnails of every result.
// Photos whose thumbnail cannot be loaded are left out of the result set.
func (s *Service) SearchSync(ctx context.Context, term string) (*model.SearchResults, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}
	apiKey := strings.TrimSpace(s.apiKey())
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	body, err := s.get(ctx, s.searchURL(apiKey, term))
	if err != nil {
		return nil, fmt.Errorf("search for %q failed: %w", term, err)
	}

	photos, err := parseSearchResponse(body)
	if err != nil {
		return nil, fmt.Errorf("search for %q failed: %w", term, err)
	}

	loaded, err := s.loadThumbnails(ctx, photos)
	if err != nil {
		return nil, fmt.Errorf("search for %q failed: %w", term, err)
	}

	s.log.Debug().Str("term", term).Int("count", len(loaded)).Int("dropped", len(photos)-len(loaded)).Msg("search completed")
	return model.NewSearchResults(term, loaded), nil
}

// FetchLarge downloads the large rendition on the worker pool
func (s *Service) FetchLarge(ctx context.Context, photo *model.Photo, done func(image.Image, error)) {
	if photo == nil {
		done(nil, errors.New("no photo to fetch"))
		return
	}
	if s.closed.Load() {
		done(nil, ErrClosed)
		return
	}

	largeURL := s.imageURL(photo, model.SizeSuffixLarge)
	err := s.pool.Go(func() {
		img, err := s.fetchImage(ctx, largeURL)
		if err != nil {
			err = fmt.Errorf("large image for photo %s: %w", photo.ID, err)
		}
		done(img, err)
	})
	if err != nil {
		s.log.Debug().Err(err).Str("photo_id", photo.ID).Msg("large image fetch not queued")
		done(nil, fmt.Errorf("%w: %v", ErrClosed, err))
	}
}

// Close stops the worker pool after in-flight fetches complete
func (s *Service) Close() {
	if s.closed.Swap(true) {
		return
	}
	s.pool.StopAndWait()
}

// searchURL builds the REST request URL
func (s *Service) searchURL(apiKey, term string) string {
	params := url.Values{}
	params.Set("method", MethodPhotosSearch)
	params.Set("api_key", apiKey)
	params.Set("text", term)
	params.Set("per_page", strconv.Itoa(s.clampPerPage()))
	params.Set("extras", ExtrasOriginalDims)
	params.Set("format", FormatJSON)
	params.Set("nojsoncallback", "1")

	sep := "?"
	if strings.Contains(s.endpoint, "?") {
		sep = "&"
	}
	return s.endpoint + sep + params.Encode()
}

func (s *Service) clampPerPage() int {
	n := s.perPage()
	if n <= 0 {
		return DefaultPerPage
	}
	return n
}

func (s *Service) imageURL(photo *model.Photo, suffix string) string {
	if s.imageHost != "" {
		return photo.URLOnHost(s.imageHost, suffix)
	}
	if suffix == model.SizeSuffixThumbnail {
		return photo.ThumbnailURL()
	}
	return photo.LargeURL()
}

// loadThumbnails fetches thumbnails concurrently and keeps service order
func (s *Service) loadThumbnails(ctx context.Context, photos []*model.Photo) ([]*model.Photo, error) {
	thumbs := make([]image.Image, len(photos))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)

	for i, photo := range photos {
		group.Go(func() error {
			img, err := s.fetchImage(groupCtx, s.imageURL(photo, model.SizeSuffixThumbnail))
			if err != nil {
				if ctxErr := groupCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				s.log.Warn().Err(err).Str("photo_id", photo.ID).Msg("skipping photo without thumbnail")
				return nil
			}
			thumbs[i] = img
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	loaded := make([]*model.Photo, 0, len(photos))
	for i, photo := range photos {
		if thumbs[i] == nil {
			continue
		}
		photo.Thumbnail = thumbs[i]
		loaded = append(loaded, photo)
	}
	return loaded, nil
}

func (s *Service) fetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	data, err := s.get(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(data)
}

// get performs a GET and returns the body of a 2xx response
func (s *Service) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}
