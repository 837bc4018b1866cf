package flickr

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/flickr-search/internal/model"
)

const searchBody = `{
  "photos": {
    "page": 1, "pages": 10, "perpage": 3, "total": "30",
    "photo": [
      {"id": "1", "owner": "o", "secret": "s1", "server": "srv", "farm": 1, "title": "first", "o_width": "4000", "o_height": "3000"},
      {"id": "2", "owner": "o", "secret": "s2", "server": "srv", "farm": 1, "title": "broken"},
      {"id": "3", "owner": "o", "secret": "s3", "server": "srv", "farm": 1, "title": "third", "o_width": 600, "o_height": 900}
    ]
  },
  "stat": "ok"
}`

type fakeFlickr struct {
	mu       sync.Mutex
	server   *httptest.Server
	body     string
	status   int
	queries  []string
	missing  map[string]bool
	imgSize  image.Rectangle
	requests int
}

func newFakeFlickr(t *testing.T) *fakeFlickr {
	t.Helper()
	f := &fakeFlickr{
		body:    searchBody,
		status:  http.StatusOK,
		missing: map[string]bool{"/srv/2_s2_m.jpg": true},
		imgSize: image.Rect(0, 0, 24, 16),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeFlickr) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests++
	f.mu.Unlock()

	if r.URL.Path == "/rest" {
		f.mu.Lock()
		f.queries = append(f.queries, r.URL.RawQuery)
		f.mu.Unlock()
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
		return
	}

	if f.missing[r.URL.Path] {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, image.NewRGBA(f.imgSize))
	_, _ = w.Write(buf.Bytes())
}

func (f *fakeFlickr) service(apiKey string) *Service {
	return NewService(Options{
		Endpoint:    f.server.URL + "/rest",
		APIKey:      func() string { return apiKey },
		PerPage:     func() int { return 3 },
		Concurrency: 2,
		ImageHost:   f.server.URL,
	}, zerolog.Nop())
}

func TestSearchSync(t *testing.T) {
	fake := newFakeFlickr(t)
	svc := fake.service("key-123")
	defer svc.Close()

	results, err := svc.SearchSync(context.Background(), "  cats ")
	require.NoError(t, err)

	assert.Equal(t, "cats", results.Term)
	require.Equal(t, 2, results.Len(), "photo with a missing thumbnail is dropped")
	assert.Equal(t, "1", results.At(0).ID)
	assert.Equal(t, "3", results.At(1).ID)

	first := results.At(0)
	assert.NotNil(t, first.Thumbnail)
	assert.Nil(t, first.Large)
	assert.Equal(t, 4000, first.OriginalWidth)
	assert.Equal(t, 3000, first.OriginalHeight)
	assert.Equal(t, 600, results.At(1).OriginalWidth)

	require.Len(t, fake.queries, 1)
	query := fake.queries[0]
	for _, part := range []string{"method=flickr.photos.search", "api_key=key-123", "text=cats", "per_page=3", "format=json", "nojsoncallback=1", "extras=o_dims"} {
		assert.Contains(t, query, part)
	}
}

func TestSearchSync_Errors(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		term   string
		body   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			name: "empty term", apiKey: "k", term: "   ",
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrEmptyTerm) },
		},
		{
			name: "missing api key", apiKey: "", term: "cats",
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrMissingAPIKey) },
		},
		{
			name: "api failure", apiKey: "k", term: "cats",
			body: `{"stat":"fail","code":100,"message":"Invalid API Key (Key has invalid format)"}`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, 100, apiErr.Code)
				assert.Contains(t, apiErr.Error(), "Invalid API Key")
			},
		},
		{
			name: "http status", apiKey: "k", term: "cats", status: http.StatusServiceUnavailable,
			check: func(t *testing.T, err error) { assert.Contains(t, err.Error(), "unexpected status 503") },
		},
		{
			name: "malformed json", apiKey: "k", term: "cats", body: `{"photos": [`,
			check: func(t *testing.T, err error) { assert.Contains(t, err.Error(), "decode") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeFlickr(t)
			if tt.body != "" {
				fake.body = tt.body
			}
			if tt.status != 0 {
				fake.status = tt.status
			}
			svc := fake.service(tt.apiKey)
			defer svc.Close()

			results, err := svc.SearchSync(context.Background(), tt.term)
			require.Error(t, err)
			assert.Nil(t, results)
			tt.check(t, err)
		})
	}
}

func TestSearch_Async(t *testing.T) {
	fake := newFakeFlickr(t)
	svc := fake.service("k")
	defer svc.Close()

	done := make(chan *model.SearchResults, 1)
	svc.Search(context.Background(), "dogs", func(r *model.SearchResults, err error) {
		assert.NoError(t, err)
		done <- r
	})

	select {
	case r := <-done:
		assert.Equal(t, "dogs", r.Term)
	case <-time.After(5 * time.Second):
		t.Fatal("search did not complete")
	}
}

func TestFetchLarge(t *testing.T) {
	fake := newFakeFlickr(t)
	fake.imgSize = image.Rect(0, 0, 64, 48)
	svc := fake.service("k")
	defer svc.Close()

	photo := &model.Photo{ID: "1", Server: "srv", Secret: "s1"}
	done := make(chan error, 1)
	var got image.Image
	svc.FetchLarge(context.Background(), photo, func(img image.Image, err error) {
		got = img
		done <- err
	})

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.Equal(t, 64, got.Bounds().Dx())
		assert.Nil(t, photo.Large, "the source must not mutate the record")
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not complete")
	}
}

func TestFetchLarge_Failure(t *testing.T) {
	fake := newFakeFlickr(t)
	fake.missing["/srv/9_s9_b.jpg"] = true
	svc := fake.service("k")
	defer svc.Close()

	done := make(chan error, 1)
	svc.FetchLarge(context.Background(), &model.Photo{ID: "9", Server: "srv", Secret: "s9"}, func(img image.Image, err error) {
		assert.Nil(t, img)
		done <- err
	})

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "photo 9"))
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not complete")
	}
}

func TestClose(t *testing.T) {
	fake := newFakeFlickr(t)
	svc := fake.service("k")
	svc.Close()
	svc.Close()

	var fetchErr, searchErr error
	svc.FetchLarge(context.Background(), &model.Photo{ID: "1"}, func(_ image.Image, err error) { fetchErr = err })
	svc.Search(context.Background(), "cats", func(_ *model.SearchResults, err error) { searchErr = err })

	assert.ErrorIs(t, fetchErr, ErrClosed)
	assert.ErrorIs(t, searchErr, ErrClosed)
}

func TestFetchLarge_StoppedPool(t *testing.T) {
	fake := newFakeFlickr(t)
	svc := fake.service("k")
	svc.pool.StopAndWait()

	called := 0
	var fetchErr error
	svc.FetchLarge(context.Background(), &model.Photo{ID: "1"}, func(_ image.Image, err error) {
		called++
		fetchErr = err
	})

	assert.Equal(t, 1, called)
	assert.ErrorIs(t, fetchErr, ErrClosed)
}

func TestSearchURL_DefaultPerPage(t *testing.T) {
	svc := NewService(Options{PerPage: func() int { return 0 }}, zerolog.Nop())
	defer svc.Close()

	u := svc.searchURL("k", "red panda")
	assert.True(t, strings.HasPrefix(u, DefaultEndpoint+"?"))
	assert.Contains(t, u, "per_page=20")
	assert.Contains(t, u, "text=red+panda")
}

func TestImageURL_DefaultHost(t *testing.T) {
	svc := NewService(Options{}, zerolog.Nop())
	defer svc.Close()

	photo := &model.Photo{ID: "1", Farm: 2, Server: "srv", Secret: "x"}
	assert.Equal(t, photo.ThumbnailURL(), svc.imageURL(photo, model.SizeSuffixThumbnail))
	assert.Equal(t, photo.LargeURL(), svc.imageURL(photo, model.SizeSuffixLarge))
}
