package flickr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/flickr-search/internal/model"
)

// REST parameters
const (
	MethodPhotosSearch = "flickr.photos.search"
	FormatJSON         = "json"
	ExtrasOriginalDims = "o_dims"
	StatOK             = "ok"
)

// Sentinel errors
var (
	ErrEmptyTerm     = errors.New("search term is empty")
	ErrMissingAPIKey = errors.New("flickr API key is not configured")
)

// APIError is a failure reported in the response body
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("flickr API error %d: %s", e.Code, e.Message)
}

// flexInt accepts both JSON numbers and numeric strings
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", string(data), err)
	}
	*f = flexInt(n)
	return nil
}

type searchResponse struct {
	Photos  photosPage `json:"photos"`
	Stat    string     `json:"stat"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
}

type photosPage struct {
	Page    int          `json:"page"`
	Pages   int          `json:"pages"`
	PerPage int          `json:"perpage"`
	Total   flexInt      `json:"total"`
	Photo   []photoEntry `json:"photo"`
}

type photoEntry struct {
	ID      string  `json:"id"`
	Owner   string  `json:"owner"`
	Secret  string  `json:"secret"`
	Server  string  `json:"server"`
	Farm    int     `json:"farm"`
	Title   string  `json:"title"`
	OWidth  flexInt `json:"o_width"`
	OHeight flexInt `json:"o_height"`
}

func (e photoEntry) toPhoto() *model.Photo {
	return &model.Photo{
		ID:             e.ID,
		Farm:           e.Farm,
		Server:         e.Server,
		Secret:         e.Secret,
		Title:          e.Title,
		OriginalWidth:  int(e.OWidth),
		OriginalHeight: int(e.OHeight),
	}
}

// parseSearchResponse decodes a search body into photo records in service order
func parseSearchResponse(body []byte) ([]*model.Photo, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	if resp.Stat != StatOK {
		return nil, &APIError{Code: resp.Code, Message: resp.Message}
	}

	photos := make([]*model.Photo, 0, len(resp.Photos.Photo))
	for _, entry := range resp.Photos.Photo {
		if entry.ID == "" {
			continue
		}
		photos = append(photos, entry.toPhoto())
	}
	return photos, nil
}
