package model

import (
	"time"

	"github.com/google/uuid"
)

// SearchResults holds the photos returned by one search, in service order
type SearchResults struct {
	ID        string
	Term      string
	Photos    []*Photo
	CreatedAt time.Time
}

// NewSearchResults creates a result set for the given term
func NewSearchResults(term string, photos []*Photo) *SearchResults {
	if photos == nil {
		photos = make([]*Photo, 0)
	}
	return &SearchResults{
		ID:        uuid.NewString(),
		Term:      term,
		Photos:    photos,
		CreatedAt: time.Now(),
	}
}

// Len returns the number of photos
func (r *SearchResults) Len() int {
	return len(r.Photos)
}

// At returns the photo at index i, or nil when out of range
func (r *SearchResults) At(i int) *Photo {
	if i < 0 || i >= len(r.Photos) {
		return nil
	}
	return r.Photos[i]
}

// Index returns the index of photo, or -1
func (r *SearchResults) Index(photo *Photo) int {
	for i, p := range r.Photos {
		if p == photo {
			return i
		}
	}
	return -1
}

// Remove deletes and returns the photo at index i
func (r *SearchResults) Remove(i int) *Photo {
	if i < 0 || i >= len(r.Photos) {
		return nil
	}
	photo := r.Photos[i]
	r.Photos = append(r.Photos[:i], r.Photos[i+1:]...)
	return photo
}

// Insert places photo at index i. Indexes past the end append.
func (r *SearchResults) Insert(i int, photo *Photo) {
	if i < 0 {
		i = 0
	}
	if i >= len(r.Photos) {
		r.Photos = append(r.Photos, photo)
		return
	}
	r.Photos = append(r.Photos, nil)
	copy(r.Photos[i+1:], r.Photos[i:])
	r.Photos[i] = photo
}
