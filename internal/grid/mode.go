package grid

import "github.com/ytget/flickr-search/internal/model"

// Mode is the grid interaction mode. Exactly one of Browsing, Expanded or
// Sharing is active, so expansion and sharing can never overlap.
type Mode interface {
	Name() string
	isMode()
}

// Browsing is the default mode
type Browsing struct{}

// Expanded shows the photo at Position enlarged in place
type Expanded struct {
	Position model.Position
}

// Sharing allows multi-select of photos to share
type Sharing struct {
	Selection *Selection
}

func (Browsing) Name() string { return "browsing" }
func (Expanded) Name() string { return "expanded" }
func (Sharing) Name() string  { return "sharing" }

func (Browsing) isMode() {}
func (Expanded) isMode() {}
func (Sharing) isMode()  {}

// Selection is the ordered set of photos marked for sharing
type Selection struct {
	photos []*model.Photo
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{photos: make([]*model.Photo, 0)}
}

// Len returns the number of selected photos
func (s *Selection) Len() int {
	return len(s.photos)
}

// Contains reports whether photo is selected
func (s *Selection) Contains(photo *model.Photo) bool {
	return s.index(photo) >= 0
}

// Toggle adds an unselected photo or removes a selected one. It returns true
// when the photo ends up selected.
func (s *Selection) Toggle(photo *model.Photo) bool {
	if i := s.index(photo); i >= 0 {
		s.photos = append(s.photos[:i], s.photos[i+1:]...)
		return false
	}
	s.photos = append(s.photos, photo)
	return true
}

// Photos returns the selected photos in selection order
func (s *Selection) Photos() []*model.Photo {
	out := make([]*model.Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

func (s *Selection) index(photo *model.Photo) int {
	for i, p := range s.photos {
		if p == photo {
			return i
		}
	}
	return -1
}
