package model

import (
	"fmt"
	"image"
	"strings"

	"fyne.io/fyne/v2"
)

// Image size suffixes understood by the photo CDN.
const (
	SizeSuffixThumbnail = "m" // 240px on the longest side
	SizeSuffixLarge     = "b" // 1024px on the longest side

	staticHostFormat = "https://farm%d.staticflickr.com"
	liveStaticHost   = "https://live.staticflickr.com"
)

// Photo is a single search result.
type Photo struct {
	ID     string
	Farm   int
	Server string
	Secret string
	Title  string

	Thumbnail image.Image // set once the search result loads
	Large     image.Image // nil until explicitly fetched

	// Full resolution pixel dimensions, 0 when unknown
	OriginalWidth  int
	OriginalHeight int
}

// ThumbnailURL returns the URL of the thumbnail rendition
func (p *Photo) ThumbnailURL() string {
	return p.imageURL(SizeSuffixThumbnail)
}

// LargeURL returns the URL of the large rendition
func (p *Photo) LargeURL() string {
	return p.imageURL(SizeSuffixLarge)
}

func (p *Photo) imageURL(suffix string) string {
	host := liveStaticHost
	if p.Farm > 0 {
		host = fmt.Sprintf(staticHostFormat, p.Farm)
	}
	return p.URLOnHost(host, suffix)
}

// URLOnHost builds the rendition URL for suffix on the given image host
func (p *Photo) URLOnHost(host, suffix string) string {
	return fmt.Sprintf("%s/%s/%s_%s_%s.jpg", strings.TrimRight(host, "/"), p.Server, p.ID, p.Secret, suffix)
}

// HasLarge reports whether the large image was already fetched
func (p *Photo) HasLarge() bool {
	return p.Large != nil
}

// SetLarge caches the large image. An image that is already cached is kept,
// so a record is never refreshed with a second copy.
func (p *Photo) SetLarge(img image.Image) bool {
	if img == nil || p.Large != nil {
		return false
	}
	p.Large = img
	if p.OriginalWidth <= 0 || p.OriginalHeight <= 0 {
		b := img.Bounds()
		p.OriginalWidth, p.OriginalHeight = b.Dx(), b.Dy()
	}
	return true
}

// AspectRatio returns width/height of the best known rendition, or 0
func (p *Photo) AspectRatio() float32 {
	if p.OriginalWidth > 0 && p.OriginalHeight > 0 {
		return float32(p.OriginalWidth) / float32(p.OriginalHeight)
	}
	for _, img := range []image.Image{p.Large, p.Thumbnail} {
		if img == nil {
			continue
		}
		b := img.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 {
			return float32(b.Dx()) / float32(b.Dy())
		}
	}
	return 0
}

// SizeToFillWidth returns a size whose width fills bounds while keeping the
// photo aspect ratio. When the height would overflow bounds it is capped and
// the width shrinks accordingly.
func (p *Photo) SizeToFillWidth(bounds fyne.Size) fyne.Size {
	ratio := p.AspectRatio()
	if ratio <= 0 {
		return bounds
	}

	size := fyne.NewSize(bounds.Width, bounds.Width/ratio)
	if size.Height > bounds.Height {
		size.Height = bounds.Height
		size.Width = bounds.Height * ratio
	}
	return size
}

// DisplayTitle returns the title or the ID when the title is empty
func (p *Photo) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.ID
}
