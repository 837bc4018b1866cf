package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

// Encoding defaults
const (
	DefaultJPEGQuality = 85
	MinJPEGQuality     = 1
	MaxJPEGQuality     = 100
)

// ErrEmptyImage is returned when there is nothing to decode or encode
var ErrEmptyImage = errors.New("empty image")

// Decode decodes JPEG, PNG or GIF bytes
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decoded %s image has no pixels: %w", format, ErrEmptyImage)
	}

	return img, nil
}

// Fit downscales img so its longest edge is at most maxDim. Images that
// already fit, and a zero maxDim, return img unchanged.
func Fit(img image.Image, maxDim uint) image.Image {
	if img == nil || maxDim == 0 {
		return img
	}

	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())
	if width <= maxDim && height <= maxDim {
		return img
	}

	var newWidth, newHeight uint
	if width > height {
		// Landscape orientation
		newWidth = maxDim
		newHeight = uint(float64(height) * (float64(maxDim) / float64(width)))
	} else {
		// Portrait orientation or square
		newHeight = maxDim
		newWidth = uint(float64(width) * (float64(maxDim) / float64(height)))
	}
	if newWidth == 0 {
		newWidth = 1
	}
	if newHeight == 0 {
		newHeight = 1
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}

// EncodeJPEG writes img as JPEG. Out of range qualities fall back to the default.
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if img == nil {
		return ErrEmptyImage
	}
	if quality < MinJPEGQuality || quality > MaxJPEGQuality {
		quality = DefaultJPEGQuality
	}

	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("error encoding JPEG image: %w", err)
	}
	return nil
}
