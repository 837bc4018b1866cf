package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 20, A: 255})
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(12, 8)))

	img, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = Decode([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestFit(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		maxDim         uint
		expectW, wantH int
	}{
		{"landscape", 400, 200, 100, 100, 50},
		{"portrait", 200, 400, 100, 50, 100},
		{"square", 300, 300, 150, 150, 150},
		{"already fits", 80, 60, 100, 80, 60},
		{"zero max keeps original", 80, 60, 0, 80, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Fit(solid(tt.width, tt.height), tt.maxDim)
			assert.Equal(t, tt.expectW, out.Bounds().Dx())
			assert.Equal(t, tt.wantH, out.Bounds().Dy())
		})
	}

	assert.Nil(t, Fit(nil, 100))
}

func TestEncodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeJPEG(&buf, solid(16, 16), 0))

	decoded, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 16, decoded.Bounds().Dx())

	assert.ErrorIs(t, EncodeJPEG(&buf, nil, DefaultJPEGQuality), ErrEmptyImage)
}
