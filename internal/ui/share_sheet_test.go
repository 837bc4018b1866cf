package ui

import (
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSheet(sharer *stubSharer) *ShareSheet {
	test.NewApp()
	w := test.NewWindow(nil)
	return NewShareSheet(w, sharer, NewLocalization(), zerolog.Nop())
}

func TestShareSheet_Confirmed(t *testing.T) {
	sharer := &stubSharer{}
	sheet := newTestSheet(sharer)

	var finished []error
	sheet.OnFinished(func(err error) { finished = append(finished, err) })

	images := []image.Image{image.NewRGBA(image.Rect(0, 0, 2, 2))}
	var results []error
	sheet.respond(true, images, func(err error) { results = append(results, err) })

	assert.Equal(t, images, sharer.images)
	assert.Equal(t, []error{nil}, results)
	assert.Equal(t, []error{nil}, finished)
}

func TestShareSheet_ExportError(t *testing.T) {
	boom := errors.New("disk full")
	sheet := newTestSheet(&stubSharer{err: boom})

	var finished, results []error
	sheet.OnFinished(func(err error) { finished = append(finished, err) })
	sheet.respond(true, nil, func(err error) { results = append(results, err) })

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0], boom)
	assert.Equal(t, results, finished)
}

func TestShareSheet_Cancelled(t *testing.T) {
	sharer := &stubSharer{}
	sheet := newTestSheet(sharer)

	var finished, results []error
	sheet.OnFinished(func(err error) { finished = append(finished, err) })
	sheet.respond(false, []image.Image{image.NewRGBA(image.Rect(0, 0, 2, 2))}, func(err error) { results = append(results, err) })

	assert.Nil(t, sharer.images)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0], ErrShareCancelled)
	assert.Empty(t, finished)
}
