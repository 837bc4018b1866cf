package ui

import (
	"errors"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/rs/zerolog"

	"github.com/ytget/flickr-search/internal/grid"
)

// ErrShareCancelled is reported when the user dismisses the share sheet
var ErrShareCancelled = errors.New("share cancelled")

// ShareSheet asks the user to confirm a share and hands the images to the
// export mechanism
type ShareSheet struct {
	window       fyne.Window
	exporter     grid.Sharer
	localization *Localization
	log          zerolog.Logger

	onFinished func(err error)
}

// NewShareSheet creates a share sheet presenting over window
func NewShareSheet(window fyne.Window, exporter grid.Sharer, localization *Localization, log zerolog.Logger) *ShareSheet {
	return &ShareSheet{
		window:       window,
		exporter:     exporter,
		localization: localization,
		log:          log,
	}
}

// OnFinished registers a callback run after each share with its outcome.
// Cancellation is not reported.
func (s *ShareSheet) OnFinished(fn func(err error)) {
	s.onFinished = fn
}

// Share shows the confirmation dialog. done is called exactly once, when the
// dialog is dismissed or the export finishes.
func (s *ShareSheet) Share(images []image.Image, done func(error)) {
	dialog.ShowConfirm(
		s.localization.GetText(KeySharePhotos),
		s.localization.Format(KeyShareConfirm, len(images)),
		func(confirmed bool) {
			s.respond(confirmed, images, done)
		},
		s.window,
	)
}

func (s *ShareSheet) respond(confirmed bool, images []image.Image, done func(error)) {
	if !confirmed {
		s.log.Debug().Int("count", len(images)).Msg("share cancelled")
		if done != nil {
			done(ErrShareCancelled)
		}
		return
	}

	s.exporter.Share(images, func(err error) {
		if s.onFinished != nil {
			s.onFinished(err)
		}
		if done != nil {
			done(err)
		}
	})
}
