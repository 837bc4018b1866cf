package platform

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/flickr-search/internal/imaging"
)

// Export naming
const (
	ShareDirPrefix  = "share-"
	ShareFileFormat = "photo-%02d.jpg"
)

// ErrNothingToShare is returned when Export receives no images
var ErrNothingToShare = errors.New("nothing to share")

// ShareExporter writes shared photos into a fresh folder and reveals it
type ShareExporter struct {
	baseDir      func() string
	maxDimension uint
	quality      int
	reveal       func(dir string) error
	log          zerolog.Logger
}

// NewShareExporter creates an exporter. baseDir is evaluated on every export
// so a changed setting takes effect immediately.
func NewShareExporter(baseDir func() string, maxDimension uint, log zerolog.Logger) *ShareExporter {
	return &ShareExporter{
		baseDir:      baseDir,
		maxDimension: maxDimension,
		quality:      imaging.DefaultJPEGQuality,
		reveal:       OpenFolderInManager,
		log:          log,
	}
}

// SetRevealFunc replaces how the export folder is shown to the user.
// A nil func disables revealing.
func (e *ShareExporter) SetRevealFunc(reveal func(dir string) error) {
	e.reveal = reveal
}

// Share exports the images on a background goroutine and calls done with
// the outcome. It satisfies the grid share mechanism.
func (e *ShareExporter) Share(images []image.Image, done func(error)) {
	go func() {
		dir, err := e.Export(images)
		if err == nil && e.reveal != nil {
			if revealErr := e.reveal(dir); revealErr != nil {
				// The export itself succeeded
				e.log.Warn().Err(revealErr).Str("dir", dir).Msg("failed to reveal share folder")
			}
		}
		if done != nil {
			done(err)
		}
	}()
}

// Export writes images as numbered JPEG files into a new share folder and
// returns its path.
func (e *ShareExporter) Export(images []image.Image) (string, error) {
	if len(images) == 0 {
		return "", ErrNothingToShare
	}

	dir := filepath.Join(e.baseDir(), ShareDirPrefix+uuid.NewString())
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("error creating share directory %s: %w", dir, err)
	}

	written := 0
	for _, img := range images {
		if img == nil {
			continue
		}
		written++
		path := filepath.Join(dir, fmt.Sprintf(ShareFileFormat, written))
		if err := e.writeImage(path, img); err != nil {
			return dir, err
		}
		if err := NotifyMediaScanner(path); err != nil {
			e.log.Debug().Err(err).Str("path", path).Msg("media scanner notification failed")
		}
	}

	e.log.Info().Int("count", written).Str("dir", dir).Msg("photos exported for sharing")
	return dir, nil
}

func (e *ShareExporter) writeImage(path string, img image.Image) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("error creating share file %s: %w", path, err)
	}
	defer out.Close()

	if err := imaging.EncodeJPEG(out, imaging.Fit(img, e.maxDimension), e.quality); err != nil {
		return fmt.Errorf("error writing share file %s: %w", path, err)
	}
	return nil
}
