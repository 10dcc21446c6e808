package cover

import (
	"context"
	"errors"
	"fmt"
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/cmustify/internal/domain"
	"go.uber.org/zap"
)

var (
	// ErrDisabled is returned when the configured cover size is 0
	ErrDisabled = errors.New("cover art disabled")
	// ErrNotFound is returned when no cover file sits next to the track
	ErrNotFound = errors.New("no cover found")
)

// Ordered by preference, matched case-insensitively
var coverNames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"front.jpg", "front.jpeg", "front.png",
	"album.jpg", "album.jpeg", "album.png",
}

// Loader finds the album cover in the directory of a track and shrinks it
// into a notification thumbnail
type Loader struct {
	logger *zap.Logger
	size   int
}

// NewLoader creates a cover loader sized from the application configuration
func NewLoader(logger *zap.Logger, cfg domain.Config) *Loader {
	return &Loader{
		logger: logger,
		size:   cfg.GetCoverSize(),
	}
}

// Load returns a thumbnail of the cover belonging to trackPath
func (l *Loader) Load(ctx context.Context, trackPath string) (*domain.CoverImage, error) {
	if l.size <= 0 {
		return nil, ErrDisabled
	}
	if trackPath == "" {
		return nil, ErrNotFound
	}

	path, err := findCover(filepath.Dir(trackPath))
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("invalid cover dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Fit never upscales, so small covers keep their size
	thumb := imaging.Fit(img, l.size, l.size, imaging.Lanczos)

	l.logger.Debug("Cover loaded",
		zap.String("path", path),
		zap.Int("w", thumb.Rect.Dx()),
		zap.Int("h", thumb.Rect.Dy()))

	return &domain.CoverImage{
		Width:         int32(thumb.Rect.Dx()),
		Height:        int32(thumb.Rect.Dy()),
		RowStride:     int32(thumb.Stride),
		HasAlpha:      true,
		BitsPerSample: 8,
		Channels:      4,
		Data:          thumb.Pix,
	}, nil
}

// findCover returns the preferred cover file inside dir
func findCover(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to list %s: %w", dir, err)
	}

	files := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if _, seen := files[lower]; !seen {
			files[lower] = e.Name()
		}
	}

	for _, name := range coverNames {
		if actual, ok := files[name]; ok {
			return filepath.Join(dir, actual), nil
		}
	}
	return "", ErrNotFound
}
