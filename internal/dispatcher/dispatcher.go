package dispatcher

import (
	"context"
	"errors"

	"github.com/genricoloni/cmustify/internal/cover"
	"github.com/genricoloni/cmustify/internal/domain"
	"github.com/genricoloni/cmustify/internal/formatter"
	"github.com/genricoloni/cmustify/internal/parser"
	"go.uber.org/zap"
)

// Summary is the fixed title of every notification
const Summary = "Cmustify - Current song"

// Dispatcher runs the status line pipeline: parse, format, notify.
type Dispatcher struct {
	logger   *zap.Logger
	notifier domain.Notifier
	covers   domain.CoverLoader
}

// NewDispatcher creates a dispatcher. covers may be nil to skip album art.
func NewDispatcher(logger *zap.Logger, notifier domain.Notifier, covers domain.CoverLoader) *Dispatcher {
	return &Dispatcher{
		logger:   logger,
		notifier: notifier,
		covers:   covers,
	}
}

// Run turns one cmus status line into exactly one notification.
// A notifier error is returned as is.
func (d *Dispatcher) Run(ctx context.Context, raw string) error {
	meta := parser.Parse(raw)
	body := formatter.FormatNotificationBody(meta)

	d.logger.Debug("Status line parsed",
		zap.Int("fields", len(meta)),
		zap.String("body", body))

	n := domain.Notification{
		Summary: Summary,
		Body:    body,
		Cover:   d.loadCover(ctx, meta),
	}

	return d.notifier.Send(ctx, n)
}

// loadCover returns album art for local tracks, nil when there is none
func (d *Dispatcher) loadCover(ctx context.Context, meta domain.Metadata) *domain.CoverImage {
	if d.covers == nil {
		return nil
	}

	file, ok := meta.Get(domain.TagFile)
	if !ok {
		return nil
	}

	img, err := d.covers.Load(ctx, file)
	switch {
	case err == nil:
		return img
	case errors.Is(err, cover.ErrDisabled), errors.Is(err, cover.ErrNotFound):
		d.logger.Debug("No cover attached", zap.String("file", file), zap.Error(err))
	default:
		d.logger.Warn("Failed to load cover", zap.String("file", file), zap.Error(err))
	}
	return nil
}
