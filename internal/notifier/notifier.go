package notifier

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/genricoloni/cmustify/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Server capability announcing that the body is parsed as markup
const capBodyMarkup = "body-markup"

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// imageData is the (iiibiiay) payload of the "image-data" hint
type imageData struct {
	Width         int32
	Height        int32
	RowStride     int32
	HasAlpha      bool
	BitsPerSample int32
	Channels      int32
	Data          []byte
}

// DBusNotifier shows notifications through org.freedesktop.Notifications
type DBusNotifier struct {
	logger *zap.Logger
	cfg    domain.Config
	dial   func() (DBusClient, error)
}

// NewDBusNotifier creates a notifier that opens a session bus connection per notification
func NewDBusNotifier(logger *zap.Logger, cfg domain.Config) *DBusNotifier {
	return &DBusNotifier{
		logger: logger,
		cfg:    cfg,
		dial: func() (DBusClient, error) {
			return NewStdDBusClient()
		},
	}
}

// Send displays n on the desktop
func (d *DBusNotifier) Send(ctx context.Context, n domain.Notification) (err error) {
	client, err := d.dial()
	if err != nil {
		return fmt.Errorf("session bus connection failed: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(client))

	body := n.Body
	caps, capErr := client.GetCapabilities(ctx)
	if capErr != nil {
		// Older servers may not answer, plain text is always safe to send
		d.logger.Debug("Failed to query server capabilities", zap.Error(capErr))
	} else if slices.Contains(caps, capBodyMarkup) {
		body = markupEscaper.Replace(body)
	}

	hints := make(map[string]dbus.Variant)
	if c := n.Cover; c != nil {
		hints["image-data"] = dbus.MakeVariant(imageData{
			Width:         c.Width,
			Height:        c.Height,
			RowStride:     c.RowStride,
			HasAlpha:      c.HasAlpha,
			BitsPerSample: c.BitsPerSample,
			Channels:      c.Channels,
			Data:          c.Data,
		})
	}

	id, err := client.Notify(ctx,
		d.cfg.GetAppName(),
		0,
		d.cfg.GetAppIcon(),
		n.Summary,
		body,
		[]string{},
		hints,
		d.cfg.GetExpireTimeout(),
	)
	if err != nil {
		return fmt.Errorf("notify call failed: %w", err)
	}

	d.logger.Debug("Notification sent",
		zap.Uint32("id", id),
		zap.String("summary", n.Summary),
		zap.Bool("cover", n.Cover != nil))

	return nil
}
