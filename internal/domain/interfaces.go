package domain

import "context"

//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/genricoloni/cmustify/internal/domain Notifier,CoverLoader

// Notifier defines the capability of displaying a notification.
// Implementations should handle the desktop notification transport.
type Notifier interface {
	// Send displays n to the user
	// Returns an error if the notification service is unavailable
	Send(ctx context.Context, n Notification) error
}

// CoverLoader defines the interface for finding album art for a track
type CoverLoader interface {
	// Load returns a thumbnail of the cover that belongs to the track at trackPath
	// Returns an error if no usable cover exists
	Load(ctx context.Context, trackPath string) (*CoverImage, error)
}

// Config defines the interface for application configuration
type Config interface {
	// GetAppName returns the application name reported to the notification server
	GetAppName() string

	// GetAppIcon returns the themed icon name or path used when no cover is attached
	GetAppIcon() string

	// GetExpireTimeout returns the popup timeout in milliseconds, -1 for the server default
	GetExpireTimeout() int32

	// GetCoverSize returns the edge of the cover thumbnail in pixels, 0 disables covers
	GetCoverSize() int
}
