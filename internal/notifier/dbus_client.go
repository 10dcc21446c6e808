package notifier

import (
	"context"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsName      = "org.freedesktop.Notifications"
	notificationsPath      = "/org/freedesktop/Notifications"
	notificationsInterface = "org.freedesktop.Notifications"
)

// DBusClient defines the interface for D-Bus operations.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/genricoloni/cmustify/internal/notifier DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// GetCapabilities returns the optional features of the notification server
	GetCapabilities(ctx context.Context) ([]string, error)

	// Notify calls org.freedesktop.Notifications.Notify and returns the notification id
	Notify(ctx context.Context, appName string, replacesID uint32, appIcon, summary, body string,
		actions []string, hints map[string]dbus.Variant, expireTimeout int32) (uint32, error)
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a real D-Bus client on a private session bus connection
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// GetCapabilities returns the optional features of the notification server
func (c *StdDBusClient) GetCapabilities(ctx context.Context) ([]string, error) {
	var caps []string
	err := c.object().CallWithContext(ctx, notificationsInterface+".GetCapabilities", 0).Store(&caps)
	return caps, err
}

// Notify shows a notification and returns its id
func (c *StdDBusClient) Notify(ctx context.Context, appName string, replacesID uint32, appIcon, summary, body string,
	actions []string, hints map[string]dbus.Variant, expireTimeout int32) (uint32, error) {
	var id uint32
	err := c.object().CallWithContext(ctx, notificationsInterface+".Notify", 0,
		appName, replacesID, appIcon, summary, body, actions, hints, expireTimeout).Store(&id)
	return id, err
}

func (c *StdDBusClient) object() dbus.BusObject {
	return c.conn.Object(notificationsName, dbus.ObjectPath(notificationsPath))
}
