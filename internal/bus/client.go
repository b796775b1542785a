package bus

import (
	"context"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

// DBusClient defines the interface for the D-Bus operations mediactl needs.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/genricoloni/mediactl/internal/bus DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// ListNames returns all names on the bus
	ListNames(ctx context.Context) ([]string, error)

	// GetProperty retrieves a property from a D-Bus object
	// dest: The bus name (e.g., "org.mpris.MediaPlayer2.spotify")
	// path: The object path (e.g., "/org/mpris/MediaPlayer2")
	// prop: The interface-qualified property name (e.g., "org.mpris.MediaPlayer2.Player.Metadata")
	GetProperty(ctx context.Context, dest, path, prop string) (dbus.Variant, error)

	// Call invokes an interface-qualified method and returns the reply body
	Call(ctx context.Context, dest, path, method string, args []interface{}) ([]interface{}, error)
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient opens a private connection to the session bus.
// The caller owns the connection and must Close it.
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

// ListNames returns all names on the bus
func (c *StdDBusClient) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := c.conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0).Store(&names)
	return names, err
}

// GetProperty retrieves a property from a D-Bus object
func (c *StdDBusClient) GetProperty(ctx context.Context, dest, path, prop string) (dbus.Variant, error) {
	iface, name, err := splitMember(prop)
	if err != nil {
		return dbus.Variant{}, err
	}

	var v dbus.Variant
	obj := c.conn.Object(dest, dbus.ObjectPath(path))
	err = obj.CallWithContext(ctx, "org.freedesktop.DBus.Properties.Get", 0, iface, name).Store(&v)
	return v, err
}

// Call invokes an interface-qualified method and returns the reply body
func (c *StdDBusClient) Call(ctx context.Context, dest, path, method string, args []interface{}) ([]interface{}, error) {
	obj := c.conn.Object(dest, dbus.ObjectPath(path))
	call := obj.CallWithContext(ctx, method, 0, args...)
	if call.Err != nil {
		return nil, call.Err
	}
	return call.Body, nil
}

// splitMember splits "org.example.Iface.Member" into interface and member
func splitMember(s string) (string, string, error) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 {
		return "", "", fmt.Errorf("invalid interface-qualified name %q", s)
	}
	return s[:i], s[i+1:], nil
}
