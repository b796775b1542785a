package notify

import (
	"context"
	"fmt"

	"github.com/genricoloni/mediactl/internal/bus"
	"github.com/genricoloni/mediactl/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	serviceName  = "org.freedesktop.Notifications"
	servicePath  = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
	urgencyHint  = "urgency"
)

// DBusNotifier shows notifications through the freedesktop notification service
type DBusNotifier struct {
	logger  *zap.Logger
	conn    bus.DBusClient
	appName string
}

// NewDBusNotifier creates a notifier that talks to the session bus
func NewDBusNotifier(logger *zap.Logger, conn bus.DBusClient, cfg domain.Config) *DBusNotifier {
	return &DBusNotifier{
		logger:  logger,
		conn:    conn,
		appName: cfg.GetAppName(),
	}
}

// Show displays n and returns the handle the service assigned to it.
// A nonzero n.ReplacesID updates that notification in place.
func (d *DBusNotifier) Show(ctx context.Context, n domain.Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		urgencyHint: dbus.MakeVariant(byte(n.Urgency)),
	}
	args := []interface{}{
		d.appName,
		n.ReplacesID,
		n.Icon,
		n.Summary,
		n.Body,
		[]string{}, // actions
		hints,
		int32(n.Timeout.Milliseconds()),
	}

	body, err := d.conn.Call(ctx, serviceName, servicePath, notifyMethod, args)
	if err != nil {
		return 0, fmt.Errorf("%w: notify failed: %v", domain.ErrNotify, err)
	}
	if len(body) != 1 {
		return 0, fmt.Errorf("%w: unexpected reply with %d values", domain.ErrNotify, len(body))
	}
	id, ok := body[0].(uint32)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected reply type %T", domain.ErrNotify, body[0])
	}

	d.logger.Debug("Notification shown",
		zap.Uint32("id", id),
		zap.Uint32("replaces", n.ReplacesID),
		zap.String("summary", n.Summary),
		zap.Stringer("urgency", n.Urgency))
	return id, nil
}
