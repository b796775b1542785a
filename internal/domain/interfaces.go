package domain

import (
	"context"
	"time"
)

// Player is one MPRIS player discovered on the session bus.
// Implementations should fail with an error wrapping ErrRegistry when the
// player is unreachable or does not support the operation.
//
//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/genricoloni/mediactl/internal/domain Player,Registry,Notifier,SelectionStore
type Player interface {
	// StableID identifies the player across separate invocations
	// (e.g., "org.mpris.MediaPlayer2.spotify")
	StableID() string

	// DisplayName is the human readable player name (e.g., "Spotify")
	DisplayName() string

	// PlaybackStatus queries the live playback state
	PlaybackStatus(ctx context.Context) (PlaybackStatus, error)

	// Metadata queries the live track metadata
	Metadata(ctx context.Context) (Metadata, error)

	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	PlayPause(ctx context.Context) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
}

// Registry enumerates the players currently available
type Registry interface {
	// FindAll returns every player in a stable order.
	// An empty slice is not an error.
	FindAll(ctx context.Context) ([]Player, error)
}

// Notifier displays desktop notifications
type Notifier interface {
	// Show displays n, replacing the notification n.ReplacesID when it is nonzero.
	// Returns the handle of the displayed notification.
	Show(ctx context.Context, n Notification) (uint32, error)
}

// SelectionStore persists the SelectionRecord between invocations
type SelectionStore interface {
	// Load never fails; problems degrade to the zero record
	Load() SelectionRecord

	// Save overwrites the stored record
	Save(rec SelectionRecord) error
}

// Config defines the interface for application configuration
type Config interface {
	// GetRuntimeDir returns the directory holding the selection file, empty when unset
	GetRuntimeDir() string

	// GetIconDir returns the directory notification icons are resolved against
	GetIconDir() string

	// GetAppName returns the application name reported to the notification service
	GetAppName() string

	// GetTransportTimeout returns how long transport confirmations stay on screen
	GetTransportTimeout() time.Duration

	// GetCycleTimeout returns how long the player roster stays on screen
	GetCycleTimeout() time.Duration

	// GetLogLevel returns the minimum log level ("debug", "info", "warn", "error")
	GetLogLevel() string

	// GetLogFile returns an optional log file path, empty to log to stderr only
	GetLogFile() string

	// GetLogMaxSizeMB returns the size at which the log file is rotated
	GetLogMaxSizeMB() int

	// GetLogMaxBackups returns how many rotated log files are kept
	GetLogMaxBackups() int
}
