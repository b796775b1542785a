package mpris

import (
	"context"
	"fmt"

	"github.com/genricoloni/mediactl/internal/bus"
	"github.com/genricoloni/mediactl/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

// Player is a single MPRIS player reached over D-Bus
type Player struct {
	logger   *zap.Logger
	conn     bus.DBusClient
	busName  string // Well-known name, e.g. org.mpris.MediaPlayer2.spotify
	identity string
}

// StableID returns the player's well-known bus name
func (p *Player) StableID() string {
	return p.busName
}

// DisplayName returns the player's MPRIS Identity
func (p *Player) DisplayName() string {
	return p.identity
}

// PlaybackStatus queries the live playback status
func (p *Player) PlaybackStatus(ctx context.Context) (domain.PlaybackStatus, error) {
	variant, err := p.conn.GetProperty(ctx, p.busName, objectPath, playerInterface+".PlaybackStatus")
	if err != nil {
		return domain.StatusUnknown, fmt.Errorf("%w: %s: failed to get playback status: %v", domain.ErrRegistry, p.busName, err)
	}

	status, ok := variant.Value().(string)
	if !ok {
		return domain.StatusUnknown, fmt.Errorf("%w: %s: invalid playback status format", domain.ErrRegistry, p.busName)
	}
	return parseStatus(status), nil
}

// Metadata queries the live track metadata
func (p *Player) Metadata(ctx context.Context) (domain.Metadata, error) {
	variant, err := p.conn.GetProperty(ctx, p.busName, objectPath, playerInterface+".Metadata")
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("%w: %s: failed to get metadata: %v", domain.ErrRegistry, p.busName, err)
	}

	// Some players return nil or unexpected types when nothing is loaded
	metadata, ok := variant.Value().(map[string]dbus.Variant)
	if !ok {
		p.logger.Debug("Metadata variant is not a map, using empty metadata", zap.String("player", p.busName))
		return domain.Metadata{}, nil
	}
	return p.parseMetadata(metadata), nil
}

// Play starts or resumes playback
func (p *Player) Play(ctx context.Context) error {
	return p.call(ctx, "Play")
}

// Pause pauses playback
func (p *Player) Pause(ctx context.Context) error {
	return p.call(ctx, "Pause")
}

// PlayPause toggles playback.
// The engine never calls it: it reads the status and sends Play or Pause instead.
func (p *Player) PlayPause(ctx context.Context) error {
	return p.call(ctx, "PlayPause")
}

// Next skips to the next track
func (p *Player) Next(ctx context.Context) error {
	return p.call(ctx, "Next")
}

// Previous skips to the previous track
func (p *Player) Previous(ctx context.Context) error {
	return p.call(ctx, "Previous")
}

func (p *Player) call(ctx context.Context, method string) error {
	p.logger.Debug("Sending transport command",
		zap.String("player", p.busName),
		zap.String("method", method))

	if _, err := p.conn.Call(ctx, p.busName, objectPath, playerInterface+"."+method, nil); err != nil {
		return fmt.Errorf("%w: %s: %s failed: %v", domain.ErrRegistry, p.busName, method, err)
	}
	return nil
}

// parseStatus maps the MPRIS PlaybackStatus string to the domain value
func parseStatus(status string) domain.PlaybackStatus {
	switch status {
	case "Playing":
		return domain.StatusPlaying
	case "Paused":
		return domain.StatusPaused
	case "Stopped":
		return domain.StatusStopped
	default:
		return domain.StatusUnknown
	}
}

// parseMetadata converts MPRIS metadata to the domain model
func (p *Player) parseMetadata(metadata map[string]dbus.Variant) domain.Metadata {
	var meta domain.Metadata

	if titleVar, ok := metadata["xesam:title"]; ok {
		if title, ok := titleVar.Value().(string); ok {
			meta.Title = title
		}
	}

	// xesam:artist is a list, but some non-compliant players send a single string
	if artistVar, ok := metadata["xesam:artist"]; ok {
		switch artists := artistVar.Value().(type) {
		case []string:
			meta.Artists = artists
		case string:
			if artists != "" {
				meta.Artists = []string{artists}
			}
		default:
			p.logger.Debug("Unexpected artist type in metadata",
				zap.String("player", p.busName),
				zap.String("type", fmt.Sprintf("%T", artistVar.Value())))
		}
	}

	return meta
}
