package mpris

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/genricoloni/mediactl/internal/bus"
	"github.com/genricoloni/mediactl/internal/domain"
	"go.uber.org/zap"
)

const (
	busNamePrefix   = "org.mpris.MediaPlayer2."
	objectPath      = "/org/mpris/MediaPlayer2"
	rootInterface   = "org.mpris.MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"
)

// Registry discovers MPRIS players on the session bus
type Registry struct {
	logger *zap.Logger
	conn   bus.DBusClient
}

// NewRegistry creates a registry backed by the given D-Bus client
func NewRegistry(logger *zap.Logger, conn bus.DBusClient) *Registry {
	return &Registry{
		logger: logger,
		conn:   conn,
	}
}

// FindAll returns every MPRIS player currently on the bus, sorted by bus name
// so that the order is the same from one invocation to the next.
func (r *Registry) FindAll(ctx context.Context) ([]domain.Player, error) {
	names, err := r.conn.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list bus names: %v", domain.ErrRegistry, err)
	}

	var busNames []string
	for _, name := range names {
		if strings.HasPrefix(name, busNamePrefix) {
			busNames = append(busNames, name)
		}
	}
	slices.Sort(busNames)

	players := make([]domain.Player, 0, len(busNames))
	for _, name := range busNames {
		p := &Player{
			logger:   r.logger,
			conn:     r.conn,
			busName:  name,
			identity: r.identity(ctx, name),
		}
		r.logger.Debug("Detected MPRIS player",
			zap.String("name", name),
			zap.String("identity", p.identity))
		players = append(players, p)
	}

	r.logger.Debug("Player detection complete", zap.Int("count", len(players)))
	return players, nil
}

// identity reads the player's Identity property, falling back to the bus name suffix
func (r *Registry) identity(ctx context.Context, busName string) string {
	fallback := strings.TrimPrefix(busName, busNamePrefix)

	variant, err := r.conn.GetProperty(ctx, busName, objectPath, rootInterface+".Identity")
	if err != nil {
		r.logger.Debug("Failed to read player identity",
			zap.String("player", busName),
			zap.Error(err))
		return fallback
	}

	identity, ok := variant.Value().(string)
	if !ok || identity == "" {
		return fallback
	}
	return identity
}
