package engine

import (
	"context"
	"fmt"
	"html"
	"path/filepath"
	"strings"
	"time"

	"github.com/genricoloni/mediactl/internal/domain"
)

const activeMarker = "→ "

// Composer builds the confirmation notification for an Outcome
type Composer struct {
	iconDir          string
	transportTimeout time.Duration
	cycleTimeout     time.Duration
}

// NewComposer creates a composer using the configured icon directory and timeouts
func NewComposer(cfg domain.Config) *Composer {
	return &Composer{
		iconDir:          cfg.GetIconDir(),
		transportTimeout: cfg.GetTransportTimeout(),
		cycleTimeout:     cfg.GetCycleTimeout(),
	}
}

// Compose returns the notification for out. Transport outcomes read the active
// player's live metadata; cycle outcomes list the whole roster.
// replaces is the handle of the previous notification, 0 for none.
func (c *Composer) Compose(ctx context.Context, players []domain.Player, out Outcome, replaces uint32) (domain.Notification, error) {
	a, err := lookup(out.Resolved)
	if err != nil {
		return domain.Notification{}, err
	}
	active := players[out.Active]

	n := domain.Notification{
		Summary:    fmt.Sprintf("%s (%s)", a.label, active.DisplayName()),
		Icon:       filepath.Join(c.iconDir, a.icon+".png"),
		ReplacesID: replaces,
	}

	switch a.kind {
	case cycleAction:
		n.Body = rosterBody(players, out.Active)
		n.Urgency = domain.UrgencyNormal
		n.Timeout = c.cycleTimeout
	case transportAction:
		meta, err := active.Metadata(ctx)
		if err != nil {
			return domain.Notification{}, err
		}
		n.Body = trackBody(meta)
		n.Urgency = domain.UrgencyLow
		n.Timeout = c.transportTimeout
	}
	return n, nil
}

// trackBody renders "<artists> - <title>"; missing fields stay empty
func trackBody(meta domain.Metadata) string {
	return strings.Join(meta.Artists, ", ") + " - " + meta.Title
}

// rosterBody renders one Pango markup line per player, marking the active one
func rosterBody(players []domain.Player, active int) string {
	lines := make([]string, len(players))
	for i, p := range players {
		name := html.EscapeString(p.DisplayName())
		if i == active {
			lines[i] = activeMarker + name
		} else {
			lines[i] = `<span color="grey">` + name + `</span>`
		}
	}
	return strings.Join(lines, "\n")
}
