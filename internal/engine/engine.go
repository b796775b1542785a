package engine

import (
	"context"
	"fmt"

	"github.com/genricoloni/mediactl/internal/domain"
	"go.uber.org/zap"
)

// Phase is a step of a single Run
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseApplying
	PhaseNotifying
	PhasePersisting
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseApplying:
		return "applying"
	case PhaseNotifying:
		return "notifying"
	case PhasePersisting:
		return "persisting"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Engine runs one command end to end: it resolves the active player, applies the
// command, shows the confirmation and records the selection for the next run.
type Engine struct {
	logger   *zap.Logger
	registry domain.Registry
	notifier domain.Notifier
	store    domain.SelectionStore
	composer *Composer
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	registry domain.Registry,
	notifier domain.Notifier,
	store domain.SelectionStore,
) *Engine {
	return &Engine{
		logger:   logger,
		registry: registry,
		notifier: notifier,
		store:    store,
		composer: NewComposer(cfg),
	}
}

// Run executes cmd. Player side effects are not rolled back when showing the
// notification or saving the selection fails afterwards.
func (e *Engine) Run(ctx context.Context, cmd domain.Command) error {
	phase := PhaseIdle
	// The caller reports the error to the user; the phase only goes to the log
	fail := func(err error) error {
		e.logger.Debug("Command failed",
			zap.Stringer("command", cmd),
			zap.Stringer("phase", phase),
			zap.Error(err))
		return err
	}

	rec := e.store.Load()

	players, err := e.registry.FindAll(ctx)
	if err != nil {
		return fail(err)
	}
	if len(players) == 0 {
		return fail(domain.ErrNoPlayers)
	}
	active := ResolveActive(players, rec.PlayerID)

	e.logger.Debug("Active player resolved",
		zap.String("player", players[active].StableID()),
		zap.Int("index", active),
		zap.Int("players", len(players)))

	// 1. Apply the command
	phase = PhaseApplying
	status := domain.StatusUnknown
	if cmd == domain.CommandPlayPause {
		// Read once: the same value decides the action and labels the notification
		status, err = players[active].PlaybackStatus(ctx)
		if err != nil {
			return fail(err)
		}
	}
	out, err := Dispatch(ctx, players, active, cmd, status)
	if err != nil {
		return fail(err)
	}

	// 2. Show the confirmation, replacing the previous one if there is one
	phase = PhaseNotifying
	note, err := e.composer.Compose(ctx, players, out, rec.NotificationID)
	if err != nil {
		return fail(err)
	}
	id, err := e.notifier.Show(ctx, note)
	if err != nil {
		return fail(err)
	}

	// 3. Remember the selection
	phase = PhasePersisting
	next := domain.SelectionRecord{
		PlayerID:       players[out.Active].StableID(),
		NotificationID: id,
	}
	if err := e.store.Save(next); err != nil {
		return fail(err)
	}

	phase = PhaseDone
	e.logger.Info("Command applied",
		zap.Stringer("command", cmd),
		zap.Stringer("resolved", out.Resolved),
		zap.String("player", next.PlayerID),
		zap.Uint32("notificationId", id),
		zap.Stringer("phase", phase))
	return nil
}
