package engine

import (
	"context"
	"fmt"

	"github.com/genricoloni/mediactl/internal/domain"
)

type actionKind int

const (
	transportAction actionKind = iota
	cycleAction
)

// action describes how one command is applied and how it is labelled
type action struct {
	kind  actionKind
	label string
	icon  string
	// step is the roster offset for cycle actions
	step int
	// invoke is the player operation for transport actions
	invoke func(domain.Player, context.Context) error
}

// actions is keyed by resolved command. CommandPlayPause never appears here:
// it is resolved to CommandPlay or CommandPause first.
var actions = map[domain.Command]action{
	domain.CommandPlay: {
		kind:   transportAction,
		label:  "Play",
		icon:   "gtk-media-play-ltr",
		invoke: domain.Player.Play,
	},
	domain.CommandPause: {
		kind:   transportAction,
		label:  "Pause",
		icon:   "gtk-media-pause",
		invoke: domain.Player.Pause,
	},
	domain.CommandNext: {
		kind:   transportAction,
		label:  "Next track",
		icon:   "gtk-media-next-ltr",
		invoke: domain.Player.Next,
	},
	domain.CommandPrevious: {
		kind:   transportAction,
		label:  "Previous track",
		icon:   "gtk-media-previous-ltr",
		invoke: domain.Player.Previous,
	},
	domain.CommandNextPlayer: {
		kind:  cycleAction,
		label: "Selected player",
		icon:  "forward",
		step:  1,
	},
	domain.CommandPreviousPlayer: {
		kind:  cycleAction,
		label: "Selected player",
		icon:  "back",
		step:  -1,
	},
}

// Resolve turns PlayPause into Pause when the player is playing and Play otherwise.
// Every other command is returned unchanged.
func Resolve(cmd domain.Command, status domain.PlaybackStatus) domain.Command {
	if cmd != domain.CommandPlayPause {
		return cmd
	}
	if status == domain.StatusPlaying {
		return domain.CommandPause
	}
	return domain.CommandPlay
}

func lookup(cmd domain.Command) (action, error) {
	a, ok := actions[cmd]
	if !ok {
		return action{}, fmt.Errorf("%w: no action for command %s", domain.ErrParse, cmd)
	}
	return a, nil
}

// Outcome is the result of applying one command
type Outcome struct {
	// Command is the command as given on the command line
	Command domain.Command
	// Resolved is Command with PlayPause resolved to Play or Pause
	Resolved domain.Command
	// Active is the index of the active player after the command
	Active int
}

// IsCycle reports whether the outcome came from a player cycling command
func (o Outcome) IsCycle() bool {
	return actions[o.Resolved].kind == cycleAction
}

// Dispatch applies cmd to the roster. status is the single playback status read
// taken for PlayPause and is ignored for every other command.
func Dispatch(ctx context.Context, players []domain.Player, active int, cmd domain.Command, status domain.PlaybackStatus) (Outcome, error) {
	out := Outcome{
		Command:  cmd,
		Resolved: Resolve(cmd, status),
		Active:   active,
	}

	a, err := lookup(out.Resolved)
	if err != nil {
		return out, err
	}

	switch a.kind {
	case cycleAction:
		out.Active = Cycle(len(players), active, a.step)
	case transportAction:
		if err := a.invoke(players[active], ctx); err != nil {
			return out, err
		}
	}
	return out, nil
}
