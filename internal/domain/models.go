package domain

import (
	"fmt"
	"time"
)

// PlaybackStatus represents the current state of a media player
type PlaybackStatus string

const (
	// StatusPlaying indicates the media is currently playing
	StatusPlaying PlaybackStatus = "Playing"
	// StatusPaused indicates the media is paused
	StatusPaused PlaybackStatus = "Paused"
	// StatusStopped indicates the media is stopped
	StatusStopped PlaybackStatus = "Stopped"
	// StatusUnknown is reported when the player sends a value outside the MPRIS set
	StatusUnknown PlaybackStatus = "Unknown"
)

// Metadata contains information about the track a player is on
type Metadata struct {
	// Artists in the order the player reports them
	Artists []string
	// Title of the current track
	Title string
}

// Command is one of the closed set of actions accepted on the command line
type Command int

const (
	CommandPlay Command = iota
	CommandPause
	CommandPlayPause
	CommandNext
	CommandPrevious
	CommandNextPlayer
	CommandPreviousPlayer
)

var commandNames = map[string]Command{
	"play":            CommandPlay,
	"pause":           CommandPause,
	"playpause":       CommandPlayPause,
	"play-pause":      CommandPlayPause,
	"next":            CommandNext,
	"previous":        CommandPrevious,
	"next_player":     CommandNextPlayer,
	"previous_player": CommandPreviousPlayer,
}

// CommandNames lists every literal ParseCommand accepts, in display order
func CommandNames() []string {
	return []string{"play", "pause", "playpause", "play-pause", "next", "previous", "next_player", "previous_player"}
}

// ParseCommand maps a command-line literal to a Command
func ParseCommand(s string) (Command, error) {
	cmd, ok := commandNames[s]
	if !ok {
		return 0, fmt.Errorf("%w: unknown command %q", ErrParse, s)
	}
	return cmd, nil
}

// String returns the canonical command-line literal
func (c Command) String() string {
	switch c {
	case CommandPlay:
		return "play"
	case CommandPause:
		return "pause"
	case CommandPlayPause:
		return "playpause"
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandNextPlayer:
		return "next_player"
	case CommandPreviousPlayer:
		return "previous_player"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// SelectionRecord is the state carried from one invocation to the next.
// NotificationID 0 means there is no prior notification to replace.
type SelectionRecord struct {
	PlayerID       string
	NotificationID uint32
}

// Urgency mirrors the freedesktop notification urgency levels
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// String returns a lowercase name for logging
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyNormal:
		return "normal"
	case UrgencyCritical:
		return "critical"
	default:
		return fmt.Sprintf("urgency(%d)", byte(u))
	}
}

// Notification is a fully composed confirmation popup
type Notification struct {
	Summary string
	// Body may contain Pango markup
	Body    string
	Icon    string
	Urgency Urgency
	Timeout time.Duration
	// ReplacesID is the handle of the notification to update in place, 0 for a new one
	ReplacesID uint32
}
