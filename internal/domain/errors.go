package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by mediactl. Components wrap these with fmt.Errorf("...: %w").
var (
	ErrConfig   = errors.New("configuration error")
	ErrStorage  = errors.New("storage error")
	ErrRegistry = errors.New("player registry error")
	ErrNotify   = errors.New("notification error")
	ErrParse    = errors.New("invalid arguments")
	ErrBus      = errors.New("session bus unavailable")

	// ErrNoPlayers is a registry error: nothing to send the command to
	ErrNoPlayers = fmt.Errorf("%w: no media players found", ErrRegistry)
)

// Suggestion returns a hint for the user for the given error, or "" when there is none
func Suggestion(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParse):
		return "Usage: mediactl <play|pause|playpause|next|previous|next_player|previous_player>"
	case errors.Is(err, ErrNoPlayers):
		return "Start a media player that supports MPRIS and try again"
	case errors.Is(err, ErrConfig):
		return "Check that XDG_RUNTIME_DIR is set and the config file is valid YAML"
	case errors.Is(err, ErrNotify):
		return "Check that a notification daemon is running on the session bus"
	case errors.Is(err, ErrBus):
		return "Check that a D-Bus session bus is running and DBUS_SESSION_BUS_ADDRESS is set"
	case errors.Is(err, ErrStorage):
		return "Check that the runtime directory is writable"
	case errors.Is(err, ErrRegistry):
		return "Check that the player is still running on the session bus"
	}
	return ""
}

// FormatError returns a user-facing message, with a suggestion when one is available
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	if s := Suggestion(err); s != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), s)
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
