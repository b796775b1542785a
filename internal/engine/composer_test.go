package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/genricoloni/mediactl/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCompose_Transport(t *testing.T) {
	tests := []struct {
		name            string
		resolved        domain.Command
		meta            domain.Metadata
		expectedSummary string
		expectedBody    string
		expectedIcon    string
	}{
		{
			name:            "Next track with artists",
			resolved:        domain.CommandNext,
			meta:            domain.Metadata{Artists: []string{"Queen", "David Bowie"}, Title: "Under Pressure"},
			expectedSummary: "Next track (Spotify)",
			expectedBody:    "Queen, David Bowie - Under Pressure",
			expectedIcon:    "/icons/gtk-media-next-ltr.png",
		},
		{
			name:            "Previous track",
			resolved:        domain.CommandPrevious,
			meta:            domain.Metadata{Artists: []string{"Queen"}, Title: "Bohemian Rhapsody"},
			expectedSummary: "Previous track (Spotify)",
			expectedBody:    "Queen - Bohemian Rhapsody",
			expectedIcon:    "/icons/gtk-media-previous-ltr.png",
		},
		{
			name:            "Play with no metadata",
			resolved:        domain.CommandPlay,
			meta:            domain.Metadata{},
			expectedSummary: "Play (Spotify)",
			expectedBody:    " - ",
			expectedIcon:    "/icons/gtk-media-play-ltr.png",
		},
		{
			name:            "Pause with title only",
			resolved:        domain.CommandPause,
			meta:            domain.Metadata{Title: "Live stream"},
			expectedSummary: "Pause (Spotify)",
			expectedBody:    " - Live stream",
			expectedIcon:    "/icons/gtk-media-pause.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p := newMockPlayer(ctrl, "org.mpris.MediaPlayer2.spotify", "Spotify")
			p.EXPECT().Metadata(gomock.Any()).Return(tt.meta, nil)

			out := Outcome{Command: tt.resolved, Resolved: tt.resolved, Active: 0}
			n, err := NewComposer(stubConfig{}).Compose(context.Background(), roster(p), out, 9)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if n.Summary != tt.expectedSummary {
				t.Errorf("Summary: expected %q, got %q", tt.expectedSummary, n.Summary)
			}
			if n.Body != tt.expectedBody {
				t.Errorf("Body: expected %q, got %q", tt.expectedBody, n.Body)
			}
			if n.Icon != tt.expectedIcon {
				t.Errorf("Icon: expected %q, got %q", tt.expectedIcon, n.Icon)
			}
			if n.Urgency != domain.UrgencyLow {
				t.Errorf("Urgency: expected low, got %s", n.Urgency)
			}
			if n.Timeout != 1500*time.Millisecond {
				t.Errorf("Timeout: expected 1.5s, got %v", n.Timeout)
			}
			if n.ReplacesID != 9 {
				t.Errorf("ReplacesID: expected 9, got %d", n.ReplacesID)
			}
		})
	}
}

func TestCompose_Roster(t *testing.T) {
	ctrl := gomock.NewController(t)
	players := roster(
		newMockPlayer(ctrl, "org.mpris.MediaPlayer2.foo", "Foo"),
		newMockPlayer(ctrl, "org.mpris.MediaPlayer2.bar", "Bar"),
	)

	out := Outcome{Command: domain.CommandNextPlayer, Resolved: domain.CommandNextPlayer, Active: 1}
	n, err := NewComposer(stubConfig{}).Compose(context.Background(), players, out, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(n.Body, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), n.Body)
	}
	if lines[0] != `<span color="grey">Foo</span>` {
		t.Errorf("line 1 should be muted, got %q", lines[0])
	}
	if lines[1] != "→ Bar" {
		t.Errorf("line 2 should be marked active, got %q", lines[1])
	}
	if n.Summary != "Selected player (Bar)" {
		t.Errorf("Summary: got %q", n.Summary)
	}
	if n.Icon != "/icons/forward.png" {
		t.Errorf("Icon: got %q", n.Icon)
	}
	if n.Urgency != domain.UrgencyNormal {
		t.Errorf("Urgency: expected normal, got %s", n.Urgency)
	}
	if n.Timeout != 6*time.Second {
		t.Errorf("Timeout: expected 6s, got %v", n.Timeout)
	}
}

func TestCompose_RosterPreviousAndEscaping(t *testing.T) {
	ctrl := gomock.NewController(t)
	players := roster(
		newMockPlayer(ctrl, "a", "Tom & Jerry <radio>"),
		newMockPlayer(ctrl, "b", "mpv"),
	)

	out := Outcome{Command: domain.CommandPreviousPlayer, Resolved: domain.CommandPreviousPlayer, Active: 0}
	n, err := NewComposer(stubConfig{}).Compose(context.Background(), players, out, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "→ Tom &amp; Jerry &lt;radio&gt;\n<span color=\"grey\">mpv</span>"
	if n.Body != expected {
		t.Errorf("Body: expected %q, got %q", expected, n.Body)
	}
	if n.Icon != "/icons/back.png" {
		t.Errorf("Icon: got %q", n.Icon)
	}
}

func TestCompose_MetadataFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := newMockPlayer(ctrl, "a", "A")
	p.EXPECT().Metadata(gomock.Any()).Return(domain.Metadata{}, fmt.Errorf("%w: gone", domain.ErrRegistry))

	out := Outcome{Command: domain.CommandNext, Resolved: domain.CommandNext}
	_, err := NewComposer(stubConfig{}).Compose(context.Background(), roster(p), out, 0)
	if !errors.Is(err, domain.ErrRegistry) {
		t.Fatalf("expected ErrRegistry, got %v", err)
	}
}
