package bus

import "testing"

func TestSplitMember(t *testing.T) {
	tests := []struct {
		input      string
		wantIface  string
		wantMember string
		wantErr    bool
	}{
		{"org.mpris.MediaPlayer2.Player.Metadata", "org.mpris.MediaPlayer2.Player", "Metadata", false},
		{"org.mpris.MediaPlayer2.Identity", "org.mpris.MediaPlayer2", "Identity", false},
		{"Identity", "", "", true},
		{".Identity", "", "", true},
		{"org.mpris.", "", "", true},
	}

	for _, tt := range tests {
		iface, member, err := splitMember(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("splitMember(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("splitMember(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if iface != tt.wantIface || member != tt.wantMember {
			t.Errorf("splitMember(%q): got (%q, %q), want (%q, %q)", tt.input, iface, member, tt.wantIface, tt.wantMember)
		}
	}
}
