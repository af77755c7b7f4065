package middleware

import (
	"strings"
	"testing"
)

func TestValidateVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{"valid", "dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"valid with dash", "abc-def_123", "abc-def_123", false},
		{"trims whitespace", "  dQw4w9WgXcQ  ", "dQw4w9WgXcQ", false},
		{"empty", "", "", true},
		{"too short", "abc", "", true},
		{"too long", "dQw4w9WgXcQx", "", true},
		{"invalid chars", "abc def 123", "", true},
		{"sql injection", "a'; DROP--x", "", true},
		{"unicode", "abcédefghi", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateVideoID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.wantID {
				t.Errorf("got %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestValidateChannelID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "UC_x5XG1OV2P6uZZ5FSM9Ttw", false},
		{"missing UC prefix", "_x5XG1OV2P6uZZ5FSM9Ttw", true},
		{"empty", "", true},
		{"too long", "UC" + strings.Repeat("a", 31), true},
		{"invalid chars", "UC abc", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errMsg := ValidateChannelID(tt.input)
			if tt.wantErr != (errMsg != "") {
				t.Errorf("ValidateChannelID(%q) error = %q, wantErr %v", tt.input, errMsg, tt.wantErr)
			}
		})
	}
}

func TestValidateChannelIDs(t *testing.T) {
	ids, msg := ValidateChannelIDs([]string{"UCaaa", " UCbbb ", "UCaaa"})
	if msg != "" {
		t.Fatalf("unexpected error: %s", msg)
	}
	if len(ids) != 2 || ids[0] != "UCaaa" || ids[1] != "UCbbb" {
		t.Errorf("got %v, want [UCaaa UCbbb]", ids)
	}

	if _, msg := ValidateChannelIDs([]string{"UCaaa"}); msg == "" {
		t.Error("single channel should be rejected")
	}
	if _, msg := ValidateChannelIDs([]string{"UCaaa", "bad"}); msg == "" {
		t.Error("invalid channel should be rejected")
	}
	many := make([]string, 11)
	for i := range many {
		many[i] = "UC" + strings.Repeat("x", i+1)
	}
	if _, msg := ValidateChannelIDs(many); msg == "" {
		t.Error("11 channels should be rejected")
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "great video!", "great video!", false},
		{"trims", "  hi  ", "hi", false},
		{"blank", "   ", "", true},
		{"invalid utf8", "\xff\xfe", "", true},
		{"at limit", strings.Repeat("é", MaxTextLen), strings.Repeat("é", MaxTextLen), false},
		{"over limit", strings.Repeat("a", MaxTextLen+1), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateText(tt.input)
			if tt.wantErr != (errMsg != "") {
				t.Errorf("error = %q, wantErr %v", errMsg, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %d chars, want %d", len(got), len(tt.want))
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"default", "", 5, false},
		{"value", "7", 7, false},
		{"clamped", "500", 20, false},
		{"zero", "0", 0, true},
		{"negative", "-2", 0, true},
		{"not a number", "ten", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ParseLimit(tt.input, 5, 20)
			if tt.wantErr != (errMsg != "") {
				t.Errorf("error = %q, wantErr %v", errMsg, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	if _, msg := ValidateQuery(" "); msg == "" {
		t.Error("blank query should be rejected")
	}
	if q, msg := ValidateQuery(" vpn review "); msg != "" || q != "vpn review" {
		t.Errorf("got (%q, %q)", q, msg)
	}
	if _, msg := ValidateQuery(strings.Repeat("q", MaxSearchLen+1)); msg == "" {
		t.Error("long query should be rejected")
	}
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/videos/dQw4w9WgXcQ", "/api/videos/:videoId"},
		{"/api/videos/dQw4w9WgXcQ/comments", "/api/videos/:videoId/comments"},
		{"/api/channels/UCabc/history", "/api/channels/:channelId/history"},
		{"/api/channels/compare", "/api/channels/compare"},
		{"/api/jobs/4f0c3c1e-8d8e-4bb5-9a4b-0e0d5b1a2c3d", "/api/jobs/:jobId"},
		{"/api/jobs", "/api/jobs"},
		{"/health/live", "/health/live"},
	}
	for _, tt := range tests {
		if got := sanitizePath(tt.path); got != tt.want {
			t.Errorf("sanitizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
