package updater

import (
	"strings"
	"testing"
	"time"

	"jvmfind/internal/config"
)

func TestShouldCheck(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		lastCheck time.Time
		want      bool
	}{
		{"enabled and never checked", true, time.Time{}, true},
		{"enabled and overdue", true, time.Now().Add(-2 * CheckInterval), true},
		{"enabled but recently checked", true, time.Now().Add(-time.Hour), false},
		{"disabled", false, time.Now().Add(-2 * CheckInterval), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Update: config.UpdateConfig{
					Enabled:   tt.enabled,
					LastCheck: tt.lastCheck,
				},
			}
			u, err := New(cfg, "1.0.0")
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := u.ShouldCheck(); got != tt.want {
				t.Errorf("ShouldCheck() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateNotification(t *testing.T) {
	msg := UpdateNotification("1.0.0", "1.2.0")
	for _, want := range []string{"1.0.0", "1.2.0", "jvmfind update"} {
		if !strings.Contains(msg, want) {
			t.Errorf("UpdateNotification missing %q in %q", want, msg)
		}
	}
}

func TestTruncateChangelog(t *testing.T) {
	tests := []struct {
		name      string
		changelog string
		maxLen    int
		want      string
	}{
		{"empty", "", 100, "See release notes on GitHub for details."},
		{"short enough", "Bug fixes.", 100, "Bug fixes."},
		{"breaks at newline", "First line of notes\nSecond line of notes", 30, "First line of notes..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateChangelog(tt.changelog, tt.maxLen); got != tt.want {
				t.Errorf("truncateChangelog(%q, %d) = %q, want %q", tt.changelog, tt.maxLen, got, tt.want)
			}
		})
	}
}
