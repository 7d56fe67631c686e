package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/carthworks/cleartext/internal/database"
	"github.com/carthworks/cleartext/internal/model"
)

func TestNewHistoryCmd(t *testing.T) {
	t.Parallel()

	cmd := NewHistoryCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "history [target]" {
			t.Errorf("unexpected Use: got %q", cmd.Use)
		}
	})

	t.Run("has flags with shorthands", func(t *testing.T) {
		t.Parallel()
		flagsWithShort := map[string]string{
			"limit": "l",
			"json":  "j",
		}
		for flag, shorthand := range flagsWithShort {
			f := cmd.Flags().Lookup(flag)
			if f == nil {
				t.Errorf("expected flag %q to exist", flag)
				continue
			}
			if f.Shorthand != shorthand {
				t.Errorf("flag %q: expected shorthand %q, got %q", flag, shorthand, f.Shorthand)
			}
		}
	})

	t.Run("default limit is 20", func(t *testing.T) {
		t.Parallel()
		f := cmd.Flags().Lookup("limit")
		if f == nil {
			t.Fatal("expected limit flag")
		}
		if f.DefValue != "20" {
			t.Errorf("expected default limit 20, got %q", f.DefValue)
		}
	})

	t.Run("db-dir flag does not exist", func(t *testing.T) {
		t.Parallel()
		// The history database always lives under the XDG data directory.
		if cmd.Flags().Lookup("db-dir") != nil {
			t.Error("db-dir flag should not exist")
		}
	})
}

// Note: runHistoryCmd is not executed end to end here because the xdg
// library caches XDG_DATA_HOME at package initialization, so t.Setenv has
// no effect on where the command opens its database. The database layer
// itself is covered by internal/database tests against a temp directory;
// these tests cover the rendering helpers.

// TestPrintHistory verifies the human-readable history rendering.
func TestPrintHistory(t *testing.T) {
	t.Parallel()

	t.Run("empty record list", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		printHistory(&buf, nil)
		if !strings.Contains(buf.String(), "No scan records found.") {
			t.Errorf("empty notice missing: %q", buf.String())
		}
	})

	t.Run("records render with summary lines", func(t *testing.T) {
		t.Parallel()

		records := []database.ScanRecord{
			{
				ID:          7,
				Target:      "document.txt",
				Fingerprint: "ab12cd34ef56ab78ab12cd34ef56ab78",
				Timestamp:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
				TotalCount:  3,
				Summary: model.HistorySummary{
					Frequencies: []model.FrequencyEntry{
						{CodePoint: 0x200B, Name: "ZERO WIDTH SPACE", Count: 2},
						{CodePoint: 0x00AD, Name: "SOFT HYPHEN", Count: 1},
					},
				},
			},
		}

		var buf bytes.Buffer
		printHistory(&buf, records)

		out := buf.String()
		for _, want := range []string{
			"[7] document.txt",
			"ab12cd34ef56ab78...",
			"Hidden:      3 (2 distinct)",
			"ZERO WIDTH SPACE x2",
			"SOFT HYPHEN x1",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})
}

// TestShortFingerprint verifies fingerprint abbreviation.
func TestShortFingerprint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"long fingerprint abbreviated", strings.Repeat("ab", 32), "abababababababab..."},
		{"short value unchanged", "abcd", "abcd"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := shortFingerprint(tt.in); got != tt.want {
				t.Errorf("shortFingerprint(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestTopFrequencies verifies the one-line frequency summary.
func TestTopFrequencies(t *testing.T) {
	t.Parallel()

	freqs := []model.FrequencyEntry{
		{Name: "ZERO WIDTH SPACE", Count: 5},
		{Name: "SOFT HYPHEN", Count: 3},
		{Name: "WORD JOINER", Count: 2},
		{Name: "NULL", Count: 1},
		{Name: "ESCAPE", Count: 1},
	}

	t.Run("caps at n with a remainder note", func(t *testing.T) {
		t.Parallel()
		got := topFrequencies(freqs, 3)
		want := "ZERO WIDTH SPACE x5, SOFT HYPHEN x3, WORD JOINER x2, and 2 more"
		if got != want {
			t.Errorf("topFrequencies = %q, want %q", got, want)
		}
	})

	t.Run("short lists have no remainder", func(t *testing.T) {
		t.Parallel()
		got := topFrequencies(freqs[:2], 3)
		want := "ZERO WIDTH SPACE x5, SOFT HYPHEN x3"
		if got != want {
			t.Errorf("topFrequencies = %q, want %q", got, want)
		}
	})
}
