package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestOccurrence verifies the derived accessors on an occurrence.
func TestOccurrence(t *testing.T) {
	t.Parallel()

	t.Run("width is the UTF-8 byte length", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			char string
			want int
		}{
			{"", 1},
			{"­", 2},
			{"​", 3},
			{"\U000F0000", 4},
		}
		for _, tt := range tests {
			occ := Occurrence{Char: tt.char}
			if got := occ.Width(); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.char, got, tt.want)
			}
		}
	})

	t.Run("label formats U+XXXX", func(t *testing.T) {
		t.Parallel()
		occ := Occurrence{CodePoint: 0x200B}
		if got := occ.Label(); got != "U+200B" {
			t.Errorf("Label() = %q, want U+200B", got)
		}
	})

	t.Run("JSON uses snake_case keys", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(PositionedOccurrence{
			Occurrence: Occurrence{Offset: 3, Char: "​", CodePoint: 0x200B,
				Name: "ZERO WIDTH SPACE", Category: "Cf"},
			Line:   2,
			Column: 4,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, key := range []string{`"offset"`, `"character"`, `"code_point"`, `"name"`, `"category"`, `"line"`, `"column"`} {
			if !strings.Contains(string(data), key) {
				t.Errorf("JSON missing key %s: %s", key, data)
			}
		}
	})
}

// TestNewScanReport verifies the fields stamped at construction time.
func TestNewScanReport(t *testing.T) {
	t.Parallel()

	report := NewScanReport("document.txt", "some content")

	if report.Target != "document.txt" {
		t.Errorf("Target = %q, want document.txt", report.Target)
	}
	if report.DateScanned.IsZero() {
		t.Error("DateScanned not stamped")
	}
	if report.Fingerprint == "" {
		t.Error("Fingerprint not computed")
	}
	if report.HasOccurrences() {
		t.Error("fresh report should have no occurrences")
	}
}

// TestFingerprint verifies the content fingerprint properties: stable,
// content-sensitive, and hex-encoded at 256 bits.
func TestFingerprint(t *testing.T) {
	t.Parallel()

	t.Run("identical content shares a fingerprint", func(t *testing.T) {
		t.Parallel()
		if Fingerprint("same text") != Fingerprint("same text") {
			t.Error("fingerprints differ for identical content")
		}
	})

	t.Run("different content differs", func(t *testing.T) {
		t.Parallel()
		if Fingerprint("one") == Fingerprint("two") {
			t.Error("fingerprints collide for different content")
		}
	})

	t.Run("hidden characters change the fingerprint", func(t *testing.T) {
		t.Parallel()
		if Fingerprint("ab") == Fingerprint("a​b") {
			t.Error("fingerprint ignores hidden characters")
		}
	})

	t.Run("64 hex digits", func(t *testing.T) {
		t.Parallel()
		fp := Fingerprint("anything")
		if len(fp) != 64 {
			t.Errorf("fingerprint length = %d, want 64", len(fp))
		}
	})
}

// TestHistorySummary verifies that the persisted summary never carries the
// input text: no markup and no occurrence characters.
func TestHistorySummary(t *testing.T) {
	t.Parallel()

	report := NewScanReport("secret.txt", "classified content​")
	report.Occurrences = []PositionedOccurrence{
		{Occurrence: Occurrence{Offset: 18, Char: "​", CodePoint: 0x200B,
			Name: "ZERO WIDTH SPACE", Category: "Cf"}, Line: 1, Column: 19},
	}
	report.Frequencies = []FrequencyEntry{
		{CodePoint: 0x200B, Name: "ZERO WIDTH SPACE", Category: "Cf", Count: 1},
	}
	report.TotalCount = 1
	report.Markup = "classified content<span>...</span>"

	summary := report.HistorySummary()
	if summary.Target != "secret.txt" || summary.TotalCount != 1 {
		t.Errorf("summary scalar fields wrong: %+v", summary)
	}
	if len(summary.Frequencies) != 1 {
		t.Fatalf("expected 1 frequency entry, got %d", len(summary.Frequencies))
	}

	data, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "classified content") {
		t.Errorf("summary JSON leaks input text: %s", data)
	}
	if strings.Contains(string(data), "markup") {
		t.Errorf("summary JSON carries markup: %s", data)
	}
}

// TestDistinctCodePoints verifies the distinct count accessor.
func TestDistinctCodePoints(t *testing.T) {
	t.Parallel()

	report := NewScanReport("t", "")
	report.Frequencies = []FrequencyEntry{
		{CodePoint: 0x200B, Count: 3},
		{CodePoint: 0x00AD, Count: 1},
	}
	if got := report.DistinctCodePoints(); got != 2 {
		t.Errorf("DistinctCodePoints() = %d, want 2", got)
	}
}
