package model

import (
	"encoding/hex"
	"time"

	"golang.org/x/crypto/blake2b"
)

// ScanReport is the aggregate result of scanning one input.
// It bundles the per-occurrence list, the frequency table, and the
// annotated rendering so report writers have a single source of truth.
//
// Design decision: A single flat struct rather than per-view types keeps
// serialization and history storage simple; the HistorySummary method
// derives the reduced form that may be persisted.
type ScanReport struct {
	// Target names the scanned input: a file path or "stdin".
	Target string `json:"target"`

	// DateScanned is when the scan was performed.
	DateScanned time.Time `json:"date_scanned"`

	// Fingerprint is the hex BLAKE2b-256 digest of the input text.
	// It identifies repeat scans of identical content without retaining
	// the content itself.
	Fingerprint string `json:"fingerprint"`

	// Occurrences lists every detected hidden character in input order.
	Occurrences []PositionedOccurrence `json:"occurrences,omitempty"`

	// Frequencies is the per-code-point frequency table, sorted by count
	// descending with ties broken by ascending code point.
	Frequencies []FrequencyEntry `json:"frequencies,omitempty"`

	// TotalCount is the total number of occurrences.
	TotalCount int `json:"total_count"`

	// Markup is the inline-annotated HTML rendering of the input.
	// Excluded from history storage because it contains the input text.
	Markup string `json:"markup,omitempty"`

	// Error records a failure to read or decode the input, for batch
	// scans that continue past individual failures.
	Error string `json:"error,omitempty"`
}

// NewScanReport creates a ScanReport for the given target and input text,
// stamping the scan time and content fingerprint. The caller fills in the
// scan results.
func NewScanReport(target, text string) *ScanReport {
	return &ScanReport{
		Target:      target,
		DateScanned: time.Now(),
		Fingerprint: Fingerprint(text),
	}
}

// HasOccurrences reports whether the scan found any hidden characters.
func (r *ScanReport) HasOccurrences() bool {
	return r.TotalCount > 0
}

// DistinctCodePoints returns the number of distinct hidden code points.
func (r *ScanReport) DistinctCodePoints() int {
	return len(r.Frequencies)
}

// HistorySummary is the reduced scan record stored in the history database.
// It deliberately omits Markup and the occurrence characters so no input
// text survives the scan.
type HistorySummary struct {
	Target      string           `json:"target"`
	DateScanned time.Time        `json:"date_scanned"`
	Fingerprint string           `json:"fingerprint"`
	TotalCount  int              `json:"total_count"`
	Frequencies []FrequencyEntry `json:"frequencies,omitempty"`
}

// HistorySummary derives the persistable summary of the report.
func (r *ScanReport) HistorySummary() HistorySummary {
	return HistorySummary{
		Target:      r.Target,
		DateScanned: r.DateScanned,
		Fingerprint: r.Fingerprint,
		TotalCount:  r.TotalCount,
		Frequencies: r.Frequencies,
	}
}

// Fingerprint returns the hex BLAKE2b-256 digest of text.
func Fingerprint(text string) string {
	sum := blake2b.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
