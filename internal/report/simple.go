package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/carthworks/cleartext/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display.
//
// Design decision: Plain ASCII section formatting rather than ANSI colors
// because it works in every terminal and pipes cleanly into files and
// other tools.
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no findings are shown.
	showEmpty bool

	// maxOccurrences caps the per-occurrence listing; 0 means unlimited.
	maxOccurrences int
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithMaxOccurrences limits the per-occurrence listing to n entries.
func WithMaxOccurrences(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.maxOccurrences = n
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.ScanReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeFrequencies(&sb, report)
	w.writeOccurrences(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                     HIDDEN CHARACTER REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Target:      %s\n", report.Target))
	sb.WriteString(fmt.Sprintf("Scan Date:   %s\n", report.DateScanned.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Fingerprint: %.16s\n", report.Fingerprint))

	if report.Error != "" {
		sb.WriteString(fmt.Sprintf("Status:      ERROR - %s\n", report.Error))
	} else {
		sb.WriteString(fmt.Sprintf("Status:      %d hidden character(s), %d distinct code point(s)\n",
			report.TotalCount, report.DistinctCodePoints()))
	}
	sb.WriteString("\n")
}

// writeFrequencies writes the per-code-point frequency table.
func (w *SimpleWriter) writeFrequencies(sb *strings.Builder, report *model.ScanReport) {
	if len(report.Frequencies) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("FREQUENCY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.Frequencies) == 0 {
		sb.WriteString("  No hidden characters found\n")
	} else {
		for _, entry := range report.Frequencies {
			sb.WriteString(fmt.Sprintf("  %6dx  %-8s %-4s %s\n",
				entry.Count, entry.Label(), entry.Category, entry.Name))
		}
	}
	sb.WriteString("\n")
}

// writeOccurrences writes the positioned occurrence listing.
func (w *SimpleWriter) writeOccurrences(sb *strings.Builder, report *model.ScanReport) {
	if len(report.Occurrences) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("OCCURRENCES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.Occurrences) == 0 {
		sb.WriteString("  No hidden characters found\n\n")
		return
	}

	shown := report.Occurrences
	truncated := 0
	if w.maxOccurrences > 0 && len(shown) > w.maxOccurrences {
		truncated = len(shown) - w.maxOccurrences
		shown = shown[:w.maxOccurrences]
	}

	for _, occ := range shown {
		sb.WriteString(fmt.Sprintf("  %d:%d  %-8s %-4s %s (offset %d)\n",
			occ.Line, occ.Column, occ.Label(), occ.Category, occ.Name, occ.Offset))
	}
	if truncated > 0 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", truncated))
	}
	sb.WriteString("\n")
}
