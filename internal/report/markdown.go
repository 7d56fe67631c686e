package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/carthworks/cleartext/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown, suitable for
// documentation, code review comments, and CI artifacts.
//
// Design decision: We use the nao1215/markdown library for fluent,
// type-safe markdown generation with table support instead of hand-built
// string concatenation.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeFrequencies(md, report)
	w.writeOccurrences(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ScanReport) {
	md.H1("Hidden Character Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Target", "`" + report.Target + "`"},
			{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Fingerprint", "`" + report.Fingerprint + "`"},
			{"Hidden Characters", strconv.Itoa(report.TotalCount)},
			{"Distinct Code Points", strconv.Itoa(report.DistinctCodePoints())},
			{"Status", w.statusText(report)},
		},
	})
	md.PlainText("")
}

// statusText returns the status cell based on report state.
func (w *MarkdownWriter) statusText(report *model.ScanReport) string {
	switch {
	case report.Error != "":
		return "❌ Error - " + report.Error
	case report.HasOccurrences():
		return "⚠️ Hidden characters found"
	default:
		return "✅ Clean"
	}
}

// writeFrequencies writes the per-code-point frequency table.
func (w *MarkdownWriter) writeFrequencies(md *markdown.Markdown, report *model.ScanReport) {
	if len(report.Frequencies) == 0 {
		return
	}

	md.H2("Frequency")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Frequencies))
	for _, entry := range report.Frequencies {
		rows = append(rows, []string{
			"`" + entry.Label() + "`",
			entry.Name,
			entry.Category,
			strconv.Itoa(entry.Count),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Code Point", "Name", "Category", "Count"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeOccurrences writes the positioned occurrence table.
func (w *MarkdownWriter) writeOccurrences(md *markdown.Markdown, report *model.ScanReport) {
	if len(report.Occurrences) == 0 {
		return
	}

	md.H2("Occurrences")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Occurrences))
	for _, occ := range report.Occurrences {
		rows = append(rows, []string{
			strconv.Itoa(occ.Line) + ":" + strconv.Itoa(occ.Column),
			"`" + occ.Label() + "`",
			occ.Name,
			occ.Category,
			strconv.Itoa(occ.Offset),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Position", "Code Point", "Name", "Category", "Offset"},
		Rows:   rows,
	})
	md.PlainText("")
}
