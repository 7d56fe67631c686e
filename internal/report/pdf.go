package report

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/carthworks/cleartext/internal/model"
)

// PDFWriter outputs reports as a single-column PDF document, for audits
// that need a printable artifact.
//
// Design decision: We stick to the built-in Helvetica core font. Every
// string rendered into the PDF (names, hex labels, categories, positions)
// is plain ASCII, so no font embedding is needed and the output stays
// small.
type PDFWriter struct {
	baseWriter
}

// NewPDFWriter creates a PDFWriter that outputs to the given writer.
func NewPDFWriter(output io.Writer) *PDFWriter {
	return &PDFWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the report and writes the PDF bytes to the destination.
func (w *PDFWriter) Write(report *model.ScanReport) (int, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(true, 36)
	pdf.AddPage()

	w.writeHeader(pdf, report)
	w.writeFrequencies(pdf, report)
	w.writeOccurrences(pdf, report)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return 0, fmt.Errorf("failed to render PDF report: %w", err)
	}
	return w.output.Write(buf.Bytes())
}

// writeHeader renders the title block and scan metadata.
func (w *PDFWriter) writeHeader(pdf *fpdf.Fpdf, report *model.ScanReport) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 24, "Hidden Character Report", "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	meta := [][2]string{
		{"Target", report.Target},
		{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
		{"Fingerprint", report.Fingerprint},
		{"Hidden Characters", fmt.Sprintf("%d (%d distinct code points)",
			report.TotalCount, report.DistinctCodePoints())},
	}
	for _, row := range meta {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 14, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 14, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)
}

// writeFrequencies renders the frequency table.
func (w *PDFWriter) writeFrequencies(pdf *fpdf.Fpdf, report *model.ScanReport) {
	if len(report.Frequencies) == 0 {
		return
	}

	w.sectionTitle(pdf, "Frequency")
	w.tableHeader(pdf, []string{"Code Point", "Name", "Category", "Count"},
		[]float64{80, 240, 70, 60})

	pdf.SetFont("Helvetica", "", 9)
	for _, entry := range report.Frequencies {
		pdf.CellFormat(80, 13, entry.Label(), "B", 0, "L", false, 0, "")
		pdf.CellFormat(240, 13, entry.Name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(70, 13, entry.Category, "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 13, fmt.Sprintf("%d", entry.Count), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(10)
}

// writeOccurrences renders the positioned occurrence table.
func (w *PDFWriter) writeOccurrences(pdf *fpdf.Fpdf, report *model.ScanReport) {
	if len(report.Occurrences) == 0 {
		return
	}

	w.sectionTitle(pdf, "Occurrences")
	w.tableHeader(pdf, []string{"Position", "Code Point", "Name", "Category"},
		[]float64{80, 80, 220, 70})

	pdf.SetFont("Helvetica", "", 9)
	for _, occ := range report.Occurrences {
		pdf.CellFormat(80, 13, fmt.Sprintf("%d:%d", occ.Line, occ.Column), "B", 0, "L", false, 0, "")
		pdf.CellFormat(80, 13, occ.Label(), "B", 0, "L", false, 0, "")
		pdf.CellFormat(220, 13, occ.Name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(70, 13, occ.Category, "B", 1, "L", false, 0, "")
	}
	pdf.Ln(10)
}

// sectionTitle renders a section heading.
func (w *PDFWriter) sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 18, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// tableHeader renders a bold table header row with the given column widths.
func (w *PDFWriter) tableHeader(pdf *fpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range headers {
		align := "L"
		border := "B"
		last := 0
		if i == len(headers)-1 {
			last = 1
		}
		pdf.CellFormat(widths[i], 14, header, border, last, align, false, 0, "")
	}
}
