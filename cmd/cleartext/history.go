package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/carthworks/cleartext/internal/config"
	"github.com/carthworks/cleartext/internal/database"
	"github.com/carthworks/cleartext/internal/model"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [target]",
		Short: "Show past scan summaries",
		Long: `History lists scan summaries stored by previous runs of scan: the
target, when it was scanned, the content fingerprint, and the hidden
character counts. The scanned text itself is never stored, so history
shows what was found, not what was scanned.

With a target argument, only scans of that target are listed. Repeat
scans of identical content share a fingerprint, so a changed
fingerprint for the same target means the content changed.

Examples:
  # Show the most recent scans
  cleartext history

  # Show scans of one file
  cleartext history document.txt

  # Show more entries, as JSON
  cleartext history --limit 50 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "l", 20, "Maximum number of records to show")
	cmd.Flags().BoolP("json", "j", false, "Output records as JSON")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit <= 0 {
		return errors.New("limit must be positive")
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	// mode=rw: listing history must not create an empty database.
	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false

	db, err := database.Open(config.XDGDataDir(), opts)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No scan history found. Run 'cleartext scan' first.")
		return nil
	}
	defer db.Close()

	var records []database.ScanRecord
	if len(args) == 1 {
		records, err = db.ScansByTarget(cmd.Context(), args[0], limit)
	} else {
		records, err = db.RecentScans(cmd.Context(), limit)
	}
	if err != nil {
		return fmt.Errorf("failed to read scan history: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	printHistory(cmd.OutOrStdout(), records)
	return nil
}

// printHistory renders scan records as a human-readable listing.
func printHistory(w io.Writer, records []database.ScanRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No scan records found.")
		return
	}

	fmt.Fprintf(w, "Scan history (%d records):\n\n", len(records))

	for _, record := range records {
		fmt.Fprintf(w, "[%d] %s\n", record.ID, record.Target)
		fmt.Fprintf(w, "    Scanned:     %s\n", record.Timestamp.Local().Format(time.RFC1123))
		fmt.Fprintf(w, "    Fingerprint: %s\n", shortFingerprint(record.Fingerprint))
		fmt.Fprintf(w, "    Hidden:      %d (%d distinct)\n",
			record.TotalCount, len(record.Summary.Frequencies))

		if len(record.Summary.Frequencies) > 0 {
			fmt.Fprintf(w, "    Top:         %s\n", topFrequencies(record.Summary.Frequencies, 3))
		}
		fmt.Fprintln(w)
	}
}

// shortFingerprint abbreviates a fingerprint for display.
func shortFingerprint(fp string) string {
	if len(fp) > 16 {
		return fp[:16] + "..."
	}
	return fp
}

// topFrequencies formats the first n frequency entries as a one-line
// summary. Frequencies are stored sorted by count descending.
func topFrequencies(freqs []model.FrequencyEntry, n int) string {
	if n > len(freqs) {
		n = len(freqs)
	}

	parts := make([]string, 0, n)
	for _, f := range freqs[:n] {
		parts = append(parts, fmt.Sprintf("%s x%d", f.Name, f.Count))
	}
	if len(freqs) > n {
		parts = append(parts, fmt.Sprintf("and %d more", len(freqs)-n))
	}
	return strings.Join(parts, ", ")
}
