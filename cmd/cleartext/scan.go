package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carthworks/cleartext/internal/analyzer"
	"github.com/carthworks/cleartext/internal/config"
	"github.com/carthworks/cleartext/internal/database"
	"github.com/carthworks/cleartext/internal/input"
	"github.com/carthworks/cleartext/internal/log"
	"github.com/carthworks/cleartext/internal/model"
	"github.com/carthworks/cleartext/internal/pipeline"
	"github.com/carthworks/cleartext/internal/report"
	"github.com/carthworks/cleartext/internal/scanner"
)

// errHiddenCharactersFound is returned by scan --fail-on-found when any
// occurrence exists, so CI pipelines get a non-zero exit status.
var errHiddenCharactersFound = errors.New("hidden characters found")

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [file...]",
		Short: "Scan text for hidden Unicode characters",
		Long: `Scan reads text from files or stdin and reports every hidden character:
control characters, format characters (zero-width spaces, bidi controls),
surrogates, private-use, and unassigned code points.

Each finding carries the character name, Unicode general category, byte
offset, and 1-based line:column position. Line breaks are CR, LF, CRLF,
LINE SEPARATOR, and PARAGRAPH SEPARATOR; columns count code points.

Examples:
  # Scan a file
  cleartext scan document.txt

  # Scan stdin
  cat document.txt | cleartext scan

  # Scan several files concurrently
  cleartext scan -b 8 src/*.go

  # Extract text from HTML before scanning
  cleartext scan --html page.html

  # Machine-readable output
  cleartext scan --json document.txt

  # Fail CI when hidden characters exist
  cleartext scan --fail-on-found document.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Input flags
	cmd.Flags().Bool("html", false,
		"Treat inputs as HTML and scan only their text content")

	// Batch scanning flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent file scans")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown and --pdf)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json and --pdf)")
	cmd.Flags().Bool("pdf", false,
		"Output PDF report (mutually exclusive with --json and --markdown)")
	cmd.Flags().Bool("markup", false,
		"Include the annotated HTML rendering in JSON output")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().Bool("no-history", false,
		"Do not record the scan summary in the history database")

	// CI flags
	cmd.Flags().Bool("fail-on-found", false,
		"Exit with a non-zero status if any hidden character is found")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, includeMarkup, err := buildScanConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Context with signal handling for graceful shutdown of batch scans
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runScan(ctx, cmd, cfg, includeMarkup, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildScanConfig creates a Config from cobra command flags.
func buildScanConfig(cmd *cobra.Command, args []string) (*config.Config, bool, error) {
	cfg := config.NewConfig()
	cfg.Targets = args

	var err error

	cfg.HTMLInput, err = cmd.Flags().GetBool("html")
	if err != nil {
		return nil, false, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, false, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, false, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, false, err
	}

	cfg.PDFReport, err = cmd.Flags().GetBool("pdf")
	if err != nil {
		return nil, false, err
	}

	includeMarkup, err := cmd.Flags().GetBool("markup")
	if err != nil {
		return nil, false, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, false, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, false, err
	}
	cfg.SaveHistory = !noHistory

	cfg.FailOnFound, err = cmd.Flags().GetBool("fail-on-found")
	if err != nil {
		return nil, false, err
	}

	return cfg, includeMarkup, nil
}

// runScan executes the scan over all configured targets.
func runScan(ctx context.Context, cmd *cobra.Command, cfg *config.Config, includeMarkup bool, logger *slog.Logger) error {
	// Open the history database unless disabled. A failure to open is
	// logged but never blocks scanning.
	var db *database.HistoryDB
	if cfg.SaveHistory {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			logger.Warn("failed to open history database; continuing without history", "error", err)
		} else {
			defer db.Close()
		}
	}

	output, closeOutput, err := openReportOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := newReportWriter(cfg, output)

	// Stdin input
	if len(cfg.Targets) == 0 {
		text, err := input.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		scanReport := performScan(config.StdinTarget, text, cfg.HTMLInput, includeMarkup)

		if _, err := writer.Write(scanReport); err != nil {
			return err
		}
		saveScanReport(ctx, db, scanReport, logger)

		if cfg.FailOnFound && scanReport.HasOccurrences() {
			return errHiddenCharactersFound
		}
		return nil
	}

	// File inputs, scanned concurrently with output serialized by a mutex.
	bp := pipeline.NewBatchProcessor(
		func(_ context.Context, path string) (*model.ScanReport, error) {
			text, err := input.ReadFile(path)
			if err != nil {
				return nil, err
			}
			return performScan(path, text, cfg.HTMLInput, includeMarkup), nil
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	var mu sync.Mutex
	var writeErr error
	found := false
	failed := false

	reports, err := bp.ProcessBatchWithCallback(ctx, cfg.Targets, func(r *model.ScanReport, _ int) {
		mu.Lock()
		defer mu.Unlock()

		if r.HasOccurrences() {
			found = true
		}
		if r.Error != "" {
			failed = true
		}
		if _, err := writer.Write(r); err != nil && writeErr == nil {
			writeErr = err
		}
		saveScanReport(ctx, db, r, logger)
	})
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}
	if failed {
		return fmt.Errorf("%d of %d inputs could not be scanned", countFailed(reports), len(reports))
	}
	if cfg.FailOnFound && found {
		return errHiddenCharactersFound
	}
	return nil
}

// countFailed counts reports that carry a read/decode error.
func countFailed(reports []*model.ScanReport) int {
	n := 0
	for _, r := range reports {
		if r != nil && r.Error != "" {
			n++
		}
	}
	return n
}

// performScan runs the full scanning engine over one input and assembles
// the report: occurrence list, frequency table, and optionally the
// annotated rendering.
func performScan(target, text string, htmlInput, includeMarkup bool) *model.ScanReport {
	if htmlInput {
		text = input.ExtractText(text)
	}

	scanReport := model.NewScanReport(target, text)
	occs := scanner.Scan(text)
	scanReport.Occurrences = occs
	scanReport.Frequencies = analyzer.SummarizeOccurrences(occs)
	scanReport.TotalCount = len(occs)
	if includeMarkup {
		scanReport.Markup = analyzer.VisualizeOccurrences(text, occs)
	}
	return scanReport
}

// openReportOutput resolves the report destination: the --output file when
// set (with secure permissions, since reports describe the scanned
// content), otherwise the provided default writer.
func openReportOutput(cfg *config.Config, def io.Writer) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return def, func() {}, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// newReportWriter selects the report writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	case cfg.PDFReport:
		return report.NewPDFWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}

// saveScanReport saves the scan summary to the history database.
// If db is nil, this function is a no-op. Failures are logged, not fatal.
func saveScanReport(ctx context.Context, db *database.HistoryDB, r *model.ScanReport, logger *slog.Logger) {
	if db == nil || r == nil || r.Error != "" {
		return
	}

	if _, err := db.SaveScanReport(ctx, r); err != nil {
		logger.Error("failed to save scan summary", "target", r.Target, "error", err)
		return
	}
	logger.Debug("scan summary saved", "target", r.Target)
}
