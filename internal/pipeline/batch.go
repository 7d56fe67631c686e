package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carthworks/cleartext/internal/model"
)

// ScanFunc produces a scan report for one input file. It must be safe for
// concurrent calls; the scanning engine itself is pure, so a ScanFunc only
// adds file reading on top.
type ScanFunc func(ctx context.Context, path string) (*model.ScanReport, error)

// BatchProcessor scans multiple files concurrently with a bounded number
// of goroutines.
//
// Design decision: We use errgroup.SetLimit rather than a hand-rolled
// worker pool because it is simpler and handles context cancellation
// correctly. Each file gets its own goroutine, but only the configured
// number run simultaneously.
type BatchProcessor struct {
	// scan produces the report for a single file.
	scan ScanFunc

	// concurrency is the maximum number of concurrent scans.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed reports in input order.
	results []*model.ScanReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent scans.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor around the given ScanFunc.
func NewBatchProcessor(scan ScanFunc, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		scan:        scan,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch scans all paths and returns their reports in input order.
// A file that fails to read still produces a report carrying the error;
// only context cancellation aborts the batch.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, paths []string) ([]*model.ScanReport, error) {
	return bp.ProcessBatchWithCallback(ctx, paths, nil)
}

// ProcessBatchWithCallback scans all paths, invoking cb as each report
// completes. The callback runs on the scanning goroutine; callers that
// share state across callbacks must synchronize themselves. Reports are
// returned in input order regardless of completion order.
func (bp *BatchProcessor) ProcessBatchWithCallback(ctx context.Context, paths []string, cb func(report *model.ScanReport, index int)) ([]*model.ScanReport, error) {
	bp.logger.Info("starting batch scan",
		"total_files", len(paths),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocated to maintain input order across concurrent completion.
	bp.results = make([]*model.ScanReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Debug("scanning file",
				"path", path,
				"index", i+1,
				"total", len(paths),
			)

			report, err := bp.scan(ctx, path)
			if err != nil {
				// Record the failure and keep scanning other files.
				bp.logger.Error("scan failed", "path", path, "error", err)
				report = model.NewScanReport(path, "")
				report.Error = err.Error()
			}

			bp.mu.Lock()
			bp.results[i] = report
			bp.mu.Unlock()

			if cb != nil {
				cb(report, i)
			}
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch scan finished",
		"total_files", len(paths),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	return bp.results, err
}
