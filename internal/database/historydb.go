package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/carthworks/cleartext/internal/model"
)

// HistoryDB provides SQLite-based storage for scan summaries so repeat
// scans can be compared over time. It manages the connection pool and
// provides CRUD operations for scan records.
//
// Design decision: We store the summary as a JSON column next to a few
// indexed scalar columns rather than normalizing frequencies into their
// own table. History queries filter by target and time; they never need
// per-code-point joins.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent reads.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in the specified directory.
// If CreateIfNotExists is false and the database doesn't exist, an error
// is returned instead of creating an empty one.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "cleartext.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite DSN: mode=rw prevents creating new files,
	// mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports only one writer; multiple readers gain little for
	// a local history file.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Scan summaries; the scanned text is never stored here.
	CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		target TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		total_count INTEGER NOT NULL,
		summary_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scans_target ON scans(target);
	CREATE INDEX IF NOT EXISTS idx_scans_fingerprint ON scans(fingerprint);
	CREATE INDEX IF NOT EXISTS idx_scans_timestamp ON scans(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// ScanRecord is a stored scan summary row.
type ScanRecord struct {
	// ID is the database row ID.
	ID int64 `json:"id"`

	// Target is the scanned input name (file path or "stdin").
	Target string `json:"target"`

	// Fingerprint is the hex BLAKE2b-256 digest of the scanned content.
	Fingerprint string `json:"fingerprint"`

	// Timestamp is when the scan was stored.
	Timestamp time.Time `json:"timestamp"`

	// TotalCount is the number of hidden characters found.
	TotalCount int `json:"total_count"`

	// Summary is the stored scan summary.
	Summary model.HistorySummary `json:"summary"`
}

// SaveScanReport stores the reduced summary of a scan report.
func (hdb *HistoryDB) SaveScanReport(ctx context.Context, report *model.ScanReport) (int64, error) {
	summary := report.HistorySummary()
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize scan summary: %w", err)
	}

	query := `
	INSERT INTO scans (target, fingerprint, timestamp, total_count, summary_json)
	VALUES (?, ?, ?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query,
		summary.Target,
		summary.Fingerprint,
		summary.DateScanned.UTC().Format(time.RFC3339Nano),
		summary.TotalCount,
		string(summaryJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan record: %w", err)
	}

	return result.LastInsertId()
}

// RecentScans returns the most recent scan records across all targets,
// newest first, up to limit.
func (hdb *HistoryDB) RecentScans(ctx context.Context, limit int) ([]ScanRecord, error) {
	query := `
	SELECT id, target, fingerprint, timestamp, total_count, summary_json
	FROM scans
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`
	return hdb.queryScans(ctx, query, limit)
}

// ScansByTarget returns the most recent scan records for one target,
// newest first, up to limit.
func (hdb *HistoryDB) ScansByTarget(ctx context.Context, target string, limit int) ([]ScanRecord, error) {
	query := `
	SELECT id, target, fingerprint, timestamp, total_count, summary_json
	FROM scans
	WHERE target = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`
	return hdb.queryScans(ctx, query, target, limit)
}

// queryScans runs a scan-record query and decodes the rows.
func (hdb *HistoryDB) queryScans(ctx context.Context, query string, args ...any) ([]ScanRecord, error) {
	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan records: %w", err)
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		var record ScanRecord
		var timestamp string
		var summaryJSON string

		if err := rows.Scan(
			&record.ID,
			&record.Target,
			&record.Fingerprint,
			&timestamp,
			&record.TotalCount,
			&summaryJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}

		record.Timestamp = parseTimestamp(timestamp)
		if err := json.Unmarshal([]byte(summaryJSON), &record.Summary); err != nil {
			return nil, fmt.Errorf("failed to decode scan summary: %w", err)
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scan records: %w", err)
	}

	return records, nil
}

// parseTimestamp parses the timestamp formats SQLite hands back depending
// on how the value was written. Unparseable values become the zero time.
func parseTimestamp(s string) time.Time {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
