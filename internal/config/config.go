package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/carthworks/cleartext/internal/cleaner"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "cleartext"

	// DefaultBatchSize is the number of files scanned concurrently when
	// multiple inputs are given. Scanning is CPU-light and allocation
	// bound, so a small bound keeps memory predictable on large batches.
	DefaultBatchSize = 4

	// StdinTarget is the target name used for stdin input in reports and
	// scan history.
	StdinTarget = "stdin"
)

// Config holds all options for a cleartext invocation. It is populated
// from CLI flags and passed through the application by value injection
// rather than global state, the same way scans are pure functions of
// their inputs.
type Config struct {
	// Targets is the list of input file paths. Empty means read stdin.
	Targets []string

	// HTMLInput extracts text content from HTML inputs before scanning.
	HTMLInput bool

	// JSONReport, MarkdownReport, and PDFReport select the report format.
	// At most one may be set; all false selects the human-readable text
	// report.
	JSONReport     bool
	MarkdownReport bool
	PDFReport      bool

	// ReportFile is the output file path for the report. Empty writes to
	// stdout.
	ReportFile string

	// BatchSize is the number of concurrent file scans.
	BatchSize int

	// FailOnFound makes scan exit non-zero when any hidden character is
	// found, for CI gates.
	FailOnFound bool

	// SaveHistory stores scan summaries in the history database.
	// The input text itself is never persisted.
	SaveHistory bool

	// DBDir is the directory holding the history database.
	DBDir string

	// ConfigFilePath is the path to the .cleartext profile file. Empty
	// triggers the default search (current directory, then home).
	ConfigFilePath string

	// Profiles holds the cleaning profiles loaded from the config file.
	Profiles *File

	// Profile is the name of the cleaning profile to apply.
	Profile string

	// Options is the resolved cleaning configuration for clean runs.
	Options cleaner.Options

	// OutputPath is where clean writes its result. Empty writes stdout.
	OutputPath string

	// InPlace rewrites each input file with its cleaned content.
	InPlace bool

	// Verbose enables slog.LevelDebug logging.
	Verbose bool
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		BatchSize:   DefaultBatchSize,
		SaveHistory: true,
		DBDir:       XDGDataDir(),
		Options:     cleaner.DefaultOptions(),
	}
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	formats := 0
	for _, set := range []bool{c.JSONReport, c.MarkdownReport, c.PDFReport} {
		if set {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	if c.InPlace && len(c.Targets) == 0 {
		return ErrInPlaceWithoutFile
	}
	if c.InPlace && c.OutputPath != "" {
		return ErrInPlaceWithOutput
	}

	return nil
}

// XDGDataDir returns the XDG data directory for cleartext.
// On Linux: ~/.local/share/cleartext
// On macOS: ~/Library/Application Support/cleartext
// On Windows: %LOCALAPPDATA%\cleartext
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
