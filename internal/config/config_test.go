package config

import (
	"errors"
	"testing"
)

// TestNewConfig verifies the defaults. This serves as living documentation;
// a change to a default fails the test so it has to be intentional.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default BatchSize is 4", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != DefaultBatchSize {
			t.Errorf("expected BatchSize %d, got %d", DefaultBatchSize, cfg.BatchSize)
		}
	})

	t.Run("history is saved by default", func(t *testing.T) {
		t.Parallel()
		if !cfg.SaveHistory {
			t.Error("expected SaveHistory to be true")
		}
	})

	t.Run("DBDir defaults to the XDG data dir", func(t *testing.T) {
		t.Parallel()
		if cfg.DBDir != XDGDataDir() {
			t.Errorf("expected DBDir %q, got %q", XDGDataDir(), cfg.DBDir)
		}
	})

	t.Run("cleaning options default to the built-ins", func(t *testing.T) {
		t.Parallel()
		if !cfg.Options.RemoveControl || !cfg.Options.PreserveTab || cfg.Options.PreserveCR {
			t.Errorf("unexpected default cleaning options: %+v", cfg.Options)
		}
	})
}

// TestConfigValidate tests the Validate method, one rule per case.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("zero batch size returns ErrInvalidBatchSize", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.BatchSize = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidBatchSize) {
			t.Errorf("expected ErrInvalidBatchSize, got %v", err)
		}
	})

	t.Run("negative batch size returns ErrInvalidBatchSize", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.BatchSize = -1
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidBatchSize) {
			t.Errorf("expected ErrInvalidBatchSize, got %v", err)
		}
	})

	t.Run("single report format is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.JSONReport = true
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("two report formats conflict", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("markdown and pdf conflict", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.MarkdownReport = true
		cfg.PDFReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("in-place without files returns ErrInPlaceWithoutFile", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.InPlace = true
		if err := cfg.Validate(); !errors.Is(err, ErrInPlaceWithoutFile) {
			t.Errorf("expected ErrInPlaceWithoutFile, got %v", err)
		}
	})

	t.Run("in-place with output returns ErrInPlaceWithOutput", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Targets = []string{"a.txt"}
		cfg.InPlace = true
		cfg.OutputPath = "out.txt"
		if err := cfg.Validate(); !errors.Is(err, ErrInPlaceWithOutput) {
			t.Errorf("expected ErrInPlaceWithOutput, got %v", err)
		}
	})

	t.Run("in-place with files is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Targets = []string{"a.txt", "b.txt"}
		cfg.InPlace = true
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
