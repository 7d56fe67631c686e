package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/carthworks/cleartext/internal/cleaner"
)

// boolPtr returns a pointer to b, for building partial profiles in tests.
func boolPtr(b bool) *bool { return &b }

// TestProfileApply verifies the overlay semantics: set fields override,
// nil fields inherit.
func TestProfileApply(t *testing.T) {
	t.Parallel()

	t.Run("empty profile changes nothing", func(t *testing.T) {
		t.Parallel()
		base := cleaner.DefaultOptions()
		if got := (Profile{}).Apply(base); got != base {
			t.Errorf("empty profile changed options: %+v", got)
		}
	})

	t.Run("set fields override", func(t *testing.T) {
		t.Parallel()
		p := Profile{
			PreserveCR:      boolPtr(true),
			NormalizeQuotes: boolPtr(false),
		}
		got := p.Apply(cleaner.DefaultOptions())
		if !got.PreserveCR {
			t.Error("PreserveCR not overridden")
		}
		if got.NormalizeQuotes {
			t.Error("NormalizeQuotes not overridden")
		}
		if !got.RemoveControl {
			t.Error("unset field did not inherit the base value")
		}
	})
}

// TestFileResolve verifies the defaults-then-profile resolution order.
func TestFileResolve(t *testing.T) {
	t.Parallel()

	cf := &File{
		Defaults: Profile{NormalizeDashes: boolPtr(false)},
		Profiles: map[string]Profile{
			"strict": {PreserveTab: boolPtr(false)},
			"code":   {NormalizeDashes: boolPtr(true), PreserveCR: boolPtr(true)},
		},
	}

	t.Run("empty name resolves file defaults", func(t *testing.T) {
		t.Parallel()
		opts, ok := cf.Resolve("")
		if !ok {
			t.Fatal("empty name must always resolve")
		}
		if opts.NormalizeDashes {
			t.Error("file defaults not applied")
		}
		if !opts.PreserveTab {
			t.Error("built-in default lost")
		}
	})

	t.Run("profile overlays file defaults", func(t *testing.T) {
		t.Parallel()
		opts, ok := cf.Resolve("strict")
		if !ok {
			t.Fatal("known profile must resolve")
		}
		if opts.PreserveTab {
			t.Error("profile override not applied")
		}
		if opts.NormalizeDashes {
			t.Error("file defaults not carried into the profile")
		}
	})

	t.Run("profile can undo a file default", func(t *testing.T) {
		t.Parallel()
		opts, ok := cf.Resolve("code")
		if !ok {
			t.Fatal("known profile must resolve")
		}
		if !opts.NormalizeDashes {
			t.Error("profile did not override the file default")
		}
		if !opts.PreserveCR {
			t.Error("profile field not applied")
		}
	})

	t.Run("unknown profile reports not found", func(t *testing.T) {
		t.Parallel()
		if _, ok := cf.Resolve("nope"); ok {
			t.Error("unknown profile resolved")
		}
	})
}

// TestLoadConfigFile verifies YAML loading and the not-found sentinel.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads defaults and profiles", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".cleartext")
		content := `defaults:
  preserveCR: true
profiles:
  prose:
    normalizeQuotes: false
    normalizeDashes: false
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		opts, ok := cf.Resolve("prose")
		if !ok {
			t.Fatal("prose profile not found")
		}
		if !opts.PreserveCR {
			t.Error("defaults.preserveCR not applied")
		}
		if opts.NormalizeQuotes || opts.NormalizeDashes {
			t.Error("prose overrides not applied")
		}
		if !opts.RemoveControl {
			t.Error("unset option lost its built-in default")
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed YAML returns an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".cleartext")
		if err := os.WriteFile(path, []byte("profiles: [not a map"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected a parse error")
		}
	})
}

// TestFindConfigFile verifies the explicit-path branch of the search.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path wins", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile = %q, want %q", got, path)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()
		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("FindConfigFile = %q, want empty", got)
		}
	})
}
