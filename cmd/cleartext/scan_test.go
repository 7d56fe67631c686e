package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carthworks/cleartext/internal/model"
)

// executeCommand runs the CLI with the given stdin and arguments, returning
// captured stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// TestScanCmdStdin verifies scanning stdin input.
func TestScanCmdStdin(t *testing.T) {
	t.Parallel()

	t.Run("finds hidden characters", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "he\u200Bllo", "scan", "--no-history")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{
			"HIDDEN CHARACTER REPORT",
			"Target:      stdin",
			"ZERO WIDTH SPACE",
			"U+200B",
			"1:3",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("clean input reports zero findings", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "nothing hidden", "scan", "--no-history")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "0 hidden character(s)") {
			t.Errorf("clean status missing:\n%s", out)
		}
	})

	t.Run("JSON output decodes as a report", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "a\u202Eb", "scan", "--json", "--no-history")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var report model.ScanReport
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, out)
		}
		if report.TotalCount != 1 || report.Target != "stdin" {
			t.Errorf("unexpected report: %+v", report)
		}
		if report.Occurrences[0].Name != "RIGHT-TO-LEFT OVERRIDE" {
			t.Errorf("name = %q, want RIGHT-TO-LEFT OVERRIDE", report.Occurrences[0].Name)
		}
		if report.Markup != "" {
			t.Error("markup included without --markup")
		}
	})

	t.Run("markup flag adds the rendering to JSON", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "a\u200Bb", "scan", "--json", "--markup", "--no-history")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var report model.ScanReport
		if err := json.Unmarshal([]byte(out), &report); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if !strings.Contains(report.Markup, "hidden-char-zero-width") {
			t.Errorf("markup missing placeholder span: %q", report.Markup)
		}
	})

	t.Run("markdown output", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "a\u200Bb", "scan", "--markdown", "--no-history")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "# Hidden Character Report") {
			t.Errorf("markdown header missing:\n%s", out)
		}
	})
}

// TestScanCmdFiles verifies file and batch scanning.
func TestScanCmdFiles(t *testing.T) {
	t.Parallel()

	t.Run("scans a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "input.txt")
		if err := os.WriteFile(path, []byte("soft\u00ADhyphen"), 0600); err != nil {
			t.Fatal(err)
		}

		out, err := executeCommand(t, "", "scan", "--no-history", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "SOFT HYPHEN") {
			t.Errorf("finding missing:\n%s", out)
		}
		if !strings.Contains(out, path) {
			t.Errorf("target path missing:\n%s", out)
		}
	})

	t.Run("scans multiple files in argument order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := filepath.Join(dir, "first.txt")
		second := filepath.Join(dir, "second.txt")
		if err := os.WriteFile(first, []byte("a\u200B"), 0600); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(second, []byte("b\u00AD"), 0600); err != nil {
			t.Fatal(err)
		}

		out, err := executeCommand(t, "", "scan", "--no-history", "-b", "2", first, second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "ZERO WIDTH SPACE") || !strings.Contains(out, "SOFT HYPHEN") {
			t.Errorf("findings missing:\n%s", out)
		}
	})

	t.Run("missing file fails the batch but reports it", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "", "scan", "--no-history",
			filepath.Join(t.TempDir(), "missing.txt"))
		if err == nil {
			t.Error("expected an error for an unreadable input")
		}
		if !strings.Contains(out, "ERROR") {
			t.Errorf("error status missing from report:\n%s", out)
		}
	})

	t.Run("writes the report to --output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "in.txt")
		outFile := filepath.Join(dir, "nested", "report.txt")
		if err := os.WriteFile(in, []byte("x\u200By"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := executeCommand(t, "", "scan", "--no-history", "-o", outFile, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outFile)
		if err != nil {
			t.Fatalf("report file not written: %v", err)
		}
		if !strings.Contains(string(data), "ZERO WIDTH SPACE") {
			t.Errorf("report file missing finding:\n%s", data)
		}
	})

	t.Run("html input scans only text content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		html := "<p>vis\u200Bible</p><script>var x\u200B = 1;</script>"
		if err := os.WriteFile(path, []byte(html), 0600); err != nil {
			t.Fatal(err)
		}

		out, err := executeCommand(t, "", "scan", "--html", "--no-history", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "1 hidden character(s)") {
			t.Errorf("expected exactly one finding:\n%s", out)
		}
	})
}

// TestScanCmdFailOnFound verifies the CI gate exit behavior.
func TestScanCmdFailOnFound(t *testing.T) {
	t.Parallel()

	t.Run("findings produce an error", func(t *testing.T) {
		t.Parallel()

		_, err := executeCommand(t, "a\u200Bb", "scan", "--fail-on-found", "--no-history")
		if !errors.Is(err, errHiddenCharactersFound) {
			t.Errorf("expected errHiddenCharactersFound, got %v", err)
		}
	})

	t.Run("clean input passes", func(t *testing.T) {
		t.Parallel()

		if _, err := executeCommand(t, "clean", "scan", "--fail-on-found", "--no-history"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestScanCmdValidation verifies flag validation.
func TestScanCmdValidation(t *testing.T) {
	t.Parallel()

	t.Run("conflicting formats rejected", func(t *testing.T) {
		t.Parallel()

		_, err := executeCommand(t, "x", "scan", "--json", "--markdown", "--no-history")
		if err == nil {
			t.Error("expected an error for conflicting formats")
		}
	})

	t.Run("non-positive batch size rejected", func(t *testing.T) {
		t.Parallel()

		_, err := executeCommand(t, "x", "scan", "-b", "0", "--no-history")
		if err == nil {
			t.Error("expected an error for batch size 0")
		}
	})
}
