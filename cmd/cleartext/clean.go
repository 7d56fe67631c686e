package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carthworks/cleartext/internal/cleaner"
	"github.com/carthworks/cleartext/internal/config"
	"github.com/carthworks/cleartext/internal/input"
	"github.com/carthworks/cleartext/internal/log"
)

// NewCleanCmd creates the clean command.
func NewCleanCmd() *cobra.Command {
	defaults := cleaner.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "clean [file...]",
		Short: "Remove hidden Unicode characters from text",
		Long: `Clean removes hidden characters from files or stdin and writes the
cleaned text back out. By default every invisible category is removed
while TAB and LF survive, no-break spaces become regular spaces, dash
and quote variants are normalized to their ASCII forms, and zero-width
spaces are dropped.

Named profiles in a .cleartext file (current directory, then home)
adjust these rules per project; explicit flags override the profile.

Examples:
  # Clean stdin to stdout
  pbpaste | cleartext clean

  # Clean a file to another file
  cleartext clean -o clean.txt document.txt

  # Rewrite files in place
  cleartext clean -w src/*.md

  # Keep typographic dashes and quotes
  cleartext clean --normalize-dashes=false --normalize-quotes=false notes.txt

  # Use a named profile from .cleartext
  cleartext clean -p strict document.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runCleanCmd,
	}

	// Category-removal flags
	cmd.Flags().Bool("remove-control", defaults.RemoveControl,
		"Remove control characters (category Cc)")
	cmd.Flags().Bool("remove-format", defaults.RemoveFormat,
		"Remove format characters (category Cf)")
	cmd.Flags().Bool("remove-surrogate", defaults.RemoveSurrogate,
		"Remove surrogate code points (category Cs)")
	cmd.Flags().Bool("remove-private-use", defaults.RemovePrivateUse,
		"Remove private-use characters (category Co)")
	cmd.Flags().Bool("remove-unassigned", defaults.RemoveUnassigned,
		"Remove unassigned code points (category Cn)")

	// Preservation flags
	cmd.Flags().Bool("preserve-tab", defaults.PreserveTab,
		"Keep TAB even when control characters are removed")
	cmd.Flags().Bool("preserve-lf", defaults.PreserveLF,
		"Keep LINE FEED even when control characters are removed")
	cmd.Flags().Bool("preserve-cr", defaults.PreserveCR,
		"Keep CARRIAGE RETURN even when control characters are removed")

	// Smart-replacement flags
	cmd.Flags().Bool("nbsp-to-space", defaults.NBSPToSpace,
		"Replace NO-BREAK SPACE with a regular space")
	cmd.Flags().Bool("normalize-dashes", defaults.NormalizeDashes,
		"Replace dash variants (en dash, em dash, minus sign) with '-'")
	cmd.Flags().Bool("normalize-quotes", defaults.NormalizeQuotes,
		"Replace curly quote variants with straight quotes")
	cmd.Flags().Bool("remove-zwsp", defaults.RemoveZWSP,
		"Remove ZERO WIDTH SPACE")

	// Profile flags
	cmd.Flags().StringP("profile", "p", "",
		"Name of the cleaning profile from the .cleartext file")
	cmd.Flags().StringP("config", "c", "",
		"Path to the .cleartext configuration file")

	// Output flags
	cmd.Flags().StringP("output", "o", "",
		"Write cleaned text to specified file path")
	cmd.Flags().BoolP("write", "w", false,
		"Rewrite each input file in place instead of writing to stdout")

	// Input flags
	cmd.Flags().Bool("html", false,
		"Treat inputs as HTML and clean only their text content")

	return cmd
}

// runCleanCmd executes the clean command.
func runCleanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildCleanConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	return runClean(cmd, cfg, logger)
}

// buildCleanConfig creates a Config from cobra command flags, resolving
// the cleaning options in precedence order: built-in defaults, then the
// .cleartext file's defaults, then the named profile, then any flag the
// user set explicitly.
func buildCleanConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Targets = args

	var err error

	cfg.Profile, err = cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.OutputPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.InPlace, err = cmd.Flags().GetBool("write")
	if err != nil {
		return nil, err
	}

	cfg.HTMLInput, err = cmd.Flags().GetBool("html")
	if err != nil {
		return nil, err
	}

	if err := resolveCleanOptions(cmd, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveCleanOptions fills cfg.Options from the configuration file's
// profiles and the command's explicit flags.
func resolveCleanOptions(cmd *cobra.Command, cfg *config.Config) error {
	path := config.FindConfigFile(cfg.ConfigFilePath)
	if cfg.ConfigFilePath != "" && path == "" {
		return fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if path != "" {
		cf, err := config.LoadConfigFile(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		cfg.Profiles = cf
	}

	if cfg.Profiles != nil {
		opts, ok := cfg.Profiles.Resolve(cfg.Profile)
		if !ok {
			return fmt.Errorf("%w: %q", config.ErrUnknownProfile, cfg.Profile)
		}
		cfg.Options = opts
	} else if cfg.Profile != "" {
		return fmt.Errorf("%w: %q (no .cleartext file found)", config.ErrUnknownProfile, cfg.Profile)
	}

	applyFlagOverrides(cmd, &cfg.Options)
	return nil
}

// applyFlagOverrides overlays explicitly set flags onto the resolved
// options. Flags left at their defaults do not override profile values.
func applyFlagOverrides(cmd *cobra.Command, opts *cleaner.Options) {
	override := func(name string, dst *bool) {
		if cmd.Flags().Changed(name) {
			if v, err := cmd.Flags().GetBool(name); err == nil {
				*dst = v
			}
		}
	}

	override("remove-control", &opts.RemoveControl)
	override("remove-format", &opts.RemoveFormat)
	override("remove-surrogate", &opts.RemoveSurrogate)
	override("remove-private-use", &opts.RemovePrivateUse)
	override("remove-unassigned", &opts.RemoveUnassigned)
	override("preserve-tab", &opts.PreserveTab)
	override("preserve-lf", &opts.PreserveLF)
	override("preserve-cr", &opts.PreserveCR)
	override("nbsp-to-space", &opts.NBSPToSpace)
	override("normalize-dashes", &opts.NormalizeDashes)
	override("normalize-quotes", &opts.NormalizeQuotes)
	override("remove-zwsp", &opts.RemoveZWSP)
}

// runClean executes the cleaning over all configured targets.
func runClean(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	// Stdin input
	if len(cfg.Targets) == 0 {
		text, err := input.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		return writeCleaned(cmd.OutOrStdout(), cfg, cleanText(text, cfg))
	}

	// In-place rewriting handles each file independently.
	if cfg.InPlace {
		for _, target := range cfg.Targets {
			if err := cleanFileInPlace(target, cfg, logger); err != nil {
				return err
			}
		}
		return nil
	}

	// File inputs concatenate to a single output stream, in argument order.
	var out io.Writer = cmd.OutOrStdout()
	if cfg.OutputPath != "" {
		f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	for _, target := range cfg.Targets {
		text, err := input.ReadFile(target)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, cleanText(text, cfg)); err != nil {
			return err
		}
	}
	return nil
}

// cleanText applies HTML extraction (when configured) and the cleaning
// rules to one input.
func cleanText(text string, cfg *config.Config) string {
	if cfg.HTMLInput {
		text = input.ExtractText(text)
	}
	return cleaner.Clean(text, cfg.Options)
}

// cleanFileInPlace rewrites one file with its cleaned content. The write
// goes through a temporary file in the same directory followed by a
// rename, so a crash mid-write never truncates the original.
func cleanFileInPlace(path string, cfg *config.Config, logger *slog.Logger) error {
	text, err := input.ReadFile(path)
	if err != nil {
		return err
	}

	cleaned := cleanText(text, cfg)
	if cleaned == text {
		logger.Debug("no hidden characters, file unchanged", "path", path)
		return nil
	}

	perm := os.FileMode(0600)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".clean-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(cleaned); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write cleaned content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	logger.Info("cleaned file", "path", path, "removed_bytes", len(text)-len(cleaned))
	return nil
}

// writeCleaned writes cleaned stdin content to the configured destination.
func writeCleaned(def io.Writer, cfg *config.Config, cleaned string) error {
	if cfg.OutputPath == "" {
		_, err := io.WriteString(def, cleaned)
		return err
	}

	return os.WriteFile(cfg.OutputPath, []byte(cleaned), 0600)
}
