package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carthworks/cleartext/internal/config"
)

//go:embed templates/cleartext.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new cleartext configuration file",
		Long: `Initialize creates a new .cleartext configuration file in the current
directory.

The generated file includes:
- Default cleaning options with their built-in values documented
- Example profiles for prose, source code, and strict cleaning
- Comments describing every available option

Examples:
  # Create .cleartext in current directory
  cleartext init

  # Create config file at a specific path
  cleartext init -o myconfig.yaml

  # Force overwrite existing file
  cleartext init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := configTemplate.ReadFile("templates/cleartext.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write configuration file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure cleaning profiles such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Which invisible categories to remove")
	fmt.Fprintln(cmd.OutOrStdout(), "  - TAB, LF, and CR preservation")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Smart replacements for NBSP, dashes, and quotes")

	return nil
}
