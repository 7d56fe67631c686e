package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for cleartext.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleartext",
		Short: "Detect and remove hidden Unicode characters in text",
		Long: `cleartext detects, classifies, and removes hidden or visually-ambiguous
Unicode code points in text: zero-width characters, bidirectional controls,
no-break spaces, smart quotes, and other invisible characters.

Scan reports every hidden character with its name, Unicode category, and
exact line:column position. Clean rewrites the text under a configurable
rule set.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewCleanCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
