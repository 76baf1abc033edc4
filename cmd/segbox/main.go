// Segbox runs a segmented text-entry box in the terminal.
//
// A template such as "__hello___" describes the box: every "_" is a
// one-character input cell, every " " is a gap, and any other character is
// printed as-is. The composed value is printed when the user presses enter.
//
// Usage:
//
//	segbox [command] [flags]
//
// Running without a command opens the box for the default preset.
// See 'segbox --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/segbox/internal/logging"
	"github.com/muurk/segbox/internal/segbox"
	"github.com/muurk/segbox/internal/ui"
	"github.com/muurk/segbox/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		return reportError(err)
	}
	return 0
}

// reportError prints err for the user and returns the process exit code
func reportError(err error) int {
	if errors.Is(err, errCancelled) {
		return 1
	}

	if typ, ok := segbox.ErrorTypeOf(err); ok {
		p := ui.NewPrinter(os.Stderr)
		p.PrintError("Invalid box configuration: "+typ.String(), err, []string{
			"Templates need at least one editable character (default \"_\")",
			"Editable and hidden markers must be single, different characters",
			"Run 'segbox presets' to list the configured presets",
		})
		return 2
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

var rootCmd = &cobra.Command{
	Use:   "segbox",
	Short: "Segmented text-entry box for the terminal",
	Long: `Segbox opens an input box split into one-character cells.

The box layout comes from a template: the editable marker ("_" by default) is
an input cell, the hidden marker (" " by default) is a gap, and anything else
is printed as a fixed character. Arrow keys move between cells, backspace
clears, enter submits.

If no command is specified, the box opens for the default preset.`,
	Example: `  # Default preset
  segbox

  # Ad-hoc template, print only the value for scripts
  code=$(segbox --template "___-___" --format plain)

  # Custom markers
  segbox --template "##.##" --editable "#" --hidden "~"`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runBox,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("segbox {{.Version}}\n")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "segbox %s\n", version.Full())
	},
}
