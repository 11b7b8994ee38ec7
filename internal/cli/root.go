// Package cli provides the Cobra command structure for mipsfmt.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mipsfmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mipsfmt command. The root command is
// the formatter itself; version is the only subcommand.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string
	flags := &formatFlags{}

	rootCmd := &cobra.Command{
		Use:   "mipsfmt [file]",
		Short: "An opinionated MIPS assembly formatter",
		Long: `mipsfmt is an opinionated formatter for MIPS assembly source files.

It normalizes spacing between instruction operands, aligns trailing
comments within instruction blocks, indents the bodies of labeled
blocks, and tidies blank lines between sections. Formatting is
idempotent: running mipsfmt on its own output changes nothing.

When the file argument is "-", mipsfmt reads from standard input and
writes the result to standard output.`,
		Example: `  mipsfmt program.s              # format in place
  mipsfmt --check program.s      # exit nonzero if not formatted
  mipsfmt --diff program.s       # show what would change
  mipsfmt -o build/ program.s    # write result into build/
  cat program.s | mipsfmt -      # filter stdin to stdout`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidUsage, err)
			}
			return nil
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Formatter flags.
	rootCmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "",
		"write the formatted file into this directory instead of in place")
	rootCmd.Flags().BoolVar(&flags.diff, "diff", false,
		"print a unified diff instead of rewriting the file")
	rootCmd.Flags().BoolVar(&flags.check, "check", false,
		"exit nonzero if the file is not formatted, without writing")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidUsage, err)
	})

	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
