package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mipsfmt/internal/logging"
	"github.com/yaklabco/mipsfmt/internal/ui/pretty"
	"github.com/yaklabco/mipsfmt/pkg/asmfmt"
	"github.com/yaklabco/mipsfmt/pkg/fsutil"
	"github.com/yaklabco/mipsfmt/pkg/srclang"
	"github.com/yaklabco/mipsfmt/pkg/textdiff"
)

// stdinName is the argument that selects stdin/stdout filter mode.
const stdinName = "-"

// maxDividerWidth caps the divider drawn under --diff output.
const maxDividerWidth = 60

type formatFlags struct {
	outputDir string
	diff      bool
	check     bool
}

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	logger := logging.Default()

	path := args[0]

	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	if path != stdinName {
		if lang := srclang.Detect(filepath.Base(path), source); !srclang.IsAssembly(lang) {
			logger.Warn("input does not look like assembly",
				logging.FieldPath, path,
				logging.FieldLanguage, lang,
			)
		}
	}

	formatted, err := asmfmt.Format(string(source))
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("get color flag: %w", err)
	}

	switch {
	case flags.diff:
		return printDiff(cmd, path, string(source), formatted, colorMode)
	case flags.check:
		return checkFormatted(cmd, path, string(source), formatted, colorMode)
	default:
		return writeResult(cmd, path, flags.outputDir, formatted)
	}
}

func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdinName {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return source, nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return source, nil
}

func displayPath(path string) string {
	if path == stdinName {
		return "<stdin>"
	}
	return path
}

func printDiff(cmd *cobra.Command, path, source, formatted, colorMode string) error {
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	diff := textdiff.Compute(displayPath(path), source, formatted)
	if diff == nil {
		fmt.Fprint(out, styles.FormatDiffSummary(nil))
		return nil
	}

	logging.Default().Debug("computed diff",
		logging.FieldPath, diff.Path,
		logging.FieldInsertions, diff.Insertions,
		logging.FieldDeletions, diff.Deletions,
	)

	fmt.Fprint(out, styles.FormatDiff(diff))

	width := min(pretty.TerminalWidth(out), maxDividerWidth)
	fmt.Fprintln(out, styles.Dim.Render(strings.Repeat("-", width)))
	fmt.Fprint(out, styles.FormatDiffSummary(diff))
	return nil
}

func checkFormatted(cmd *cobra.Command, path, source, formatted, colorMode string) error {
	if source == formatted {
		logging.Default().Debug("already formatted", logging.FieldPath, displayPath(path))
		return nil
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	diff := textdiff.Compute(displayPath(path), source, formatted)
	logging.Default().Debug("needs formatting",
		logging.FieldPath, diff.Path,
		logging.FieldInsertions, diff.Insertions,
		logging.FieldDeletions, diff.Deletions,
	)
	fmt.Fprint(out, styles.FormatDiffSummary(diff))

	return fmt.Errorf("%s: %w", displayPath(path), ErrNotFormatted)
}

func writeResult(cmd *cobra.Command, path, outputDir, formatted string) error {
	logger := logging.Default()

	// Filter mode: stdin in, stdout out.
	if path == stdinName {
		if outputDir != "" {
			logger.Warn("--output-dir is ignored when reading from stdin")
		}
		fmt.Fprint(cmd.OutOrStdout(), formatted)
		return nil
	}

	target := path
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		target = filepath.Join(outputDir, filepath.Base(path))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	changed, err := fsutil.WriteAtomicIfChanged(ctx, target, []byte(formatted), fsutil.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info("formatted",
		logging.FieldPath, path,
		logging.FieldOutput, target,
		logging.FieldChanged, changed,
	)
	return nil
}
