package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mipsfmt/pkg/textdiff"
)

const wordLine = "line"

// FormatDiff renders a unified diff with styled headers, hunk markers,
// and +/- lines. Returns the empty string for a nil diff.
func (s *Styles) FormatDiff(diff *textdiff.Diff) string {
	if diff == nil {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(s.DiffHeader.Render("--- " + diff.Path))
	builder.WriteString("\n")
	builder.WriteString(s.DiffHeader.Render("+++ " + diff.Path + " (formatted)"))
	builder.WriteString("\n")

	for _, hunk := range diff.Hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
		builder.WriteString(s.DiffHunk.Render(header))
		builder.WriteString("\n")

		for _, line := range hunk.Lines {
			switch line.Op {
			case textdiff.OpAdd:
				builder.WriteString(s.DiffAdd.Render("+" + line.Text))
			case textdiff.OpDelete:
				builder.WriteString(s.DiffRemove.Render("-" + line.Text))
			default:
				builder.WriteString(s.DiffContext.Render(" " + line.Text))
			}
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// FormatDiffSummary formats diff statistics as a single line.
// Example: "program.s: 3 lines added, 2 lines removed".
func (s *Styles) FormatDiffSummary(diff *textdiff.Diff) string {
	if diff == nil {
		return s.Success.Render("already formatted") + "\n"
	}

	addWord := wordLine + "s"
	if diff.Insertions == 1 {
		addWord = wordLine
	}
	delWord := wordLine + "s"
	if diff.Deletions == 1 {
		delWord = wordLine
	}

	return fmt.Sprintf("%s: %s, %s\n",
		s.Bold.Render(diff.Path),
		s.DiffAdd.Render(fmt.Sprintf("%d %s added", diff.Insertions, addWord)),
		s.DiffRemove.Render(fmt.Sprintf("%d %s removed", diff.Deletions, delWord)))
}
