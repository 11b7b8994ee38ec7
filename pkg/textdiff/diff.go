// Package textdiff computes line-based unified diffs between two
// versions of a text file.
package textdiff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around changes.
const contextLines = 3

// Op classifies one line of a hunk.
type Op int

const (
	// OpContext is an unchanged line present in both versions.
	OpContext Op = iota

	// OpAdd is a line present only in the modified version.
	OpAdd

	// OpDelete is a line present only in the original version.
	OpDelete
)

// Line is one line of a hunk, without its diff prefix.
type Line struct {
	Op   Op
	Text string
}

// Hunk is one contiguous region of change plus surrounding context.
type Hunk struct {
	// OldStart/OldCount locate the hunk in the original (1-based).
	OldStart, OldCount int

	// NewStart/NewCount locate the hunk in the modified version.
	NewStart, NewCount int

	Lines []Line
}

// Diff is a unified diff between two versions of one file.
type Diff struct {
	Path       string
	Hunks      []Hunk
	Insertions int
	Deletions  int
}

// Compute diffs original against modified. It returns nil when the two
// are identical.
func Compute(path, original, modified string) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	ops := diffOps(origLines, modLines)
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Op {
			case OpAdd:
				d.Insertions++
			case OpDelete:
				d.Deletions++
			}
		}
	}
	return d
}

// Unified renders the diff in unified format with ---/+++ headers.
func (d *Diff) Unified() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", d.Path)
	fmt.Fprintf(&b, "+++ b/%s\n", d.Path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
		for _, line := range hunk.Lines {
			switch line.Op {
			case OpContext:
				fmt.Fprintf(&b, " %s\n", line.Text)
			case OpAdd:
				fmt.Fprintf(&b, "+%s\n", line.Text)
			case OpDelete:
				fmt.Fprintf(&b, "-%s\n", line.Text)
			}
		}
	}
	return b.String()
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps walks both line slices against their longest common
// subsequence, emitting one op per line of either side.
func diffOps(orig, mod []string) []Line {
	lcs := longestCommonSubsequence(orig, mod)

	var ops []Line
	oi, mi, li := 0, 0, 0
	for oi < len(orig) || mi < len(mod) {
		if li < len(lcs) && oi < len(orig) && mi < len(mod) &&
			orig[oi] == lcs[li] && mod[mi] == lcs[li] {
			ops = append(ops, Line{Op: OpContext, Text: orig[oi]})
			oi, mi, li = oi+1, mi+1, li+1
			continue
		}
		for oi < len(orig) && (li >= len(lcs) || orig[oi] != lcs[li]) {
			ops = append(ops, Line{Op: OpDelete, Text: orig[oi]})
			oi++
		}
		for mi < len(mod) && (li >= len(lcs) || mod[mi] != lcs[li]) {
			ops = append(ops, Line{Op: OpAdd, Text: mod[mi]})
			mi++
		}
	}
	return ops
}

// groupHunks slices the op stream into hunks, merging changes whose
// context windows touch.
func groupHunks(ops []Line) []Hunk {
	type span struct{ start, end int }

	var spans []span
	open := -1
	for i, op := range ops {
		if op.Op != OpContext {
			if open < 0 {
				open = i
			}
		} else if open >= 0 {
			spans = append(spans, span{open, i})
			open = -1
		}
	}
	if open >= 0 {
		spans = append(spans, span{open, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(spans); {
		j := i + 1
		for j < len(spans) && spans[j].start-spans[j-1].end <= contextLines*2 {
			j++
		}
		hunks = append(hunks, buildHunk(ops, spans[i].start, spans[j-1].end))
		i = j
	}
	return hunks
}

func buildHunk(ops []Line, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := Hunk{OldStart: 1, NewStart: 1}
	for i := range start {
		if ops[i].Op != OpAdd {
			hunk.OldStart++
		}
		if ops[i].Op != OpDelete {
			hunk.NewStart++
		}
	}

	for _, op := range ops[start:end] {
		hunk.Lines = append(hunk.Lines, op)
		switch op.Op {
		case OpContext:
			hunk.OldCount++
			hunk.NewCount++
		case OpDelete:
			hunk.OldCount++
		case OpAdd:
			hunk.NewCount++
		}
	}
	return hunk
}

func longestCommonSubsequence(orig, mod []string) []string {
	if len(orig) == 0 || len(mod) == 0 {
		return nil
	}

	dp := make([][]int, len(orig)+1)
	for i := range dp {
		dp[i] = make([]int, len(mod)+1)
	}
	for i := 1; i <= len(orig); i++ {
		for j := 1; j <= len(mod); j++ {
			if orig[i-1] == mod[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	lcs := make([]string, dp[len(orig)][len(mod)])
	i, j, k := len(orig), len(mod), len(lcs)-1
	for i > 0 && j > 0 {
		switch {
		case orig[i-1] == mod[j-1]:
			lcs[k] = orig[i-1]
			i, j, k = i-1, j-1, k-1
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return lcs
}
