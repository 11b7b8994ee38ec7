// Package asmfmt rewrites MIPS-style assembly source into a canonical
// layout: normalized token spacing, aligned trailing comments, a single
// blank line between logical groups, and tab-indented label bodies.
//
// Formatting is a pure function over the file contents. It never
// assembles or validates the input; malformed fragments pass through on
// lenient fallback paths instead of failing.
package asmfmt

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Formatting policy. These are fixed; the formatter has no style options.
const (
	// commentGapMin is the smallest number of spaces between code and a
	// trailing '#'.
	commentGapMin = 2

	// disparityThreshold is how far the longest uncommented line may
	// overshoot the longest commented one before it is excluded from the
	// shared comment column.
	disparityThreshold = 10

	// indentUnit prefixes each rendered line inside a label body.
	indentUnit = "\t"
)

// ErrNotText reports input that is not valid UTF-8 text.
var ErrNotText = errors.New("input is not valid UTF-8 text")

// Format rewrites assembly source into its canonical form. Non-empty
// output always ends with a single trailing newline; empty input stays
// empty. The error return is reserved for input outside the tool's
// scope (currently only non-UTF-8 data); no well-formed text fails.
func Format(contents string) (string, error) {
	if !utf8.ValidString(contents) {
		return "", fmt.Errorf("format: %w", ErrNotText)
	}
	if contents == "" {
		return "", nil
	}

	var out []string
	for _, sec := range SplitSections(strings.Split(contents, "\n")) {
		out = append(out, formatSection(sec)...)
	}
	return strings.Join(out, "\n"), nil
}

// formatSection runs stages 2 and 4-7 of the pipeline over one section:
// canonical token spacing, chunk grouping, comment alignment, label-body
// indentation, and re-flattening with blank separators.
func formatSection(sec Section) []string {
	if sec.HasDirective && sec.Directive.HasCode {
		sec.Directive.Code = canonicalCode(sec.Directive.Code)
	}
	for i := range sec.Lines {
		if sec.Lines[i].HasCode {
			sec.Lines[i].Code = canonicalCode(sec.Lines[i].Code)
		}
	}

	chunks := GroupChunks(sec.Kind, sec.Lines)
	for i := range chunks {
		alignComments(&chunks[i])
	}
	indentChunks(sec.Kind, chunks)

	return compileSection(sec, chunks)
}
