package asmfmt

import "strings"

// CodeLine is one classified source line: an optional code part and an
// optional trailing comment. Both parts absent denotes a blank line; a
// line is never both blank and holding text.
type CodeLine struct {
	// Code is the trimmed code portion of the line.
	Code    string
	HasCode bool

	// Comment is the trimmed text after the first '#'.
	Comment    string
	HasComment bool

	// CommentGap is the number of spaces rendered between the code part
	// and the '#'. It is set by the comment aligner; zero means unset
	// and rendering falls back to commentGapMin.
	CommentGap int

	// IndentLevel is the number of indent units prefixed on render.
	IndentLevel int
}

// IsBlank reports whether the line carries neither code nor comment.
func (l CodeLine) IsBlank() bool {
	return !l.HasCode && !l.HasComment
}

// ClassifyLine splits one raw line into its code and comment parts.
// The split happens at the first '#' regardless of context: this runs
// before tokenization, and a literal containing an unescaped '#' is
// truncated there (an accepted limitation of the dialect's grammar).
func ClassifyLine(raw string) CodeLine {
	raw = strings.TrimSpace(raw)

	hash := strings.IndexByte(raw, '#')
	if hash < 0 {
		if raw == "" {
			return CodeLine{}
		}
		return CodeLine{Code: raw, HasCode: true}
	}

	line := CodeLine{
		Comment:    strings.TrimSpace(raw[hash+1:]),
		HasComment: true,
	}
	if code := strings.TrimSpace(raw[:hash]); code != "" {
		line.Code = code
		line.HasCode = true
	}
	return line
}

// Render produces the final text of the line: indentation, code, the
// comment gap, and the comment reintroduced behind "# ". An empty
// comment renders as a bare '#' so no trailing whitespace is emitted.
func (l CodeLine) Render() string {
	if l.IsBlank() {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(indentUnit, l.IndentLevel))

	if l.HasCode {
		b.WriteString(l.Code)
	}
	if l.HasComment {
		if l.HasCode {
			gap := l.CommentGap
			if gap < commentGapMin {
				gap = commentGapMin
			}
			b.WriteString(strings.Repeat(" ", gap))
		}
		b.WriteByte('#')
		if l.Comment != "" {
			b.WriteByte(' ')
			b.WriteString(l.Comment)
		}
	}
	return b.String()
}
