package asmfmt

import "strings"

// SectionKind distinguishes .text from .data sections.
type SectionKind uint8

const (
	SectionText SectionKind = iota
	SectionData
)

// Section is a run of lines governed by the most recent .text or .data
// directive. Sections own their lines exclusively and are formatted
// independently of each other.
type Section struct {
	Kind SectionKind

	// Directive is the classified directive line that opened the
	// section. HasDirective is false only for the implicit leading
	// section before the first explicit directive.
	Directive    CodeLine
	HasDirective bool

	Lines []CodeLine
}

// SplitSections partitions raw lines into ordered sections. Lines before
// the first directive form an implicit leading text section, dropped
// when empty. Within a text section, an inline "label: instruction" pair
// splits into two logical lines; data lines never split.
func SplitSections(rawLines []string) []Section {
	sections := []Section{{Kind: SectionText}}

	for _, raw := range rawLines {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, ".text"):
			sections = append(sections, Section{
				Kind:         SectionText,
				Directive:    ClassifyLine(line),
				HasDirective: true,
			})
		case strings.HasPrefix(line, ".data"):
			sections = append(sections, Section{
				Kind:         SectionData,
				Directive:    ClassifyLine(line),
				HasDirective: true,
			})
		default:
			cur := &sections[len(sections)-1]
			if cur.Kind == SectionText {
				if label, rest, ok := splitInlineLabel(line); ok {
					cur.Lines = append(cur.Lines, ClassifyLine(label), ClassifyLine(rest))
					continue
				}
			}
			cur.Lines = append(cur.Lines, ClassifyLine(line))
		}
	}

	if !sections[0].HasDirective && len(sections[0].Lines) == 0 {
		sections = sections[1:]
	}
	return sections
}

// splitInlineLabel splits "label: instruction" at the first colon. The
// colon must come before any '#', and real code must follow it: a label
// with only a trailing comment ("main: # entry") stays one line so the
// comment attaches to the label rather than a phantom instruction.
func splitInlineLabel(line string) (label, rest string, ok bool) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return "", "", false
	}
	if hash := strings.IndexByte(line, '#'); hash >= 0 && hash < colon {
		return "", "", false
	}

	rest = line[colon+1:]
	code := rest
	if hash := strings.IndexByte(rest, '#'); hash >= 0 {
		code = rest[:hash]
	}
	if strings.TrimSpace(code) == "" {
		return "", "", false
	}
	return line[:colon+1], rest, true
}
