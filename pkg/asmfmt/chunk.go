package asmfmt

import "strings"

// ChunkKind classifies a maximal run of consecutive lines sharing one
// structural role within a section.
type ChunkKind uint8

const (
	// ChunkSpace marks a single blank-line boundary; runs of blank
	// lines collapse to one.
	ChunkSpace ChunkKind = iota

	// ChunkComment is a block of comment-only lines.
	ChunkComment

	// ChunkCode is a block of instruction or data lines.
	ChunkCode

	// ChunkModifier is a label line in .text or an .align line in .data.
	ChunkModifier

	// ChunkGlobal is a .globl declaration.
	ChunkGlobal
)

// Chunk is a tagged run of lines with one role. Lines is empty for
// ChunkSpace and holds exactly one line for ChunkModifier and
// ChunkGlobal.
type Chunk struct {
	Kind  ChunkKind
	Lines []CodeLine
}

// GroupChunks groups one section's lines into ordered chunks. The
// grouper starts as if a blank line was just seen, so leading blanks
// emit nothing. Grouping by role lets alignment and indentation operate
// on the semantic blocks a human author intends: a contiguous
// instruction block shares one comment column, a label resets
// indentation scope.
func GroupChunks(kind SectionKind, lines []CodeLine) []Chunk {
	var chunks []Chunk

	last := func() *Chunk {
		if len(chunks) == 0 {
			return nil
		}
		return &chunks[len(chunks)-1]
	}

	for _, line := range lines {
		switch {
		case line.IsBlank():
			if cur := last(); cur != nil && cur.Kind != ChunkSpace {
				chunks = append(chunks, Chunk{Kind: ChunkSpace})
			}

		case line.HasCode && strings.HasPrefix(line.Code, ".globl"):
			chunks = append(chunks, Chunk{Kind: ChunkGlobal, Lines: []CodeLine{line}})

		case !line.HasCode:
			// Comment-only line.
			if cur := last(); cur != nil && cur.Kind == ChunkComment {
				cur.Lines = append(cur.Lines, line)
			} else {
				chunks = append(chunks, Chunk{Kind: ChunkComment, Lines: []CodeLine{line}})
			}

		case kind == SectionData && strings.HasPrefix(line.Code, ".align"):
			chunks = append(chunks, Chunk{Kind: ChunkModifier, Lines: []CodeLine{line}})

		case kind == SectionText && strings.HasSuffix(line.Code, ":"):
			chunks = append(chunks, Chunk{Kind: ChunkModifier, Lines: []CodeLine{line}})

		default:
			if cur := last(); cur != nil && cur.Kind == ChunkCode {
				cur.Lines = append(cur.Lines, line)
			} else {
				chunks = append(chunks, Chunk{Kind: ChunkCode, Lines: []CodeLine{line}})
			}
		}
	}
	return chunks
}
