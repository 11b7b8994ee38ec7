package asmfmt_test

import (
	"testing"

	"github.com/yaklabco/mipsfmt/pkg/asmfmt"
)

func classify(lines ...string) []asmfmt.CodeLine {
	out := make([]asmfmt.CodeLine, len(lines))
	for i, l := range lines {
		out[i] = asmfmt.ClassifyLine(l)
	}
	return out
}

func kinds(chunks []asmfmt.Chunk) []asmfmt.ChunkKind {
	out := make([]asmfmt.ChunkKind, len(chunks))
	for i, c := range chunks {
		out[i] = c.Kind
	}
	return out
}

func TestGroupChunks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		section asmfmt.SectionKind
		lines   []string
		want    []asmfmt.ChunkKind
	}{
		{
			name:    "consecutive code merges into one chunk",
			section: asmfmt.SectionText,
			lines:   []string{"li $v0, 4", "la $a0, msg", "syscall"},
			want:    []asmfmt.ChunkKind{asmfmt.ChunkCode},
		},
		{
			name:    "blank runs collapse to one boundary",
			section: asmfmt.SectionText,
			lines:   []string{"nop", "", "", "", "nop"},
			want:    []asmfmt.ChunkKind{asmfmt.ChunkCode, asmfmt.ChunkSpace, asmfmt.ChunkCode},
		},
		{
			name:    "leading blanks vanish",
			section: asmfmt.SectionText,
			lines:   []string{"", "", "nop"},
			want:    []asmfmt.ChunkKind{asmfmt.ChunkCode},
		},
		{
			name:    "label is its own modifier chunk in text",
			section: asmfmt.SectionText,
			lines:   []string{"main:", "li $v0, 4"},
			want:    []asmfmt.ChunkKind{asmfmt.ChunkModifier, asmfmt.ChunkCode},
		},
		{
			name:    "label is plain code in data",
			section: asmfmt.SectionData,
			lines:   []string{"msg: .asciiz \"hi\""},
			want:    []asmfmt.ChunkKind{asmfmt.ChunkCode},
		},
		{
			name:    "align is a modifier in data",
			section: asmfmt.SectionData,
			lines:   []string{".align 2", "buf: .space 16"},
			want:    []asmfmt.ChunkKind{asmfmt.ChunkModifier, asmfmt.ChunkCode},
		},
		{
			name:    "align is plain code in text",
			section: asmfmt.SectionText,
			lines:   []string{".align 2"},
			want:    []asmfmt.ChunkKind{asmfmt.ChunkCode},
		},
		{
			name:    "globl is never merged with code",
			section: asmfmt.SectionText,
			lines:   []string{"nop", ".globl main", "nop"},
			want:    []asmfmt.ChunkKind{asmfmt.ChunkCode, asmfmt.ChunkGlobal, asmfmt.ChunkCode},
		},
		{
			name:    "comment block grows line by line",
			section: asmfmt.SectionText,
			lines:   []string{"# one", "# two", "nop", "# three"},
			want:    []asmfmt.ChunkKind{asmfmt.ChunkComment, asmfmt.ChunkCode, asmfmt.ChunkComment},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := asmfmt.GroupChunks(tt.section, classify(tt.lines...))

			gotKinds := kinds(got)
			if len(gotKinds) != len(tt.want) {
				t.Fatalf("chunk kinds = %v, want %v", gotKinds, tt.want)
			}
			for i := range tt.want {
				if gotKinds[i] != tt.want[i] {
					t.Fatalf("chunk kinds = %v, want %v", gotKinds, tt.want)
				}
			}
		})
	}
}

func TestGroupChunksCommentBlockContents(t *testing.T) {
	t.Parallel()

	chunks := asmfmt.GroupChunks(asmfmt.SectionText, classify("# one", "# two"))
	if len(chunks) != 1 || chunks[0].Kind != asmfmt.ChunkComment {
		t.Fatalf("expected a single comment chunk, got %v", kinds(chunks))
	}
	if len(chunks[0].Lines) != 2 {
		t.Fatalf("expected 2 comment lines, got %d", len(chunks[0].Lines))
	}
	if chunks[0].Lines[1].Comment != "two" {
		t.Errorf("second comment = %q, want %q", chunks[0].Lines[1].Comment, "two")
	}
}
