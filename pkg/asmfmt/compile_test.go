package asmfmt

import (
	"reflect"
	"testing"
)

func TestCompileSection(t *testing.T) {
	t.Parallel()

	directive := Section{
		Kind:         SectionText,
		Directive:    ClassifyLine(".text"),
		HasDirective: true,
	}

	tests := []struct {
		name   string
		sec    Section
		chunks []Chunk
		want   []string
	}{
		{
			name: "directive emits itself and one blank",
			sec:  directive,
			want: []string{".text", ""},
		},
		{
			name: "no blank between label and its code",
			sec:  directive,
			chunks: []Chunk{
				chunkOf(ChunkModifier, "main:"),
				chunkOf(ChunkCode, "syscall"),
			},
			want: []string{".text", "", "main:", "syscall", ""},
		},
		{
			name: "code block ends with one blank",
			sec:  Section{Kind: SectionText},
			chunks: []Chunk{
				chunkOf(ChunkCode, "nop", "syscall"),
			},
			want: []string{"nop", "syscall", ""},
		},
		{
			name: "globl already isolated gets one trailing blank",
			sec:  directive,
			chunks: []Chunk{
				chunkOf(ChunkGlobal, ".globl main"),
				chunkOf(ChunkModifier, "main:"),
			},
			want: []string{".text", "", ".globl main", "", "main:", ""},
		},
		{
			name: "globl after a modifier is separated on both sides",
			sec:  Section{Kind: SectionText},
			chunks: []Chunk{
				chunkOf(ChunkModifier, "main:"),
				chunkOf(ChunkGlobal, ".globl main"),
			},
			want: []string{"main:", "", ".globl main", ""},
		},
		{
			name: "blank terminates a dangling comment block",
			sec:  Section{Kind: SectionText},
			chunks: []Chunk{
				chunkOf(ChunkComment, "# one", "# two"),
				{Kind: ChunkSpace},
				chunkOf(ChunkCode, "nop"),
			},
			want: []string{"# one", "# two", "", "nop", ""},
		},
		{
			name: "space after code is redundant",
			sec:  Section{Kind: SectionText},
			chunks: []Chunk{
				chunkOf(ChunkCode, "nop"),
				{Kind: ChunkSpace},
				chunkOf(ChunkCode, "syscall"),
			},
			want: []string{"nop", "", "syscall", ""},
		},
		{
			name: "comment attaches to the code below it",
			sec:  Section{Kind: SectionText},
			chunks: []Chunk{
				chunkOf(ChunkComment, "# about nop"),
				chunkOf(ChunkCode, "nop"),
			},
			want: []string{"# about nop", "nop", ""},
		},
		{
			name: "trailing modifier closes with a blank",
			sec:  directive,
			chunks: []Chunk{
				chunkOf(ChunkModifier, "main:"),
			},
			want: []string{".text", "", "main:", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := compileSection(tt.sec, tt.chunks)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("compileSection() = %q, want %q", got, tt.want)
			}
		})
	}
}
