package asmfmt_test

import (
	"reflect"
	"testing"

	"github.com/yaklabco/mipsfmt/pkg/asmfmt"
)

func TestTokenizeCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		expected []asmfmt.Token
	}{
		{
			name: "operands and comma",
			code: "li $v0, 4",
			expected: []asmfmt.Token{
				{Kind: asmfmt.TokItem, Text: "li"},
				{Kind: asmfmt.TokItem, Text: "$v0"},
				{Kind: asmfmt.TokComma},
				{Kind: asmfmt.TokItem, Text: "4"},
			},
		},
		{
			name: "comma glued to item",
			code: "li $v0 ,1",
			expected: []asmfmt.Token{
				{Kind: asmfmt.TokItem, Text: "li"},
				{Kind: asmfmt.TokItem, Text: "$v0"},
				{Kind: asmfmt.TokComma},
				{Kind: asmfmt.TokItem, Text: "1"},
			},
		},
		{
			name: "parens force-close items",
			code: "lb $a0, 0($sp)",
			expected: []asmfmt.Token{
				{Kind: asmfmt.TokItem, Text: "lb"},
				{Kind: asmfmt.TokItem, Text: "$a0"},
				{Kind: asmfmt.TokComma},
				{Kind: asmfmt.TokItem, Text: "0"},
				{Kind: asmfmt.TokOpenParen},
				{Kind: asmfmt.TokItem, Text: "$sp"},
				{Kind: asmfmt.TokCloseParen},
			},
		},
		{
			name: "label colon",
			code: "main:",
			expected: []asmfmt.Token{
				{Kind: asmfmt.TokItem, Text: "main"},
				{Kind: asmfmt.TokColon},
			},
		},
		{
			name: "string literal keeps whitespace verbatim",
			code: `.asciiz "Hello      World   ,  "`,
			expected: []asmfmt.Token{
				{Kind: asmfmt.TokItem, Text: ".asciiz"},
				{Kind: asmfmt.TokLiteral, Text: "Hello      World   ,  "},
			},
		},
		{
			name: "escaped quote stays inside literal",
			code: `.asciiz "say \"hi\""`,
			expected: []asmfmt.Token{
				{Kind: asmfmt.TokItem, Text: ".asciiz"},
				{Kind: asmfmt.TokLiteral, Text: `say \"hi\"`},
			},
		},
		{
			name: "unterminated literal flushes at end of input",
			code: `.asciiz "dangling`,
			expected: []asmfmt.Token{
				{Kind: asmfmt.TokItem, Text: ".asciiz"},
				{Kind: asmfmt.TokLiteral, Text: "dangling"},
			},
		},
		{
			name: "quote inside item is part of the item",
			code: `ab"cd`,
			expected: []asmfmt.Token{
				{Kind: asmfmt.TokItem, Text: `ab"cd`},
			},
		},
		{
			name:     "empty code",
			code:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := asmfmt.TokenizeCode(tt.code)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("TokenizeCode(%q) = %v, want %v", tt.code, got, tt.expected)
			}
		})
	}
}

func TestRenderTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{name: "already canonical", code: "li $v0, 4", expected: "li $v0, 4"},
		{name: "comma detaches from left item", code: "li $v0 ,1", expected: "li $v0, 1"},
		{name: "paren collapsing", code: "lb $a0, 0 ( $sp )", expected: "lb $a0, 0($sp)"},
		{name: "comma before open paren keeps a space", code: "add $t0,($t1)", expected: "add $t0, ($t1)"},
		{name: "colon hugs its label", code: "output : .word 1", expected: "output: .word 1"},
		{name: "run of spaces collapses", code: "la   $a0 ,   msg", expected: "la $a0, msg"},
		{name: "literal rendered with quotes", code: `.asciiz   "Hello      World   ,  "`, expected: `.asciiz "Hello      World   ,  "`},
		{name: "unterminated literal gains closing quote", code: `.asciiz "dangling`, expected: `.asciiz "dangling"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := asmfmt.RenderTokens(asmfmt.TokenizeCode(tt.code))
			if got != tt.expected {
				t.Errorf("canonical(%q) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

// Re-lexing the canonical form must yield the same token sequence:
// formatting only moves whitespace, never tokens.
func TestRenderTokensPreservesTokens(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"li $v0, 4",
		"li $v0 ,1",
		"lb $a0, 0 ( $sp )",
		"output:   .asciiz \"Hello World\"",
		"blt $t0 , $t1 , loop",
		".align 2",
	}

	for _, code := range inputs {
		before := asmfmt.TokenizeCode(code)
		after := asmfmt.TokenizeCode(asmfmt.RenderTokens(before))
		if !reflect.DeepEqual(before, after) {
			t.Errorf("token sequence changed for %q: %v -> %v", code, before, after)
		}
	}
}
