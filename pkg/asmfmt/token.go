package asmfmt

import "strings"

// TokenKind classifies one token in the code part of a line.
type TokenKind uint8

// Token kinds. Numbers are not parsed; numeric operands are plain items.
const (
	TokItem TokenKind = iota
	TokLiteral
	TokComma
	TokColon
	TokOpenParen
	TokCloseParen
)

// Token is one lexed element of a code part. Text holds the contents of
// items and literals (literals without their surrounding quotes) and is
// empty for punctuation.
type Token struct {
	Kind TokenKind
	Text string
}

// lexState is the tokenizer's scanning state.
type lexState uint8

const (
	lexWaiting lexState = iota
	lexInItem
	lexInLiteral
)

// TokenizeCode lexes the code part of a line. Whitespace separates items
// and is never emitted; ',' ':' '(' ')' are single-character tokens that
// force-close an in-progress item; '"' opens a string literal that
// accumulates verbatim until an unescaped closing quote. An unterminated
// item or literal is flushed at end of input rather than rejected.
func TokenizeCode(code string) []Token {
	var tokens []Token
	var cur strings.Builder

	state := lexWaiting
	for _, r := range code {
		state = lexNext(state, r, &cur, &tokens)
	}

	switch state {
	case lexInItem:
		tokens = append(tokens, Token{Kind: TokItem, Text: cur.String()})
	case lexInLiteral:
		tokens = append(tokens, Token{Kind: TokLiteral, Text: cur.String()})
	}
	return tokens
}

// lexNext is the tokenizer's transition table.
func lexNext(state lexState, r rune, cur *strings.Builder, tokens *[]Token) lexState {
	switch state {
	case lexWaiting:
		switch {
		case isPunct(r):
			*tokens = append(*tokens, Token{Kind: punctKind(r)})
			return lexWaiting
		case isSpace(r):
			return lexWaiting
		case r == '"':
			cur.Reset()
			return lexInLiteral
		default:
			cur.Reset()
			cur.WriteRune(r)
			return lexInItem
		}

	case lexInItem:
		switch {
		case isPunct(r):
			*tokens = append(*tokens, Token{Kind: TokItem, Text: cur.String()})
			*tokens = append(*tokens, Token{Kind: punctKind(r)})
			return lexWaiting
		case isSpace(r):
			*tokens = append(*tokens, Token{Kind: TokItem, Text: cur.String()})
			return lexWaiting
		default:
			// A '"' inside an item is part of the item; literals only
			// open from the waiting state.
			cur.WriteRune(r)
			return lexInItem
		}

	case lexInLiteral:
		if r == '"' && !strings.HasSuffix(cur.String(), `\`) {
			*tokens = append(*tokens, Token{Kind: TokLiteral, Text: cur.String()})
			return lexWaiting
		}
		cur.WriteRune(r)
		return lexInLiteral
	}
	return state
}

// RenderTokens re-emits tokens with canonical spacing: a single space
// goes between an item, literal, comma, or colon and a following item or
// literal, and between a comma and an opening paren. Every other
// adjacency is spaceless, collapsing e.g. "0 ( $sp )" to "0($sp)".
func RenderTokens(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && spaceBetween(tokens[i-1].Kind, tok.Kind) {
			b.WriteByte(' ')
		}
		switch tok.Kind {
		case TokItem:
			b.WriteString(tok.Text)
		case TokLiteral:
			b.WriteByte('"')
			b.WriteString(tok.Text)
			b.WriteByte('"')
		case TokComma:
			b.WriteByte(',')
		case TokColon:
			b.WriteByte(':')
		case TokOpenParen:
			b.WriteByte('(')
		case TokCloseParen:
			b.WriteByte(')')
		}
	}
	return b.String()
}

// canonicalCode is the tokenizer round trip: lex, then re-space.
func canonicalCode(code string) string {
	return RenderTokens(TokenizeCode(code))
}

func spaceBetween(prev, next TokenKind) bool {
	switch prev {
	case TokItem, TokLiteral, TokComma, TokColon:
		if next == TokItem || next == TokLiteral {
			return true
		}
	}
	return prev == TokComma && next == TokOpenParen
}

func isPunct(r rune) bool {
	return r == ',' || r == ':' || r == '(' || r == ')'
}

func punctKind(r rune) TokenKind {
	switch r {
	case ',':
		return TokComma
	case ':':
		return TokColon
	case '(':
		return TokOpenParen
	default:
		return TokCloseParen
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\v' || r == '\f'
}
