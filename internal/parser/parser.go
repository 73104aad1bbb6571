// Package parser implements YAMD's recursive-descent parser: a rewindable
// token buffer (this file) plus one file per grammar production.
//
// Productions must be able to rewind arbitrarily far and reclassify a token
// in place, so the buffer retains every token it has ever pulled from the
// lexer instead of discarding consumed ones.
package parser

import (
	"strings"

	"github.com/bbtouchard/yamd/internal/lexer"
	"github.com/bbtouchard/yamd/internal/token"
)

// Parser is a rewindable stream of tokens layered over a Lexer. Productions
// capture Pos() on entry and MoveTo it on failure; a failed production also
// reclassifies its opener token to Literal via FlipToLiteralAt so the next
// dispatch absorbs it as text instead of retrying the same production.
type Parser struct {
	l  *lexer.Lexer
	buf []token.Token
	cur int // read cursor: index into buf of the "current" token
	eof bool
}

// New constructs a Parser over the given input.
func New(input string) *Parser {
	p := &Parser{l: lexer.New(input)}
	p.fill(1)
	return p
}

// fill pulls tokens from the lexer until buf has at least n entries or the
// lexer is exhausted. Eol/Terminator coalescing happens inside the lexer
// itself (internal/lexer.Lexer.NextToken), not here: a production can
// consume the first of two consecutive Eols before the second is ever
// pulled, so merging at the buffer tail would rewrite a slot the read
// cursor has already passed.
func (p *Parser) fill(n int) {
	for len(p.buf) < n {
		tok, ok := p.l.NextToken()
		if !ok {
			p.eof = true
			return
		}
		p.buf = append(p.buf, tok)
	}
}

// Peek returns the token at the current read position without consuming it,
// along with that token's buffer index. ok is false only at true end of
// input (no token, pending or otherwise, remains).
func (p *Parser) Peek() (token.Token, int, bool) {
	p.fill(p.cur + 1)
	if p.cur >= len(p.buf) {
		return token.Token{}, p.cur, false
	}
	return p.buf[p.cur], p.cur, true
}

// PeekAt returns the token at an arbitrary buffer index, pulling further
// tokens from the lexer if needed. Used by productions that need to look
// past the current token without consuming anything.
func (p *Parser) PeekAt(index int) (token.Token, bool) {
	p.fill(index + 1)
	if index >= len(p.buf) {
		return token.Token{}, false
	}
	return p.buf[index], true
}

// NextToken advances the read cursor by one and returns the token just
// consumed (the one that was current before advancing).
func (p *Parser) NextToken() (token.Token, bool) {
	tok, _, ok := p.Peek()
	if !ok {
		return token.Token{}, false
	}
	p.cur++
	return tok, true
}

// Pos returns the current read position.
func (p *Parser) Pos() int { return p.cur }

// MoveTo sets the read position to index, clamped to [0, len(buf)]. It never
// moves forward past the buffer tail.
func (p *Parser) MoveTo(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(p.buf) {
		index = len(p.buf)
	}
	p.cur = index
}

// FlipToLiteralAt reclassifies the token at index to Literal in place. After
// this call the token is indistinguishable from any other Literal to
// downstream peeks; its slice is unchanged.
func (p *Parser) FlipToLiteralAt(index int) {
	if index < 0 || index >= len(p.buf) {
		return
	}
	p.buf[index].Kind = token.Literal
}

// RangeToString concatenates the slices of tokens in [start, end) into a
// fresh owned string. Always succeeds for any valid range.
func (p *Parser) RangeToString(start, end int) string {
	p.fill(end)
	if end > len(p.buf) {
		end = len(p.buf)
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return ""
	}
	var b strings.Builder
	for _, tok := range p.buf[start:end] {
		b.WriteString(tok.Slice)
	}
	return b.String()
}

// TokenAt returns the raw token stored at a buffer index, without moving the
// cursor. Panics if index is out of the filled range; callers only use it
// for indices they have already observed via Peek/PeekAt.
func (p *Parser) TokenAt(index int) token.Token {
	return p.buf[index]
}

// AdvanceUntil unconditionally consumes the token at openerIdx (the
// caller's opener, not yet consumed when this is called), then scans
// forward consuming every token until predicate matches. On success it
// consumes the matching token too and returns its index. On Terminator or
// end of input it gives up: rewinds to openerIdx and demotes the opener to
// Literal, reporting failure.
func (p *Parser) AdvanceUntil(openerIdx int, predicate func(token.Token) bool) (int, bool) {
	if idx, ok := p.ScanUntil(openerIdx, predicate); ok {
		return idx, true
	}
	p.Fail(openerIdx)
	return 0, false
}

// ScanUntil behaves like AdvanceUntil but never demotes the opener and
// leaves the cursor wherever the scan stopped on failure — used by
// productions (anchor's nested-bracket/paren walk) whose own failure
// handling covers several scans at once instead of demoting per-scan.
func (p *Parser) ScanUntil(openerIdx int, predicate func(token.Token) bool) (int, bool) {
	p.MoveTo(openerIdx)
	p.NextToken() // consume opener
	for {
		tok, idx, ok := p.Peek()
		if !ok || tok.Kind == token.Terminator {
			return 0, false
		}
		if predicate(tok) {
			p.NextToken()
			return idx, true
		}
		p.cur++
	}
}

// Fail rewinds to openerIdx and demotes the token there to Literal. Used by
// productions whose failure condition isn't naturally expressed as an
// AdvanceUntil predicate (e.g. a fixed sequence of expected tokens).
func (p *Parser) Fail(openerIdx int) {
	p.MoveTo(openerIdx)
	p.FlipToLiteralAt(openerIdx)
}
