// Package lexer turns YAMD source text into a lazy sequence of tokens.
//
// The scanner is a character-at-a-time tokenizer (readRune/peekRune over
// utf8.DecodeRuneInString, row/column bookkeeping, a dispatch switch in
// scan). Run-length coalescing, Eol/Terminator handling and
// backslash-escape semantics are particular to YAMD's grammar.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/bbtouchard/yamd/internal/token"
)

// runLength maps a punctuator byte to the token.Kind it forms when one or
// more of it repeat consecutively.
var runLength = map[rune]token.Kind{
	'~': token.Tilde,
	'*': token.Star,
	'{': token.LeftCurlyBrace,
	'}': token.RightCurlyBrace,
	' ': token.Space,
	'-': token.Minus,
	'#': token.Hash,
	'>': token.GreaterThan,
	'!': token.Bang,
	'`': token.Backtick,
	'+': token.Plus,
}

// singleChar maps a punctuator byte to its always-length-1 token.Kind.
var singleChar = map[rune]token.Kind{
	'[': token.LeftSquareBracket,
	']': token.RightSquareBracket,
	'(': token.LeftParenthesis,
	')': token.RightParenthesis,
	'_': token.Underscore,
	'|': token.Pipe,
}

// Lexer scans YAMD source one rune at a time, coalescing punctuator runs and
// merging consecutive line endings into a Terminator.
type Lexer struct {
	input string

	pos     int // byte offset of ch
	readPos int // byte offset of the rune after ch
	ch      rune

	row    int
	column int

	literalStart  token.Position
	literalOpen   bool
	literalEscape bool // true iff the pending literal began as an escaped char

	buffered    token.Token // a scanned-ahead token not yet returned, used to
	hasBuffered bool        // decide whether a lone Eol merges into a Terminator
}

// New constructs a Lexer positioned at the first rune of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, column: -1}
	l.readRune()
	return l
}

// readRune advances to the next rune, updating row/column for the rune it
// lands on. column is derived from the rune being LEFT, not the one being
// entered: a line's first character gets column 0 because the previous
// readRune left l.ch as the Eol that preceded it (or, at input start, the
// zero rune), and either way the column resets or starts from scratch.
func (l *Lexer) readRune() {
	prev := l.ch
	if l.readPos >= len(l.input) {
		l.pos = l.readPos
		l.ch = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	if prev == '\n' {
		l.row++
		l.column = 0
	} else {
		l.column++
	}
	l.pos = l.readPos
	l.ch = r
	l.readPos += size
}

func (l *Lexer) peekRune() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{ByteIndex: l.pos, Column: l.column, Row: l.row}
}

func (l *Lexer) startLiteral(escaped bool) {
	if !l.literalOpen {
		l.literalOpen = true
		l.literalStart = l.currentPos()
		l.literalEscape = escaped
	}
}

// flushLiteral returns the pending literal token (if any) ending at byte
// offset endByte, exclusive, and clears the pending state.
func (l *Lexer) flushLiteral(endByte int) (token.Token, bool) {
	if !l.literalOpen {
		return token.Token{}, false
	}
	slice := l.input[l.literalStart.ByteIndex:endByte]
	l.literalOpen = false
	if slice == "" {
		return token.Token{}, false
	}
	return token.Token{
		Kind:    token.Literal,
		Slice:   slice,
		Pos:     l.literalStart,
		Escaped: l.literalEscape,
	}, true
}

// NextToken returns the next token, or ok=false once the input (and any
// pending literal) has been fully consumed. Two immediately consecutive Eol
// tokens are coalesced into one Terminator, matching original_source's
// lexer/mod.rs `eol`, which holds the previous token back (via a one-token
// lookbehind, `self.token`) until it knows whether the next one merges with
// it. The merge is pairwise, not greedy: three Eols in a row yield one
// Terminator followed by a trailing Eol, not one three-line Terminator.
func (l *Lexer) NextToken() (token.Token, bool) {
	var tok token.Token
	var ok bool
	if l.hasBuffered {
		tok, l.hasBuffered = l.buffered, false
		ok = true
	} else {
		tok, ok = l.scan()
	}
	if !ok || tok.Kind != token.Eol {
		return tok, ok
	}

	next, ok2 := l.scan()
	if !ok2 {
		return tok, true
	}
	if next.Kind == token.Eol {
		return token.Token{Kind: token.Terminator, Slice: tok.Slice + next.Slice, Pos: tok.Pos}, true
	}
	l.buffered, l.hasBuffered = next, true
	return tok, true
}

// scan produces the next raw token with no Eol/Terminator coalescing; it is
// NextToken's one-token-at-a-time source.
func (l *Lexer) scan() (token.Token, bool) {
	for {
		if l.pos >= len(l.input) {
			if tok, ok := l.flushLiteral(l.pos); ok {
				return tok, true
			}
			return token.Token{}, false
		}

		switch {
		case l.ch == '\r' && l.peekRune() == '\n':
			if tok, ok := l.flushLiteral(l.pos); ok {
				return tok, true
			}
			start := l.currentPos()
			l.readRune() // consume \r, lands on \n
			l.readRune() // consume \n
			return token.Token{Kind: token.Eol, Slice: "\r\n", Pos: start}, true

		case l.ch == '\n':
			if tok, ok := l.flushLiteral(l.pos); ok {
				return tok, true
			}
			start := l.currentPos()
			l.readRune()
			return token.Token{Kind: token.Eol, Slice: "\n", Pos: start}, true

		case l.ch == '\\':
			if tok, ok := l.flushLiteral(l.pos); ok {
				return tok, true
			}
			escPos := l.currentPos()
			l.readRune() // consume backslash, ch is now the escaped rune
			if l.pos >= len(l.input) && l.ch == 0 {
				// trailing backslash with nothing to escape: drop it.
				continue
			}
			// The backslash does not advance the column: the escaped rune
			// takes the backslash's column, and the slice starts after it.
			l.column = escPos.Column
			l.literalOpen = true
			l.literalStart = token.Position{ByteIndex: l.pos, Column: escPos.Column, Row: escPos.Row}
			l.literalEscape = true
			end := l.pos + utf8.RuneLen(l.ch)
			l.readRune()
			tok, _ := l.flushLiteral(end)
			return tok, true

		case l.ch == '{' && l.peekRune() == '%':
			if tok, ok := l.flushLiteral(l.pos); ok {
				return tok, true
			}
			start := l.currentPos()
			l.readRune()
			l.readRune()
			return token.Token{Kind: token.CollapsibleStart, Slice: "{%", Pos: start}, true

		case l.ch == '%' && l.peekRune() == '}':
			if tok, ok := l.flushLiteral(l.pos); ok {
				return tok, true
			}
			start := l.currentPos()
			l.readRune()
			l.readRune()
			return token.Token{Kind: token.CollapsibleEnd, Slice: "%}", Pos: start}, true

		default:
			if kind, ok := runLength[l.ch]; ok {
				if tok, ok := l.flushLiteral(l.pos); ok {
					return tok, true
				}
				return l.takeRun(kind), true
			}
			if kind, ok := singleChar[l.ch]; ok {
				if tok, ok := l.flushLiteral(l.pos); ok {
					return tok, true
				}
				start := l.currentPos()
				ch := l.ch
				l.readRune()
				return token.Token{Kind: kind, Slice: string(ch), Pos: start}, true
			}
			l.startLiteral(false)
			l.readRune()
		}
	}
}

// takeRun greedily consumes further runes identical to l.ch, producing one
// token whose slice length equals the run length.
func (l *Lexer) takeRun(kind token.Kind) token.Token {
	start := l.currentPos()
	ch := l.ch
	var b strings.Builder
	for l.ch == ch {
		b.WriteRune(l.ch)
		l.readRune()
	}
	return token.Token{Kind: kind, Slice: b.String(), Pos: start}
}
