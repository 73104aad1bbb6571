// Package token defines the lexical tokens produced by internal/lexer and
// consumed by internal/parser.
package token

import "fmt"

// Kind enumerates the closed set of token kinds YAMD's tokenizer can emit.
type Kind int

const (
	Literal Kind = iota
	Eol
	Terminator

	Space
	Hash
	Minus
	Plus
	Star
	Tilde
	Backtick
	GreaterThan
	Bang

	LeftCurlyBrace
	RightCurlyBrace
	CollapsibleStart
	CollapsibleEnd

	LeftSquareBracket
	RightSquareBracket
	LeftParenthesis
	RightParenthesis
	Underscore
	Pipe
)

var kindNames = map[Kind]string{
	Literal:            "Literal",
	Eol:                "Eol",
	Terminator:         "Terminator",
	Space:              "Space",
	Hash:               "Hash",
	Minus:              "Minus",
	Plus:               "Plus",
	Star:               "Star",
	Tilde:              "Tilde",
	Backtick:           "Backtick",
	GreaterThan:        "GreaterThan",
	Bang:               "Bang",
	LeftCurlyBrace:     "LeftCurlyBrace",
	RightCurlyBrace:    "RightCurlyBrace",
	CollapsibleStart:   "CollapsibleStart",
	CollapsibleEnd:     "CollapsibleEnd",
	LeftSquareBracket:  "LeftSquareBracket",
	RightSquareBracket: "RightSquareBracket",
	LeftParenthesis:    "LeftParenthesis",
	RightParenthesis:   "RightParenthesis",
	Underscore:         "Underscore",
	Pipe:               "Pipe",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position is a triple of byte-offset, zero-based column (in characters, not
// bytes) and zero-based row. The column does not advance while the tokenizer
// reads an escaping backslash; the escaped character carries the backslash's
// column instead.
type Position struct {
	ByteIndex int
	Column    int
	Row       int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// Token is a (kind, source-slice, starting-position, escaped) tuple. Slice
// length is significant for run-length kinds.
type Token struct {
	Kind    Kind
	Slice   string
	Pos     Position
	Escaped bool
}

// Len reports the character length of the run this token represents, used by
// the parser to dispatch on run-length (e.g. Hash level, Minus thematic
// break).
func (t Token) Len() int {
	return len([]rune(t.Slice))
}
