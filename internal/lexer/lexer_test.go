package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbtouchard/yamd/internal/token"
)

func collect(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input)
	var toks []token.Token
	for {
		tok, ok := l.NextToken()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestRunLengthPunctuators(t *testing.T) {
	toks := collect(t, "## --- **** ~~ ```")
	require.Equal(t, []token.Kind{
		token.Hash, token.Space, token.Minus, token.Space,
		token.Star, token.Space, token.Tilde, token.Space, token.Backtick,
	}, kinds(toks))
	require.Equal(t, "##", toks[0].Slice)
	require.Equal(t, "---", toks[2].Slice)
	require.Equal(t, "****", toks[4].Slice)
	require.Equal(t, "~~", toks[6].Slice)
	require.Equal(t, "```", toks[8].Slice)
}

func TestSingleCharPunctuators(t *testing.T) {
	toks := collect(t, "[a](b)_c_|")
	require.Equal(t, []token.Kind{
		token.LeftSquareBracket, token.Literal, token.RightSquareBracket,
		token.LeftParenthesis, token.Literal, token.RightParenthesis,
		token.Underscore, token.Literal, token.Underscore, token.Pipe,
	}, kinds(toks))
}

func TestEolVariants(t *testing.T) {
	toks := collect(t, "a\nb\r\nc")
	require.Equal(t, []token.Kind{token.Literal, token.Eol, token.Literal, token.Eol, token.Literal}, kinds(toks))
	require.Equal(t, "\n", toks[1].Slice)
	require.Equal(t, "\r\n", toks[3].Slice)
}

func TestCollapsibleDelimiters(t *testing.T) {
	toks := collect(t, "{% title %}")
	require.Equal(t, token.CollapsibleStart, toks[0].Kind)
	require.Equal(t, "{%", toks[0].Slice)
	require.Equal(t, token.CollapsibleEnd, toks[len(toks)-1].Kind)
	require.Equal(t, "%}", toks[len(toks)-1].Slice)
}

func TestEscape(t *testing.T) {
	toks := collect(t, `\*a`)
	require.Equal(t, []token.Kind{token.Literal, token.Literal}, kinds(toks))
	require.Equal(t, "*", toks[0].Slice)
	require.True(t, toks[0].Escaped)
	require.Equal(t, "a", toks[1].Slice)
	require.False(t, toks[1].Escaped)
}

func TestTrailingEscapeIsDropped(t *testing.T) {
	toks := collect(t, `a\`)
	require.Equal(t, []token.Kind{token.Literal}, kinds(toks))
	require.Equal(t, "a", toks[0].Slice)
}

func TestSingleEolIsNotATerminator(t *testing.T) {
	toks := collect(t, "\n")
	require.Equal(t, []token.Kind{token.Eol}, kinds(toks))
	require.Equal(t, "\n", toks[0].Slice)
}

func TestDoubleEolMergesIntoTerminator(t *testing.T) {
	toks := collect(t, "\n\n")
	require.Equal(t, []token.Kind{token.Terminator}, kinds(toks))
	require.Equal(t, "\n\n", toks[0].Slice)
	require.Equal(t, 0, toks[0].Pos.Row)
	require.Equal(t, 0, toks[0].Pos.Column)
}

func TestTripleEolMergesPairwiseNotGreedily(t *testing.T) {
	toks := collect(t, "\n\n\n")
	require.Equal(t, []token.Kind{token.Terminator, token.Eol}, kinds(toks))
	require.Equal(t, "\n\n", toks[0].Slice)
	require.Equal(t, "\n", toks[1].Slice)
	require.Equal(t, 2, toks[1].Pos.Row)
	require.Equal(t, 0, toks[1].Pos.Column)
}

func TestWindowsDoubleEolMergesIntoTerminator(t *testing.T) {
	toks := collect(t, "\r\n\r\n")
	require.Equal(t, []token.Kind{token.Terminator}, kinds(toks))
	require.Equal(t, "\r\n\r\n", toks[0].Slice)
}

func TestEolThenLiteralThenEolDoesNotMerge(t *testing.T) {
	toks := collect(t, "\nx\n")
	require.Equal(t, []token.Kind{token.Eol, token.Literal, token.Eol}, kinds(toks))
}

func TestTextBlankLineDoesNotAbsorbTerminator(t *testing.T) {
	toks := collect(t, "text\n\n")
	require.Equal(t, []token.Kind{token.Literal, token.Terminator}, kinds(toks))
	require.Equal(t, "text", toks[0].Slice)
	require.Equal(t, "\n\n", toks[1].Slice)
}

func TestColumnTracksRunesNotBytes(t *testing.T) {
	toks := collect(t, "héllo_")
	require.Len(t, toks, 2)
	require.Equal(t, 0, toks[0].Pos.Column)
	require.Equal(t, 5, toks[1].Pos.Column)
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}
