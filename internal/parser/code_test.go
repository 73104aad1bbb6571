package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

func TestCodeHappyPath(t *testing.T) {
	p := New("```rust\nprintln(\"hello\");\n```")
	c, ok := parseCode(p)
	require.True(t, ok)
	require.Equal(t, ast.Code{Lang: "rust", Body: "println(\"hello\");"}, c)
}

func TestCodeEolBeforeLang(t *testing.T) {
	p := New("```\nprintln(\"hello\");\n```")
	c, ok := parseCode(p)
	require.True(t, ok)
	require.Equal(t, ast.Code{Lang: "", Body: "println(\"hello\");"}, c)
}

func TestCodeTerminatorBeforeLang(t *testing.T) {
	p := New("```\n\nprintln(\"hello\");\n```")
	_, ok := parseCode(p)
	require.False(t, ok)
	tok, _, ok := p.Peek()
	require.True(t, ok)
	require.Equal(t, token.Literal, tok.Kind)
	require.Equal(t, "```", tok.Slice)
}

func TestCodeNoClosingFence(t *testing.T) {
	p := New("```\nprintln(\"hello\");\n``")
	_, ok := parseCode(p)
	require.False(t, ok)
}

func TestCodeTerminatorInMiddleNoClosingFence(t *testing.T) {
	p := New("```\nprintln(\"hello\");\n\n\n``")
	_, ok := parseCode(p)
	require.False(t, ok)
}
