package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbtouchard/yamd/ast"
)

func strPtr(s string) *string { return &s }

func TestHighlightHappyPath(t *testing.T) {
	p := New("++ Title\n+ Icon\n_i_ **b**\n\nt~~s~~t\n++")
	h, ok := parseHighlight(p)
	require.True(t, ok)
	require.Equal(t, ast.Highlight{
		Title: strPtr("Title"),
		Icon:  strPtr("Icon"),
		Paragraphs: []ast.Paragraph{
			{Body: []ast.Inline{
				ast.Italic{Value: "i"},
				ast.Text{Value: " "},
				ast.Bold{Body: []ast.Inline{ast.Text{Value: "b"}}},
			}},
			{Body: []ast.Inline{
				ast.Text{Value: "t"},
				ast.Strikethrough{Value: "s"},
				ast.Text{Value: "t"},
			}},
		},
	}, h)
}

func TestHighlightNoTitle(t *testing.T) {
	p := New("++\n+ Icon\n_i_ **b**\n\nt~~s~~t\n++")
	h, ok := parseHighlight(p)
	require.True(t, ok)
	require.Nil(t, h.Title)
	require.Equal(t, strPtr("Icon"), h.Icon)
}

func TestHighlightNoIcon(t *testing.T) {
	p := New("++ Title\n_i_ **b**\n\nt~~s~~t\n++")
	h, ok := parseHighlight(p)
	require.True(t, ok)
	require.Equal(t, strPtr("Title"), h.Title)
	require.Nil(t, h.Icon)
}

func TestHighlightNoClosingToken(t *testing.T) {
	p := New("++ Title\n_i_ **b**\n\nt~~s~~t++")
	_, ok := parseHighlight(p)
	require.False(t, ok)
}

func TestHighlightNoSpaceBetweenStartAndTitle(t *testing.T) {
	p := New("++Title\n_i_ **b**\n\nt~~s~~t\n++")
	_, ok := parseHighlight(p)
	require.False(t, ok)
}

func TestHighlightTerminatorInTitle(t *testing.T) {
	p := New("++ Title\n\n_i_ **b**\n\nt~~s~~t\n++")
	_, ok := parseHighlight(p)
	require.False(t, ok)
}

func TestHighlightTerminatorInIcon(t *testing.T) {
	p := New("++\n+ icon\n\n_i_ **b**\n\nt~~s~~t\n++")
	_, ok := parseHighlight(p)
	require.False(t, ok)
}
