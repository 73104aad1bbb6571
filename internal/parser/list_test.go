package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbtouchard/yamd/ast"
)

func para(text string) ast.Paragraph {
	return ast.Paragraph{Body: []ast.Inline{ast.Text{Value: text}}}
}

func TestListParseUnordered(t *testing.T) {
	p := New("- level 0\n- level 0")
	l, ok := parseList(p, ast.Unordered)
	require.True(t, ok)
	require.Equal(t, ast.List{
		Type:  ast.Unordered,
		Level: 0,
		Items: []ast.ListItem{
			{Body: para("level 0")},
			{Body: para("level 0")},
		},
	}, l)
}

func TestListParseOrdered(t *testing.T) {
	p := New("+ level 0\n+ same level")
	l, ok := parseList(p, ast.Ordered)
	require.True(t, ok)
	require.Equal(t, []ast.ListItem{
		{Body: para("level 0")},
		{Body: para("same level")},
	}, l.Items)
}

func TestListParseMixed(t *testing.T) {
	p := New("+ level 0\n - level 0")
	l, ok := parseList(p, ast.Ordered)
	require.True(t, ok)
	nested := ast.List{Type: ast.Unordered, Level: 1, Items: []ast.ListItem{{Body: para("level 0")}}}
	require.Equal(t, []ast.ListItem{{Body: para("level 0"), Nested: &nested}}, l.Items)
}

func TestListParseNested(t *testing.T) {
	p := New("- one\n - two")
	l, ok := parseList(p, ast.Unordered)
	require.True(t, ok)
	nested := ast.List{Type: ast.Unordered, Level: 1, Items: []ast.ListItem{{Body: para("two")}}}
	require.Equal(t, []ast.ListItem{{Body: para("one"), Nested: &nested}}, l.Items)
}

func TestListEol(t *testing.T) {
	p := New("- one\n - two\nsomething")
	l, ok := parseList(p, ast.Unordered)
	require.True(t, ok)
	nested := ast.List{Type: ast.Unordered, Level: 1, Items: []ast.ListItem{{Body: para("two\nsomething")}}}
	require.Equal(t, []ast.ListItem{{Body: para("one"), Nested: &nested}}, l.Items)
}

func TestListMixedSameLevelOrdered(t *testing.T) {
	p := New("+ level 0\n- same level")
	l, ok := parseList(p, ast.Ordered)
	require.True(t, ok)
	require.Equal(t, []ast.ListItem{{Body: ast.Paragraph{Body: []ast.Inline{
		ast.Text{Value: "level 0"},
		ast.Text{Value: "- same level"},
	}}}}, l.Items)
}

func TestListMixedSameLevelUnordered(t *testing.T) {
	p := New("- level 0\n+ same level")
	l, ok := parseList(p, ast.Unordered)
	require.True(t, ok)
	require.Equal(t, []ast.ListItem{{Body: ast.Paragraph{Body: []ast.Inline{
		ast.Text{Value: "level 0"},
		ast.Text{Value: "+ same level"},
	}}}}, l.Items)
}

func TestListEmptyBody(t *testing.T) {
	p := New("- ")
	_, ok := parseList(p, ast.Unordered)
	require.False(t, ok)
}

func TestListNoNestedOrderedList(t *testing.T) {
	p := New("+ level 0\n + ")
	l, ok := parseList(p, ast.Unordered)
	require.True(t, ok)
	require.Equal(t, []ast.ListItem{{Body: ast.Paragraph{Body: []ast.Inline{
		ast.Text{Value: "level 0"},
		ast.Text{Value: "\n + "},
	}}}}, l.Items)
}

func TestListNoNestedUnorderedList(t *testing.T) {
	p := New("+ level 0\n - ")
	l, ok := parseList(p, ast.Unordered)
	require.True(t, ok)
	require.Equal(t, []ast.ListItem{{Body: ast.Paragraph{Body: []ast.Inline{
		ast.Text{Value: "level 0"},
		ast.Text{Value: "\n - "},
	}}}}, l.Items)
}
