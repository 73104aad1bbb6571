package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

// parseParagraph parses the universal inline run: plain text interleaved
// with Bold, Emphasis, Italic, Strikethrough, Anchor and CodeSpan. stop is
// consulted only against tokens at column 0 other than the paragraph's own
// first token, so callers (collapsible bodies, highlight bodies, list
// items) can bound a paragraph without the paragraph itself knowing why.
func parseParagraph(p *Parser, stop func(token.Token) bool) (ast.Paragraph, bool) {
	startPos := p.Pos()
	var b inlineBuilder
	endModifier := 0

loop:
	for {
		tok, pos, ok := p.Peek()
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.Terminator:
			break loop

		case tok.Kind == token.Star && tok.Len() == 2:
			if n, ok := parseBold(p); ok {
				b.consumeText(p, pos)
				b.nodes = append(b.nodes, n)
			}

		case tok.Kind == token.Star && tok.Len() == 1:
			if s, ok := parseEmphasis(p); ok {
				b.consumeText(p, pos)
				b.nodes = append(b.nodes, ast.Emphasis{Value: s})
			}

		case tok.Kind == token.Underscore && tok.Len() == 1:
			if s, ok := parseItalic(p); ok {
				b.consumeText(p, pos)
				b.nodes = append(b.nodes, ast.Italic{Value: s})
			}

		case tok.Kind == token.Tilde && tok.Len() == 2:
			if s, ok := parseStrikethrough(p); ok {
				b.consumeText(p, pos)
				b.nodes = append(b.nodes, ast.Strikethrough{Value: s})
			}

		case tok.Kind == token.LeftSquareBracket:
			if a, ok := parseAnchor(p); ok {
				b.consumeText(p, pos)
				b.nodes = append(b.nodes, a)
			}

		case tok.Kind == token.Backtick && tok.Len() == 1:
			if s, ok := parseCodeSpan(p); ok {
				b.consumeText(p, pos)
				b.nodes = append(b.nodes, ast.CodeSpan{Value: s})
			}

		case pos != startPos && tok.Pos.Column == 0 && stop(tok):
			endModifier = 1
			b.clearTextIfShorterThan(pos, 2)
			break loop

		default:
			b.startText(pos)
			p.NextToken()
		}
	}

	b.consumeText(p, p.Pos()-endModifier)

	if len(b.nodes) == 0 {
		return ast.Paragraph{}, false
	}
	return ast.Paragraph{Body: b.build()}, true
}
