package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

// parseBold parses `**body**`. Body may interleave Strikethrough and Italic
// nodes with plain text, but not Bold, Emphasis, Anchor or CodeSpan — those
// punctuators are left as literal text inside a Bold.
func parseBold(p *Parser) (ast.Bold, bool) {
	startPos := p.Pos()
	p.NextToken() // consume opening **
	var b inlineBuilder

loop:
	for {
		tok, pos, ok := p.Peek()
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.Terminator:
			break loop

		case tok.Kind == token.Tilde && tok.Len() == 2:
			if s, ok := parseStrikethrough(p); ok {
				b.consumeText(p, pos)
				b.nodes = append(b.nodes, ast.Strikethrough{Value: s})
			}

		case tok.Kind == token.Underscore && tok.Len() == 1:
			if s, ok := parseItalic(p); ok {
				b.consumeText(p, pos)
				b.nodes = append(b.nodes, ast.Italic{Value: s})
			}

		case tok.Kind == token.Star && tok.Len() == 2:
			b.consumeText(p, pos)
			p.NextToken()
			return ast.Bold{Body: b.build()}, true

		default:
			b.startText(pos)
			p.NextToken()
		}
	}

	p.Fail(startPos)
	return ast.Bold{}, false
}
