package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

// parseHeading parses `#...# text`, level given by the run length of the
// opening Hash (1..=6), requiring a Space token (a run of one or more
// spaces) directly after the opener. stop is
// consulted only against tokens at column 0, letting callers bound a
// heading's body without the heading itself knowing why.
func parseHeading(p *Parser, stop func(token.Token) bool) (ast.Heading, bool) {
	startPos := p.Pos()
	opener, _ := p.NextToken()
	level := opener.Len()

	if sp, ok := p.NextToken(); !ok || sp.Kind != token.Space {
		p.Fail(startPos)
		return ast.Heading{}, false
	}

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

		case tok.Kind == token.LeftSquareBracket:
			if a, ok := parseAnchor(p); ok {
				b.consumeText(p, pos)
				b.nodes = append(b.nodes, a)
			} else {
				b.startText(pos)
				p.NextToken()
			}

		case tok.Pos.Column == 0 && stop(tok):
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
		p.Fail(startPos)
		return ast.Heading{}, false
	}
	return ast.Heading{Level: level, Body: b.build()}, true
}
