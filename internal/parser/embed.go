package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

// parseEmbed parses `{{kind|url}}`: opener `{{`, a kind tag up to the first
// Pipe, and a url up to the closing `}}`. Unlike parseCode, the url range
// does not exclude any trailing token.
func parseEmbed(p *Parser) (ast.Embed, bool) {
	startPos := p.Pos()
	kindPos := -1

	p.NextToken() // consume opening {{

loop:
	for {
		tok, pos, ok := p.Peek()
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.Terminator && kindPos == -1:
			break loop

		case tok.Kind == token.RightCurlyBrace && tok.Len() == 2:
			p.NextToken()
			if kindPos != -1 {
				return ast.Embed{
					Kind: p.RangeToString(startPos+1, kindPos),
					Url:  p.RangeToString(kindPos+1, pos),
				}, true
			}

		case tok.Kind == token.Pipe && kindPos == -1:
			kindPos = pos
			p.NextToken()

		default:
			p.NextToken()
		}
	}

	p.Fail(startPos)
	return ast.Embed{}, false
}
