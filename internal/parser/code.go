package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

// parseCode parses a fenced code block: an opening backtick run of length 3,
// an optional language tag up to the first line break, then a body up to a
// closing backtick run of length 3 at column 0. The Eol immediately before
// the closing fence is excluded from the body.
func parseCode(p *Parser) (ast.Code, bool) {
	startPos := p.Pos()
	langPos := -1

	p.NextToken() // consume opening ```

loop:
	for {
		tok, pos, ok := p.Peek()
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.Terminator && langPos == -1:
			break loop

		case tok.Kind == token.Backtick && tok.Pos.Column == 0 && tok.Len() == 3:
			if langPos != -1 {
				p.NextToken()
				return ast.Code{
					Lang: p.RangeToString(startPos+1, langPos),
					Body: p.RangeToString(langPos+1, pos-1),
				}, true
			}
			p.NextToken()

		case tok.Kind == token.Eol && langPos == -1:
			langPos = pos
			p.NextToken()

		default:
			p.NextToken()
		}
	}

	p.Fail(startPos)
	return ast.Code{}, false
}
