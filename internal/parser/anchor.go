package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

// parseAnchor parses `[TEXT](URL)`. Parenthesis nesting inside the URL is
// counted so that `[a]((u)r)` yields url "(u)r"; if the parens never
// balance but at least one `]` and one `)` were seen, the last `)` is used
// as a best-effort recovery (see parseAnchor's "has_unclosed_nested_paren"
// counterpart): `[a]((ur)t` yields url "(ur".
func parseAnchor(p *Parser) (ast.Anchor, bool) {
	startPos := p.Pos()
	parenCount := 0
	lastRightParenPos := -1
	rightSquareBracketPos := -1

loop:
	for {
		tok, idx, ok := p.Peek()
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.Terminator:
			break loop

		case tok.Kind == token.LeftSquareBracket && rightSquareBracketPos == -1:
			if closeIdx, ok := p.ScanUntil(idx, func(t token.Token) bool {
				return t.Kind == token.RightSquareBracket
			}); ok {
				rightSquareBracketPos = closeIdx
			} else {
				break loop
			}

		case tok.Kind == token.LeftParenthesis && rightSquareBracketPos != -1:
			p.NextToken()
			parenCount++

		case tok.Kind == token.RightParenthesis && rightSquareBracketPos != -1:
			lastRightParenPos = idx
			p.NextToken()
			parenCount--
			if parenCount == 0 {
				text := p.RangeToString(startPos+1, rightSquareBracketPos)
				url := p.RangeToString(rightSquareBracketPos+2, idx)
				return ast.Anchor{Text: text, Url: url}, true
			}

		case parenCount == 0:
			break loop

		default:
			p.NextToken()
		}
	}

	if rightSquareBracketPos != -1 && lastRightParenPos != -1 {
		text := p.RangeToString(startPos+1, rightSquareBracketPos)
		url := p.RangeToString(rightSquareBracketPos+2, lastRightParenPos)
		return ast.Anchor{Text: text, Url: url}, true
	}

	p.Fail(startPos)
	return ast.Anchor{}, false
}
