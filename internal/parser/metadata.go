package parser

import "github.com/bbtouchard/yamd/internal/token"

// parseMetadata parses a leading `---\n...\n---` fence. Callers are
// responsible for only invoking this at buffer position 0. The opener must
// be immediately followed by an Eol; the body excludes the Eol immediately
// preceding the closing fence.
func parseMetadata(p *Parser) (string, bool) {
	startPos := p.Pos()
	p.NextToken() // consume opening ---

	eol, ok := p.NextToken()
	if !ok || eol.Kind != token.Eol {
		p.Fail(startPos)
		return "", false
	}

	for {
		tok, pos, ok := p.Peek()
		if !ok {
			break
		}
		if tok.Kind == token.Minus && tok.Len() == 3 && tok.Pos.Column == 0 {
			p.NextToken()
			return p.RangeToString(startPos+2, pos-1), true
		}
		p.NextToken()
	}

	p.Fail(startPos)
	return "", false
}
