package parser

import "github.com/bbtouchard/yamd/internal/token"

// bracketed implements the shared shape of every leaf production: consume
// an opener of the given kind and run length, scan forward for a closer of
// the same kind and length, and on success return the text between them
// (consuming the closer). On failure the opener is demoted to Literal and
// ok is false; the caller's next dispatch will see it as ordinary text.
func bracketed(p *Parser, kind token.Kind, length int) (string, bool) {
	openerIdx := p.Pos()
	opener, ok := p.PeekAt(openerIdx)
	if !ok || opener.Kind != kind || opener.Len() != length {
		return "", false
	}
	closeIdx, ok := p.AdvanceUntil(openerIdx, func(t token.Token) bool {
		return t.Kind == kind && t.Len() == length
	})
	if !ok {
		return "", false
	}
	return p.RangeToString(openerIdx+1, closeIdx), true
}

// parseItalic parses `_body_`.
func parseItalic(p *Parser) (string, bool) {
	return bracketed(p, token.Underscore, 1)
}

// parseStrikethrough parses `~~body~~`.
func parseStrikethrough(p *Parser) (string, bool) {
	return bracketed(p, token.Tilde, 2)
}

// parseEmphasis parses `*body*`.
func parseEmphasis(p *Parser) (string, bool) {
	return bracketed(p, token.Star, 1)
}

// parseCodeSpan parses `` `body` ``.
func parseCodeSpan(p *Parser) (string, bool) {
	return bracketed(p, token.Backtick, 1)
}
