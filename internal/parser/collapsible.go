package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

// parseCollapsible parses `{% Title\nBody...%}`. Title is a single line,
// ended by an Eol or by a blank line (Terminator); a blank line directly
// after the opening `{% ` fails the production. Body is parsed by
// recursively invoking the document driver with a stop predicate matching
// CollapsibleEnd, so it may contain any block, including nested
// Collapsibles.
func parseCollapsible(p *Parser) (ast.Collapsible, bool) {
	startPos := p.Pos()
	p.NextToken() // consume opening {%

	titleStart, titleEnd := -1, -1
	var body []ast.Block
	haveBody := false

loop:
	for {
		tok, idx, ok := p.Peek()
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.Space && titleStart == -1:
			endIdx, ok := p.ScanUntil(idx, func(t token.Token) bool {
				return t.Kind == token.Eol
			})
			if !ok {
				// A Terminator after a non-empty title ends the title too; it
				// is left in place for the body parse.
				term, termIdx, more := p.Peek()
				if !more || term.Kind != token.Terminator || termIdx == idx+1 {
					break loop
				}
				endIdx = termIdx
			}
			titleStart, titleEnd = idx+1, endIdx

		case tok.Kind == token.CollapsibleEnd && haveBody:
			p.NextToken()
			return ast.Collapsible{
				Title: p.RangeToString(titleStart, titleEnd),
				Body:  body,
			}, true

		case titleStart != -1 && !haveBody:
			body = parseDocumentBody(p, func(t token.Token) bool {
				return t.Kind == token.CollapsibleEnd
			})
			haveBody = true

		default:
			break loop
		}
	}

	p.Fail(startPos)
	return ast.Collapsible{}, false
}
