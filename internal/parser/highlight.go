package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

type highlightState int

const (
	highlightTitleCommit highlightState = iota
	highlightIcon
	highlightIconCommit
	highlightBody
)

// parseHighlight parses `++ [Title]\n[+ Icon\n]Body...++`. Title and icon
// are each a single optional line; the body is zero or more paragraphs
// ended by a closing `++`.
func parseHighlight(p *Parser) (ast.Highlight, bool) {
	startPos := p.Pos()
	p.NextToken() // consume opening ++

	state := highlightTitleCommit
	titleStart, titleEnd := -1, -1
	iconStart, iconEnd := -1, -1
	var paragraphs []ast.Paragraph

loop:
	for {
		tok, idx, ok := p.Peek()
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.Terminator && state != highlightBody:
			break loop

		case tok.Kind == token.Terminator:
			p.NextToken()

		case tok.Kind == token.Space && state == highlightTitleCommit && titleStart == -1:
			openerIdx := idx
			if endIdx, ok := p.AdvanceUntil(openerIdx, func(t token.Token) bool {
				return t.Kind == token.Eol
			}); ok {
				state = highlightIcon
				titleStart, titleEnd = openerIdx+1, endIdx
			} else {
				break loop
			}

		case tok.Kind == token.Plus && tok.Len() == 1 && state == highlightIcon && iconStart == -1:
			state = highlightIconCommit
			p.NextToken()

		case tok.Kind == token.Space && state == highlightIconCommit && iconStart == -1:
			openerIdx := idx
			if endIdx, ok := p.AdvanceUntil(openerIdx, func(t token.Token) bool {
				return t.Kind == token.Eol
			}); ok {
				state = highlightBody
				iconStart, iconEnd = openerIdx+1, endIdx
			} else {
				break loop
			}

		case tok.Kind == token.Eol && state == highlightTitleCommit:
			state = highlightIcon
			p.NextToken()

		case tok.Kind == token.Plus && tok.Len() == 2:
			p.NextToken()
			h := ast.Highlight{Paragraphs: paragraphs}
			if titleStart != -1 {
				s := p.RangeToString(titleStart, titleEnd)
				h.Title = &s
			}
			if iconStart != -1 {
				s := p.RangeToString(iconStart, iconEnd)
				h.Icon = &s
			}
			return h, true

		case state == highlightBody || state == highlightIcon:
			state = highlightBody
			if para, ok := parseParagraph(p, func(t token.Token) bool {
				return t.Kind == token.Plus && t.Len() == 2
			}); ok {
				paragraphs = append(paragraphs, para)
			}

		default:
			break loop
		}
	}

	p.Fail(startPos)
	return ast.Highlight{}, false
}
