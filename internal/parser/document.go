package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

// parseDocument is the grammar's top-level dispatch loop: it is invoked
// both for a whole document and, recursively with a CollapsibleEnd stop
// predicate, for a Collapsible's body. stop is consulted only against
// tokens at column 0, and only once no other production claims the current
// token.
func parseDocument(p *Parser, stop func(token.Token) bool) *ast.Document {
	doc := &ast.Document{}

	for {
		tok, pos, ok := p.Peek()
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.Terminator:
			p.NextToken()

		case tok.Kind == token.LeftCurlyBrace && tok.Len() == 2:
			if e, ok := parseEmbed(p); ok {
				doc.Body = append(doc.Body, e)
			}

		case tok.Kind == token.Minus && tok.Len() == 1:
			if l, ok := parseList(p, ast.Unordered); ok {
				doc.Body = append(doc.Body, l)
			}

		case tok.Kind == token.Plus && tok.Len() == 1:
			if l, ok := parseList(p, ast.Ordered); ok {
				doc.Body = append(doc.Body, l)
			}

		// Metadata is recognized only as the very first token of the whole
		// input; a nested Collapsible body never starts at buffer position 0.
		case tok.Kind == token.Minus && tok.Len() == 3 && pos == 0:
			if m, ok := parseMetadata(p); ok {
				doc.Metadata = &m
			}

		case tok.Kind == token.Minus && tok.Len() == 5:
			doc.Body = append(doc.Body, ast.ThematicBreak{})
			p.NextToken()

		case tok.Kind == token.Hash && tok.Len() < 7:
			if h, ok := parseHeading(p, stop); ok {
				doc.Body = append(doc.Body, h)
			}

		case tok.Kind == token.Plus && tok.Len() == 2:
			if h, ok := parseHighlight(p); ok {
				doc.Body = append(doc.Body, h)
			}

		case tok.Kind == token.Bang && tok.Len() == 1:
			if im, ok := parseImages(p, stop); ok {
				if len(im.Items) == 1 {
					doc.Body = append(doc.Body, im.Items[0])
				} else {
					doc.Body = append(doc.Body, im)
				}
			}

		case tok.Kind == token.Backtick && tok.Len() == 3:
			if c, ok := parseCode(p); ok {
				doc.Body = append(doc.Body, c)
			}

		case tok.Kind == token.CollapsibleStart:
			if c, ok := parseCollapsible(p); ok {
				doc.Body = append(doc.Body, c)
			}

		case tok.Pos.Column == 0 && stop(tok):
			return doc

		default:
			if n, ok := parseParagraph(p, stop); ok {
				doc.Body = append(doc.Body, n)
			}
		}
	}

	return doc
}

// parseDocumentBody runs parseDocument for its Body alone — used by
// parseCollapsible, where metadata dispatch is already unreachable (it only
// ever fires at absolute buffer position 0, never inside a nested body).
func parseDocumentBody(p *Parser, stop func(token.Token) bool) []ast.Block {
	return parseDocument(p, stop).Body
}

// Parse runs the top-level document grammar over p to end of input. It is
// the only entry point into this package a caller outside it needs.
func Parse(p *Parser) *ast.Document {
	return parseDocument(p, func(token.Token) bool { return false })
}
