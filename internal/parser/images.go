package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

type imagesState int

const (
	imagesIdle imagesState = iota
	imagesStopped
	imagesFailed
)

// parseImages parses a run of `![Alt](Src)` lines, each separated by a
// single Eol. stop is consulted only against tokens at column 0. A
// singleton result is left for the caller (the document driver) to
// collapse into a bare Image — this production always returns a gallery.
func parseImages(p *Parser, stop func(token.Token) bool) (ast.Images, bool) {
	startPos := p.Pos()
	var items []ast.Image
	state := imagesIdle

loop:
	for {
		tok, _, ok := p.Peek()
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.Terminator:
			break loop

		case tok.Kind == token.Bang:
			state = imagesIdle
			p.NextToken()
			a, ok := parseAnchor(p)
			if !ok {
				state = imagesFailed
				break loop
			}
			items = append(items, ast.Image{Alt: a.Text, Src: a.Url})

		case tok.Kind == token.Eol:
			p.NextToken()

		case tok.Pos.Column == 0 && stop(tok):
			state = imagesStopped
			break loop

		default:
			state = imagesFailed
			break loop
		}
	}

	if len(items) == 0 || state == imagesFailed {
		p.Fail(startPos)
		return ast.Images{}, false
	}

	if state != imagesStopped {
		p.NextToken() // consume the Terminator (or no-op at EOF)
	}
	return ast.Images{Items: items}, true
}
