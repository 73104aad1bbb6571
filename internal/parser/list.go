package parser

import (
	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/token"
)

type listState int

const (
	listSameLevelCommit listState = iota
	listSameLevel
	listNextLevel
	listNextLevelOrdered
	listNextLevelUnordered
	listPreviousLevel
	listPreviousLevelCommit
	listIdle
)

// parseList parses a top-level (indent 0) list of the given bullet type.
func parseList(p *Parser, listType ast.ListType) (ast.List, bool) {
	return parseListLevel(p, listType, 0)
}

// parseListLevel parses a list at a given indent level, recursing one level
// deeper for nested lists. A bullet at a shallower indent ends the current
// level without being consumed by it (PreviousLevelCommit rewinds to let the
// caller's own loop re-dispatch); a `+` item followed by a `-` line at the
// same level (or vice versa) is not a new item — it is absorbed into the
// current item's body as literal paragraph text, since the bullet style was
// already committed to a different list type for this level.
func parseListLevel(p *Parser, listType ast.ListType, level int) (ast.List, bool) {
	startPos := p.Pos()
	var items []ast.ListItem
	item := ast.ListItem{}
	state := listSameLevelCommit

	p.NextToken() // consume opening bullet

loop:
	for {
		tok, pos, ok := p.Peek()
		if !ok {
			break
		}
		switch {
		case tok.Kind == token.Terminator:
			break loop

		case tok.Kind == token.Space && tok.Pos.Column == 0 && tok.Len() < level:
			state = listPreviousLevel
			p.NextToken()

		case tok.Kind == token.Space && tok.Pos.Column == 0 && tok.Len() == level:
			state = listSameLevel
			p.NextToken()

		case tok.Kind == token.Space && tok.Pos.Column == 0 && tok.Len() == level+1:
			state = listNextLevel
			p.NextToken()

		case tok.Kind == token.Minus && tok.Len() == 1 && state == listNextLevel:
			state = listNextLevelUnordered
			p.NextToken()

		case tok.Kind == token.Plus && tok.Len() == 1 && state == listNextLevel:
			state = listNextLevelOrdered
			p.NextToken()

		case tok.Kind == token.Minus && tok.Len() == 1 && state == listPreviousLevel:
			state = listPreviousLevelCommit
			p.NextToken()

		case tok.Kind == token.Plus && tok.Len() == 1 && state == listPreviousLevel:
			state = listPreviousLevelCommit
			p.NextToken()

		case tok.Kind == token.Minus && tok.Len() == 1 && state == listSameLevel:
			state = listSameLevelCommit
			p.NextToken()

		case tok.Kind == token.Plus && tok.Len() == 1 && state == listSameLevel:
			state = listSameLevelCommit
			p.NextToken()

		case tok.Kind == token.Minus && tok.Len() == 1 && tok.Pos.Column == 0 && listType == ast.Unordered:
			if level == 0 {
				state = listSameLevelCommit
			} else {
				state = listPreviousLevelCommit
			}
			p.NextToken()

		case tok.Kind == token.Plus && tok.Len() == 1 && tok.Pos.Column == 0 && listType == ast.Ordered:
			if level == 0 {
				state = listSameLevelCommit
			} else {
				state = listPreviousLevelCommit
			}
			p.NextToken()

		case tok.Kind == token.Space && state == listNextLevelUnordered:
			state = listIdle
			if nested, ok := parseListLevel(p, ast.Unordered, level+1); ok {
				n := nested
				item.Nested = &n
				items = append(items, item)
				item = ast.ListItem{}
			} else {
				p.FlipToLiteralAt(pos - 2)
				p.MoveTo(pos - 3)
			}

		case tok.Kind == token.Space && state == listNextLevelOrdered:
			state = listIdle
			if nested, ok := parseListLevel(p, ast.Ordered, level+1); ok {
				n := nested
				item.Nested = &n
				items = append(items, item)
				item = ast.ListItem{}
			} else {
				p.FlipToLiteralAt(pos - 2)
				p.MoveTo(pos - 3)
			}

		case tok.Kind == token.Space && state == listSameLevelCommit:
			state = listIdle
			if len(item.Body.Body) != 0 {
				items = append(items, item)
				item = ast.ListItem{}
			}
			p.NextToken()

		case tok.Kind == token.Space && state == listPreviousLevelCommit:
			if level == 1 {
				p.MoveTo(pos - 1)
			} else {
				p.MoveTo(pos - 2)
			}
			break loop

		default:
			state = listIdle
			if para, ok := parseParagraph(p, func(t token.Token) bool {
				return t.Kind == token.Space || t.Kind == token.Plus || t.Kind == token.Minus
			}); ok {
				item.Body.Body = append(item.Body.Body, para.Body...)
			}
		}
	}

	if len(item.Body.Body) != 0 {
		items = append(items, item)
	}

	if len(items) == 0 {
		p.Fail(startPos)
		return ast.List{}, false
	}
	return ast.List{Type: listType, Level: level, Items: items}, true
}
