// Package yamd deserializes YAMD (Yet Another Markdown Document) text into
// a parsed document tree.
package yamd

import (
	"log"

	"github.com/bbtouchard/yamd/ast"
	"github.com/bbtouchard/yamd/internal/parser"
)

// Deserialize parses input into a Document. It never returns an error:
// constructs the grammar doesn't recognize are absorbed as plain paragraph
// text rather than rejected. The one genuine failure mode left — an
// internal parser bug manifesting as a panic deep in the token buffer — is
// recovered here and logged, returning an otherwise-empty Document rather
// than propagating the panic to the caller.
func Deserialize(input string) (doc *ast.Document) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("yamd: internal parser error: %v", r)
			doc = &ast.Document{}
		}
	}()

	return parser.Parse(parser.New(input))
}
