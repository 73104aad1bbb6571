package parser

import "github.com/bbtouchard/yamd/ast"

// inlineBuilder accumulates a paragraph/heading/bold body in source order: a
// pending literal text run plus already-parsed inline nodes. Every inline
// production (bold, heading, paragraph) shares this shape rather than
// repeating the text_start/consume_text bookkeeping inline.
type inlineBuilder struct {
	nodes     []ast.Inline
	textStart int
	hasText   bool
}

// startText begins a pending text run at pos, if one isn't already pending.
func (b *inlineBuilder) startText(pos int) {
	if !b.hasText {
		b.hasText = true
		b.textStart = pos
	}
}

// consumeText flushes the pending text run, if any, as a Text node covering
// [textStart, end). Always flushes, even to an empty string.
func (b *inlineBuilder) consumeText(p *Parser, end int) {
	if b.hasText {
		b.hasText = false
		b.nodes = append(b.nodes, ast.Text{Value: p.RangeToString(b.textStart, end)})
	}
}

// clearTextIfShorterThan discards the pending text run instead of flushing
// it if it would be shorter than size — used to drop the trailing newline
// before a stop token without emitting a near-empty Text node.
func (b *inlineBuilder) clearTextIfShorterThan(pos, size int) {
	if b.hasText && pos-b.textStart < size {
		b.hasText = false
	}
}

func (b *inlineBuilder) build() []ast.Inline { return b.nodes }
