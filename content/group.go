package content

import (
	"strings"
)

// Group is an ordered collection of blocks representing one section of an
// entry. Blocks are kept in parse order and are never shared between groups.
// Ranges are always local to a block, never span blocks.
type Group struct {
	Kind   GroupKind
	Blocks []Block
}

// Group builds group of requested kind from raw block records.
func (p *Parser) Group(kind GroupKind, raw []any, parent ParentContext) Group {
	parent.Group = kind
	return Group{Kind: kind, Blocks: p.Blocks(raw, parent)}
}

func (g Group) Len() int {
	return len(g.Blocks)
}

func (g Group) Empty() bool {
	return len(g.Blocks) == 0
}

// Text joins text of all blocks with sep.
func (g Group) Text(sep string) string {
	parts := make([]string, 0, len(g.Blocks))
	for _, b := range g.Blocks {
		parts = append(parts, b.Text())
	}
	return strings.Join(parts, sep)
}

// Actions collects commands of all blocks in block order.
func (g Group) Actions() []*Command {
	var result []*Command
	for _, b := range g.Blocks {
		result = append(result, b.Actions()...)
	}
	return result
}

// BlockOf returns first block of requested variant, e.g.
//
//	comment, ok := content.BlockOf[*content.CommentBlock](entry.Body)
func BlockOf[T Block](g Group) (T, bool) {
	for _, b := range g.Blocks {
		if t, ok := b.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// BlocksOf returns all blocks of requested variant in order.
func BlocksOf[T Block](g Group) []T {
	var result []T
	for _, b := range g.Blocks {
		if t, ok := b.(T); ok {
			result = append(result, t)
		}
	}
	return result
}
