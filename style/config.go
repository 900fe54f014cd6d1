package style

import (
	"slices"

	"fce/content"
)

// DefaultPriority lists range kinds from the lowest to the highest priority.
// Attributes of kinds appearing later win conflicting keys. Blockquote is
// not listed, it is applied separately before any other kind.
var DefaultPriority = []content.RangeKind{
	content.RangeKindMatch,
	content.RangeKindItalic,
	content.RangeKindNoticon,
	content.RangeKindLink,
	content.RangeKindPlugin,
	content.RangeKindTheme,
	content.RangeKindSite,
	content.RangeKindComment,
	content.RangeKindUser,
	content.RangeKindPost,
}

// Configuration tells resolver how to style ranges. It is supplied by the
// caller and never modified by the engine.
type Configuration struct {
	Base AttributeSet
	// Quote is applied over blockquote ranges, nil means none.
	Quote  AttributeSet
	ByKind map[content.RangeKind]AttributeSet
	// LinkColor, if not empty, is set as "color" attribute over any range
	// carrying URL.
	LinkColor string
	// CacheKey identifies configuration version for callers memoizing
	// resolution results, see CacheKey().
	CacheKey string
	// Source is normalized stylesheet configuration was loaded from, if any.
	Source string
	// Priority overrides DefaultPriority when not empty. Kinds not listed
	// have the lowest priority.
	Priority []content.RangeKind
}

func (c *Configuration) priority() []content.RangeKind {
	if len(c.Priority) > 0 {
		return c.Priority
	}
	return DefaultPriority
}

// rank returns position of kind in priority list, -1 when kind is not there.
func (c *Configuration) rank(kind content.RangeKind) int {
	return slices.Index(c.priority(), kind)
}
