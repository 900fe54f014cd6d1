package style

import (
	"maps"
	"slices"
	"strings"
)

// AttributeSet is an opaque set of presentation attributes. Keys and values
// are chosen by the consumer, the engine only merges them. Rendering
// consumers in this module understand CSS property names.
type AttributeSet map[string]string

// Merge applies other on top of a copy of s: keys present in both take the
// value from other.
func (s AttributeSet) Merge(other AttributeSet) AttributeSet {
	result := make(AttributeSet, len(s)+len(other))
	maps.Copy(result, s)
	maps.Copy(result, other)
	return result
}

func (s AttributeSet) Equal(other AttributeSet) bool {
	return maps.Equal(s, other)
}

// String returns canonical representation with keys sorted.
func (s AttributeSet) String() string {
	var sb strings.Builder
	for i, k := range slices.Sorted(maps.Keys(s)) {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(s[k])
	}
	return sb.String()
}
