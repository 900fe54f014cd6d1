package style

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"fce/content"
)

// Run is a maximal interval [Start, End) of text sharing one fully merged
// attribute set.
type Run struct {
	Start      int
	End        int
	Attributes AttributeSet
}

// Span is an interactive interval of text, one per range carrying URL,
// reported at range original bounds.
type Span struct {
	Start int
	End   int
	URL   *url.URL
	Kind  content.RangeKind
}

// Result of style resolution. Runs partition the whole text in order, spans
// follow ranges in (start, length) order and may overlap.
type Result struct {
	Runs  []Run
	Spans []Span
}

// Hash returns stable digest of the result, suitable for diffing and cache
// validation.
func (r Result) Hash() string {
	h := sha256.New()
	for _, run := range r.Runs {
		fmt.Fprintf(h, "r%d:%d{%s}\n", run.Start, run.End, run.Attributes)
	}
	for _, span := range r.Spans {
		fmt.Fprintf(h, "s%d:%d:%s:%s\n", span.Start, span.End, span.Kind, span.URL)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CacheKey combines block identity with configuration version. Engine keeps
// no cache itself, callers may memoize Result under this key.
func CacheKey(b content.Block, cfg *Configuration) string {
	var version string
	if cfg != nil {
		version = cfg.CacheKey
	}
	id := b.ID()
	sum := sha256.Sum256(append(id[:], version...))
	return hex.EncodeToString(sum[:])
}

// ResolveBlock resolves style of a single content block.
func ResolveBlock(b content.Block, cfg *Configuration) Result {
	return Resolve(b.Text(), b.Ranges(), cfg)
}

// Resolve flattens possibly overlapping ranges over text into disjoint
// style runs plus independent list of interactive spans. It never fails:
// ranges outside of text are clipped or ignored, empty text produces no runs.
//
// Text is split at every range boundary. For each resulting segment the
// attributes are merged from base, quote (if any blockquote range covers the
// segment), per kind attributes of covering ranges in priority order and
// finally link color. Adjacent segments with equal attributes are
// coalesced.
func Resolve(text string, ranges []content.Range, cfg *Configuration) Result {
	if cfg == nil {
		cfg = &Configuration{}
	}
	textLen := content.TextLength(text)
	if textLen == 0 {
		return Result{}
	}

	sorted := sanitize(ranges, textLen)

	points := make([]int, 0, 2*len(sorted)+2)
	points = append(points, 0, textLen)
	for _, r := range sorted {
		points = append(points, r.Start, r.End())
	}
	slices.Sort(points)
	points = slices.Compact(points)

	var (
		result   Result
		covering []content.Range
	)
	for i := 0; i < len(points)-1; i++ {
		segStart, segEnd := points[i], points[i+1]

		covering = covering[:0]
		for _, r := range sorted {
			if r.Covers(segStart, segEnd) {
				covering = append(covering, r)
			}
		}
		attrs := cfg.attributes(covering)

		if n := len(result.Runs); n > 0 && result.Runs[n-1].Attributes.Equal(attrs) {
			result.Runs[n-1].End = segEnd
			continue
		}
		result.Runs = append(result.Runs, Run{Start: segStart, End: segEnd, Attributes: attrs})
	}

	for _, r := range sorted {
		if r.URL != nil {
			result.Spans = append(result.Spans, Span{Start: r.Start, End: r.End(), URL: r.URL, Kind: r.Kind})
		}
	}
	return result
}

// sanitize drops ranges which cannot belong to text of textLen, clamps ends
// and imposes total order: by start, then by length, then input order.
func sanitize(ranges []content.Range, textLen int) []content.Range {
	result := make([]content.Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Start < 0 || r.Length < 0 || r.Start > textLen {
			continue
		}
		if r.End() > textLen {
			r.Length = textLen - r.Start
		}
		result = append(result, r)
	}
	slices.SortStableFunc(result, func(a, b content.Range) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.Length, b.Length))
	})
	return result
}

// attributes merges attribute set for a segment covered by ranges. Ranges
// are expected in sanitize order, so for the same kind the later starting
// range wins.
func (c *Configuration) attributes(covering []content.Range) AttributeSet {
	attrs := AttributeSet{}.Merge(c.Base)

	var (
		quoted, linked bool
		kinds          []content.Range
	)
	for _, r := range covering {
		if r.URL != nil {
			linked = true
		}
		if r.Kind == content.RangeKindBlockquote {
			quoted = true
			continue
		}
		kinds = append(kinds, r)
	}

	if quoted && c.Quote != nil {
		attrs = attrs.Merge(c.Quote)
	}

	slices.SortStableFunc(kinds, func(a, b content.Range) int {
		return cmp.Compare(c.rank(a.Kind), c.rank(b.Kind))
	})
	for _, r := range kinds {
		if set, ok := c.ByKind[r.Kind]; ok {
			attrs = attrs.Merge(set)
		}
	}

	if linked && c.LinkColor != "" {
		attrs["color"] = c.LinkColor
	}
	return attrs
}

// Text returns part of the text covered by run.
func (r Run) Text(text string) string {
	return content.Substring(text, r.Start, r.End)
}

func (r Run) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d,%d)", r.Start, r.End)
	if len(r.Attributes) > 0 {
		fmt.Fprintf(&sb, " {%s}", r.Attributes)
	}
	return sb.String()
}
