package content

import (
	"net/url"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Range is a half-open interval [Start, Start+Length) over the text of its
// owning block, counted in Unicode code points, annotated with semantic kind
// and optional link and identifiers.
type Range struct {
	Kind   RangeKind
	Start  int
	Length int
	URL    *url.URL

	UserID    ID
	SiteID    ID
	PostID    ID
	CommentID ID

	// Value carries kind specific payload, i.e. noticon glyph.
	Value string
}

// End returns exclusive end offset.
func (r Range) End() int {
	return r.Start + r.Length
}

// Covers reports whether range fully covers [from, to).
func (r Range) Covers(from, to int) bool {
	return r.Start <= from && r.End() >= to
}

// Interactive reports whether range could be tapped.
func (r Range) Interactive() bool {
	return r.URL != nil
}

// TextLength returns length of the text in the units range offsets use.
func TextLength(text string) int {
	return utf8.RuneCountInString(text)
}

// Substring returns part of the text in [from, to) code points, bounds are
// clamped to the text.
func Substring(text string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to <= from {
		return ""
	}
	var (
		start = -1
		pos   int
	)
	for i := range text {
		if pos == from {
			start = i
		}
		if pos == to {
			return text[start:i]
		}
		pos++
	}
	if start < 0 {
		return ""
	}
	return text[start:]
}

// Ranges converts raw range records into validated ranges over text. It
// never fails: malformed records are dropped one by one, the rest is
// returned in input order.
//
// Policy for bounds: records without usable "indices" or with start > end
// are dropped; end past the text length is clamped to it since upstream
// payloads are known to be off by one now and then. All ranges over empty
// text are dropped.
func (p *Parser) Ranges(raw []any, text string) []Range {
	if len(raw) == 0 {
		return nil
	}
	log := p.log.Named("ranges")

	textLen := TextLength(text)
	if textLen == 0 {
		log.Debug("Dropping ranges over empty text", zap.Int("count", len(raw)))
		return nil
	}

	result := make([]Range, 0, len(raw))
	for i, item := range raw {
		rec, ok := AsRecord(item)
		if !ok {
			log.Debug("Dropping range, not an object", zap.Int("index", i))
			continue
		}
		r, ok := parseRange(rec, textLen, i, log)
		if !ok {
			continue
		}
		result = append(result, r)
	}
	return result
}

func parseRange(rec Record, textLen, index int, log *zap.Logger) (Range, bool) {
	indices, ok := rec.List("indices")
	if !ok || len(indices) < 2 {
		log.Debug("Dropping range without indices", zap.Int("index", index))
		return Range{}, false
	}
	start, okStart := toInt(indices[0])
	end, okEnd := toInt(indices[1])
	if !okStart || !okEnd {
		log.Debug("Dropping range with non numeric indices", zap.Int("index", index), zap.Any("indices", indices))
		return Range{}, false
	}
	if start < 0 || start > end {
		log.Debug("Dropping range with inverted bounds", zap.Int("index", index), zap.Int64("start", start), zap.Int64("end", end))
		return Range{}, false
	}
	if end > int64(textLen) {
		log.Debug("Clamping range end to text length", zap.Int("index", index), zap.Int64("end", end), zap.Int("length", textLen))
		end = int64(textLen)
	}
	if start > end {
		log.Debug("Dropping range starting past the text", zap.Int("index", index), zap.Int64("start", start), zap.Int("length", textLen))
		return Range{}, false
	}

	r := Range{
		Start:  int(start),
		Length: int(end - start),
	}

	if s, ok := rec.String("url"); ok && s != "" {
		if u, err := url.Parse(s); err == nil {
			r.URL = u
		} else {
			log.Debug("Ignoring malformed range url", zap.Int("index", index), zap.Error(err))
		}
	}

	kind, _ := rec.String("type")
	switch {
	case kind != "":
		r.Kind = RangeKind(kind)
	case r.URL != nil:
		r.Kind = RangeKindLink
	default:
		r.Kind = RangeKindUnknown
	}

	id := rec.ID("id")
	switch r.Kind {
	case RangeKindUser:
		r.UserID = id
	case RangeKindSite:
		r.SiteID = id
	case RangeKindPost:
		r.PostID = id
	case RangeKindComment:
		r.CommentID = id
	}
	if v := rec.ID("site_id"); v != 0 {
		r.SiteID = v
	}
	if v := rec.ID("post_id"); v != 0 {
		r.PostID = v
	}
	r.Value, _ = rec.String("value")
	return r, true
}
