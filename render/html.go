package render

import (
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"fce/content"
	"fce/style"
)

// HTML writes entries as standalone HTML document. Style runs become spans
// with inline style, interactive spans become anchors.
func HTML(w io.Writer, entries []*content.Entry, res *Resolver) error {
	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText("Notifications")
	body := html.CreateElement("body")

	for _, e := range entries {
		article := body.CreateElement("article")
		article.CreateAttr("class", "entry "+e.Type)
		article.CreateAttr("data-id", strconv.FormatInt(int64(e.ID), 10))
		if !e.Read {
			article.CreateAttr("data-unread", "true")
		}
		if !e.Timestamp.IsZero() {
			article.CreateElement("time").SetText(e.Timestamp.Format(time.RFC3339))
		}

		for _, g := range e.Groups() {
			section := article.CreateElement("section")
			section.CreateAttr("class", g.Kind.String())
			for _, b := range g.Blocks {
				htmlBlock(section, b, res)
			}
		}
	}

	_, err := doc.WriteTo(w)
	return err
}

func htmlBlock(parent *etree.Element, b content.Block, res *Resolver) {
	p := parent.CreateElement("p")
	p.CreateAttr("class", "block "+b.Kind().String())
	p.CreateAttr("data-block", b.ID().String())

	text := b.Text()
	resolved := res.Block(b)
	for _, run := range resolved.Runs {
		for _, piece := range splitRun(run, resolved.Spans) {
			target := p
			if span, ok := innermostSpan(piece.Start, piece.End, resolved.Spans); ok {
				target = p.CreateElement("a")
				target.CreateAttr("href", span.URL.String())
				target.CreateAttr("class", span.Kind.String())
			}
			chunk := content.Substring(text, piece.Start, piece.End)
			if len(run.Attributes) == 0 {
				target.CreateText(chunk)
				continue
			}
			s := target.CreateElement("span")
			s.CreateAttr("style", run.Attributes.String())
			s.SetText(chunk)
		}
	}

	actions := b.Actions()
	if len(actions) == 0 {
		return
	}
	ul := parent.CreateElement("ul")
	ul.CreateAttr("class", "actions")
	for _, c := range actions {
		li := ul.CreateElement("li")
		li.CreateAttr("data-action", c.ID().String())
		li.CreateAttr("data-on", strconv.FormatBool(c.On()))
		if c.Color() != "" {
			li.CreateAttr("style", "color: "+c.Color())
		}
		li.SetText(c.Title())
	}
}

// splitRun cuts run at span boundaries so every piece is either fully
// inside or fully outside of each span.
func splitRun(run style.Run, spans []style.Span) []style.Run {
	points := []int{run.Start, run.End}
	for _, s := range spans {
		for _, p := range []int{s.Start, s.End} {
			if p > run.Start && p < run.End {
				points = append(points, p)
			}
		}
	}
	slices.Sort(points)
	points = slices.Compact(points)

	result := make([]style.Run, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		result = append(result, style.Run{Start: points[i], End: points[i+1], Attributes: run.Attributes})
	}
	return result
}

// innermostSpan picks the covering span with the latest start, HTML anchors
// cannot nest.
func innermostSpan(start, end int, spans []style.Span) (style.Span, bool) {
	var (
		found style.Span
		ok    bool
	)
	for _, s := range spans {
		if s.Start <= start && s.End >= end {
			found, ok = s, true
		}
	}
	return found, ok
}
