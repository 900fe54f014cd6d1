package render

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"fce/content"
	"fce/utils/debug"
)

// Tree writes indented human readable dump of entries with resolved style
// runs, interactive spans and actions of every block.
func Tree(w io.Writer, entries []*content.Entry, res *Resolver) error {
	tw := debug.NewTreeWriter()

	for _, e := range entries {
		tw.Line(0, "entry %d (%s)", e.ID, e.Type)
		var ts, u string
		if !e.Timestamp.IsZero() {
			ts = e.Timestamp.Format(time.RFC3339)
		}
		if e.URL != nil {
			u = e.URL.String()
		}
		tw.Attrs(1, "attrs", "timestamp", ts, "read", strconv.FormatBool(e.Read), "url", u)

		for _, g := range e.Groups() {
			tw.Line(1, "%s (%d)", g.Kind, g.Len())
			for _, b := range g.Blocks {
				treeBlock(tw, 2, b, res)
			}
		}
	}

	_, err := tw.WriteTo(w)
	return err
}

func treeBlock(tw *debug.TreeWriter, depth int, b content.Block, res *Resolver) {
	tw.Line(depth, "%s block %s", b.Kind(), b.ID())
	tw.TextBlock(depth+1, "text", b.Text())

	switch v := b.(type) {
	case *content.UserBlock:
		tw.Attrs(depth+1, "user", "id", idString(v.UserID), "site", idString(v.SiteID), "home", urlString(v.Home), "avatar", urlString(v.Avatar))
		if v.Bio != "" {
			tw.TextBlock(depth+1, "bio", v.Bio)
		}
	case *content.CommentBlock:
		tw.Attrs(depth+1, "comment", "id", idString(v.CommentID), "post", idString(v.PostID), "site", idString(v.SiteID), "parent", idString(v.ParentID),
			"approved", strconv.FormatBool(v.Approved()))
	}

	text := b.Text()
	resolved := res.Block(b)
	for _, run := range resolved.Runs {
		tw.Line(depth+1, "run %s %s", run, strconv.Quote(run.Text(text)))
	}
	for _, span := range resolved.Spans {
		tw.Line(depth+1, "link [%d,%d) %s %s", span.Start, span.End, span.Kind, span.URL)
	}
	for _, m := range b.Media() {
		tw.Line(depth+1, "media %s [%d,%d) %s", m.Kind, m.Start, m.End, m.URL)
	}
	for _, c := range b.Actions() {
		state := "off"
		if c.On() {
			state = "on"
		}
		tw.Line(depth+1, "action %s %q %s", c.ID(), c.Title(), state)
	}
}

func idString(id content.ID) string {
	if id == 0 {
		return ""
	}
	return fmt.Sprint(int64(id))
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}
