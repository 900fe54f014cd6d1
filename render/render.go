// Package render turns parsed entries into human or machine readable
// documents.
package render

import (
	"fmt"
	"io"

	"fce/config"
	"fce/content"
)

// Func writes entries to w using resolver for block styling.
type Func func(w io.Writer, entries []*content.Entry, res *Resolver) error

var renderers = map[config.OutputFmt]Func{
	config.OutputFmtTree: Tree,
	config.OutputFmtAnsi: ANSI,
	config.OutputFmtHtml: HTML,
	config.OutputFmtYaml: YAML,
}

// Write renders entries in requested format.
func Write(w io.Writer, format config.OutputFmt, entries []*content.Entry, res *Resolver) error {
	fn, ok := renderers[format]
	if !ok {
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return fn(w, entries, res)
}
