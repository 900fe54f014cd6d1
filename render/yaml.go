package render

import (
	"fmt"
	"io"
	"time"

	yaml "gopkg.in/yaml.v3"

	"fce/content"
)

type (
	yamlRun struct {
		Start      int               `yaml:"start"`
		End        int               `yaml:"end"`
		Text       string            `yaml:"text"`
		Attributes map[string]string `yaml:"attributes,omitempty"`
	}

	yamlSpan struct {
		Start int    `yaml:"start"`
		End   int    `yaml:"end"`
		Kind  string `yaml:"kind"`
		URL   string `yaml:"url"`
	}

	yamlAction struct {
		ID    string `yaml:"id"`
		Title string `yaml:"title"`
		On    bool   `yaml:"on"`
		Color string `yaml:"color,omitempty"`
	}

	yamlBlock struct {
		ID      string       `yaml:"id"`
		Kind    string       `yaml:"kind"`
		Text    string       `yaml:"text"`
		Hash    string       `yaml:"hash"`
		Runs    []yamlRun    `yaml:"runs,omitempty"`
		Spans   []yamlSpan   `yaml:"spans,omitempty"`
		Actions []yamlAction `yaml:"actions,omitempty"`
	}

	yamlGroup struct {
		Kind   string      `yaml:"kind"`
		Blocks []yamlBlock `yaml:"blocks"`
	}

	yamlEntry struct {
		ID        int64       `yaml:"id"`
		Type      string      `yaml:"type,omitempty"`
		Timestamp string      `yaml:"timestamp,omitempty"`
		Read      bool        `yaml:"read"`
		URL       string      `yaml:"url,omitempty"`
		Groups    []yamlGroup `yaml:"groups,omitempty"`
	}
)

// YAML writes machine readable document with resolved runs and spans.
func YAML(w io.Writer, entries []*content.Entry, res *Resolver) error {
	doc := make([]yamlEntry, 0, len(entries))
	for _, e := range entries {
		ye := yamlEntry{
			ID:   int64(e.ID),
			Type: e.Type,
			Read: e.Read,
			URL:  urlString(e.URL),
		}
		if !e.Timestamp.IsZero() {
			ye.Timestamp = e.Timestamp.Format(time.RFC3339)
		}
		for _, g := range e.Groups() {
			yg := yamlGroup{Kind: g.Kind.String()}
			for _, b := range g.Blocks {
				yg.Blocks = append(yg.Blocks, yamlBlockOf(b, res))
			}
			ye.Groups = append(ye.Groups, yg)
		}
		doc = append(doc, ye)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("unable to encode entries: %w", err)
	}
	return enc.Close()
}

func yamlBlockOf(b content.Block, res *Resolver) yamlBlock {
	text := b.Text()
	resolved := res.Block(b)

	yb := yamlBlock{
		ID:   b.ID().String(),
		Kind: b.Kind().String(),
		Text: text,
		Hash: resolved.Hash(),
	}
	for _, run := range resolved.Runs {
		yb.Runs = append(yb.Runs, yamlRun{Start: run.Start, End: run.End, Text: run.Text(text), Attributes: run.Attributes})
	}
	for _, span := range resolved.Spans {
		yb.Spans = append(yb.Spans, yamlSpan{Start: span.Start, End: span.End, Kind: span.Kind.String(), URL: span.URL.String()})
	}
	for _, c := range b.Actions() {
		yb.Actions = append(yb.Actions, yamlAction{ID: c.ID().String(), Title: c.Title(), On: c.On(), Color: c.Color()})
	}
	return yb
}
