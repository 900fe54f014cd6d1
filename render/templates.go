package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"fce/config"
	"fce/content"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Format     string
	SourceFile string
	Count      int
	Unread     int
	FirstID    int64
	Date       string
	Types      []string
}

func buildValues(name config.TemplateFieldName, entries []*content.Entry, src string, format config.OutputFmt) Values {
	values := Values{
		Context:    string(name),
		Format:     format.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Count:      len(entries),
	}
	for _, e := range entries {
		if !e.Read {
			values.Unread++
		}
		if e.Type != "" && !slices.Contains(values.Types, e.Type) {
			values.Types = append(values.Types, e.Type)
		}
	}
	if len(entries) > 0 {
		values.FirstID = int64(entries[0].ID)
		if ts := entries[0].Timestamp; !ts.IsZero() {
			values.Date = ts.Format("2006-01-02")
		}
	}
	return values
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
