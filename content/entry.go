package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Entry is a single notification or activity log entry: header, subject and
// body groups plus a few attributes of the entry itself.
type Entry struct {
	ID        ID
	Type      string
	Timestamp time.Time
	Read      bool
	URL       *url.URL

	Header  Group
	Subject Group
	Body    Group
}

// Groups returns non empty groups in rendering order: header, subject, body.
func (e *Entry) Groups() []Group {
	result := make([]Group, 0, 3)
	for _, g := range []Group{e.Header, e.Subject, e.Body} {
		if !g.Empty() {
			result = append(result, g)
		}
	}
	return result
}

// Entry builds entry from raw note object. Missing groups are left empty.
func (p *Parser) Entry(rec Record) *Entry {
	e := &Entry{ID: rec.ID("id")}
	e.Type, _ = rec.String("type")
	e.Read, _ = rec.Bool("read")
	e.URL = parseURL(rec, "url")
	if ts, ok := rec.String("timestamp"); ok {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.Timestamp = t
		} else {
			p.log.Named("entry").Debug("Ignoring malformed timestamp", zap.String("timestamp", ts), zap.Error(err))
		}
	}

	parent := ParentContext{EntryID: e.ID, EntryType: e.Type}
	header, _ := rec.List("header")
	subject, _ := rec.List("subject")
	body, _ := rec.List("body")

	e.Header = p.Group(GroupKindHeader, header, parent)
	e.Subject = p.Group(GroupKindSubject, subject, parent)
	e.Body = p.Group(GroupKindBody, body, parent)
	return e
}

// ErrNoEntries is returned when payload does not look like entries at all.
var ErrNoEntries = errors.New("payload does not contain entries")

// Entries decodes JSON payload. Accepted shapes: object with "notes" array,
// bare array of entries or single entry object. Only undecodable JSON or a
// top level value of unexpected shape is an error, contents are parsed
// tolerantly.
func (p *Parser) Entries(data []byte) ([]*Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var top any
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("unable to decode payload: %w", err)
	}

	var items []any
	switch t := top.(type) {
	case []any:
		items = t
	case map[string]any:
		rec := Record(t)
		if notes, ok := rec.List("notes"); ok {
			items = notes
		} else {
			items = []any{t}
		}
	default:
		return nil, ErrNoEntries
	}

	entries := make([]*Entry, 0, len(items))
	for i, item := range items {
		rec, ok := AsRecord(item)
		if !ok {
			p.log.Named("entry").Debug("Skipping entry, not an object", zap.Int("index", i))
			continue
		}
		entries = append(entries, p.Entry(rec))
	}
	return entries, nil
}
