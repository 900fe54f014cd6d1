package content

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ID identifies objects of the remote service (users, sites, posts,
// comments). Zero means absent.
type ID int64

// Record is a single loosely typed payload object as decoded from JSON.
// Accessors never fail: a missing key or a value of unexpected type is
// reported as absent.
type Record map[string]any

// AsRecord converts decoded JSON value to Record if it is an object.
func AsRecord(v any) (Record, bool) {
	switch t := v.(type) {
	case Record:
		return t, t != nil
	case map[string]any:
		return Record(t), t != nil
	}
	return nil, false
}

func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

func (r Record) Int(key string) (int64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	return toInt(v)
}

func (r Record) ID(key string) ID {
	if n, ok := r.Int(key); ok && n > 0 {
		return ID(n)
	}
	return 0
}

func (r Record) Bool(key string) (bool, bool) {
	v, ok := r[key]
	if !ok {
		return false, false
	}
	return toBool(v), true
}

func (r Record) Record(key string) (Record, bool) {
	return AsRecord(r[key])
}

func (r Record) List(key string) ([]any, bool) {
	l, ok := r[key].([]any)
	return l, ok
}

// Path walks nested objects, e.g. r.Path("meta", "ids").
func (r Record) Path(keys ...string) (Record, bool) {
	cur := r
	for _, k := range keys {
		next, ok := cur.Record(k)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// toInt accepts anything JSON decoders produce for a number, as well as
// numeric strings. Fractional values are rejected.
func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), uint64(t) <= math.MaxInt64
	case uint64:
		return int64(t), uint64(t) <= math.MaxInt64
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		if f, err := t.Float64(); err == nil {
			return floatToInt(f)
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}

// toBool treats non-zero numbers and "true"/"1" strings as true.
func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	case float32:
		return t != 0
	case float64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	}
	n, ok := toInt(v)
	return ok && n != 0
}
