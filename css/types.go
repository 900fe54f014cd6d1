package css

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Value is a parsed declaration value.
type Value struct {
	Raw     string // value as written, whitespace normalized
	Keyword string // lowercased identifier, hex color or unquoted string if value is a single token
}

// Color returns value as #rrggbb if it is a hex color.
func (v Value) Color() (string, bool) {
	s := v.Keyword
	if !strings.HasPrefix(s, "#") {
		return "", false
	}
	hex := strings.ToLower(s[1:])
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", false
		}
	}
	switch len(hex) {
	case 3:
		return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), true
	case 6:
		return "#" + hex, true
	}
	return "", false
}

// Selector is a simple selector: element, class or element.class.
type Selector struct {
	Raw     string
	Element string
	Class   string
}

// IsSimple returns true if selector was understood.
func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != ""
}

// Rule is a single selector with its declarations.
type Rule struct {
	Selector   Selector
	Properties map[string]Value
}

// Stylesheet is parsed CSS. Only plain rules with simple selectors are kept,
// everything else is reported in Warnings.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// Properties returns cascaded declarations for selector: rules are applied
// in source order so later declarations win.
func (s *Stylesheet) Properties(selector string) (map[string]Value, bool) {
	var (
		result map[string]Value
		found  bool
	)
	for _, r := range s.Rules {
		if r.Selector.Raw != selector {
			continue
		}
		if result == nil {
			result = make(map[string]Value, len(r.Properties))
		}
		maps.Copy(result, r.Properties)
		found = true
	}
	return result, found
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, r := range s.Rules {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := writeRule(w, r)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule Rule) (int, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s {\n", rule.Selector.Raw)
	for _, name := range slices.Sorted(maps.Keys(rule.Properties)) {
		fmt.Fprintf(&sb, "  %s: %s;\n", name, rule.Properties[name].Raw)
	}
	sb.WriteString("}\n")
	return io.WriteString(w, sb.String())
}
