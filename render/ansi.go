package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"fce/content"
	"fce/style"
)

var (
	colorSubtle = lipgloss.Color("#6C6C6C")
	colorOn     = lipgloss.Color("#5FAF5F")
)

// ANSI writes entries as text decorated with terminal escape sequences.
// Output is always colored, regardless of w being a terminal.
func ANSI(w io.Writer, entries []*content.Entry, res *Resolver) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)

	var (
		sb      strings.Builder
		heading = r.NewStyle().Bold(true).Underline(true)
		label   = r.NewStyle().Foreground(colorSubtle)
	)
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		title := fmt.Sprintf("#%d %s", e.ID, e.Type)
		if !e.Timestamp.IsZero() {
			title += " " + e.Timestamp.Format("2006-01-02 15:04")
		}
		sb.WriteString(heading.Render(title))
		sb.WriteByte('\n')

		for _, g := range e.Groups() {
			sb.WriteString(label.Render(g.Kind.String()))
			sb.WriteByte('\n')
			for _, b := range g.Blocks {
				ansiBlock(&sb, r, b, res)
			}
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func ansiBlock(sb *strings.Builder, r *lipgloss.Renderer, b content.Block, res *Resolver) {
	text := b.Text()
	resolved := res.Block(b)

	sb.WriteString("  ")
	for _, run := range resolved.Runs {
		sb.WriteString(ansiStyle(r, run.Attributes).Render(run.Text(text)))
	}
	sb.WriteByte('\n')

	subtle := r.NewStyle().Foreground(colorSubtle)
	for i, span := range resolved.Spans {
		sb.WriteString(subtle.Render(fmt.Sprintf("    [%d] %s %s", i+1, strconv.Quote(content.Substring(text, span.Start, span.End)), span.URL)))
		sb.WriteByte('\n')
	}

	actions := b.Actions()
	if len(actions) == 0 {
		return
	}
	buttons := make([]string, 0, len(actions))
	for _, c := range actions {
		st := r.NewStyle()
		switch {
		case c.Color() != "":
			st = st.Foreground(lipgloss.Color(c.Color()))
		case c.On():
			st = st.Foreground(colorOn)
		default:
			st = st.Foreground(colorSubtle)
		}
		caption := c.Title()
		if c.Toggleable() && c.On() {
			caption += " ✓"
		}
		buttons = append(buttons, st.Render("["+caption+"]"))
	}
	sb.WriteString("    ")
	sb.WriteString(strings.Join(buttons, " "))
	sb.WriteByte('\n')
}

// ansiStyle maps CSS-like attributes onto terminal style. Attributes
// terminal cannot express are ignored.
func ansiStyle(r *lipgloss.Renderer, attrs style.AttributeSet) lipgloss.Style {
	st := r.NewStyle()
	switch attrs["font-weight"] {
	case "bold", "bolder", "600", "700", "800", "900":
		st = st.Bold(true)
	}
	switch attrs["font-style"] {
	case "italic", "oblique":
		st = st.Italic(true)
	}
	if deco := attrs["text-decoration"]; deco != "" {
		if strings.Contains(deco, "underline") {
			st = st.Underline(true)
		}
		if strings.Contains(deco, "line-through") {
			st = st.Strikethrough(true)
		}
	}
	if c := attrs["color"]; strings.HasPrefix(c, "#") {
		st = st.Foreground(lipgloss.Color(c))
	}
	for _, key := range []string{"background-color", "background"} {
		if c := attrs[key]; strings.HasPrefix(c, "#") {
			st = st.Background(lipgloss.Color(c))
			break
		}
	}
	return st
}
