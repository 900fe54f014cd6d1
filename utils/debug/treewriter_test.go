package debug

import (
	"bytes"
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "entry", nil, "entry\n"},
		{"depth 1", 1, "group", nil, "  group\n"},
		{"depth 2", 2, "block", nil, "    block\n"},
		{"with formatting", 1, "run [%d,%d)", []any{0, 5}, "  run [0,5)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"simple", 0, "text", "Hello", "text: \"Hello\"\n"},
		{"empty", 1, "text", "", "  text: \n"},
		{"control", 0, "text", "a\tb\n", "text: \"a\\tb\\n\"\n"},
		{"unicode", 0, "text", "Привет", "text: \"Привет\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Attrs(t *testing.T) {
	tw := NewTreeWriter()
	tw.Attrs(1, "ids", "user", "3", "site", "", "post", "7")
	tw.Attrs(1, "empty", "user", "")
	tw.Attrs(1, "odd", "dangling")

	if got, want := tw.String(), "  ids: user=3 post=7\n"; got != want {
		t.Errorf("Attrs() = %q, want %q", got, want)
	}
}

func TestTreeWriter_WriteTo(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "entry")
	tw.Line(1, "group")

	var buf bytes.Buffer
	n, err := tw.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) || buf.String() != "entry\n  group\n" {
		t.Errorf("WriteTo() wrote %d %q", n, buf.String())
	}
}
