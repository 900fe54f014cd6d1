package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Rendering.Format != OutputFmtTree {
		t.Errorf("Default format = %v, want %v", cfg.Rendering.Format, OutputFmtTree)
	}
	if len(cfg.Rendering.Actions.Enabled) != 0 {
		t.Errorf("Default enabled actions = %v, want none", cfg.Rendering.Actions.Enabled)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
rendering:
  format: html
  output_name_template: "{{ .EntryID }}"
  file_name_transliterate: true
  priority: [match, link, user, post]
  actions:
    enabled: [like, follow]
    titles:
      like: "Like it"
    colors:
      like: "#ff0000"
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Rendering.Format != OutputFmtHtml {
		t.Errorf("Format = %v, want html", cfg.Rendering.Format)
	}
	if cfg.Rendering.OutputNameTemplate != "{{ .EntryID }}" {
		t.Errorf("OutputNameTemplate was expanded: %q", cfg.Rendering.OutputNameTemplate)
	}
	if !cfg.Rendering.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}
	if got := strings.Join(cfg.Rendering.Priority, ","); got != "match,link,user,post" {
		t.Errorf("Priority = %s", got)
	}
	if got := strings.Join(cfg.Rendering.Actions.Enabled, ","); got != "like,follow" {
		t.Errorf("Enabled = %s", got)
	}
	if cfg.Rendering.Actions.Titles["like"] != "Like it" {
		t.Errorf("Titles = %v", cfg.Rendering.Actions.Titles)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("File log mode = %s, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"version", "version: 2\n"},
		{"format", "version: 1\nrendering:\n  format: pdf\n"},
		{"color", "version: 1\nrendering:\n  actions:\n    colors:\n      like: red\n"},
		{"unknown field", "version: 1\nrendering:\n  fonts: true\n"},
		{"console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Rendering: RenderingConfig{
			Format:   OutputFmtYaml,
			Priority: []string{"user", "post"},
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: yaml") {
		t.Errorf("Dump() does not contain textual format:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Rendering.Format != OutputFmtYaml {
		t.Errorf("Format mismatch after dump/load: got %v", cfg2.Rendering.Format)
	}
}

func TestOutputFmtExt(t *testing.T) {
	for _, name := range OutputFmtNames() {
		f, err := ParseOutputFmt(name)
		if err != nil {
			t.Fatalf("ParseOutputFmt(%q) error = %v", name, err)
		}
		if !strings.HasPrefix(f.Ext(), ".") {
			t.Errorf("%s.Ext() = %q", name, f.Ext())
		}
	}
	if _, err := ParseOutputFmt("epub"); err == nil {
		t.Error("expected error for unknown format")
	}
}
