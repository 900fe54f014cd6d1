package style

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"fce/config"
	"fce/content"
)

func TestLoadStylesheet(t *testing.T) {
	data := []byte(`
		body { color: #222; font-family: serif; }
		.base { font-size: 14px; }
		blockquote { font-style: italic; }
		a { color: #0087BE; text-decoration: underline; }
		.user { font-weight: bold; }
		.user { color: red; }
		.post, .site { font-style: italic; }
		.unheard-of { color: pink; }
		p { margin: 0; }
	`)

	cfg := LoadStylesheet(data, zaptest.NewLogger(t))

	wantBase := AttributeSet{"color": "#222222", "font-family": "serif", "font-size": "14px"}
	if !reflect.DeepEqual(cfg.Base, wantBase) {
		t.Errorf("unexpected base %v", cfg.Base)
	}
	if !reflect.DeepEqual(cfg.Quote, AttributeSet{"font-style": "italic"}) {
		t.Errorf("unexpected quote %v", cfg.Quote)
	}
	if cfg.LinkColor != "#0087be" {
		t.Errorf("unexpected link color %q", cfg.LinkColor)
	}
	if !reflect.DeepEqual(cfg.ByKind[content.RangeKindUser], AttributeSet{"font-weight": "bold", "color": "red"}) {
		t.Errorf("unexpected user attributes %v", cfg.ByKind[content.RangeKindUser])
	}
	if cfg.ByKind[content.RangeKindPost]["font-style"] != "italic" || cfg.ByKind[content.RangeKindSite]["font-style"] != "italic" {
		t.Error("expected grouped selectors to apply to both kinds")
	}
	if len(cfg.ByKind) != 3 {
		t.Errorf("expected 3 kinds, got %v", cfg.ByKind)
	}
	if len(cfg.CacheKey) != 64 {
		t.Errorf("expected digest cache key, got %q", cfg.CacheKey)
	}
	if !strings.Contains(cfg.Source, ".user {\n  font-weight: bold;\n}\n\n.user {\n  color: red;\n}\n") {
		t.Errorf("expected normalized stylesheet source, got:\n%s", cfg.Source)
	}
	if other := LoadStylesheet(append(data, ' '), nil); other.CacheKey == cfg.CacheKey {
		t.Error("expected cache key to follow stylesheet text")
	}
}

func TestLoadStylesheet_SelectorOrder(t *testing.T) {
	// later rule of the same selector still wins over a selector mapped to
	// the same target in between
	cfg := LoadStylesheet([]byte(`
		.user { color: red; }
		.base { color: gray; }
		.user { color: green; font-style: italic; }
		body { color: black; }
	`), zaptest.NewLogger(t))

	if !reflect.DeepEqual(cfg.ByKind[content.RangeKindUser], AttributeSet{"color": "green", "font-style": "italic"}) {
		t.Errorf("unexpected user attributes %v", cfg.ByKind[content.RangeKindUser])
	}
	if cfg.Base["color"] != "black" {
		t.Errorf("expected later base selector to win, got %v", cfg.Base)
	}
}

func TestLoadStylesheet_Default(t *testing.T) {
	cfg := LoadStylesheet(DefaultStylesheet(), zaptest.NewLogger(t))

	if cfg.Quote == nil {
		t.Error("expected quote attributes in default stylesheet")
	}
	if cfg.LinkColor == "" {
		t.Error("expected link color in default stylesheet")
	}
	for _, kind := range []content.RangeKind{content.RangeKindUser, content.RangeKindPost, content.RangeKindMatch} {
		if _, ok := cfg.ByKind[kind]; !ok {
			t.Errorf("expected attributes for %s", kind)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.css")
	if err := os.WriteFile(path, []byte(`.user { font-weight: bold; }`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		cfg          config.RenderingConfig
		wantErr      bool
		wantKey      string
		wantPriority []content.RangeKind
		wantUser     bool
	}{
		{
			name:     "embedded",
			cfg:      config.RenderingConfig{},
			wantUser: true,
		},
		{
			name:         "file with overrides",
			cfg:          config.RenderingConfig{StylesheetPath: path, CacheKey: "v2", Priority: []string{"post", "user"}},
			wantKey:      "v2",
			wantPriority: []content.RangeKind{content.RangeKindPost, content.RangeKindUser},
			wantUser:     true,
		},
		{
			name:    "missing file",
			cfg:     config.RenderingConfig{StylesheetPath: filepath.Join(dir, "absent.css")},
			wantErr: true,
		},
		{
			name:    "bad priority",
			cfg:     config.RenderingConfig{Priority: []string{"user", "bogus"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(&tt.cfg, zaptest.NewLogger(t))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantKey != "" && got.CacheKey != tt.wantKey {
				t.Errorf("expected cache key %q, got %q", tt.wantKey, got.CacheKey)
			}
			if !reflect.DeepEqual(got.Priority, tt.wantPriority) {
				t.Errorf("expected priority %v, got %v", tt.wantPriority, got.Priority)
			}
			if _, ok := got.ByKind[content.RangeKindUser]; ok != tt.wantUser {
				t.Errorf("user attributes presence %v", ok)
			}
		})
	}
}

func TestCacheKey(t *testing.T) {
	p := content.NewParser(nil, zaptest.NewLogger(t))
	a := p.Block(content.Record{"text": "Hello"}, content.ParentContext{})
	b := p.Block(content.Record{"text": "Hello!"}, content.ParentContext{})

	v1 := &Configuration{CacheKey: "v1"}
	v2 := &Configuration{CacheKey: "v2"}

	if CacheKey(a, v1) != CacheKey(a, v1) {
		t.Error("expected stable key")
	}
	if CacheKey(a, v1) == CacheKey(a, v2) || CacheKey(a, v1) == CacheKey(b, v1) {
		t.Error("expected key to depend on block and configuration")
	}
	if CacheKey(a, nil) == "" {
		t.Error("expected key for nil configuration")
	}

	res := ResolveBlock(a, v1)
	if len(res.Runs) != 1 || res.Runs[0].End != 5 {
		t.Errorf("unexpected block resolution %v", res.Runs)
	}
}
