package style

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"os"

	"go.uber.org/zap"

	"fce/config"
	"fce/content"
	"fce/css"
)

//go:embed default.css
var defaultStylesheet []byte

// DefaultStylesheet returns CSS used when no stylesheet is configured.
func DefaultStylesheet() []byte {
	return defaultStylesheet
}

// LoadStylesheet builds configuration from CSS. Selectors are mapped as
// follows: "body" and ".base" give base attributes, "blockquote" gives quote
// attributes, ".<kind>" gives attributes of range kind and color of "a"
// becomes link color. Everything else is ignored. Cache key is digest of the
// stylesheet text.
func LoadStylesheet(data []byte, log *zap.Logger) *Configuration {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("style")

	sheet := css.NewParser(log).Parse(data, "stylesheet")
	for _, w := range sheet.Warnings {
		log.Debug("Stylesheet warning", zap.String("warning", w))
	}

	sum := sha256.Sum256(data)
	cfg := &Configuration{
		Base:     AttributeSet{},
		ByKind:   make(map[content.RangeKind]AttributeSet),
		CacheKey: hex.EncodeToString(sum[:]),
		Source:   sheet.String(),
	}

	// every selector is applied once, in order of its first appearance, with
	// declarations of all its rules cascaded
	seen := make(map[string]bool, len(sheet.Rules))
	for _, rule := range sheet.Rules {
		sel := rule.Selector
		if seen[sel.Raw] {
			continue
		}
		seen[sel.Raw] = true
		props, _ := sheet.Properties(sel.Raw)
		attrs := toAttributes(props)

		switch {
		case sel.Element == "body" && sel.Class == "", sel.Element == "" && sel.Class == "base":
			cfg.Base = cfg.Base.Merge(attrs)
		case sel.Element == "blockquote" && sel.Class == "", sel.Element == "" && sel.Class == content.RangeKindBlockquote.String():
			cfg.Quote = cfg.Quote.Merge(attrs)
		case sel.Element == "a" && sel.Class == "":
			if color, ok := attrs["color"]; ok {
				cfg.LinkColor = color
			}
		case sel.Element == "" && content.RangeKind(sel.Class).IsValid():
			kind := content.RangeKind(sel.Class)
			cfg.ByKind[kind] = cfg.ByKind[kind].Merge(attrs)
		default:
			log.Debug("Ignoring style rule", zap.String("selector", sel.Raw))
		}
	}
	return cfg
}

func toAttributes(props map[string]css.Value) AttributeSet {
	attrs := make(AttributeSet, len(props))
	for name, v := range props {
		if c, ok := v.Color(); ok {
			attrs[name] = c
			continue
		}
		attrs[name] = v.Raw
	}
	return attrs
}

// Load prepares style configuration according to rendering settings: reads
// stylesheet (or uses embedded one) and applies priority and cache key
// overrides.
func Load(cfg *config.RenderingConfig, log *zap.Logger) (*Configuration, error) {
	data := defaultStylesheet
	if cfg.StylesheetPath != "" {
		var err error
		if data, err = os.ReadFile(cfg.StylesheetPath); err != nil {
			return nil, fmt.Errorf("unable to read stylesheet: %w", err)
		}
	}

	styles := LoadStylesheet(data, log)
	for _, name := range cfg.Priority {
		kind, err := content.ParseRangeKind(name)
		if err != nil {
			return nil, fmt.Errorf("bad range kind in priority list: %w", err)
		}
		styles.Priority = append(styles.Priority, kind)
	}
	if cfg.CacheKey != "" {
		styles.CacheKey = cfg.CacheKey
	}
	return styles, nil
}
