package render

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"fce/config"
	"fce/content"
)

// buildOutputPath returns output file path for rendered source. "src" is
// path relative to the processed directory or archive (or just base name for
// single file). Source directory structure is kept under dst. Name comes from
// the configured template when it expands to something, otherwise from the
// source name.
func buildOutputPath(entries []*content.Entry, src, dst string, format config.OutputFmt, cfg *config.RenderingConfig, log *zap.Logger) string {
	outDir := filepath.Join(dst, filepath.Dir(src))

	if cfg.OutputNameTemplate != "" {
		values := buildValues(config.OutputNameTemplateFieldName, entries, src, format)
		expanded, err := expandTemplate(config.OutputNameTemplateFieldName, cfg.OutputNameTemplate, values)
		if err != nil {
			log.Warn("Unable to prepare output filename", zap.Error(err))
		} else if segments := splitPath(strings.TrimSpace(expanded)); len(segments) > 0 {
			parts := make([]string, 0, len(segments)+1)
			parts = append(parts, outDir)
			for _, s := range segments[:len(segments)-1] {
				parts = append(parts, cleanPathSegment(s, cfg.FileNameTransliterate))
			}
			parts = append(parts, cleanPathSegment(segments[len(segments)-1], cfg.FileNameTransliterate)+format.Ext())
			return filepath.Join(parts...)
		}
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(outDir, cleanPathSegment(base, cfg.FileNameTransliterate)+format.Ext())
}

// splitPath returns path segments in order, dropping empty and relative
// ones so expanded names cannot leave destination directory.
func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(filepath.ToSlash(path), "/") {
		if s != "" && s != "." && s != ".." {
			segments = append(segments, s)
		}
	}
	return segments
}

func cleanPathSegment(segment string, transliterate bool) string {
	if transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
