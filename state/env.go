// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fce/config"
	"fce/content"
	"fce/style"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by render subcommand
	Overwrite bool
	Styles    *style.Configuration
	Actions   *content.Registry

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// PrepareRendering loads style configuration and builds action registry
// according to rendering configuration.
func (e *LocalEnv) PrepareRendering() (err error) {
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}

	if e.Styles, err = style.Load(&e.Cfg.Rendering, log); err != nil {
		return fmt.Errorf("unable to prepare styles: %w", err)
	}
	if e.Rpt != nil && e.Styles.Source != "" {
		e.Rpt.StoreData("stylesheet.css", []byte(e.Styles.Source))
	}
	if e.Actions, err = NewRegistry(&e.Cfg.Rendering.Actions, log); err != nil {
		return fmt.Errorf("unable to prepare actions: %w", err)
	}
	return nil
}

// NewRegistry builds action registry from configuration. Unknown action
// identifiers are configuration errors.
func NewRegistry(cfg *config.ActionsConfig, log *zap.Logger) (*content.Registry, error) {
	options := []content.RegistryOption{content.WithRegistryLogger(log)}

	if len(cfg.Enabled) > 0 {
		ids := make([]content.ActionID, 0, len(cfg.Enabled))
		for _, name := range cfg.Enabled {
			id, err := content.ParseActionID(name)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		options = append(options, content.WithActions(ids...))
	}
	for name, title := range cfg.Titles {
		id, err := content.ParseActionID(name)
		if err != nil {
			return nil, fmt.Errorf("title: %w", err)
		}
		options = append(options, content.WithTitle(id, title))
	}
	for name, color := range cfg.Colors {
		id, err := content.ParseActionID(name)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		options = append(options, content.WithColor(id, color))
	}
	return content.NewRegistry(options...), nil
}
