package state

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"fce/config"
	"fce/content"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
}

func TestEnvFromContext_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	time.Sleep(10 * time.Millisecond)
	if uptime := env.Uptime(); uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
}

func TestLocalEnv_RedirectAndRestore(t *testing.T) {
	env := &LocalEnv{
		Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
	}
	for i := range 3 {
		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Errorf("Iteration %d: restoreStdLog not set", i)
		}
		env.RestoreStdLog()
	}

	// no logger - nothing to redirect, must not panic
	empty := &LocalEnv{}
	empty.RedirectStdLog()
	if empty.restoreStdLog != nil {
		t.Error("Expected restoreStdLog to remain nil")
	}
	empty.RestoreStdLog()
}

func TestLocalEnv_PrepareRendering(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("unable to load default configuration: %v", err)
	}
	cfg.Rendering.Priority = []string{"post", "user"}
	cfg.Rendering.Actions.Enabled = []string{"like", "reply"}

	env := &LocalEnv{Cfg: cfg, Log: zaptest.NewLogger(t)}
	if err := env.PrepareRendering(); err != nil {
		t.Fatalf("PrepareRendering() error = %v", err)
	}
	if env.Styles == nil || env.Actions == nil {
		t.Fatal("expected styles and actions to be prepared")
	}
	if want := []content.RangeKind{content.RangeKindPost, content.RangeKindUser}; !reflect.DeepEqual(env.Styles.Priority, want) {
		t.Errorf("unexpected priority %v", env.Styles.Priority)
	}
	if want := []content.ActionID{content.ActionIDLike, content.ActionIDReply}; !reflect.DeepEqual(env.Actions.Known(), want) {
		t.Errorf("unexpected actions %v", env.Actions.Known())
	}

	cfg.Rendering.Priority = []string{"nonsense"}
	if err := env.PrepareRendering(); err == nil {
		t.Error("expected error for bad priority")
	}
}

func TestLocalEnv_PrepareRendering_Report(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("unable to load default configuration: %v", err)
	}
	dst := filepath.Join(t.TempDir(), "report.zip")
	rpt, err := (&config.ReporterConfig{Destination: dst}).Prepare()
	if err != nil {
		t.Fatalf("unable to prepare report: %v", err)
	}

	env := &LocalEnv{Cfg: cfg, Rpt: rpt, Log: zaptest.NewLogger(t)}
	if err := env.PrepareRendering(); err != nil {
		t.Fatalf("PrepareRendering() error = %v", err)
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("unable to close report: %v", err)
	}

	zr, err := zip.OpenReader(dst)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "stylesheet.css" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		if string(data) != env.Styles.Source || !strings.Contains(string(data), ".user {") {
			t.Errorf("unexpected stylesheet in report:\n%s", data)
		}
		return
	}
	t.Error("stylesheet not stored in report")
}

func TestNewRegistry(t *testing.T) {
	log := zaptest.NewLogger(t)

	reg, err := NewRegistry(&config.ActionsConfig{
		Titles: map[string]string{"approve": "Approved"},
		Colors: map[string]string{"like": "#ff8800"},
	}, log)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	if len(reg.Known()) != len(content.ActionIDNames()) {
		t.Errorf("expected all actions known, got %v", reg.Known())
	}
	approve, _ := reg.New(content.ActionIDApprove, false)
	if approve.Title() != "Approved" {
		t.Errorf("unexpected title %q", approve.Title())
	}
	like, _ := reg.New(content.ActionIDLike, false)
	if like.Color() != "#ff8800" {
		t.Errorf("unexpected color %q", like.Color())
	}

	tests := []struct {
		name string
		cfg  config.ActionsConfig
	}{
		{"enabled", config.ActionsConfig{Enabled: []string{"like", "dance"}}},
		{"titles", config.ActionsConfig{Titles: map[string]string{"dance": "Dance"}}},
		{"colors", config.ActionsConfig{Colors: map[string]string{"dance": "#000000"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(&tt.cfg, log)
			if !errors.Is(err, content.ErrInvalidActionID) {
				t.Errorf("expected ErrInvalidActionID, got %v", err)
			}
		})
	}
}
