package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReportClose_WritesArchive(t *testing.T) {
	tmpDir := t.TempDir()
	dst := filepath.Join(tmpDir, "report.zip")

	conf := ReporterConfig{Destination: dst}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	stored := filepath.Join(tmpDir, "stored.txt")
	if err := os.WriteFile(stored, []byte("stored file"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	r.Store("result.txt", stored)
	r.StoreData("config/fce.yaml", []byte("version: 1\n"))
	r.Store("missing.txt", filepath.Join(tmpDir, "does-not-exist"))

	if r.Name() != dst {
		t.Errorf("Name() = %q, want %q", r.Name(), dst)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(dst)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	got := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		got[f.Name] = string(data)
	}

	if got["result.txt"] != "stored file" {
		t.Errorf("result.txt = %q", got["result.txt"])
	}
	if got["config/fce.yaml"] != "version: 1\n" {
		t.Errorf("config/fce.yaml = %q", got["config/fce.yaml"])
	}
	if _, ok := got["missing.txt"]; ok {
		t.Error("absent file must not be archived")
	}
	if !strings.Contains(got["MANIFEST"], "result.txt") {
		t.Errorf("MANIFEST does not list stored file: %q", got["MANIFEST"])
	}
}

func TestReportStoreData_DuplicatePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.StoreData("a", []byte("1"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate data entry")
		}
	}()
	r.StoreData("a", []byte("2"))
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("x", "y")
	r.StoreData("x", nil)
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name on nil report = %q, want empty", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
