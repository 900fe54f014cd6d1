package render

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMatchJSON(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"object", []byte(`{"notes":[]}`), true},
		{"array", []byte(`[{}]`), true},
		{"leading whitespace", []byte(" \r\n\t{}"), true},
		{"byte order mark", append([]byte{0xEF, 0xBB, 0xBF}, '{'), true},
		{"scalar", []byte(`"notes"`), false},
		{"text", []byte("notes"), false},
		{"empty", nil, false},
		{"whitespace only", []byte("   "), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchJSON(tt.data); got != tt.want {
				t.Errorf("matchJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		if _, err := f.Write([]byte(data)); err != nil {
			t.Fatalf("Failed to write file in zip: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write zip: %v", err)
	}
}

func TestFileDetection(t *testing.T) {
	dir := t.TempDir()

	payload := filepath.Join(dir, "notes.json")
	if err := os.WriteFile(payload, []byte(samplePayload), 0644); err != nil {
		t.Fatal(err)
	}
	text := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(text, []byte("not a payload"), 0644); err != nil {
		t.Fatal(err)
	}
	fakeZip := filepath.Join(dir, "fake.zip")
	if err := os.WriteFile(fakeZip, []byte("not a real zip file"), 0644); err != nil {
		t.Fatal(err)
	}
	realZip := filepath.Join(dir, "real.zip")
	writeZip(t, realZip, map[string]string{"a.json": samplePayload})

	tests := []struct {
		path        string
		wantArchive bool
		wantPayload bool
	}{
		{payload, false, true},
		{text, false, false},
		{fakeZip, false, false},
		{realZip, true, false},
	}
	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			archive, err := isArchiveFile(tt.path)
			if err != nil {
				t.Fatalf("isArchiveFile() error = %v", err)
			}
			if archive != tt.wantArchive {
				t.Errorf("isArchiveFile() = %v, want %v", archive, tt.wantArchive)
			}
			payload, err := isPayloadFile(tt.path)
			if err != nil {
				t.Fatalf("isPayloadFile() error = %v", err)
			}
			if payload != tt.wantPayload {
				t.Errorf("isPayloadFile() = %v, want %v", payload, tt.wantPayload)
			}
		})
	}

	if _, err := isPayloadFile(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIsPayloadInArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.zip")
	writeZip(t, path, map[string]string{
		"a.json": samplePayload,
		"b.txt":  "plain text",
	})

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	want := map[string]bool{"a.json": true, "b.txt": false}
	for _, f := range r.File {
		got, err := isPayloadInArchive(f)
		if err != nil {
			t.Fatalf("isPayloadInArchive(%s) error = %v", f.Name, err)
		}
		if got != want[f.Name] {
			t.Errorf("isPayloadInArchive(%s) = %v, want %v", f.Name, got, want[f.Name])
		}
	}
}
