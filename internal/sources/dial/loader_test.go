package dial

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dial.yaml")
	yaml := `
- name: Work
  entries:
    - title: CI
      url: https://ci.example.com
    - title: Wiki
      url: https://wiki.example.com
- name: Home
  entries:
    - url: https://news.example.com
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	config, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(config) != 2 {
		t.Fatalf("Load() returned %d categories, want 2", len(config))
	}
	if config[0].Name != "Work" || len(config[0].Entries) != 2 {
		t.Errorf("first category = %+v, want Work with 2 entries", config[0])
	}
	if config[1].Entries[0].Title != "" {
		t.Errorf("entry title = %q, want empty (store supplies fallback)", config[1].Entries[0].Title)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	if _, err := NewLoader("/nonexistent/dial.yaml").Load(); err == nil {
		t.Error("Load() on missing file should return error")
	}
}

func TestLoaderInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dial.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() on invalid yaml should return error")
	}
}
