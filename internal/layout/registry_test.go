package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validManifest = `{
	"name": "Mini QWERTY",
	"key_width": 50,
	"key_height": 50,
	"rows": [
		{"keys": [{"key": "q"}, {"key": "w"}, {"key": "e"}]}
	]
}`

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
}

func TestRegistryDiscover(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, "mini.json", validManifest)
	writeManifest(t, tmpDir, "notes.txt", "not a manifest")

	registry := NewRegistry(tmpDir)
	if err := registry.Discover(); err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	layouts := registry.List()
	if len(layouts) != 1 {
		t.Fatalf("discovered %d layouts, want 1", len(layouts))
	}

	// ID defaults to the manifest filename
	layout, err := registry.Get("mini")
	if err != nil {
		t.Fatalf("Get(mini) error = %v", err)
	}
	if layout.Name != "Mini QWERTY" {
		t.Errorf("Name = %q, want %q", layout.Name, "Mini QWERTY")
	}
	if len(layout.Keys) != 3 {
		t.Errorf("key count = %d, want 3", len(layout.Keys))
	}
}

func TestRegistryDiscover_SkipsInvalidManifests(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, "good.json", validManifest)
	writeManifest(t, tmpDir, "broken.json", "{not json")
	writeManifest(t, tmpDir, "incomplete.json", `{"name": "No Rows", "key_width": 50, "key_height": 50}`)

	registry := NewRegistry(tmpDir)
	if err := registry.Discover(); err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(registry.List()) != 1 {
		t.Errorf("discovered %d layouts, want only the valid one", len(registry.List()))
	}
}

func TestRegistryDiscover_MissingDirectory(t *testing.T) {
	registry := NewRegistry(filepath.Join(t.TempDir(), "does-not-exist"))

	if err := registry.Discover(); err != nil {
		t.Errorf("Discover() on a missing directory should not fail, got %v", err)
	}
	if len(registry.List()) != 0 {
		t.Errorf("expected no layouts")
	}
}

func TestRegistryDiscover_ReplacesPreviousLayouts(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, "mini.json", validManifest)

	registry := NewRegistry(tmpDir)
	if err := registry.Discover(); err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if err := os.Remove(filepath.Join(tmpDir, "mini.json")); err != nil {
		t.Fatalf("failed to remove manifest: %v", err)
	}

	if err := registry.Discover(); err != nil {
		t.Fatalf("second Discover() error = %v", err)
	}
	if len(registry.List()) != 0 {
		t.Errorf("expected rediscovery to drop removed layouts")
	}
}

func TestRegistryGet_NotFound(t *testing.T) {
	registry := NewRegistry(t.TempDir())

	_, err := registry.Get("nope")
	if !errors.Is(err, ErrLayoutNotFound) {
		t.Errorf("Get() error = %v, want ErrLayoutNotFound", err)
	}
}
