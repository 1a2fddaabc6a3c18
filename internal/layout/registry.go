package layout

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrLayoutNotFound is returned when a requested layout cannot be found.
var ErrLayoutNotFound = errors.New("layout not found")

// Registry manages layout discovery and access.
type Registry struct {
	layoutDir string
	layouts   map[string]*Layout
	mu        sync.RWMutex
}

// NewRegistry creates a new layout Registry for the given directory.
func NewRegistry(layoutDir string) *Registry {
	return &Registry{
		layoutDir: layoutDir,
		layouts:   make(map[string]*Layout),
	}
}

// Discover scans the layout directory for *.json manifests and loads
// them. A missing directory means there is nothing to discover, not an
// error. Manifests that fail to parse or build are skipped.
func (r *Registry) Discover() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Clear existing layouts
	r.layouts = make(map[string]*Layout)

	info, err := os.Stat(r.layoutDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(r.layoutDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(r.layoutDir, entry.Name()))
		if err != nil {
			continue // Skip manifests we can't read
		}

		var manifest Manifest
		if err := json.Unmarshal(data, &manifest); err != nil {
			continue // Skip manifests with invalid JSON
		}

		if manifest.ID == "" {
			manifest.ID = strings.TrimSuffix(entry.Name(), ".json")
		}

		layout, err := manifest.Build()
		if err != nil {
			continue
		}

		r.layouts[layout.ID] = layout
	}

	return nil
}

// Get returns a layout by id.
// Returns ErrLayoutNotFound if the layout does not exist.
func (r *Registry) Get(id string) (*Layout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	layout, ok := r.layouts[id]
	if !ok {
		return nil, ErrLayoutNotFound
	}

	return layout, nil
}

// List returns a slice of all discovered layouts.
func (r *Registry) List() []*Layout {
	r.mu.RLock()
	defer r.mu.RUnlock()

	layouts := make([]*Layout, 0, len(r.layouts))
	for _, layout := range r.layouts {
		layouts = append(layouts, layout)
	}

	return layouts
}

// LayoutDir returns the layout directory path.
func (r *Registry) LayoutDir() string {
	return r.layoutDir
}
