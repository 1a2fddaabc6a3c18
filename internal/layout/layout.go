// Package layout loads keyboard layout definitions and exposes their
// key geometry for swipe decoding.
package layout

import (
	"fmt"

	"github.com/kmathur/glide/internal/decoder"
)

// Manifest describes a keyboard layout definition file. Keys are laid
// out row by row from the origin; each row may be staggered with an
// offset, and individual keys may span a multiple of the base width.
type Manifest struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	KeyWidth  float64 `json:"key_width"`
	KeyHeight float64 `json:"key_height"`
	OriginX   float64 `json:"origin_x,omitempty"`
	OriginY   float64 `json:"origin_y,omitempty"`
	Rows      []Row   `json:"rows"`
}

// Row is one horizontal row of keys.
type Row struct {
	Offset float64 `json:"offset,omitempty"`
	Keys   []Key   `json:"keys"`
}

// Key is one key in a row. Width is a multiplier of the layout's base
// key width; zero means 1.
type Key struct {
	ID    string  `json:"key"`
	Width float64 `json:"width,omitempty"`
}

// Layout is a named layout with resolved key geometry.
type Layout struct {
	ID   string
	Name string
	Keys decoder.GeometryMap
}

// Build resolves the manifest into a Layout with absolute hit
// rectangles. Duplicate key ids within one layout are an error.
func (m Manifest) Build() (*Layout, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("layout has no name")
	}
	if m.KeyWidth <= 0 || m.KeyHeight <= 0 {
		return nil, fmt.Errorf("layout %s: key dimensions must be positive", m.Name)
	}
	if len(m.Rows) == 0 {
		return nil, fmt.Errorf("layout %s: no rows defined", m.Name)
	}

	keys := make(decoder.GeometryMap)

	y := m.OriginY
	for _, row := range m.Rows {
		x := m.OriginX + row.Offset

		for _, key := range row.Keys {
			if key.ID == "" {
				return nil, fmt.Errorf("layout %s: row contains a key without an id", m.Name)
			}
			if _, ok := keys[key.ID]; ok {
				return nil, fmt.Errorf("layout %s: duplicate key %q", m.Name, key.ID)
			}

			width := m.KeyWidth
			if key.Width > 0 {
				width = m.KeyWidth * key.Width
			}

			keys[key.ID] = decoder.Rect{
				Left:   x,
				Top:    y,
				Right:  x + width,
				Bottom: y + m.KeyHeight,
			}
			x += width
		}

		y += m.KeyHeight
	}

	id := m.ID
	if id == "" {
		id = m.Name
	}

	return &Layout{
		ID:   id,
		Name: m.Name,
		Keys: keys,
	}, nil
}
