package store

import (
	"database/sql"
	"errors"
	"time"
)

// Layout represents a keyboard layout stored in the database.
type Layout struct {
	ID        string
	Name      string
	KeyCount  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// KeyRect is one key's hit rectangle within a layout.
type KeyRect struct {
	KeyID  string  `json:"key"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// LayoutRepository provides CRUD operations for layouts.
type LayoutRepository struct {
	db *sql.DB
}

// Layouts returns the layout repository for this store.
func (s *Store) Layouts() *LayoutRepository {
	return &LayoutRepository{db: s.db}
}

// Create inserts a new layout into the database.
func (r *LayoutRepository) Create(l *Layout) error {
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO layouts (id, name, key_count, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.KeyCount, l.CreatedAt, l.UpdatedAt,
	)
	return err
}

// GetByID retrieves a layout by its ID.
func (r *LayoutRepository) GetByID(id string) (*Layout, error) {
	l := &Layout{}

	err := r.db.QueryRow(
		`SELECT id, name, key_count, created_at, updated_at
		 FROM layouts WHERE id = ?`,
		id,
	).Scan(&l.ID, &l.Name, &l.KeyCount, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return l, nil
}

// GetByName retrieves a layout by its name.
func (r *LayoutRepository) GetByName(name string) (*Layout, error) {
	l := &Layout{}

	err := r.db.QueryRow(
		`SELECT id, name, key_count, created_at, updated_at
		 FROM layouts WHERE name = ?`,
		name,
	).Scan(&l.ID, &l.Name, &l.KeyCount, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return l, nil
}

// List retrieves all layouts from the database.
func (r *LayoutRepository) List() ([]*Layout, error) {
	rows, err := r.db.Query(
		`SELECT id, name, key_count, created_at, updated_at
		 FROM layouts ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var layouts []*Layout
	for rows.Next() {
		l := &Layout{}
		if err := rows.Scan(&l.ID, &l.Name, &l.KeyCount, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return layouts, nil
}

// Delete removes a layout from the database by its ID.
func (r *LayoutRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM layouts WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// ReplaceKeys replaces all key rectangles for a layout in a single
// transaction and updates the key count on the layout.
func (r *LayoutRepository) ReplaceKeys(layoutID string, keys []KeyRect) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Update key count first so a missing layout surfaces as ErrNotFound
	// rather than a foreign key violation on the inserts.
	result, err := tx.Exec(`UPDATE layouts SET key_count = ?, updated_at = ? WHERE id = ?`,
		len(keys), time.Now(), layoutID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(`DELETE FROM layout_keys WHERE layout_id = ?`, layoutID); err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO layout_keys (layout_id, key_id, x_min, y_min, x_max, y_max)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, k := range keys {
		if _, err := stmt.Exec(layoutID, k.KeyID, k.Left, k.Top, k.Right, k.Bottom); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetKeys retrieves all key rectangles for a layout.
func (r *LayoutRepository) GetKeys(layoutID string) ([]KeyRect, error) {
	rows, err := r.db.Query(
		`SELECT key_id, x_min, y_min, x_max, y_max
		 FROM layout_keys
		 WHERE layout_id = ?
		 ORDER BY id`,
		layoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []KeyRect
	for rows.Next() {
		var k KeyRect
		if err := rows.Scan(&k.KeyID, &k.Left, &k.Top, &k.Right, &k.Bottom); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}
