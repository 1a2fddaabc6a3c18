package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Layouts table - stores keyboard layout definitions
		`CREATE TABLE IF NOT EXISTS layouts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			key_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Layout keys table - stores hit rectangles per key
		`CREATE TABLE IF NOT EXISTS layout_keys (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout_id TEXT NOT NULL REFERENCES layouts(id) ON DELETE CASCADE,
			key_id TEXT NOT NULL,
			x_min REAL NOT NULL,
			y_min REAL NOT NULL,
			x_max REAL NOT NULL,
			y_max REAL NOT NULL
		)`,

		// Words table - stores dictionary words per language, position
		// preserves dictionary order for suggestion tie-breaks
		`CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lang TEXT NOT NULL,
			position INTEGER NOT NULL,
			word TEXT NOT NULL
		)`,

		// Traces table - stores decoded gesture summaries for tuning
		`CREATE TABLE IF NOT EXISTS traces (
			id TEXT PRIMARY KEY,
			layout_id TEXT,
			word TEXT,
			sample_count INTEGER NOT NULL,
			path_length REAL NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Trace samples table - stores the raw touch samples of a trace
		`CREATE TABLE IF NOT EXISTS trace_samples (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			trace_id TEXT NOT NULL REFERENCES traces(id) ON DELETE CASCADE,
			sequence INTEGER NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			timestamp_ms INTEGER NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_layout_keys_layout_id ON layout_keys(layout_id)`,
		`CREATE INDEX IF NOT EXISTS idx_words_lang ON words(lang, position)`,
		`CREATE INDEX IF NOT EXISTS idx_trace_samples_trace_id ON trace_samples(trace_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
