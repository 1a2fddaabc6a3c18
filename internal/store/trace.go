package store

import (
	"database/sql"
	"errors"
	"time"
)

// Trace represents a decoded gesture summary stored for tuning and
// telemetry. Decoded is false when the gesture produced no word; the
// word column is NULL in that case, never an empty string.
type Trace struct {
	ID          string
	LayoutID    string
	Word        string
	Decoded     bool
	SampleCount int
	PathLength  float64
	DurationMs  int64
	CreatedAt   time.Time
}

// TraceSample is one raw touch sample of a stored trace.
type TraceSample struct {
	Sequence    int     `json:"sequence"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	TimestampMs int64   `json:"t"`
}

// TraceRepository provides storage for decode traces.
type TraceRepository struct {
	db *sql.DB
}

// Traces returns the trace repository for this store.
func (s *Store) Traces() *TraceRepository {
	return &TraceRepository{db: s.db}
}

// Create inserts a trace and its samples in a single transaction.
func (r *TraceRepository) Create(t *Trace, samples []TraceSample) error {
	t.CreatedAt = time.Now()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	word := sql.NullString{String: t.Word, Valid: t.Decoded}
	_, err = tx.Exec(
		`INSERT INTO traces (id, layout_id, word, sample_count, path_length, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.LayoutID, word, t.SampleCount, t.PathLength, t.DurationMs, t.CreatedAt,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO trace_samples (trace_id, sequence, x, y, timestamp_ms)
		 VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, s := range samples {
		if _, err := stmt.Exec(t.ID, i, s.X, s.Y, s.TimestampMs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves a trace by its ID.
func (r *TraceRepository) GetByID(id string) (*Trace, error) {
	t := &Trace{}
	var word sql.NullString

	err := r.db.QueryRow(
		`SELECT id, layout_id, word, sample_count, path_length, duration_ms, created_at
		 FROM traces WHERE id = ?`,
		id,
	).Scan(&t.ID, &t.LayoutID, &word, &t.SampleCount, &t.PathLength, &t.DurationMs, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	t.Word = word.String
	t.Decoded = word.Valid
	return t, nil
}

// List retrieves the most recent traces, newest first.
func (r *TraceRepository) List(limit int) ([]*Trace, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, layout_id, word, sample_count, path_length, duration_ms, created_at
		 FROM traces ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var traces []*Trace
	for rows.Next() {
		t := &Trace{}
		var word sql.NullString

		err := rows.Scan(&t.ID, &t.LayoutID, &word, &t.SampleCount, &t.PathLength, &t.DurationMs, &t.CreatedAt)
		if err != nil {
			return nil, err
		}

		t.Word = word.String
		t.Decoded = word.Valid
		traces = append(traces, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return traces, nil
}

// GetSamples retrieves the raw samples of a trace ordered by sequence.
func (r *TraceRepository) GetSamples(traceID string) ([]TraceSample, error) {
	rows, err := r.db.Query(
		`SELECT sequence, x, y, timestamp_ms
		 FROM trace_samples
		 WHERE trace_id = ?
		 ORDER BY sequence`,
		traceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []TraceSample
	for rows.Next() {
		var s TraceSample
		if err := rows.Scan(&s.Sequence, &s.X, &s.Y, &s.TimestampMs); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}
