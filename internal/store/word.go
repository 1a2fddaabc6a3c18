package store

import "database/sql"

// WordRepository provides storage for dictionary words. Positions
// preserve dictionary order, which suggestion ranking uses to break
// edit-distance ties.
type WordRepository struct {
	db *sql.DB
}

// Words returns the word repository for this store.
func (s *Store) Words() *WordRepository {
	return &WordRepository{db: s.db}
}

// ReplaceAll replaces the word list for a language in a single
// transaction.
func (r *WordRepository) ReplaceAll(lang string, words []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM words WHERE lang = ?`, lang); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO words (lang, position, word) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, word := range words {
		if _, err := stmt.Exec(lang, i, word); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListByLang retrieves the word list for a language in dictionary order.
func (r *WordRepository) ListByLang(lang string) ([]string, error) {
	rows, err := r.db.Query(
		`SELECT word FROM words WHERE lang = ? ORDER BY position`,
		lang,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// Count returns the number of stored words for a language.
func (r *WordRepository) Count(lang string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM words WHERE lang = ?`, lang).Scan(&count)
	return count, err
}
