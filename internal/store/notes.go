package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	dbutil "github.com/llehouerou/sukinote/internal/db"
	"github.com/llehouerou/sukinote/internal/notes"
)

// Fetch returns every note, newest first.
func (m *Manager) Fetch() ([]notes.Note, error) {
	rows, err := m.db.Query(`
		SELECT id, created_at, category, title, content, anniversary_date, annual
		FROM notes
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []notes.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func scanNote(rows *sql.Rows) (notes.Note, error) {
	var (
		n           notes.Note
		id          string
		createdAt   int64
		category    string
		anniversary sql.NullInt64
		annual      int
	)
	if err := rows.Scan(&id, &createdAt, &category, &n.Title, &n.Content, &anniversary, &annual); err != nil {
		return notes.Note{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return notes.Note{}, fmt.Errorf("note id %q: %w", id, err)
	}
	c, err := notes.ParseCategory(category)
	if err != nil {
		return notes.Note{}, fmt.Errorf("note %s: %w", id, err)
	}

	n.ID = parsed
	n.CreatedAt = dbutil.FromMillis(createdAt)
	n.Category = c
	n.AnniversaryDate = dbutil.NullMillisToPtr(anniversary)
	n.Annual = annual != 0
	return n, nil
}

// Save inserts n, or replaces the stored note with the same id.
func (m *Manager) Save(n notes.Note) error {
	return saveNote(m.db, n)
}

// SaveAll stores every note in a single transaction.
func (m *Manager) SaveAll(list []notes.Note) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		for _, n := range list {
			if err := saveNote(tx, n); err != nil {
				return err
			}
		}
		return nil
	})
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func saveNote(db execer, n notes.Note) error {
	n = n.Normalize()
	if err := n.Validate(); err != nil {
		return err
	}
	if n.ID == uuid.Nil {
		return fmt.Errorf("note %q has no id", n.Title)
	}

	annual := 0
	if n.Annual {
		annual = 1
	}
	_, err := db.Exec(`
		INSERT INTO notes (id, created_at, category, title, content, anniversary_date, annual)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			title = excluded.title,
			content = excluded.content,
			anniversary_date = excluded.anniversary_date,
			annual = excluded.annual
	`, n.ID.String(), dbutil.ToMillis(n.CreatedAt), string(n.Category), n.Title, n.Content,
		dbutil.NullMillis(n.AnniversaryDate), annual)
	return err
}

// Delete removes the note with the given id. Deleting a missing note is
// not an error.
func (m *Manager) Delete(id uuid.UUID) error {
	_, err := m.db.Exec(`DELETE FROM notes WHERE id = ?`, id.String())
	return err
}
