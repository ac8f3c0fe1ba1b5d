package state

import (
	"database/sql"
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/llehouerou/sukinote/internal/notes"
)

// ViewState is what the list shows: the category filter, the sort and
// the note under the cursor.
type ViewState struct {
	Filter     notes.Category
	SortType   notes.SortType
	SortOrder  notes.SortOrder
	SelectedID uuid.UUID
}

// Sanitized replaces values that no longer parse (a removed category or
// sort type) with fallback's.
func (s ViewState) Sanitized(fallback ViewState) ViewState {
	if s.Filter != notes.All && !s.Filter.Valid() {
		s.Filter = fallback.Filter
	}
	if !slices.Contains(notes.SortTypes(), s.SortType) {
		s.SortType = fallback.SortType
	}
	if s.SortOrder != notes.Ascending && s.SortOrder != notes.Descending {
		s.SortOrder = fallback.SortOrder
	}
	return s
}

func getView(db *sql.DB) (*ViewState, error) {
	row := db.QueryRow(`
		SELECT filter, sort_type, sort_order, selected_id
		FROM view_state WHERE id = 1
	`)

	var filter, sortType, sortOrder string
	var selectedID sql.NullString
	err := row.Scan(&filter, &sortType, &sortOrder, &selectedID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	s := ViewState{
		Filter:    notes.Category(filter),
		SortType:  notes.SortType(sortType),
		SortOrder: notes.SortOrder(sortOrder),
	}
	if selectedID.Valid {
		if id, err := uuid.Parse(selectedID.String); err == nil {
			s.SelectedID = id
		}
	}
	return &s, nil
}

func saveView(db *sql.DB, s ViewState) error {
	var selected sql.NullString
	if s.SelectedID != uuid.Nil {
		selected = sql.NullString{String: s.SelectedID.String(), Valid: true}
	}
	_, err := db.Exec(`
		INSERT INTO view_state (id, filter, sort_type, sort_order, selected_id)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			filter = excluded.filter,
			sort_type = excluded.sort_type,
			sort_order = excluded.sort_order,
			selected_id = excluded.selected_id
	`, string(s.Filter), string(s.SortType), string(s.SortOrder), selected)
	return err
}
