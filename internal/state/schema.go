package state

import (
	"database/sql"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS view_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			filter TEXT NOT NULL,
			sort_type TEXT NOT NULL,
			sort_order TEXT NOT NULL,
			selected_id TEXT
		);
	`)
	return err
}
