package db

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	// A single connection keeps the in-memory database alive across calls.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE test_table (id INTEGER PRIMARY KEY, value TEXT)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM test_table`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Success(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO test_table (value) VALUES (?)`, "test")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if count := countRows(t, db); count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	testErr := errors.New("test error")
	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO test_table (value) VALUES (?)`, "test"); err != nil {
			return err
		}
		return testErr
	})
	if !errors.Is(err, testErr) {
		t.Fatalf("WithTx error = %v, want %v", err, testErr)
	}

	if count := countRows(t, db); count != 0 {
		t.Errorf("count = %d, want 0 after rollback", count)
	}
}

func TestMillisRoundTrip(t *testing.T) {
	in := time.Date(2020, 6, 15, 9, 30, 0, 123_000_000, time.UTC)
	if got := FromMillis(ToMillis(in)); !got.Equal(in) {
		t.Errorf("FromMillis(ToMillis(%v)) = %v", in, got)
	}
}

func TestNullMillis(t *testing.T) {
	if n := NullMillis(nil); n.Valid {
		t.Error("NullMillis(nil) should be invalid")
	}
	if p := NullMillisToPtr(sql.NullInt64{}); p != nil {
		t.Errorf("NullMillisToPtr(invalid) = %v, want nil", p)
	}

	in := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	p := NullMillisToPtr(NullMillis(&in))
	if p == nil || !p.Equal(in) {
		t.Errorf("round trip = %v, want %v", p, in)
	}
}
