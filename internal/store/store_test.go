package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/sukinote/internal/notes"
)

func openTestStore(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

var t0 = time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)

func TestFetch_Empty(t *testing.T) {
	m := openTestStore(t)

	list, err := m.Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected no notes, got %d", len(list))
	}
}

func TestSaveAndFetch(t *testing.T) {
	m := openTestStore(t)

	date := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	wedding := notes.New(notes.CategoryAnniversary, "Wedding Day", "", t0)
	wedding.AnniversaryDate = &date
	wedding.Annual = true
	coffee := notes.New(notes.CategoryLike, "Morning Coffee", "Flat white", t0.Add(time.Hour))

	for _, n := range []notes.Note{wedding, coffee} {
		if err := m.Save(n); err != nil {
			t.Fatalf("Save(%q) failed: %v", n.Title, err)
		}
	}

	list, err := m.Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(list))
	}

	// Newest first
	if list[0].ID != coffee.ID || list[1].ID != wedding.ID {
		t.Errorf("order = [%s, %s], want newest first", list[0].Title, list[1].Title)
	}

	got := list[1]
	if got.Category != notes.CategoryAnniversary {
		t.Errorf("Category = %q, want anniversary", got.Category)
	}
	if got.AnniversaryDate == nil || !got.AnniversaryDate.Equal(date) {
		t.Errorf("AnniversaryDate = %v, want %v", got.AnniversaryDate, date)
	}
	if !got.Annual {
		t.Error("Annual should round-trip")
	}
	if !got.CreatedAt.Equal(t0) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, t0)
	}
	if list[0].Content != "Flat white" {
		t.Errorf("Content = %q", list[0].Content)
	}
}

func TestSave_Upsert(t *testing.T) {
	m := openTestStore(t)

	n := notes.New(notes.CategoryHobby, "Herbs", "Basil", t0)
	if err := m.Save(n); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	n.Title = "Growing Herbs"
	n.Content = "Basil and mint"
	n.Category = notes.CategoryFamily
	n.CreatedAt = t0.Add(24 * time.Hour) // creation time is immutable
	if err := m.Save(n); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	list, err := m.Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 note after upsert, got %d", len(list))
	}
	got := list[0]
	if got.Title != "Growing Herbs" || got.Content != "Basil and mint" || got.Category != notes.CategoryFamily {
		t.Errorf("upsert did not update fields: %+v", got)
	}
	if !got.CreatedAt.Equal(t0) {
		t.Errorf("CreatedAt changed to %v", got.CreatedAt)
	}
}

func TestSave_NormalizesAndValidates(t *testing.T) {
	m := openTestStore(t)

	date := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	n := notes.New(notes.CategoryLike, "  Jazz  ", "", t0)
	n.AnniversaryDate = &date
	if err := m.Save(n); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	list, _ := m.Fetch()
	if list[0].Title != "Jazz" {
		t.Errorf("Title = %q, want trimmed", list[0].Title)
	}
	if list[0].AnniversaryDate != nil {
		t.Error("non-anniversary note should not keep a date")
	}

	if err := m.Save(notes.New(notes.CategoryLike, " ", "", t0)); !errors.Is(err, notes.ErrEmptyTitle) {
		t.Errorf("Save(empty title) error = %v, want ErrEmptyTitle", err)
	}
	if err := m.Save(notes.Note{Title: "no id", Category: notes.CategoryLike}); err == nil {
		t.Error("Save without id should fail")
	}
}

func TestDelete(t *testing.T) {
	m := openTestStore(t)

	a := notes.New(notes.CategoryWork, "Reviews", "", t0)
	b := notes.New(notes.CategorySchool, "Exams", "", t0.Add(time.Minute))
	if err := m.SaveAll([]notes.Note{a, b}); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	if err := m.Delete(a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	// Missing ids are ignored.
	if err := m.Delete(uuid.New()); err != nil {
		t.Fatalf("Delete(missing) failed: %v", err)
	}

	list, _ := m.Fetch()
	if len(list) != 1 || list[0].ID != b.ID {
		t.Errorf("after delete got %+v, want only %q", list, b.Title)
	}
}

func TestSaveAll_RollsBackOnError(t *testing.T) {
	m := openTestStore(t)

	good := notes.New(notes.CategoryLike, "Coffee", "", t0)
	bad := notes.New(notes.CategoryLike, "", "", t0)
	if err := m.SaveAll([]notes.Note{good, bad}); err == nil {
		t.Fatal("SaveAll with an invalid note should fail")
	}

	list, _ := m.Fetch()
	if len(list) != 0 {
		t.Errorf("expected rollback, found %d notes", len(list))
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	m := openTestStore(t)
	if err := initSchema(m.DB()); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}

	var version int
	if err := m.DB().QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("query version: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestOpen_File(t *testing.T) {
	path := t.TempDir() + "/nested/notes.db"
	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	n := notes.New(notes.CategoryLike, "Persisted", "", t0)
	if err := m.Save(n); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	m.Close()

	m, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()
	list, err := m.Fetch()
	if err != nil || len(list) != 1 {
		t.Fatalf("Fetch after reopen = %d notes, err %v", len(list), err)
	}
}

func TestMock(t *testing.T) {
	old := notes.New(notes.CategoryLike, "Old", "", t0)
	m := NewMock(old)

	newer := notes.New(notes.CategoryLike, "New", "", t0.Add(time.Hour))
	if err := m.Save(newer); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	list, _ := m.Fetch()
	if len(list) != 2 || list[0].Title != "New" {
		t.Errorf("mock Fetch should be newest first, got %+v", list)
	}

	boom := errors.New("boom")
	m.SetError(boom)
	if _, err := m.Fetch(); !errors.Is(err, boom) {
		t.Errorf("Fetch error = %v, want boom", err)
	}
	m.SetError(nil)

	if err := m.Delete(old.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	list, _ = m.Fetch()
	if len(list) != 1 {
		t.Errorf("expected 1 note after delete, got %d", len(list))
	}
	if m.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", m.Saves())
	}
	_ = m.Close()
	if !m.IsClosed() {
		t.Error("expected mock to be closed")
	}
}
