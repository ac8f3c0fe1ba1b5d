// Package notes holds the note model, its categories, and sorting rules.
package notes

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned when a note is saved without a title.
var ErrEmptyTitle = errors.New("title is required")

// Note is a single remembered fact about someone.
type Note struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Category  Category
	Title     string
	Content   string

	// AnniversaryDate and Annual only apply to CategoryAnniversary.
	AnniversaryDate *time.Time
	Annual          bool
}

// New creates a note with a fresh id, stamped at now.
func New(category Category, title, content string, now time.Time) Note {
	return Note{
		ID:        newID(),
		CreatedAt: now,
		Category:  category,
		Title:     title,
		Content:   content,
	}
}

func newID() uuid.UUID { return uuid.New() }

// Normalize trims the text fields and drops anniversary data from notes
// of other categories.
func (n Note) Normalize() Note {
	n.Title = strings.TrimSpace(n.Title)
	n.Content = strings.TrimSpace(n.Content)
	if n.Category != CategoryAnniversary {
		n.AnniversaryDate = nil
		n.Annual = false
	}
	return n
}

// Validate reports whether n can be stored.
func (n Note) Validate() error {
	if !n.Category.Valid() {
		_, err := ParseCategory(string(n.Category))
		return err
	}
	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ClipboardText is the note as copied: the title, then the content after
// a blank line.
func (n Note) ClipboardText() string {
	if n.Content == "" {
		return n.Title
	}
	return n.Title + "\n\n" + n.Content
}

// AnalyticsParams are the properties reported when the note is saved.
// Text is summarized by length only.
func (n Note) AnalyticsParams() map[string]any {
	return map[string]any{
		"category":             string(n.Category),
		"title_length":         len([]rune(n.Title)),
		"content_length":       len([]rune(n.Content)),
		"has_anniversary_date": n.AnniversaryDate != nil,
	}
}

// Filter returns the notes matching category c, preserving order.
func Filter(list []Note, c Category) []Note {
	out := make([]Note, 0, len(list))
	for _, n := range list {
		if c.Matches(n.Category) {
			out = append(out, n)
		}
	}
	return out
}

// CountByCategory counts notes per category.
func CountByCategory(list []Note) map[Category]int {
	counts := make(map[Category]int, len(categoryOrder))
	for _, n := range list {
		counts[n.Category]++
	}
	return counts
}
