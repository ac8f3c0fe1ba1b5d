// Package archive reads and writes notes as a portable YAML document.
package archive

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/sukinote/internal/notes"
)

// Version is the document format written by Write.
const Version = 1

// ErrVersion is returned for documents newer than this build understands.
var ErrVersion = errors.New("unsupported archive version")

// Document is the top-level archive.
type Document struct {
	Version int      `yaml:"version"`
	Notes   []Record `yaml:"notes"`
}

// Record is one note. Dates use notes.DateLayout. On import a missing id
// gets a fresh one and a missing creation time becomes the import time.
type Record struct {
	ID       string    `yaml:"id,omitempty"`
	Created  time.Time `yaml:"created"`
	Category string    `yaml:"category"`
	Title    string    `yaml:"title"`
	Content  string    `yaml:"content,omitempty"`
	Date     string    `yaml:"date,omitempty"`
	Annual   bool      `yaml:"annual,omitempty"`
}

// FromNote converts a note to its archive record.
func FromNote(n notes.Note) Record {
	r := Record{
		ID:       n.ID.String(),
		Created:  n.CreatedAt.UTC(),
		Category: string(n.Category),
		Title:    n.Title,
		Content:  n.Content,
		Annual:   n.Annual,
	}
	if n.AnniversaryDate != nil {
		r.Date = n.AnniversaryDate.Format(notes.DateLayout)
	}
	return r
}

// Note converts the record back, validating it like the store does.
func (r Record) Note(now time.Time) (notes.Note, error) {
	c, err := notes.ParseCategory(r.Category)
	if err != nil {
		return notes.Note{}, err
	}
	n := notes.Note{
		ID:        uuid.New(),
		CreatedAt: r.Created,
		Category:  c,
		Title:     r.Title,
		Content:   r.Content,
		Annual:    r.Annual,
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if r.ID != "" {
		if n.ID, err = uuid.Parse(r.ID); err != nil {
			return notes.Note{}, fmt.Errorf("id %q: %w", r.ID, err)
		}
	}
	if r.Date != "" {
		d, err := notes.ParseDate(r.Date)
		if err != nil {
			return notes.Note{}, fmt.Errorf("date %q: %w", r.Date, err)
		}
		n.AnniversaryDate = &d
	}
	n = n.Normalize()
	return n, n.Validate()
}

// Write encodes list as an archive document.
func Write(w io.Writer, list []notes.Note) error {
	doc := Document{Version: Version, Notes: make([]Record, len(list))}
	for i, n := range list {
		doc.Notes[i] = FromNote(n)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// Read decodes an archive document. A record that fails validation fails
// the whole read, naming its position and title.
func Read(r io.Reader, now time.Time) ([]notes.Note, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if doc.Version > Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, doc.Version)
	}

	list := make([]notes.Note, 0, len(doc.Notes))
	for i, rec := range doc.Notes {
		n, err := rec.Note(now)
		if err != nil {
			return nil, fmt.Errorf("note %d (%q): %w", i+1, rec.Title, err)
		}
		list = append(list, n)
	}
	return list, nil
}
