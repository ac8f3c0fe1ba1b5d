// internal/store/interface.go
package store

import (
	"github.com/google/uuid"

	"github.com/llehouerou/sukinote/internal/notes"
)

// Interface defines the note store contract for dependency injection and testing.
type Interface interface {
	Fetch() ([]notes.Note, error)
	Save(n notes.Note) error
	SaveAll(list []notes.Note) error
	Delete(id uuid.UUID) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
