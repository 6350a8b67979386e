package domain

import (
	"time"

	"github.com/google/uuid"
)

// Term is a canonical word or phrase. Its text is immutable after
// creation; the normalized form is recomputed whenever text is set and
// backs uniqueness and sorting.
type Term struct {
	ID             uuid.UUID
	Text           string
	TextNormalized string
	// IsOfficial is derived: true once any entry for this term has a
	// published draft. Computed on read, never stored.
	IsOfficial bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Perspective is a named viewpoint (e.g. "Physics"). Entries are scoped
// per (Term, Perspective) pair, so a term may carry a distinct definition
// per perspective.
type Perspective struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
