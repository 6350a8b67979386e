package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry binds a Term to a Perspective. At most one entry exists per
// (TermID, PerspectiveID) pair.
type Entry struct {
	ID            uuid.UUID
	TermID        uuid.UUID
	PerspectiveID uuid.UUID
	// ActiveDraftID points at the currently published draft, nil until
	// the first publication.
	ActiveDraftID *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOfficial reports whether the entry has a published definition.
func (e *Entry) IsOfficial() bool {
	return e.ActiveDraftID != nil
}
