package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a directory record for a provisioned user. Authentication and
// identity provisioning happen in an external provider; this record exists
// for @mention resolution and display, kept in sync by that provider.
type User struct {
	ID        uuid.UUID
	Username  string
	Name      string
	IsStaff   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity carries the permission facts for the acting user, as supplied
// by the external identity provider on every call. The engine treats it
// as opaque input and never looks users up itself.
type Identity struct {
	UserID                uuid.UUID
	IsStaff               bool
	CuratedPerspectiveIDs []uuid.UUID
}

// Curates reports whether the identity is a curator for the perspective.
func (i Identity) Curates(perspectiveID uuid.UUID) bool {
	for _, id := range i.CuratedPerspectiveIDs {
		if id == perspectiveID {
			return true
		}
	}
	return false
}
