package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a threaded note attached to exactly one draft. Replies carry
// a ParentID referencing a top-level comment (ParentID nil on the target);
// nesting is one level deep. Comments are never moved between drafts and
// never hard-deleted; resolution is the closing mechanism, applied to the
// top-level comment only.
type Comment struct {
	ID       uuid.UUID
	DraftID  uuid.UUID
	ParentID *uuid.UUID
	AuthorID uuid.UUID
	Text     string
	// ReactionUserIDs has set semantics; the visible count is its size.
	ReactionUserIDs []uuid.UUID
	IsResolved      bool
	EditedAt        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsReply reports whether the comment is a reply to a top-level comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// HasReaction reports whether the user is in the reaction set.
func (c *Comment) HasReaction(userID uuid.UUID) bool {
	for _, id := range c.ReactionUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
