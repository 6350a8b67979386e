package comment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

// AddCommentInput holds the parameters for posting a comment. ParentID
// set means a reply; replies thread one level deep only.
type AddCommentInput struct {
	DraftID  uuid.UUID
	ParentID *uuid.UUID
	Text     string
}

// Validate checks all fields and collects all errors. The text length
// cap is configuration, checked in the service.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError
	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must not be nil when set"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditCommentInput holds the parameters for editing a comment body.
type EditCommentInput struct {
	CommentID uuid.UUID
	Text      string
}

// Validate checks all fields and collects all errors.
func (i EditCommentInput) Validate() error {
	var errs []domain.FieldError
	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
