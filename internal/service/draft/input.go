package draft

import (
	"strings"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

// CreateDraftInput holds the parameters for proposing a new draft.
type CreateDraftInput struct {
	EntryID uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors. The content length
// cap is configuration, checked in the service.
func (i CreateDraftInput) Validate() error {
	var errs []domain.FieldError
	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveInput holds the parameters for approving a draft.
type ApproveInput struct {
	DraftID uuid.UUID
}

// Validate checks all fields.
func (i ApproveInput) Validate() error {
	if i.DraftID == uuid.Nil {
		return domain.NewValidationError("draft_id", "required")
	}
	return nil
}

// PublishInput holds the parameters for publishing a draft.
type PublishInput struct {
	DraftID uuid.UUID
}

// Validate checks all fields.
func (i PublishInput) Validate() error {
	if i.DraftID == uuid.Nil {
		return domain.NewValidationError("draft_id", "required")
	}
	return nil
}

// RequestReviewInput holds the parameters for requesting reviews. The
// reviewer set replaces the previous one; only newly added reviewers are
// notified.
type RequestReviewInput struct {
	DraftID     uuid.UUID
	ReviewerIDs []uuid.UUID
}

// Validate checks all fields and collects all errors. The reviewer count
// cap is configuration, checked in the service.
func (i RequestReviewInput) Validate() error {
	var errs []domain.FieldError
	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	for _, id := range i.ReviewerIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "reviewer_ids", Message: "must not contain nil IDs"})
			break
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
