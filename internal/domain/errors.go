package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. Callers branch on these kinds
// with errors.Is rather than on message text.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Named rule violations. Each unwraps to one of the sentinel kinds above,
// so errors.Is(err, ErrConflict) etc. keeps working while callers that
// care can match the specific rule.
var (
	// ErrSelfApproval: an author attempted to approve their own draft.
	ErrSelfApproval = fmt.Errorf("author cannot approve own draft: %w", ErrConflict)
	// ErrAlreadyApproved: the user is already in the draft's approver set.
	ErrAlreadyApproved = fmt.Errorf("user already approved this draft: %w", ErrConflict)
	// ErrNotEligible: the user lacks curator/staff standing for this draft.
	ErrNotEligible = fmt.Errorf("user not eligible to approve: %w", ErrForbidden)
	// ErrInsufficientApprovals: publish attempted below the approval quorum.
	ErrInsufficientApprovals = fmt.Errorf("draft lacks required approvals: %w", ErrConflict)
	// ErrAlreadyPublished: the draft is already the published one.
	ErrAlreadyPublished = fmt.Errorf("draft already published: %w", ErrConflict)
	// ErrDraftSuperseded: the draft is no longer the entry's latest revision.
	ErrDraftSuperseded = fmt.Errorf("draft superseded by a newer revision: %w", ErrConflict)
	// ErrResolvedThread: a reply targeted a resolved top-level comment.
	ErrResolvedThread = fmt.Errorf("cannot reply to a resolved thread: %w", ErrConflict)
	// ErrDuplicateEntry: an entry for this (term, perspective) already exists.
	ErrDuplicateEntry = fmt.Errorf("entry already exists for term and perspective: %w", ErrConflict)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
