package glossary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

// CreateTermInput holds the parameters for creating a term.
type CreateTermInput struct {
	Text string
}

// Validate checks all fields and collects all errors.
func (i CreateTermInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > 500 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreatePerspectiveInput holds the parameters for creating a perspective.
type CreatePerspectiveInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreatePerspectiveInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateEntryInput holds the parameters for binding a term to a perspective.
type CreateEntryInput struct {
	TermID        uuid.UUID
	PerspectiveID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError
	if i.TermID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "term_id", Message: "required"})
	}
	if i.PerspectiveID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "perspective_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTermsInput holds pagination parameters for listing terms.
type ListTermsInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListTermsInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
