package notification

import "github.com/termweave/glossary-backend/internal/domain"

// ListInput holds the inbox paging parameters.
type ListInput struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// Validate checks the paging bounds.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "out of range"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
