package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/pkg/ctxutil"
)

// CreateTerm creates a new term. Uniqueness is enforced on the normalized
// text, so "Hello World" and "  hello   world " are the same term.
func (s *Service) CreateTerm(ctx context.Context, input CreateTermInput) (*domain.Term, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	now := time.Now().UTC()

	term, err := s.terms.Create(ctx, &domain.Term{
		ID:             uuid.New(),
		Text:           text,
		TextNormalized: domain.NormalizeTermText(text),
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("create term: %w", err)
	}

	s.log.InfoContext(ctx, "term created",
		slog.String("term_id", term.ID.String()),
		slog.String("user_id", identity.UserID.String()),
	)

	return term, nil
}

// GetTerm returns a term by ID.
func (s *Service) GetTerm(ctx context.Context, termID uuid.UUID) (*domain.Term, error) {
	term, err := s.terms.GetByID(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}
	return term, nil
}

// ListTerms returns a paginated term list ordered by normalized text,
// plus the total count.
func (s *Service) ListTerms(ctx context.Context, input ListTermsInput) ([]domain.Term, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	terms, total, err := s.terms.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list terms: %w", err)
	}

	return terms, total, nil
}
