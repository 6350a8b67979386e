package glossary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/pkg/ctxutil"
)

// CreateEntry binds a term to a perspective. At most one entry may exist
// per (term, perspective) pair; a second attempt fails with
// domain.ErrDuplicateEntry.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.terms.GetByID(ctx, input.TermID); err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}
	if _, err := s.perspectives.GetByID(ctx, input.PerspectiveID); err != nil {
		return nil, fmt.Errorf("get perspective: %w", err)
	}

	now := time.Now().UTC()
	entry, err := s.entries.Create(ctx, &domain.Entry{
		ID:            uuid.New(),
		TermID:        input.TermID,
		PerspectiveID: input.PerspectiveID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("entry for term %s and perspective %s: %w",
				input.TermID, input.PerspectiveID, domain.ErrDuplicateEntry)
		}
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("term_id", input.TermID.String()),
		slog.String("perspective_id", input.PerspectiveID.String()),
		slog.String("user_id", identity.UserID.String()),
	)

	return entry, nil
}

// GetEntry returns an entry by ID.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// LookupEntry finds the entry binding a term to a perspective, for
// clients that navigate by the pair instead of the entry ID.
func (s *Service) LookupEntry(ctx context.Context, termID, perspectiveID uuid.UUID) (*domain.Entry, error) {
	entry, err := s.entries.GetByTermAndPerspective(ctx, termID, perspectiveID)
	if err != nil {
		return nil, fmt.Errorf("get entry by term and perspective: %w", err)
	}
	return entry, nil
}

// ListEntriesByTerm returns all entries of a term, one per perspective.
func (s *Service) ListEntriesByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Entry, error) {
	if _, err := s.terms.GetByID(ctx, termID); err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	entries, err := s.entries.ListByTerm(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}
