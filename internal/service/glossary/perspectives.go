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

// CreatePerspective creates a new perspective. Staff only: perspectives
// define the curation structure of the glossary.
func (s *Service) CreatePerspective(ctx context.Context, input CreatePerspectiveInput) (*domain.Perspective, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !identity.IsStaff {
		return nil, fmt.Errorf("create perspective: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p, err := s.perspectives.Create(ctx, &domain.Perspective{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create perspective: %w", err)
	}

	s.log.InfoContext(ctx, "perspective created",
		slog.String("perspective_id", p.ID.String()),
		slog.String("user_id", identity.UserID.String()),
	)

	return p, nil
}

// GetPerspective returns a perspective by ID.
func (s *Service) GetPerspective(ctx context.Context, perspectiveID uuid.UUID) (*domain.Perspective, error) {
	p, err := s.perspectives.GetByID(ctx, perspectiveID)
	if err != nil {
		return nil, fmt.Errorf("get perspective: %w", err)
	}
	return p, nil
}

// ListPerspectives returns all perspectives ordered by name.
func (s *Service) ListPerspectives(ctx context.Context) ([]domain.Perspective, error) {
	perspectives, err := s.perspectives.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list perspectives: %w", err)
	}
	return perspectives, nil
}
