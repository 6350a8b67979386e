// Package glossary manages terms, perspectives and the entries binding
// them. Draft lifecycle and discussion live in their own services.
package glossary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type termRepo interface {
	Create(ctx context.Context, term *domain.Term) (*domain.Term, error)
	GetByID(ctx context.Context, termID uuid.UUID) (*domain.Term, error)
	GetByNormalized(ctx context.Context, textNormalized string) (*domain.Term, error)
	List(ctx context.Context, limit, offset int) ([]domain.Term, int, error)
}

type perspectiveRepo interface {
	Create(ctx context.Context, p *domain.Perspective) (*domain.Perspective, error)
	GetByID(ctx context.Context, perspectiveID uuid.UUID) (*domain.Perspective, error)
	List(ctx context.Context) ([]domain.Perspective, error)
}

type entryRepo interface {
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	GetByID(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
	GetByTermAndPerspective(ctx context.Context, termID, perspectiveID uuid.UUID) (*domain.Entry, error)
	ListByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Entry, error)
}

// Service provides term, perspective and entry management.
type Service struct {
	terms        termRepo
	perspectives perspectiveRepo
	entries      entryRepo
	log          *slog.Logger
}

// NewService creates a new glossary service.
func NewService(
	log *slog.Logger,
	terms termRepo,
	perspectives perspectiveRepo,
	entries entryRepo,
) *Service {
	return &Service{
		terms:        terms,
		perspectives: perspectives,
		entries:      entries,
		log:          log.With("service", "glossary"),
	}
}
