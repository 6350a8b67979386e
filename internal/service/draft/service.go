// Package draft implements the draft lifecycle: creation and revision,
// approval quorum, explicit publication and review requests.
package draft

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

type draftRepo interface {
	GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	GetLatestByEntry(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error)
	GetHistory(ctx context.Context, entryID uuid.UUID) ([]domain.Draft, error)
	Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
	AddApprover(ctx context.Context, draftID, userID uuid.UUID) error
	Publish(ctx context.Context, draftID uuid.UUID, minApprovals int) (*domain.Draft, *domain.Entry, error)
	ReplaceReviewers(ctx context.Context, draftID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error)
}

type entryRepo interface {
	GetByID(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
}

type commentRepo interface {
	DistinctAuthorIDs(ctx context.Context, draftIDs []uuid.UUID) ([]uuid.UUID, error)
}

type sanitizer interface {
	Sanitize(s string) string
}

// notifier dispatches inbox notifications for lifecycle events. Dispatch
// is best-effort: implementations log failures and never return them, so
// a failed notification cannot fail the action that triggered it.
type notifier interface {
	DraftApproved(ctx context.Context, draft *domain.Draft, approverID uuid.UUID)
	DraftPublished(ctx context.Context, draft *domain.Draft, publisherID uuid.UUID, commenterIDs []uuid.UUID)
	DraftEdited(ctx context.Context, newDraft *domain.Draft, supersededAuthorID uuid.UUID)
	ReviewRequested(ctx context.Context, draft *domain.Draft, requesterID uuid.UUID, reviewerIDs []uuid.UUID)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the workflow knobs the service needs.
type Config struct {
	MinApprovals           int
	MaxContentLength       int
	MaxReviewersPerRequest int
}

// Service provides draft lifecycle operations.
type Service struct {
	cfg      Config
	drafts   draftRepo
	entries  entryRepo
	comments commentRepo
	content  sanitizer
	notify   notifier
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new draft lifecycle service.
func NewService(
	log *slog.Logger,
	cfg Config,
	drafts draftRepo,
	entries entryRepo,
	comments commentRepo,
	content sanitizer,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		cfg:      cfg,
		drafts:   drafts,
		entries:  entries,
		comments: comments,
		content:  content,
		notify:   notify,
		tx:       tx,
		log:      log.With("service", "draft"),
	}
}
