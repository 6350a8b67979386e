// Package comment implements draft discussions: threaded comments,
// resolution, reactions and the two visibility scopes (current entry
// discussion vs a single historical draft).
package comment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	ListTopLevelByDraftIDs(ctx context.Context, draftIDs []uuid.UUID) ([]domain.Comment, error)
	ListRepliesByParentIDs(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error)
	SetResolved(ctx context.Context, commentID uuid.UUID, resolved bool) (*domain.Comment, error)
	UpdateText(ctx context.Context, commentID uuid.UUID, text string, editedAt time.Time) (*domain.Comment, error)
	ToggleReaction(ctx context.Context, commentID, userID uuid.UUID) (*domain.Comment, error)
}

type draftRepo interface {
	GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	GetLatestByEntry(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error)
	GetHistory(ctx context.Context, entryID uuid.UUID) ([]domain.Draft, error)
}

type entryRepo interface {
	GetByID(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
}

type renderer interface {
	Sanitize(s string) string
	RenderMarkdown(md string) (string, error)
}

// notifier dispatches inbox notifications for comment events. Best
// effort: implementations never return failures.
type notifier interface {
	CommentAdded(ctx context.Context, c *domain.Comment, draftAuthorID uuid.UUID, parentAuthorID *uuid.UUID, mentionedUsernames []string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the discussion limits.
type Config struct {
	MaxCommentLength int
}

// Service provides comment and discussion operations.
type Service struct {
	cfg      Config
	comments commentRepo
	drafts   draftRepo
	entries  entryRepo
	content  renderer
	notify   notifier
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new comment service.
func NewService(
	log *slog.Logger,
	cfg Config,
	comments commentRepo,
	drafts draftRepo,
	entries entryRepo,
	content renderer,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		cfg:      cfg,
		comments: comments,
		drafts:   drafts,
		entries:  entries,
		content:  content,
		notify:   notify,
		tx:       tx,
		log:      log.With("service", "comment"),
	}
}
