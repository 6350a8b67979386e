package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/pkg/ctxutil"
)

// Resolve closes a top-level comment thread. Only the thread author or
// staff may resolve; resolving a reply is rejected. Resolution hides the
// thread from the current discussion view but keeps it in draft history.
func (s *Service) Resolve(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	return s.setResolved(ctx, commentID, true)
}

// Unresolve reopens a resolved thread under the same permission rule.
func (s *Service) Unresolve(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	return s.setResolved(ctx, commentID, false)
}

func (s *Service) setResolved(ctx context.Context, commentID uuid.UUID, resolved bool) (*domain.Comment, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if commentID == uuid.Nil {
		return nil, domain.NewValidationError("comment_id", "required")
	}

	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c.IsReply() {
		return nil, domain.NewValidationError("comment_id", "only top-level comments can be resolved")
	}
	if c.AuthorID != identity.UserID && !identity.IsStaff {
		return nil, fmt.Errorf("resolve comment %s: %w", commentID, domain.ErrForbidden)
	}

	updated, err := s.comments.SetResolved(ctx, commentID, resolved)
	if err != nil {
		return nil, fmt.Errorf("set resolved: %w", err)
	}

	s.log.InfoContext(ctx, "comment resolution changed",
		slog.String("comment_id", commentID.String()),
		slog.Bool("resolved", resolved),
		slog.String("user_id", identity.UserID.String()),
	)

	return updated, nil
}
