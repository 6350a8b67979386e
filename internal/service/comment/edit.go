package comment

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

// EditComment replaces the comment body. Author only; the edit is marked
// by edited_at so readers can tell the text changed after posting.
func (s *Service) EditComment(ctx context.Context, input EditCommentInput) (*domain.Comment, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := s.content.Sanitize(strings.TrimSpace(input.Text))
	if len(text) > s.cfg.MaxCommentLength {
		return nil, domain.NewValidationError("text",
			fmt.Sprintf("max %d characters", s.cfg.MaxCommentLength))
	}

	c, err := s.comments.GetByID(ctx, input.CommentID)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c.AuthorID != identity.UserID {
		return nil, fmt.Errorf("edit comment %s: %w", input.CommentID, domain.ErrForbidden)
	}

	updated, err := s.comments.UpdateText(ctx, input.CommentID, text, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update comment text: %w", err)
	}

	s.log.InfoContext(ctx, "comment edited",
		slog.String("comment_id", input.CommentID.String()),
		slog.String("author_id", identity.UserID.String()),
	)

	return updated, nil
}

// ToggleReaction flips the acting user's reaction on a comment and
// returns the updated comment. Toggling twice is a no-op pair.
func (s *Service) ToggleReaction(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if commentID == uuid.Nil {
		return nil, domain.NewValidationError("comment_id", "required")
	}

	var updated *domain.Comment
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.comments.ToggleReaction(ctx, commentID, identity.UserID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("toggle reaction: %w", err)
	}

	return updated, nil
}
