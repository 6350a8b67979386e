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

// AddComment posts a comment on a draft, or a reply when ParentID is
// set. Replies nest one level deep: replying to a reply is rejected, and
// replying into a resolved thread fails with domain.ErrResolvedThread.
// The draft author, the parent author and any @mentioned users are
// notified.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
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

	d, err := s.drafts.GetByID(ctx, input.DraftID)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var parentAuthorID *uuid.UUID
	if input.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent comment: %w", err)
		}
		if parent.IsReply() {
			return nil, domain.NewValidationError("parent_id", "replies cannot be nested")
		}
		if parent.IsResolved {
			return nil, fmt.Errorf("comment %s: %w", parent.ID, domain.ErrResolvedThread)
		}
		parentAuthorID = &parent.AuthorID
	}

	now := time.Now().UTC()
	created, err := s.comments.Create(ctx, &domain.Comment{
		ID:        uuid.New(),
		DraftID:   input.DraftID,
		ParentID:  input.ParentID,
		AuthorID:  identity.UserID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.notify.CommentAdded(ctx, created, d.AuthorID, parentAuthorID, domain.ExtractMentions(text))

	s.log.InfoContext(ctx, "comment added",
		slog.String("comment_id", created.ID.String()),
		slog.String("draft_id", input.DraftID.String()),
		slog.String("author_id", identity.UserID.String()),
		slog.Bool("is_reply", input.ParentID != nil),
	)

	return created, nil
}
