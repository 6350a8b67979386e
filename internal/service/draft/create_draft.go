package draft

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

// CreateDraft proposes a new draft for an entry. Drafts are immutable:
// when the entry already has drafts the new one supersedes the current
// latest via replaces_draft_id, and the superseded draft's approvals do
// not carry over. Anyone authenticated may revise anyone's draft; the
// superseded author is notified when someone else supersedes their work.
func (s *Service) CreateDraft(ctx context.Context, input CreateDraftInput) (*domain.Draft, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	content := s.content.Sanitize(input.Content)
	if len(content) > s.cfg.MaxContentLength {
		return nil, domain.NewValidationError("content",
			fmt.Sprintf("max %d characters", s.cfg.MaxContentLength))
	}

	if _, err := s.entries.GetByID(ctx, input.EntryID); err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	var created *domain.Draft
	var superseded *domain.Draft
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		latest, err := s.drafts.GetLatestByEntry(ctx, input.EntryID)
		switch {
		case err == nil:
			superseded = latest
		case errors.Is(err, domain.ErrNotFound):
			// First draft for this entry.
		default:
			return fmt.Errorf("get latest draft: %w", err)
		}

		now := time.Now().UTC()
		d := &domain.Draft{
			ID:        uuid.New(),
			EntryID:   input.EntryID,
			Content:   content,
			AuthorID:  identity.UserID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if superseded != nil {
			d.ReplacesDraftID = &superseded.ID
		}

		created, err = s.drafts.Create(ctx, d)
		if err != nil {
			return fmt.Errorf("create draft: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if superseded != nil && superseded.AuthorID != identity.UserID {
		s.notify.DraftEdited(ctx, created, superseded.AuthorID)
	}

	s.log.InfoContext(ctx, "draft created",
		slog.String("draft_id", created.ID.String()),
		slog.String("entry_id", input.EntryID.String()),
		slog.String("author_id", identity.UserID.String()),
	)

	return created, nil
}

// GetDraft returns a draft by ID with its approver and reviewer sets.
func (s *Service) GetDraft(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error) {
	d, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return d, nil
}

// History returns all drafts of an entry, newest first.
func (s *Service) History(ctx context.Context, entryID uuid.UUID) ([]domain.Draft, error) {
	if _, err := s.entries.GetByID(ctx, entryID); err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	history, err := s.drafts.GetHistory(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get draft history: %w", err)
	}
	return history, nil
}
