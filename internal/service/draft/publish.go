package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/pkg/ctxutil"
)

// Publish makes a draft the entry's official definition. Publication is
// always an explicit action: reaching the approval quorum never publishes
// by itself. Any authenticated user may publish an eligible draft; the
// quorum is the gate, not the publisher's role. The author and everyone
// who commented on the superseded chain are notified.
func (s *Service) Publish(ctx context.Context, input PublishInput) (*domain.Draft, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	d, err := s.drafts.GetByID(ctx, input.DraftID)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}

	// The previously published draft bounds the superseded chain for
	// notification fan-out.
	entryBefore, err := s.entries.GetByID(ctx, d.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	prevPublishedID := entryBefore.ActiveDraftID

	var published *domain.Draft
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		published, _, err = s.drafts.Publish(ctx, input.DraftID, s.cfg.MinApprovals)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("publish draft: %w", err)
	}

	commenterIDs, err := s.supersededChainCommenters(ctx, published, prevPublishedID)
	if err != nil {
		// Notification fan-out must not fail the publication.
		s.log.ErrorContext(ctx, "failed to collect chain commenters",
			slog.String("draft_id", published.ID.String()),
			slog.String("error", err.Error()),
		)
		commenterIDs = nil
	}
	s.notify.DraftPublished(ctx, published, identity.UserID, commenterIDs)

	s.log.InfoContext(ctx, "draft published",
		slog.String("draft_id", published.ID.String()),
		slog.String("entry_id", published.EntryID.String()),
		slog.String("publisher_id", identity.UserID.String()),
	)

	return published, nil
}

// supersededChainCommenters returns the distinct authors of comments on
// the published draft and its superseded predecessors, walking
// replaces_draft_id back to (excluding) the previously published draft.
func (s *Service) supersededChainCommenters(ctx context.Context, published *domain.Draft, prevPublishedID *uuid.UUID) ([]uuid.UUID, error) {
	history, err := s.drafts.GetHistory(ctx, published.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get draft history: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.Draft, len(history))
	for i := range history {
		byID[history[i].ID] = &history[i]
	}

	var chain []uuid.UUID
	for cur := byID[published.ID]; cur != nil; {
		if prevPublishedID != nil && cur.ID == *prevPublishedID {
			break
		}
		chain = append(chain, cur.ID)
		if cur.ReplacesDraftID == nil {
			break
		}
		cur = byID[*cur.ReplacesDraftID]
	}

	commenters, err := s.comments.DistinctAuthorIDs(ctx, chain)
	if err != nil {
		return nil, fmt.Errorf("collect commenters: %w", err)
	}
	return commenters, nil
}
