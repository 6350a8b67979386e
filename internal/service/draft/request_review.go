package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/pkg/ctxutil"
)

// RequestReview replaces the draft's requested-reviewer set. Reviewers
// who were already in the set keep their position silently; only the
// newly added ones are notified. Published drafts no longer take review
// requests.
func (s *Service) RequestReview(ctx context.Context, input RequestReviewInput) (*domain.Draft, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.ReviewerIDs) > s.cfg.MaxReviewersPerRequest {
		return nil, domain.NewValidationError("reviewer_ids",
			fmt.Sprintf("max %d reviewers", s.cfg.MaxReviewersPerRequest))
	}

	d, err := s.drafts.GetByID(ctx, input.DraftID)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if d.IsPublished {
		return nil, fmt.Errorf("draft %s: %w", d.ID, domain.ErrAlreadyPublished)
	}

	var added []uuid.UUID
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		added, err = s.drafts.ReplaceReviewers(ctx, d.ID, input.ReviewerIDs)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("replace reviewers: %w", err)
	}

	updated, err := s.drafts.GetByID(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("reload draft: %w", err)
	}

	if len(added) > 0 {
		s.notify.ReviewRequested(ctx, updated, identity.UserID, added)
	}

	s.log.InfoContext(ctx, "review requested",
		slog.String("draft_id", d.ID.String()),
		slog.String("requester_id", identity.UserID.String()),
		slog.Int("newly_added", len(added)),
	)

	return updated, nil
}
