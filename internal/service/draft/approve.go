package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/pkg/ctxutil"
)

// Approve records the acting user's approval on a draft. Only the
// entry's latest draft can collect approvals; approving a superseded
// draft fails with domain.ErrDraftSuperseded. Eligibility follows
// domain.ComputeApprovalEligibility: authors never approve their own
// work, and approving requires curatorship of the entry's perspective or
// staff standing.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*domain.Draft, error) {
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

	latest, err := s.drafts.GetLatestByEntry(ctx, d.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get latest draft: %w", err)
	}
	if latest.ID != d.ID {
		return nil, fmt.Errorf("draft %s: %w", d.ID, domain.ErrDraftSuperseded)
	}

	entry, err := s.entries.GetByID(ctx, d.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	switch domain.ComputeApprovalEligibility(d, identity, entry.PerspectiveID, s.cfg.MinApprovals) {
	case domain.EligibilityCanApprove:
		// Proceed.
	case domain.EligibilityOwnDraft:
		return nil, fmt.Errorf("draft %s: %w", d.ID, domain.ErrSelfApproval)
	case domain.EligibilityAlreadyApproved:
		return nil, fmt.Errorf("draft %s: %w", d.ID, domain.ErrAlreadyApproved)
	default:
		return nil, fmt.Errorf("approve draft %s: %w", d.ID, domain.ErrNotEligible)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.drafts.AddApprover(ctx, d.ID, identity.UserID)
	})
	if err != nil {
		return nil, fmt.Errorf("add approver: %w", err)
	}

	approved, err := s.drafts.GetByID(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("reload draft: %w", err)
	}

	s.notify.DraftApproved(ctx, approved, identity.UserID)

	s.log.InfoContext(ctx, "draft approved",
		slog.String("draft_id", d.ID.String()),
		slog.String("approver_id", identity.UserID.String()),
		slog.Int("approvals", len(approved.ApproverIDs)),
	)

	return approved, nil
}

// Eligibility reports whether the acting user may approve the draft and
// why not otherwise.
func (s *Service) Eligibility(ctx context.Context, draftID uuid.UUID) (domain.ApprovalEligibility, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	d, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		return "", fmt.Errorf("get draft: %w", err)
	}
	entry, err := s.entries.GetByID(ctx, d.EntryID)
	if err != nil {
		return "", fmt.Errorf("get entry: %w", err)
	}

	return domain.ComputeApprovalEligibility(d, identity, entry.PerspectiveID, s.cfg.MinApprovals), nil
}
