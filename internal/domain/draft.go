package domain

import (
	"time"

	"github.com/google/uuid"
)

// Draft is one proposed version of an entry's definition. Drafts are
// immutable once created: edits produce a new draft row chained to the
// previous latest via ReplacesDraftID, so an entry's history is a singly
// linked list back to the original draft.
type Draft struct {
	ID       uuid.UUID
	EntryID  uuid.UUID
	Content  string
	AuthorID uuid.UUID
	// ApproverIDs preserves approval order; membership has set semantics
	// and never contains AuthorID.
	ApproverIDs          []uuid.UUID
	RequestedReviewerIDs []uuid.UUID
	IsPublished          bool
	ReplacesDraftID      *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// HasApproved reports whether the user is in the approver set.
func (d *Draft) HasApproved(userID uuid.UUID) bool {
	for _, id := range d.ApproverIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// EligibleForPublish reports whether the draft has collected the approval
// quorum. Publication itself remains a separate explicit action.
func (d *Draft) EligibleForPublish(minApprovals int) bool {
	return len(d.ApproverIDs) >= minApprovals
}

// ApprovalEligibility is the outcome of the "can this user approve"
// decision for a draft.
type ApprovalEligibility string

const (
	// EligibilityOwnDraft: the viewer authored the draft.
	EligibilityOwnDraft ApprovalEligibility = "own_draft"
	// EligibilityAlreadyApproved: the viewer already approved the draft.
	EligibilityAlreadyApproved ApprovalEligibility = "already_approved"
	// EligibilityCanApprove: the viewer may add an approval now.
	EligibilityCanApprove ApprovalEligibility = "can_approve"
	// EligibilityApprovedByOthers: the draft already reached quorum and the
	// viewer neither approved nor may approve. Informational only.
	EligibilityApprovedByOthers ApprovalEligibility = "already_approved_by_others"
	// EligibilityNotEligible: the viewer has no standing and the draft is
	// below quorum.
	EligibilityNotEligible ApprovalEligibility = "not_eligible"
)

// ComputeApprovalEligibility decides whether the acting user may approve
// the draft. perspectiveID is the perspective of the draft's entry.
// Curatorship of that perspective is the domain-expertise gate; staff
// bypass it. Precedence when several conditions hold:
// own_draft > already_approved > can_approve > already_approved_by_others.
func ComputeApprovalEligibility(d *Draft, actor Identity, perspectiveID uuid.UUID, minApprovals int) ApprovalEligibility {
	switch {
	case actor.UserID == d.AuthorID:
		return EligibilityOwnDraft
	case d.HasApproved(actor.UserID):
		return EligibilityAlreadyApproved
	case actor.IsStaff || actor.Curates(perspectiveID):
		return EligibilityCanApprove
	case d.EligibleForPublish(minApprovals):
		return EligibilityApprovedByOthers
	default:
		return EligibilityNotEligible
	}
}
