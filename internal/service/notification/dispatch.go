package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

// delivery accumulates recipients of one event so that each user gets at
// most one row even when several rules select them (e.g. mentioned while
// also being the parent author). The acting user is never a recipient.
type delivery struct {
	actorID uuid.UUID
	seen    map[uuid.UUID]struct{}
}

func newDelivery(actorID uuid.UUID) *delivery {
	return &delivery{actorID: actorID, seen: map[uuid.UUID]struct{}{}}
}

// claim reports whether the recipient should still be notified and marks
// them as handled.
func (d *delivery) claim(recipientID uuid.UUID) bool {
	if recipientID == d.actorID || recipientID == uuid.Nil {
		return false
	}
	if _, ok := d.seen[recipientID]; ok {
		return false
	}
	d.seen[recipientID] = struct{}{}
	return true
}

func (s *Service) deliver(ctx context.Context, n domain.Notification) {
	n.ID = uuid.New()
	n.CreatedAt = time.Now().UTC()
	if err := s.notifications.Create(ctx, &n); err != nil {
		s.log.ErrorContext(ctx, "notification dropped",
			slog.String("type", string(n.Type)),
			slog.String("recipient_id", n.RecipientUserID.String()),
			slog.Any("error", err),
		)
	}
}

// DraftApproved notifies the draft's author of a new approval. Other
// approvers are not notified.
func (s *Service) DraftApproved(ctx context.Context, draft *domain.Draft, approverID uuid.UUID) {
	d := newDelivery(approverID)
	if !d.claim(draft.AuthorID) {
		return
	}
	s.deliver(ctx, domain.Notification{
		RecipientUserID: draft.AuthorID,
		Type:            domain.NotificationDraftApproved,
		Message:         "Your draft received a new approval.",
		RelatedDraftID:  &draft.ID,
	})
}

// DraftPublished notifies the draft's author and every distinct commenter
// on the superseded chain. The publisher is excluded even when they are
// the author or a commenter.
func (s *Service) DraftPublished(ctx context.Context, draft *domain.Draft, publisherID uuid.UUID, commenterIDs []uuid.UUID) {
	d := newDelivery(publisherID)
	if d.claim(draft.AuthorID) {
		s.deliver(ctx, domain.Notification{
			RecipientUserID: draft.AuthorID,
			Type:            domain.NotificationDraftPublished,
			Message:         "Your draft was published as the official definition.",
			RelatedDraftID:  &draft.ID,
		})
	}
	for _, commenterID := range commenterIDs {
		if !d.claim(commenterID) {
			continue
		}
		s.deliver(ctx, domain.Notification{
			RecipientUserID: commenterID,
			Type:            domain.NotificationDraftPublished,
			Message:         "A draft you commented on was superseded by a published definition.",
			RelatedDraftID:  &draft.ID,
		})
	}
}

// DraftEdited notifies the author of a superseded draft that a new
// revision by someone else replaced theirs.
func (s *Service) DraftEdited(ctx context.Context, newDraft *domain.Draft, supersededAuthorID uuid.UUID) {
	d := newDelivery(newDraft.AuthorID)
	if !d.claim(supersededAuthorID) {
		return
	}
	s.deliver(ctx, domain.Notification{
		RecipientUserID: supersededAuthorID,
		Type:            domain.NotificationDraftEdited,
		Message:         "Your draft was superseded by a new revision.",
		RelatedDraftID:  &newDraft.ID,
	})
}

// ReviewRequested notifies each newly added reviewer. The caller passes
// only the diff against the previous reviewer set, so nobody is
// re-notified for the same draft.
func (s *Service) ReviewRequested(ctx context.Context, draft *domain.Draft, requesterID uuid.UUID, reviewerIDs []uuid.UUID) {
	d := newDelivery(requesterID)
	for _, reviewerID := range reviewerIDs {
		if !d.claim(reviewerID) {
			continue
		}
		s.deliver(ctx, domain.Notification{
			RecipientUserID: reviewerID,
			Type:            domain.NotificationReviewRequested,
			Message:         "You were asked to review a draft.",
			RelatedDraftID:  &draft.ID,
		})
	}
}

// CommentAdded notifies the draft author (top-level comments), the parent
// comment's author (replies) and @mentioned users. Mention tokens are
// resolved against known usernames; unmatched tokens are ignored. Each
// recipient gets one row even when several rules match them.
func (s *Service) CommentAdded(ctx context.Context, c *domain.Comment, draftAuthorID uuid.UUID, parentAuthorID *uuid.UUID, mentionedUsernames []string) {
	d := newDelivery(c.AuthorID)

	if c.IsReply() {
		if parentAuthorID != nil && d.claim(*parentAuthorID) {
			s.deliver(ctx, domain.Notification{
				RecipientUserID:  *parentAuthorID,
				Type:             domain.NotificationCommentReply,
				Message:          "Someone replied to your comment.",
				RelatedDraftID:   &c.DraftID,
				RelatedCommentID: &c.ID,
			})
		}
	} else if d.claim(draftAuthorID) {
		s.deliver(ctx, domain.Notification{
			RecipientUserID:  draftAuthorID,
			Type:             domain.NotificationCommentReply,
			Message:          "Someone commented on your draft.",
			RelatedDraftID:   &c.DraftID,
			RelatedCommentID: &c.ID,
		})
	}

	for _, mentioned := range s.resolveMentions(ctx, mentionedUsernames) {
		if !d.claim(mentioned.ID) {
			continue
		}
		s.deliver(ctx, domain.Notification{
			RecipientUserID:  mentioned.ID,
			Type:             domain.NotificationMention,
			Message:          fmt.Sprintf("@%s, you were mentioned in a comment.", mentioned.Username),
			RelatedDraftID:   &c.DraftID,
			RelatedCommentID: &c.ID,
		})
	}
}

// resolveMentions matches mention tokens against known usernames. A
// lookup failure degrades to no mention notifications.
func (s *Service) resolveMentions(ctx context.Context, usernames []string) []domain.User {
	if len(usernames) == 0 {
		return nil
	}
	users, err := s.users.GetByUsernames(ctx, usernames)
	if err != nil {
		s.log.ErrorContext(ctx, "mention resolution failed", slog.Any("error", err))
		return nil
	}
	return users
}
