package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies an inbox notification.
type NotificationType string

const (
	NotificationDraftApproved   NotificationType = "draft_approved"
	NotificationDraftPublished  NotificationType = "draft_published"
	NotificationDraftEdited     NotificationType = "draft_edited"
	NotificationCommentReply    NotificationType = "comment_reply"
	NotificationMention         NotificationType = "mention"
	NotificationReviewRequested NotificationType = "review_requested"
)

// IsValid reports whether the value is a known notification type.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationDraftApproved, NotificationDraftPublished,
		NotificationDraftEdited, NotificationCommentReply,
		NotificationMention, NotificationReviewRequested:
		return true
	}
	return false
}

// Notification is a per-user inbox record. Append-only except for the
// IsRead flip; removed only by explicit user dismissal.
type Notification struct {
	ID               uuid.UUID
	RecipientUserID  uuid.UUID
	Type             NotificationType
	Message          string
	RelatedDraftID   *uuid.UUID
	RelatedCommentID *uuid.UUID
	IsRead           bool
	CreatedAt        time.Time
}
