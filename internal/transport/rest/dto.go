package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/internal/service/comment"
	"github.com/termweave/glossary-backend/internal/service/notification"
)

type termResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	IsOfficial bool      `json:"is_official"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toTermResponse(t *domain.Term) termResponse {
	return termResponse{
		ID:         t.ID,
		Text:       t.Text,
		IsOfficial: t.IsOfficial,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

type termListResponse struct {
	Terms []termResponse `json:"terms"`
	Total int            `json:"total"`
}

type perspectiveResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toPerspectiveResponse(p *domain.Perspective) perspectiveResponse {
	return perspectiveResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type entryResponse struct {
	ID            uuid.UUID  `json:"id"`
	TermID        uuid.UUID  `json:"term_id"`
	PerspectiveID uuid.UUID  `json:"perspective_id"`
	ActiveDraftID *uuid.UUID `json:"active_draft_id,omitempty"`
	IsOfficial    bool       `json:"is_official"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{
		ID:            e.ID,
		TermID:        e.TermID,
		PerspectiveID: e.PerspectiveID,
		ActiveDraftID: e.ActiveDraftID,
		IsOfficial:    e.IsOfficial(),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type draftResponse struct {
	ID                   uuid.UUID   `json:"id"`
	EntryID              uuid.UUID   `json:"entry_id"`
	Content              string      `json:"content"`
	AuthorID             uuid.UUID   `json:"author_id"`
	ApproverIDs          []uuid.UUID `json:"approver_ids"`
	RequestedReviewerIDs []uuid.UUID `json:"requested_reviewer_ids,omitempty"`
	IsPublished          bool        `json:"is_published"`
	ReplacesDraftID      *uuid.UUID  `json:"replaces_draft_id,omitempty"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

func toDraftResponse(d *domain.Draft) draftResponse {
	return draftResponse{
		ID:                   d.ID,
		EntryID:              d.EntryID,
		Content:              d.Content,
		AuthorID:             d.AuthorID,
		ApproverIDs:          d.ApproverIDs,
		RequestedReviewerIDs: d.RequestedReviewerIDs,
		IsPublished:          d.IsPublished,
		ReplacesDraftID:      d.ReplacesDraftID,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

type commentResponse struct {
	ID            uuid.UUID  `json:"id"`
	DraftID       uuid.UUID  `json:"draft_id"`
	ParentID      *uuid.UUID `json:"parent_id,omitempty"`
	AuthorID      uuid.UUID  `json:"author_id"`
	Text          string     `json:"text"`
	HTML          string     `json:"html,omitempty"`
	ReactionCount int        `json:"reaction_count"`
	IsResolved    bool       `json:"is_resolved"`
	EditedAt      *time.Time `json:"edited_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:            c.ID,
		DraftID:       c.DraftID,
		ParentID:      c.ParentID,
		AuthorID:      c.AuthorID,
		Text:          c.Text,
		ReactionCount: len(c.ReactionUserIDs),
		IsResolved:    c.IsResolved,
		EditedAt:      c.EditedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toCommentViewResponse(v comment.View) commentResponse {
	resp := toCommentResponse(&v.Comment)
	resp.HTML = v.HTML
	return resp
}

type threadResponse struct {
	commentResponse
	Replies []commentResponse `json:"replies,omitempty"`
}

type discussionResponse struct {
	Threads       []threadResponse `json:"threads"`
	ResolvedCount int              `json:"resolved_count"`
}

func toDiscussionResponse(d *comment.Discussion) discussionResponse {
	threads := make([]threadResponse, 0, len(d.Threads))
	for _, t := range d.Threads {
		tr := threadResponse{commentResponse: toCommentViewResponse(t.View)}
		for _, r := range t.Replies {
			tr.Replies = append(tr.Replies, toCommentViewResponse(r))
		}
		threads = append(threads, tr)
	}
	return discussionResponse{Threads: threads, ResolvedCount: d.ResolvedCount}
}

type notificationResponse struct {
	ID               uuid.UUID  `json:"id"`
	Type             string     `json:"type"`
	Message          string     `json:"message"`
	RelatedDraftID   *uuid.UUID `json:"related_draft_id,omitempty"`
	RelatedCommentID *uuid.UUID `json:"related_comment_id,omitempty"`
	IsRead           bool       `json:"is_read"`
	CreatedAt        time.Time  `json:"created_at"`
}

type inboxResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	UnreadCount   int                    `json:"unread_count"`
}

func toInboxResponse(inbox *notification.Inbox) inboxResponse {
	out := inboxResponse{
		Notifications: make([]notificationResponse, 0, len(inbox.Notifications)),
		Total:         inbox.Total,
		UnreadCount:   inbox.UnreadCount,
	}
	for _, n := range inbox.Notifications {
		out.Notifications = append(out.Notifications, notificationResponse{
			ID:               n.ID,
			Type:             string(n.Type),
			Message:          n.Message,
			RelatedDraftID:   n.RelatedDraftID,
			RelatedCommentID: n.RelatedCommentID,
			IsRead:           n.IsRead,
			CreatedAt:        n.CreatedAt,
		})
	}
	return out
}
