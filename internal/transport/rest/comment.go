package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/internal/service/comment"
)

// commentService defines the minimal interface needed by CommentHandler.
type commentService interface {
	AddComment(ctx context.Context, input comment.AddCommentInput) (*domain.Comment, error)
	EditComment(ctx context.Context, input comment.EditCommentInput) (*domain.Comment, error)
	Resolve(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	Unresolve(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	ToggleReaction(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	EntryDiscussion(ctx context.Context, entryID uuid.UUID, includeResolved bool) (*comment.Discussion, error)
	DraftDiscussion(ctx context.Context, draftID uuid.UUID) (*comment.Discussion, error)
}

// CommentHandler serves comment and discussion endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type addCommentRequest struct {
	DraftID  uuid.UUID  `json:"draft_id"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	Text     string     `json:"text"`
}

// Add handles POST /api/v1/comments.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.AddComment(r.Context(), comment.AddCommentInput{
		DraftID:  req.DraftID,
		ParentID: req.ParentID,
		Text:     req.Text,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

type editCommentRequest struct {
	Text string `json:"text"`
}

// Edit handles PATCH /api/v1/comments/{commentID}.
func (h *CommentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathUUID(w, r, "commentID")
	if !ok {
		return
	}

	var req editCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.EditComment(r.Context(), comment.EditCommentInput{
		CommentID: commentID,
		Text:      req.Text,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(c))
}

// Resolve handles POST /api/v1/comments/{commentID}/resolve.
func (h *CommentHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	h.setResolved(w, r, h.svc.Resolve)
}

// Unresolve handles POST /api/v1/comments/{commentID}/unresolve.
func (h *CommentHandler) Unresolve(w http.ResponseWriter, r *http.Request) {
	h.setResolved(w, r, h.svc.Unresolve)
}

func (h *CommentHandler) setResolved(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Comment, error)) {
	commentID, ok := pathUUID(w, r, "commentID")
	if !ok {
		return
	}

	c, err := op(r.Context(), commentID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(c))
}

// ToggleReaction handles POST /api/v1/comments/{commentID}/reactions.
func (h *CommentHandler) ToggleReaction(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathUUID(w, r, "commentID")
	if !ok {
		return
	}

	c, err := h.svc.ToggleReaction(r.Context(), commentID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(c))
}

// EntryDiscussion handles GET /api/v1/entries/{entryID}/discussion: the
// current unpublished chain with resolved threads counted, not shown.
// Passing ?include_resolved=true expands them in place.
func (h *CommentHandler) EntryDiscussion(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathUUID(w, r, "entryID")
	if !ok {
		return
	}
	includeResolved := r.URL.Query().Get("include_resolved") == "true"

	d, err := h.svc.EntryDiscussion(r.Context(), entryID, includeResolved)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDiscussionResponse(d))
}

// DraftDiscussion handles GET /api/v1/drafts/{draftID}/discussion: the
// historical view of one draft, resolved threads included.
func (h *CommentHandler) DraftDiscussion(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}

	d, err := h.svc.DraftDiscussion(r.Context(), draftID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDiscussionResponse(d))
}
