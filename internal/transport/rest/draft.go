package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/internal/service/draft"
)

// draftService defines the minimal interface needed by DraftHandler.
type draftService interface {
	CreateDraft(ctx context.Context, input draft.CreateDraftInput) (*domain.Draft, error)
	GetDraft(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	History(ctx context.Context, entryID uuid.UUID) ([]domain.Draft, error)
	Approve(ctx context.Context, input draft.ApproveInput) (*domain.Draft, error)
	Eligibility(ctx context.Context, draftID uuid.UUID) (domain.ApprovalEligibility, error)
	Publish(ctx context.Context, input draft.PublishInput) (*domain.Draft, error)
	RequestReview(ctx context.Context, input draft.RequestReviewInput) (*domain.Draft, error)
}

// DraftHandler serves draft lifecycle endpoints.
type DraftHandler struct {
	svc draftService
	log *slog.Logger
}

// NewDraftHandler creates a DraftHandler.
func NewDraftHandler(svc draftService, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{svc: svc, log: logger.With("handler", "draft")}
}

type createDraftRequest struct {
	EntryID uuid.UUID `json:"entry_id"`
	Content string    `json:"content"`
}

// Create handles POST /api/v1/drafts. A draft for an entry that already
// has one becomes a revision superseding the latest.
func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDraftRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.CreateDraft(r.Context(), draft.CreateDraftInput{
		EntryID: req.EntryID,
		Content: req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDraftResponse(d))
}

// Get handles GET /api/v1/drafts/{draftID}.
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}

	d, err := h.svc.GetDraft(r.Context(), draftID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

// History handles GET /api/v1/entries/{entryID}/drafts, newest first.
func (h *DraftHandler) History(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathUUID(w, r, "entryID")
	if !ok {
		return
	}

	drafts, err := h.svc.History(r.Context(), entryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]draftResponse, 0, len(drafts))
	for i := range drafts {
		out = append(out, toDraftResponse(&drafts[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Approve handles POST /api/v1/drafts/{draftID}/approve.
func (h *DraftHandler) Approve(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}

	d, err := h.svc.Approve(r.Context(), draft.ApproveInput{DraftID: draftID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

type eligibilityResponse struct {
	Eligibility domain.ApprovalEligibility `json:"eligibility"`
}

// Eligibility handles GET /api/v1/drafts/{draftID}/eligibility.
func (h *DraftHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}

	eligibility, err := h.svc.Eligibility(r.Context(), draftID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, eligibilityResponse{Eligibility: eligibility})
}

// Publish handles POST /api/v1/drafts/{draftID}/publish.
func (h *DraftHandler) Publish(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}

	d, err := h.svc.Publish(r.Context(), draft.PublishInput{DraftID: draftID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

type requestReviewRequest struct {
	ReviewerIDs []uuid.UUID `json:"reviewer_ids"`
}

// RequestReview handles POST /api/v1/drafts/{draftID}/review-requests.
func (h *DraftHandler) RequestReview(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathUUID(w, r, "draftID")
	if !ok {
		return
	}

	var req requestReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.RequestReview(r.Context(), draft.RequestReviewInput{
		DraftID:     draftID,
		ReviewerIDs: req.ReviewerIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftResponse(d))
}
