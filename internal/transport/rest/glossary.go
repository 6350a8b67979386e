package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/internal/service/glossary"
)

// glossaryService defines the minimal interface needed by GlossaryHandler.
type glossaryService interface {
	CreateTerm(ctx context.Context, input glossary.CreateTermInput) (*domain.Term, error)
	GetTerm(ctx context.Context, termID uuid.UUID) (*domain.Term, error)
	ListTerms(ctx context.Context, input glossary.ListTermsInput) ([]domain.Term, int, error)
	CreatePerspective(ctx context.Context, input glossary.CreatePerspectiveInput) (*domain.Perspective, error)
	GetPerspective(ctx context.Context, perspectiveID uuid.UUID) (*domain.Perspective, error)
	ListPerspectives(ctx context.Context) ([]domain.Perspective, error)
	CreateEntry(ctx context.Context, input glossary.CreateEntryInput) (*domain.Entry, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
	LookupEntry(ctx context.Context, termID, perspectiveID uuid.UUID) (*domain.Entry, error)
	ListEntriesByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Entry, error)
}

// GlossaryHandler serves term, perspective and entry endpoints.
type GlossaryHandler struct {
	svc glossaryService
	log *slog.Logger
}

// NewGlossaryHandler creates a GlossaryHandler.
func NewGlossaryHandler(svc glossaryService, logger *slog.Logger) *GlossaryHandler {
	return &GlossaryHandler{svc: svc, log: logger.With("handler", "glossary")}
}

type createTermRequest struct {
	Text string `json:"text"`
}

// CreateTerm handles POST /api/v1/terms.
func (h *GlossaryHandler) CreateTerm(w http.ResponseWriter, r *http.Request) {
	var req createTermRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	term, err := h.svc.CreateTerm(r.Context(), glossary.CreateTermInput{Text: req.Text})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTermResponse(term))
}

// GetTerm handles GET /api/v1/terms/{termID}.
func (h *GlossaryHandler) GetTerm(w http.ResponseWriter, r *http.Request) {
	termID, ok := pathUUID(w, r, "termID")
	if !ok {
		return
	}

	term, err := h.svc.GetTerm(r.Context(), termID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTermResponse(term))
}

// ListTerms handles GET /api/v1/terms.
func (h *GlossaryHandler) ListTerms(w http.ResponseWriter, r *http.Request) {
	input := glossary.ListTermsInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	terms, total, err := h.svc.ListTerms(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := termListResponse{Terms: make([]termResponse, 0, len(terms)), Total: total}
	for i := range terms {
		resp.Terms = append(resp.Terms, toTermResponse(&terms[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

type createPerspectiveRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreatePerspective handles POST /api/v1/perspectives. Staff only.
func (h *GlossaryHandler) CreatePerspective(w http.ResponseWriter, r *http.Request) {
	var req createPerspectiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.CreatePerspective(r.Context(), glossary.CreatePerspectiveInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPerspectiveResponse(p))
}

// GetPerspective handles GET /api/v1/perspectives/{perspectiveID}.
func (h *GlossaryHandler) GetPerspective(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "perspectiveID")
	if !ok {
		return
	}

	p, err := h.svc.GetPerspective(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPerspectiveResponse(p))
}

// ListPerspectives handles GET /api/v1/perspectives.
func (h *GlossaryHandler) ListPerspectives(w http.ResponseWriter, r *http.Request) {
	perspectives, err := h.svc.ListPerspectives(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]perspectiveResponse, 0, len(perspectives))
	for i := range perspectives {
		out = append(out, toPerspectiveResponse(&perspectives[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

type createEntryRequest struct {
	TermID        uuid.UUID `json:"term_id"`
	PerspectiveID uuid.UUID `json:"perspective_id"`
}

// CreateEntry handles POST /api/v1/entries.
func (h *GlossaryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), glossary.CreateEntryInput{
		TermID:        req.TermID,
		PerspectiveID: req.PerspectiveID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// GetEntry handles GET /api/v1/entries/{entryID}.
func (h *GlossaryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathUUID(w, r, "entryID")
	if !ok {
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), entryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// LookupEntry handles GET /api/v1/terms/{termID}/perspectives/{perspectiveID}/entry:
// entry resolution by the (term, perspective) pair.
func (h *GlossaryHandler) LookupEntry(w http.ResponseWriter, r *http.Request) {
	termID, ok := pathUUID(w, r, "termID")
	if !ok {
		return
	}
	perspectiveID, ok := pathUUID(w, r, "perspectiveID")
	if !ok {
		return
	}

	entry, err := h.svc.LookupEntry(r.Context(), termID, perspectiveID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// ListTermEntries handles GET /api/v1/terms/{termID}/entries.
func (h *GlossaryHandler) ListTermEntries(w http.ResponseWriter, r *http.Request) {
	termID, ok := pathUUID(w, r, "termID")
	if !ok {
		return
	}

	entries, err := h.svc.ListEntriesByTerm(r.Context(), termID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]entryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
