package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/service/notification"
)

// notificationService defines the minimal interface needed by NotificationHandler.
type notificationService interface {
	List(ctx context.Context, input notification.ListInput) (*notification.Inbox, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context) (int, error)
	Dismiss(ctx context.Context, notificationID uuid.UUID) error
}

// NotificationHandler serves the per-user inbox endpoints.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// List handles GET /api/v1/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	input := notification.ListInput{
		UnreadOnly: r.URL.Query().Get("unread_only") == "true",
		Limit:      queryInt(r, "limit"),
		Offset:     queryInt(r, "offset"),
	}

	inbox, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInboxResponse(inbox))
}

// MarkRead handles POST /api/v1/notifications/{notificationID}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, ok := pathUUID(w, r, "notificationID")
	if !ok {
		return
	}

	if err := h.svc.MarkRead(r.Context(), notificationID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type markAllReadResponse struct {
	Changed int `json:"changed"`
}

// MarkAllRead handles POST /api/v1/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	changed, err := h.svc.MarkAllRead(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, markAllReadResponse{Changed: changed})
}

// Dismiss handles DELETE /api/v1/notifications/{notificationID}.
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	notificationID, ok := pathUUID(w, r, "notificationID")
	if !ok {
		return
	}

	if err := h.svc.Dismiss(r.Context(), notificationID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
