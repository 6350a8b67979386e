// Package rest wires the HTTP surface: one handler struct per service,
// method-scoped routes on the standard mux, shared JSON and error
// helpers.
package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Glossary     *GlossaryHandler
	Draft        *DraftHandler
	Comment      *CommentHandler
	Notification *NotificationHandler
}

// NewRouter mounts all REST routes on a fresh mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/terms", h.Glossary.CreateTerm)
	mux.HandleFunc("GET /api/v1/terms", h.Glossary.ListTerms)
	mux.HandleFunc("GET /api/v1/terms/{termID}", h.Glossary.GetTerm)
	mux.HandleFunc("GET /api/v1/terms/{termID}/entries", h.Glossary.ListTermEntries)
	mux.HandleFunc("GET /api/v1/terms/{termID}/perspectives/{perspectiveID}/entry", h.Glossary.LookupEntry)

	mux.HandleFunc("POST /api/v1/perspectives", h.Glossary.CreatePerspective)
	mux.HandleFunc("GET /api/v1/perspectives", h.Glossary.ListPerspectives)
	mux.HandleFunc("GET /api/v1/perspectives/{perspectiveID}", h.Glossary.GetPerspective)

	mux.HandleFunc("POST /api/v1/entries", h.Glossary.CreateEntry)
	mux.HandleFunc("GET /api/v1/entries/{entryID}", h.Glossary.GetEntry)
	mux.HandleFunc("GET /api/v1/entries/{entryID}/drafts", h.Draft.History)
	mux.HandleFunc("GET /api/v1/entries/{entryID}/discussion", h.Comment.EntryDiscussion)

	mux.HandleFunc("POST /api/v1/drafts", h.Draft.Create)
	mux.HandleFunc("GET /api/v1/drafts/{draftID}", h.Draft.Get)
	mux.HandleFunc("POST /api/v1/drafts/{draftID}/approve", h.Draft.Approve)
	mux.HandleFunc("GET /api/v1/drafts/{draftID}/eligibility", h.Draft.Eligibility)
	mux.HandleFunc("POST /api/v1/drafts/{draftID}/publish", h.Draft.Publish)
	mux.HandleFunc("POST /api/v1/drafts/{draftID}/review-requests", h.Draft.RequestReview)
	mux.HandleFunc("GET /api/v1/drafts/{draftID}/discussion", h.Comment.DraftDiscussion)

	mux.HandleFunc("POST /api/v1/comments", h.Comment.Add)
	mux.HandleFunc("PATCH /api/v1/comments/{commentID}", h.Comment.Edit)
	mux.HandleFunc("POST /api/v1/comments/{commentID}/resolve", h.Comment.Resolve)
	mux.HandleFunc("POST /api/v1/comments/{commentID}/unresolve", h.Comment.Unresolve)
	mux.HandleFunc("POST /api/v1/comments/{commentID}/reactions", h.Comment.ToggleReaction)

	mux.HandleFunc("GET /api/v1/notifications", h.Notification.List)
	mux.HandleFunc("POST /api/v1/notifications/read-all", h.Notification.MarkAllRead)
	mux.HandleFunc("POST /api/v1/notifications/{notificationID}/read", h.Notification.MarkRead)
	mux.HandleFunc("DELETE /api/v1/notifications/{notificationID}", h.Notification.Dismiss)

	return mux
}
