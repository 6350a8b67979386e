package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termweave/glossary-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a non-staff user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + suffix,
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, name, is_staff, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Name, user.IsStaff, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedPerspective creates a perspective with a unique name.
func SeedPerspective(t *testing.T, pool *pgxpool.Pool) domain.Perspective {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Perspective{
		ID:          uuid.New(),
		Name:        "Perspective " + suffix,
		Description: "Test perspective " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO perspectives (id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPerspective insert: %v", err)
	}

	return p
}

// SeedTerm creates a term from the given text.
func SeedTerm(t *testing.T, pool *pgxpool.Pool, text string) domain.Term {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	term := domain.Term{
		ID:             uuid.New(),
		Text:           text,
		TextNormalized: domain.NormalizeTermText(text),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO terms (id, text, text_normalized, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		term.ID, term.Text, term.TextNormalized, term.CreatedAt, term.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTerm insert: %v", err)
	}

	return term
}

// SeedEntry binds a term to a perspective.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, termID, perspectiveID uuid.UUID) domain.Entry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.Entry{
		ID:            uuid.New(),
		TermID:        termID,
		PerspectiveID: perspectiveID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, term_id, perspective_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.TermID, entry.PerspectiveID, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return entry
}

// SeedDraft creates an unpublished draft on the entry, optionally chained
// to a previous draft via replaces.
func SeedDraft(t *testing.T, pool *pgxpool.Pool, entryID, authorID uuid.UUID, replaces *uuid.UUID) domain.Draft {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	draft := domain.Draft{
		ID:              uuid.New(),
		EntryID:         entryID,
		Content:         "Draft content " + suffix,
		AuthorID:        authorID,
		ReplacesDraftID: replaces,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO drafts (id, entry_id, content, author_id, is_published, replaces_draft_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, FALSE, $5, $6, $7)`,
		draft.ID, draft.EntryID, draft.Content, draft.AuthorID, draft.ReplacesDraftID, draft.CreatedAt, draft.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDraft insert: %v", err)
	}

	return draft
}

// SeedApproval appends a user to the draft's approver list at the next position.
func SeedApproval(t *testing.T, pool *pgxpool.Pool, draftID, userID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO draft_approvers (draft_id, user_id, position, created_at)
		 VALUES ($1, $2,
		         (SELECT COALESCE(MAX(position), 0) + 1 FROM draft_approvers WHERE draft_id = $1),
		         now())`,
		draftID, userID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApproval insert: %v", err)
	}
}

// SeedComment creates a top-level comment (or a reply when parentID is non-nil).
func SeedComment(t *testing.T, pool *pgxpool.Pool, draftID, authorID uuid.UUID, parentID *uuid.UUID) domain.Comment {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Comment{
		ID:        uuid.New(),
		DraftID:   draftID,
		ParentID:  parentID,
		AuthorID:  authorID,
		Text:      "Comment " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO comments (id, draft_id, parent_id, author_id, text, is_resolved, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7)`,
		c.ID, c.DraftID, c.ParentID, c.AuthorID, c.Text, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert: %v", err)
	}

	return c
}

// SeedNotification creates an unread notification for the recipient.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, recipientID uuid.UUID, typ domain.NotificationType) domain.Notification {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	n := domain.Notification{
		ID:              uuid.New(),
		RecipientUserID: recipientID,
		Type:            typ,
		Message:         "Notification " + suffix,
		CreatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO notifications (id, recipient_user_id, type, message, is_read, created_at)
		 VALUES ($1, $2, $3, $4, FALSE, $5)`,
		n.ID, n.RecipientUserID, string(n.Type), n.Message, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification insert: %v", err)
	}

	return n
}
