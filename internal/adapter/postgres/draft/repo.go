// Package draft implements the Draft repository using PostgreSQL.
// It owns the draft rows plus the approver and requested-reviewer sets,
// and the publication switch that keeps "exactly one published draft per
// entry" true under concurrent callers.
package draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termweave/glossary-backend/internal/adapter/postgres"
	"github.com/termweave/glossary-backend/internal/domain"
)

const draftColumns = "id, entry_id, content, author_id, is_published, replaces_draft_id, created_at, updated_at"

// Repo provides draft persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new draft repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a draft by primary key with its approver and reviewer
// sets loaded.
func (r *Repo) GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(draftColumns).
		From("drafts").
		Where(squirrel.Eq{"id": draftID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select draft: %w", err)
	}

	var d domain.Draft
	row := q.QueryRow(ctx, sql, args...)
	if err := scanDraft(row, &d); err != nil {
		return nil, postgres.MapError(err, "draft", draftID)
	}

	if err := r.loadSets(ctx, []*domain.Draft{&d}); err != nil {
		return nil, err
	}

	return &d, nil
}

// GetLatestByEntry returns the most recently created draft for the entry,
// regardless of publication state. Returns domain.ErrNotFound if the entry
// has no drafts yet.
func (r *Repo) GetLatestByEntry(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(draftColumns).
		From("drafts").
		Where(squirrel.Eq{"entry_id": entryID}).
		OrderBy("created_at DESC, id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select latest draft: %w", err)
	}

	var d domain.Draft
	row := q.QueryRow(ctx, sql, args...)
	if err := scanDraft(row, &d); err != nil {
		return nil, postgres.MapError(err, "draft", uuid.Nil)
	}

	if err := r.loadSets(ctx, []*domain.Draft{&d}); err != nil {
		return nil, err
	}

	return &d, nil
}

// GetHistory returns all drafts of an entry newest-first, with approver
// and reviewer sets loaded. Ordering comes from the (entry_id, created_at)
// index rather than walking replaces_draft_id links.
func (r *Repo) GetHistory(ctx context.Context, entryID uuid.UUID) ([]domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(draftColumns).
		From("drafts").
		Where(squirrel.Eq{"entry_id": entryID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select draft history: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select draft history: %w", err)
	}
	defer rows.Close()

	var drafts []domain.Draft
	for rows.Next() {
		var d domain.Draft
		if err := scanDraft(rows, &d); err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drafts: %w", err)
	}

	ptrs := make([]*domain.Draft, len(drafts))
	for i := range drafts {
		ptrs[i] = &drafts[i]
	}
	if err := r.loadSets(ctx, ptrs); err != nil {
		return nil, err
	}

	return drafts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new draft row with empty approver and reviewer sets.
func (r *Repo) Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("drafts").
		Columns("id", "entry_id", "content", "author_id", "is_published", "replaces_draft_id", "created_at", "updated_at").
		Values(d.ID, d.EntryID, d.Content, d.AuthorID, false, d.ReplacesDraftID, d.CreatedAt, d.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert draft: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "draft", d.ID)
	}

	created := *d
	created.IsPublished = false
	created.ApproverIDs = nil
	created.RequestedReviewerIDs = nil
	return &created, nil
}

// AddApprover appends the user to the draft's approver set, preserving
// approval order. The draft row is locked so concurrent approvals
// serialize on the position counter; both still land (set union), and a
// duplicate surfaces as domain.ErrAlreadyApproved. Self-approval is
// guarded here as well as in the service layer.
// Intended to run inside a TxManager transaction.
func (r *Repo) AddApprover(ctx context.Context, draftID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var authorID uuid.UUID
	err := q.QueryRow(ctx, `SELECT author_id FROM drafts WHERE id = $1 FOR UPDATE`, draftID).Scan(&authorID)
	if err != nil {
		return postgres.MapError(err, "draft", draftID)
	}
	if authorID == userID {
		return fmt.Errorf("draft %s: %w", draftID, domain.ErrSelfApproval)
	}

	const insertSQL = `
		INSERT INTO draft_approvers (draft_id, user_id, position)
		VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM draft_approvers WHERE draft_id = $1))`

	if _, err := q.Exec(ctx, insertSQL, draftID, userID); err != nil {
		mapped := postgres.MapError(err, "draft", draftID)
		if errors.Is(mapped, domain.ErrAlreadyExists) {
			return fmt.Errorf("draft %s: %w", draftID, domain.ErrAlreadyApproved)
		}
		return mapped
	}

	return nil
}

// Publish flips the published flag to this draft. The entry row is locked
// for the duration, so concurrent publish attempts on drafts of the same
// entry serialize: exactly one active_draft_id assignment wins and the
// loser observes domain.ErrAlreadyPublished or the quorum error against
// the post-winner state. Intended to run inside a TxManager transaction.
func (r *Repo) Publish(ctx context.Context, draftID uuid.UUID, minApprovals int) (*domain.Draft, *domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var entryID uuid.UUID
	if err := q.QueryRow(ctx, `SELECT entry_id FROM drafts WHERE id = $1`, draftID).Scan(&entryID); err != nil {
		return nil, nil, postgres.MapError(err, "draft", draftID)
	}

	var e domain.Entry
	err := q.QueryRow(ctx,
		`SELECT id, term_id, perspective_id, active_draft_id, created_at, updated_at
		 FROM entries WHERE id = $1 FOR UPDATE`, entryID).
		Scan(&e.ID, &e.TermID, &e.PerspectiveID, &e.ActiveDraftID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, nil, postgres.MapError(err, "entry", entryID)
	}

	var isPublished bool
	if err := q.QueryRow(ctx, `SELECT is_published FROM drafts WHERE id = $1`, draftID).Scan(&isPublished); err != nil {
		return nil, nil, postgres.MapError(err, "draft", draftID)
	}
	if isPublished {
		return nil, nil, fmt.Errorf("draft %s: %w", draftID, domain.ErrAlreadyPublished)
	}

	var approvals int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM draft_approvers WHERE draft_id = $1`, draftID).Scan(&approvals); err != nil {
		return nil, nil, fmt.Errorf("count approvals: %w", err)
	}
	if approvals < minApprovals {
		return nil, nil, fmt.Errorf("draft %s has %d of %d approvals: %w",
			draftID, approvals, minApprovals, domain.ErrInsufficientApprovals)
	}

	// Demote the previous published draft, then promote this one. The
	// partial unique index on (entry_id) WHERE is_published backs the
	// invariant if anything slips past the row lock.
	if _, err := q.Exec(ctx,
		`UPDATE drafts SET is_published = FALSE, updated_at = now()
		 WHERE entry_id = $1 AND is_published`, entryID); err != nil {
		return nil, nil, fmt.Errorf("demote previous draft: %w", err)
	}

	if _, err := q.Exec(ctx,
		`UPDATE drafts SET is_published = TRUE, updated_at = now() WHERE id = $1`, draftID); err != nil {
		return nil, nil, fmt.Errorf("promote draft: %w", err)
	}

	if _, err := q.Exec(ctx,
		`UPDATE entries SET active_draft_id = $1, updated_at = now() WHERE id = $2`, draftID, entryID); err != nil {
		return nil, nil, fmt.Errorf("reassign active draft: %w", err)
	}

	published, err := r.GetByID(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	e.ActiveDraftID = &draftID

	return published, &e, nil
}

// ReplaceReviewers replaces the draft's requested-reviewer set and
// returns the IDs that were not in the previous set, for notification
// diffing. Intended to run inside a TxManager transaction.
func (r *Repo) ReplaceReviewers(ctx context.Context, draftID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT TRUE FROM drafts WHERE id = $1 FOR UPDATE`, draftID).Scan(&exists); err != nil {
		return nil, postgres.MapError(err, "draft", draftID)
	}

	rows, err := q.Query(ctx, `SELECT user_id FROM draft_reviewers WHERE draft_id = $1`, draftID)
	if err != nil {
		return nil, fmt.Errorf("select reviewers: %w", err)
	}
	previous := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan reviewer: %w", err)
		}
		previous[id] = struct{}{}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviewers: %w", err)
	}

	if _, err := q.Exec(ctx, `DELETE FROM draft_reviewers WHERE draft_id = $1`, draftID); err != nil {
		return nil, fmt.Errorf("clear reviewers: %w", err)
	}

	var added []uuid.UUID
	for _, id := range userIDs {
		if _, err := q.Exec(ctx,
			`INSERT INTO draft_reviewers (draft_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			draftID, id); err != nil {
			return nil, postgres.MapError(err, "draft", draftID)
		}
		if _, wasBefore := previous[id]; !wasBefore {
			added = append(added, id)
		}
	}

	return added, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanDraft(row scannable, d *domain.Draft) error {
	return row.Scan(&d.ID, &d.EntryID, &d.Content, &d.AuthorID,
		&d.IsPublished, &d.ReplacesDraftID, &d.CreatedAt, &d.UpdatedAt)
}

// loadSets batch-loads approver and reviewer IDs for the given drafts.
func (r *Repo) loadSets(ctx context.Context, drafts []*domain.Draft) error {
	if len(drafts) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids := make([]uuid.UUID, len(drafts))
	byID := make(map[uuid.UUID]*domain.Draft, len(drafts))
	for i, d := range drafts {
		ids[i] = d.ID
		byID[d.ID] = d
	}

	approvers, err := q.Query(ctx,
		`SELECT draft_id, user_id FROM draft_approvers
		 WHERE draft_id = ANY($1) ORDER BY draft_id, position`, ids)
	if err != nil {
		return fmt.Errorf("select approvers: %w", err)
	}
	for approvers.Next() {
		var draftID, userID uuid.UUID
		if err := approvers.Scan(&draftID, &userID); err != nil {
			approvers.Close()
			return fmt.Errorf("scan approver: %w", err)
		}
		if d := byID[draftID]; d != nil {
			d.ApproverIDs = append(d.ApproverIDs, userID)
		}
	}
	approvers.Close()
	if err := approvers.Err(); err != nil {
		return fmt.Errorf("iterate approvers: %w", err)
	}

	reviewers, err := q.Query(ctx,
		`SELECT draft_id, user_id FROM draft_reviewers
		 WHERE draft_id = ANY($1) ORDER BY draft_id, created_at`, ids)
	if err != nil {
		return fmt.Errorf("select reviewers: %w", err)
	}
	for reviewers.Next() {
		var draftID, userID uuid.UUID
		if err := reviewers.Scan(&draftID, &userID); err != nil {
			reviewers.Close()
			return fmt.Errorf("scan reviewer: %w", err)
		}
		if d := byID[draftID]; d != nil {
			d.RequestedReviewerIDs = append(d.RequestedReviewerIDs, userID)
		}
	}
	reviewers.Close()
	if err := reviewers.Err(); err != nil {
		return fmt.Errorf("iterate reviewers: %w", err)
	}

	return nil
}
