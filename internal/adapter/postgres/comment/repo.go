// Package comment implements the Comment repository using PostgreSQL.
// It owns comment rows and the per-comment reaction sets.
package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termweave/glossary-backend/internal/adapter/postgres"
	"github.com/termweave/glossary-backend/internal/domain"
)

const commentColumns = "id, draft_id, parent_id, author_id, text, is_resolved, edited_at, created_at, updated_at"

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a comment by primary key with its reaction set loaded.
func (r *Repo) GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(commentColumns).
		From("comments").
		Where(squirrel.Eq{"id": commentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select comment: %w", err)
	}

	var c domain.Comment
	row := q.QueryRow(ctx, sql, args...)
	if err := scanComment(row, &c); err != nil {
		return nil, postgres.MapError(err, "comment", commentID)
	}

	if err := r.loadReactions(ctx, []*domain.Comment{&c}); err != nil {
		return nil, err
	}

	return &c, nil
}

// ListTopLevelByDraftIDs returns top-level comments whose draft is in the
// given set, oldest-first, with reaction sets loaded.
func (r *Repo) ListTopLevelByDraftIDs(ctx context.Context, draftIDs []uuid.UUID) ([]domain.Comment, error) {
	if len(draftIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"draft_id": draftIDs},
		squirrel.Eq{"parent_id": nil},
	})
}

// ListRepliesByParentIDs returns replies to the given top-level comments,
// oldest-first, with reaction sets loaded. A reply is returned with its
// parent regardless of which draft was current when it was posted.
func (r *Repo) ListRepliesByParentIDs(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, squirrel.Eq{"parent_id": parentIDs})
}

// DistinctAuthorIDs returns the distinct authors of all comments (top
// level and replies) on the given drafts.
func (r *Repo) DistinctAuthorIDs(ctx context.Context, draftIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(draftIDs) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT DISTINCT author_id FROM comments WHERE draft_id = ANY($1)`, draftIDs)
	if err != nil {
		return nil, fmt.Errorf("select comment authors: %w", err)
	}
	defer rows.Close()

	var authors []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate authors: %w", err)
	}

	return authors, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new comment and returns the persisted domain.Comment.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("comments").
		Columns("id", "draft_id", "parent_id", "author_id", "text", "is_resolved", "created_at", "updated_at").
		Values(c.ID, c.DraftID, c.ParentID, c.AuthorID, c.Text, false, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert comment: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}

	created := *c
	created.IsResolved = false
	return &created, nil
}

// SetResolved updates the resolution flag of a comment.
func (r *Repo) SetResolved(ctx context.Context, commentID uuid.UUID, resolved bool) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE comments SET is_resolved = $1, updated_at = now() WHERE id = $2`, resolved, commentID)
	if err != nil {
		return nil, postgres.MapError(err, "comment", commentID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, commentID)
}

// UpdateText replaces the comment text and stamps edited_at.
func (r *Repo) UpdateText(ctx context.Context, commentID uuid.UUID, text string, editedAt time.Time) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE comments SET text = $1, edited_at = $2, updated_at = now() WHERE id = $3`,
		text, editedAt, commentID)
	if err != nil {
		return nil, postgres.MapError(err, "comment", commentID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, commentID)
}

// ToggleReaction flips the user's membership in the comment's reaction
// set. The comment row is locked so concurrent toggles by the same user
// serialize and converge on a consistent membership instead of
// double-counting. Intended to run inside a TxManager transaction.
func (r *Repo) ToggleReaction(ctx context.Context, commentID, userID uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT TRUE FROM comments WHERE id = $1 FOR UPDATE`, commentID).Scan(&exists); err != nil {
		return nil, postgres.MapError(err, "comment", commentID)
	}

	tag, err := q.Exec(ctx,
		`DELETE FROM comment_reactions WHERE comment_id = $1 AND user_id = $2`, commentID, userID)
	if err != nil {
		return nil, postgres.MapError(err, "comment", commentID)
	}

	if tag.RowsAffected() == 0 {
		if _, err := q.Exec(ctx,
			`INSERT INTO comment_reactions (comment_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			commentID, userID); err != nil {
			return nil, postgres.MapError(err, "comment", commentID)
		}
	}

	return r.GetByID(ctx, commentID)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanComment(row scannable, c *domain.Comment) error {
	return row.Scan(&c.ID, &c.DraftID, &c.ParentID, &c.AuthorID,
		&c.Text, &c.IsResolved, &c.EditedAt, &c.CreatedAt, &c.UpdatedAt)
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(commentColumns).
		From("comments").
		Where(where).
		OrderBy("created_at ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	ptrs := make([]*domain.Comment, len(comments))
	for i := range comments {
		ptrs[i] = &comments[i]
	}
	if err := r.loadReactions(ctx, ptrs); err != nil {
		return nil, err
	}

	return comments, nil
}

// loadReactions batch-loads reaction user IDs for the given comments.
func (r *Repo) loadReactions(ctx context.Context, comments []*domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids := make([]uuid.UUID, len(comments))
	byID := make(map[uuid.UUID]*domain.Comment, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
		byID[c.ID] = c
	}

	rows, err := q.Query(ctx,
		`SELECT comment_id, user_id FROM comment_reactions
		 WHERE comment_id = ANY($1) ORDER BY comment_id, created_at`, ids)
	if err != nil {
		return fmt.Errorf("select reactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var commentID, userID uuid.UUID
		if err := rows.Scan(&commentID, &userID); err != nil {
			return fmt.Errorf("scan reaction: %w", err)
		}
		if c := byID[commentID]; c != nil {
			c.ReactionUserIDs = append(c.ReactionUserIDs, userID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate reactions: %w", err)
	}

	return nil
}
