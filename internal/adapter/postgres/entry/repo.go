// Package entry implements the Entry repository using PostgreSQL.
// An entry binds a term to a perspective; at most one exists per pair.
package entry

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termweave/glossary-backend/internal/adapter/postgres"
	"github.com/termweave/glossary-backend/internal/domain"
)

const entryColumns = "id, term_id, perspective_id, active_draft_id, created_at, updated_at"

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new entry. Returns domain.ErrAlreadyExists if an entry
// for the (term, perspective) pair already exists, domain.ErrNotFound if
// the term or perspective does not.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("entries").
		Columns("id", "term_id", "perspective_id", "created_at", "updated_at").
		Values(e.ID, e.TermID, e.PerspectiveID, e.CreatedAt, e.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert entry: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "entry", e.ID)
	}

	created := *e
	return &created, nil
}

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error) {
	return r.getOne(ctx, squirrel.Eq{"id": entryID}, entryID)
}

// GetByTermAndPerspective returns the entry for a (term, perspective) pair.
func (r *Repo) GetByTermAndPerspective(ctx context.Context, termID, perspectiveID uuid.UUID) (*domain.Entry, error) {
	return r.getOne(ctx, squirrel.Eq{"term_id": termID, "perspective_id": perspectiveID}, uuid.Nil)
}

// ListByTerm returns all entries for a term, one per perspective.
func (r *Repo) ListByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(entryColumns).
		From("entries").
		Where(squirrel.Eq{"term_id": termID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.TermID, &e.PerspectiveID, &e.ActiveDraftID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, id uuid.UUID) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(entryColumns).
		From("entries").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select entry: %w", err)
	}

	var e domain.Entry
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&e.ID, &e.TermID, &e.PerspectiveID, &e.ActiveDraftID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return &e, nil
}
