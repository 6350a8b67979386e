// Package term implements the Term repository using PostgreSQL.
package term

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termweave/glossary-backend/internal/adapter/postgres"
	"github.com/termweave/glossary-backend/internal/domain"
)

// termColumns selects term fields plus the derived official flag: a term
// is official once any of its entries has a published draft.
const termColumns = `t.id, t.text, t.text_normalized, t.created_at, t.updated_at,
	EXISTS (
		SELECT 1 FROM entries e
		WHERE e.term_id = t.id AND e.active_draft_id IS NOT NULL
	) AS is_official`

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new term repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new term and returns the persisted domain.Term.
// Returns domain.ErrAlreadyExists if the normalized text is taken.
func (r *Repo) Create(ctx context.Context, term *domain.Term) (*domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("terms").
		Columns("id", "text", "text_normalized", "created_at", "updated_at").
		Values(term.ID, term.Text, term.TextNormalized, term.CreatedAt, term.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert term: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "term", term.ID)
	}

	created := *term
	return &created, nil
}

// GetByID returns a term by primary key.
func (r *Repo) GetByID(ctx context.Context, termID uuid.UUID) (*domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(termColumns).
		From("terms t").
		Where(squirrel.Eq{"t.id": termID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select term: %w", err)
	}

	var t domain.Term
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&t.ID, &t.Text, &t.TextNormalized, &t.CreatedAt, &t.UpdatedAt, &t.IsOfficial); err != nil {
		return nil, postgres.MapError(err, "term", termID)
	}

	return &t, nil
}

// GetByNormalized returns a term by its normalized text.
func (r *Repo) GetByNormalized(ctx context.Context, textNormalized string) (*domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(termColumns).
		From("terms t").
		Where(squirrel.Eq{"t.text_normalized": textNormalized}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select term by text: %w", err)
	}

	var t domain.Term
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&t.ID, &t.Text, &t.TextNormalized, &t.CreatedAt, &t.UpdatedAt, &t.IsOfficial); err != nil {
		return nil, postgres.MapError(err, "term", uuid.Nil)
	}

	return &t, nil
}

// List returns terms ordered by normalized text with pagination, plus the
// total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Term, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM terms`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count terms: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(termColumns).
		From("terms t").
		OrderBy("t.text_normalized ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list terms: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	var terms []domain.Term
	for rows.Next() {
		var t domain.Term
		if err := rows.Scan(&t.ID, &t.Text, &t.TextNormalized, &t.CreatedAt, &t.UpdatedAt, &t.IsOfficial); err != nil {
			return nil, 0, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate terms: %w", err)
	}

	return terms, total, nil
}
