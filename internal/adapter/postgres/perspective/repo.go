// Package perspective implements the Perspective repository using PostgreSQL.
package perspective

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termweave/glossary-backend/internal/adapter/postgres"
	"github.com/termweave/glossary-backend/internal/domain"
)

const perspectiveColumns = "id, name, description, created_at, updated_at"

// Repo provides perspective persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new perspective repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new perspective. Returns domain.ErrAlreadyExists if the
// name is taken.
func (r *Repo) Create(ctx context.Context, p *domain.Perspective) (*domain.Perspective, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("perspectives").
		Columns("id", "name", "description", "created_at", "updated_at").
		Values(p.ID, p.Name, p.Description, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert perspective: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "perspective", p.ID)
	}

	created := *p
	return &created, nil
}

// GetByID returns a perspective by primary key.
func (r *Repo) GetByID(ctx context.Context, perspectiveID uuid.UUID) (*domain.Perspective, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(perspectiveColumns).
		From("perspectives").
		Where(squirrel.Eq{"id": perspectiveID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select perspective: %w", err)
	}

	var p domain.Perspective
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "perspective", perspectiveID)
	}

	return &p, nil
}

// List returns all perspectives ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Perspective, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(perspectiveColumns).
		From("perspectives").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list perspectives: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list perspectives: %w", err)
	}
	defer rows.Close()

	var perspectives []domain.Perspective
	for rows.Next() {
		var p domain.Perspective
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan perspective: %w", err)
		}
		perspectives = append(perspectives, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate perspectives: %w", err)
	}

	return perspectives, nil
}
