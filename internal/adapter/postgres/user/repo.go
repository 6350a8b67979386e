// Package user implements the user directory repository using PostgreSQL.
// Records are provisioned by the external identity provider; the core
// reads them for @mention resolution and display.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termweave/glossary-backend/internal/adapter/postgres"
	"github.com/termweave/glossary-backend/internal/domain"
)

const userColumns = "id, username, name, is_staff, created_at, updated_at"

// Repo provides user directory persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert inserts or updates a directory record by ID. Used by the sync
// path from the identity provider and by the seeder.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("users").
		Columns("id", "username", "name", "is_staff", "created_at", "updated_at").
		Values(u.ID, u.Username, u.Name, u.IsStaff, u.CreatedAt, u.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET username = EXCLUDED.username,
			    name = EXCLUDED.name,
			    is_staff = EXCLUDED.is_staff,
			    updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert user: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	saved := *u
	return &saved, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var u domain.User
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&u.ID, &u.Username, &u.Name, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return &u, nil
}

// GetByUsernames returns the users whose usernames appear in the given
// list. Unknown usernames are silently absent from the result.
func (r *Repo) GetByUsernames(ctx context.Context, usernames []string) ([]domain.User, error) {
	if len(usernames) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"username": usernames}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select users by usernames: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select users by usernames: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
