// Package notification implements the notification inbox repository
// using PostgreSQL.
package notification

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termweave/glossary-backend/internal/adapter/postgres"
	"github.com/termweave/glossary-backend/internal/domain"
)

const notificationColumns = "id, recipient_user_id, type, message, related_draft_id, related_comment_id, is_read, created_at"

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new notification row.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("notifications").
		Columns("id", "recipient_user_id", "type", "message", "related_draft_id", "related_comment_id", "is_read", "created_at").
		Values(n.ID, n.RecipientUserID, n.Type, n.Message, n.RelatedDraftID, n.RelatedCommentID, n.IsRead, n.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert notification: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}

	return nil
}

// GetByID returns a notification by primary key.
func (r *Repo) GetByID(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(notificationColumns).
		From("notifications").
		Where(squirrel.Eq{"id": notificationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select notification: %w", err)
	}

	var n domain.Notification
	err = q.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.RecipientUserID, &n.Type, &n.Message,
		&n.RelatedDraftID, &n.RelatedCommentID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "notification", notificationID)
	}

	return &n, nil
}

// ListByRecipient returns the recipient's notifications newest-first,
// optionally restricted to unread ones, with the total count matching
// the filter.
func (r *Repo) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"recipient_user_id": recipientID}}
	if unreadOnly {
		where = append(where, squirrel.Eq{"is_read": false})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("COUNT(*)").
		From("notifications").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count notifications: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(notificationColumns).
		From("notifications").
		Where(where).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list notifications: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.RecipientUserID, &n.Type, &n.Message,
			&n.RelatedDraftID, &n.RelatedCommentID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate notifications: %w", err)
	}

	return notifications, total, nil
}

// CountUnread returns the recipient's unread notification count.
func (r *Repo) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_user_id = $1 AND is_read = FALSE`,
		recipientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead marks a single notification as read, scoped to the
// recipient so one user cannot flip another user's inbox.
func (r *Repo) MarkRead(ctx context.Context, notificationID, recipientID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_user_id = $2`,
		notificationID, recipientID)
	if err != nil {
		return postgres.MapError(err, "notification", notificationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
	}

	return nil
}

// MarkAllRead marks every unread notification of the recipient as read
// and returns how many rows changed.
func (r *Repo) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE recipient_user_id = $1 AND is_read = FALSE`,
		recipientID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// Delete removes a notification, scoped to the recipient.
func (r *Repo) Delete(ctx context.Context, notificationID, recipientID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND recipient_user_id = $2`,
		notificationID, recipientID)
	if err != nil {
		return postgres.MapError(err, "notification", notificationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
	}

	return nil
}
