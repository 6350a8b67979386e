// Package notification turns lifecycle and comment events into per-user
// inbox rows and serves the inbox itself. Dispatch is synchronous with
// the triggering action but best effort: a failed insert is logged and
// dropped, never surfaced to the caller.
package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, int, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, notificationID, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error)
	Delete(ctx context.Context, notificationID, recipientID uuid.UUID) error
}

type userRepo interface {
	GetByUsernames(ctx context.Context, usernames []string) ([]domain.User, error)
}

const (
	// DefaultListLimit applies when a list request carries no limit.
	DefaultListLimit = 50
	// MaxListLimit caps a single inbox page.
	MaxListLimit = 200
)

// Service dispatches notifications and serves the per-user inbox.
type Service struct {
	notifications notificationRepo
	users         userRepo
	log           *slog.Logger
}

// NewService creates a new notification service.
func NewService(log *slog.Logger, notifications notificationRepo, users userRepo) *Service {
	return &Service{
		notifications: notifications,
		users:         users,
		log:           log.With("service", "notification"),
	}
}
