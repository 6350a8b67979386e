package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/pkg/ctxutil"
)

// Inbox is one page of a user's notifications.
type Inbox struct {
	Notifications []domain.Notification
	Total         int
	UnreadCount   int
}

// List returns a page of the acting user's inbox, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*Inbox, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Limit == 0 {
		input.Limit = DefaultListLimit
	}

	notifications, total, err := s.notifications.ListByRecipient(ctx,
		identity.UserID, input.UnreadOnly, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	unread, err := s.notifications.CountUnread(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}

	return &Inbox{
		Notifications: notifications,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

// MarkRead flips one notification to read. Fails with domain.ErrForbidden
// when the notification belongs to someone else.
func (s *Service) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	identity, err := s.authorizeRecipient(ctx, notificationID)
	if err != nil {
		return err
	}
	if err := s.notifications.MarkRead(ctx, notificationID, identity.UserID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// MarkAllRead flips every unread notification of the acting user and
// returns how many were flipped.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	changed, err := s.notifications.MarkAllRead(ctx, identity.UserID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	s.log.InfoContext(ctx, "inbox marked read",
		slog.String("user_id", identity.UserID.String()),
		slog.Int("changed", changed),
	)
	return changed, nil
}

// Dismiss deletes one notification. Same recipient scoping as MarkRead;
// dismissal is the only way a notification row is removed.
func (s *Service) Dismiss(ctx context.Context, notificationID uuid.UUID) error {
	identity, err := s.authorizeRecipient(ctx, notificationID)
	if err != nil {
		return err
	}
	if err := s.notifications.Delete(ctx, notificationID, identity.UserID); err != nil {
		return fmt.Errorf("dismiss notification: %w", err)
	}
	return nil
}

// authorizeRecipient loads the notification and verifies the acting user
// owns it.
func (s *Service) authorizeRecipient(ctx context.Context, notificationID uuid.UUID) (domain.Identity, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	if notificationID == uuid.Nil {
		return domain.Identity{}, domain.NewValidationError("notification_id", "required")
	}

	n, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("get notification: %w", err)
	}
	if n.RecipientUserID != identity.UserID {
		return domain.Identity{}, fmt.Errorf("notification %s: %w", notificationID, domain.ErrForbidden)
	}
	return identity, nil
}
