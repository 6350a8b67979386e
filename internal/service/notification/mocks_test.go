package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

// notificationRepoMock records created notifications; the remaining
// methods delegate to optional funcs and panic when an unset one is hit.
type notificationRepoMock struct {
	mu      sync.Mutex
	created []domain.Notification

	CreateFunc          func(ctx context.Context, n *domain.Notification) error
	GetByIDFunc         func(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error)
	ListByRecipientFunc func(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, int, error)
	CountUnreadFunc     func(ctx context.Context, recipientID uuid.UUID) (int, error)
	MarkReadFunc        func(ctx context.Context, notificationID, recipientID uuid.UUID) error
	MarkAllReadFunc     func(ctx context.Context, recipientID uuid.UUID) (int, error)
	DeleteFunc          func(ctx context.Context, notificationID, recipientID uuid.UUID) error
}

func (mock *notificationRepoMock) Create(ctx context.Context, n *domain.Notification) error {
	if mock.CreateFunc != nil {
		return mock.CreateFunc(ctx, n)
	}
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.created = append(mock.created, *n)
	return nil
}

func (mock *notificationRepoMock) Created() []domain.Notification {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	out := make([]domain.Notification, len(mock.created))
	copy(out, mock.created)
	return out
}

func (mock *notificationRepoMock) GetByID(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error) {
	if mock.GetByIDFunc == nil {
		panic("notificationRepoMock.GetByIDFunc: method is nil but notificationRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, notificationID)
}

func (mock *notificationRepoMock) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, int, error) {
	if mock.ListByRecipientFunc == nil {
		panic("notificationRepoMock.ListByRecipientFunc: method is nil but notificationRepo.ListByRecipient was just called")
	}
	return mock.ListByRecipientFunc(ctx, recipientID, unreadOnly, limit, offset)
}

func (mock *notificationRepoMock) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("notificationRepoMock.CountUnreadFunc: method is nil but notificationRepo.CountUnread was just called")
	}
	return mock.CountUnreadFunc(ctx, recipientID)
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, notificationID, recipientID uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	return mock.MarkReadFunc(ctx, notificationID, recipientID)
}

func (mock *notificationRepoMock) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationRepoMock.MarkAllReadFunc: method is nil but notificationRepo.MarkAllRead was just called")
	}
	return mock.MarkAllReadFunc(ctx, recipientID)
}

func (mock *notificationRepoMock) Delete(ctx context.Context, notificationID, recipientID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("notificationRepoMock.DeleteFunc: method is nil but notificationRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, notificationID, recipientID)
}

var _ userRepo = &userRepoMock{}

// userRepoMock resolves usernames from a fixed directory.
type userRepoMock struct {
	GetByUsernamesFunc func(ctx context.Context, usernames []string) ([]domain.User, error)
}

func (mock *userRepoMock) GetByUsernames(ctx context.Context, usernames []string) ([]domain.User, error) {
	if mock.GetByUsernamesFunc == nil {
		panic("userRepoMock.GetByUsernamesFunc: method is nil but userRepo.GetByUsernames was just called")
	}
	return mock.GetByUsernamesFunc(ctx, usernames)
}

// directoryOf returns a userRepoMock resolving exactly the given users.
func directoryOf(users ...domain.User) *userRepoMock {
	return &userRepoMock{
		GetByUsernamesFunc: func(ctx context.Context, usernames []string) ([]domain.User, error) {
			var matched []domain.User
			for _, name := range usernames {
				for _, u := range users {
					if u.Username == name {
						matched = append(matched, u)
					}
				}
			}
			return matched, nil
		},
	}
}
