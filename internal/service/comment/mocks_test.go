package comment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc                 func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByIDFunc                func(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	ListTopLevelByDraftIDsFunc func(ctx context.Context, draftIDs []uuid.UUID) ([]domain.Comment, error)
	ListRepliesByParentIDsFunc func(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error)
	SetResolvedFunc            func(ctx context.Context, commentID uuid.UUID, resolved bool) (*domain.Comment, error)
	UpdateTextFunc             func(ctx context.Context, commentID uuid.UUID, text string, editedAt time.Time) (*domain.Comment, error)
	ToggleReactionFunc         func(ctx context.Context, commentID, userID uuid.UUID) (*domain.Comment, error)
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, commentID)
}

func (mock *commentRepoMock) ListTopLevelByDraftIDs(ctx context.Context, draftIDs []uuid.UUID) ([]domain.Comment, error) {
	if mock.ListTopLevelByDraftIDsFunc == nil {
		panic("commentRepoMock.ListTopLevelByDraftIDsFunc: method is nil but commentRepo.ListTopLevelByDraftIDs was just called")
	}
	return mock.ListTopLevelByDraftIDsFunc(ctx, draftIDs)
}

func (mock *commentRepoMock) ListRepliesByParentIDs(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Comment, error) {
	if mock.ListRepliesByParentIDsFunc == nil {
		panic("commentRepoMock.ListRepliesByParentIDsFunc: method is nil but commentRepo.ListRepliesByParentIDs was just called")
	}
	return mock.ListRepliesByParentIDsFunc(ctx, parentIDs)
}

func (mock *commentRepoMock) SetResolved(ctx context.Context, commentID uuid.UUID, resolved bool) (*domain.Comment, error) {
	if mock.SetResolvedFunc == nil {
		panic("commentRepoMock.SetResolvedFunc: method is nil but commentRepo.SetResolved was just called")
	}
	return mock.SetResolvedFunc(ctx, commentID, resolved)
}

func (mock *commentRepoMock) UpdateText(ctx context.Context, commentID uuid.UUID, text string, editedAt time.Time) (*domain.Comment, error) {
	if mock.UpdateTextFunc == nil {
		panic("commentRepoMock.UpdateTextFunc: method is nil but commentRepo.UpdateText was just called")
	}
	return mock.UpdateTextFunc(ctx, commentID, text, editedAt)
}

func (mock *commentRepoMock) ToggleReaction(ctx context.Context, commentID, userID uuid.UUID) (*domain.Comment, error) {
	if mock.ToggleReactionFunc == nil {
		panic("commentRepoMock.ToggleReactionFunc: method is nil but commentRepo.ToggleReaction was just called")
	}
	return mock.ToggleReactionFunc(ctx, commentID, userID)
}

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	GetByIDFunc          func(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	GetLatestByEntryFunc func(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error)
	GetHistoryFunc       func(ctx context.Context, entryID uuid.UUID) ([]domain.Draft, error)
}

func (mock *draftRepoMock) GetByID(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error) {
	if mock.GetByIDFunc == nil {
		panic("draftRepoMock.GetByIDFunc: method is nil but draftRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, draftID)
}

func (mock *draftRepoMock) GetLatestByEntry(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error) {
	if mock.GetLatestByEntryFunc == nil {
		panic("draftRepoMock.GetLatestByEntryFunc: method is nil but draftRepo.GetLatestByEntry was just called")
	}
	return mock.GetLatestByEntryFunc(ctx, entryID)
}

func (mock *draftRepoMock) GetHistory(ctx context.Context, entryID uuid.UUID) ([]domain.Draft, error) {
	if mock.GetHistoryFunc == nil {
		panic("draftRepoMock.GetHistoryFunc: method is nil but draftRepo.GetHistory was just called")
	}
	return mock.GetHistoryFunc(ctx, entryID)
}

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDFunc func(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
}

func (mock *entryRepoMock) GetByID(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, entryID)
}

var _ renderer = &rendererMock{}

// rendererMock passes text through unchanged unless its funcs are set.
// RenderMarkdown wraps the text in <p> tags so tests can tell rendered
// output from the raw body.
type rendererMock struct {
	SanitizeFunc       func(s string) string
	RenderMarkdownFunc func(md string) (string, error)
}

func (mock *rendererMock) Sanitize(s string) string {
	if mock.SanitizeFunc == nil {
		return s
	}
	return mock.SanitizeFunc(s)
}

func (mock *rendererMock) RenderMarkdown(md string) (string, error) {
	if mock.RenderMarkdownFunc == nil {
		return "<p>" + md + "</p>", nil
	}
	return mock.RenderMarkdownFunc(md)
}

var _ notifier = &notifierMock{}

// notifierMock records dispatched events for assertions.
type notifierMock struct {
	mu sync.Mutex

	added []struct {
		Comment            *domain.Comment
		DraftAuthorID      uuid.UUID
		ParentAuthorID     *uuid.UUID
		MentionedUsernames []string
	}
}

func (mock *notifierMock) CommentAdded(ctx context.Context, c *domain.Comment, draftAuthorID uuid.UUID, parentAuthorID *uuid.UUID, mentionedUsernames []string) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.added = append(mock.added, struct {
		Comment            *domain.Comment
		DraftAuthorID      uuid.UUID
		ParentAuthorID     *uuid.UUID
		MentionedUsernames []string
	}{c, draftAuthorID, parentAuthorID, mentionedUsernames})
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
