package draft

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	GetByIDFunc          func(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	GetLatestByEntryFunc func(ctx context.Context, entryID uuid.UUID) (*domain.Draft, error)
	GetHistoryFunc       func(ctx context.Context, entryID uuid.UUID) ([]domain.Draft, error)
	CreateFunc           func(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
	AddApproverFunc      func(ctx context.Context, draftID, userID uuid.UUID) error
	PublishFunc          func(ctx context.Context, draftID uuid.UUID, minApprovals int) (*domain.Draft, *domain.Entry, error)
	ReplaceReviewersFunc func(ctx context.Context, draftID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error)
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

func (mock *draftRepoMock) Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	if mock.CreateFunc == nil {
		panic("draftRepoMock.CreateFunc: method is nil but draftRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, d)
}

func (mock *draftRepoMock) AddApprover(ctx context.Context, draftID, userID uuid.UUID) error {
	if mock.AddApproverFunc == nil {
		panic("draftRepoMock.AddApproverFunc: method is nil but draftRepo.AddApprover was just called")
	}
	return mock.AddApproverFunc(ctx, draftID, userID)
}

func (mock *draftRepoMock) Publish(ctx context.Context, draftID uuid.UUID, minApprovals int) (*domain.Draft, *domain.Entry, error) {
	if mock.PublishFunc == nil {
		panic("draftRepoMock.PublishFunc: method is nil but draftRepo.Publish was just called")
	}
	return mock.PublishFunc(ctx, draftID, minApprovals)
}

func (mock *draftRepoMock) ReplaceReviewers(ctx context.Context, draftID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error) {
	if mock.ReplaceReviewersFunc == nil {
		panic("draftRepoMock.ReplaceReviewersFunc: method is nil but draftRepo.ReplaceReviewers was just called")
	}
	return mock.ReplaceReviewersFunc(ctx, draftID, userIDs)
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

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	DistinctAuthorIDsFunc func(ctx context.Context, draftIDs []uuid.UUID) ([]uuid.UUID, error)
}

func (mock *commentRepoMock) DistinctAuthorIDs(ctx context.Context, draftIDs []uuid.UUID) ([]uuid.UUID, error) {
	if mock.DistinctAuthorIDsFunc == nil {
		panic("commentRepoMock.DistinctAuthorIDsFunc: method is nil but commentRepo.DistinctAuthorIDs was just called")
	}
	return mock.DistinctAuthorIDsFunc(ctx, draftIDs)
}

var _ sanitizer = &sanitizerMock{}

// sanitizerMock passes content through unchanged unless SanitizeFunc is set.
type sanitizerMock struct {
	SanitizeFunc func(s string) string
}

func (mock *sanitizerMock) Sanitize(s string) string {
	if mock.SanitizeFunc == nil {
		return s
	}
	return mock.SanitizeFunc(s)
}

var _ notifier = &notifierMock{}

// notifierMock records dispatched events for assertions.
type notifierMock struct {
	mu sync.Mutex

	approved []struct {
		Draft      *domain.Draft
		ApproverID uuid.UUID
	}
	published []struct {
		Draft        *domain.Draft
		PublisherID  uuid.UUID
		CommenterIDs []uuid.UUID
	}
	edited []struct {
		NewDraft           *domain.Draft
		SupersededAuthorID uuid.UUID
	}
	reviewRequested []struct {
		Draft       *domain.Draft
		RequesterID uuid.UUID
		ReviewerIDs []uuid.UUID
	}
}

func (mock *notifierMock) DraftApproved(ctx context.Context, draft *domain.Draft, approverID uuid.UUID) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.approved = append(mock.approved, struct {
		Draft      *domain.Draft
		ApproverID uuid.UUID
	}{draft, approverID})
}

func (mock *notifierMock) DraftPublished(ctx context.Context, draft *domain.Draft, publisherID uuid.UUID, commenterIDs []uuid.UUID) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.published = append(mock.published, struct {
		Draft        *domain.Draft
		PublisherID  uuid.UUID
		CommenterIDs []uuid.UUID
	}{draft, publisherID, commenterIDs})
}

func (mock *notifierMock) DraftEdited(ctx context.Context, newDraft *domain.Draft, supersededAuthorID uuid.UUID) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.edited = append(mock.edited, struct {
		NewDraft           *domain.Draft
		SupersededAuthorID uuid.UUID
	}{newDraft, supersededAuthorID})
}

func (mock *notifierMock) ReviewRequested(ctx context.Context, draft *domain.Draft, requesterID uuid.UUID, reviewerIDs []uuid.UUID) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	mock.reviewRequested = append(mock.reviewRequested, struct {
		Draft       *domain.Draft
		RequesterID uuid.UUID
		ReviewerIDs []uuid.UUID
	}{draft, requesterID, reviewerIDs})
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
