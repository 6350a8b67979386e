package glossary

import (
	"context"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	CreateFunc          func(ctx context.Context, term *domain.Term) (*domain.Term, error)
	GetByIDFunc         func(ctx context.Context, termID uuid.UUID) (*domain.Term, error)
	GetByNormalizedFunc func(ctx context.Context, textNormalized string) (*domain.Term, error)
	ListFunc            func(ctx context.Context, limit, offset int) ([]domain.Term, int, error)
}

func (mock *termRepoMock) Create(ctx context.Context, term *domain.Term) (*domain.Term, error) {
	if mock.CreateFunc == nil {
		panic("termRepoMock.CreateFunc: method is nil but termRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, term)
}

func (mock *termRepoMock) GetByID(ctx context.Context, termID uuid.UUID) (*domain.Term, error) {
	if mock.GetByIDFunc == nil {
		panic("termRepoMock.GetByIDFunc: method is nil but termRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, termID)
}

func (mock *termRepoMock) GetByNormalized(ctx context.Context, textNormalized string) (*domain.Term, error) {
	if mock.GetByNormalizedFunc == nil {
		panic("termRepoMock.GetByNormalizedFunc: method is nil but termRepo.GetByNormalized was just called")
	}
	return mock.GetByNormalizedFunc(ctx, textNormalized)
}

func (mock *termRepoMock) List(ctx context.Context, limit, offset int) ([]domain.Term, int, error) {
	if mock.ListFunc == nil {
		panic("termRepoMock.ListFunc: method is nil but termRepo.List was just called")
	}
	return mock.ListFunc(ctx, limit, offset)
}

var _ perspectiveRepo = &perspectiveRepoMock{}

type perspectiveRepoMock struct {
	CreateFunc  func(ctx context.Context, p *domain.Perspective) (*domain.Perspective, error)
	GetByIDFunc func(ctx context.Context, perspectiveID uuid.UUID) (*domain.Perspective, error)
	ListFunc    func(ctx context.Context) ([]domain.Perspective, error)
}

func (mock *perspectiveRepoMock) Create(ctx context.Context, p *domain.Perspective) (*domain.Perspective, error) {
	if mock.CreateFunc == nil {
		panic("perspectiveRepoMock.CreateFunc: method is nil but perspectiveRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, p)
}

func (mock *perspectiveRepoMock) GetByID(ctx context.Context, perspectiveID uuid.UUID) (*domain.Perspective, error) {
	if mock.GetByIDFunc == nil {
		panic("perspectiveRepoMock.GetByIDFunc: method is nil but perspectiveRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, perspectiveID)
}

func (mock *perspectiveRepoMock) List(ctx context.Context) ([]domain.Perspective, error) {
	if mock.ListFunc == nil {
		panic("perspectiveRepoMock.ListFunc: method is nil but perspectiveRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc                  func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	GetByIDFunc                 func(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
	GetByTermAndPerspectiveFunc func(ctx context.Context, termID, perspectiveID uuid.UUID) (*domain.Entry, error)
	ListByTermFunc              func(ctx context.Context, termID uuid.UUID) ([]domain.Entry, error)
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) GetByID(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, entryID)
}

func (mock *entryRepoMock) GetByTermAndPerspective(ctx context.Context, termID, perspectiveID uuid.UUID) (*domain.Entry, error) {
	if mock.GetByTermAndPerspectiveFunc == nil {
		panic("entryRepoMock.GetByTermAndPerspectiveFunc: method is nil but entryRepo.GetByTermAndPerspective was just called")
	}
	return mock.GetByTermAndPerspectiveFunc(ctx, termID, perspectiveID)
}

func (mock *entryRepoMock) ListByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Entry, error) {
	if mock.ListByTermFunc == nil {
		panic("entryRepoMock.ListByTermFunc: method is nil but entryRepo.ListByTerm was just called")
	}
	return mock.ListByTermFunc(ctx, termID)
}
