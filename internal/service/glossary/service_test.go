package glossary

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
	"github.com/termweave/glossary-backend/pkg/ctxutil"
)

// newTestService creates a Service with the given mocks and a default logger.
func newTestService(t *testing.T, terms *termRepoMock, perspectives *perspectiveRepoMock, entries *entryRepoMock) *Service {
	t.Helper()
	if terms == nil {
		terms = &termRepoMock{}
	}
	if perspectives == nil {
		perspectives = &perspectiveRepoMock{}
	}
	if entries == nil {
		entries = &entryRepoMock{}
	}
	return NewService(slog.Default(), terms, perspectives, entries)
}

func authedCtx(identity domain.Identity) context.Context {
	return ctxutil.WithIdentity(context.Background(), identity)
}

func memberIdentity() domain.Identity {
	return domain.Identity{UserID: uuid.New()}
}

func staffIdentity() domain.Identity {
	return domain.Identity{UserID: uuid.New(), IsStaff: true}
}

// ---------------------------------------------------------------------------
// CreateTerm tests
// ---------------------------------------------------------------------------

func TestCreateTerm_Success(t *testing.T) {
	t.Parallel()

	terms := &termRepoMock{
		CreateFunc: func(ctx context.Context, term *domain.Term) (*domain.Term, error) {
			created := *term
			return &created, nil
		},
	}
	svc := newTestService(t, terms, nil, nil)

	got, err := svc.CreateTerm(authedCtx(memberIdentity()), CreateTermInput{Text: "  Quantum   Entanglement  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Text != "Quantum   Entanglement" {
		t.Errorf("Text: got %q, want trimmed original", got.Text)
	}
	if got.TextNormalized != "quantum entanglement" {
		t.Errorf("TextNormalized: got %q, want %q", got.TextNormalized, "quantum entanglement")
	}
}

func TestCreateTerm_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil, nil)

	_, err := svc.CreateTerm(context.Background(), CreateTermInput{Text: "orphan"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCreateTerm_EmptyText(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil, nil)

	_, err := svc.CreateTerm(authedCtx(memberIdentity()), CreateTermInput{Text: "   "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateTerm_TooLong(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil, nil)

	_, err := svc.CreateTerm(authedCtx(memberIdentity()), CreateTermInput{Text: strings.Repeat("x", 501)})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateTerm_DuplicateNormalized(t *testing.T) {
	t.Parallel()

	terms := &termRepoMock{
		CreateFunc: func(ctx context.Context, term *domain.Term) (*domain.Term, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	svc := newTestService(t, terms, nil, nil)

	_, err := svc.CreateTerm(authedCtx(memberIdentity()), CreateTermInput{Text: "taken"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// CreatePerspective tests
// ---------------------------------------------------------------------------

func TestCreatePerspective_Success(t *testing.T) {
	t.Parallel()

	perspectives := &perspectiveRepoMock{
		CreateFunc: func(ctx context.Context, p *domain.Perspective) (*domain.Perspective, error) {
			created := *p
			return &created, nil
		},
	}
	svc := newTestService(t, nil, perspectives, nil)

	got, err := svc.CreatePerspective(authedCtx(staffIdentity()), CreatePerspectiveInput{
		Name:        "Physics",
		Description: "Physical sciences viewpoint",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Physics" {
		t.Errorf("Name: got %q, want %q", got.Name, "Physics")
	}
}

func TestCreatePerspective_NonStaffForbidden(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil, nil)

	_, err := svc.CreatePerspective(authedCtx(memberIdentity()), CreatePerspectiveInput{Name: "Physics"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreatePerspective_EmptyName(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil, nil)

	_, err := svc.CreatePerspective(authedCtx(staffIdentity()), CreatePerspectiveInput{Name: ""})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// CreateEntry tests
// ---------------------------------------------------------------------------

func TestCreateEntry_Success(t *testing.T) {
	t.Parallel()

	termID := uuid.New()
	perspectiveID := uuid.New()

	terms := &termRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
			return &domain.Term{ID: id}, nil
		},
	}
	perspectives := &perspectiveRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Perspective, error) {
			return &domain.Perspective{ID: id}, nil
		},
	}
	entries := &entryRepoMock{
		CreateFunc: func(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
			created := *e
			return &created, nil
		},
	}
	svc := newTestService(t, terms, perspectives, entries)

	got, err := svc.CreateEntry(authedCtx(memberIdentity()), CreateEntryInput{
		TermID:        termID,
		PerspectiveID: perspectiveID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TermID != termID || got.PerspectiveID != perspectiveID {
		t.Errorf("entry binding: got (%s, %s), want (%s, %s)",
			got.TermID, got.PerspectiveID, termID, perspectiveID)
	}
	if got.ActiveDraftID != nil {
		t.Error("new entry must have no active draft")
	}
}

func TestCreateEntry_DuplicatePair(t *testing.T) {
	t.Parallel()

	terms := &termRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
			return &domain.Term{ID: id}, nil
		},
	}
	perspectives := &perspectiveRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Perspective, error) {
			return &domain.Perspective{ID: id}, nil
		},
	}
	entries := &entryRepoMock{
		CreateFunc: func(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	svc := newTestService(t, terms, perspectives, entries)

	_, err := svc.CreateEntry(authedCtx(memberIdentity()), CreateEntryInput{
		TermID:        uuid.New(),
		PerspectiveID: uuid.New(),
	})
	if !errors.Is(err, domain.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("ErrDuplicateEntry should unwrap to ErrConflict, got %v", err)
	}
}

func TestCreateEntry_TermNotFound(t *testing.T) {
	t.Parallel()

	terms := &termRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(t, terms, nil, nil)

	_, err := svc.CreateEntry(authedCtx(memberIdentity()), CreateEntryInput{
		TermID:        uuid.New(),
		PerspectiveID: uuid.New(),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateEntry_MissingIDs(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil, nil)

	_, err := svc.CreateEntry(authedCtx(memberIdentity()), CreateEntryInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLookupEntry_ByTermAndPerspective(t *testing.T) {
	t.Parallel()

	termID := uuid.New()
	perspectiveID := uuid.New()
	want := &domain.Entry{ID: uuid.New(), TermID: termID, PerspectiveID: perspectiveID}

	entries := &entryRepoMock{
		GetByTermAndPerspectiveFunc: func(ctx context.Context, tID, pID uuid.UUID) (*domain.Entry, error) {
			if tID != termID || pID != perspectiveID {
				t.Errorf("lookup pair = (%s, %s), want (%s, %s)", tID, pID, termID, perspectiveID)
			}
			return want, nil
		},
	}
	svc := newTestService(t, nil, nil, entries)

	got, err := svc.LookupEntry(context.Background(), termID, perspectiveID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("entry ID: got %s, want %s", got.ID, want.ID)
	}
}

func TestLookupEntry_NotFound(t *testing.T) {
	t.Parallel()

	entries := &entryRepoMock{
		GetByTermAndPerspectiveFunc: func(ctx context.Context, tID, pID uuid.UUID) (*domain.Entry, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(t, nil, nil, entries)

	_, err := svc.LookupEntry(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListTerms tests
// ---------------------------------------------------------------------------

func TestListTerms_DefaultLimit(t *testing.T) {
	t.Parallel()

	var gotLimit int
	terms := &termRepoMock{
		ListFunc: func(ctx context.Context, limit, offset int) ([]domain.Term, int, error) {
			gotLimit = limit
			return []domain.Term{}, 0, nil
		},
	}
	svc := newTestService(t, terms, nil, nil)

	if _, _, err := svc.ListTerms(context.Background(), ListTermsInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != DefaultListLimit {
		t.Errorf("limit: got %d, want %d", gotLimit, DefaultListLimit)
	}
}

func TestListTerms_NegativeOffset(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, nil, nil)

	_, _, err := svc.ListTerms(context.Background(), ListTermsInput{Offset: -1})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListTerms_OfficialFlagPassedThrough(t *testing.T) {
	t.Parallel()

	terms := &termRepoMock{
		ListFunc: func(ctx context.Context, limit, offset int) ([]domain.Term, int, error) {
			return []domain.Term{
				{ID: uuid.New(), Text: "a", IsOfficial: true, CreatedAt: time.Now()},
				{ID: uuid.New(), Text: "b", IsOfficial: false, CreatedAt: time.Now()},
			}, 2, nil
		},
	}
	svc := newTestService(t, terms, nil, nil)

	got, total, err := svc.ListTerms(context.Background(), ListTermsInput{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("got %d items, total %d, want 2/2", len(got), total)
	}
	if !got[0].IsOfficial || got[1].IsOfficial {
		t.Error("IsOfficial flags not preserved")
	}
}
