package entry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termweave/glossary-backend/internal/adapter/postgres/entry"
	"github.com/termweave/glossary-backend/internal/adapter/postgres/testhelper"
	"github.com/termweave/glossary-backend/internal/domain"
)

func newRepo(t *testing.T) (*entry.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return entry.New(pool), pool
}

func buildEntry(termID, perspectiveID uuid.UUID) domain.Entry {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Entry{
		ID:            uuid.New(),
		TermID:        termID,
		PerspectiveID: perspectiveID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	term := testhelper.SeedTerm(t, pool, "entry-create-"+uuid.New().String()[:8])
	perspective := testhelper.SeedPerspective(t, pool)

	input := buildEntry(term.ID, perspective.ID)
	got, err := repo.Create(ctx, &input)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if got.ID != input.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, input.ID)
	}
	if got.ActiveDraftID != nil {
		t.Error("new entry must have no active draft")
	}
}

func TestRepo_Create_DuplicatePair(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	term := testhelper.SeedTerm(t, pool, "entry-dup-"+uuid.New().String()[:8])
	perspective := testhelper.SeedPerspective(t, pool)

	first := buildEntry(term.ID, perspective.ID)
	if _, err := repo.Create(ctx, &first); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	second := buildEntry(term.ID, perspective.ID)
	_, err := repo.Create(ctx, &second)
	assertIsDomainError(t, err, domain.ErrAlreadyExists)
}

func TestRepo_Create_UnknownTerm(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	perspective := testhelper.SeedPerspective(t, pool)

	input := buildEntry(uuid.New(), perspective.ID)
	_, err := repo.Create(ctx, &input)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Get tests
// ---------------------------------------------------------------------------

func TestRepo_GetByTermAndPerspective_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	term := testhelper.SeedTerm(t, pool, "entry-pair-"+uuid.New().String()[:8])
	perspective := testhelper.SeedPerspective(t, pool)
	seeded := testhelper.SeedEntry(t, pool, term.ID, perspective.ID)

	got, err := repo.GetByTermAndPerspective(ctx, term.ID, perspective.ID)
	if err != nil {
		t.Fatalf("GetByTermAndPerspective: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, seeded.ID)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// ListByTerm tests
// ---------------------------------------------------------------------------

func TestRepo_ListByTerm_OnePerPerspective(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	term := testhelper.SeedTerm(t, pool, "entry-list-"+uuid.New().String()[:8])
	first := testhelper.SeedPerspective(t, pool)
	second := testhelper.SeedPerspective(t, pool)
	testhelper.SeedEntry(t, pool, term.ID, first.ID)
	testhelper.SeedEntry(t, pool, term.ID, second.ID)

	entries, err := repo.ListByTerm(ctx, term.ID)
	if err != nil {
		t.Fatalf("ListByTerm: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].PerspectiveID == entries[1].PerspectiveID {
		t.Error("entries must belong to distinct perspectives")
	}
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
