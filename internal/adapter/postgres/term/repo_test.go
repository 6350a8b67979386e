package term_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/termweave/glossary-backend/internal/adapter/postgres/term"
	"github.com/termweave/glossary-backend/internal/adapter/postgres/testhelper"
	"github.com/termweave/glossary-backend/internal/domain"
)

func newRepo(t *testing.T) (*term.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return term.New(pool), pool
}

func buildTerm(text string) domain.Term {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Term{
		ID:             uuid.New(),
		Text:           text,
		TextNormalized: domain.NormalizeTermText(text),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	input := buildTerm("Entropy " + uuid.New().String()[:8])

	got, err := repo.Create(ctx, &input)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if got.ID != input.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, input.ID)
	}
}

func TestRepo_Create_DuplicateNormalizedText(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	text := "Quantum Leap " + uuid.New().String()[:8]
	first := buildTerm(text)
	if _, err := repo.Create(ctx, &first); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	// Different surface form, same normalized text.
	second := buildTerm("  " + text + "  ")
	second.TextNormalized = first.TextNormalized

	_, err := repo.Create(ctx, &second)
	assertIsDomainError(t, err, domain.ErrAlreadyExists)
}

// ---------------------------------------------------------------------------
// GetByID / GetByNormalized tests
// ---------------------------------------------------------------------------

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_GetByNormalized_HappyPath(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	input := buildTerm("Liminal Space " + uuid.New().String()[:8])
	created, err := repo.Create(ctx, &input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByNormalized(ctx, created.TextNormalized)
	if err != nil {
		t.Fatalf("GetByNormalized: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, created.ID)
	}
}

// ---------------------------------------------------------------------------
// Derived official flag tests
// ---------------------------------------------------------------------------

func TestRepo_GetByID_IsOfficialDerivedFromPublishedDraft(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedTerm(t, pool, "official-"+uuid.New().String()[:8])
	perspective := testhelper.SeedPerspective(t, pool)
	entry := testhelper.SeedEntry(t, pool, seeded.ID, perspective.ID)
	author := testhelper.SeedUser(t, pool)
	draft := testhelper.SeedDraft(t, pool, entry.ID, author.ID, nil)

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID before publish: %v", err)
	}
	if got.IsOfficial {
		t.Error("term with no published draft must not be official")
	}

	// Mark the draft published directly; the flag must flip on read.
	_, err = pool.Exec(ctx, `UPDATE drafts SET is_published = TRUE WHERE id = $1`, draft.ID)
	if err != nil {
		t.Fatalf("publish draft: %v", err)
	}
	_, err = pool.Exec(ctx, `UPDATE entries SET active_draft_id = $1 WHERE id = $2`, draft.ID, entry.ID)
	if err != nil {
		t.Fatalf("set active draft: %v", err)
	}

	got, err = repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID after publish: %v", err)
	}
	if !got.IsOfficial {
		t.Error("term with a published draft must be official")
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestRepo_List_OrderedByNormalizedText(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	// List shares the table with other parallel tests, so assert ordering
	// rather than exact membership.
	prefix := uuid.New().String()[:8]
	for _, text := range []string{prefix + " zebra", prefix + " apple", prefix + " mango"} {
		input := buildTerm(text)
		if _, err := repo.Create(ctx, &input); err != nil {
			t.Fatalf("Create %q: %v", text, err)
		}
	}

	terms, total, err := repo.List(ctx, 1000, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total < 3 {
		t.Errorf("total: got %d, want at least 3", total)
	}
	for i := 1; i < len(terms); i++ {
		if terms[i].TextNormalized < terms[i-1].TextNormalized {
			t.Errorf("terms not ordered by normalized text at index %d", i)
		}
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
