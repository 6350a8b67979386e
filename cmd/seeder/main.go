// Command seeder populates a development database with a starter set of
// perspectives and directory users. It is intended for local development
// and demo environments, not for production.
//
// Flags:
//
//	--skip-users  seed perspectives only
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/adapter/postgres"
	"github.com/termweave/glossary-backend/internal/adapter/postgres/perspective"
	"github.com/termweave/glossary-backend/internal/adapter/postgres/user"
	"github.com/termweave/glossary-backend/internal/app"
	"github.com/termweave/glossary-backend/internal/config"
	"github.com/termweave/glossary-backend/internal/domain"
)

// Fixed IDs keep repeated runs idempotent: perspectives conflict on name,
// users upsert by primary key.
var perspectives = []domain.Perspective{
	{ID: uuid.MustParse("e3f1a2b4-0001-4000-8000-000000000001"), Name: "Engineering", Description: "How the term is used in engineering and technical design."},
	{ID: uuid.MustParse("e3f1a2b4-0001-4000-8000-000000000002"), Name: "Legal", Description: "Contractual and regulatory meaning of the term."},
	{ID: uuid.MustParse("e3f1a2b4-0001-4000-8000-000000000003"), Name: "Marketing", Description: "Customer-facing usage of the term."},
	{ID: uuid.MustParse("e3f1a2b4-0001-4000-8000-000000000004"), Name: "Operations", Description: "Day-to-day operational meaning of the term."},
}

var users = []domain.User{
	{ID: uuid.MustParse("a7c9d0e2-0002-4000-8000-000000000001"), Username: "alice", Name: "Alice Deverell", IsStaff: true},
	{ID: uuid.MustParse("a7c9d0e2-0002-4000-8000-000000000002"), Username: "bob", Name: "Bob Keller"},
	{ID: uuid.MustParse("a7c9d0e2-0002-4000-8000-000000000003"), Username: "maria", Name: "Maria Santos"},
	{ID: uuid.MustParse("a7c9d0e2-0002-4000-8000-000000000004"), Username: "petr", Name: "Petr Novak"},
}

func main() {
	skipUsersFlag := flag.Bool("skip-users", false, "seed perspectives only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	perspectiveRepo := perspective.New(pool)
	userRepo := user.New(pool)

	now := time.Now().UTC()

	seeded := 0
	for _, p := range perspectives {
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := perspectiveRepo.Create(ctx, &p); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				logger.Debug("perspective already exists", slog.String("name", p.Name))
				continue
			}
			logger.Error("create perspective",
				slog.String("name", p.Name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		seeded++
	}
	logger.Info("perspectives seeded", slog.Int("created", seeded))

	if *skipUsersFlag {
		return
	}

	for _, u := range users {
		u.CreatedAt = now
		u.UpdatedAt = now
		if _, err := userRepo.Upsert(ctx, &u); err != nil {
			logger.Error("upsert user",
				slog.String("username", u.Username),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}
	logger.Info("users seeded", slog.Int("count", len(users)))
}
