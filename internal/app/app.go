// Package app assembles the service: configuration, logger, database
// pool, repositories, services, HTTP transport, and lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/termweave/glossary-backend/internal/adapter/postgres"
	commentrepo "github.com/termweave/glossary-backend/internal/adapter/postgres/comment"
	draftrepo "github.com/termweave/glossary-backend/internal/adapter/postgres/draft"
	entryrepo "github.com/termweave/glossary-backend/internal/adapter/postgres/entry"
	notificationrepo "github.com/termweave/glossary-backend/internal/adapter/postgres/notification"
	perspectiverepo "github.com/termweave/glossary-backend/internal/adapter/postgres/perspective"
	termrepo "github.com/termweave/glossary-backend/internal/adapter/postgres/term"
	userrepo "github.com/termweave/glossary-backend/internal/adapter/postgres/user"
	"github.com/termweave/glossary-backend/internal/auth"
	"github.com/termweave/glossary-backend/internal/config"
	"github.com/termweave/glossary-backend/internal/content"
	commentsvc "github.com/termweave/glossary-backend/internal/service/comment"
	draftsvc "github.com/termweave/glossary-backend/internal/service/draft"
	glossarysvc "github.com/termweave/glossary-backend/internal/service/glossary"
	notificationsvc "github.com/termweave/glossary-backend/internal/service/notification"
	"github.com/termweave/glossary-backend/internal/transport/middleware"
	"github.com/termweave/glossary-backend/internal/transport/rest"
)

// Run starts the application and blocks until the context is cancelled,
// then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	terms := termrepo.New(pool)
	perspectives := perspectiverepo.New(pool)
	entries := entryrepo.New(pool)
	drafts := draftrepo.New(pool)
	comments := commentrepo.New(pool)
	notifications := notificationrepo.New(pool)
	users := userrepo.New(pool)

	processor := content.NewProcessor()

	notificationService := notificationsvc.NewService(logger, notifications, users)
	glossaryService := glossarysvc.NewService(logger, terms, perspectives, entries)
	draftService := draftsvc.NewService(logger, draftsvc.Config{
		MinApprovals:           cfg.Glossary.MinApprovals,
		MaxContentLength:       cfg.Glossary.MaxContentLength,
		MaxReviewersPerRequest: cfg.Glossary.MaxReviewersPerRequest,
	}, drafts, entries, comments, processor, notificationService, txManager)
	commentService := commentsvc.NewService(logger, commentsvc.Config{
		MaxCommentLength: cfg.Glossary.MaxCommentLength,
	}, comments, drafts, entries, processor, notificationService, txManager)

	verifier := auth.NewVerifier(cfg.Auth)

	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Glossary:     rest.NewGlossaryHandler(glossaryService, logger),
		Draft:        rest.NewDraftHandler(draftService, logger),
		Comment:      rest.NewCommentHandler(commentService, logger),
		Notification: rest.NewNotificationHandler(notificationService, logger),
	})

	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(verifier),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		chain = append(chain, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	handler := middleware.Chain(chain...)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
