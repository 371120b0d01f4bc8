package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	authapi "github.com/smark-ARK/mind-castle-gql-server/internal/api/auth"
	notesapi "github.com/smark-ARK/mind-castle-gql-server/internal/api/notes"
	"github.com/smark-ARK/mind-castle-gql-server/internal/auth"
	"github.com/smark-ARK/mind-castle-gql-server/internal/config"
	"github.com/smark-ARK/mind-castle-gql-server/internal/repository"
	authuc "github.com/smark-ARK/mind-castle-gql-server/internal/usecase/auth"
	notesuc "github.com/smark-ARK/mind-castle-gql-server/internal/usecase/notes"
	"github.com/smark-ARK/mind-castle-gql-server/migrations"
	"github.com/smark-ARK/mind-castle-gql-server/pkg/database"
	"github.com/smark-ARK/mind-castle-gql-server/pkg/httpserver"
	"github.com/smark-ARK/mind-castle-gql-server/pkg/logger/slogx"
	"github.com/smark-ARK/mind-castle-gql-server/pkg/ratelimit"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stderr, cfg.App.LogLevel, cfg.App.Pretty); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	pool, err := database.NewPGX(ctx, database.NewOptions(
		net.JoinHostPort(cfg.Database.Host, cfg.Database.Port),
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		database.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init pgx pool: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
		return fmt.Errorf("migrate database: %v", err)
	}

	db := database.NewDatabase(pool)
	repo := repository.New(db)

	notesUsecase, err := notesuc.New(notesuc.NewOptions(repo, repo, repo, db))
	if err != nil {
		return fmt.Errorf("init notes usecase: %v", err)
	}

	tokens := auth.NewTokens(
		cfg.Auth.SecretKey,
		cfg.Auth.RefreshSecretKey,
		cfg.Auth.AccessExpire,
		cfg.Auth.RefreshExpire,
	)

	authUsecase, err := authuc.New(authuc.NewOptions(repo, tokens))
	if err != nil {
		return fmt.Errorf("init auth usecase: %v", err)
	}

	// Note routes sit behind the bearer middleware; auth routes stay open.
	protected := http.NewServeMux()
	notesapi.New(notesUsecase).Routes(protected)
	guarded := tokens.Middleware(protected)

	mux := http.NewServeMux()
	authapi.New(authUsecase).Routes(mux)
	mux.Handle("/api/notes", guarded)
	mux.Handle("/api/notes/", guarded)
	mux.Handle("/api/shared-notes", guarded)

	bucket := ratelimit.NewBucket(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)

	srv, err := httpserver.New(httpserver.NewOptions(
		cfg.HTTP.Addr,
		mux,
		httpserver.WithMiddlewares([]func(http.Handler) http.Handler{
			slogx.LoggingMiddleware,
			bucket.Middleware,
		}),
		httpserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
