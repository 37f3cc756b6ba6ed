package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres"
	assignmentrepo "github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres/assignment"
	auditrepo "github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres/audit"
	exchangerepo "github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres/exchange"
	participantrepo "github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres/participant"
	userrepo "github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres/user"
	wishlistrepo "github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres/wishlist"
	"github.com/heartmarshall/secret-santa-backend/internal/auth"
	"github.com/heartmarshall/secret-santa-backend/internal/config"
	"github.com/heartmarshall/secret-santa-backend/internal/service/exchange"
	"github.com/heartmarshall/secret-santa-backend/internal/service/match"
	"github.com/heartmarshall/secret-santa-backend/internal/service/participant"
	"github.com/heartmarshall/secret-santa-backend/internal/service/wishlist"
	"github.com/heartmarshall/secret-santa-backend/internal/transport/middleware"
	"github.com/heartmarshall/secret-santa-backend/internal/transport/rest"
)

// Run is the entry point for the HTTP server. It connects to PostgreSQL,
// assembles services and serves until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTelemetry, err := SetupTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logger.Warn("telemetry shutdown", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, cleanup, err := NewHandler(cfg, pool, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires repositories, services and the middleware stack into a
// single http.Handler. The returned cleanup stops background workers.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	exchanges := exchangerepo.New(pool)
	participants := participantrepo.New(pool)
	items := wishlistrepo.New(pool)
	assignments := assignmentrepo.New(pool)
	audit := auditrepo.New(pool)

	schema, err := postgres.NewSchemaInspector(pool)
	if err != nil {
		return nil, nil, err
	}

	exchangeSvc := exchange.NewService(logger, exchanges, users, participants, assignments, audit, txm)
	participantSvc := participant.NewService(logger, exchanges, participants, audit, txm)
	wishlistSvc := wishlist.NewService(logger, exchanges, participants, items, assignments, audit, txm, cfg.Exchange)
	matchSvc := match.NewService(logger, exchanges, participants, assignments)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, schema, Version),
		Exchange:     rest.NewExchangeHandler(exchangeSvc, logger),
		Participant:  rest.NewParticipantHandler(participantSvc, logger),
		Participants: rest.NewParticipantAreaHandler(wishlistSvc, matchSvc, logger),
	})

	wrap, stop := middleware.Stack(middleware.StackConfig{
		Logger:    logger,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Tokens:    jwtManager,
	})

	return wrap(router), stop, nil
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
