package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/vncsmyrnk/polly/docs"
	"github.com/vncsmyrnk/polly/internal/adapters/handler/http"
	"github.com/vncsmyrnk/polly/internal/adapters/invalidation"
	"github.com/vncsmyrnk/polly/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polly/internal/adapters/session/google"
	"github.com/vncsmyrnk/polly/internal/adapters/session/jwt"
	"github.com/vncsmyrnk/polly/internal/config"
	"github.com/vncsmyrnk/polly/internal/core/ports"
	"github.com/vncsmyrnk/polly/internal/core/services"
	"github.com/vncsmyrnk/polly/internal/metrics"
	"github.com/vncsmyrnk/polly/internal/platform/database"
)

// @title        Polly API
// @version      1.0
// @description  Create polls, vote, and manage the polls you own.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	http.SetLogger(logger)
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.DatabaseURL, 15*time.Second)
	if err != nil {
		logger.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	handler := newHandler(cfg, db, logger)
	server := &stdhttp.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", server.Addr, "session_provider", cfg.SessionProvider)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

func newHandler(cfg config.Config, db *sql.DB, logger *slog.Logger) stdhttp.Handler {
	registry := invalidation.NewRegistry()

	pollRepo := postgres.NewPollRepository(db)
	voteRepo := postgres.NewVoteRepository(db)

	pollSvc := services.NewPollService(pollRepo, registry, logger)
	voteSvc := services.NewVoteService(voteRepo, registry, logger)

	return http.NewHandler(http.RouterConfig{
		PollHandler:   http.NewPollHandler(pollSvc, registry),
		VoteHandler:   http.NewVoteHandler(voteSvc),
		HealthHandler: http.NewHealthHandler(db),
		Sessions:      sessionVerifier(cfg),
		SessionCookie: cfg.SessionCookie,
		VoteRate:      cfg.VoteRatePerMinute,
		VoteBurst:     cfg.VoteRateBurst,
	})
}

func sessionVerifier(cfg config.Config) ports.SessionVerifier {
	if cfg.SessionProvider == config.SessionProviderGoogle {
		return google.NewVerifier(cfg.GoogleClientID)
	}
	return jwt.NewManager(cfg.JWTSecret)
}
