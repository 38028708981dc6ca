package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/vncsmyrnk/polly/internal/core/ports"
)

type RouterConfig struct {
	PollHandler   *PollHandler
	VoteHandler   *VoteHandler
	HealthHandler *HealthHandler
	Sessions      ports.SessionVerifier
	SessionCookie string
	// VoteRate is votes per minute per client address.
	VoteRate  int
	VoteBurst int
}

func NewHandler(cfg RouterConfig) http.Handler {
	if cfg.SessionCookie == "" {
		cfg.SessionCookie = "access_token"
	}
	if cfg.HealthHandler == nil {
		cfg.HealthHandler = NewHealthHandler(nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(RequestLogger)

	r.Get("/health", cfg.HealthHandler.Health)
	r.Get("/ready", cfg.HealthHandler.Ready)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/polls", func(r chi.Router) {
		r.Use(Session(cfg.Sessions, cfg.SessionCookie))

		r.Get("/", cfg.PollHandler.ListPolls)
		r.Post("/", cfg.PollHandler.CreatePoll)
		r.Post("/update", cfg.PollHandler.UpdatePoll)
		r.Post("/delete", cfg.PollHandler.DeletePoll)
		r.Get("/{id}", cfg.PollHandler.GetPoll)

		vote := r.With()
		if cfg.VoteRate > 0 && cfg.VoteBurst > 0 {
			vote = r.With(RateLimitVotes(rate.Every(time.Minute/time.Duration(cfg.VoteRate)), cfg.VoteBurst))
		}
		vote.Post("/{id}/vote", cfg.VoteHandler.CastVote)
	})

	return r
}
