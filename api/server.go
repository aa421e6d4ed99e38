// Package api exposes the read-only HTTP surface: leaderboards, profiles,
// match details, and Prometheus metrics. Writes go through the event bus.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	matchservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/application"
	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
	userservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/application"
	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
	"github.com/dannynotsmart/Ranked-Bedwars/config"
	"github.com/dannynotsmart/Ranked-Bedwars/internal/ratelimit"
)

// Server serves the read-only API.
type Server struct {
	users   userservice.Service
	matches matchservice.Service
	logger  *slog.Logger
}

// NewServer creates a new API server.
func NewServer(users userservice.Service, matches matchservice.Service, logger *slog.Logger) *Server {
	return &Server{users: users, matches: matches, logger: logger}
}

// Routes builds the HTTP handler tree.
func (s *Server) Routes(cfg config.HTTPConfig, registry *prometheus.Registry) http.Handler {
	limiter := ratelimit.NewIPRateLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(limiter.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/guilds/{guildID}", func(r chi.Router) {
		r.Get("/leaderboard", s.getLeaderboard)
		r.Get("/users/{userID}", s.getProfile)
		r.Get("/matches/{matchID}", s.getMatch)
	})

	return r
}

func (s *Server) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	guildID := sharedtypes.GuildID(chi.URLParam(r, "guildID"))

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := s.users.GetLeaderboard(r.Context(), guildID, limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, entries)
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	guildID := sharedtypes.GuildID(chi.URLParam(r, "guildID"))
	userID := sharedtypes.UserID(chi.URLParam(r, "userID"))

	profile, err := s.users.GetProfile(r.Context(), guildID, userID)
	if err != nil {
		if errors.Is(err, userdb.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, profile)
}

func (s *Server) getMatch(w http.ResponseWriter, r *http.Request) {
	guildID := sharedtypes.GuildID(chi.URLParam(r, "guildID"))
	matchID, err := strconv.ParseInt(chi.URLParam(r, "matchID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid match id", http.StatusBadRequest)
		return
	}

	result, err := s.matches.GetMatch(r.Context(), guildID, sharedtypes.MatchID(matchID))
	if err != nil {
		if errors.Is(err, matchdb.ErrMatchNotFound) {
			http.Error(w, "match not found", http.StatusNotFound)
			return
		}
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, result.Success)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	http.Error(w, fmt.Sprintf("internal error: %v", err), http.StatusInternalServerError)
}
