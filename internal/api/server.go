// Package api exposes the arena over HTTP: player registry, battle
// lifecycle, catalog lookups, and persisted history.
package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/ratelimit"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/store"
)

// Server handles HTTP requests.
type Server struct {
	db      store.DB
	logger  zerolog.Logger
	players *PlayerManager

	// newLimiter builds the per-session action throttle; tests swap in
	// a permissive clock.
	newLimiter func() *ratelimit.ActionLimiter

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewServer creates a new API server.
func NewServer(db store.DB, logger zerolog.Logger) *Server {
	return &Server{
		db:         db,
		logger:     logger,
		players:    NewPlayerManager(),
		newLimiter: ratelimit.New,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.requestLogger)

	r.Get("/enemies", s.handleListEnemies)
	r.Get("/cards", s.handleListCards)
	r.Get("/skills", s.handleListSkills)
	r.Get("/arena", s.handleArenaLayout)

	r.Post("/players", s.handleCreatePlayer)
	r.Get("/players/{id}", s.handleGetPlayer)
	r.Get("/players/{id}/deck", s.handleGetDeckPool)
	r.Post("/players/{id}/battles", s.handleStartBattle)
	r.Get("/players/{id}/battle", s.handleGetBattle)
	r.Post("/players/{id}/battle/actions", s.handleBattleAction)

	r.Get("/battles", s.handleRecentBattles)
	r.Get("/battles/outcomes", s.handleOutcomeCounts)
	r.Get("/battles/{id}", s.handleGetBattleRecord)

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
