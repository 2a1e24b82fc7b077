package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/arena"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/battle"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/deck"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/player"
)

// --- catalog ---

func (s *Server) handleListEnemies(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"enemies": content.ListEnemies()})
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"cards": content.ListCards()})
}

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"skills": content.ListSkills()})
}

func (s *Server) handleArenaLayout(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"positions": arena.All()})
}

// --- players ---

type createPlayerRequest struct {
	Level      int               `json:"level"`
	Attributes player.Attributes `json:"attributes"`
}

type playerResponse struct {
	ID        string             `json:"id"`
	Player    player.Snapshot    `json:"player"`
	Tier      player.TierInfo    `json:"tier"`
	Stats     battle.CombatStats `json:"stats"`
	Inventory map[string]int     `json:"inventory"`
	InBattle  bool               `json:"inBattle"`
}

func (s *Server) playerResponse(entry *PlayerEntry) playerResponse {
	snap := entry.State.Get()
	tier := entry.State.CurrentTier()
	sess := entry.Session()
	return playerResponse{
		ID:        entry.ID,
		Player:    snap,
		Tier:      tier,
		Stats:     battle.ComputeStats(snap, tier),
		Inventory: entry.Inv.Items(),
		InBattle:  sess != nil && sess.Active(),
	}
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Level < 0 || req.Level > 99 {
		s.writeError(w, http.StatusBadRequest, "level must be between 0 and 99")
		return
	}

	entry := s.players.Create(req.Level, req.Attributes)
	s.logger.Info().Str("player_id", entry.ID).Int("level", entry.State.Get().Level).Msg("player created")
	s.writeJSON(w, http.StatusCreated, s.playerResponse(entry))
}

func (s *Server) playerFromRequest(w http.ResponseWriter, r *http.Request) (*PlayerEntry, bool) {
	entry, ok := s.players.Get(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "unknown player")
		return nil, false
	}
	return entry, true
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.playerFromRequest(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.playerResponse(entry))
}

func (s *Server) handleGetDeckPool(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.playerFromRequest(w, r)
	if !ok {
		return
	}
	level := entry.State.Get().Level
	s.writeJSON(w, http.StatusOK, map[string]any{
		"level": level,
		"pool":  deck.PoolFor(level),
	})
}

// --- battles ---

type startBattleRequest struct {
	Enemy  string `json:"enemy"`
	Random bool   `json:"random"`
	Seed   int64  `json:"seed"`
}

func (s *Server) handleStartBattle(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.playerFromRequest(w, r)
	if !ok {
		return
	}
	var req startBattleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	enemyID := req.Enemy
	if req.Random {
		s.rngMu.Lock()
		picked, found := battle.PickEncounter(entry.State.Get().Level, s.rng)
		s.rngMu.Unlock()
		if !found {
			s.writeError(w, http.StatusConflict, "no encounter available")
			return
		}
		enemyID = picked
	}
	if enemyID == "" {
		s.writeError(w, http.StatusBadRequest, "enemy or random is required")
		return
	}

	if sess := entry.Session(); sess != nil && sess.Active() {
		s.writeError(w, http.StatusConflict, "a battle is already in progress")
		return
	}

	sess := battle.New(battle.Config{
		Player:    entry.State,
		Inventory: entry.Inv,
		Seed:      req.Seed,
		Limiter:   s.newLimiter(),
	})
	res := sess.Start(enemyID)
	if !res.Success {
		s.writeError(w, http.StatusBadRequest, res.Message)
		return
	}
	if err := entry.BeginBattle(sess, enemyID); err != nil {
		s.writeError(w, http.StatusConflict, err.Error())
		return
	}

	s.logger.Info().
		Str("player_id", entry.ID).
		Str("enemy", enemyID).
		Str("session_id", sess.ID().String()).
		Msg("battle started")
	s.writeJSON(w, http.StatusCreated, res)
}

func (s *Server) handleGetBattle(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.playerFromRequest(w, r)
	if !ok {
		return
	}
	sess := entry.Session()
	if sess == nil {
		s.writeError(w, http.StatusNotFound, "no battle")
		return
	}
	snap := sess.Snapshot()
	if snap == nil {
		s.writeError(w, http.StatusNotFound, "no battle")
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

type battleActionRequest struct {
	Action string `json:"action"`
	Card   int    `json:"card"`
	Target int    `json:"target"`
	Skill  string `json:"skill"`
}

func (s *Server) handleBattleAction(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.playerFromRequest(w, r)
	if !ok {
		return
	}
	sess := entry.Session()
	if sess == nil {
		s.writeError(w, http.StatusNotFound, "no battle")
		return
	}

	req := battleActionRequest{Card: -1, Target: -1}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	var res battle.Result
	switch req.Action {
	case "play_card":
		res = sess.PlayCard(req.Card, req.Target)
	case "end_turn":
		res = sess.EndTurn()
	case "move":
		res = sess.Move(req.Target)
	case "use_skill":
		res = sess.UseSkill(req.Skill)
	case "flee":
		res = sess.Flee()
	default:
		s.writeError(w, http.StatusBadRequest, "unknown action: "+req.Action)
		return
	}

	if !res.Success {
		s.writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	s.recordOutcome(entry, req.Action, res)
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRecentBattles(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	battles, err := s.db.RecentBattles(limit, offset)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to load battles")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"battles": battles})
}

func (s *Server) handleOutcomeCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := s.db.OutcomeCounts()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to load outcomes")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"outcomes": counts})
}

func (s *Server) handleGetBattleRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.db.GetBattle(chi.URLParam(r, "id"))
	if errors.Is(err, sql.ErrNoRows) {
		s.writeError(w, http.StatusNotFound, "unknown battle")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to load battle")
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
