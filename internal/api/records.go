package api

import (
	"encoding/json"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/battle"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/store"
)

// recordOutcome persists a finished encounter to the history store.
func (s *Server) recordOutcome(entry *PlayerEntry, action string, res battle.Result) {
	outcome := ""
	switch {
	case res.Victory:
		outcome = store.OutcomeVictory
	case res.Defeat:
		outcome = store.OutcomeDefeat
	case action == "flee":
		outcome = store.OutcomeFled
	default:
		return
	}

	rec := buildBattleRecord(entry.ID, entry.EnemyID(), outcome, res)
	if err := s.db.SaveBattle(rec); err != nil {
		s.logger.Error().Err(err).Str("player_id", entry.ID).Msg("failed to persist battle")
		return
	}
	s.logger.Info().
		Str("player_id", entry.ID).
		Str("battle_id", rec.ID).
		Str("outcome", outcome).
		Int("turns", rec.Turns).
		Msg("battle recorded")
}

// buildBattleRecord shapes a finished encounter for the history store.
func buildBattleRecord(playerID, enemyID, outcome string, res battle.Result) *store.Battle {
	rec := &store.Battle{
		PlayerID: playerID,
		Enemy:    enemyID,
		Outcome:  outcome,
		Tokens:   "0",
		Drops:    "[]",
	}
	if res.State != nil {
		rec.Turns = res.State.Turn
	}
	if res.Rewards != nil {
		rec.XP = res.Rewards.XP
		rec.Tokens = res.Rewards.Tokens.String()
		if len(res.Rewards.Drops) > 0 {
			if raw, err := json.Marshal(res.Rewards.Drops); err == nil {
				rec.Drops = string(raw)
			}
		}
	}
	return rec
}
