package battle

// Skills predate the deck system and remain available alongside it:
// MP cost plus a fixed cooldown instead of card cycling. Like cards,
// using a skill does not end the turn; EndTurn is the only phase
// advance.

import "github.com/Ragnar-no-sleep/pump-arena-go/internal/content"

// UseSkill activates a cooldown-gated skill.
func (s *Session) UseSkill(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ok, wait := s.limiter.Allow(); !ok {
		return reject("too fast - wait %dms", wait.Milliseconds())
	}
	if !s.active {
		return reject("no active battle")
	}
	if s.phase != PhasePlayer {
		return reject("not your turn")
	}
	skill, ok := content.GetSkill(id)
	if !ok {
		return reject("unknown skill: %s", id)
	}
	if turns := s.cooldowns[id]; turns > 0 {
		return reject("%s is on cooldown for %d more turns", skill.Name, turns)
	}
	if s.playerMP < skill.MPCost {
		return reject("not enough MP for %s (need %d, have %d)", skill.Name, skill.MPCost, s.playerMP)
	}

	s.playerMP -= skill.MPCost
	s.cooldowns[id] = skill.Cooldown

	// Skills reuse the card pipeline by shaping themselves as an
	// ad-hoc card with no stat bonus.
	s.resolveCard(content.ActionCard{
		ID:      skill.ID,
		Name:    skill.Name,
		Damage:  skill.Damage,
		Block:   skill.Block,
		Heal:    skill.Heal,
		Effects: skill.Effects,
	}, -1)

	if s.enemy.HP <= 0 {
		grant := s.endBattleLocked(true)
		return Result{Success: true, Victory: true, Rewards: grant, State: s.snapshotLocked()}
	}
	return Result{Success: true, State: s.snapshotLocked()}
}
