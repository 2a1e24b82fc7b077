package battle

import (
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/arena"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
)

// ArenaView describes the positional situation for the presentation
// layer: full topology plus the derived movement and range facts.
type ArenaView struct {
	Positions  []arena.Position `json:"positions"`
	PlayerPos  int              `json:"playerPos"`
	EnemyPos   int              `json:"enemyPos"`
	Distance   int              `json:"distance"`
	Melee      bool             `json:"melee"`
	ValidMoves []int            `json:"validMoves"`
}

// Snapshot is a deep, read-only copy of the battle state. It is the
// sole contract the presentation layer may depend on: mutating a
// snapshot never touches the session.
type Snapshot struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
	Turn   int    `json:"turn"`
	Phase  Phase  `json:"phase"`

	PlayerHP    int         `json:"playerHp"`
	PlayerMaxHP int         `json:"playerMaxHp"`
	PlayerMP    int         `json:"playerMp"`
	PlayerMaxMP int         `json:"playerMaxMp"`
	Stats       CombatStats `json:"stats"`

	Enemy EnemyInstance `json:"enemy"`

	Arena ArenaView `json:"arena"`

	Hand         []content.ActionCard `json:"hand"`
	DeckCount    int                  `json:"deckCount"`
	DiscardCount int                  `json:"discardCount"`

	Buffs        []Buff         `json:"buffs"`
	EnemyDebuffs []Debuff       `json:"enemyDebuffs"`
	Block        int            `json:"block"`
	EnemyStunned bool           `json:"enemyStunned"`
	Counter      bool           `json:"counter"`
	EnemyExposed bool           `json:"enemyExposed"`
	Cooldowns    map[string]int `json:"cooldowns"`

	Log []string `json:"log"`
}

// Snapshot returns a copy of the current state, or nil when no battle
// has been started.
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deck == nil {
		return nil
	}
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() *Snapshot {
	hand := make([]content.ActionCard, len(s.hand))
	copy(hand, s.hand)

	buffs := make([]Buff, len(s.buffs))
	copy(buffs, s.buffs)
	debuffs := make([]Debuff, len(s.enemyDebuffs))
	copy(debuffs, s.enemyDebuffs)

	cooldowns := make(map[string]int, len(s.cooldowns))
	for k, v := range s.cooldowns {
		cooldowns[k] = v
	}

	logStart := len(s.log) - logWindow
	if logStart < 0 {
		logStart = 0
	}
	logTail := make([]string, len(s.log)-logStart)
	copy(logTail, s.log[logStart:])

	enemy := s.enemy
	enemy.Drops = append([]string(nil), s.enemy.Drops...)

	return &Snapshot{
		ID:     s.id.String(),
		Active: s.active,
		Turn:   s.turn,
		Phase:  s.phase,

		PlayerHP:    s.playerHP,
		PlayerMaxHP: s.stats.MaxHP,
		PlayerMP:    s.playerMP,
		PlayerMaxMP: s.stats.MaxMP,
		Stats:       s.stats,

		Enemy: enemy,

		Arena: ArenaView{
			Positions:  arena.All(),
			PlayerPos:  s.playerPos,
			EnemyPos:   s.enemyPos,
			Distance:   arena.Distance(s.playerPos, s.enemyPos),
			Melee:      arena.Melee(s.playerPos, s.enemyPos),
			ValidMoves: arena.ValidMoves(s.playerPos, s.enemyPos),
		},

		Hand:         hand,
		DeckCount:    s.deck.DrawCount(),
		DiscardCount: s.deck.DiscardCount(),

		Buffs:        buffs,
		EnemyDebuffs: debuffs,
		Block:        s.block,
		EnemyStunned: s.stunned,
		Counter:      s.counter,
		EnemyExposed: s.exposed,
		Cooldowns:    cooldowns,

		Log: logTail,
	}
}
