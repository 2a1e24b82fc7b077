// Package battle implements the Pump Arena turn-based combat engine: a
// positional card battle against a scaled enemy, resolved one atomic
// action at a time. Every mutating operation validates its
// preconditions fully before touching state and reports failure as a
// rejected action, never a partial mutation.
package battle

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/arena"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/deck"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/fib"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/player"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/ratelimit"
)

// Phase is the side currently acting.
type Phase string

const (
	PhasePlayer Phase = "player"
	PhaseEnemy  Phase = "enemy"
)

const (
	maxHandSize  = 5
	cardsPerTurn = 3
	logWindow    = 5
)

// Buff is a timed bonus on the player.
type Buff struct {
	Type     content.EffectTag `json:"type"`
	Amount   int               `json:"amount"`
	Duration int               `json:"duration"`
}

// Debuff is a timed penalty on the enemy. Burn carries Damage per
// tick, weaken carries a flat Amount subtracted from enemy attacks.
type Debuff struct {
	Type     content.EffectTag `json:"type"`
	Amount   int               `json:"amount,omitempty"`
	Damage   int               `json:"damage,omitempty"`
	Duration int               `json:"duration"`
}

// EnemyInstance is a catalog template scaled to the player's level.
type EnemyInstance struct {
	content.EnemyTemplate
	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	Atk   int `json:"atk"`
	Def   int `json:"def"`
	Spd   int `json:"spd"`
}

// RewardGrant records what a victory paid out.
type RewardGrant struct {
	XP     int             `json:"xp"`
	Tokens decimal.Decimal `json:"tokens"`
	Drops  []string        `json:"drops,omitempty"`
}

// Result is the outcome of a single battle action. Failed actions set
// Message and leave the session untouched apart from rate-limiter
// bookkeeping.
type Result struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Victory bool         `json:"victory,omitempty"`
	Defeat  bool         `json:"defeat,omitempty"`
	Rewards *RewardGrant `json:"rewards,omitempty"`
	State   *Snapshot    `json:"state,omitempty"`
}

// Config wires a session to its collaborators. Seed and Limiter are
// optional: a zero Seed draws entropy from the clock, a nil Limiter
// gets the default throttle.
type Config struct {
	Player    player.State
	Inventory player.Inventory
	Seed      int64
	Rand      *rand.Rand
	Limiter   *ratelimit.ActionLimiter
}

// Session is one battle encounter. Unlike the old module-level
// singleton, a Session is a self-contained value: any number can run
// concurrently, each serialized by its own mutex.
type Session struct {
	mu sync.Mutex

	id      uuid.UUID
	rng     *rand.Rand
	limiter *ratelimit.ActionLimiter
	state   player.State
	inv     player.Inventory

	active bool
	turn   int
	phase  Phase

	stats    CombatStats
	playerHP int
	playerMP int

	enemy    EnemyInstance
	behavior *behaviorScript

	playerPos int
	enemyPos  int

	deck *deck.Deck
	hand []content.ActionCard

	buffs        []Buff
	enemyDebuffs []Debuff

	block   int
	stunned bool
	counter bool
	exposed bool

	cooldowns map[string]int
	log       []string
}

// New creates an inactive session bound to its collaborators. Start
// begins the encounter.
func New(cfg Config) *Session {
	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = ratelimit.New()
	}
	return &Session{
		id:      uuid.New(),
		rng:     rng,
		limiter: limiter,
		state:   cfg.Player,
		inv:     cfg.Inventory,
		phase:   PhasePlayer,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Active reports whether the encounter is still running.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func reject(format string, args ...any) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...)}
}

// Start begins an encounter against the named enemy: scales the enemy
// to the player's level, derives combat stats, places both combatants,
// builds the deck, and draws the opening hand.
func (s *Session) Start(enemyID string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return reject("a battle is already in progress")
	}
	tpl, ok := content.GetEnemy(enemyID)
	if !ok {
		return reject("unknown enemy: %s", enemyID)
	}

	snap := s.state.Get()
	tier := s.state.CurrentTier()
	s.stats = ComputeStats(snap, tier)

	s.enemy = scaleEnemy(tpl, snap.Level)
	s.behavior = nil
	if tpl.Behavior != "" {
		script, err := newBehaviorScript(tpl.Behavior)
		if err == nil {
			s.behavior = script
		}
		// A broken script falls back to the built-in behavior table.
	}

	s.playerHP = s.stats.MaxHP
	s.playerMP = s.stats.MaxMP
	s.playerPos = 0
	s.enemyPos = startingEnemyPosition(tpl.Tier)

	s.deck = deck.Build(snap.Level, s.rng)
	s.hand = s.deck.Draw(maxHandSize)

	s.buffs = nil
	s.enemyDebuffs = nil
	s.block = 0
	s.stunned = false
	s.counter = false
	s.exposed = false
	s.cooldowns = make(map[string]int)

	s.turn = 1
	s.phase = PhasePlayer
	s.active = true
	s.log = nil
	s.logf("%s %s enters the arena!", tpl.Icon, tpl.Name)

	return Result{Success: true, State: s.snapshotLocked()}
}

// scaleEnemy applies the level-scaling law to a template: +5% per
// player level past the enemy's native band, so a fresh level-1 player
// meets tier-0 enemies at their base stats.
func scaleEnemy(tpl content.EnemyTemplate, level int) EnemyInstance {
	over := level - int(tpl.Tier)*10 - 1
	if over < 0 {
		over = 0
	}
	scale := 1.0 + 0.05*float64(over)
	hp := int(float64(tpl.BaseHP) * scale)
	return EnemyInstance{
		EnemyTemplate: tpl,
		HP:            hp,
		MaxHP:         hp,
		Atk:           int(float64(tpl.BaseAtk) * scale),
		Def:           int(float64(tpl.BaseDef) * scale),
		Spd:           tpl.BaseSpd,
	}
}

// startingEnemyPosition picks the enemy's opening node: low tiers start
// in the mid ring, high tiers open at range.
func startingEnemyPosition(tier content.Tier) int {
	if tier <= content.TierSpark {
		return 4
	}
	return 7
}

// PlayCard plays the hand card at idx. Damage cards may pass target -1;
// movement cards pass the destination position. Playing a card never
// ends the turn.
func (s *Session) PlayCard(idx, target int) Result {
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
	if idx < 0 || idx >= len(s.hand) {
		return reject("invalid card index %d", idx)
	}
	card := s.hand[idx]
	if s.playerMP < card.MPCost {
		return reject("not enough MP for %s (need %d, have %d)", card.Name, card.MPCost, s.playerMP)
	}
	if card.TokenCost > 0 {
		if s.state.Get().Tokens.LessThan(intToDecimal(card.TokenCost)) {
			return reject("not enough tokens for %s (need %d)", card.Name, card.TokenCost)
		}
	}
	// Movement effects need a valid destination before anything is
	// deducted.
	if err := s.validateCardTarget(card, target); err != nil {
		return reject("%s", err)
	}

	// All validation passed; the action commits from here.
	s.playerMP -= card.MPCost
	if card.TokenCost > 0 {
		s.state.AddTokens(intToDecimal(card.TokenCost).Neg())
	}
	s.hand = append(s.hand[:idx], s.hand[idx+1:]...)
	s.deck.Discard(card)

	s.resolveCard(card, target)

	if s.enemy.HP <= 0 {
		grant := s.endBattleLocked(true)
		return Result{Success: true, Victory: true, Rewards: grant, State: s.snapshotLocked()}
	}
	return Result{Success: true, State: s.snapshotLocked()}
}

// EndTurn resolves the enemy phase and advances to the next player
// turn: burn ticks, enemy action, per-turn resets, buff decay, card
// draw, and MP regeneration, in that order.
func (s *Session) EndTurn() Result {
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

	s.phase = PhaseEnemy

	s.tickBurn()
	if s.enemy.HP <= 0 {
		grant := s.endBattleLocked(true)
		return Result{Success: true, Victory: true, Rewards: grant, State: s.snapshotLocked()}
	}

	if s.stunned {
		s.logf("%s is stunned and loses its turn!", s.enemy.Name)
		s.stunned = false
	} else {
		s.enemyTurn()
	}
	if s.playerHP <= 0 {
		s.endBattleLocked(false)
		return Result{Success: true, Defeat: true, State: s.snapshotLocked()}
	}

	// Per-turn state resets.
	s.block = 0
	s.counter = false
	s.exposed = false

	// Buff and debuff lists are rebuilt, never edited in place.
	s.buffs = decayBuffs(s.buffs)
	s.enemyDebuffs = decayDebuffs(s.enemyDebuffs)

	for id, turns := range s.cooldowns {
		if turns <= 1 {
			delete(s.cooldowns, id)
		} else {
			s.cooldowns[id] = turns - 1
		}
	}

	if n := min(cardsPerTurn, maxHandSize-len(s.hand)); n > 0 {
		s.hand = append(s.hand, s.deck.Draw(n)...)
	}

	s.playerMP += fib.N(4)
	if s.playerMP > s.stats.MaxMP {
		s.playerMP = s.stats.MaxMP
	}

	s.turn++
	s.phase = PhasePlayer

	return Result{Success: true, State: s.snapshotLocked()}
}

// tickBurn applies damage-over-time to the enemy, consuming one
// duration point per burn stack.
func (s *Session) tickBurn() {
	next := make([]Debuff, 0, len(s.enemyDebuffs))
	for _, d := range s.enemyDebuffs {
		if d.Type == content.EffectBurn && d.Duration > 0 {
			s.enemy.HP -= d.Damage
			if s.enemy.HP < 0 {
				s.enemy.HP = 0
			}
			s.logf("%s burns for %d damage", s.enemy.Name, d.Damage)
			d.Duration--
		}
		if d.Type != content.EffectBurn || d.Duration > 0 {
			next = append(next, d)
		}
	}
	s.enemyDebuffs = next
}

// decayBuffs produces the next turn's buff list.
func decayBuffs(buffs []Buff) []Buff {
	next := make([]Buff, 0, len(buffs))
	for _, b := range buffs {
		b.Duration--
		if b.Duration > 0 {
			next = append(next, b)
		}
	}
	return next
}

// decayDebuffs decrements non-burn debuffs; burn durations are consumed
// by tickBurn.
func decayDebuffs(debuffs []Debuff) []Debuff {
	next := make([]Debuff, 0, len(debuffs))
	for _, d := range debuffs {
		if d.Type != content.EffectBurn {
			d.Duration--
		}
		if d.Duration > 0 {
			next = append(next, d)
		}
	}
	return next
}

// Move relocates the player to an adjacent, unoccupied position.
// Moving does not end the turn.
func (s *Session) Move(pos int) Result {
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
	if !arena.Valid(pos) {
		return reject("invalid position %d", pos)
	}
	if pos == s.enemyPos {
		return reject("position %d is occupied", pos)
	}
	if !arena.Adjacent(s.playerPos, pos) {
		return reject("position %d is not adjacent", pos)
	}

	s.playerPos = pos
	s.logf("You move to the %s ring", arena.RingOf(pos))
	return Result{Success: true, State: s.snapshotLocked()}
}

// Flee abandons the battle for an influence fee. Only available during
// the player phase; no rewards are granted.
func (s *Session) Flee() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ok, wait := s.limiter.Allow(); !ok {
		return reject("too fast - wait %dms", wait.Milliseconds())
	}
	if !s.active {
		return reject("no active battle")
	}
	if s.phase != PhasePlayer {
		return reject("cannot flee during the enemy phase")
	}
	cost := fib.N(5)
	if !s.state.SpendInfluence(cost) {
		return reject("not enough influence to flee (need %d)", cost)
	}

	s.logf("You flee the arena, spending %d influence", cost)
	s.active = false
	return Result{Success: true, State: s.snapshotLocked()}
}

// endBattleLocked terminates the encounter. On victory the reward
// bridge fires exactly once: the active flag flips before any grant, so
// a second terminal path cannot pay out again.
func (s *Session) endBattleLocked(victory bool) *RewardGrant {
	if !s.active {
		return nil
	}
	s.active = false

	if !victory {
		s.logf("You were defeated by %s...", s.enemy.Name)
		return nil
	}
	s.logf("%s is defeated!", s.enemy.Name)
	grant := s.grantRewards()
	return grant
}

func (s *Session) logf(format string, args ...any) {
	s.log = append(s.log, fmt.Sprintf(format, args...))
}
