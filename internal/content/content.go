// Package content holds the static combat catalogs: enemies, action
// cards, and skills. Entries are pure data interpreted by the battle
// engine; adding a card or enemy means adding a table row, not code.
package content

import "fmt"

// Tier is a coarse power band shared by enemies and players.
type Tier int

const (
	TierEmber Tier = iota
	TierSpark
	TierFlame
	TierBlaze
	TierInferno
)

var tierNames = [...]string{"EMBER", "SPARK", "FLAME", "BLAZE", "INFERNO"}

func (t Tier) String() string {
	if t < TierEmber || t > TierInferno {
		return "UNKNOWN"
	}
	return tierNames[t]
}

// CardType classifies a card's primary role.
type CardType string

const (
	CardAttack  CardType = "attack"
	CardDefense CardType = "defense"
	CardSupport CardType = "support"
	CardSpecial CardType = "special"
)

// Rarity bands for action cards.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// EffectTag names a combat effect a card or skill can carry. The set is
// closed: the battle resolver switches exhaustively over these values
// and panics on anything else.
type EffectTag string

const (
	EffectWeaken      EffectTag = "weaken"
	EffectBurn        EffectTag = "burn"
	EffectStun        EffectTag = "stun"
	EffectDefenseBuff EffectTag = "defense_buff"
	EffectAttackBuff  EffectTag = "attack_buff"
	EffectSpeedBuff   EffectTag = "speed_buff"
	EffectReflect     EffectTag = "reflect"
	EffectImmunity    EffectTag = "immunity"
	EffectExpose      EffectTag = "expose"
	EffectCounter     EffectTag = "counter"
	EffectMove        EffectTag = "move"
	EffectSwap        EffectTag = "swap_positions"
	EffectFomo        EffectTag = "fomo"
	EffectLifesteal   EffectTag = "lifesteal"
	EffectPierce      EffectTag = "pierce"
)

// knownEffects is the validation-time view of the closed tag set.
var knownEffects = map[EffectTag]struct{}{
	EffectWeaken: {}, EffectBurn: {}, EffectStun: {}, EffectDefenseBuff: {},
	EffectAttackBuff: {}, EffectSpeedBuff: {}, EffectReflect: {}, EffectImmunity: {},
	EffectExpose: {}, EffectCounter: {}, EffectMove: {}, EffectSwap: {},
	EffectFomo: {}, EffectLifesteal: {}, EffectPierce: {},
}

// KnownEffect reports whether tag belongs to the closed effect set.
func KnownEffect(tag EffectTag) bool {
	_, ok := knownEffects[tag]
	return ok
}

// Rewards is the per-enemy reward template, scaled per encounter.
type Rewards struct {
	XP     int `json:"xp"`
	Tokens int `json:"tokens"`
}

// EnemyTemplate is an immutable catalog entry. Instances are scaled
// copies produced by the battle engine; templates are never mutated.
type EnemyTemplate struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Icon       string   `json:"icon"`
	Tier       Tier     `json:"tier"`
	BaseHP     int      `json:"baseHp"`
	BaseAtk    int      `json:"baseAtk"`
	BaseDef    int      `json:"baseDef"`
	BaseSpd    int      `json:"baseSpd"`
	CritChance int      `json:"critChance"`
	Rewards    Rewards  `json:"rewards"`
	Drops      []string `json:"drops"`
	IsBoss     bool     `json:"isBoss"`

	// Behavior optionally carries a JS snippet that registers a
	// decide(view) hook consulted by the enemy AI. Empty means the
	// built-in behavior table applies.
	Behavior string `json:"-"`
}

// ActionCard is an immutable catalog entry for the deck system.
type ActionCard struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Icon      string      `json:"icon"`
	Type      CardType    `json:"type"`
	Rarity    Rarity      `json:"rarity"`
	MPCost    int         `json:"mpCost"`
	TokenCost int         `json:"tokenCost,omitempty"`
	Damage    int         `json:"damage,omitempty"`
	Block     int         `json:"block,omitempty"`
	Heal      int         `json:"heal,omitempty"`
	MPRestore int         `json:"mpRestore,omitempty"`
	StatBonus string      `json:"statBonus,omitempty"`
	Effects   []EffectTag `json:"effects,omitempty"`
}

// Skill is a legacy cooldown-gated action available alongside cards.
type Skill struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Icon     string      `json:"icon"`
	MPCost   int         `json:"mpCost"`
	Damage   int         `json:"damage,omitempty"`
	Block    int         `json:"block,omitempty"`
	Heal     int         `json:"heal,omitempty"`
	Cooldown int         `json:"cooldown"`
	Effects  []EffectTag `json:"effects,omitempty"`
}

// GetEnemy looks up an enemy template by ID.
func GetEnemy(id string) (EnemyTemplate, bool) {
	e, ok := enemyCatalog[id]
	return e, ok
}

// ListEnemies returns all enemy templates in catalog order.
func ListEnemies() []EnemyTemplate {
	out := make([]EnemyTemplate, 0, len(enemyOrder))
	for _, id := range enemyOrder {
		out = append(out, enemyCatalog[id])
	}
	return out
}

// GetCard looks up an action card by ID.
func GetCard(id string) (ActionCard, bool) {
	c, ok := cardCatalog[id]
	return c, ok
}

// ListCards returns all action cards in catalog order.
func ListCards() []ActionCard {
	out := make([]ActionCard, 0, len(cardOrder))
	for _, id := range cardOrder {
		out = append(out, cardCatalog[id])
	}
	return out
}

// GetSkill looks up a skill by ID.
func GetSkill(id string) (Skill, bool) {
	s, ok := skillCatalog[id]
	return s, ok
}

// ListSkills returns all skills in catalog order.
func ListSkills() []Skill {
	out := make([]Skill, 0, len(skillOrder))
	for _, id := range skillOrder {
		out = append(out, skillCatalog[id])
	}
	return out
}

// MustCard is for table wiring inside the module: it panics when the
// referenced card does not exist, which is a programmer error.
func MustCard(id string) ActionCard {
	c, ok := cardCatalog[id]
	if !ok {
		panic(fmt.Sprintf("content: unknown card %q", id))
	}
	return c
}
