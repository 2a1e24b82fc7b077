package battle

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/fib"
)

func intToDecimal(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// tierMultiplier is (1 + 0.1*tier) as an exact decimal.
func tierMultiplier(tier content.Tier) decimal.Decimal {
	return decimal.New(int64(10+tier), -1)
}

// grantRewards converts the victory into XP, tokens, and item drops
// through the progression collaborators. Drop rolls are independent per
// catalog entry, so an enemy listing the same item twice can pay it
// twice.
func (s *Session) grantRewards() *RewardGrant {
	mult := tierMultiplier(s.enemy.Tier)

	xp := int(intToDecimal(s.enemy.Rewards.XP).Mul(mult).IntPart())
	tokens := intToDecimal(s.enemy.Rewards.Tokens).Mul(mult)

	s.state.AddXP(xp)
	s.state.AddTokens(tokens)

	lck := s.state.Get().Attributes.Lck
	chance := fib.N(6) + lck/2

	var drops []string
	for _, itemID := range s.enemy.Drops {
		if s.rng.Intn(100) < chance {
			s.inv.AddItem(itemID, 1)
			drops = append(drops, itemID)
		}
	}

	s.logf("Victory! +%d XP, +%s tokens", xp, tokens.String())
	for _, d := range drops {
		s.logf("Loot: %s", d)
	}

	return &RewardGrant{XP: xp, Tokens: tokens, Drops: drops}
}

// PickEncounter selects a random non-boss enemy within reach of the
// player's level: anything up to one tier above the player's band.
func PickEncounter(level int, rng *rand.Rand) (string, bool) {
	maxTier := content.Tier(level/10) + 1
	if maxTier > content.TierInferno {
		maxTier = content.TierInferno
	}

	var pool []string
	for _, e := range content.ListEnemies() {
		if !e.IsBoss && e.Tier <= maxTier {
			pool = append(pool, e.ID)
		}
	}
	if len(pool) == 0 {
		return "", false
	}
	return pool[rng.Intn(len(pool))], true
}
