package content

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate cross-checks every catalog entry and returns the combined
// error list. Run at startup so a bad table row fails loudly instead of
// surfacing mid-battle.
func Validate() error {
	var err error

	for _, id := range enemyOrder {
		e, ok := enemyCatalog[id]
		if !ok {
			err = multierr.Append(err, fmt.Errorf("enemy order references unknown id %q", id))
			continue
		}
		if e.ID != id {
			err = multierr.Append(err, fmt.Errorf("enemy %q: id field %q does not match key", id, e.ID))
		}
		if e.Tier < TierEmber || e.Tier > TierInferno {
			err = multierr.Append(err, fmt.Errorf("enemy %q: tier %d out of range", id, e.Tier))
		}
		if e.BaseHP <= 0 {
			err = multierr.Append(err, fmt.Errorf("enemy %q: non-positive base hp %d", id, e.BaseHP))
		}
		if e.CritChance < 0 || e.CritChance > 50 {
			err = multierr.Append(err, fmt.Errorf("enemy %q: crit chance %d outside [0,50]", id, e.CritChance))
		}
		for _, drop := range e.Drops {
			if drop == "" {
				err = multierr.Append(err, fmt.Errorf("enemy %q: empty drop id", id))
			}
		}
		if e.Behavior != "" && !e.IsBoss {
			err = multierr.Append(err, fmt.Errorf("enemy %q: behavior script on non-boss", id))
		}
	}

	for _, id := range cardOrder {
		c, ok := cardCatalog[id]
		if !ok {
			err = multierr.Append(err, fmt.Errorf("card order references unknown id %q", id))
			continue
		}
		if c.ID != id {
			err = multierr.Append(err, fmt.Errorf("card %q: id field %q does not match key", id, c.ID))
		}
		if c.MPCost < 0 || c.TokenCost < 0 {
			err = multierr.Append(err, fmt.Errorf("card %q: negative cost", id))
		}
		if c.Damage < 0 || c.Block < 0 || c.Heal < 0 || c.MPRestore < 0 {
			err = multierr.Append(err, fmt.Errorf("card %q: negative payload", id))
		}
		switch c.Type {
		case CardAttack, CardDefense, CardSupport, CardSpecial:
		default:
			err = multierr.Append(err, fmt.Errorf("card %q: unknown type %q", id, c.Type))
		}
		switch c.Rarity {
		case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		default:
			err = multierr.Append(err, fmt.Errorf("card %q: unknown rarity %q", id, c.Rarity))
		}
		for _, tag := range c.Effects {
			if !KnownEffect(tag) {
				err = multierr.Append(err, fmt.Errorf("card %q: unknown effect tag %q", id, tag))
			}
		}
	}

	for _, id := range BaseDeck {
		if _, ok := cardCatalog[id]; !ok {
			err = multierr.Append(err, fmt.Errorf("base deck references unknown card %q", id))
		}
	}
	lastLevel := 0
	for _, unlock := range DeckUnlocks {
		if unlock.Level <= lastLevel {
			err = multierr.Append(err, fmt.Errorf("deck unlocks out of order at level %d", unlock.Level))
		}
		lastLevel = unlock.Level
		for _, id := range unlock.Cards {
			if _, ok := cardCatalog[id]; !ok {
				err = multierr.Append(err, fmt.Errorf("level %d unlock references unknown card %q", unlock.Level, id))
			}
		}
	}

	for _, id := range skillOrder {
		s, ok := skillCatalog[id]
		if !ok {
			err = multierr.Append(err, fmt.Errorf("skill order references unknown id %q", id))
			continue
		}
		if s.ID != id {
			err = multierr.Append(err, fmt.Errorf("skill %q: id field %q does not match key", id, s.ID))
		}
		if s.Cooldown <= 0 {
			err = multierr.Append(err, fmt.Errorf("skill %q: cooldown must be positive", id))
		}
		for _, tag := range s.Effects {
			if !KnownEffect(tag) {
				err = multierr.Append(err, fmt.Errorf("skill %q: unknown effect tag %q", id, tag))
			}
		}
	}

	return err
}
