package battle

import (
	"fmt"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/arena"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/fib"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/player"
)

// Standard small-bonus payloads for timed effects.
var (
	effectAmountSmall = fib.N(4) // 3
	effectAmountLarge = fib.N(5) // 5
	effectDuration    = fib.N(3) // 2 turns
)

// hasTag reports whether a tag list contains tag.
func hasTag(tags []content.EffectTag, tag content.EffectTag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// hasBuff reports whether the player holds an active buff of the type.
func (s *Session) hasBuff(tag content.EffectTag) bool {
	for _, b := range s.buffs {
		if b.Type == tag {
			return true
		}
	}
	return false
}

// buffAmount sums the amounts of all active buffs of the type.
func (s *Session) buffAmount(tag content.EffectTag) int {
	total := 0
	for _, b := range s.buffs {
		if b.Type == tag {
			total += b.Amount
		}
	}
	return total
}

// debuffAmount sums the amounts of all active enemy debuffs of the type.
func (s *Session) debuffAmount(tag content.EffectTag) int {
	total := 0
	for _, d := range s.enemyDebuffs {
		if d.Type == tag {
			total += d.Amount
		}
	}
	return total
}

// validateCardTarget checks a card's positional requirements before any
// cost is deducted.
func (s *Session) validateCardTarget(card content.ActionCard, target int) error {
	if !hasTag(card.Effects, content.EffectMove) {
		return nil
	}
	if !arena.Valid(target) {
		return fmt.Errorf("move requires a target position")
	}
	if target == s.enemyPos {
		return fmt.Errorf("position %d is occupied", target)
	}
	if !arena.Adjacent(s.playerPos, target) {
		return fmt.Errorf("position %d is not adjacent", target)
	}
	return nil
}

// resolveCard applies a validated card: damage pipeline first, then the
// stated block/heal/MP amounts, then each effect tag.
func (s *Session) resolveCard(card content.ActionCard, target int) {
	attrs := s.state.Get().Attributes

	if card.Damage > 0 {
		dealt := s.dealCardDamage(card, attrs)
		s.logf("%s hits %s for %d damage", card.Name, s.enemy.Name, dealt)
		if hasTag(card.Effects, content.EffectLifesteal) && dealt > 0 {
			heal := dealt / 2
			s.playerHP += heal
			if s.playerHP > s.stats.MaxHP {
				s.playerHP = s.stats.MaxHP
			}
			s.logf("%s drains %d HP", card.Name, heal)
		}
	}
	if card.Block > 0 {
		gain := card.Block
		if card.StatBonus != "" {
			gain += attrs.ByName(card.StatBonus) / 2
		}
		s.block += gain
		s.logf("%s grants %d block", card.Name, gain)
	}
	if card.Heal > 0 {
		s.playerHP += card.Heal
		if s.playerHP > s.stats.MaxHP {
			s.playerHP = s.stats.MaxHP
		}
		s.logf("%s restores %d HP", card.Name, card.Heal)
	}
	if card.MPRestore > 0 {
		s.playerMP += card.MPRestore
		if s.playerMP > s.stats.MaxMP {
			s.playerMP = s.stats.MaxMP
		}
		s.logf("%s restores %d MP", card.Name, card.MPRestore)
	}

	for _, tag := range card.Effects {
		s.applyEffect(card.Name, tag, target)
	}
}

// dealCardDamage runs the ordered damage pipeline and returns the HP
// actually removed: base → ring modifier → fomo → expose → defense →
// crit → floor.
func (s *Session) dealCardDamage(card content.ActionCard, attrs player.Attributes) int {
	base := float64(card.Damage + s.stats.Atk/2)
	if card.StatBonus != "" {
		base += float64(attrs.ByName(card.StatBonus))
	}

	mod := arena.RingModifier(arena.RingOf(s.playerPos))
	if arena.Melee(s.playerPos, s.enemyPos) {
		base *= mod.Melee
	} else {
		base *= mod.Ranged
	}

	if hasTag(card.Effects, content.EffectFomo) {
		missing := float64(s.stats.MaxHP-s.playerHP) / float64(s.stats.MaxHP)
		base *= 1 + 2*missing
	}
	if s.exposed {
		base *= 1.25
	}

	dmg := int(base)
	if !hasTag(card.Effects, content.EffectPierce) {
		dmg -= s.enemy.Def / fib.N(5)
		if dmg < 1 {
			dmg = 1
		}
	}

	if s.rng.Intn(100) < s.stats.Crt {
		dmg = dmg * 3 / 2
		s.logf("Critical hit!")
	}

	if dmg > s.enemy.HP {
		dmg = s.enemy.HP
	}
	s.enemy.HP -= dmg
	return dmg
}

// applyEffect pushes the timed buff, debuff, or one-shot flag for a
// tag. The switch is total over the closed tag set; an unknown tag is a
// programmer error in the content tables and panics.
func (s *Session) applyEffect(source string, tag content.EffectTag, target int) {
	switch tag {
	case content.EffectWeaken:
		s.enemyDebuffs = append(s.enemyDebuffs, Debuff{
			Type: tag, Amount: effectAmountSmall, Duration: effectDuration,
		})
		s.logf("%s weakens %s", source, s.enemy.Name)
	case content.EffectBurn:
		s.enemyDebuffs = append(s.enemyDebuffs, Debuff{
			Type: tag, Damage: effectAmountSmall, Duration: effectDuration,
		})
		s.logf("%s sets %s ablaze", source, s.enemy.Name)
	case content.EffectStun:
		s.stunned = true
		s.logf("%s stuns %s", source, s.enemy.Name)
	case content.EffectDefenseBuff:
		s.buffs = append(s.buffs, Buff{Type: tag, Amount: effectAmountLarge, Duration: effectDuration})
		s.logf("%s raises your defense", source)
	case content.EffectAttackBuff:
		s.buffs = append(s.buffs, Buff{Type: tag, Amount: effectAmountLarge, Duration: effectDuration})
		s.logf("%s raises your attack", source)
	case content.EffectSpeedBuff:
		s.buffs = append(s.buffs, Buff{Type: tag, Amount: effectAmountSmall, Duration: effectDuration})
		s.logf("%s raises your speed", source)
	case content.EffectReflect:
		s.buffs = append(s.buffs, Buff{Type: tag, Amount: 50, Duration: 1})
		s.logf("%s mirrors incoming damage", source)
	case content.EffectImmunity:
		s.buffs = append(s.buffs, Buff{Type: tag, Duration: 1})
		s.logf("%s makes you untouchable this turn", source)
	case content.EffectExpose:
		s.exposed = true
		s.logf("%s exposes %s", source, s.enemy.Name)
	case content.EffectCounter:
		s.counter = true
		s.logf("%s readies a counter", source)
	case content.EffectMove:
		// Destination was validated before costs were deducted.
		s.playerPos = target
		s.logf("%s shifts you to the %s ring", source, arena.RingOf(target))
	case content.EffectSwap:
		s.playerPos, s.enemyPos = s.enemyPos, s.playerPos
		s.logf("%s swaps your position with %s", source, s.enemy.Name)
	case content.EffectFomo, content.EffectLifesteal, content.EffectPierce:
		// Consumed inside the damage pipeline; nothing to push here.
	default:
		panic(fmt.Sprintf("battle: unhandled effect tag %q", tag))
	}
}
