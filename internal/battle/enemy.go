package battle

import (
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/fib"
)

// attackFlavor is one of the enemy's attack styles.
type attackFlavor struct {
	name     string
	mult     float64
	critMult float64
}

var flavors = map[string]attackFlavor{
	"normal":     {name: "normal", mult: 1.0, critMult: 1.0},
	"aggressive": {name: "aggressive", mult: 1.3, critMult: 1.0},
	"heavy":      {name: "heavy", mult: 1.5, critMult: 1.0},
	"special":    {name: "special", mult: 1.2, critMult: 1.5},
	"desperate":  {name: "desperate", mult: 1.8, critMult: 1.0},
	"finisher":   {name: "finisher", mult: 2.0, critMult: 1.0},
}

// chooseFlavor picks the enemy's attack style. Bosses unlock desperate
// and finisher behaviors behind HP thresholds with an extra random
// gate; regular enemies roll between aggressive, heavy, and normal. A
// boss behavior script, when present, may override the choice.
func (s *Session) chooseFlavor() attackFlavor {
	if s.behavior != nil {
		if name, err := s.behavior.decide(s.behaviorView()); err == nil {
			if f, ok := flavors[name]; ok {
				return f
			}
		}
	}

	enemyHPFrac := float64(s.enemy.HP) / float64(s.enemy.MaxHP)
	playerHPFrac := float64(s.playerHP) / float64(s.stats.MaxHP)

	if s.enemy.IsBoss {
		if enemyHPFrac < 0.3 && s.rng.Intn(100) < 50 {
			return flavors["desperate"]
		}
		if playerHPFrac < 0.3 && s.rng.Intn(100) < 40 {
			return flavors["finisher"]
		}
		if s.rng.Intn(100) < 25 {
			return flavors["special"]
		}
	}

	roll := s.rng.Intn(100)
	switch {
	case roll < 30:
		return flavors["aggressive"]
	case roll < 50:
		return flavors["heavy"]
	default:
		return flavors["normal"]
	}
}

// enemyTurn resolves the enemy's retaliation. The pipeline mirrors the
// player's: flavor multiplier → weaken reduction → crit → defense
// subtract → counter → block → reflect → HP floor.
func (s *Session) enemyTurn() {
	flavor := s.chooseFlavor()

	dmg := int(float64(s.enemy.Atk) * flavor.mult)
	if weaken := s.debuffAmount(content.EffectWeaken); weaken > 0 {
		dmg -= weaken
		if dmg < 1 {
			dmg = 1
		}
	}

	critChance := int(float64(s.enemy.CritChance) * flavor.critMult)
	if s.rng.Intn(100) < critChance {
		dmg = dmg * 3 / 2
		s.logf("%s lands a critical hit!", s.enemy.Name)
	}

	totalDef := s.stats.Def + s.buffAmount(content.EffectDefenseBuff)
	dmg -= totalDef / fib.N(5)
	if dmg < 1 {
		dmg = 1
	}

	if s.hasBuff(content.EffectImmunity) {
		s.logf("%s attacks, but you are untouchable", s.enemy.Name)
		return
	}

	// Counter strikes back with half the incoming damage before block
	// absorbs anything.
	if s.counter {
		riposte := dmg / 2
		s.enemy.HP -= riposte
		if s.enemy.HP < 0 {
			s.enemy.HP = 0
		}
		s.logf("You counter for %d damage", riposte)
	}

	if s.block > 0 {
		absorbed := min(s.block, dmg)
		dmg -= absorbed
		s.block -= absorbed
		s.logf("Your block absorbs %d damage", absorbed)
	}

	if dmg > 0 {
		if reflect := s.buffAmount(content.EffectReflect); reflect > 0 {
			back := dmg * reflect / 100
			s.enemy.HP -= back
			if s.enemy.HP < 0 {
				s.enemy.HP = 0
			}
			s.logf("You reflect %d damage back", back)
		}
	}

	s.playerHP -= dmg
	if s.playerHP < 0 {
		s.playerHP = 0
	}
	if flavor.name == "normal" {
		s.logf("%s attacks for %d damage", s.enemy.Name, dmg)
	} else {
		s.logf("%s uses a %s attack for %d damage", s.enemy.Name, flavor.name, dmg)
	}
}
