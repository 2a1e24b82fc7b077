package battle

import (
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/fib"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/player"
)

// CombatStats are derived per encounter from the player's six raw
// attributes and current tier; they are never stored.
type CombatStats struct {
	Atk   int          `json:"atk"`
	Def   int          `json:"def"`
	Spd   int          `json:"spd"`
	Crt   int          `json:"crt"`
	MaxHP int          `json:"maxHp"`
	MaxMP int          `json:"maxMp"`
	Level int          `json:"level"`
	Tier  content.Tier `json:"tier"`
}

// critCap bounds the critical chance regardless of luck stacking.
const critCap = 50

// ComputeStats derives combat stats from a progression snapshot. The
// tier multiplier (+10% per band) applies to attack, defense, and HP;
// crit is capped at 50.
func ComputeStats(snap player.Snapshot, tier player.TierInfo) CombatStats {
	mult := 1.0 + 0.1*float64(tier.Index)
	a := snap.Attributes

	atk := int(float64(a.Dev+a.Mkt/2) * mult)
	def := int(float64(a.Str+a.Com/2) * mult)
	spd := a.Cha + a.Mkt/2
	crt := 5 + a.Lck/2
	if crt > critCap {
		crt = critCap
	}
	maxHP := int(float64(fib.N(9)+a.Str*fib.N(4)) * mult)
	maxMP := fib.N(8) + a.Com

	return CombatStats{
		Atk:   atk,
		Def:   def,
		Spd:   spd,
		Crt:   crt,
		MaxHP: maxHP,
		MaxMP: maxMP,
		Level: snap.Level,
		Tier:  tier.Index,
	}
}
