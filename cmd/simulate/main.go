// Command simulate auto-plays arena battles for balance tuning: it
// pits a scripted player policy against an enemy and prints outcome
// statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/battle"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/player"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/ratelimit"
)

func main() {
	enemyID := flag.String("enemy", "fud_bot", "enemy to fight")
	level := flag.Int("level", 1, "player level")
	dev := flag.Int("dev", 5, "dev attribute")
	str := flag.Int("str", 5, "str attribute")
	com := flag.Int("com", 5, "com attribute")
	battles := flag.Int("battles", 100, "number of battles to run")
	seed := flag.Int64("seed", 1, "base RNG seed")
	maxTurns := flag.Int("max-turns", 50, "turn cap per battle")
	verbose := flag.Bool("v", false, "print per-battle logs")
	flag.Parse()

	if _, ok := content.GetEnemy(*enemyID); !ok {
		fmt.Fprintf(os.Stderr, "unknown enemy: %s\n", *enemyID)
		fmt.Fprintln(os.Stderr, "known enemies:")
		for _, e := range content.ListEnemies() {
			fmt.Fprintf(os.Stderr, "  %s (tier %s)\n", e.ID, e.Tier)
		}
		os.Exit(1)
	}

	attrs := player.Attributes{Dev: *dev, Str: *str, Com: *com}

	var victories, defeats, stalls, totalTurns int
	for i := 0; i < *battles; i++ {
		outcome, turns := runBattle(*enemyID, *level, attrs, *seed+int64(i), *maxTurns, *verbose)
		totalTurns += turns
		switch outcome {
		case "victory":
			victories++
		case "defeat":
			defeats++
		default:
			stalls++
		}
	}

	fmt.Printf("\n=== %s vs level %d player, %d battles ===\n", *enemyID, *level, *battles)
	fmt.Printf("victories: %d (%.1f%%)\n", victories, pct(victories, *battles))
	fmt.Printf("defeats:   %d (%.1f%%)\n", defeats, pct(defeats, *battles))
	if stalls > 0 {
		fmt.Printf("stalled:   %d (%.1f%%)\n", stalls, pct(stalls, *battles))
	}
	fmt.Printf("avg turns: %.1f\n", float64(totalTurns)/float64(*battles))
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

// runBattle plays one encounter with a greedy policy: play every
// affordable damage or support card, then end the turn.
func runBattle(enemyID string, level int, attrs player.Attributes, seed int64, maxTurns int, verbose bool) (string, int) {
	state := player.NewMemoryState(level, attrs)
	inv := player.NewMemoryInventory()

	// The simulator is not a real client; run the limiter on a clock
	// that always satisfies the minimum interval.
	now := time.Unix(0, 0)
	limiter := ratelimit.NewWithClock(func() time.Time {
		now = now.Add(time.Second)
		return now
	})

	sess := battle.New(battle.Config{
		Player:    state,
		Inventory: inv,
		Seed:      seed,
		Limiter:   limiter,
	})
	if res := sess.Start(enemyID); !res.Success {
		fmt.Fprintf(os.Stderr, "start failed: %s\n", res.Message)
		os.Exit(1)
	}

	for turn := 0; turn < maxTurns; turn++ {
		for {
			snap := sess.Snapshot()
			idx := pickCard(snap)
			if idx < 0 {
				break
			}
			res := sess.PlayCard(idx, -1)
			if !res.Success {
				break
			}
			if verbose {
				printLog(res.State)
			}
			if res.Victory {
				return "victory", res.State.Turn
			}
		}

		res := sess.EndTurn()
		if verbose && res.State != nil {
			printLog(res.State)
		}
		if res.Victory {
			return "victory", res.State.Turn
		}
		if res.Defeat {
			return "defeat", res.State.Turn
		}
	}
	return "stall", maxTurns
}

// pickCard returns the index of the best playable card: highest damage
// first, then the cheapest non-positional utility.
func pickCard(snap *battle.Snapshot) int {
	best, bestDamage := -1, 0
	for i, c := range snap.Hand {
		if c.MPCost > snap.PlayerMP || c.TokenCost > 0 {
			continue
		}
		if hasMoveEffect(c) || hasSwapEffect(c) {
			continue
		}
		if c.Damage > bestDamage {
			best, bestDamage = i, c.Damage
		}
	}
	if best >= 0 {
		return best
	}
	// No attack affordable; heal if hurt.
	for i, c := range snap.Hand {
		if c.MPCost > snap.PlayerMP || c.TokenCost > 0 {
			continue
		}
		if c.Heal > 0 && snap.PlayerHP < snap.PlayerMaxHP/2 {
			return i
		}
		if c.MPRestore > 0 && snap.PlayerMP < c.MPRestore {
			return i
		}
	}
	return -1
}

func hasMoveEffect(c content.ActionCard) bool {
	for _, e := range c.Effects {
		if e == content.EffectMove {
			return true
		}
	}
	return false
}

func hasSwapEffect(c content.ActionCard) bool {
	for _, e := range c.Effects {
		if e == content.EffectSwap {
			return true
		}
	}
	return false
}

func printLog(snap *battle.Snapshot) {
	if snap == nil {
		return
	}
	for _, line := range snap.Log {
		fmt.Println(line)
	}
	fmt.Printf("-- turn %d | you %d/%d HP %d/%d MP | %s %d/%d HP --\n",
		snap.Turn, snap.PlayerHP, snap.PlayerMaxHP, snap.PlayerMP, snap.PlayerMaxMP,
		snap.Enemy.Name, snap.Enemy.HP, snap.Enemy.MaxHP)
}
