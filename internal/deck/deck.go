// Package deck manages the player's card pool during a battle: the
// draw pile and discard pile live here, the hand lives on the battle
// session. Together the three zones always partition the unlocked pool.
package deck

import (
	"math/rand"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
)

// Deck holds the two hidden zones of the card pool.
type Deck struct {
	draw    []content.ActionCard
	discard []content.ActionCard
	pool    int
	rng     *rand.Rand
}

// PoolFor returns the card IDs unlocked at the given player level: the
// base deck plus every unlock pool at or below the level.
func PoolFor(level int) []string {
	pool := make([]string, 0, len(content.BaseDeck)+8)
	pool = append(pool, content.BaseDeck...)
	for _, unlock := range content.DeckUnlocks {
		if level >= unlock.Level {
			pool = append(pool, unlock.Cards...)
		}
	}
	return pool
}

// Build assembles and shuffles the draw pile for a player level. The
// rng drives the Fisher-Yates shuffle so battles are reproducible under
// a fixed seed.
func Build(level int, rng *rand.Rand) *Deck {
	ids := PoolFor(level)
	cards := make([]content.ActionCard, len(ids))
	for i, id := range ids {
		cards[i] = content.MustCard(id)
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{draw: cards, pool: len(cards), rng: rng}
}

// Draw pops up to n cards from the draw pile. If the pile runs out
// mid-draw the discard pile is reshuffled into a fresh draw pile and
// drawing continues, so Draw only comes up short when both piles
// together hold fewer than n cards.
func (d *Deck) Draw(n int) []content.ActionCard {
	out := make([]content.ActionCard, 0, n)
	for len(out) < n {
		if len(d.draw) == 0 {
			if len(d.discard) == 0 {
				break
			}
			d.recycle()
		}
		out = append(out, d.draw[0])
		d.draw = d.draw[1:]
	}
	return out
}

// Discard appends a played card to the discard pile.
func (d *Deck) Discard(c content.ActionCard) {
	d.discard = append(d.discard, c)
}

// recycle shuffles the discard pile into a new draw pile.
func (d *Deck) recycle() {
	d.draw = d.discard
	d.discard = nil
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// DrawCount returns the number of cards left in the draw pile.
func (d *Deck) DrawCount() int { return len(d.draw) }

// DiscardCount returns the number of cards in the discard pile.
func (d *Deck) DiscardCount() int { return len(d.discard) }

// PoolSize returns the total unlocked pool size the deck was built with.
func (d *Deck) PoolSize() int { return d.pool }
