package deck

import (
	"math/rand"
	"testing"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestPoolFor(t *testing.T) {
	base := len(content.BaseDeck)
	tests := []struct {
		level int
		want  int
	}{
		{1, base},
		{4, base},
		{5, base + 4},
		{14, base + 4},
		{15, base + 8},
		{25, base + 10},
		{40, base + 12},
		{99, base + 12},
	}
	for _, tc := range tests {
		if got := len(PoolFor(tc.level)); got != tc.want {
			t.Errorf("PoolFor(%d) has %d cards, want %d", tc.level, got, tc.want)
		}
	}
}

func TestBuildShuffles(t *testing.T) {
	d := Build(1, newRng())
	if d.PoolSize() != len(content.BaseDeck) {
		t.Fatalf("pool size %d, want %d", d.PoolSize(), len(content.BaseDeck))
	}
	if d.DrawCount() != d.PoolSize() {
		t.Errorf("fresh deck should have the full pool in the draw pile")
	}
	if d.DiscardCount() != 0 {
		t.Errorf("fresh deck should have an empty discard pile")
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := Build(1, rand.New(rand.NewSource(7)))
	b := Build(1, rand.New(rand.NewSource(7)))
	ca := a.Draw(a.PoolSize())
	cb := b.Draw(b.PoolSize())
	for i := range ca {
		if ca[i].ID != cb[i].ID {
			t.Fatalf("same seed produced different orders at index %d: %s vs %s", i, ca[i].ID, cb[i].ID)
		}
	}
}

func TestDraw(t *testing.T) {
	d := Build(1, newRng())
	hand := d.Draw(5)
	if len(hand) != 5 {
		t.Fatalf("drew %d cards, want 5", len(hand))
	}
	if d.DrawCount() != d.PoolSize()-5 {
		t.Errorf("draw pile has %d cards, want %d", d.DrawCount(), d.PoolSize()-5)
	}
}

func TestDrawRecyclesDiscard(t *testing.T) {
	d := Build(1, newRng())
	total := d.PoolSize()

	// Drain the draw pile, discarding everything.
	for _, c := range d.Draw(total) {
		d.Discard(c)
	}
	if d.DrawCount() != 0 || d.DiscardCount() != total {
		t.Fatalf("expected empty draw / full discard, got %d / %d", d.DrawCount(), d.DiscardCount())
	}

	// Drawing now must trigger exactly one reshuffle and still yield
	// the requested count.
	got := d.Draw(3)
	if len(got) != 3 {
		t.Fatalf("drew %d cards after recycle, want 3", len(got))
	}
	if d.DiscardCount() != 0 {
		t.Errorf("discard pile should be empty after recycle, has %d", d.DiscardCount())
	}
	if d.DrawCount() != total-3 {
		t.Errorf("draw pile has %d cards, want %d", d.DrawCount(), total-3)
	}
}

func TestDrawMidPileRecycle(t *testing.T) {
	d := Build(1, newRng())
	total := d.PoolSize()

	// Leave 2 cards in the draw pile, discard the rest.
	for _, c := range d.Draw(total - 2) {
		d.Discard(c)
	}

	// Requesting 5 crosses the pile boundary mid-draw.
	got := d.Draw(5)
	if len(got) != 5 {
		t.Fatalf("drew %d cards across a recycle, want 5", len(got))
	}
	if d.DrawCount()+d.DiscardCount()+5 != total {
		t.Errorf("zones no longer partition the pool: draw %d + discard %d + drawn 5 != %d",
			d.DrawCount(), d.DiscardCount(), total)
	}
}

func TestDrawExhausted(t *testing.T) {
	d := Build(1, newRng())
	got := d.Draw(d.PoolSize() + 10)
	if len(got) != d.PoolSize() {
		t.Errorf("drew %d cards from a %d-card pool", len(got), d.PoolSize())
	}
	if len(d.Draw(1)) != 0 {
		t.Error("drawing from fully-held pool should yield nothing")
	}
}

func TestZonePartitionInvariant(t *testing.T) {
	d := Build(15, newRng())
	total := d.PoolSize()
	held := 0

	rng := newRng()
	for turn := 0; turn < 50; turn++ {
		drawn := d.Draw(1 + rng.Intn(3))
		held += len(drawn)
		// Randomly discard some of what we hold.
		for _, c := range drawn {
			if rng.Intn(2) == 0 {
				d.Discard(c)
				held--
			}
		}
		if d.DrawCount()+d.DiscardCount()+held != total {
			t.Fatalf("turn %d: zones sum to %d, want %d",
				turn, d.DrawCount()+d.DiscardCount()+held, total)
		}
	}
}
