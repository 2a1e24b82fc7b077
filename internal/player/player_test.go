package player

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
)

func TestAttributesByName(t *testing.T) {
	a := Attributes{Dev: 1, Str: 2, Com: 3, Cha: 4, Mkt: 5, Lck: 6}
	tests := []struct {
		name string
		want int
	}{
		{"dev", 1}, {"str", 2}, {"com", 3}, {"cha", 4}, {"mkt", 5}, {"lck", 6},
		{"unknown", 0}, {"", 0},
	}
	for _, tc := range tests {
		if got := a.ByName(tc.name); got != tc.want {
			t.Errorf("ByName(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestAddXPLevelsUp(t *testing.T) {
	p := NewMemoryState(1, Attributes{})
	p.AddXP(55) // exactly one level at level 1
	if got := p.Get().Level; got != 2 {
		t.Errorf("level = %d, want 2", got)
	}

	p.AddXP(0)
	p.AddXP(-10)
	if got := p.Get().Level; got != 2 {
		t.Errorf("non-positive xp should not change level, got %d", got)
	}
}

func TestAddTokensFloor(t *testing.T) {
	p := NewMemoryState(1, Attributes{})
	start := p.Get().Tokens

	// Overdraw is dropped silently.
	p.AddTokens(start.Neg().Sub(decimal.NewFromInt(1)))
	if !p.Get().Tokens.Equal(start) {
		t.Errorf("overdraw should leave balance unchanged, got %s", p.Get().Tokens)
	}

	// Exact spend to zero is allowed.
	p.AddTokens(start.Neg())
	if !p.Get().Tokens.IsZero() {
		t.Errorf("balance should be zero, got %s", p.Get().Tokens)
	}
}

func TestSpendInfluence(t *testing.T) {
	p := NewMemoryState(1, Attributes{})
	have := p.Get().Influence

	if p.SpendInfluence(have + 1) {
		t.Error("spend beyond balance should fail")
	}
	if p.Get().Influence != have {
		t.Error("failed spend must not deduct")
	}
	if !p.SpendInfluence(have) {
		t.Error("exact spend should succeed")
	}
	if p.Get().Influence != 0 {
		t.Errorf("influence = %d, want 0", p.Get().Influence)
	}
}

func TestCurrentTier(t *testing.T) {
	tests := []struct {
		level int
		want  content.Tier
	}{
		{1, content.TierEmber},
		{9, content.TierEmber},
		{10, content.TierSpark},
		{25, content.TierFlame},
		{39, content.TierBlaze},
		{40, content.TierInferno},
		{99, content.TierInferno},
	}
	for _, tc := range tests {
		p := NewMemoryState(tc.level, Attributes{})
		if got := p.CurrentTier().Index; got != tc.want {
			t.Errorf("level %d tier = %s, want %s", tc.level, got, tc.want)
		}
	}
}

func TestInventory(t *testing.T) {
	inv := NewMemoryInventory()
	inv.AddItem("whale_tooth", 1)
	inv.AddItem("whale_tooth", 2)
	inv.AddItem("nothing", 0)

	if got := inv.Count("whale_tooth"); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
	if got := inv.Count("nothing"); got != 0 {
		t.Errorf("zero-quantity add should be ignored, got %d", got)
	}

	items := inv.Items()
	items["whale_tooth"] = 99
	if inv.Count("whale_tooth") != 3 {
		t.Error("Items() must return a copy")
	}
}
