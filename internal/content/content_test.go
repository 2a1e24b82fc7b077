package content

import "testing"

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("catalog validation failed: %v", err)
	}
}

func TestGetEnemy(t *testing.T) {
	e, ok := GetEnemy("fud_bot")
	if !ok {
		t.Fatal("fud_bot not found")
	}
	if e.Name != "FUD Bot" {
		t.Errorf("expected name 'FUD Bot', got %q", e.Name)
	}
	if e.BaseHP != 21 {
		t.Errorf("expected base hp 21, got %d", e.BaseHP)
	}
	if e.Tier != TierEmber {
		t.Errorf("expected tier EMBER, got %s", e.Tier)
	}

	if _, ok := GetEnemy("no_such_enemy"); ok {
		t.Error("lookup of unknown enemy should fail")
	}
}

func TestGetCard(t *testing.T) {
	c, ok := GetCard("quick_strike")
	if !ok {
		t.Fatal("quick_strike not found")
	}
	if c.Damage != 8 {
		t.Errorf("expected damage 8, got %d", c.Damage)
	}
	if c.MPCost != 0 {
		t.Errorf("expected mp cost 0, got %d", c.MPCost)
	}
}

func TestListOrdering(t *testing.T) {
	enemies := ListEnemies()
	if len(enemies) != len(enemyOrder) {
		t.Fatalf("expected %d enemies, got %d", len(enemyOrder), len(enemies))
	}
	if enemies[0].ID != "fud_bot" {
		t.Errorf("expected fud_bot first, got %s", enemies[0].ID)
	}

	cards := ListCards()
	if len(cards) != len(cardOrder) {
		t.Fatalf("expected %d cards, got %d", len(cardOrder), len(cards))
	}

	skills := ListSkills()
	if len(skills) != len(skillOrder) {
		t.Fatalf("expected %d skills, got %d", len(skillOrder), len(skills))
	}
}

func TestTierNames(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierEmber, "EMBER"},
		{TierSpark, "SPARK"},
		{TierFlame, "FLAME"},
		{TierBlaze, "BLAZE"},
		{TierInferno, "INFERNO"},
		{Tier(9), "UNKNOWN"},
	}
	for _, tc := range tests {
		if got := tc.tier.String(); got != tc.want {
			t.Errorf("Tier(%d).String() = %q, want %q", tc.tier, got, tc.want)
		}
	}
}

func TestKnownEffect(t *testing.T) {
	if !KnownEffect(EffectBurn) {
		t.Error("burn should be a known effect")
	}
	if KnownEffect(EffectTag("hyperinflation")) {
		t.Error("unknown tag should not validate")
	}
}

func TestBossBehaviorOnlyOnBosses(t *testing.T) {
	for _, e := range ListEnemies() {
		if e.Behavior != "" && !e.IsBoss {
			t.Errorf("enemy %s carries a behavior script but is not a boss", e.ID)
		}
	}
}

func TestMustCardPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCard with unknown id should panic")
		}
	}()
	MustCard("definitely_not_a_card")
}
