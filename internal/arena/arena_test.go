package arena

import "testing"

func TestTopologySymmetric(t *testing.T) {
	// Every edge must exist in both directions.
	for _, p := range All() {
		for _, n := range p.Adjacent {
			if !Adjacent(n, p.ID) {
				t.Errorf("edge %d->%d has no reverse", p.ID, n)
			}
		}
	}
}

func TestRingSizes(t *testing.T) {
	counts := map[Ring]int{}
	for _, p := range All() {
		counts[p.Ring]++
	}
	for _, r := range []Ring{RingClose, RingMid, RingFar} {
		if counts[r] != 3 {
			t.Errorf("ring %s has %d positions, want 3", r, counts[r])
		}
	}
}

func TestCenterMostConnected(t *testing.T) {
	center := len(At(0).Adjacent)
	for _, p := range All()[1:] {
		if len(p.Adjacent) > center {
			t.Errorf("position %d has %d exits, more than center's %d", p.ID, len(p.Adjacent), center)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{0, 1, 1},  // close-close
		{0, 3, 1},  // close-mid
		{0, 6, 2},  // close-far
		{6, 0, 2},  // far-close
		{3, 7, 1},  // mid-far
		{6, 8, 1},  // far-far
	}
	for _, tc := range tests {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMeleeClassification(t *testing.T) {
	if !Melee(0, 1) {
		t.Error("adjacent close positions should be melee range")
	}
	if !Melee(3, 6) {
		t.Error("distance 1 should be melee range")
	}
	if Melee(0, 8) {
		t.Error("close vs far should be ranged")
	}
}

func TestRingModifier(t *testing.T) {
	close := RingModifier(RingClose)
	if close.Melee != 1.3 || close.Ranged != 0.7 {
		t.Errorf("close modifiers = %+v", close)
	}
	mid := RingModifier(RingMid)
	if mid.Melee != 1.0 || mid.Ranged != 1.0 || mid.Defense != 1.0 {
		t.Errorf("mid ring should be neutral, got %+v", mid)
	}
	far := RingModifier(RingFar)
	if far.Melee != 0.7 || far.Ranged != 1.3 {
		t.Errorf("far modifiers = %+v", far)
	}
}

func TestValidMoves(t *testing.T) {
	moves := ValidMoves(0, 4)
	for _, m := range moves {
		if m == 4 {
			t.Error("occupied position offered as a move")
		}
		if !Adjacent(0, m) {
			t.Errorf("non-adjacent move %d offered", m)
		}
	}
	if len(moves) != len(At(0).Adjacent)-1 {
		t.Errorf("expected %d moves, got %d", len(At(0).Adjacent)-1, len(moves))
	}
}

func TestValid(t *testing.T) {
	if Valid(-1) || Valid(9) {
		t.Error("out-of-range positions should be invalid")
	}
	if !Valid(0) || !Valid(8) {
		t.Error("in-range positions should be valid")
	}
}
