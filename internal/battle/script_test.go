package battle

import (
	"strings"
	"testing"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
)

func TestBehaviorScriptOverride(t *testing.T) {
	tpl, ok := content.GetEnemy("bear_whale")
	if !ok {
		t.Fatal("bear_whale missing from catalog")
	}
	bs, err := newBehaviorScript(tpl.Behavior)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	name, err := bs.decide(map[string]any{"turn": 4, "enemyHpPct": 1.0})
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if name != "heavy" {
		t.Errorf("turn 4 override = %q, want heavy", name)
	}

	name, err = bs.decide(map[string]any{"turn": 3, "enemyHpPct": 1.0})
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if name != "" {
		t.Errorf("turn 3 override = %q, want none", name)
	}
}

func TestBehaviorScriptMustRegister(t *testing.T) {
	if _, err := newBehaviorScript(`var x = 1;`); err == nil {
		t.Fatal("script without a register call should fail to load")
	}
}

func TestBehaviorScriptRejectsBrokenSource(t *testing.T) {
	if _, err := newBehaviorScript(`register(`); err == nil {
		t.Fatal("syntax error should fail to load")
	}
}

func TestBehaviorScriptSandbox(t *testing.T) {
	// The sandbox nulls out dynamic evaluation; a script relying on it
	// blows up at decide time and the caller falls back to the table.
	bs, err := newBehaviorScript(`register(function(view) { return eval("'heavy'"); });`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := bs.decide(map[string]any{"turn": 1}); err == nil {
		t.Fatal("eval should be unavailable inside behavior scripts")
	}
}

func TestBehaviorScriptTimeout(t *testing.T) {
	bs, err := newBehaviorScript(`register(function(view) { while (true) {} });`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	_, err = bs.decide(map[string]any{"turn": 1})
	if err == nil || !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("runaway script should be interrupted, got %v", err)
	}
}

func TestBrokenBehaviorFallsBackToTable(t *testing.T) {
	s, _, _ := newTestSession(t, 30, noCritRand())
	startBattle(t, s, "bear_whale")
	// Force the session onto a hook that always errors; the enemy turn
	// must still resolve through the built-in flavor table.
	bs, err := newBehaviorScript(`register(function(view) { return view.no.such.field; });`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	s.behavior = bs

	res := s.EndTurn()
	if !res.Success {
		t.Fatalf("end turn failed: %s", res.Message)
	}
	if s.playerHP == s.stats.MaxHP {
		t.Error("enemy should still attack when its script errors")
	}
}
