package battle

import (
	"errors"
	"fmt"
	"time"

	"github.com/dop251/goja"
)

// Boss behavior scripts are small JS snippets from the enemy catalog.
// A script calls register(fn) with a decide(view) hook; the AI consults
// the hook for an attack-flavor override and falls back to the built-in
// table when the hook returns an empty string or misbehaves.

const (
	scriptInitTimeout = 2 * time.Second
	scriptCallTimeout = 500 * time.Millisecond
)

type behaviorScript struct {
	runtime  *goja.Runtime
	decideFn goja.Callable
}

// newBehaviorScript compiles a behavior snippet in a sandboxed runtime.
func newBehaviorScript(source string) (*behaviorScript, error) {
	bs := &behaviorScript{runtime: goja.New()}

	bs.runtime.Set("register", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			if fn, ok := goja.AssertFunction(call.Arguments[0]); ok {
				bs.decideFn = fn
			}
		}
		return goja.Undefined()
	})

	// Scripts decide attack flavors, nothing else.
	bs.runtime.Set("require", goja.Undefined())
	bs.runtime.Set("fetch", goja.Undefined())
	bs.runtime.Set("eval", goja.Undefined())
	bs.runtime.Set("Function", goja.Undefined())

	if err := bs.runWithTimeout(scriptInitTimeout, func() error {
		_, err := bs.runtime.RunString(source)
		return err
	}); err != nil {
		return nil, fmt.Errorf("behavior script failed: %w", err)
	}
	if bs.decideFn == nil {
		return nil, errors.New("behavior script registered no decide hook")
	}
	return bs, nil
}

// decide calls the registered hook and returns its flavor name. An
// empty string means no override.
func (bs *behaviorScript) decide(view map[string]any) (string, error) {
	var name string
	err := bs.runWithTimeout(scriptCallTimeout, func() error {
		value, err := bs.decideFn(goja.Undefined(), bs.runtime.ToValue(view))
		if err != nil {
			return err
		}
		name = value.String()
		return nil
	})
	if err != nil {
		return "", err
	}
	if name == "undefined" || name == "null" {
		return "", nil
	}
	return name, nil
}

// runWithTimeout interrupts the runtime if fn overruns its budget.
func (bs *behaviorScript) runWithTimeout(timeout time.Duration, fn func() error) error {
	timer := time.AfterFunc(timeout, func() {
		bs.runtime.Interrupt("script timeout")
	})
	defer timer.Stop()
	return fn()
}

// behaviorView is the read-only state handed to a decide hook.
func (s *Session) behaviorView() map[string]any {
	return map[string]any{
		"turn":        s.turn,
		"enemyHpPct":  float64(s.enemy.HP) / float64(s.enemy.MaxHP),
		"playerHpPct": float64(s.playerHP) / float64(s.stats.MaxHP),
		"playerPos":   s.playerPos,
		"enemyPos":    s.enemyPos,
		"block":       s.block,
	}
}
