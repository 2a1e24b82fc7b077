// Package player defines the progression collaborators the battle
// engine consumes. The engine only sees the State and Inventory
// interfaces; the in-memory implementations here back the service and
// the tests. Persistent account storage is a separate concern.
package player

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/content"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/fib"
)

// Attributes are the six raw stats combat stats derive from.
type Attributes struct {
	Dev int `json:"dev"`
	Str int `json:"str"`
	Com int `json:"com"`
	Cha int `json:"cha"`
	Mkt int `json:"mkt"`
	Lck int `json:"lck"`
}

// ByName returns an attribute by its table name. Unknown names return
// 0; card StatBonus fields are validated against this set at startup.
func (a Attributes) ByName(name string) int {
	switch name {
	case "dev":
		return a.Dev
	case "str":
		return a.Str
	case "com":
		return a.Com
	case "cha":
		return a.Cha
	case "mkt":
		return a.Mkt
	case "lck":
		return a.Lck
	default:
		return 0
	}
}

// TierInfo pairs a tier index with its display name.
type TierInfo struct {
	Index content.Tier `json:"index"`
	Name  string       `json:"name"`
}

// Snapshot is a point-in-time read of a player's progression.
type Snapshot struct {
	Attributes   Attributes      `json:"attributes"`
	Level        int             `json:"level"`
	XP           int             `json:"xp"`
	Tokens       decimal.Decimal `json:"tokens"`
	Influence    int             `json:"influence"`
	MaxInfluence int             `json:"maxInfluence"`
}

// State is the progression collaborator contract the battle engine
// reads and mutates.
type State interface {
	Get() Snapshot
	AddXP(n int)
	// AddTokens credits the wallet; a negative amount spends. A spend
	// that would take the balance negative is dropped silently, so
	// callers validate affordability first.
	AddTokens(amount decimal.Decimal)
	// SpendInfluence deducts n influence, reporting whether the player
	// could afford it. Nothing is deducted on false.
	SpendInfluence(n int) bool
	CurrentTier() TierInfo
}

// Inventory is the item-storage collaborator contract.
type Inventory interface {
	AddItem(itemID string, quantity int)
}

// MemoryState is the in-process State implementation.
type MemoryState struct {
	mu           sync.Mutex
	attrs        Attributes
	level        int
	xp           int
	tokens       decimal.Decimal
	influence    int
	maxInfluence int
}

// NewMemoryState creates a player at the given level with the given
// attributes, a starting wallet, and full influence.
func NewMemoryState(level int, attrs Attributes) *MemoryState {
	if level < 1 {
		level = 1
	}
	return &MemoryState{
		attrs:        attrs,
		level:        level,
		tokens:       decimal.NewFromInt(int64(fib.N(9))),
		influence:    fib.N(7),
		maxInfluence: fib.N(7),
	}
}

// Get returns a snapshot of the current progression.
func (m *MemoryState) Get() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Attributes:   m.attrs,
		Level:        m.level,
		XP:           m.xp,
		Tokens:       m.tokens,
		Influence:    m.influence,
		MaxInfluence: m.maxInfluence,
	}
}

// xpToNext is the XP required to advance from the given level.
func xpToNext(level int) int {
	return fib.N(10) * level
}

// AddXP credits experience and applies any level-ups.
func (m *MemoryState) AddXP(n int) {
	if n <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.xp += n
	for m.xp >= xpToNext(m.level) {
		m.xp -= xpToNext(m.level)
		m.level++
	}
}

// AddTokens credits or spends wallet tokens. Spends that would
// overdraw are dropped.
func (m *MemoryState) AddTokens(amount decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.tokens.Add(amount)
	if next.IsNegative() {
		return
	}
	m.tokens = next
}

// SpendInfluence deducts influence if affordable.
func (m *MemoryState) SpendInfluence(n int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n < 0 || m.influence < n {
		return false
	}
	m.influence -= n
	return true
}

// CurrentTier maps level to a tier band: one tier per ten levels,
// capped at INFERNO.
func (m *MemoryState) CurrentTier() TierInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := content.Tier(m.level / 10)
	if idx > content.TierInferno {
		idx = content.TierInferno
	}
	return TierInfo{Index: idx, Name: idx.String()}
}

// MemoryInventory is the in-process Inventory implementation.
type MemoryInventory struct {
	mu    sync.Mutex
	items map[string]int
}

// NewMemoryInventory creates an empty inventory.
func NewMemoryInventory() *MemoryInventory {
	return &MemoryInventory{items: make(map[string]int)}
}

// AddItem credits quantity of an item.
func (m *MemoryInventory) AddItem(itemID string, quantity int) {
	if quantity <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[itemID] += quantity
}

// Count returns the held quantity of an item.
func (m *MemoryInventory) Count(itemID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[itemID]
}

// Items returns a copy of the inventory contents.
func (m *MemoryInventory) Items() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.items))
	for k, v := range m.items {
		out[k] = v
	}
	return out
}
