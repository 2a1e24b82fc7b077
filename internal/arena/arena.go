// Package arena models the fixed 9-position battle grid: three
// concentric rings of three positions each. The topology is static and
// hand-authored; nothing here mutates at runtime.
package arena

// Ring is one of the three concentric zones.
type Ring string

const (
	RingClose Ring = "close"
	RingMid   Ring = "mid"
	RingFar   Ring = "far"
)

// PositionCount is the number of nodes in the arena.
const PositionCount = 9

// Position describes one arena node.
type Position struct {
	ID       int   `json:"id"`
	Ring     Ring  `json:"ring"`
	Adjacent []int `json:"adjacent"`
}

// The adjacency sets are authored, not generated: position 0 is the hub
// with the most exits, the far ring is deliberately sparse so retreating
// narrows movement options.
var positions = [PositionCount]Position{
	{ID: 0, Ring: RingClose, Adjacent: []int{1, 2, 3, 4}},
	{ID: 1, Ring: RingClose, Adjacent: []int{0, 2, 3}},
	{ID: 2, Ring: RingClose, Adjacent: []int{0, 1, 5}},
	{ID: 3, Ring: RingMid, Adjacent: []int{0, 1, 4, 6}},
	{ID: 4, Ring: RingMid, Adjacent: []int{0, 3, 5, 7}},
	{ID: 5, Ring: RingMid, Adjacent: []int{2, 4, 8}},
	{ID: 6, Ring: RingFar, Adjacent: []int{3, 7}},
	{ID: 7, Ring: RingFar, Adjacent: []int{4, 6, 8}},
	{ID: 8, Ring: RingFar, Adjacent: []int{5, 7}},
}

// Modifier holds the ring combat multipliers.
type Modifier struct {
	Melee   float64 `json:"melee"`
	Ranged  float64 `json:"ranged"`
	Defense float64 `json:"defense"`
}

var ringModifiers = map[Ring]Modifier{
	RingClose: {Melee: 1.3, Ranged: 0.7, Defense: 0.9},
	RingMid:   {Melee: 1.0, Ranged: 1.0, Defense: 1.0},
	RingFar:   {Melee: 0.7, Ranged: 1.3, Defense: 1.1},
}

// Valid reports whether pos is a legal position ID.
func Valid(pos int) bool {
	return pos >= 0 && pos < PositionCount
}

// At returns the position with the given ID. Panics on an invalid ID;
// callers validate player input before reaching here.
func At(pos int) Position {
	if !Valid(pos) {
		panic("arena: position out of range")
	}
	return positions[pos]
}

// RingOf returns the ring a position belongs to.
func RingOf(pos int) Ring {
	return At(pos).Ring
}

// RingModifier returns the combat multipliers for a ring.
func RingModifier(r Ring) Modifier {
	return ringModifiers[r]
}

// Adjacent reports whether two positions share an edge.
func Adjacent(a, b int) bool {
	for _, n := range At(a).Adjacent {
		if n == b {
			return true
		}
	}
	return false
}

// Distance is a ring-based measure: 0 when the positions are equal, 2
// across the extreme rings (close vs far), 1 otherwise.
func Distance(a, b int) int {
	if a == b {
		return 0
	}
	ra, rb := RingOf(a), RingOf(b)
	if (ra == RingClose && rb == RingFar) || (ra == RingFar && rb == RingClose) {
		return 2
	}
	return 1
}

// Melee reports whether an attack between the two positions counts as
// melee. The classification depends on distance, not on the card.
func Melee(a, b int) bool {
	return Distance(a, b) <= 1
}

// ValidMoves returns the positions a combatant at pos may step to,
// excluding the occupied position.
func ValidMoves(pos, occupied int) []int {
	adj := At(pos).Adjacent
	out := make([]int, 0, len(adj))
	for _, n := range adj {
		if n != occupied {
			out = append(out, n)
		}
	}
	return out
}

// All returns every position, in ID order.
func All() []Position {
	out := make([]Position, PositionCount)
	copy(out[:], positions[:])
	return out
}
