// Package store persists finished battle encounters. The engine never
// touches the database; the API layer records outcomes here after a
// session ends.
package store

import "time"

// Outcome is how an encounter ended.
const (
	OutcomeVictory = "victory"
	OutcomeDefeat  = "defeat"
	OutcomeFled    = "fled"
)

// DB is the battle history interface.
type DB interface {
	Close() error
	SaveBattle(b *Battle) error
	GetBattle(id string) (*Battle, error)
	RecentBattles(limit, offset int) ([]Battle, error)
	OutcomeCounts() (map[string]int, error)
}

// Battle is one finished encounter.
type Battle struct {
	ID        string    `json:"id" db:"id"`
	PlayerID  string    `json:"player_id" db:"player_id"`
	Enemy     string    `json:"enemy" db:"enemy"`
	Outcome   string    `json:"outcome" db:"outcome"`
	Turns     int       `json:"turns" db:"turns"`
	XP        int       `json:"xp" db:"xp"`
	Tokens    string    `json:"tokens" db:"tokens"` // decimal as text
	Drops     string    `json:"drops" db:"drops"`   // JSON array
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
