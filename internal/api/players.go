package api

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Ragnar-no-sleep/pump-arena-go/internal/battle"
	"github.com/Ragnar-no-sleep/pump-arena-go/internal/player"
)

// PlayerEntry is one registered player and their battle slot. A player
// has at most one active encounter at a time.
type PlayerEntry struct {
	ID    string
	State *player.MemoryState
	Inv   *player.MemoryInventory

	mu      sync.Mutex
	session *battle.Session
	enemyID string
}

// Session returns the current battle session, or nil before the first
// encounter. The session itself reports whether it is still active.
func (e *PlayerEntry) Session() *battle.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// BeginBattle installs a new session if no encounter is running.
func (e *PlayerEntry) BeginBattle(s *battle.Session, enemyID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session != nil && e.session.Active() {
		return fmt.Errorf("a battle is already in progress")
	}
	e.session = s
	e.enemyID = enemyID
	return nil
}

// EnemyID returns the enemy of the current or last battle.
func (e *PlayerEntry) EnemyID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enemyID
}

// PlayerManager is the in-process player registry.
type PlayerManager struct {
	mu      sync.Mutex
	players map[string]*PlayerEntry
}

func NewPlayerManager() *PlayerManager {
	return &PlayerManager{players: make(map[string]*PlayerEntry)}
}

// Create registers a player at the given level with the given
// attributes and returns the entry.
func (m *PlayerManager) Create(level int, attrs player.Attributes) *PlayerEntry {
	entry := &PlayerEntry{
		ID:    uuid.New().String(),
		State: player.NewMemoryState(level, attrs),
		Inv:   player.NewMemoryInventory(),
	}
	m.mu.Lock()
	m.players[entry.ID] = entry
	m.mu.Unlock()
	return entry
}

// Get looks up a player by ID.
func (m *PlayerManager) Get(id string) (*PlayerEntry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.players[id]
	return entry, ok
}
