package store

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SQLiteDB implements the DB interface using SQLite.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) the database at path and brings the
// schema up to date. Use ":memory:" for an ephemeral store.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL for better concurrency.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// SaveBattle records a finished encounter. A missing ID gets a fresh
// UUID.
func (s *SQLiteDB) SaveBattle(b *Battle) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Tokens == "" {
		b.Tokens = "0"
	}
	if b.Drops == "" {
		b.Drops = "[]"
	}

	query := `INSERT INTO battles (id, player_id, enemy, outcome, turns, xp, tokens, drops)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		b.ID, b.PlayerID, b.Enemy, b.Outcome, b.Turns, b.XP, b.Tokens, b.Drops,
	)
	return err
}

// GetBattle retrieves a battle by ID.
func (s *SQLiteDB) GetBattle(id string) (*Battle, error) {
	query := `SELECT id, player_id, enemy, outcome, turns, xp, tokens, drops, created_at
		FROM battles WHERE id = ?`

	var b Battle
	err := s.db.QueryRow(query, id).Scan(
		&b.ID, &b.PlayerID, &b.Enemy, &b.Outcome, &b.Turns, &b.XP, &b.Tokens, &b.Drops, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// RecentBattles lists battles newest-first with pagination.
func (s *SQLiteDB) RecentBattles(limit, offset int) ([]Battle, error) {
	query := `SELECT id, player_id, enemy, outcome, turns, xp, tokens, drops, created_at
		FROM battles ORDER BY created_at DESC, id LIMIT ? OFFSET ?`

	rows, err := s.db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var battles []Battle
	for rows.Next() {
		var b Battle
		if err := rows.Scan(&b.ID, &b.PlayerID, &b.Enemy, &b.Outcome, &b.Turns, &b.XP, &b.Tokens, &b.Drops, &b.CreatedAt); err != nil {
			return nil, err
		}
		battles = append(battles, b)
	}
	return battles, rows.Err()
}

// OutcomeCounts tallies battles by outcome.
func (s *SQLiteDB) OutcomeCounts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT outcome, COUNT(*) FROM battles GROUP BY outcome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}
