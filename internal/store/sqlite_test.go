package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndGetBattle(t *testing.T) {
	db := openTestDB(t)

	b := &Battle{
		PlayerID: "p1",
		Enemy:    "fud_bot",
		Outcome:  OutcomeVictory,
		Turns:    4,
		XP:       13,
		Tokens:   "5",
		Drops:    `["shred_of_hopium"]`,
	}
	if err := db.SaveBattle(b); err != nil {
		t.Fatalf("save: %v", err)
	}
	if b.ID == "" {
		t.Fatal("save should assign an ID")
	}

	got, err := db.GetBattle(b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Enemy != "fud_bot" || got.Outcome != OutcomeVictory || got.Turns != 4 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Tokens != "5" {
		t.Errorf("tokens = %q, want 5", got.Tokens)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at should be populated")
	}
}

func TestGetBattleNotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := db.GetBattle("nope")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestRecentBattlesPagination(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 5; i++ {
		if err := db.SaveBattle(&Battle{PlayerID: "p1", Enemy: "fud_bot", Outcome: OutcomeFled}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	page, err := db.RecentBattles(3, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(page) != 3 {
		t.Errorf("page size = %d, want 3", len(page))
	}

	rest, err := db.RecentBattles(3, 3)
	if err != nil {
		t.Fatalf("recent offset: %v", err)
	}
	if len(rest) != 2 {
		t.Errorf("second page size = %d, want 2", len(rest))
	}
}

func TestOutcomeCounts(t *testing.T) {
	db := openTestDB(t)
	outcomes := []string{OutcomeVictory, OutcomeVictory, OutcomeDefeat, OutcomeFled}
	for _, o := range outcomes {
		if err := db.SaveBattle(&Battle{PlayerID: "p1", Enemy: "fud_bot", Outcome: o}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	counts, err := db.OutcomeCounts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts[OutcomeVictory] != 2 || counts[OutcomeDefeat] != 1 || counts[OutcomeFled] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
