package remote

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "fixyourlife-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSaveProgressUpsertsOnSameDate(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first := model.NewProgressEntry("2024-01-02", 1, 4)
	if err := store.SaveProgress(ctx, "user-1", first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	second := model.NewProgressEntry("2024-01-02", 3, 4)
	if err := store.SaveProgress(ctx, "user-1", second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	entries, err := store.LoadProgress(ctx, "user-1", 0)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one row per date, got %d", len(entries))
	}
	if entries[0].TasksCompleted != 3 || entries[0].CompletionRate != 75 {
		t.Fatalf("expected latest values, got %+v", entries[0])
	}
}

func TestLoadProgressOrdersNewestFirstAndLimits(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	days := []model.Day{"2024-01-01", "2024-01-03", "2024-01-02"}
	for i, day := range days {
		if err := store.SaveProgress(ctx, "user-1", model.NewProgressEntry(day, i, 4)); err != nil {
			t.Fatalf("save %s: %v", day, err)
		}
	}

	entries, err := store.LoadProgress(ctx, "user-1", 2)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(entries))
	}
	if entries[0].Date != "2024-01-03" || entries[1].Date != "2024-01-02" {
		t.Fatalf("unexpected order: %s, %s", entries[0].Date, entries[1].Date)
	}
}

func TestProgressIsScopedPerUser(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.SaveProgress(ctx, "alice", model.NewProgressEntry("2024-01-02", 2, 4)); err != nil {
		t.Fatalf("save alice: %v", err)
	}
	if err := store.SaveProgress(ctx, "bob", model.NewProgressEntry("2024-01-02", 4, 4)); err != nil {
		t.Fatalf("save bob: %v", err)
	}

	entries, err := store.LoadProgress(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("load alice: %v", err)
	}
	if len(entries) != 1 || entries[0].TasksCompleted != 2 {
		t.Fatalf("expected only alice's row, got %+v", entries)
	}
}

func TestSaveProgressRejectsInvalidInput(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.SaveProgress(ctx, "", model.NewProgressEntry("2024-01-02", 1, 2)); err == nil {
		t.Fatal("expected error for empty user id")
	}
	bad := model.ProgressEntry{Date: "2024-01-02", TasksCompleted: 3, TotalTasks: 2}
	if err := store.SaveProgress(ctx, "user-1", bad); err == nil {
		t.Fatal("expected error for completed > total")
	}
}

func TestProfileRoundTripAndReplace(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	answers := map[string]string{
		"routine":    "I wake up late and skip breakfast",
		"goals":      "Build a consistent morning routine",
		"challenges": "Procrastination",
	}
	if err := store.SaveProfile(ctx, "user-1", answers); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	got, err := store.LoadProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if len(got) != len(answers) || got["goals"] != answers["goals"] {
		t.Fatalf("unexpected profile: %v", got)
	}

	// A second save replaces the whole profile, dropped keys included.
	if err := store.SaveProfile(ctx, "user-1", map[string]string{"routine": "updated"}); err != nil {
		t.Fatalf("replace profile: %v", err)
	}
	got, err = store.LoadProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("load replaced profile: %v", err)
	}
	if len(got) != 1 || got["routine"] != "updated" {
		t.Fatalf("expected replaced profile, got %v", got)
	}
}

func TestLoadProfileMissingUser(t *testing.T) {
	store := setupStore(t)
	_, err := store.LoadProfile(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
