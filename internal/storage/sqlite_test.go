package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, r Run) int64 {
	t.Helper()
	id, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Run{Character: "katappa", Score: 7})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("katappa")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("Expected high score 7 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Character: "katappa", Score: 10, Ticks: 900, Cause: "obstacle", Seed: 3})
	mustSave(t, store, Run{Character: "katappa", Score: 5, Ticks: 500, Cause: "floor"})
	mustSave(t, store, Run{Character: "katappa", Score: 20, Ticks: 1800, Cause: "ceiling"})
	mustSave(t, store, Run{Character: "guruji", Score: 50, Ticks: 4000, Cause: "obstacle"})

	runs, err := store.TopRuns("katappa", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 20 || runs[1].Score != 10 || runs[2].Score != 5 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[1].Ticks != 900 || runs[1].Cause != "obstacle" || runs[1].Seed != 3 {
		t.Errorf("Run fields not round-tripped: %+v", runs[1])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 || all[0].Character != "guruji" {
		t.Errorf("Expected all characters with guruji first, got %+v", all)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Run{Character: "awara", Score: (i + 1) * 10})
	}

	runs, err := store.TopRuns("awara", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[1].Score != 40 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
}

func TestStoreTopRunsTiesOldestFirst(t *testing.T) {
	store := openTestStore(t)

	first := mustSave(t, store, Run{Character: "awara", Score: 4})
	mustSave(t, store, Run{Character: "awara", Score: 4})

	runs, err := store.TopRuns("awara", 1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != first {
		t.Errorf("Expected the earlier run to win the tie, got %+v", runs)
	}
}

func TestStoreSaveRequiresCharacter(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Score: 3}); err == nil {
		t.Error("SaveRun() should reject a run without a character")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("katappa")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	mustSave(t, store, Run{Character: "katappa", Score: 10})
	mustSave(t, store, Run{Character: "katappa", Score: 30})
	mustSave(t, store, Run{Character: "guruji", Score: 40})

	high, err = store.HighScore("katappa")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}

	if high, _ = store.HighScore(""); high != 40 {
		t.Errorf("Expected overall high score of 40, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Character: "katappa", Score: 10})
	mustSave(t, store, Run{Character: "katappa", Score: 20})
	mustSave(t, store, Run{Character: "guruji", Score: 30})

	n, err := store.ClearRuns("katappa")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 cleared runs, got %d", n)
	}

	if runs, _ := store.TopRuns("katappa", 10); len(runs) != 0 {
		t.Errorf("Expected 0 katappa runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("guruji", 10); len(runs) != 1 {
		t.Error("guruji runs should not be affected by clearing katappa")
	}

	if n, _ = store.ClearRuns(""); n != 1 {
		t.Errorf("Expected clearing everything to remove 1 run, got %d", n)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("katappa")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, Run{Character: "katappa", Score: 2, Ticks: 100})
	mustSave(t, store, Run{Character: "katappa", Score: 4, Ticks: 300})
	mustSave(t, store, Run{Character: "awara", Score: 9, Ticks: 50})

	stats, err := store.Stats("katappa")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 4 || stats.AvgScore != 3 || stats.TotalTicks != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	all, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if all.Runs != 3 || all.HighScore != 9 {
		t.Errorf("Unexpected overall stats: %+v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
