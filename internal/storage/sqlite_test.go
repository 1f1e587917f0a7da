package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "beatsnake", Player: "ana", Score: 3, Length: 4, Survived: 12.5, Loss: "starved", Seed: 1},
		{GameID: "beatsnake", Player: "bo", Score: 7, Length: 8, Survived: 30, Loss: "left the arena", Difficulty: "hard"},
		{GameID: "beatsnake", Player: "cy", Score: 1, Length: 2, Survived: 4},
		{GameID: "other", Score: 50},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("beatsnake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 7 || top[1].Score != 3 || top[2].Score != 1 {
		t.Errorf("Runs not sorted by score: %+v", top)
	}

	best := top[0]
	if best.Player != "bo" || best.Length != 8 || best.Survived != 30 || best.Loss != "left the arena" || best.Difficulty != "hard" {
		t.Errorf("Run fields not round-tripped: %+v", best)
	}
	if top[1].Difficulty != "normal" {
		t.Errorf("Empty difficulty should store as normal, got %q", top[1].Difficulty)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopRunsTieBreak(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "g", Score: 5, Survived: 10})
	store.SaveRun(Run{GameID: "g", Score: 5, Survived: 20})
	store.SaveRun(Run{GameID: "g", Score: 2, Survived: 99})

	top, err := store.TopRuns("g", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(top))
	}
	if top[0].Survived != 20 || top[1].Survived != 10 {
		t.Errorf("Equal scores should rank by survival: %+v", top)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{GameID: "g", Score: i})
	}

	recent, err := store.RecentRuns("g", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 4 || recent[2].Score != 2 {
		t.Errorf("Expected newest first: %+v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("beatsnake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "beatsnake", Score: 10})
	store.SaveRun(Run{GameID: "beatsnake", Score: 30})
	store.SaveRun(Run{GameID: "beatsnake", Score: 20})

	high, err = store.HighScore("beatsnake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "beatsnake", Score: 1})
	store.SaveRun(Run{GameID: "beatsnake", Score: 2})
	store.SaveRun(Run{GameID: "other", Score: 3})

	if err := store.ClearRuns("beatsnake"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("beatsnake", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("other", 10); len(runs) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("beatsnake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{GameID: "beatsnake", Score: 4, Length: 5, Survived: 10})
	store.SaveRun(Run{GameID: "beatsnake", Score: 2, Length: 3, Survived: 25})

	stats, err := store.GetGameStats("beatsnake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 4 || stats.TotalApples != 6 || stats.AvgScore != 3 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.LongestRun != 25 || stats.LongestSnake != 5 {
		t.Errorf("Unexpected run stats: %+v", stats)
	}
	if time.Since(stats.LastPlayed) > 24*time.Hour {
		t.Errorf("LastPlayed looks wrong: %v", stats.LastPlayed)
	}
}
