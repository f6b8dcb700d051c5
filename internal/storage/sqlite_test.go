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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{ModeID: "marathon", Score: 100, Lines: 5, Level: 2},
		{ModeID: "marathon", Score: 50, Lines: 2, Level: 1},
		{ModeID: "marathon", Score: 200, Lines: 12, Level: 3, DurationSecs: 240},
		{ModeID: "endless", Score: 500, Lines: 30, Level: 5},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("marathon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 marathon runs, got %d", len(scores))
	}

	// Sorted descending, with the run details intact
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Lines != 12 || scores[0].Level != 3 || scores[0].DurationSecs != 240 {
		t.Errorf("Run details lost: %+v", scores[0])
	}

	endless, err := store.TopScores("endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless run, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{ModeID: "marathon", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("marathon", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("marathon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveScore(ScoreEntry{ModeID: "marathon", Score: 100})
	store.SaveScore(ScoreEntry{ModeID: "marathon", Score: 300})
	store.SaveScore(ScoreEntry{ModeID: "marathon", Score: 200})

	high, err = store.HighScore("marathon")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{ModeID: "marathon", Score: 100})
	store.SaveScore(ScoreEntry{ModeID: "marathon", Score: 200})
	store.SaveScore(ScoreEntry{ModeID: "endless", Score: 300})

	if err := store.ClearScores("marathon"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	marathon, _ := store.TopScores("marathon", 10)
	if len(marathon) != 0 {
		t.Errorf("Expected 0 marathon runs after clear, got %d", len(marathon))
	}

	endless, _ := store.TopScores("endless", 10)
	if len(endless) != 1 {
		t.Error("Endless runs should not be affected by clearing marathon")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore(ScoreEntry{ModeID: "marathon", Score: i * 10})
	}

	scores, err := store.AllScores("marathon")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(scores))
	}
}

func TestStoreWonFlag(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{ModeID: "marathon", Score: 90000, Won: true})
	store.SaveScore(ScoreEntry{ModeID: "marathon", Score: 1000})

	scores, err := store.TopScores("marathon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if !scores[0].Won || scores[1].Won {
		t.Errorf("Won flags lost: %+v", scores)
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{ModeID: "marathon", Score: 100, Lines: 10, Level: 2})
	store.SaveScore(ScoreEntry{ModeID: "marathon", Score: 300, Lines: 25, Level: 4, Won: true})
	store.SaveScore(ScoreEntry{ModeID: "endless", Score: 50, Lines: 3, Level: 1})

	stats, err := store.GetModeStats("marathon")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalLines != 35 || stats.BestLevel != 4 || stats.Wins != 1 {
		t.Errorf("aggregates wrong: %+v", stats)
	}

	all, err := store.GetAllModeStats()
	if err != nil {
		t.Fatalf("GetAllModeStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 modes, got %d", len(all))
	}
	if all["endless"] == nil || all["endless"].GamesCount != 1 {
		t.Errorf("endless stats wrong: %+v", all["endless"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
