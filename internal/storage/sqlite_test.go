package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-128/internal/grid"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreSaveAndLoadBoard(t *testing.T) {
	store := openTestStore(t)

	board := grid.Grid{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 64, 0},
		{0, 0, 0, 128},
	}

	if err := store.SaveBoard("alice", BoardState{Grid: board, GameOver: true, Moves: 17}); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}

	state, err := store.LoadBoard("alice")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}

	if state.Grid != board {
		t.Errorf("loaded grid differs:\n%v", state.Grid)
	}
	if !state.GameOver {
		t.Error("GameOver flag was not restored")
	}
	if state.Moves != 17 {
		t.Errorf("Moves = %d, want 17", state.Moves)
	}
	if state.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}
}

func TestStoreSaveBoardReplaces(t *testing.T) {
	store := openTestStore(t)

	first := grid.Grid{{2, 2}}
	second := grid.Grid{{4}}

	if err := store.SaveBoard("bob", BoardState{Grid: first, Moves: 1}); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	if err := store.SaveBoard("bob", BoardState{Grid: second, Moves: 2}); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}

	state, err := store.LoadBoard("bob")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}
	if state.Grid != second || state.Moves != 2 {
		t.Errorf("LoadBoard() = %+v, want the second save", state)
	}
}

func TestStoreBoardsArePerPlayer(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveBoard("alice", BoardState{Grid: grid.Grid{{2}}}); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}

	if _, err := store.LoadBoard("carol"); !errors.Is(err, ErrNoBoard) {
		t.Errorf("LoadBoard(carol) error = %v, want ErrNoBoard", err)
	}
}

func TestStoreLoadRejectsMalformedGrid(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(
		"INSERT INTO boards (player, grid) VALUES (?, ?)",
		"mallory", `[[2,null,null],[null,null,null,null]]`,
	)
	if err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	if _, err := store.LoadBoard("mallory"); !errors.Is(err, grid.ErrShape) {
		t.Errorf("LoadBoard() error = %v, want grid.ErrShape", err)
	}
}

func TestStoreDeleteBoard(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveBoard("dave", BoardState{Grid: grid.Grid{{2}}}); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	if err := store.DeleteBoard("dave"); err != nil {
		t.Fatalf("DeleteBoard() failed: %v", err)
	}
	if _, err := store.LoadBoard("dave"); !errors.Is(err, ErrNoBoard) {
		t.Errorf("LoadBoard() after delete error = %v, want ErrNoBoard", err)
	}

	// Deleting again is fine
	if err := store.DeleteBoard("dave"); err != nil {
		t.Errorf("second DeleteBoard() failed: %v", err)
	}
}

func TestStoreFinishedGames(t *testing.T) {
	store := openTestStore(t)

	for i := range 3 {
		if _, err := store.RecordFinished("erin", 100+i, 128); err != nil {
			t.Fatalf("RecordFinished() failed: %v", err)
		}
	}
	if _, err := store.RecordFinished("frank", 50, 128); err != nil {
		t.Fatalf("RecordFinished() failed: %v", err)
	}

	games, err := store.FinishedGames("erin", 2)
	if err != nil {
		t.Fatalf("FinishedGames() failed: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("Expected 2 games with limit, got %d", len(games))
	}
	// Newest first
	if games[0].Moves != 102 || games[1].Moves != 101 {
		t.Errorf("games not newest first: %+v", games)
	}

	count, err := store.FinishedCount("erin")
	if err != nil {
		t.Fatalf("FinishedCount() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("FinishedCount() = %d, want 3", count)
	}
}

func TestStoreFinishedCountEmpty(t *testing.T) {
	store := openTestStore(t)

	count, err := store.FinishedCount("nobody")
	if err != nil {
		t.Fatalf("FinishedCount() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("FinishedCount() = %d, want 0", count)
	}
}

func TestStorePersistence(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	board := grid.Grid{{0, 2}, {}, {}, {0, 0, 0, 4}}

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store1.SaveBoard("local", BoardState{Grid: board}); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	store1.Close()

	// Reopen and check the board survived
	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() second time failed: %v", err)
	}
	defer store2.Close()

	state, err := store2.LoadBoard("local")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}
	if state.Grid != board {
		t.Errorf("board did not persist:\n%v", state.Grid)
	}
}
