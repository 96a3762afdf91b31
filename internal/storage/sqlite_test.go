package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/hexfleet/internal/hex"
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

func mustLabel(t *testing.T, label string) hex.Address {
	t.Helper()
	a, err := hex.ParseLabel(label)
	if err != nil {
		t.Fatalf("ParseLabel(%q) failed: %v", label, err)
	}
	return a
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

func TestStoreRecordAndReplay(t *testing.T) {
	store := openTestStore(t)

	if err := store.StartSession("s1", "duel"); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}

	moves := []Move{
		{SessionID: "s1", Ship: "Enterprise", Action: ActionStart, From: mustLabel(t, "0730"), To: mustLabel(t, "0730"), Facing: hex.FacingA},
		{SessionID: "s1", Ship: "Enterprise", Action: ActionForward, From: mustLabel(t, "0730"), To: mustLabel(t, "0729"), Facing: hex.FacingA},
		{SessionID: "s1", Ship: "Enterprise", Action: ActionTurnRight, From: mustLabel(t, "0729"), To: mustLabel(t, "0729"), Facing: hex.FacingB},
		{SessionID: "s1", Ship: "Devisor", Action: ActionStart, From: mustLabel(t, "4203"), To: mustLabel(t, "4203"), Facing: hex.FacingE},
	}
	var lastID int64
	for _, m := range moves {
		id, err := store.RecordMove(m)
		if err != nil {
			t.Fatalf("RecordMove() failed: %v", err)
		}
		if id <= lastID {
			t.Errorf("expected increasing IDs, got %d after %d", id, lastID)
		}
		lastID = id
	}

	got, err := store.Moves("s1")
	if err != nil {
		t.Fatalf("Moves() failed: %v", err)
	}
	if len(got) != len(moves) {
		t.Fatalf("Expected %d moves, got %d", len(moves), len(got))
	}
	for i, m := range got {
		want := moves[i]
		if m.Ship != want.Ship || m.Action != want.Action || m.From != want.From || m.To != want.To || m.Facing != want.Facing {
			t.Errorf("move %d = %+v, expected %+v", i, m, want)
		}
	}

	// Other sessions are isolated
	other, err := store.Moves("s2")
	if err != nil {
		t.Fatalf("Moves() failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("Expected no moves for s2, got %d", len(other))
	}
}

func TestStoreLastPosition(t *testing.T) {
	store := openTestStore(t)

	_, _, ok, err := store.LastPosition("s1", "Enterprise")
	if err != nil {
		t.Fatalf("LastPosition() failed: %v", err)
	}
	if ok {
		t.Error("LastPosition() should report no moves for an empty log")
	}

	for _, m := range []Move{
		{SessionID: "s1", Ship: "Enterprise", Action: ActionForward, From: mustLabel(t, "0730"), To: mustLabel(t, "0729"), Facing: hex.FacingA},
		{SessionID: "s1", Ship: "Enterprise", Action: ActionTurnLeft, From: mustLabel(t, "0729"), To: mustLabel(t, "0729"), Facing: hex.FacingF},
		{SessionID: "s1", Ship: "Devisor", Action: ActionForward, From: mustLabel(t, "4203"), To: mustLabel(t, "4103"), Facing: hex.FacingE},
	} {
		if _, err := store.RecordMove(m); err != nil {
			t.Fatalf("RecordMove() failed: %v", err)
		}
	}

	addr, facing, ok, err := store.LastPosition("s1", "Enterprise")
	if err != nil {
		t.Fatalf("LastPosition() failed: %v", err)
	}
	if !ok || addr.Label() != "0729" || facing != hex.FacingF {
		t.Errorf("LastPosition() = %v %v %v, expected 0729 F true", addr, facing, ok)
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	if err := store.StartSession("a", "duel"); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	if err := store.StartSession("b", "patrol"); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	// Restarting is harmless
	if err := store.StartSession("a", "duel"); err != nil {
		t.Fatalf("StartSession() twice failed: %v", err)
	}

	here := mustLabel(t, "1010")
	for i := 0; i < 2; i++ {
		if _, err := store.RecordMove(Move{SessionID: "a", Ship: "X", Action: ActionTurnRight, From: here, To: here, Facing: hex.FacingB}); err != nil {
			t.Fatalf("RecordMove() failed: %v", err)
		}
	}
	if _, err := store.RecordMove(Move{SessionID: "b", Ship: "Y", Action: ActionTurnRight, From: here, To: here, Facing: hex.FacingB}); err != nil {
		t.Fatalf("RecordMove() failed: %v", err)
	}

	sessions, err := store.Sessions(10)
	if err != nil {
		t.Fatalf("Sessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}
	// Most recently active first
	if sessions[0].SessionID != "b" || sessions[0].Scenario != "patrol" || sessions[0].Moves != 1 {
		t.Errorf("unexpected first session: %+v", sessions[0])
	}
	if sessions[1].SessionID != "a" || sessions[1].Moves != 2 {
		t.Errorf("unexpected second session: %+v", sessions[1])
	}

	limited, err := store.Sessions(1)
	if err != nil {
		t.Fatalf("Sessions() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 session with limit, got %d", len(limited))
	}
}

func TestStoreClearSession(t *testing.T) {
	store := openTestStore(t)

	here := mustLabel(t, "0101")
	if err := store.StartSession("gone", "duel"); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	if _, err := store.RecordMove(Move{SessionID: "gone", Ship: "X", Action: ActionStart, From: here, To: here, Facing: hex.FacingA}); err != nil {
		t.Fatalf("RecordMove() failed: %v", err)
	}

	if err := store.ClearSession("gone"); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}

	moves, err := store.Moves("gone")
	if err != nil {
		t.Fatalf("Moves() failed: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("Expected 0 moves after clear, got %d", len(moves))
	}
	sessions, err := store.Sessions(10)
	if err != nil {
		t.Fatalf("Sessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}
}

func TestStoreRecordMoveRejectsBadInput(t *testing.T) {
	store := openTestStore(t)
	here := mustLabel(t, "0101")

	if _, err := store.RecordMove(Move{Ship: "X", From: here, To: here}); err == nil {
		t.Error("RecordMove() without session should fail")
	}
	if _, err := store.RecordMove(Move{SessionID: "s", From: here, To: here}); err == nil {
		t.Error("RecordMove() without ship should fail")
	}
	if _, err := store.RecordMove(Move{SessionID: "s", Ship: "X", From: here, To: here, Facing: hex.Facing(9)}); err == nil {
		t.Error("RecordMove() with invalid facing should fail")
	}
}

func TestStoreRejectsCorruptRows(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(
		`INSERT INTO moves (session_id, ship, action, from_hex, to_hex, facing)
		 VALUES ('s', 'X', 'forward', '0101', '9999', 'A')`,
	)
	if err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	if _, err := store.Moves("s"); err == nil {
		t.Error("Moves() should fail on an off-board hex label")
	}
}

func TestOpenWithTildeExpansion(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/.hexfleet/test.db")
	if err != nil {
		t.Fatalf("Open() with tilde failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".hexfleet", "test.db")); err != nil {
		t.Errorf("Database file not created under home: %v", err)
	}
}
