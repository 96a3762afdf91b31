package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexfleet/internal/board"
	"github.com/vovakirdan/hexfleet/internal/hex"
	"github.com/vovakirdan/hexfleet/internal/registry"
	"github.com/vovakirdan/hexfleet/internal/ship"
	"github.com/vovakirdan/hexfleet/internal/storage"
)

func duelFleet(t *testing.T) *ship.Fleet {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	fleet, err := registry.Create("duel", "")
	if err != nil {
		t.Fatalf("registry.Create(duel) failed: %v", err)
	}
	return fleet
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "moves.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestMap(t *testing.T, fleet *ship.Fleet, store *storage.Store) MapModel {
	t.Helper()
	return NewMapModel(fleet, Options{
		Edge:      5,
		Scenario:  "duel",
		SessionID: "test-session",
		Store:     store,
		Width:     80,
		Height:    24,
	})
}

func press(t *testing.T, m MapModel, msg tea.Msg) (MapModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MapModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MapModel", next)
	}
	return mm, cmd
}

func label(t *testing.T, a hex.Address) string {
	t.Helper()
	return a.Label()
}

func TestMapCursorMovement(t *testing.T) {
	m := newTestMap(t, duelFleet(t), nil)

	if got := label(t, m.Cursor()); got != "0730" {
		t.Fatalf("cursor starts at %s, expected the first ship's hex 0730", got)
	}

	m, _ = press(t, m, runeKey("w"))
	if got := label(t, m.Cursor()); got != "0729" {
		t.Errorf("after w cursor = %s, expected 0729", got)
	}

	m, _ = press(t, m, runeKey("s"))
	m, cmd := press(t, m, runeKey("s"))
	if got := label(t, m.Cursor()); got != "0730" {
		t.Errorf("cursor moved off the board to %s", got)
	}
	if m.Status() == "" || cmd == nil {
		t.Error("moving off the board should set an expiring status message")
	}

	m, _ = press(t, m, statusExpiredMsg(m.statusSeq))
	if m.Status() != "" {
		t.Errorf("status should clear when its timer fires, got %q", m.Status())
	}
}

func TestMapShipSelectionAndMovement(t *testing.T) {
	store := openStore(t)
	m := newTestMap(t, duelFleet(t), store)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if s := m.Selected(); s == nil || s.Name != "Devisor" {
		t.Fatalf("tab should select Devisor, got %v", s)
	}
	if got := label(t, m.Cursor()); got != "4203" {
		t.Errorf("cursor should jump to the selected ship, got %s", got)
	}

	// Devisor faces E from odd column 41: one hex down-left.
	m, _ = press(t, m, runeKey("f"))
	if got := m.Selected().Position.String(); got != "4104E" {
		t.Errorf("after f Devisor at %s, expected 4104E", got)
	}
	if got := label(t, m.Cursor()); got != "4104" {
		t.Errorf("cursor should follow the moving ship, got %s", got)
	}

	m, _ = press(t, m, runeKey("]"))
	if got := m.Selected().Position.Facing; got != hex.FacingF {
		t.Errorf("after ] facing = %v, expected F", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if s := m.Selected(); s.Name != "Enterprise" {
		t.Errorf("shift+tab should wrap back to Enterprise, got %s", s.Name)
	}

	moves, err := store.Moves("test-session")
	if err != nil {
		t.Fatalf("Moves() failed: %v", err)
	}
	actions := make([]string, len(moves))
	for i, mv := range moves {
		actions[i] = mv.Ship + ":" + mv.Action
	}
	expect := "Enterprise:start Devisor:start Devisor:forward Devisor:turn-right"
	if got := strings.Join(actions, " "); got != expect {
		t.Errorf("logged moves = %q, expected %q", got, expect)
	}
}

func TestMapResumeFromLog(t *testing.T) {
	store := openStore(t)
	m := newTestMap(t, duelFleet(t), store)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	_, _ = press(t, m, runeKey("f"))

	resumed := NewMapModel(duelFleet(t), Options{
		Edge:      5,
		Scenario:  "duel",
		SessionID: "test-session",
		Store:     store,
		Resume:    true,
		Width:     80,
		Height:    24,
	})

	devisor := resumed.fleet.Get("Devisor")
	if got := devisor.Position.String(); got != "4104E" {
		t.Errorf("resumed Devisor at %s, expected 4104E", got)
	}

	moves, err := store.Moves("test-session")
	if err != nil {
		t.Fatalf("Moves() failed: %v", err)
	}
	if len(moves) != 3 {
		t.Errorf("resuming should not log new start moves, got %d moves", len(moves))
	}
}

func TestMapForwardOffBoard(t *testing.T) {
	m := newTestMap(t, duelFleet(t), nil)

	// Enterprise starts at 0730 facing A; turn to D and try to leave the bottom edge.
	for i := 0; i < 3; i++ {
		m, _ = press(t, m, runeKey("]"))
	}
	m, cmd := press(t, m, runeKey("f"))
	if got := m.Selected().Position.String(); got != "0730D" {
		t.Errorf("Enterprise moved off the board to %s", got)
	}
	if cmd == nil || !strings.Contains(m.Status(), "off the map") {
		t.Errorf("expected an off-map status, got %q", m.Status())
	}
}

func TestMapMouseClick(t *testing.T) {
	m := newTestMap(t, duelFleet(t), nil)
	target, _ := hex.ParseLabel("0829")

	x, y := board.CellOf(m.Camera(), 5, target)
	if x < 0 || x >= 80 || y < 0 || y >= 22 {
		t.Fatalf("hex 0829 not visible at cell (%d, %d)", x, y)
	}

	m, _ = press(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Cursor() != target {
		t.Errorf("click moved cursor to %s, expected 0829", m.Cursor())
	}

	// Releases are ignored
	m, _ = press(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Cursor() != target {
		t.Error("mouse release should not move the cursor")
	}
}

func TestMapMovesView(t *testing.T) {
	store := openStore(t)
	m := newTestMap(t, duelFleet(t), store)

	m, _ = press(t, m, runeKey("m"))
	if !m.ShowingMoves() {
		t.Fatal("m should open the move log")
	}
	if got := len(m.moves.Moves()); got != 2 {
		t.Errorf("move log shows %d moves, expected the 2 starting positions", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ShowingMoves() || m.IsQuitting() {
		t.Error("esc in the move log should return to the map")
	}
}

func TestMapQuitAndBack(t *testing.T) {
	m := newTestMap(t, duelFleet(t), nil)

	quit, cmd := press(t, m, runeKey("x"))
	if !quit.IsQuitting() || cmd == nil {
		t.Fatal("x should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("x should return tea.Quit")
	}

	back, _ := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || !back.IsQuitting() {
		t.Error("esc on a standalone map should go back and quit")
	}

	m.embedded = true
	back, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() || cmd != nil {
		t.Error("esc on an embedded map should only go back")
	}
}

func TestMapView(t *testing.T) {
	m := newTestMap(t, duelFleet(t), nil)

	m, _ = press(t, m, runeKey("w"))
	view := m.View()
	for _, want := range []string{"Enterprise", "0729", "range", "bearing"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() is missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines > 24 {
		t.Errorf("View() has %d lines, expected at most 24", lines)
	}
}

func TestSessionModelStartsScenario(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m := NewSessionModel(SessionConfig{Edge: 5, User: "tester", Width: 80, Height: 24})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm := next.(SessionModel)
	if sm.mapView == nil {
		t.Fatal("enter in the menu should start a scenario")
	}
	if !strings.HasPrefix(sm.mapView.SessionID(), "tester-") {
		t.Errorf("session id %q should start with the user name", sm.mapView.SessionID())
	}

	next, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sm = next.(SessionModel)
	if sm.mapView != nil || sm.quitting {
		t.Error("esc on the map should return to the menu")
	}
}
