package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ricochet/internal/geom"
	"github.com/vovakirdan/tui-ricochet/internal/storage"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

func openHistoryStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHistoryEmpty(t *testing.T) {
	m := NewHistoryModel(openHistoryStore(t), 24)
	if !strings.Contains(m.View(), "No sessions recorded yet") {
		t.Errorf("unexpected empty view:\n%s", m.View())
	}
}

func TestHistoryDrillDown(t *testing.T) {
	store := openHistoryStore(t)
	id, err := store.StartSession(9, "compact", geom.Dim(8, 8))
	if err != nil {
		t.Fatal(err)
	}
	for _, way := range []geom.Way{geom.Up, geom.Left} {
		mv := world.Move{Robot: world.Green, Way: way, From: geom.P(4, 4), To: geom.P(4, 0), Distance: 4}
		if _, err := store.RecordMove(id, mv); err != nil {
			t.Fatal(err)
		}
	}

	m := NewHistoryModel(store, 24)
	if m.Current() != nil {
		t.Fatal("Expected session list first")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(HistoryModel)
	if m.Current() == nil || m.Current().ID != id {
		t.Fatalf("Expected moves of %s, got %+v", id, m.Current())
	}
	if len(m.moves) != 2 {
		t.Errorf("Expected 2 moves, got %d", len(m.moves))
	}
	if !strings.Contains(m.View(), "2 moves") {
		t.Errorf("unexpected moves view:\n%s", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(HistoryModel)
	if m.Current() != nil || m.quitting {
		t.Error("esc on moves should return to the list")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(HistoryModel)
	if cmd == nil || !m.quitting {
		t.Error("esc on the list should quit")
	}
}
