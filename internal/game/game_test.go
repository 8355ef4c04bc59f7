package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-ricochet/internal/builder"
	"github.com/vovakirdan/tui-ricochet/internal/geom"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

func newTestGame(t *testing.T, seed int64, tileSetID string) *Game {
	t.Helper()
	catalog, err := builder.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() failed: %v", err)
	}
	g, err := New(Options{
		Dim:       geom.Dim(16, 16),
		Catalog:   catalog,
		Robots:    world.AllRobots(),
		Seed:      seed,
		TileSetID: tileSetID,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestNewPlacesRobots(t *testing.T) {
	g := newTestGame(t, 7, "")

	if g.Dim() != geom.Dim(16, 16) {
		t.Errorf("Dim() = %v, expected 16x16", g.Dim())
	}
	if !g.TileSet().Compatible(g.Dim()) {
		t.Errorf("tile set %s not compatible with board", g.TileSet().ID)
	}
	if got := len(g.World().Robots()); got != 4 {
		t.Errorf("Expected 4 placed robots, got %d", got)
	}
	if g.Seed() != 7 {
		t.Errorf("Seed() = %d, expected 7", g.Seed())
	}
}

func TestSameSeedSameBoard(t *testing.T) {
	a, err := newTestGame(t, 99, "").Text()
	if err != nil {
		t.Fatal(err)
	}
	b, err := newTestGame(t, 99, "").Text()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s", a, b)
	}
}

func TestZeroSeedUsesClock(t *testing.T) {
	g := newTestGame(t, 0, "")
	if g.Seed() == 0 {
		t.Error("Expected a clock-derived seed")
	}
}

func TestPinnedTileSet(t *testing.T) {
	g := newTestGame(t, 3, "classic")
	for i := 0; i < 3; i++ {
		if err := g.NewBoard(); err != nil {
			t.Fatalf("NewBoard() failed: %v", err)
		}
		if g.TileSet().ID != "classic" {
			t.Errorf("TileSet().ID = %s, expected classic", g.TileSet().ID)
		}
	}
}

func TestUnknownTileSet(t *testing.T) {
	catalog, err := builder.LoadEmbedded()
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(Options{
		Dim:       geom.Dim(16, 16),
		Catalog:   catalog,
		Robots:    world.AllRobots(),
		Seed:      1,
		TileSetID: "missing",
	})
	if !errors.Is(err, builder.ErrUnknownTileSet) {
		t.Errorf("Expected ErrUnknownTileSet, got %v", err)
	}
}

func TestMoveAndReroll(t *testing.T) {
	g := newTestGame(t, 11, "")

	moved := 0
	for _, way := range geom.AllWays() {
		m, err := g.Move(world.Red, way)
		if err != nil {
			t.Fatalf("Move(%v) failed: %v", way, err)
		}
		if m.Moved() {
			moved++
		}
	}
	if g.World().MoveCount() != moved {
		t.Errorf("MoveCount() = %d, expected %d", g.World().MoveCount(), moved)
	}

	if err := g.Reroll(); err != nil {
		t.Fatalf("Reroll() failed: %v", err)
	}
	if g.World().MoveCount() != 0 {
		t.Errorf("MoveCount() after reroll = %d, expected 0", g.World().MoveCount())
	}
}
