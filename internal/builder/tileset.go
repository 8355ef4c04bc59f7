// Package builder materialises boards from a catalog of wall-layout
// templates (tile sets). It drives the board's write capability only.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-ricochet/internal/board"
	"github.com/vovakirdan/tui-ricochet/internal/geom"
)

var (
	// ErrInvalidTileSet is returned by TileSet.Validate.
	ErrInvalidTileSet = errors.New("builder: invalid tile set")

	// ErrNoCompatibleTileSet is returned when the catalog has no tile set for the board size.
	ErrNoCompatibleTileSet = errors.New("builder: no compatible tile set")

	// ErrUnknownTileSet is returned by BuildWith for an ID missing from the catalog.
	ErrUnknownTileSet = errors.New("builder: unknown tile set")
)

// quadrantCount is the number of quarter tiles a quadrant board is made of.
const quadrantCount = 4

// TileSet is a wall layout template for one board size.
//
// Walls are replayed as-is. Quadrants hold alternative layouts authored for
// the top-left quarter of a square board; four of them are picked at random
// and rotated into place, one per quarter.
type TileSet struct {
	ID        string
	Name      string
	Dim       geom.Dimensions
	Walls     []board.Wall
	Quadrants [][]board.Wall
	FilePath  string // Empty for built-in tile sets
}

// Compatible reports whether the tile set was authored for dim.
func (ts TileSet) Compatible(dim geom.Dimensions) bool {
	return ts.Dim == dim
}

// QuadrantDim returns the size of one quarter of the board.
func (ts TileSet) QuadrantDim() geom.Dimensions {
	return geom.Dim(ts.Dim.Rows/2, ts.Dim.Columns/2)
}

// Validate checks the tile set can be replayed on a board of its size.
func (ts TileSet) Validate() error {
	if ts.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTileSet)
	}
	if !ts.Dim.Usable() {
		return fmt.Errorf("%w: %s: unusable size %v", ErrInvalidTileSet, ts.ID, ts.Dim)
	}
	for _, w := range ts.Walls {
		if !ts.Dim.Contains(w.Pos) || !w.Side.Valid() {
			return fmt.Errorf("%w: %s: wall %v outside board", ErrInvalidTileSet, ts.ID, w)
		}
	}
	if len(ts.Quadrants) == 0 {
		return nil
	}
	if !ts.Dim.Square() || ts.Dim.Rows%2 != 0 {
		return fmt.Errorf("%w: %s: quadrants need a square board with even sides, got %v",
			ErrInvalidTileSet, ts.ID, ts.Dim)
	}
	q := ts.QuadrantDim()
	for i, quadrant := range ts.Quadrants {
		for _, w := range quadrant {
			if !q.Contains(w.Pos) || !w.Side.Valid() {
				return fmt.Errorf("%w: %s: quadrant %d wall %v outside quadrant %v",
					ErrInvalidTileSet, ts.ID, i, w, q)
			}
		}
	}
	return nil
}

// Layout returns the walls the tile set will place, using rng to pick and
// order quadrant layouts. The same rng state always gives the same layout.
func (ts TileSet) Layout(rng *rand.Rand) []board.Wall {
	walls := make([]board.Wall, 0, len(ts.Walls))
	walls = append(walls, ts.Walls...)

	if len(ts.Quadrants) == 0 {
		return walls
	}

	order := rng.Perm(len(ts.Quadrants))
	for k := range quadrantCount {
		quadrant := ts.Quadrants[order[k%len(order)]]
		angle := geom.Quarters(k)
		for _, w := range quadrant {
			rotated, ok := w.Rotate(ts.Dim, angle)
			if !ok {
				continue
			}
			walls = append(walls, rotated)
		}
	}
	return walls
}

// BuildRand replays the tile set onto b, which must already have been
// reset to the tile set's dimensions.
func (ts TileSet) BuildRand(b board.EditableBoard, rng *rand.Rand) error {
	for _, w := range ts.Layout(rng) {
		if err := b.PutWall(w); err != nil {
			return fmt.Errorf("builder: %s: %w", ts.ID, err)
		}
	}
	return nil
}
