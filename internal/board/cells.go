package board

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ricochet/internal/geom"
)

// Cells is a board stored as sparse per-cell overrides.
// A cell absent from the map is open on every side, clipped only by the
// board edge. Memory grows with the number of walls, not the board area.
type Cells struct {
	dim   geom.Dimensions
	cells  map[geom.Pos]MovePossibility
	logger *log.Logger
}

// Ensure Cells implements both capabilities
var _ ReadWriter = (*Cells)(nil)

// New creates an uninitialised 0x0 board. Call Reset before use.
func New() *Cells {
	return &Cells{
		cells:  make(map[geom.Pos]MovePossibility),
		logger: log.New(io.Discard),
	}
}

// SetLogger routes debug output to logger. A nil logger discards it.
func (b *Cells) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b.logger = logger
}

// Dim returns the current dimensions.
func (b *Cells) Dim() geom.Dimensions {
	return b.dim
}

// IsStartPos reports true for every position on the board.
func (b *Cells) IsStartPos(pos geom.Pos) (bool, error) {
	if err := b.ifExists(pos); err != nil {
		return false, err
	}
	return true, nil
}

// MovesFrom returns the stored override for pos (all open by default)
// with the board edges closed.
func (b *Cells) MovesFrom(pos geom.Pos) (MovePossibility, error) {
	if err := b.ifExists(pos); err != nil {
		return 0, err
	}

	moves, ok := b.cells[pos]
	if !ok {
		moves = All()
	}

	moves = moves.
		Set(geom.Up, moves.Up() && pos.Y > 0).
		Set(geom.Down, moves.Down() && pos.Y+1 < b.dim.Rows).
		Set(geom.Left, moves.Left() && pos.X > 0).
		Set(geom.Right, moves.Right() && pos.X+1 < b.dim.Columns)

	return moves, nil
}

// HitFrom returns the cell where a slide from pos in direction w stops:
// the nearest cell that cannot be exited in w, or the board edge.
// The start cell is a candidate, so a wall on its leading side yields a
// zero-distance hit.
func (b *Cells) HitFrom(pos geom.Pos, w geom.Way) (geom.Hit, error) {
	if err := b.ifExists(pos); err != nil {
		return geom.Hit{}, err
	}
	if !w.Valid() {
		return geom.Hit{}, fmt.Errorf("board: invalid way %d", w)
	}

	edge := pos.Edge(b.dim, w)

	candidates := func(yield func(geom.Pos) bool) {
		if !yield(pos) {
			return
		}
		for p := range pos.DirectPathTo(edge.Pos) {
			if !yield(p) {
				return
			}
		}
	}

	if best, ok := b.nearestBlocker(pos, w, candidates); ok {
		return best, nil
	}
	return edge, nil
}

// nearestBlocker returns the closest candidate ahead of pos that cannot be
// exited in w. Candidates off the board are logged and skipped.
func (b *Cells) nearestBlocker(pos geom.Pos, w geom.Way, candidates iter.Seq[geom.Pos]) (geom.Hit, bool) {
	best, found := geom.Hit{}, false
	for p := range candidates {
		moves, err := b.MovesFrom(p)
		if err != nil {
			b.logger.Debug("path cell off board", "pos", p.String(), "from", pos.String(), "way", w.String())
			continue
		}
		if moves.CanGo(w) {
			continue
		}
		d := pos.DistanceTo(p, w)
		if d < 0 {
			continue
		}
		if !found || d < best.Distance {
			best, found = geom.Hit{Pos: p, Distance: d}, true
		}
	}
	return best, found
}

// Reset clears all walls and adopts dim.
// On failure the previous state is left untouched.
func (b *Cells) Reset(dim geom.Dimensions) error {
	if !dim.Usable() {
		return fmt.Errorf("%w: %v", ErrDimensionsNotSuitable, dim)
	}
	clear(b.cells)
	b.dim = dim
	return nil
}

// PutWall closes wall.Side on wall.Pos and the opposite side of the
// neighbour behind it, when that neighbour is on the board.
func (b *Cells) PutWall(wall Wall) error {
	if err := b.ifExists(wall.Pos); err != nil {
		return err
	}
	if !wall.Side.Valid() {
		return fmt.Errorf("board: invalid wall side %d", wall.Side)
	}

	b.close(wall.Pos, wall.Side)
	if mirror, ok := wall.Mirror(b.dim); ok {
		b.close(mirror.Pos, mirror.Side)
	}
	return nil
}

// Walls returns every closed interior side, each barrier reported once from
// the cell on its upper or left side, sorted by row then column.
func (b *Cells) Walls() []Wall {
	var walls []Wall
	for pos, moves := range b.cells {
		for _, w := range []geom.Way{geom.Down, geom.Right} {
			if moves.CanGo(w) {
				continue
			}
			if _, ok := (Wall{Pos: pos, Side: w}).Mirror(b.dim); ok {
				walls = append(walls, Wall{Pos: pos, Side: w})
			}
		}
	}
	slices.SortFunc(walls, func(a, c Wall) int {
		if a.Pos.Y != c.Pos.Y {
			return a.Pos.Y - c.Pos.Y
		}
		if a.Pos.X != c.Pos.X {
			return a.Pos.X - c.Pos.X
		}
		return int(a.Side) - int(c.Side)
	})
	return walls
}

// Overrides returns the number of cells with at least one side closed
// explicitly.
func (b *Cells) Overrides() int {
	return len(b.cells)
}

// close creates the override for pos on first use.
func (b *Cells) close(pos geom.Pos, w geom.Way) {
	moves, ok := b.cells[pos]
	if !ok {
		moves = All()
	}
	b.cells[pos] = moves.Close(w)
}

func (b *Cells) ifExists(pos geom.Pos) error {
	if !b.dim.Contains(pos) {
		return fmt.Errorf("%w: %v on %v board", ErrPositionNotOnBoard, pos, b.dim)
	}
	return nil
}
