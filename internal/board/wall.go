package board

import (
	"fmt"

	"github.com/vovakirdan/tui-ricochet/internal/geom"
)

// Wall is a barrier on one side of one cell. Placing it on a board also
// blocks the neighbouring cell's opposite side.
type Wall struct {
	Pos  geom.Pos
	Side geom.Way
}

// W is a convenience constructor for Wall.
func W(x, y int, side geom.Way) Wall {
	return Wall{Pos: geom.P(x, y), Side: side}
}

func (w Wall) String() string {
	return fmt.Sprintf("%v:%v", w.Pos, w.Side)
}

// Rotate turns the wall clockwise about the centre of a board of size dim.
// ok is false when the rotation is undefined for dim.
func (w Wall) Rotate(dim geom.Dimensions, a geom.RotateAngle) (Wall, bool) {
	p, ok := w.Pos.Rotate(dim, a)
	if !ok {
		return w, false
	}
	return Wall{Pos: p, Side: w.Side.Rotate(a)}, true
}

// Mirror returns the same barrier expressed from the neighbouring cell.
// ok is false when that neighbour is not on a board of size dim.
func (w Wall) Mirror(dim geom.Dimensions) (Wall, bool) {
	n := w.Pos.Step(w.Side, 1)
	if !dim.Contains(n) {
		return w, false
	}
	return Wall{Pos: n, Side: w.Side.Opposite()}, true
}
