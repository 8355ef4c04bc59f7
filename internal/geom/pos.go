// Package geom provides board coordinates, directions and the path and
// distance arithmetic used by slide resolution.
// It has no dependencies beyond the standard library.
package geom

import (
	"fmt"
	"iter"
)

// Dimensions is the row/column extent of a board.
type Dimensions struct {
	Rows    int
	Columns int
}

// Dim is a convenience constructor for Dimensions.
func Dim(rows, columns int) Dimensions {
	return Dimensions{Rows: rows, Columns: columns}
}

// Usable reports whether a board of this size can be played on.
func (d Dimensions) Usable() bool {
	return d.Rows >= 2 && d.Columns >= 2
}

// Contains returns true if the position lies on a board of this size.
func (d Dimensions) Contains(p Pos) bool {
	return p.X >= 0 && p.X < d.Columns && p.Y >= 0 && p.Y < d.Rows
}

// Square reports whether rows and columns are equal.
func (d Dimensions) Square() bool {
	return d.Rows == d.Columns
}

// Area returns the number of cells.
func (d Dimensions) Area() int {
	return d.Rows * d.Columns
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Columns)
}

// Pos is a zero-based board coordinate.
// X increases to the right, Y increases downward.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the position n cells away in the given direction.
func (p Pos) Step(w Way, n int) Pos {
	dx, dy := w.Delta()
	return Pos{X: p.X + dx*n, Y: p.Y + dy*n}
}

// DistanceTo returns the signed number of cells from p to other measured
// along w. The result is negative when other lies behind p.
func (p Pos) DistanceTo(other Pos, w Way) int {
	switch w {
	case Up:
		return p.Y - other.Y
	case Down:
		return other.Y - p.Y
	case Left:
		return p.X - other.X
	case Right:
		return other.X - p.X
	default:
		return 0
	}
}

// DirectPathTo yields the positions strictly between p and target, nearest
// to p first. Neither endpoint is yielded. Positions that share neither a row
// nor a column have no direct path and yield nothing.
func (p Pos) DirectPathTo(target Pos) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		var w Way
		switch {
		case p.X == target.X && p.Y > target.Y:
			w = Up
		case p.X == target.X && p.Y < target.Y:
			w = Down
		case p.Y == target.Y && p.X > target.X:
			w = Left
		case p.Y == target.Y && p.X < target.X:
			w = Right
		default:
			return
		}
		n := p.DistanceTo(target, w)
		for i := 1; i < n; i++ {
			if !yield(p.Step(w, i)) {
				return
			}
		}
	}
}

// Rotate turns p clockwise about the centre of a board of size dim.
// Quarter turns are only defined on square boards; ok is false otherwise.
func (p Pos) Rotate(dim Dimensions, a RotateAngle) (Pos, bool) {
	switch a % 4 {
	case NoRotation:
		return p, true
	case Half:
		return Pos{X: dim.Columns - 1 - p.X, Y: dim.Rows - 1 - p.Y}, true
	}
	if !dim.Square() {
		return p, false
	}
	if a%4 == Quarter {
		return Pos{X: dim.Columns - 1 - p.Y, Y: p.X}, true
	}
	return Pos{X: p.Y, Y: dim.Rows - 1 - p.X}, true
}

// Edge returns the farthest position on a board of size dim reachable from p
// in direction w, ignoring walls, together with its distance.
func (p Pos) Edge(dim Dimensions, w Way) Hit {
	var edge Pos
	switch w {
	case Up:
		edge = Pos{X: p.X, Y: 0}
	case Down:
		edge = Pos{X: p.X, Y: dim.Rows - 1}
	case Left:
		edge = Pos{X: 0, Y: p.Y}
	case Right:
		edge = Pos{X: dim.Columns - 1, Y: p.Y}
	default:
		edge = p
	}
	return Hit{Pos: edge, Distance: p.DistanceTo(edge, w)}
}

// Hit is where a slide comes to rest and how many cells were travelled.
type Hit struct {
	Pos      Pos
	Distance int
}

func (h Hit) String() string {
	return fmt.Sprintf("%v after %d", h.Pos, h.Distance)
}
