// Package render draws a board and its robots into a core.Screen using only
// the board's read capability.
package render

import (
	"fmt"

	"github.com/vovakirdan/tui-ricochet/internal/board"
	"github.com/vovakirdan/tui-ricochet/internal/core"
	"github.com/vovakirdan/tui-ricochet/internal/geom"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

// Layout constants. Cell (x, y) occupies columns 4x+1..4x+3 of row 2y+1.
const (
	cellW = 4
	cellH = 2
)

// Options controls what is drawn on top of the walls.
type Options struct {
	Robots map[world.RobotID]geom.Pos

	// Selected is highlighted when HasSelection is set.
	Selected     world.RobotID
	HasSelection bool
}

// Size returns the screen area needed to draw a board of size dim.
func Size(dim geom.Dimensions) (w, h int) {
	return dim.Columns*cellW + 1, dim.Rows*cellH + 1
}

// RobotColor returns the screen colour of a robot.
func RobotColor(id world.RobotID) core.Color {
	switch id {
	case world.Red:
		return core.ColorRed
	case world.Green:
		return core.ColorGreen
	case world.Blue:
		return core.ColorBlue
	case world.Yellow:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// Board draws b with its top-left corner at (ox, oy).
func Board(dst *core.Screen, ox, oy int, b board.Board, opts Options) error {
	dim := b.Dim()
	w, h := Size(dim)
	dst.DrawBox(core.NewRect(ox, oy, w, h), core.ColorWall)

	for y := 0; y < dim.Rows; y++ {
		for x := 0; x < dim.Columns; x++ {
			pos := geom.P(x, y)
			moves, err := b.MovesFrom(pos)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			cx, cy := ox+x*cellW, oy+y*cellH
			dst.SetColored(cx+2, cy+1, '·', core.ColorGrid)

			if x+1 < dim.Columns && !moves.Right() {
				dst.DrawVLine(cx+cellW, cy+1, cellH-1, '│', core.ColorWall)
				joint(dst, cx+cellW, cy)
				joint(dst, cx+cellW, cy+cellH)
			}
			if y+1 < dim.Rows && !moves.Down() {
				dst.DrawHLine(cx+1, cy+cellH, cellW-1, '─', core.ColorWall)
				joint(dst, cx, cy+cellH)
				joint(dst, cx+cellW, cy+cellH)
			}
		}
	}

	for id, pos := range opts.Robots {
		if !dim.Contains(pos) {
			continue
		}
		cx, cy := ox+pos.X*cellW, oy+pos.Y*cellH
		dst.SetColored(cx+2, cy+1, id.Initial(), RobotColor(id))
		if opts.HasSelection && id == opts.Selected {
			dst.SetColored(cx+1, cy+1, '[', core.ColorSelected)
			dst.SetColored(cx+3, cy+1, ']', core.ColorSelected)
		}
	}
	return nil
}

// joint marks a grid corner touched by a wall, leaving the frame intact.
func joint(dst *core.Screen, x, y int) {
	if dst.Get(x, y) == ' ' {
		dst.SetColored(x, y, '+', core.ColorWall)
	}
}

// Text renders b and the given robots as plain text.
func Text(b board.Board, robots map[world.RobotID]geom.Pos) (string, error) {
	w, h := Size(b.Dim())
	screen := core.NewScreen(w, h)
	if err := Board(screen, 0, 0, b, Options{Robots: robots}); err != nil {
		return "", err
	}
	return screen.String(), nil
}
