// Package board holds the wall model of a sliding-robot board and the
// slide resolution that decides where a robot comes to rest.
//
// Other robots are not obstacles here; the world layer treats them as
// dynamic walls on top of HitFrom.
package board

import (
	"errors"

	"github.com/vovakirdan/tui-ricochet/internal/geom"
)

var (
	// ErrDimensionsNotSuitable is returned by Reset for boards smaller than 2x2.
	ErrDimensionsNotSuitable = errors.New("board: dimensions not suitable for board")

	// ErrPositionNotOnBoard is returned for positions outside the current dimensions.
	ErrPositionNotOnBoard = errors.New("board: position not on board")
)

// Board is the read capability over a board representation.
// It is consumed by the world layer to execute slides and by renderers.
type Board interface {
	// Dim returns the current dimensions.
	Dim() geom.Dimensions

	// IsStartPos reports whether a robot may start on pos.
	IsStartPos(pos geom.Pos) (bool, error)

	// MovesFrom returns the directions in which pos can be exited,
	// including board-edge clipping.
	MovesFrom(pos geom.Pos) (MovePossibility, error)

	// HitFrom resolves where a slide from pos in direction w stops.
	HitFrom(pos geom.Pos, w geom.Way) (geom.Hit, error)
}

// EditableBoard is the write capability used by board builders.
type EditableBoard interface {
	// Reset clears every wall and adopts new dimensions.
	Reset(dim geom.Dimensions) error

	// PutWall closes a side of a cell and the matching side of its neighbour.
	PutWall(w Wall) error
}

// ReadWriter is a board that can be both built and played on.
type ReadWriter interface {
	Board
	EditableBoard
}
