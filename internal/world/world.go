// Package world places robots on a board and executes slides.
// Other robots act as dynamic walls on top of the board's own wall model.
package world

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-ricochet/internal/board"
	"github.com/vovakirdan/tui-ricochet/internal/geom"
)

var (
	// ErrUnknownRobot is returned for robots that are not part of the world.
	ErrUnknownRobot = errors.New("world: unknown robot")

	// ErrNoRoom is returned when the board has fewer start cells than robots.
	ErrNoRoom = errors.New("world: not enough start positions")

	// ErrOccupied is returned by Place for a cell holding another robot.
	ErrOccupied = errors.New("world: cell occupied")
)

// Move describes one executed slide.
type Move struct {
	Robot    RobotID
	Way      geom.Way
	From     geom.Pos
	To       geom.Pos
	Distance int
}

// Moved reports whether the robot left its cell.
func (m Move) Moved() bool {
	return m.Distance > 0
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s: %v -> %v (%d)", m.Robot, m.Way, m.From, m.To, m.Distance)
}

// World owns a board and the robots standing on it.
type World struct {
	board  board.Board
	order  []RobotID
	robots map[RobotID]geom.Pos
	rng    *rand.Rand
	moves  int
}

// New creates a world over b with the given robots, unplaced.
// The rng drives ResetRandPos.
func New(b board.Board, robots []RobotID, rng *rand.Rand) *World {
	order := make([]RobotID, len(robots))
	copy(order, robots)
	return &World{
		board:  b,
		order:  order,
		robots: make(map[RobotID]geom.Pos, len(robots)),
		rng:    rng,
	}
}

// Board returns the board the world plays on.
func (w *World) Board() board.Board {
	return w.board
}

// RobotIDs returns the robots of this world in display order.
func (w *World) RobotIDs() []RobotID {
	out := make([]RobotID, len(w.order))
	copy(out, w.order)
	return out
}

// Robots returns a copy of the placed robots' positions.
func (w *World) Robots() map[RobotID]geom.Pos {
	out := make(map[RobotID]geom.Pos, len(w.robots))
	for id, p := range w.robots {
		out[id] = p
	}
	return out
}

// Position returns where a robot stands. ok is false for unplaced robots.
func (w *World) Position(id RobotID) (geom.Pos, bool) {
	p, ok := w.robots[id]
	return p, ok
}

// RobotAt returns the robot standing on pos, if any.
func (w *World) RobotAt(pos geom.Pos) (RobotID, bool) {
	for _, id := range w.order {
		if p, ok := w.robots[id]; ok && p == pos {
			return id, true
		}
	}
	return 0, false
}

// MoveCount returns the number of slides that moved a robot since the last
// reset of robot positions.
func (w *World) MoveCount() int {
	return w.moves
}

// ResetRandPos puts every robot on a distinct random start cell.
func (w *World) ResetRandPos() error {
	dim := w.board.Dim()

	starts := make([]geom.Pos, 0, dim.Area())
	for y := 0; y < dim.Rows; y++ {
		for x := 0; x < dim.Columns; x++ {
			p := geom.P(x, y)
			ok, err := w.board.IsStartPos(p)
			if err != nil {
				return fmt.Errorf("world: start position %v: %w", p, err)
			}
			if ok {
				starts = append(starts, p)
			}
		}
	}

	if len(starts) < len(w.order) {
		return fmt.Errorf("%w: %d robots, %d cells", ErrNoRoom, len(w.order), len(starts))
	}

	w.rng.Shuffle(len(starts), func(i, j int) {
		starts[i], starts[j] = starts[j], starts[i]
	})

	clear(w.robots)
	for i, id := range w.order {
		w.robots[id] = starts[i]
	}
	w.moves = 0
	return nil
}

// Place puts a robot on pos.
func (w *World) Place(id RobotID, pos geom.Pos) error {
	if !w.known(id) {
		return fmt.Errorf("%w: %s", ErrUnknownRobot, id)
	}
	if !w.board.Dim().Contains(pos) {
		return fmt.Errorf("world: place %s: %w: %v", id, board.ErrPositionNotOnBoard, pos)
	}
	if other, ok := w.RobotAt(pos); ok && other != id {
		return fmt.Errorf("%w: %v holds %s", ErrOccupied, pos, other)
	}
	w.robots[id] = pos
	return nil
}

// MoveRobot slides a robot in direction way until it meets a wall, the
// board edge or another robot, whichever is nearest.
func (w *World) MoveRobot(id RobotID, way geom.Way) (Move, error) {
	from, ok := w.robots[id]
	if !ok {
		return Move{}, fmt.Errorf("%w: %s", ErrUnknownRobot, id)
	}

	move := Move{Robot: id, Way: way, From: from, To: from}

	moves, err := w.board.MovesFrom(from)
	if err != nil {
		return move, fmt.Errorf("world: move %s: %w", id, err)
	}
	if !moves.CanGo(way) {
		return move, nil
	}

	hit, err := w.board.HitFrom(from, way)
	if err != nil {
		return move, fmt.Errorf("world: move %s: %w", id, err)
	}

	// Robots are walls on the near side of their cell.
	distance := hit.Distance
	for other, p := range w.robots {
		if other == id {
			continue
		}
		d := from.DistanceTo(p, way)
		if d <= 0 || d > distance || from.Step(way, d) != p {
			continue
		}
		distance = d - 1
	}

	move.Distance = distance
	move.To = from.Step(way, distance)
	if move.Moved() {
		w.robots[id] = move.To
		w.moves++
	}
	return move, nil
}

func (w *World) known(id RobotID) bool {
	for _, r := range w.order {
		if r == id {
			return true
		}
	}
	return false
}
