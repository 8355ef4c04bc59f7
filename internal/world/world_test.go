package world

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-ricochet/internal/board"
	"github.com/vovakirdan/tui-ricochet/internal/geom"
)

func newWorld(t *testing.T, rows, cols int, walls ...board.Wall) *World {
	t.Helper()
	b := board.New()
	if err := b.Reset(geom.Dim(rows, cols)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	for _, w := range walls {
		if err := b.PutWall(w); err != nil {
			t.Fatalf("PutWall(%v) failed: %v", w, err)
		}
	}
	return New(b, AllRobots(), rand.New(rand.NewSource(1)))
}

func place(t *testing.T, w *World, id RobotID, x, y int) {
	t.Helper()
	if err := w.Place(id, geom.P(x, y)); err != nil {
		t.Fatalf("Place(%s) failed: %v", id, err)
	}
}

func TestMoveRobotToEdge(t *testing.T) {
	w := newWorld(t, 4, 4)
	place(t, w, Red, 0, 0)

	move, err := w.MoveRobot(Red, geom.Right)
	if err != nil {
		t.Fatalf("MoveRobot() failed: %v", err)
	}
	if move.To != geom.P(3, 0) || move.Distance != 3 {
		t.Errorf("MoveRobot() = %v, expected (3,0) after 3", move)
	}
	if p, _ := w.Position(Red); p != geom.P(3, 0) {
		t.Errorf("Position(Red) = %v", p)
	}
	if w.MoveCount() != 1 {
		t.Errorf("MoveCount() = %d, expected 1", w.MoveCount())
	}
}

func TestMoveRobotStopsAtWall(t *testing.T) {
	w := newWorld(t, 4, 4, board.W(2, 0, geom.Right))
	place(t, w, Red, 0, 0)

	move, _ := w.MoveRobot(Red, geom.Right)
	if move.To != geom.P(2, 0) {
		t.Errorf("MoveRobot() = %v, expected stop at (2,0)", move)
	}
}

func TestMoveRobotStopsBeforeRobot(t *testing.T) {
	w := newWorld(t, 6, 6, board.W(0, 4, geom.Down))
	place(t, w, Red, 0, 0)
	place(t, w, Blue, 0, 3)
	place(t, w, Green, 0, 5)

	move, err := w.MoveRobot(Red, geom.Down)
	if err != nil {
		t.Fatal(err)
	}
	if move.To != geom.P(0, 2) || move.Distance != 2 {
		t.Errorf("MoveRobot() = %v, expected (0,2) after 2", move)
	}

	// Blue is stopped by the wall, not by Green behind it
	move, _ = w.MoveRobot(Blue, geom.Down)
	if move.To != geom.P(0, 4) {
		t.Errorf("Blue = %v, expected (0,4)", move)
	}
}

func TestMoveRobotBlockedAdjacent(t *testing.T) {
	w := newWorld(t, 4, 4)
	place(t, w, Red, 1, 1)
	place(t, w, Yellow, 2, 1)

	move, err := w.MoveRobot(Red, geom.Right)
	if err != nil {
		t.Fatal(err)
	}
	if move.Moved() {
		t.Errorf("Red should not move into Yellow, got %v", move)
	}
	if w.MoveCount() != 0 {
		t.Errorf("blocked slides must not count, got %d", w.MoveCount())
	}
}

func TestMoveRobotIgnoresRobotsOffLine(t *testing.T) {
	w := newWorld(t, 4, 4)
	place(t, w, Red, 0, 0)
	place(t, w, Green, 2, 1)
	place(t, w, Blue, 3, 3)

	move, _ := w.MoveRobot(Red, geom.Right)
	if move.To != geom.P(3, 0) {
		t.Errorf("MoveRobot() = %v, expected (3,0)", move)
	}
}

func TestMoveRobotAgainstEdge(t *testing.T) {
	w := newWorld(t, 4, 4)
	place(t, w, Red, 0, 2)

	move, err := w.MoveRobot(Red, geom.Left)
	if err != nil {
		t.Fatal(err)
	}
	if move.Moved() || move.To != geom.P(0, 2) {
		t.Errorf("MoveRobot() = %v, expected no movement", move)
	}
}

func TestMoveUnknownRobot(t *testing.T) {
	w := newWorld(t, 4, 4)
	if _, err := w.MoveRobot(Green, geom.Up); !errors.Is(err, ErrUnknownRobot) {
		t.Errorf("unplaced robot: expected ErrUnknownRobot, got %v", err)
	}
}

func TestPlace(t *testing.T) {
	w := newWorld(t, 3, 3)
	place(t, w, Red, 1, 1)

	if err := w.Place(Blue, geom.P(1, 1)); !errors.Is(err, ErrOccupied) {
		t.Errorf("expected ErrOccupied, got %v", err)
	}
	if err := w.Place(Blue, geom.P(3, 0)); !errors.Is(err, board.ErrPositionNotOnBoard) {
		t.Errorf("expected ErrPositionNotOnBoard, got %v", err)
	}

	small := New(board.New(), []RobotID{Red}, rand.New(rand.NewSource(1)))
	if err := small.Place(Blue, geom.P(0, 0)); !errors.Is(err, ErrUnknownRobot) {
		t.Errorf("expected ErrUnknownRobot, got %v", err)
	}
}

func TestResetRandPos(t *testing.T) {
	w := newWorld(t, 5, 5)
	if err := w.ResetRandPos(); err != nil {
		t.Fatalf("ResetRandPos() failed: %v", err)
	}

	seen := make(map[geom.Pos]RobotID)
	for _, id := range AllRobots() {
		p, ok := w.Position(id)
		if !ok {
			t.Fatalf("%s was not placed", id)
		}
		if !w.Board().Dim().Contains(p) {
			t.Errorf("%s placed off board at %v", id, p)
		}
		if other, dup := seen[p]; dup {
			t.Errorf("%s and %s share %v", id, other, p)
		}
		seen[p] = id
	}

	// Same seed, same positions
	w2 := newWorld(t, 5, 5)
	if err := w2.ResetRandPos(); err != nil {
		t.Fatal(err)
	}
	for _, id := range AllRobots() {
		a, _ := w.Position(id)
		b, _ := w2.Position(id)
		if a != b {
			t.Errorf("%s: %v vs %v with the same seed", id, a, b)
		}
	}
}

func TestResetRandPosNoRoom(t *testing.T) {
	b := board.New()
	if err := b.Reset(geom.Dim(2, 2)); err != nil {
		t.Fatal(err)
	}
	robots := []RobotID{Red, Green, Blue, Yellow}
	w := New(b, robots, rand.New(rand.NewSource(1)))
	if err := w.ResetRandPos(); err != nil {
		t.Fatalf("four robots fit on 2x2: %v", err)
	}

	empty := New(board.New(), robots, rand.New(rand.NewSource(1)))
	if err := empty.ResetRandPos(); !errors.Is(err, ErrNoRoom) {
		t.Errorf("expected ErrNoRoom, got %v", err)
	}
}

func TestParseRobots(t *testing.T) {
	ids, err := ParseRobots([]string{"Red", " blue "})
	if err != nil {
		t.Fatalf("ParseRobots() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != Red || ids[1] != Blue {
		t.Errorf("ParseRobots() = %v", ids)
	}
	if _, err := ParseRobots([]string{"red", "red"}); err == nil {
		t.Error("duplicate robots should fail")
	}
	if _, err := ParseRobots([]string{"purple"}); !errors.Is(err, ErrUnknownRobot) {
		t.Errorf("expected ErrUnknownRobot, got %v", err)
	}
}

func TestMoveStringUsesScriptNames(t *testing.T) {
	w := newWorld(t, 4, 4)
	place(t, w, Blue, 0, 3)

	move, err := w.MoveRobot(Blue, geom.Up)
	if err != nil {
		t.Fatalf("MoveRobot() failed: %v", err)
	}
	expected := "blue up: (0,3) -> (0,0) (3)"
	if move.String() != expected {
		t.Errorf("String() = %q, expected %q", move.String(), expected)
	}
}
