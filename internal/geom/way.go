package geom

import (
	"fmt"
	"strings"
)

// Way is one of the four cardinal directions a robot can slide in.
type Way uint8

const (
	Up Way = iota
	Right
	Down
	Left
)

// AllWays returns the four directions in clockwise order starting from Up.
func AllWays() []Way {
	return []Way{Up, Right, Down, Left}
}

// String returns the lowercase name of a direction, the form move scripts
// and tile set files use.
func (w Way) String() string {
	switch w {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ParseWay converts a direction name (case-insensitive) to a Way.
// Single-letter forms u, d, l and r are accepted as well.
func ParseWay(s string) (Way, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "right", "r":
		return Right, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	}
	return Up, fmt.Errorf("geom: unknown way %q", s)
}

// Valid reports whether w is one of the four directions.
func (w Way) Valid() bool {
	return w <= Left
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (w Way) Delta() (dx, dy int) {
	switch w {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (w Way) Opposite() Way {
	return w.Rotate(Half)
}

// Rotate turns the direction clockwise by the given angle.
func (w Way) Rotate(a RotateAngle) Way {
	if !w.Valid() {
		return w
	}
	return Way((uint8(w) + uint8(a)%4) % 4)
}

// RotateAngle is a clockwise rotation by a whole number of quarter turns.
type RotateAngle uint8

const (
	NoRotation RotateAngle = iota
	Quarter
	Half
	ThreeQuarter
)

// Quarters returns the angle made of n clockwise quarter turns.
func Quarters(n int) RotateAngle {
	n %= 4
	if n < 0 {
		n += 4
	}
	return RotateAngle(n)
}

func (a RotateAngle) String() string {
	switch a % 4 {
	case Quarter:
		return "90"
	case Half:
		return "180"
	case ThreeQuarter:
		return "270"
	default:
		return "0"
	}
}
