package board

import "github.com/vovakirdan/tui-ricochet/internal/geom"

// MovePossibility records which sides of a cell may be exited.
// One bit per direction; the zero value has every side closed.
type MovePossibility uint8

func bit(w geom.Way) MovePossibility {
	return 1 << w
}

// All returns a value with every side open.
func All() MovePossibility {
	return bit(geom.Up) | bit(geom.Right) | bit(geom.Down) | bit(geom.Left)
}

// CanGo reports whether the cell may be exited in direction w.
func (m MovePossibility) CanGo(w geom.Way) bool {
	return w.Valid() && m&bit(w) != 0
}

// Close returns m with side w closed.
func (m MovePossibility) Close(w geom.Way) MovePossibility {
	return m &^ bit(w)
}

// Open returns m with side w open.
func (m MovePossibility) Open(w geom.Way) MovePossibility {
	if !w.Valid() {
		return m
	}
	return m | bit(w)
}

// Set opens or closes side w depending on open.
func (m MovePossibility) Set(w geom.Way, open bool) MovePossibility {
	if open {
		return m.Open(w)
	}
	return m.Close(w)
}

func (m MovePossibility) Up() bool    { return m.CanGo(geom.Up) }
func (m MovePossibility) Down() bool  { return m.CanGo(geom.Down) }
func (m MovePossibility) Left() bool  { return m.CanGo(geom.Left) }
func (m MovePossibility) Right() bool { return m.CanGo(geom.Right) }

// String renders open sides as arrows and closed sides as dots, in
// up, down, left, right order.
func (m MovePossibility) String() string {
	out := []byte("....")
	for i, side := range []struct {
		way geom.Way
		r   byte
	}{{geom.Up, '^'}, {geom.Down, 'v'}, {geom.Left, '<'}, {geom.Right, '>'}} {
		if m.CanGo(side.way) {
			out[i] = side.r
		}
	}
	return string(out)
}
