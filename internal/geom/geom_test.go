package geom

import (
	"slices"
	"testing"
)

func TestWayOpposite(t *testing.T) {
	tests := []struct {
		way, expected Way
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}

	for _, tc := range tests {
		if got := tc.way.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.way, got, tc.expected)
		}
		if got := tc.way.Opposite().Opposite(); got != tc.way {
			t.Errorf("%v.Opposite().Opposite() = %v", tc.way, got)
		}
	}
}

func TestWayRotate(t *testing.T) {
	tests := []struct {
		name     string
		way      Way
		angle    RotateAngle
		expected Way
	}{
		{"up quarter", Up, Quarter, Right},
		{"right quarter", Right, Quarter, Down},
		{"down quarter", Down, Quarter, Left},
		{"left quarter", Left, Quarter, Up},
		{"up half", Up, Half, Down},
		{"up three quarter", Up, ThreeQuarter, Left},
		{"left none", Left, NoRotation, Left},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.way.Rotate(tc.angle); got != tc.expected {
				t.Errorf("Rotate() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestWayString(t *testing.T) {
	tests := []struct {
		way      Way
		expected string
	}{
		{Up, "up"},
		{Right, "right"},
		{Down, "down"},
		{Left, "left"},
		{Way(9), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.way.String(); got != tc.expected {
			t.Errorf("Way(%d).String() = %q, expected %q", tc.way, got, tc.expected)
		}
	}
}

func TestParseWay(t *testing.T) {
	for _, w := range AllWays() {
		got, err := ParseWay(w.String())
		if err != nil {
			t.Fatalf("ParseWay(%q) failed: %v", w.String(), err)
		}
		if got != w {
			t.Errorf("ParseWay(%q) = %v", w.String(), got)
		}
	}

	if w, err := ParseWay("L"); err != nil || w != Left {
		t.Errorf("ParseWay(\"L\") = %v, %v", w, err)
	}
	if _, err := ParseWay("north"); err == nil {
		t.Error("ParseWay(\"north\") should fail")
	}
}

func TestQuarters(t *testing.T) {
	if Quarters(5) != Quarter {
		t.Errorf("Quarters(5) = %v, expected 90", Quarters(5))
	}
	if Quarters(-1) != ThreeQuarter {
		t.Errorf("Quarters(-1) = %v, expected 270", Quarters(-1))
	}
}

func TestDistanceTo(t *testing.T) {
	origin := P(2, 2)

	tests := []struct {
		name     string
		other    Pos
		way      Way
		expected int
	}{
		{"ahead up", P(2, 0), Up, 2},
		{"behind up", P(2, 3), Up, -1},
		{"ahead down", P(2, 3), Down, 1},
		{"ahead left", P(0, 2), Left, 2},
		{"ahead right", P(5, 2), Right, 3},
		{"behind right", P(1, 2), Right, -1},
		{"same cell", P(2, 2), Right, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := origin.DistanceTo(tc.other, tc.way); got != tc.expected {
				t.Errorf("DistanceTo(%v, %v) = %d, expected %d", tc.other, tc.way, got, tc.expected)
			}
		})
	}
}

func TestDirectPathTo(t *testing.T) {
	tests := []struct {
		name     string
		from, to Pos
		expected []Pos
	}{
		{"right", P(0, 0), P(3, 0), []Pos{P(1, 0), P(2, 0)}},
		{"left", P(3, 1), P(0, 1), []Pos{P(2, 1), P(1, 1)}},
		{"down", P(1, 0), P(1, 3), []Pos{P(1, 1), P(1, 2)}},
		{"up", P(1, 3), P(1, 0), []Pos{P(1, 2), P(1, 1)}},
		{"adjacent", P(0, 0), P(1, 0), nil},
		{"same", P(2, 2), P(2, 2), nil},
		{"diagonal", P(0, 0), P(2, 2), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(tc.from.DirectPathTo(tc.to))
			if !slices.Equal(got, tc.expected) {
				t.Errorf("DirectPathTo(%v -> %v) = %v, expected %v", tc.from, tc.to, got, tc.expected)
			}
		})
	}
}

func TestDirectPathToStopsEarly(t *testing.T) {
	count := 0
	for p := range P(0, 0).DirectPathTo(P(9, 0)) {
		count++
		if p == P(3, 0) {
			break
		}
	}
	if count != 3 {
		t.Errorf("expected 3 positions before break, got %d", count)
	}
}

func TestEdge(t *testing.T) {
	dim := Dim(4, 5)
	p := P(1, 2)

	tests := []struct {
		way      Way
		expected Hit
	}{
		{Up, Hit{Pos: P(1, 0), Distance: 2}},
		{Down, Hit{Pos: P(1, 3), Distance: 1}},
		{Left, Hit{Pos: P(0, 2), Distance: 1}},
		{Right, Hit{Pos: P(4, 2), Distance: 3}},
	}

	for _, tc := range tests {
		if got := p.Edge(dim, tc.way); got != tc.expected {
			t.Errorf("Edge(%v) = %v, expected %v", tc.way, got, tc.expected)
		}
	}
}

func TestPosRotate(t *testing.T) {
	dim := Dim(4, 4)

	tests := []struct {
		name     string
		pos      Pos
		angle    RotateAngle
		expected Pos
	}{
		{"top-left quarter", P(0, 0), Quarter, P(3, 0)},
		{"top-left half", P(0, 0), Half, P(3, 3)},
		{"top-left three quarter", P(0, 0), ThreeQuarter, P(0, 3)},
		{"inner quarter", P(1, 0), Quarter, P(3, 1)},
		{"none", P(2, 1), NoRotation, P(2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.pos.Rotate(dim, tc.angle)
			if !ok {
				t.Fatalf("Rotate() not ok on square board")
			}
			if got != tc.expected {
				t.Errorf("Rotate() = %v, expected %v", got, tc.expected)
			}
		})
	}

	// Four quarter turns are the identity
	p := P(1, 2)
	q := p
	for range 4 {
		q, _ = q.Rotate(dim, Quarter)
	}
	if q != p {
		t.Errorf("four quarter turns moved %v to %v", p, q)
	}

	if _, ok := P(0, 0).Rotate(Dim(2, 3), Quarter); ok {
		t.Error("quarter turn on a non-square board should not be ok")
	}
	if got, ok := P(0, 0).Rotate(Dim(2, 3), Half); !ok || got != P(2, 1) {
		t.Errorf("half turn on 2x3 = %v, %v", got, ok)
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		dim    Dimensions
		usable bool
	}{
		{Dim(0, 0), false},
		{Dim(1, 5), false},
		{Dim(5, 1), false},
		{Dim(2, 2), true},
		{Dim(16, 16), true},
	}
	for _, tc := range tests {
		if got := tc.dim.Usable(); got != tc.usable {
			t.Errorf("%v.Usable() = %v, expected %v", tc.dim, got, tc.usable)
		}
	}

	d := Dim(3, 4)
	if !d.Contains(P(3, 2)) {
		t.Error("Contains(3,2) should be true on 3x4")
	}
	if d.Contains(P(4, 0)) || d.Contains(P(0, 3)) || d.Contains(P(-1, 0)) {
		t.Error("Contains should reject off-board positions")
	}
}
