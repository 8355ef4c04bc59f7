package world

import (
	"fmt"
	"strings"
)

// RobotID identifies one of the coloured robots.
type RobotID uint8

const (
	Red RobotID = iota
	Green
	Blue
	Yellow
)

// AllRobots returns every robot in display order.
func AllRobots() []RobotID {
	return []RobotID{Red, Green, Blue, Yellow}
}

// String returns the robot's colour name.
func (r RobotID) String() string {
	switch r {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Initial returns the single upper-case letter used to draw the robot.
func (r RobotID) Initial() rune {
	switch r {
	case Red:
		return 'R'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	default:
		return '?'
	}
}

// ParseRobot converts a colour name (case-insensitive) to a RobotID.
func ParseRobot(s string) (RobotID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, r := range AllRobots() {
		if r.String() == name {
			return r, nil
		}
	}
	return Red, fmt.Errorf("%w: %q", ErrUnknownRobot, s)
}

// ParseRobots converts a list of colour names, rejecting duplicates.
func ParseRobots(names []string) ([]RobotID, error) {
	seen := make(map[RobotID]bool, len(names))
	out := make([]RobotID, 0, len(names))
	for _, n := range names {
		r, err := ParseRobot(n)
		if err != nil {
			return nil, err
		}
		if seen[r] {
			return nil, fmt.Errorf("world: robot %s listed twice", r)
		}
		seen[r] = true
		out = append(out, r)
	}
	return out, nil
}
