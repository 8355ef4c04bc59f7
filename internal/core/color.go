package core

// Color is a semantic foreground colour for a screen cell.
// The TUI maps each value to an ANSI 256-colour style.
type Color uint8

// ColorGrid is used for cell dots, ColorWall for walls and the frame,
// ColorSelected for the marker around the selected robot and ColorMuted
// for status and help text.
const (
	ColorDefault Color = iota
	ColorGrid
	ColorWall
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorSelected
	ColorMuted
)
