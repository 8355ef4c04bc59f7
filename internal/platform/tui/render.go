package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ricochet/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorGrid:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorMuted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// styleFor returns the style of a colour, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one colour share a single styled run and trailing
// blanks are dropped from every row.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		end := s.Width()
		for end > 0 && s.GetCell(end-1, y).Rune == ' ' {
			end--
		}

		for x := 0; x < end; {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < end; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run = append(run, cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return sb.String()
}
