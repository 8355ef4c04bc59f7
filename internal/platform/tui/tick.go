package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status message stays on screen.
const statusTTL = 3 * time.Second

// clearStatusMsg drops the status line if it is still generation gen.
type clearStatusMsg struct {
	gen int
}

// clearStatusCmd returns a Bubble Tea command that expires a status message.
func clearStatusCmd(gen int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{gen: gen}
	})
}
