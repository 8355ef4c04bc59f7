package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ricochet/internal/storage"
)

// maxSessions is how many sessions the browser loads.
const maxSessions = 100

// HistorySource is the read side of the session store.
type HistorySource interface {
	RecentSessions(limit int) ([]storage.Session, error)
	SessionMoves(sessionID string) ([]storage.MoveRecord, error)
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show moves"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel browses stored sessions and the moves played on them.
type HistoryModel struct {
	source   HistorySource
	sessions []storage.Session
	moves    []storage.MoveRecord
	current  *storage.Session // session whose moves are shown, nil on the list
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	err      error
	height   int
	quitting bool
}

// NewHistoryModel creates the history browser and loads the session list.
func NewHistoryModel(source HistorySource, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		height: height,
	}
	m.sessions, m.err = source.RecentSessions(maxSessions)
	m.showSessions()
	return m
}

func (m HistoryModel) tableHeight() int {
	if m.height < 12 {
		return 4
	}
	return m.height - 8
}

func newHistoryTable(columns []table.Column, rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// showSessions switches the table to the session list.
func (m *HistoryModel) showSessions() {
	m.current = nil
	m.moves = nil

	columns := []table.Column{
		{Title: "Session", Width: 10},
		{Title: "Tile set", Width: 12},
		{Title: "Size", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 14},
	}
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			shortID(s.ID),
			s.TileSetID,
			s.Dim.String(),
			fmt.Sprintf("%d", s.Seed),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table = newHistoryTable(columns, rows, m.tableHeight())
}

// showMoves switches the table to the moves of the selected session.
func (m *HistoryModel) showMoves() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sessions) {
		return
	}
	sess := m.sessions[i]
	moves, err := m.source.SessionMoves(sess.ID)
	if err != nil {
		m.err = err
		return
	}
	m.current = &sess
	m.moves = moves

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Robot", Width: 8},
		{Title: "Way", Width: 6},
		{Title: "From", Width: 8},
		{Title: "To", Width: 8},
		{Title: "Dist", Width: 5},
	}
	rows := make([]table.Row, len(moves))
	for i, mv := range moves {
		rows[i] = table.Row{
			fmt.Sprintf("%d", mv.Seq),
			mv.Robot,
			mv.Way,
			mv.From.String(),
			mv.To.String(),
			fmt.Sprintf("%d", mv.Distance),
		}
	}
	m.table = newHistoryTable(columns, rows, m.tableHeight())
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.current == nil {
				m.quitting = true
				return m, tea.Quit
			}
			m.showSessions()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if m.current == nil {
				m.showMoves()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(m.tableHeight())
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "SESSIONS"
	if m.current != nil {
		title = fmt.Sprintf("MOVES - %s (%s, %d moves)", shortID(m.current.ID), m.current.TileSetID, len(m.moves))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.err != nil:
		b.WriteString(boxStyle.Render("Error: " + m.err.Error()))
	case m.current == nil && len(m.sessions) == 0:
		b.WriteString(boxStyle.Render(statusStyle.Italic(true).Render("No sessions recorded yet.\nPlay a board to start one!")))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Current returns the session whose moves are shown, or nil on the list.
func (m HistoryModel) Current() *storage.Session {
	return m.current
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RunHistory runs the history browser.
func RunHistory(source HistorySource) error {
	p := tea.NewProgram(
		NewHistoryModel(source, 24),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
