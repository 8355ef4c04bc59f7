package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ricochet/internal/core"
	"github.com/vovakirdan/tui-ricochet/internal/game"
	"github.com/vovakirdan/tui-ricochet/internal/geom"
	"github.com/vovakirdan/tui-ricochet/internal/render"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

// MoveRecorder persists played boards and their moves.
// *storage.Store implements it.
type MoveRecorder interface {
	StartSession(seed int64, tileSetID string, dim geom.Dimensions) (string, error)
	RecordMove(sessionID string, m world.Move) (int, error)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model of the play screen.
type Model struct {
	game      *game.Game
	recorder  MoveRecorder
	sessionID string
	logger    *log.Logger
	robots    []world.RobotID
	selected  int
	lastMove  *world.Move
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	status    string
	statusGen int
	quitting  bool
}

// NewModel creates the play model for g. The recorder may be nil.
func NewModel(g *game.Game, rec MoveRecorder, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := render.Size(g.Dim())
	m := Model{
		game:     g,
		recorder: rec,
		logger:   logger,
		robots:   g.World().RobotIDs(),
		screen:   core.NewScreen(w, h),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.startSession()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.gen == m.statusGen {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Robot1):
		m.selectRobot(0)
	case key.Matches(msg, m.keys.Robot2):
		m.selectRobot(1)
	case key.Matches(msg, m.keys.Robot3):
		m.selectRobot(2)
	case key.Matches(msg, m.keys.Robot4):
		m.selectRobot(3)
	case key.Matches(msg, m.keys.Next):
		if len(m.robots) > 0 {
			m.selected = (m.selected + 1) % len(m.robots)
		}
	case key.Matches(msg, m.keys.Up):
		return m.slide(geom.Up)
	case key.Matches(msg, m.keys.Down):
		return m.slide(geom.Down)
	case key.Matches(msg, m.keys.Left):
		return m.slide(geom.Left)
	case key.Matches(msg, m.keys.Right):
		return m.slide(geom.Right)
	case key.Matches(msg, m.keys.Reroll):
		if err := m.game.Reroll(); err != nil {
			return m.flash(err.Error())
		}
		m.lastMove = nil
		return m.flash("robots re-rolled")
	case key.Matches(msg, m.keys.NewBoard):
		if err := m.game.NewBoard(); err != nil {
			return m.flash(err.Error())
		}
		m.lastMove = nil
		m.startSession()
		return m.flash("new board: " + m.game.TileSet().Name)
	}
	return m, nil
}

func (m *Model) selectRobot(i int) {
	if i < len(m.robots) {
		m.selected = i
	}
}

// Selected returns the robot the arrows currently slide.
func (m Model) Selected() (world.RobotID, bool) {
	if len(m.robots) == 0 {
		return 0, false
	}
	return m.robots[m.selected], true
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

func (m Model) slide(way geom.Way) (tea.Model, tea.Cmd) {
	id, ok := m.Selected()
	if !ok {
		return m, nil
	}
	mv, err := m.game.Move(id, way)
	if err != nil {
		return m.flash(err.Error())
	}
	if !mv.Moved() {
		return m.flash(fmt.Sprintf("%s cannot move %s", id, way))
	}
	m.lastMove = &mv
	m.record(mv)
	return m, nil
}

// startSession opens a history session for the current board.
func (m *Model) startSession() {
	m.sessionID = ""
	if m.recorder == nil {
		return
	}
	ts := m.game.TileSet()
	id, err := m.recorder.StartSession(m.game.Seed(), ts.ID, m.game.Dim())
	if err != nil {
		m.logger.Warn("could not start session", "error", err)
		return
	}
	m.sessionID = id
	m.logger.Debug("session started", "session", id, "tileset", ts.ID)
}

// record stores an effective move. Failures are logged, play continues.
func (m *Model) record(mv world.Move) {
	if m.recorder == nil || m.sessionID == "" {
		return
	}
	if _, err := m.recorder.RecordMove(m.sessionID, mv); err != nil {
		m.logger.Warn("could not record move", "session", m.sessionID, "error", err)
	}
}

func (m Model) flash(text string) (tea.Model, tea.Cmd) {
	m.statusGen++
	m.status = text
	return m, clearStatusCmd(m.statusGen)
}

// View renders the board, the status line and the help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := render.Size(m.game.Dim())
	m.screen.Resize(w, h)
	m.screen.Clear()

	id, ok := m.Selected()
	opts := render.Options{
		Robots:       m.game.World().Robots(),
		Selected:     id,
		HasSelection: ok,
	}
	if err := render.Board(m.screen, 0, 0, m.game.Board(), opts); err != nil {
		return "render error: " + err.Error()
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteString("\n\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) statusLine() string {
	parts := []string{
		titleStyle.Render("ricochet"),
		statusStyle.Render(m.game.TileSet().Name),
		statusStyle.Render(fmt.Sprintf("moves: %d", m.game.World().MoveCount())),
	}
	if id, ok := m.Selected(); ok {
		parts = append(parts, robotStyle(id).Render("● "+id.String()))
	}
	if m.lastMove != nil {
		parts = append(parts, statusStyle.Render("last: "+m.lastMove.String()))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, "  ")
}

func robotStyle(id world.RobotID) lipgloss.Style {
	return styleFor(render.RobotColor(id))
}

// Run starts the Bubble Tea program for g.
func Run(g *game.Game, rec MoveRecorder, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(g, rec, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
