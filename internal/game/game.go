// Package game ties a board, its builder and the robots into one playable
// round. The TUI, the SSH server and the CLI all drive play through it.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ricochet/internal/board"
	"github.com/vovakirdan/tui-ricochet/internal/builder"
	"github.com/vovakirdan/tui-ricochet/internal/geom"
	"github.com/vovakirdan/tui-ricochet/internal/render"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

// Options configures a game.
type Options struct {
	Dim     geom.Dimensions
	Catalog []builder.TileSet
	Robots  []world.RobotID

	// Seed drives board layout and robot placement. 0 derives one from the clock.
	Seed int64

	// TileSetID pins the tile set. Empty picks a random compatible one per board.
	TileSetID string

	Logger *log.Logger
}

// Game is one board with robots on it.
type Game struct {
	seed      int64
	tileSetID string
	cells     *board.Cells
	builder   *builder.Builder
	world     *world.World
	tileSet   builder.TileSet
	logger    *log.Logger
}

// New builds the first board and places the robots.
func New(opts Options) (*Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(seed))
	cells := board.New()
	cells.SetLogger(logger)
	g := &Game{
		seed:      seed,
		tileSetID: opts.TileSetID,
		cells:     cells,
		builder:   builder.New(opts.Dim, opts.Catalog, rng, logger),
		world:     world.New(cells, opts.Robots, rng),
		logger:    logger,
	}
	if err := g.NewBoard(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewBoard rebuilds the walls and re-rolls the robots.
func (g *Game) NewBoard() error {
	var (
		ts  builder.TileSet
		err error
	)
	if g.tileSetID != "" {
		ts, err = g.builder.BuildWith(g.cells, g.tileSetID)
	} else {
		ts, err = g.builder.BuildOn(g.cells)
	}
	if err != nil {
		return fmt.Errorf("game: new board: %w", err)
	}
	g.tileSet = ts
	return g.Reroll()
}

// Reroll places every robot on a fresh random cell.
func (g *Game) Reroll() error {
	if err := g.world.ResetRandPos(); err != nil {
		return fmt.Errorf("game: place robots: %w", err)
	}
	g.logger.Debug("robots placed", "robots", len(g.world.RobotIDs()))
	return nil
}

// Move slides a robot.
func (g *Game) Move(id world.RobotID, way geom.Way) (world.Move, error) {
	m, err := g.world.MoveRobot(id, way)
	if err != nil {
		return world.Move{}, err
	}
	g.logger.Debug("move", "robot", m.Robot.String(), "way", m.Way.String(), "distance", m.Distance)
	return m, nil
}

// Seed returns the seed the game was started with.
func (g *Game) Seed() int64 { return g.seed }

// TileSet returns the tile set of the current board.
func (g *Game) TileSet() builder.TileSet { return g.tileSet }

// World returns the robots' world.
func (g *Game) World() *world.World { return g.world }

// Board returns the read view of the current board.
func (g *Game) Board() board.Board { return g.cells }

// Dim returns the board size.
func (g *Game) Dim() geom.Dimensions { return g.cells.Dim() }

// Text renders the board and robots as plain text.
func (g *Game) Text() (string, error) {
	return render.Text(g.cells, g.world.Robots())
}
