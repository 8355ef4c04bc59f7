package builder

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ricochet/internal/board"
	"github.com/vovakirdan/tui-ricochet/internal/geom"
)

// Builder resets a board and replays a randomly chosen compatible tile set.
type Builder struct {
	dim     geom.Dimensions
	catalog []TileSet
	rng     *rand.Rand
	logger  *log.Logger
}

// New creates a builder. The rng is the only source of randomness, so two
// builders with equally seeded generators produce identical boards.
// A nil logger discards output.
func New(dim geom.Dimensions, catalog []TileSet, rng *rand.Rand, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{
		dim:     dim,
		catalog: catalog,
		rng:     rng,
		logger:  logger,
	}
}

// Dim returns the size of the boards this builder produces.
func (bd *Builder) Dim() geom.Dimensions {
	return bd.dim
}

// Compatible returns the catalog entries usable for the builder's size.
func (bd *Builder) Compatible() []TileSet {
	var out []TileSet
	for _, ts := range bd.catalog {
		if ts.Compatible(bd.dim) {
			out = append(out, ts)
		}
	}
	return out
}

// BuildOn resets b and replays a random compatible tile set onto it.
// Returns the tile set used.
func (bd *Builder) BuildOn(b board.EditableBoard) (TileSet, error) {
	candidates := bd.Compatible()
	if len(candidates) == 0 {
		return TileSet{}, fmt.Errorf("%w for %v (%d in catalog)", ErrNoCompatibleTileSet, bd.dim, len(bd.catalog))
	}
	ts := candidates[bd.rng.Intn(len(candidates))]
	return ts, bd.build(b, ts)
}

// BuildWith resets b and replays the tile set with the given ID.
func (bd *Builder) BuildWith(b board.EditableBoard, id string) (TileSet, error) {
	for _, ts := range bd.catalog {
		if ts.ID != id {
			continue
		}
		if !ts.Compatible(bd.dim) {
			return TileSet{}, fmt.Errorf("%w: %s is %v, board is %v", ErrNoCompatibleTileSet, id, ts.Dim, bd.dim)
		}
		return ts, bd.build(b, ts)
	}
	return TileSet{}, fmt.Errorf("%w: %s", ErrUnknownTileSet, id)
}

func (bd *Builder) build(b board.EditableBoard, ts TileSet) error {
	if err := b.Reset(bd.dim); err != nil {
		return fmt.Errorf("builder: reset: %w", err)
	}
	if err := ts.BuildRand(b, bd.rng); err != nil {
		return err
	}
	bd.logger.Debug("board built", "tileset", ts.ID, "dim", bd.dim.String())
	return nil
}
