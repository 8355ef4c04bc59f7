package main

import (
	"fmt"

	"github.com/vovakirdan/tui-ricochet/internal/builder"
	"github.com/vovakirdan/tui-ricochet/internal/config"
	"github.com/vovakirdan/tui-ricochet/internal/game"
	"github.com/vovakirdan/tui-ricochet/internal/storage"
)

// gameOptions returns the game template described by the configuration.
func gameOptions(cfg config.AppConfig, tileSetID string) (game.Options, error) {
	catalog, err := builder.LoadCatalog(cfg.TileSetsDir)
	if err != nil {
		return game.Options{}, err
	}
	robots, err := cfg.RobotIDs()
	if err != nil {
		return game.Options{}, err
	}
	return game.Options{
		Dim:       cfg.Dim(),
		Catalog:   catalog,
		Robots:    robots,
		Seed:      flagSeed,
		TileSetID: tileSetID,
		Logger:    app.logger,
	}, nil
}

// newGame builds the first board for a command.
func newGame(tileSetID string) (*game.Game, error) {
	opts, err := gameOptions(app.cfg, tileSetID)
	if err != nil {
		return nil, err
	}
	g, err := game.New(opts)
	if err != nil {
		return nil, err
	}
	app.logger.Info("board ready", "tileset", g.TileSet().ID, "seed", g.Seed())
	return g, nil
}

// openStore opens the history database.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(app.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	return store, nil
}
