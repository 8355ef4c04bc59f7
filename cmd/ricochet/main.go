// ricochet is a terminal sliding-robot puzzle: robots slide across a walled
// board until they hit a wall, the edge or another robot.
//
// Usage:
//
//	ricochet tilesets           - List the tile set catalog
//	ricochet board              - Build and print one board
//	ricochet play               - Play in the terminal
//	ricochet run <script|->     - Execute a move script
//	ricochet history [id]       - Show played sessions
//	ricochet serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set history database path
//	--config <path>     - Use a specific config file
//	--tilesets <dir>    - Merge extra tile sets over the built-in ones
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ricochet/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagTileSets string
	flagLogLevel string
)

// app is the state shared by all commands, set up before any of them runs.
var app struct {
	cfg    config.AppConfig
	logger *log.Logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ricochet",
	Short: "Ricochet - slide robots around a walled board",
	Long: `Ricochet is a terminal sliding-robot puzzle. Robots move in straight
lines until a wall, the board edge or another robot stops them.

Available commands:
  tilesets - List the tile set catalog
  board    - Build and print one board
  play     - Play interactively
  run      - Execute a move script
  history  - Show played sessions
  serve    - Start SSH server for remote play

Examples:
  ricochet board --seed 42
  ricochet play --tileset classic
  echo "red up, left; blue down;" | ricochet run -
  ricochet serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTileSets, "tilesets", "", "Directory of extra tile set YAML files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(tileSetsCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration and applies flag overrides.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	app.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ricochet",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagTileSets != "" {
		cfg.TileSetsDir = flagTileSets
	}
	app.cfg = cfg

	app.logger.Debug("config loaded",
		"board", cfg.Dim().String(),
		"robots", len(cfg.Robots),
		"tilesets", cfg.TileSetsDir,
		"db", cfg.DBPath,
	)
	return nil
}
