package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagTileSet string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Build and print one board",
	Long: `Builds a board from the catalog, places the robots and prints it.
The same --seed always prints the same board.

Examples:
  ricochet board --seed 7
  ricochet board --tileset compact --config ./small.yaml`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	for _, c := range []*cobra.Command{boardCmd, playCmd, runCmd} {
		c.Flags().StringVar(&flagTileSet, "tileset", "", "Tile set ID (default: random compatible)")
	}
}

func runBoard(cmd *cobra.Command, _ []string) error {
	g, err := newGame(flagTileSet)
	if err != nil {
		return err
	}
	text, err := g.Text()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, text)
	fmt.Fprintf(out, "tile set: %s  seed: %d\n", g.TileSet().Name, g.Seed())
	for _, id := range g.World().RobotIDs() {
		pos, _ := g.World().Position(id)
		fmt.Fprintf(out, "  %c %-6s %v\n", id.Initial(), id, pos)
	}
	return nil
}
