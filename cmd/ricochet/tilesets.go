package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ricochet/internal/builder"
)

var tileSetsCmd = &cobra.Command{
	Use:   "tilesets",
	Short: "List the tile set catalog",
	Long: `Shows the built-in tile sets merged with those found in --tilesets.
Sets marked with * fit the configured board size.
With --dump, prints one set in the YAML format --tilesets reads.`,
	Args: cobra.NoArgs,
	RunE: runTileSets,
}

var flagDump string

func init() {
	tileSetsCmd.Flags().StringVar(&flagDump, "dump", "", "Print the tile set with this ID as YAML")
}

func runTileSets(cmd *cobra.Command, _ []string) error {
	sets, err := builder.LoadCatalog(app.cfg.TileSetsDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagDump != "" {
		return dumpTileSet(out, sets, flagDump)
	}
	if len(sets) == 0 {
		fmt.Fprintln(out, "No tile sets available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, ts := range sets {
		if len(ts.ID) > maxIDLen {
			maxIDLen = len(ts.ID)
		}
	}

	dim := app.cfg.Dim()
	fmt.Fprintf(out, "  %-*s  %-7s  %-9s  %s\n", maxIDLen, "ID", "Size", "Quadrants", "Name")
	fmt.Fprintf(out, "  %-*s  %-7s  %-9s  %s\n", maxIDLen, "--", "----", "---------", "----")
	for _, ts := range sets {
		mark := " "
		if ts.Compatible(dim) {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %-*s  %-7s  %-9d  %s\n", mark, maxIDLen, ts.ID, ts.Dim.String(), len(ts.Quadrants), ts.Name)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Board size is %v. Run 'ricochet board --tileset <id>' to print one.\n", dim)
	return nil
}

func dumpTileSet(out io.Writer, sets []builder.TileSet, id string) error {
	for _, ts := range sets {
		if ts.ID != id {
			continue
		}
		data, err := builder.Encode(ts)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	return fmt.Errorf("%w: %s", builder.ErrUnknownTileSet, id)
}
