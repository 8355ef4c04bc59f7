package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ricochet/internal/game"
	"github.com/vovakirdan/tui-ricochet/internal/script"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

var flagQuiet bool

var runCmd = &cobra.Command{
	Use:   "run <script|->",
	Short: "Execute a move script",
	Long: `Executes a move script against a freshly built board and prints every
move and the final board. Use - to read the script from stdin.

Script syntax:
  red up, left;    // slide red up, then left
  blue down;
  shuffle;         // re-roll robot positions

Examples:
  ricochet run moves.ric --seed 3
  echo "green right;" | ricochet run -`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Print only the final board")
}

func runScript(cmd *cobra.Command, args []string) error {
	name := args[0]
	var (
		src []byte
		err error
	)
	if name == "-" {
		name = "stdin"
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(name)
	}
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	prog, err := script.ParseNamed(name, string(src))
	if err != nil {
		return err
	}

	g, err := newGame(flagTileSet)
	if err != nil {
		return err
	}
	return execScript(cmd.OutOrStdout(), g, prog, flagQuiet)
}

// execScript runs prog on g and prints the moves and the resulting board.
func execScript(out io.Writer, g *game.Game, prog *script.Program, quiet bool) error {
	moved := 0
	sink := func(m world.Move) {
		if m.Moved() {
			moved++
		}
		if !quiet {
			fmt.Fprintln(out, m)
		}
	}
	if err := prog.Exec(g.World(), sink); err != nil {
		return err
	}

	text, err := g.Text()
	if err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, text)
	fmt.Fprintf(out, "%d steps, %d effective moves\n", prog.Steps(), moved)
	return nil
}
