package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ricochet/internal/platform/tui"
	"github.com/vovakirdan/tui-ricochet/internal/render"
)

var flagNoHistory bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start playing on a freshly built board.

Controls:
  1-4 / Tab     - Select robot
  Arrows / hjkl - Slide the selected robot
  R             - Re-roll robot positions
  N             - New board
  ?             - Toggle help
  Q / Ctrl+C    - Quit

Every move is recorded to the history database.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record the session")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal, use 'ricochet run' for scripts")
	}

	g, err := newGame(flagTileSet)
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		bw, bh := render.Size(g.Dim())
		if w < bw || h < bh+2 {
			app.logger.Warn("terminal smaller than the board", "terminal_w", w, "terminal_h", h, "board_w", bw, "board_h", bh)
		}
	}

	var rec tui.MoveRecorder
	if !flagNoHistory {
		store, storeErr := openStore()
		if storeErr != nil {
			app.logger.Warn("playing without history", "error", storeErr)
		} else {
			defer store.Close()
			rec = store
		}
	}

	return tui.Run(g, rec, app.logger)
}
