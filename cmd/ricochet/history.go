package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ricochet/internal/platform/tui"
	"github.com/vovakirdan/tui-ricochet/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Show played sessions",
	Long: `Without arguments lists the most recent sessions and overall stats.
With a session ID prints the moves played on that board.

Examples:
  ricochet history
  ricochet history 1b4e28ba
  ricochet history --browse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of sessions to list")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse sessions interactively")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagBrowse {
		return tui.RunHistory(store)
	}

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		return printSession(out, store, args[0])
	}
	return printSessions(out, store, flagLimit)
}

func printSessions(out io.Writer, store *storage.Store, limit int) error {
	sessions, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'ricochet play' to start one!")
		return nil
	}

	fmt.Fprintf(out, "  %-36s  %-10s  %-7s  %-20s  %s\n", "Session", "Tile set", "Size", "Seed", "Date")
	fmt.Fprintf(out, "  %-36s  %-10s  %-7s  %-20s  %s\n", "-------", "--------", "----", "----", "----")
	for _, s := range sessions {
		fmt.Fprintf(out, "  %-36s  %-10s  %-7s  %-20d  %s\n",
			s.ID, s.TileSetID, s.Dim.String(), s.Seed, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.SessionStats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d sessions, %d moves (%.1f per session)\n", stats.Sessions, stats.Moves, stats.AvgMoves)
	return nil
}

func printSession(out io.Writer, store *storage.Store, id string) error {
	sess, err := store.SessionByID(id)
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("no session %q", id)
	}

	moves, err := store.SessionMoves(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Session %s\n", sess.ID)
	fmt.Fprintf(out, "  tile set %s, %v board, seed %d, %s\n",
		sess.TileSetID, sess.Dim, sess.Seed, sess.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(out)
	if len(moves) == 0 {
		fmt.Fprintln(out, "No moves recorded.")
		return nil
	}
	for _, m := range moves {
		fmt.Fprintf(out, "  %3d  %s\n", m.Seq, m)
	}
	return nil
}
