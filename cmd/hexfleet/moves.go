package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexfleet/internal/platform/tui"
	"github.com/vovakirdan/hexfleet/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
	flagLimit  int
)

var movesCmd = &cobra.Command{
	Use:   "moves [session]",
	Short: "Show the move log",
	Long: `Without a session, list recent sessions. With one, print its moves.

Examples:
  hexfleet moves
  hexfleet moves local-1718000000
  hexfleet moves local-1718000000 --clear
  hexfleet moves --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMoves,
}

func init() {
	movesCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse sessions interactively")
	movesCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the session's moves")
	movesCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to list")
}

func runMoves(_ *cobra.Command, args []string) {
	sessionID := ""
	if len(args) > 0 {
		sessionID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail(fmt.Errorf("opening move log: %w", err))
	}
	defer store.Close()

	switch {
	case flagBrowse:
		width, height := terminalSize()
		err = tui.RunMoves(store, sessionID, width, height)
	case flagClear:
		if sessionID == "" {
			err = fmt.Errorf("--clear needs a session")
			break
		}
		err = store.ClearSession(sessionID)
		if err == nil {
			logger.Info("cleared session", "session", sessionID)
		}
	case sessionID == "":
		err = writeSessions(os.Stdout, store, flagLimit)
	default:
		err = writeMoves(os.Stdout, store, sessionID)
	}

	if err != nil {
		store.Close()
		fail(err)
	}
}

func writeSessions(w io.Writer, store *storage.Store, limit int) error {
	sessions, err := store.Sessions(limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "%-32s  %-10s  %5s  %s\n", "Session", "Scenario", "Moves", "Last move")
	fmt.Fprintf(w, "%-32s  %-10s  %5s  %s\n", "-------", "--------", "-----", "---------")
	for _, s := range sessions {
		fmt.Fprintf(w, "%-32s  %-10s  %5d  %s\n", s.SessionID, s.Scenario, s.Moves, s.LastMove.Format("Jan 02 15:04"))
	}
	return nil
}

func writeMoves(w io.Writer, store *storage.Store, sessionID string) error {
	moves, err := store.Moves(sessionID)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return fmt.Errorf("no moves recorded for session %q", sessionID)
	}

	fmt.Fprintf(w, "Moves - %s\n", sessionID)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%4s  %-14s  %-10s  %-4s  %-4s  %s\n", "#", "Ship", "Action", "From", "To", "Facing")
	for i, m := range moves {
		fmt.Fprintf(w, "%4d  %-14s  %-10s  %-4s  %-4s  %s\n",
			i+1, m.Ship, m.Action, m.From.Label(), m.To.Label(), m.Facing)
	}
	return nil
}
