// Package cli implements tttcli, an offline front end for the minimax engine.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/tictactoe-backend/internal/minimax"
)

type options struct {
	verbose bool
	logger  *slog.Logger
}

// Root - builds the tttcli command tree. Logs go to stderr, results to the command output.
func Root() *cobra.Command {
	opts := &options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "tttcli",
		Short: "Play and analyze tic-tac-toe positions with minimax",
		Long: heredoc.Doc(`
			tttcli runs the exhaustive minimax search on tic-tac-toe boards.

			Boards are written row by row, top to bottom, using X, O and "."
			for empty cells. Rows may be separated by "/", "|" or newlines:

			    XO./.X./..O
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log search statistics to stderr")

	root.AddCommand(Move(opts))
	root.AddCommand(Eval())
	root.AddCommand(SelfPlay(opts))

	return root
}

// Execute - runs tttcli with the process arguments.
func Execute() int {
	root := Root()
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		return 1
	}

	return 0
}

// resolveTurn - parses --turn, inferring it from the mark counts when empty.
func resolveTurn(board *minimax.Board, mark string) (minimax.Turn, error) {
	if mark == "" {
		if board.Count(minimax.X) > board.Count(minimax.O) {
			return minimax.OTurn, nil
		}
		return minimax.XTurn, nil
	}

	turn, err := entity.MarkToTurn(strings.ToUpper(mark))
	if err != nil {
		return minimax.XTurn, fmt.Errorf("bad --turn: %w", err)
	}

	return turn, nil
}

// printBoard - writes the board as three rows.
func printBoard(out io.Writer, board minimax.Board) {
	fmt.Fprintln(out, strings.ReplaceAll(board.String(), "/", "\n"))
}
