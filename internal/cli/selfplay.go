package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-backend/internal/minimax"
)

func SelfPlay(opts *options) *cobra.Command {
	var (
		start string
		mark  string
	)

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the engine play both sides to the end",
		Long: heredoc.Doc(`
			selfplay alternates engine moves from the given board until the game
			is decided, printing every position. Perfect play from the empty
			board always ends in a draw.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := minimax.ParseBoard(start)
			if err != nil {
				return err
			}

			turn, err := resolveTurn(&board, mark)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printBoard(out, board)

			outcome := minimax.Evaluate(&board)
			for !minimax.IsGameOver(outcome) {
				analysis := minimax.Analyze(board, turn)
				opts.logger.Debug("search finished", "turn", turn.String(), "nodes", analysis.Nodes)

				board.Set(analysis.Move, turn.Mark())

				fmt.Fprintf(out, "\n%s plays row %d, column %d\n", turn, analysis.Move.Row, analysis.Move.Column)
				printBoard(out, board)

				turn = turn.Next()
				outcome = minimax.Evaluate(&board)
			}

			fmt.Fprintf(out, "\nresult: %s\n", outcome)

			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "board", "b", "...|...|...", "Starting board")
	cmd.Flags().StringVarP(&mark, "turn", "t", "", "Side to play first, X or O (inferred from the board by default)")

	return cmd
}
