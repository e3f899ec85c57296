package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-backend/internal/minimax"
)

func Move(opts *options) *cobra.Command {
	var mark string

	cmd := &cobra.Command{
		Use:   "move board",
		Short: "Print the best move for the side to play",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := minimax.ParseBoard(args[0])
			if err != nil {
				return err
			}

			turn, err := resolveTurn(&board, mark)
			if err != nil {
				return err
			}

			if outcome := minimax.Evaluate(&board); minimax.IsGameOver(outcome) {
				return fmt.Errorf("%w: %s", apperror.ErrGameFinished, outcome)
			}

			analysis := minimax.Analyze(board, turn)
			opts.logger.Debug("search finished", "turn", turn.String(), "nodes", analysis.Nodes)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "move: row %d, column %d (cell %d)\n", analysis.Move.Row, analysis.Move.Column, analysis.Move.Index())
			fmt.Fprintf(out, "outcome: %s\n", analysis.Score.Outcome)
			fmt.Fprintf(out, "rank: %d\n", analysis.Score.Rank)

			return nil
		},
	}

	cmd.Flags().StringVarP(&mark, "turn", "t", "", "Side to play, X or O (inferred from the board by default)")

	return cmd
}
