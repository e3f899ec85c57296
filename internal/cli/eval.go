package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-backend/internal/minimax"
)

func Eval() *cobra.Command {
	return &cobra.Command{
		Use:   "eval board",
		Short: "Print whether the board is won, drawn or still open",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := minimax.ParseBoard(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), minimax.Evaluate(&board))

			return nil
		},
	}
}
