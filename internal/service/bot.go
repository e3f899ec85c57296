package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/tictactoe-backend/internal/minimax"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

// openingMove is where the bot opens an empty board when searching is skipped.
// The full search picks the same cell, since every opening draws and ties
// go to the first empty cell.
var openingMove = minimax.Location{Row: 0, Column: 0}

type BotService interface {
	MakeTurn(game *entity.Game) error
	Analyze(board minimax.Board, turn minimax.Turn) (minimax.Analysis, error)
}

type botService struct {
	logger *slog.Logger

	firstMoveShortcut bool
}

func NewBotService(logger *slog.Logger, firstMoveShortcut bool) BotService {
	return &botService{
		logger:            logger.With("component", "bot"),
		firstMoveShortcut: firstMoveShortcut,
	}
}

// MakeTurn - plays the bot's mark at the minimax choice for the current board.
func (that *botService) MakeTurn(game *entity.Game) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	if game.Turn != botPlayer.Mark {
		return apperror.ErrNotYourTurn
	}

	turn, err := entity.MarkToTurn(botPlayer.Mark)
	if err != nil {
		return fmt.Errorf("bot has no valid mark: %w", err)
	}

	analysis, err := that.Analyze(game.MinimaxBoard(), turn)
	if err != nil {
		return err
	}

	if err = game.MakeTurn(botPlayer.Mark, analysis.Move.Index()); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn",
		"mark", botPlayer.Mark,
		"row", analysis.Move.Row,
		"column", analysis.Move.Column,
		"outcome", analysis.Score.Outcome.String(),
		"rank", analysis.Score.Rank,
		"nodes", analysis.Nodes,
	)

	return nil
}

// Analyze - runs the search unless the board is already decided.
func (that *botService) Analyze(board minimax.Board, turn minimax.Turn) (minimax.Analysis, error) {
	if minimax.IsGameOver(minimax.Evaluate(&board)) {
		return minimax.Analysis{Move: minimax.NoLocation}, ErrNoAvailableMoves
	}

	if that.firstMoveShortcut && board == (minimax.Board{}) {
		return minimax.Analysis{
			Move:  openingMove,
			Score: minimax.Score{Outcome: minimax.Draw},
		}, nil
	}

	return minimax.Analyze(board, turn), nil
}
