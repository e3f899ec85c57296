package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/tictactoe-backend/internal/minimax"
)

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)

	SuggestMove(board, mark string) (minimax.Analysis, error)
}

type playerRequest struct {
	PlayerID string `json:"player_id"`
}

type gameRequest struct {
	PlayerID string `json:"player_id"`
	Type     string `json:"type"`
}

type turnRequest struct {
	PlayerID string `json:"player_id"`
	Cell     *int   `json:"cell"`
}

type moveRequest struct {
	Board string `json:"board"`
	Turn  string `json:"turn"`
}

type moveResponse struct {
	Row     int    `json:"row"`
	Column  int    `json:"column"`
	Cell    int    `json:"cell"`
	Outcome string `json:"outcome"`
	Rank    int    `json:"rank"`
	Nodes   int    `json:"nodes"`
}

type GameHandler struct {
	logger *slog.Logger

	gameUseCase gameUseCase
}

func NewGameHandler(logger *slog.Logger, useCase gameUseCase) *GameHandler {
	return &GameHandler{
		logger:      logger.With("component", "rest"),
		gameUseCase: useCase,
	}
}

// CreatePlayer - returns the player for player_id, or a new one when it is empty.
func (that *GameHandler) CreatePlayer(ctx echo.Context) error {
	var request playerRequest
	if err := that.bind(ctx, &request); err != nil {
		return that.fail(ctx, "CreatePlayer", err)
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx.Request().Context(), request.PlayerID)
	if err != nil {
		return that.fail(ctx, "CreatePlayer", err)
	}

	return ctx.JSON(http.StatusOK, player)
}

func (that *GameHandler) GetOrCreateGame(ctx echo.Context) error {
	var request gameRequest
	if err := that.bind(ctx, &request); err != nil {
		return that.fail(ctx, "GetOrCreateGame", err)
	}

	if request.PlayerID == "" {
		return that.fail(ctx, "GetOrCreateGame", fmt.Errorf("%w: player_id is required", errBadRequest))
	}

	game, err := that.gameUseCase.GetOrCreateGame(ctx.Request().Context(), request.PlayerID, request.Type)
	if err != nil {
		return that.fail(ctx, "GetOrCreateGame", err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *GameHandler) GetGame(ctx echo.Context) error {
	game, err := that.gameUseCase.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, "GetGame", err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *GameHandler) JoinGame(ctx echo.Context) error {
	var request playerRequest
	if err := that.bind(ctx, &request); err != nil {
		return that.fail(ctx, "JoinGame", err)
	}

	if request.PlayerID == "" {
		return that.fail(ctx, "JoinGame", fmt.Errorf("%w: player_id is required", errBadRequest))
	}

	game, err := that.gameUseCase.JoinGame(ctx.Request().Context(), ctx.Param("id"), request.PlayerID)
	if err != nil {
		return that.fail(ctx, "JoinGame", err)
	}

	return ctx.JSON(http.StatusOK, game)
}

// MakeTurn - a turn that finishes the game still answers 200 with the final board.
func (that *GameHandler) MakeTurn(ctx echo.Context) error {
	var request turnRequest
	if err := that.bind(ctx, &request); err != nil {
		return that.fail(ctx, "MakeTurn", err)
	}

	if request.PlayerID == "" || request.Cell == nil {
		return that.fail(ctx, "MakeTurn", fmt.Errorf("%w: player_id and cell are required", errBadRequest))
	}

	game, err := that.gameUseCase.MakeTurn(ctx.Request().Context(), request.PlayerID, *request.Cell)
	if err != nil && !(errors.Is(err, apperror.ErrGameFinished) && game != nil) {
		return that.fail(ctx, "MakeTurn", err)
	}

	return ctx.JSON(http.StatusOK, game)
}

// SuggestMove - runs the full minimax search on a board in text form. The bot's
// opening shortcut is not used here, so nodes is always the real count.
func (that *GameHandler) SuggestMove(ctx echo.Context) error {
	var request moveRequest
	if err := that.bind(ctx, &request); err != nil {
		return that.fail(ctx, "SuggestMove", err)
	}

	analysis, err := that.gameUseCase.SuggestMove(request.Board, request.Turn)
	if err != nil {
		return that.fail(ctx, "SuggestMove", err)
	}

	return ctx.JSON(http.StatusOK, moveResponse{
		Row:     analysis.Move.Row,
		Column:  analysis.Move.Column,
		Cell:    analysis.Move.Index(),
		Outcome: analysis.Score.Outcome.String(),
		Rank:    analysis.Score.Rank,
		Nodes:   analysis.Nodes,
	})
}

func (that *GameHandler) bind(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func (that *GameHandler) fail(ctx echo.Context, method string, err error) error {
	code := statusCode(err)

	log := that.logger.With("method", method)
	if code == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Debug("request rejected", "status", code, "error", err)
	}

	return ctx.JSON(code, errorResponse{Error: errorMessage(err, code)})
}
