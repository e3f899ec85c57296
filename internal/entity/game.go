package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-backend/internal/minimax"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	PrivateType = "private"
	WithBotType = "bot"
)

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrUnknownGameType   = errors.New("unknown game type")
)

type Game struct {
	ID      string    `json:"id"`
	Board   [9]string `json:"board"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Turn    string    `json:"player_turn"`
	Players []*Player `json:"players,omitempty"`
	Type    string    `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:   PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

func ValidateGameType(gameType string) error {
	switch gameType {
	case PrivateType, WithBotType:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGameType, gameType)
	}
}

// MinimaxBoard - converts the stored board to the engine representation.
func (that *Game) MinimaxBoard() minimax.Board {
	var board minimax.Board

	for i, cell := range that.Board {
		board.Set(minimax.LocationFromIndex(i), MarkToCell(cell))
	}

	return board
}

// Outcome - classifies the current board.
func (that *Game) Outcome() minimax.Outcome {
	board := that.MinimaxBoard()

	return minimax.Evaluate(&board)
}

// DetermineGameResult - returns the winning mark, PlayerTie, or "" while the game goes on.
func (that *Game) DetermineGameResult() string {
	switch that.Outcome() {
	case minimax.XWin:
		return PlayerX
	case minimax.OWin:
		return PlayerO
	case minimax.Draw:
		return PlayerTie
	default:
		return ""
	}
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, cell int) error {
	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.Turn = ToggleMark(playerMark)

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// BotPlayer - returns the bot seated in the game, if any.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func MarkToCell(mark string) minimax.Cell {
	switch mark {
	case PlayerX:
		return minimax.X
	case PlayerO:
		return minimax.O
	default:
		return minimax.Empty
	}
}

// MarkToTurn - maps a player mark to the engine's turn.
func MarkToTurn(mark string) (minimax.Turn, error) {
	switch mark {
	case PlayerX:
		return minimax.XTurn, nil
	case PlayerO:
		return minimax.OTurn, nil
	default:
		return minimax.XTurn, fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}
}
