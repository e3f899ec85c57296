package rest

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/tictactoe-backend/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-backend/internal/service"
)

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

// statusCode - maps domain errors to HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, minimax.ErrInvalidBoard),
		errors.Is(err, entity.ErrInvalidCell),
		errors.Is(err, entity.ErrInvalidMark),
		errors.Is(err, entity.ErrUnknownGameType):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrGameIsFull),
		errors.Is(err, apperror.ErrGameAlreadyExists),
		errors.Is(err, service.ErrPlayerNotInGame),
		errors.Is(err, service.ErrNoAvailableMoves):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage - hides internal details behind a generic message.
func errorMessage(err error, code int) string {
	if code == http.StatusInternalServerError {
		return http.StatusText(code)
	}
	return err.Error()
}
