package rest

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/draughts-backend/internal/apperror"
	"github.com/rocketscienceinc/draughts-backend/internal/draughts"
	"github.com/rocketscienceinc/draughts-backend/internal/repository"
)

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type errorMapping struct {
	err    error
	status int
	code   string
}

// order matters: the first match wins.
var errorMappings = []errorMapping{
	{errBadRequest, http.StatusBadRequest, "BAD_REQUEST"},

	{apperror.ErrGameNotFound, http.StatusNotFound, "GAME_NOT_FOUND"},
	{apperror.ErrPlayerNotFound, http.StatusNotFound, "PLAYER_NOT_FOUND"},

	{apperror.ErrNotYourTurn, http.StatusConflict, "NOT_YOUR_TURN"},
	{apperror.ErrGameIsNotStarted, http.StatusConflict, "GAME_NOT_STARTED"},
	{apperror.ErrGameFinished, http.StatusConflict, "GAME_FINISHED"},
	{apperror.ErrGameIsFull, http.StatusConflict, "GAME_FULL"},
	{apperror.ErrNotInGame, http.StatusConflict, "NOT_IN_GAME"},
	{apperror.ErrAlreadyInGame, http.StatusConflict, "ALREADY_IN_GAME"},
	{repository.ErrUpdateConflict, http.StatusConflict, "UPDATE_CONFLICT"},

	{draughts.ErrBadFormat, http.StatusUnprocessableEntity, "BAD_FORMAT"},
	{draughts.ErrOutOfBoard, http.StatusUnprocessableEntity, "OUT_OF_BOARD"},
	{draughts.ErrEmptyOrigin, http.StatusUnprocessableEntity, "EMPTY_ORIGIN"},
	{draughts.ErrOppositePiece, http.StatusUnprocessableEntity, "OPPOSITE_PIECE"},
	{draughts.ErrNotEmptyTarget, http.StatusUnprocessableEntity, "NOT_EMPTY_TARGET"},
	{draughts.ErrNotDiagonal, http.StatusUnprocessableEntity, "NOT_DIAGONAL"},
	{draughts.ErrNotAdvanced, http.StatusUnprocessableEntity, "NOT_ADVANCED"},
	{draughts.ErrTooMuchAdvanced, http.StatusUnprocessableEntity, "TOO_MUCH_ADVANCED"},
	{draughts.ErrWithoutEating, http.StatusUnprocessableEntity, "WITHOUT_EATING"},
	{draughts.ErrColleagueEating, http.StatusUnprocessableEntity, "COLLEAGUE_EATING"},
	{draughts.ErrTooMuchEatings, http.StatusUnprocessableEntity, "TOO_MUCH_EATINGS"},
	{draughts.ErrTooMuchJumps, http.StatusUnprocessableEntity, "TOO_MUCH_JUMPS"},
}

// sendError - writes err as JSON with the status of its first known cause.
func (that *Server) sendError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.err) {
			status, code = mapping.status, mapping.code
			break
		}
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}

	that.sendJSON(w, status, errorResponse{Error: message, Code: code})
}
