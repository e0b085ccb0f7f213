package httpapi

import (
	"errors"
	"net/http"

	"bigpicture/internal/models"
	"bigpicture/internal/services/room"
)

// HandlerError is a custom error type for handler construction errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      HandlerError = "config cannot be nil"
	ErrNilRoomService HandlerError = "room service cannot be nil"
)

// statusForError maps the domain error taxonomy onto HTTP statuses:
// not-found -> 404, capacity/state conflicts -> 409, validation -> 400,
// anything unrecognized -> 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound),
		errors.Is(err, room.ErrPlayerNotFound),
		errors.Is(err, models.ErrVoterNotInGame):
		return http.StatusNotFound

	case errors.Is(err, room.ErrRoomFull),
		errors.Is(err, room.ErrGameInProgress),
		errors.Is(err, room.ErrGameNotStarted),
		errors.Is(err, room.ErrNotEnoughPlayers),
		errors.Is(err, room.ErrNicknameTaken),
		errors.Is(err, models.ErrWrongStage),
		errors.Is(err, models.ErrNotYourTurn):
		return http.StatusConflict

	case errors.Is(err, room.ErrInvalidNickname),
		errors.Is(err, room.ErrInvalidAvatar),
		errors.Is(err, models.ErrInvalidOption),
		errors.Is(err, models.ErrSelfVote),
		errors.Is(err, models.ErrStarsOutOfRange):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal error")
	}
	h.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}
