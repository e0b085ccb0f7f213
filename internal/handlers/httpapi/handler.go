package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"bigpicture/internal/models"
	"bigpicture/internal/services/room"
)

// Config holds the handler's dependencies
type Config struct {
	RoomService room.Service
	Logger      zerolog.Logger
}

// Handler exposes the room service over a polling REST surface
type Handler struct {
	rooms  room.Service
	logger zerolog.Logger
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomService == nil {
		return nil, ErrNilRoomService
	}

	return &Handler{
		rooms:  cfg.RoomService,
		logger: cfg.Logger,
	}, nil
}

// CreateRoom handles POST /rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	out, err := h.rooms.CreateRoom(r.Context(), &room.CreateRoomInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.Info().
		Str("room_id", out.RoomID.String()).
		Str("code", out.Code).
		Msg("room created")

	h.writeJSON(w, http.StatusCreated, CreateRoomResponse{
		RoomID:   out.RoomID.String(),
		RoomCode: out.Code,
	})
}

// JoinRoom handles POST /rooms/{code}/join
func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}

	out, err := h.rooms.JoinRoom(r.Context(), &room.JoinRoomInput{
		Code:     code,
		Nickname: req.Nickname,
		AvatarID: req.AvatarID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.Info().
		Str("room_id", out.RoomID.String()).
		Str("player_id", out.PlayerID.String()).
		Str("nickname", req.Nickname).
		Msg("player joined")

	h.writeJSON(w, http.StatusOK, JoinRoomResponse{
		RoomID:   out.RoomID.String(),
		PlayerID: out.PlayerID.String(),
	})
}

// RejoinRoom handles POST /rooms/{code}/rejoin
func (h *Handler) RejoinRoom(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req RejoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}

	out, err := h.rooms.RejoinRoom(r.Context(), &room.RejoinRoomInput{
		Code:     code,
		Nickname: req.Nickname,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, RejoinRoomResponse{
		RoomID:   out.RoomID.String(),
		PlayerID: out.PlayerID.String(),
	})
}

// LeaveRoom handles POST /rooms/{roomID}/leave
func (h *Handler) LeaveRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := h.roomID(w, r)
	if !ok {
		return
	}

	var req LeaveRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}
	playerID, err := models.ParsePlayerID(req.PlayerID)
	if err != nil {
		h.writeBadRequest(w, "invalid player id")
		return
	}

	if _, err := h.rooms.LeaveRoom(r.Context(), &room.LeaveRoomInput{
		RoomID:   roomID,
		PlayerID: playerID,
	}); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DisconnectPlayer handles POST /rooms/{roomID}/disconnect
func (h *Handler) DisconnectPlayer(w http.ResponseWriter, r *http.Request) {
	roomID, ok := h.roomID(w, r)
	if !ok {
		return
	}

	var req DisconnectPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}
	playerID, err := models.ParsePlayerID(req.PlayerID)
	if err != nil {
		h.writeBadRequest(w, "invalid player id")
		return
	}

	if _, err := h.rooms.DisconnectPlayer(r.Context(), &room.DisconnectPlayerInput{
		RoomID:   roomID,
		PlayerID: playerID,
	}); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// StartGame handles POST /rooms/{roomID}/start
func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	roomID, ok := h.roomID(w, r)
	if !ok {
		return
	}

	if _, err := h.rooms.StartGame(r.Context(), &room.StartGameInput{
		RoomID: roomID,
	}); err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.Info().Str("room_id", roomID.String()).Msg("game started")

	w.WriteHeader(http.StatusOK)
}

// AdvanceStage handles POST /rooms/{roomID}/advance
func (h *Handler) AdvanceStage(w http.ResponseWriter, r *http.Request) {
	roomID, ok := h.roomID(w, r)
	if !ok {
		return
	}

	out, err := h.rooms.AdvanceStage(r.Context(), &room.AdvanceStageInput{
		RoomID: roomID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, AdvanceStageResponse{
		Stage: string(out.Stage),
	})
}

// SubmitAction handles POST /rooms/{roomID}/action
func (h *Handler) SubmitAction(w http.ResponseWriter, r *http.Request) {
	roomID, ok := h.roomID(w, r)
	if !ok {
		return
	}

	var req SubmitActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}
	playerID, err := models.ParsePlayerID(req.PlayerID)
	if err != nil {
		h.writeBadRequest(w, "invalid player id")
		return
	}

	if _, err := h.rooms.SubmitAction(r.Context(), &room.SubmitActionInput{
		RoomID:      roomID,
		PlayerID:    playerID,
		OptionIndex: req.OptionIndex,
	}); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// SubmitVotes handles POST /rooms/{roomID}/votes
func (h *Handler) SubmitVotes(w http.ResponseWriter, r *http.Request) {
	roomID, ok := h.roomID(w, r)
	if !ok {
		return
	}

	var req SubmitVotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}
	voterID, err := models.ParsePlayerID(req.VoterID)
	if err != nil {
		h.writeBadRequest(w, "invalid voter id")
		return
	}

	votes := make(map[models.PlayerID]int, len(req.Votes))
	for target, stars := range req.Votes {
		targetID, err := models.ParsePlayerID(target)
		if err != nil {
			h.writeBadRequest(w, "invalid vote target id")
			return
		}
		votes[targetID] = stars
	}

	out, err := h.rooms.SubmitVotes(r.Context(), &room.SubmitVotesInput{
		RoomID:  roomID,
		VoterID: voterID,
		Votes:   votes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, SubmitVotesResponse{
		Stage: string(out.Stage),
	})
}

// GetRoomState handles GET /rooms/{roomID}
func (h *Handler) GetRoomState(w http.ResponseWriter, r *http.Request) {
	roomID, ok := h.roomID(w, r)
	if !ok {
		return
	}

	out, err := h.rooms.GetRoomState(r.Context(), &room.GetRoomStateInput{
		RoomID: roomID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out.Room)
}

// roomID parses the {roomID} path parameter, answering 400 on garbage
func (h *Handler) roomID(w http.ResponseWriter, r *http.Request) (models.RoomID, bool) {
	id, err := models.ParseRoomID(chi.URLParam(r, "roomID"))
	if err != nil {
		h.writeBadRequest(w, "invalid room id")
		return "", false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}
