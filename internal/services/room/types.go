package room

import (
	"bigpicture/internal/assets"
	"bigpicture/internal/common/clock"
	"bigpicture/internal/models"
)

// Config holds configuration for the room service
type Config struct {
	// MaxRounds is how many rounds each game runs (default 3)
	MaxRounds int

	// CodeLength is the length of generated join codes (default 6, must be 4-6)
	CodeLength int

	// AssetProvider supplies goals, starting objects and modifiers
	AssetProvider assets.Provider

	// Clock supplies the timestamps stamped on stage and turn changes
	Clock clock.Clock
}

type CreateRoomInput struct {
}

type CreateRoomOutput struct {
	RoomID models.RoomID
	Code   string
}

type JoinRoomInput struct {
	Code     string
	Nickname string
	AvatarID uint8
}

type JoinRoomOutput struct {
	RoomID   models.RoomID
	PlayerID models.PlayerID
}

type RejoinRoomInput struct {
	Code     string
	Nickname string
}

type RejoinRoomOutput struct {
	RoomID   models.RoomID
	PlayerID models.PlayerID
}

type LeaveRoomInput struct {
	RoomID   models.RoomID
	PlayerID models.PlayerID
}

type LeaveRoomOutput struct {
	Success bool
}

type DisconnectPlayerInput struct {
	RoomID   models.RoomID
	PlayerID models.PlayerID
}

type DisconnectPlayerOutput struct {
	Success bool
}

type StartGameInput struct {
	RoomID models.RoomID
}

type StartGameOutput struct {
	Success bool
}

type AdvanceStageInput struct {
	RoomID models.RoomID
}

type AdvanceStageOutput struct {
	Stage models.Stage
}

type SubmitActionInput struct {
	RoomID   models.RoomID
	PlayerID models.PlayerID

	// OptionIndex is nil for a timeout/skip submission
	OptionIndex *int
}

type SubmitActionOutput struct {
	Success bool
}

type SubmitVotesInput struct {
	RoomID  models.RoomID
	VoterID models.PlayerID
	Votes   map[models.PlayerID]int
}

type SubmitVotesOutput struct {
	Stage models.Stage
}

type GetRoomStateInput struct {
	RoomID models.RoomID
}

type GetRoomStateOutput struct {
	Room *RoomSnapshot
}

// RoomSnapshot is a copied view of a room, safe to hand across the
// service boundary while the registry keeps mutating.
type RoomSnapshot struct {
	RoomID      models.RoomID    `json:"room_id"`
	Code        string           `json:"room_code"`
	State       models.RoomState `json:"state"`
	PlayerCount int              `json:"player_count"`
	Players     []models.Player  `json:"players"`
	Game        *GameSnapshot    `json:"game,omitempty"`
}

// GameSnapshot is the in-game portion of a room snapshot. Scores are
// recomputed on every read; time remaining is the poller's business,
// derived from the start timestamps.
type GameSnapshot struct {
	Stage            models.Stage                   `json:"stage"`
	GoalText         string                         `json:"goal_text"`
	GoalImage        models.ImageID                 `json:"goal_image"`
	StartingImage    models.ImageID                 `json:"starting_image"`
	CurrentImage     models.ImageID                 `json:"current_image"`
	StartingObjects  map[models.PlayerID]string     `json:"starting_objects"`
	CurrentObjects   map[models.PlayerID]string     `json:"current_objects"`
	PlayersInOrder   []models.PlayerID              `json:"players_in_order"`
	CurrentTurnIndex int                            `json:"current_turn_index"`
	CurrentPlayerID  *models.PlayerID               `json:"current_player_id,omitempty"`
	CurrentOptions   []string                       `json:"current_options"`
	CurrentRound     int                            `json:"current_round"`
	MaxRounds        int                            `json:"max_rounds"`
	TurnStartTime    int64                          `json:"turn_start_time"`
	StageStartTime   int64                          `json:"stage_start_time"`
	PlayersVoted     []models.PlayerID              `json:"players_voted"`
	Scores           map[models.PlayerID]float64    `json:"scores"`
}
