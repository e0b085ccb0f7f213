package room

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go bigpicture/internal/services/room Service

// Service defines the interface for room management operations
type Service interface {
	// CreateRoom allocates a fresh room with a unique join code
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom seats a new player in a lobby-state room by code
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// RejoinRoom reconnects an existing player resolved by nickname
	RejoinRoom(ctx context.Context, input *RejoinRoomInput) (*RejoinRoomOutput, error)

	// LeaveRoom removes a player from a room entirely
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)

	// DisconnectPlayer flags a player as disconnected without unseating them
	DisconnectPlayer(ctx context.Context, input *DisconnectPlayerInput) (*DisconnectPlayerOutput, error)

	// StartGame builds a fresh game state and moves the room in-game
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// AdvanceStage manually advances the game's stage
	AdvanceStage(ctx context.Context, input *AdvanceStageInput) (*AdvanceStageOutput, error)

	// SubmitAction records the active player's turn choice
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error)

	// SubmitVotes stores one player's ratings of the other players
	SubmitVotes(ctx context.Context, input *SubmitVotesInput) (*SubmitVotesOutput, error)

	// GetRoomState returns a copied snapshot of a room and its game
	GetRoomState(ctx context.Context, input *GetRoomStateInput) (*GetRoomStateOutput, error)
}
