package models

import "errors"

// State machine errors. These are returned instead of panicking so that
// precondition violations stay recoverable in every build configuration.
var (
	ErrRoomNotInLobby   = errors.New("room is not in lobby state")
	ErrRoomNotInGame    = errors.New("room is not in game")
	ErrNotEnoughPlayers = errors.New("need 2-8 players to start")
	ErrWrongStage       = errors.New("operation not valid in current stage")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrVoterNotInGame   = errors.New("voter is not part of this game")
	ErrInvalidOption    = errors.New("option index out of range")
	ErrSelfVote         = errors.New("players cannot vote for themselves")
	ErrStarsOutOfRange  = errors.New("star rating must be 0-5")
)
