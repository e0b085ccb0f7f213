package room

// RoomError is a custom error type for room management errors
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound     RoomError = "room not found"
	ErrPlayerNotFound   RoomError = "player not found"
	ErrRoomFull         RoomError = "room is full"
	ErrGameInProgress   RoomError = "game already in progress"
	ErrGameNotStarted   RoomError = "game has not started"
	ErrNotEnoughPlayers RoomError = "not enough players to start"
	ErrNicknameTaken    RoomError = "nickname already taken in this room"
	ErrInvalidNickname  RoomError = "invalid nickname"
	ErrInvalidAvatar    RoomError = "avatar id out of range"
	ErrNilConfig        RoomError = "config cannot be nil"
	ErrNilAssetProvider RoomError = "asset provider cannot be nil"
	ErrNilClock         RoomError = "clock cannot be nil"
)
