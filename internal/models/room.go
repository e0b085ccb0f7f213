package models

// RoomState represents the lifecycle phase of a room
type RoomState string

const (
	// RoomStateLobby indicates players can still join and leave
	RoomStateLobby RoomState = "lobby"

	// RoomStateInGame indicates a game is in progress
	RoomStateInGame RoomState = "in_game"

	// RoomStateFinished indicates the game has concluded
	RoomStateFinished RoomState = "finished"
)

// MaxRoomPlayers is the hard capacity of a room
const MaxRoomPlayers = 8

// MinRoomPlayers is the minimum roster size needed to start a game
const MinRoomPlayers = 2

// Room is a lobby-to-game container keyed by a short human-readable code.
//
// Rooms move one way through lobby -> in_game -> finished. The roster is
// kept in join order. Capacity and duplicate-nickname policy are enforced
// by the room manager, not here.
type Room struct {
	// ID is the unique identifier for the room
	ID RoomID `json:"id"`

	// Code is the short human-readable join code (4-6 characters)
	Code string `json:"code"`

	// Players holds the roster in join order, at most MaxRoomPlayers
	Players []*Player `json:"players"`

	// State is the current lifecycle phase
	State RoomState `json:"state"`

	// Game is nil until the room enters in_game, and set from then on
	Game *GameState `json:"game,omitempty"`
}

// NewRoom creates an empty lobby-state room with the given code
func NewRoom(code string) *Room {
	return &Room{
		ID:      NewRoomID(),
		Code:    code,
		Players: []*Player{},
		State:   RoomStateLobby,
	}
}

// PlayerCount returns the current roster size
func (r *Room) PlayerCount() int {
	return len(r.Players)
}

// IsFull reports whether the room is at capacity
func (r *Room) IsFull() bool {
	return len(r.Players) >= MaxRoomPlayers
}

// CanStart reports whether the roster size allows starting a game
func (r *Room) CanStart() bool {
	return len(r.Players) >= MinRoomPlayers && len(r.Players) <= MaxRoomPlayers
}

// HasPlayerWithNickname reports whether any seated player uses nickname
func (r *Room) HasPlayerWithNickname(nickname string) bool {
	return r.FindPlayerByNickname(nickname) != nil
}

// FindPlayer returns the player with the given ID, or nil
func (r *Room) FindPlayer(id PlayerID) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindPlayerByNickname returns the player with the given nickname, or nil.
// Matching is case-sensitive.
func (r *Room) FindPlayerByNickname(nickname string) *Player {
	for _, p := range r.Players {
		if p.MatchesNickname(nickname) {
			return p
		}
	}
	return nil
}

// AddPlayer appends a player to the roster and returns its ID.
// The caller is responsible for capacity and nickname checks.
func (r *Room) AddPlayer(p *Player) PlayerID {
	r.Players = append(r.Players, p)
	return p.ID
}

// RemovePlayer removes the player with the given ID from the roster.
// Returns false if no such player was seated; calling twice is safe.
func (r *Room) RemovePlayer(id PlayerID) bool {
	for i, p := range r.Players {
		if p.ID == id {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

// StartGame transitions the room to in_game and installs the game state.
// The room must be in the lobby with a startable roster.
func (r *Room) StartGame(game *GameState) error {
	if r.State != RoomStateLobby {
		return ErrRoomNotInLobby
	}
	if !r.CanStart() {
		return ErrNotEnoughPlayers
	}

	r.State = RoomStateInGame
	r.Game = game
	return nil
}

// FinishGame transitions the room from in_game to finished
func (r *Room) FinishGame() error {
	if r.State != RoomStateInGame {
		return ErrRoomNotInGame
	}
	r.State = RoomStateFinished
	return nil
}
