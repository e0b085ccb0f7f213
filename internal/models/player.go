package models

// Player represents a participant in a room
type Player struct {
	// ID is the unique identifier for this player
	ID PlayerID `json:"id"`

	// Nickname is the display name, also used for rejoin matching
	Nickname string `json:"nickname"`

	// AvatarID is the player's chosen avatar
	AvatarID AvatarID `json:"avatar_id"`

	// Connected reports whether the player currently has an active session
	Connected bool `json:"connected"`
}

// NewPlayer creates a connected player with a fresh ID
func NewPlayer(nickname string, avatar AvatarID) *Player {
	return &Player{
		ID:        NewPlayerID(),
		Nickname:  nickname,
		AvatarID:  avatar,
		Connected: true,
	}
}

// Disconnect marks the player as disconnected
func (p *Player) Disconnect() {
	p.Connected = false
}

// Reconnect marks the player as connected again
func (p *Player) Reconnect() {
	p.Connected = true
}

// MatchesNickname reports whether nickname identifies this player.
// Matching is case-sensitive.
func (p *Player) MatchesNickname(nickname string) bool {
	return p.Nickname == nickname
}
