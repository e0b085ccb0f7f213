package models

import (
	"fmt"

	"github.com/google/uuid"
)

// RoomID is the unique identifier for a game room
type RoomID string

// NewRoomID returns a new random RoomID
func NewRoomID() RoomID {
	return RoomID(uuid.New().String())
}

// ParseRoomID validates a string as a RoomID
func ParseRoomID(s string) (RoomID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid room id %q: %w", s, err)
	}
	return RoomID(s), nil
}

func (id RoomID) String() string {
	return string(id)
}

// PlayerID is the unique identifier for a player
type PlayerID string

// NewPlayerID returns a new random PlayerID
func NewPlayerID() PlayerID {
	return PlayerID(uuid.New().String())
}

// ParsePlayerID validates a string as a PlayerID
func ParsePlayerID(s string) (PlayerID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid player id %q: %w", s, err)
	}
	return PlayerID(s), nil
}

func (id PlayerID) String() string {
	return string(id)
}

// MaxAvatars is the number of avatars in the initial set
const MaxAvatars = 10

// AvatarID identifies one of the built-in avatars (0-9)
type AvatarID uint8

// NewAvatarID validates v as an avatar identifier
func NewAvatarID(v uint8) (AvatarID, error) {
	if v >= MaxAvatars {
		return 0, fmt.Errorf("avatar id must be 0-%d, got %d", MaxAvatars-1, v)
	}
	return AvatarID(v), nil
}

func (id AvatarID) String() string {
	return fmt.Sprintf("Avatar%d", uint8(id))
}

// ImageID is an opaque handle to a generated image. The server only
// stores and forwards these, it never inspects the content.
type ImageID string

// NewImageID mints a fresh image handle
func NewImageID() ImageID {
	return ImageID("img_" + uuid.New().String())
}

func (id ImageID) String() string {
	return string(id)
}

// OptionCount is the number of modification options offered each turn
const OptionCount = 4

// OptionID identifies one of the four modification options (0-3)
type OptionID uint8

// NewOptionID validates v as an option identifier
func NewOptionID(v uint8) (OptionID, error) {
	if v >= OptionCount {
		return 0, fmt.Errorf("option id must be 0-%d, got %d", OptionCount-1, v)
	}
	return OptionID(v), nil
}

func (id OptionID) String() string {
	return fmt.Sprintf("Option%d", uint8(id))
}
