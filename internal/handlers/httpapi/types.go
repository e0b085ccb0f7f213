package httpapi

type CreateRoomResponse struct {
	RoomID   string `json:"room_id"`
	RoomCode string `json:"room_code"`
}

type JoinRoomRequest struct {
	Nickname string `json:"nickname"`
	AvatarID uint8  `json:"avatar_id"`
}

type JoinRoomResponse struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
}

type RejoinRoomRequest struct {
	Nickname string `json:"nickname"`
}

type RejoinRoomResponse struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
}

type LeaveRoomRequest struct {
	PlayerID string `json:"player_id"`
}

type DisconnectPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

type SubmitActionRequest struct {
	PlayerID string `json:"player_id"`

	// OptionIndex is omitted for a timeout/skip submission
	OptionIndex *int `json:"option_index,omitempty"`
}

type SubmitVotesRequest struct {
	VoterID string `json:"voter_id"`

	// Votes maps target player id to a 0-5 star rating
	Votes map[string]int `json:"votes"`
}

type SubmitVotesResponse struct {
	Stage string `json:"stage"`
}

type AdvanceStageResponse struct {
	Stage string `json:"stage"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
