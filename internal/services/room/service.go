package room

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"sync"

	"bigpicture/internal/assets"
	"bigpicture/internal/common/clock"
	"bigpicture/internal/models"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// service implements the Service interface.
//
// The registry is a single in-process map guarded by one RWMutex: every
// mutating operation takes the write lock, polls share the read lock.
// Nothing blocks on I/O while a lock is held; the asset provider is an
// in-process call.
type service struct {
	config        *Config
	assetProvider assets.Provider
	clock         clock.Clock

	mu    sync.RWMutex
	rooms map[models.RoomID]*models.Room
	codes map[string]models.RoomID
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.AssetProvider == nil {
		return nil, ErrNilAssetProvider
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = 3
	}
	codeLength := cfg.CodeLength
	if codeLength < 4 || codeLength > 6 {
		codeLength = 6
	}

	return &service{
		config: &Config{
			MaxRounds:     maxRounds,
			CodeLength:    codeLength,
			AssetProvider: cfg.AssetProvider,
			Clock:         cfg.Clock,
		},
		assetProvider: cfg.AssetProvider,
		clock:         cfg.Clock,
		rooms:         make(map[models.RoomID]*models.Room),
		codes:         make(map[string]models.RoomID),
	}, nil
}

// CreateRoom allocates a fresh room under a join code no live room uses
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var code string
	for {
		c, err := generateCode(s.config.CodeLength)
		if err != nil {
			return nil, err
		}
		if _, taken := s.codes[c]; !taken {
			code = c
			break
		}
	}

	r := models.NewRoom(code)
	s.rooms[r.ID] = r
	s.codes[code] = r.ID

	return &CreateRoomOutput{
		RoomID: r.ID,
		Code:   code,
	}, nil
}

// JoinRoom seats a new player in the lobby identified by code
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		return nil, ErrInvalidNickname
	}

	avatar, err := models.NewAvatarID(input.AvatarID)
	if err != nil {
		return nil, ErrInvalidAvatar
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.roomByCode(input.Code)
	if !ok {
		return nil, ErrRoomNotFound
	}

	if r.State != models.RoomStateLobby {
		return nil, ErrGameInProgress
	}
	if r.IsFull() {
		return nil, ErrRoomFull
	}
	if r.HasPlayerWithNickname(nickname) {
		return nil, ErrNicknameTaken
	}

	player := models.NewPlayer(nickname, avatar)
	playerID := r.AddPlayer(player)

	return &JoinRoomOutput{
		RoomID:   r.ID,
		PlayerID: playerID,
	}, nil
}

// RejoinRoom reconnects the seated player with the given nickname.
// It never creates a new player; the match is case-sensitive.
func (s *service) RejoinRoom(ctx context.Context, input *RejoinRoomInput) (*RejoinRoomOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.roomByCode(input.Code)
	if !ok {
		return nil, ErrRoomNotFound
	}

	player := r.FindPlayerByNickname(input.Nickname)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	player.Reconnect()

	return &RejoinRoomOutput{
		RoomID:   r.ID,
		PlayerID: player.ID,
	}, nil
}

// LeaveRoom removes the player entirely. If a game is running their slot
// in the turn order is deliberately left alone; the advance operation is
// how a stranded turn gets skipped.
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[input.RoomID]
	if !ok {
		return nil, ErrRoomNotFound
	}

	if !r.RemovePlayer(input.PlayerID) {
		return nil, ErrPlayerNotFound
	}

	return &LeaveRoomOutput{Success: true}, nil
}

// DisconnectPlayer marks a player as disconnected while keeping their seat
func (s *service) DisconnectPlayer(ctx context.Context, input *DisconnectPlayerInput) (*DisconnectPlayerOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[input.RoomID]
	if !ok {
		return nil, ErrRoomNotFound
	}

	player := r.FindPlayer(input.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	player.Disconnect()

	return &DisconnectPlayerOutput{Success: true}, nil
}

// StartGame validates the roster, asks the asset provider for a communal
// goal and one starting object per player, and installs the game state.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[input.RoomID]
	if !ok {
		return nil, ErrRoomNotFound
	}

	if r.State != models.RoomStateLobby {
		return nil, ErrGameInProgress
	}
	if !r.CanStart() {
		return nil, ErrNotEnoughPlayers
	}

	order := make([]models.PlayerID, 0, len(r.Players))
	for _, p := range r.Players {
		order = append(order, p.ID)
	}

	goalText, startingObjects := s.assetProvider.GenerateGameAssets(len(order))

	game := models.NewGameState(
		models.NewImageID(),
		goalText,
		models.NewImageID(),
		order,
		startingObjects,
		s.config.MaxRounds,
		s.clock.Now(),
	)

	if err := r.StartGame(game); err != nil {
		return nil, err
	}

	return &StartGameOutput{Success: true}, nil
}

// AdvanceStage moves the game to its next stage on an external trigger
func (s *service) AdvanceStage(ctx context.Context, input *AdvanceStageInput) (*AdvanceStageOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[input.RoomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if r.Game == nil {
		return nil, ErrGameNotStarted
	}

	r.Game.NextStage(s.assetProvider, s.clock.Now())
	s.settleRoom(r)

	return &AdvanceStageOutput{Stage: r.Game.Stage}, nil
}

// SubmitAction records the active player's choice (or skip) and advances
// the turn
func (s *service) SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[input.RoomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if r.Game == nil {
		return nil, ErrGameNotStarted
	}

	var option *models.OptionID
	if input.OptionIndex != nil {
		idx := *input.OptionIndex
		if idx < 0 || idx >= models.OptionCount {
			return nil, models.ErrInvalidOption
		}
		opt := models.OptionID(idx)
		option = &opt
	}

	if err := r.Game.SubmitAction(input.PlayerID, option, s.assetProvider, s.clock.Now()); err != nil {
		return nil, err
	}

	return &SubmitActionOutput{Success: true}, nil
}

// SubmitVotes stores one voter's full ballot and finishes the room once
// voting auto-advances to results
func (s *service) SubmitVotes(ctx context.Context, input *SubmitVotesInput) (*SubmitVotesOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[input.RoomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if r.Game == nil {
		return nil, ErrGameNotStarted
	}

	if err := r.Game.SubmitVotes(input.VoterID, input.Votes, s.clock.Now()); err != nil {
		return nil, err
	}
	s.settleRoom(r)

	return &SubmitVotesOutput{Stage: r.Game.Stage}, nil
}

// GetRoomState returns a deep-copied snapshot of the room and, when a game
// is running, its full game view with freshly computed scores.
func (s *service) GetRoomState(ctx context.Context, input *GetRoomStateInput) (*GetRoomStateOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[input.RoomID]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return &GetRoomStateOutput{Room: snapshotRoom(r)}, nil
}

// settleRoom flips the room to finished once its game reaches results
func (s *service) settleRoom(r *models.Room) {
	if r.Game != nil && r.Game.Stage == models.StageResults && r.State == models.RoomStateInGame {
		// Precondition is checked above, the error path is unreachable.
		_ = r.FinishGame()
	}
}

// roomByCode resolves a live room by join code. Callers hold the lock.
func (s *service) roomByCode(code string) (*models.Room, bool) {
	id, ok := s.codes[code]
	if !ok {
		return nil, false
	}
	r, ok := s.rooms[id]
	return r, ok
}

// generateCode builds a random uppercase join code
func generateCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeCharset))))
		if err != nil {
			return "", err
		}
		code[i] = codeCharset[n.Int64()]
	}
	return string(code), nil
}

// snapshotRoom deep-copies a room into its snapshot form
func snapshotRoom(r *models.Room) *RoomSnapshot {
	players := make([]models.Player, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, *p)
	}

	snap := &RoomSnapshot{
		RoomID:      r.ID,
		Code:        r.Code,
		State:       r.State,
		PlayerCount: r.PlayerCount(),
		Players:     players,
	}

	if r.Game != nil {
		snap.Game = snapshotGame(r.Game)
	}
	return snap
}

func snapshotGame(g *models.GameState) *GameSnapshot {
	startingObjects := make(map[models.PlayerID]string, len(g.StartingObjects))
	for id, obj := range g.StartingObjects {
		startingObjects[id] = obj
	}
	currentObjects := make(map[models.PlayerID]string, len(g.CurrentObjects))
	for id, obj := range g.CurrentObjects {
		currentObjects[id] = obj
	}

	order := make([]models.PlayerID, len(g.PlayersInOrder))
	copy(order, g.PlayersInOrder)

	options := make([]string, len(g.CurrentOptions))
	copy(options, g.CurrentOptions)

	voted := make([]models.PlayerID, 0, len(g.PlayersVoted))
	for _, id := range g.PlayersInOrder {
		if g.PlayersVoted[id] {
			voted = append(voted, id)
		}
	}

	snap := &GameSnapshot{
		Stage:            g.Stage,
		GoalText:         g.GoalText,
		GoalImage:        g.GoalImage,
		StartingImage:    g.StartingImage,
		CurrentImage:     g.CurrentImage,
		StartingObjects:  startingObjects,
		CurrentObjects:   currentObjects,
		PlayersInOrder:   order,
		CurrentTurnIndex: g.CurrentTurnIndex,
		CurrentOptions:   options,
		CurrentRound:     g.CurrentRound,
		MaxRounds:        g.MaxRounds,
		TurnStartTime:    g.TurnStartTime,
		StageStartTime:   g.StageStartTime,
		PlayersVoted:     voted,
		Scores:           g.CalculateScores(),
	}

	if g.Stage == models.StagePlayerTurn {
		if current, ok := g.CurrentPlayer(); ok {
			snap.CurrentPlayerID = &current
		}
	}
	return snap
}
