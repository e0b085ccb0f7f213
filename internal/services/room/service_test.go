package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	assetMocks "bigpicture/internal/assets/mocks"
	clockMock "bigpicture/internal/common/clock/mocks"
	"bigpicture/internal/models"
)

type RoomServiceTestSuite struct {
	suite.Suite

	ctx          context.Context
	ctrl         *gomock.Controller
	mockProvider *assetMocks.MockProvider
	mockClock    *clockMock.MockClock
	testTime     time.Time

	service *service
}

func (s *RoomServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockProvider = assetMocks.NewMockProvider(s.ctrl)
	s.mockClock = clockMock.NewMockClock(s.ctrl)
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		MaxRounds:     1,
		CodeLength:    6,
		AssetProvider: s.mockProvider,
		Clock:         s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RoomServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectGameAssets arms the provider for one StartGame plus any number of
// turn-option draws.
func (s *RoomServiceTestSuite) expectGameAssets(playerCount int) {
	objects := make([]string, playerCount)
	for i := range objects {
		objects[i] = "object"
	}

	s.mockProvider.EXPECT().GenerateGameAssets(playerCount).Return("a wizard cat in outer space", objects)
	s.mockProvider.EXPECT().GenerateModificationOptions().Return([]string{"opt a", "opt b", "opt c", "opt d"}).AnyTimes()
	s.mockProvider.EXPECT().ApplyModification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(object, modifier string) string {
			return object + " " + modifier
		},
	).AnyTimes()
}

// seatPlayers creates a room and joins n players, returning the room and
// their ids in join order.
func (s *RoomServiceTestSuite) seatPlayers(n int) (*CreateRoomOutput, []models.PlayerID) {
	created, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{})
	s.Require().NoError(err)

	players := make([]models.PlayerID, n)
	for i := range players {
		joined, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{
			Code:     created.Code,
			Nickname: string(rune('A' + i)),
			AvatarID: uint8(i),
		})
		s.Require().NoError(err)
		players[i] = joined.PlayerID
	}
	return created, players
}

func (s *RoomServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilAssetProvider)

	_, err = New(&Config{AssetProvider: s.mockProvider})
	s.ErrorIs(err, ErrNilClock)
}

func (s *RoomServiceTestSuite) TestNewAppliesDefaults() {
	svc, err := New(&Config{
		MaxRounds:     0,
		CodeLength:    99,
		AssetProvider: s.mockProvider,
		Clock:         s.mockClock,
	})
	s.Require().NoError(err)
	s.Equal(3, svc.config.MaxRounds)
	s.Equal(6, svc.config.CodeLength)
}

func (s *RoomServiceTestSuite) TestCreateRoom() {
	output, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{})
	s.Require().NoError(err)

	s.NotEmpty(output.RoomID)
	s.Len(output.Code, 6)
	for _, c := range output.Code {
		s.Contains(codeCharset, string(c))
	}

	state, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: output.RoomID})
	s.Require().NoError(err)
	s.Equal(models.RoomStateLobby, state.Room.State)
	s.Equal(0, state.Room.PlayerCount)
	s.Nil(state.Room.Game)
}

func (s *RoomServiceTestSuite) TestCreateRoomCodesAreUnique() {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		output, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{})
		s.Require().NoError(err)
		s.False(seen[output.Code], "code %q issued twice", output.Code)
		seen[output.Code] = true
	}
}

func (s *RoomServiceTestSuite) TestJoinRoom() {
	created, _ := s.seatPlayers(0)

	output, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{
		Code:     created.Code,
		Nickname: "alice",
		AvatarID: 3,
	})
	s.Require().NoError(err)
	s.Equal(created.RoomID, output.RoomID)
	s.NotEmpty(output.PlayerID)

	state, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Require().Len(state.Room.Players, 1)
	s.Equal("alice", state.Room.Players[0].Nickname)
	s.Equal(models.AvatarID(3), state.Room.Players[0].AvatarID)
	s.True(state.Room.Players[0].Connected)
}

func (s *RoomServiceTestSuite) TestJoinRoomValidation() {
	created, _ := s.seatPlayers(1)

	_, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{Code: "NOSUCH", Nickname: "bob", AvatarID: 0})
	s.ErrorIs(err, ErrRoomNotFound)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{Code: created.Code, Nickname: "   ", AvatarID: 0})
	s.ErrorIs(err, ErrInvalidNickname)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{Code: created.Code, Nickname: "bob", AvatarID: models.MaxAvatars})
	s.ErrorIs(err, ErrInvalidAvatar)
}

func (s *RoomServiceTestSuite) TestJoinRoomDuplicateNickname() {
	created, _ := s.seatPlayers(1)

	_, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{Code: created.Code, Nickname: "A", AvatarID: 5})
	s.ErrorIs(err, ErrNicknameTaken)

	state, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Equal(1, state.Room.PlayerCount, "rejected join must not seat a player")
}

func (s *RoomServiceTestSuite) TestJoinRoomFull() {
	created, _ := s.seatPlayers(models.MaxRoomPlayers)

	_, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{Code: created.Code, Nickname: "late", AvatarID: 0})
	s.ErrorIs(err, ErrRoomFull)
}

func (s *RoomServiceTestSuite) TestJoinRoomAfterStart() {
	created, _ := s.seatPlayers(2)
	s.expectGameAssets(2)

	_, err := s.service.StartGame(s.ctx, &StartGameInput{RoomID: created.RoomID})
	s.Require().NoError(err)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{Code: created.Code, Nickname: "late", AvatarID: 0})
	s.ErrorIs(err, ErrGameInProgress)
}

func (s *RoomServiceTestSuite) TestRejoinRoom() {
	created, players := s.seatPlayers(2)

	_, err := s.service.DisconnectPlayer(s.ctx, &DisconnectPlayerInput{RoomID: created.RoomID, PlayerID: players[0]})
	s.Require().NoError(err)

	output, err := s.service.RejoinRoom(s.ctx, &RejoinRoomInput{Code: created.Code, Nickname: "A"})
	s.Require().NoError(err)
	s.Equal(players[0], output.PlayerID, "rejoin reclaims the existing seat")

	state, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Equal(2, state.Room.PlayerCount)
	s.True(state.Room.Players[0].Connected)
}

func (s *RoomServiceTestSuite) TestRejoinRoomValidation() {
	created, _ := s.seatPlayers(1)

	_, err := s.service.RejoinRoom(s.ctx, &RejoinRoomInput{Code: "NOSUCH", Nickname: "A"})
	s.ErrorIs(err, ErrRoomNotFound)

	_, err = s.service.RejoinRoom(s.ctx, &RejoinRoomInput{Code: created.Code, Nickname: "nobody"})
	s.ErrorIs(err, ErrPlayerNotFound)

	// Case-sensitive match.
	_, err = s.service.RejoinRoom(s.ctx, &RejoinRoomInput{Code: created.Code, Nickname: "a"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RoomServiceTestSuite) TestLeaveRoom() {
	created, players := s.seatPlayers(2)

	output, err := s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: created.RoomID, PlayerID: players[0]})
	s.Require().NoError(err)
	s.True(output.Success)

	state, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Equal(1, state.Room.PlayerCount)

	_, err = s.service.LeaveRoom(s.ctx, &LeaveRoomInput{RoomID: created.RoomID, PlayerID: players[0]})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RoomServiceTestSuite) TestDisconnectPlayerKeepsSeat() {
	created, players := s.seatPlayers(2)

	output, err := s.service.DisconnectPlayer(s.ctx, &DisconnectPlayerInput{RoomID: created.RoomID, PlayerID: players[1]})
	s.Require().NoError(err)
	s.True(output.Success)

	state, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Equal(2, state.Room.PlayerCount)
	s.False(state.Room.Players[1].Connected)
}

func (s *RoomServiceTestSuite) TestStartGame() {
	created, players := s.seatPlayers(3)
	s.expectGameAssets(3)

	output, err := s.service.StartGame(s.ctx, &StartGameInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.True(output.Success)

	state, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Equal(models.RoomStateInGame, state.Room.State)

	game := state.Room.Game
	s.Require().NotNil(game)
	s.Equal(models.StageRevealGoal, game.Stage)
	s.Equal("a wizard cat in outer space", game.GoalText)
	s.Equal(players, game.PlayersInOrder, "turn order follows join order")
	s.Equal(1, game.MaxRounds)
	s.Equal(s.testTime.Unix(), game.StageStartTime)
	s.Len(game.StartingObjects, 3)
	s.NotEmpty(game.GoalImage)
	s.NotEmpty(game.StartingImage)
	s.Nil(game.CurrentPlayerID, "no active player before the turn stage")
}

func (s *RoomServiceTestSuite) TestStartGameValidation() {
	created, _ := s.seatPlayers(1)

	_, err := s.service.StartGame(s.ctx, &StartGameInput{RoomID: models.NewRoomID()})
	s.ErrorIs(err, ErrRoomNotFound)

	_, err = s.service.StartGame(s.ctx, &StartGameInput{RoomID: created.RoomID})
	s.ErrorIs(err, ErrNotEnoughPlayers)
}

func (s *RoomServiceTestSuite) TestStartGameTwice() {
	created, _ := s.seatPlayers(2)
	s.expectGameAssets(2)

	_, err := s.service.StartGame(s.ctx, &StartGameInput{RoomID: created.RoomID})
	s.Require().NoError(err)

	_, err = s.service.StartGame(s.ctx, &StartGameInput{RoomID: created.RoomID})
	s.ErrorIs(err, ErrGameInProgress)
}

func (s *RoomServiceTestSuite) TestAdvanceStageRequiresGame() {
	created, _ := s.seatPlayers(2)

	_, err := s.service.AdvanceStage(s.ctx, &AdvanceStageInput{RoomID: created.RoomID})
	s.ErrorIs(err, ErrGameNotStarted)
}

func (s *RoomServiceTestSuite) TestSubmitActionValidation() {
	created, players := s.seatPlayers(2)
	s.expectGameAssets(2)

	_, err := s.service.StartGame(s.ctx, &StartGameInput{RoomID: created.RoomID})
	s.Require().NoError(err)

	idx := 0
	_, err = s.service.SubmitAction(s.ctx, &SubmitActionInput{RoomID: created.RoomID, PlayerID: players[0], OptionIndex: &idx})
	s.ErrorIs(err, models.ErrWrongStage)

	_, err = s.service.AdvanceStage(s.ctx, &AdvanceStageInput{RoomID: created.RoomID})
	s.Require().NoError(err)

	bad := models.OptionCount
	_, err = s.service.SubmitAction(s.ctx, &SubmitActionInput{RoomID: created.RoomID, PlayerID: players[0], OptionIndex: &bad})
	s.ErrorIs(err, models.ErrInvalidOption)

	_, err = s.service.SubmitAction(s.ctx, &SubmitActionInput{RoomID: created.RoomID, PlayerID: players[1], OptionIndex: &idx})
	s.ErrorIs(err, models.ErrNotYourTurn)
}

func (s *RoomServiceTestSuite) TestFullGameThroughResults() {
	created, players := s.seatPlayers(3)
	a, b, c := players[0], players[1], players[2]
	s.expectGameAssets(3)

	_, err := s.service.StartGame(s.ctx, &StartGameInput{RoomID: created.RoomID})
	s.Require().NoError(err)

	advance, err := s.service.AdvanceStage(s.ctx, &AdvanceStageInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Equal(models.StagePlayerTurn, advance.Stage)

	state, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Require().NotNil(state.Room.Game.CurrentPlayerID)
	s.Equal(a, *state.Room.Game.CurrentPlayerID)
	s.Len(state.Room.Game.CurrentOptions, 4)

	// One round: each player picks an option, the last one skips.
	idx := 1
	_, err = s.service.SubmitAction(s.ctx, &SubmitActionInput{RoomID: created.RoomID, PlayerID: a, OptionIndex: &idx})
	s.Require().NoError(err)
	_, err = s.service.SubmitAction(s.ctx, &SubmitActionInput{RoomID: created.RoomID, PlayerID: b, OptionIndex: &idx})
	s.Require().NoError(err)
	_, err = s.service.SubmitAction(s.ctx, &SubmitActionInput{RoomID: created.RoomID, PlayerID: c, OptionIndex: nil})
	s.Require().NoError(err)

	state, err = s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Equal(models.StageVoting, state.Room.Game.Stage, "single round forces voting")
	s.Equal("object opt b", state.Room.Game.CurrentObjects[a])
	s.Equal("object", state.Room.Game.CurrentObjects[c], "skip leaves the object unchanged")

	voted, err := s.service.SubmitVotes(s.ctx, &SubmitVotesInput{
		RoomID:  created.RoomID,
		VoterID: a,
		Votes:   map[models.PlayerID]int{b: 5, c: 3},
	})
	s.Require().NoError(err)
	s.Equal(models.StageVoting, voted.Stage)

	_, err = s.service.SubmitVotes(s.ctx, &SubmitVotesInput{
		RoomID:  created.RoomID,
		VoterID: b,
		Votes:   map[models.PlayerID]int{a: 4, c: 2},
	})
	s.Require().NoError(err)

	voted, err = s.service.SubmitVotes(s.ctx, &SubmitVotesInput{
		RoomID:  created.RoomID,
		VoterID: c,
		Votes:   map[models.PlayerID]int{a: 3, b: 4},
	})
	s.Require().NoError(err)
	s.Equal(models.StageResults, voted.Stage, "final ballot completes the roster")

	state, err = s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Equal(models.RoomStateFinished, state.Room.State, "room settles once results is reached")
	s.InDelta(3.5, state.Room.Game.Scores[a], 1e-9)
	s.InDelta(4.5, state.Room.Game.Scores[b], 1e-9)
	s.InDelta(2.5, state.Room.Game.Scores[c], 1e-9)
	s.ElementsMatch(players, state.Room.Game.PlayersVoted)
}

func (s *RoomServiceTestSuite) TestSubmitVotesValidation() {
	created, players := s.seatPlayers(2)
	s.expectGameAssets(2)

	_, err := s.service.StartGame(s.ctx, &StartGameInput{RoomID: created.RoomID})
	s.Require().NoError(err)

	_, err = s.service.SubmitVotes(s.ctx, &SubmitVotesInput{
		RoomID:  created.RoomID,
		VoterID: players[0],
		Votes:   map[models.PlayerID]int{players[1]: 3},
	})
	s.ErrorIs(err, models.ErrWrongStage)

	// reveal_goal -> player_turn -> voting
	_, err = s.service.AdvanceStage(s.ctx, &AdvanceStageInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	_, err = s.service.AdvanceStage(s.ctx, &AdvanceStageInput{RoomID: created.RoomID})
	s.Require().NoError(err)

	_, err = s.service.SubmitVotes(s.ctx, &SubmitVotesInput{
		RoomID:  created.RoomID,
		VoterID: players[0],
		Votes:   map[models.PlayerID]int{players[0]: 3},
	})
	s.ErrorIs(err, models.ErrSelfVote)

	_, err = s.service.SubmitVotes(s.ctx, &SubmitVotesInput{
		RoomID:  created.RoomID,
		VoterID: players[0],
		Votes:   map[models.PlayerID]int{players[1]: models.MaxStars + 1},
	})
	s.ErrorIs(err, models.ErrStarsOutOfRange)
}

func (s *RoomServiceTestSuite) TestSubmitVotesRejectsUnseatedVoter() {
	created, players := s.seatPlayers(2)
	s.expectGameAssets(2)

	_, err := s.service.StartGame(s.ctx, &StartGameInput{RoomID: created.RoomID})
	s.Require().NoError(err)

	// reveal_goal -> player_turn -> voting
	_, err = s.service.AdvanceStage(s.ctx, &AdvanceStageInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	_, err = s.service.AdvanceStage(s.ctx, &AdvanceStageInput{RoomID: created.RoomID})
	s.Require().NoError(err)

	_, err = s.service.SubmitVotes(s.ctx, &SubmitVotesInput{
		RoomID:  created.RoomID,
		VoterID: models.NewPlayerID(),
		Votes:   map[models.PlayerID]int{players[0]: 5},
	})
	s.ErrorIs(err, models.ErrVoterNotInGame)

	state, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Equal(models.StageVoting, state.Room.Game.Stage)
	s.Equal(models.RoomStateInGame, state.Room.State, "forged ballot must not settle the room")
	s.Empty(state.Room.Game.PlayersVoted)
}

func (s *RoomServiceTestSuite) TestGetRoomStateSnapshotIsDetached() {
	created, _ := s.seatPlayers(2)

	state, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)

	state.Room.Players[0].Nickname = "tampered"

	again, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: created.RoomID})
	s.Require().NoError(err)
	s.Equal("A", again.Room.Players[0].Nickname)
}

func (s *RoomServiceTestSuite) TestGetRoomStateNotFound() {
	_, err := s.service.GetRoomState(s.ctx, &GetRoomStateInput{RoomID: models.NewRoomID()})
	s.ErrorIs(err, ErrRoomNotFound)
}

func TestRoomServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}
