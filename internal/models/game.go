package models

import (
	"time"

	"bigpicture/internal/assets"
)

// Stage represents one phase of an active game
type Stage string

const (
	// StageRevealGoal shows everyone the communal goal
	StageRevealGoal Stage = "reveal_goal"

	// StagePlayerTurn is the turn-taking phase
	StagePlayerTurn Stage = "player_turn"

	// StageVoting is the rating phase after the final round
	StageVoting Stage = "voting"

	// StageResults is the terminal podium phase
	StageResults Stage = "results"
)

// MaxStars is the highest rating one player can give another
const MaxStars = 5

// PlayerAction is one entry in the append-only action log
type PlayerAction struct {
	// PlayerID is the player who acted
	PlayerID PlayerID `json:"player_id"`

	// Round is the 0-based round the action was taken in
	Round int `json:"round"`

	// OptionChosen is the option picked, or nil for a timeout/skip
	OptionChosen *OptionID `json:"option_chosen,omitempty"`

	// Description is the modifier text that was applied, empty on skip
	Description string `json:"description"`

	// ResultingObject is the player's object after the action
	ResultingObject string `json:"resulting_object"`
}

// GameState is the turn/voting/scoring state machine for one game.
//
// Stages move one way: reveal_goal -> player_turn -> voting -> results.
// The turn order is a snapshot of the roster at game start and is never
// reconciled afterwards, even if a player leaves the room. Timestamps are
// Unix seconds stamped from the clock the room manager injects.
type GameState struct {
	// GoalImage is the handle of the communal goal image
	GoalImage ImageID `json:"goal_image"`

	// GoalText is the human-readable communal goal
	GoalText string `json:"goal_text"`

	// StartingImage is the handle of the image the game opened with
	StartingImage ImageID `json:"starting_image"`

	// CurrentImage is the handle of the latest image
	CurrentImage ImageID `json:"current_image"`

	// StartingObjects maps each player to their fixed starting object
	StartingObjects map[PlayerID]string `json:"starting_objects"`

	// CurrentObjects maps each player to their object as of the last turn
	CurrentObjects map[PlayerID]string `json:"current_objects"`

	// Stage is the current phase
	Stage Stage `json:"stage"`

	// PlayersInOrder is the fixed turn order for the whole game
	PlayersInOrder []PlayerID `json:"players_in_order"`

	// CurrentTurnIndex is the 0-based index into PlayersInOrder
	CurrentTurnIndex int `json:"current_turn_index"`

	// MaxRounds is how many times each player acts
	MaxRounds int `json:"max_rounds"`

	// CurrentRound is 0-based and increments once per full rotation
	CurrentRound int `json:"current_round"`

	// Actions is the append-only history of every turn taken
	Actions []PlayerAction `json:"actions"`

	// CurrentOptions holds the four modifiers offered to the active player
	CurrentOptions []string `json:"current_options"`

	// TurnStartTime is when the current turn began, in Unix seconds
	TurnStartTime int64 `json:"turn_start_time"`

	// Votes maps voter -> target -> stars (0-5)
	Votes map[PlayerID]map[PlayerID]int `json:"votes"`

	// PlayersVoted is the set of players who have submitted votes
	PlayersVoted map[PlayerID]bool `json:"players_voted"`

	// StageStartTime is when the current stage began, in Unix seconds
	StageStartTime int64 `json:"stage_start_time"`
}

// NewGameState creates a game in the reveal_goal stage.
//
// players fixes the turn order; startingObjects[i] belongs to players[i].
func NewGameState(goalImage ImageID, goalText string, startingImage ImageID, players []PlayerID, startingObjects []string, maxRounds int, now time.Time) *GameState {
	starting := make(map[PlayerID]string, len(players))
	current := make(map[PlayerID]string, len(players))
	for i, id := range players {
		if i < len(startingObjects) {
			starting[id] = startingObjects[i]
			current[id] = startingObjects[i]
		}
	}

	return &GameState{
		GoalImage:        goalImage,
		GoalText:         goalText,
		StartingImage:    startingImage,
		CurrentImage:     startingImage,
		StartingObjects:  starting,
		CurrentObjects:   current,
		Stage:            StageRevealGoal,
		PlayersInOrder:   players,
		CurrentTurnIndex: 0,
		MaxRounds:        maxRounds,
		CurrentRound:     0,
		Actions:          []PlayerAction{},
		CurrentOptions:   []string{},
		Votes:            map[PlayerID]map[PlayerID]int{},
		PlayersVoted:     map[PlayerID]bool{},
		StageStartTime:   now.Unix(),
	}
}

// CurrentPlayer returns the player whose turn it is. ok is false when the
// turn index is out of range, which should only happen transiently.
func (g *GameState) CurrentPlayer() (PlayerID, bool) {
	if g.CurrentTurnIndex < 0 || g.CurrentTurnIndex >= len(g.PlayersInOrder) {
		return "", false
	}
	return g.PlayersInOrder[g.CurrentTurnIndex], true
}

// IsFinished reports whether all rounds have been played
func (g *GameState) IsFinished() bool {
	return g.CurrentRound >= g.MaxRounds
}

// TotalTurns returns the number of actions taken so far
func (g *GameState) TotalTurns() int {
	return len(g.Actions)
}

// PlayerCount returns the size of the turn-order roster
func (g *GameState) PlayerCount() int {
	return len(g.PlayersInOrder)
}

// HasPlayer reports whether id is part of the turn-order roster
func (g *GameState) HasPlayer(id PlayerID) bool {
	for _, p := range g.PlayersInOrder {
		if p == id {
			return true
		}
	}
	return false
}

// StartTurn draws four fresh options for the active player and stamps the
// turn start time. A no-op when no current player exists.
func (g *GameState) StartTurn(provider assets.Provider, now time.Time) {
	if _, ok := g.CurrentPlayer(); !ok {
		return
	}
	g.CurrentOptions = provider.GenerateModificationOptions()
	g.TurnStartTime = now.Unix()
}

// NextStage advances the stage manually, typically on a host trigger or a
// poller-observed timeout. From player_turn this jumps straight to voting,
// which is the host's skip override. A no-op once results is reached.
func (g *GameState) NextStage(provider assets.Provider, now time.Time) {
	switch g.Stage {
	case StageRevealGoal:
		g.Stage = StagePlayerTurn
		g.StageStartTime = now.Unix()
		g.StartTurn(provider, now)
	case StagePlayerTurn:
		g.Stage = StageVoting
		g.StageStartTime = now.Unix()
	case StageVoting:
		g.Stage = StageResults
		g.StageStartTime = now.Unix()
	case StageResults:
		// terminal
	}
}

// SubmitAction records the active player's choice and advances the turn.
//
// option is nil on a timeout/skip, which still appends a no-op record so
// the turn accounting stays exact. Only the player at the current turn
// index may act, and only during player_turn.
func (g *GameState) SubmitAction(playerID PlayerID, option *OptionID, provider assets.Provider, now time.Time) error {
	if g.Stage != StagePlayerTurn {
		return ErrWrongStage
	}

	current, ok := g.CurrentPlayer()
	if !ok || current != playerID {
		return ErrNotYourTurn
	}

	action := PlayerAction{
		PlayerID:        playerID,
		Round:           g.CurrentRound,
		ResultingObject: g.CurrentObjects[playerID],
	}

	if option != nil {
		idx := int(*option)
		if idx >= len(g.CurrentOptions) {
			return ErrInvalidOption
		}

		modifier := g.CurrentOptions[idx]
		modified := provider.ApplyModification(g.CurrentObjects[playerID], modifier)
		g.CurrentObjects[playerID] = modified

		action.OptionChosen = option
		action.Description = modifier
		action.ResultingObject = modified
	}

	g.Actions = append(g.Actions, action)
	g.advanceTurn(provider, now)
	return nil
}

// advanceTurn moves to the next player, wrapping into a new round once
// every seated player has acted. Reaching the round limit forces voting.
func (g *GameState) advanceTurn(provider assets.Provider, now time.Time) {
	g.CurrentTurnIndex++
	if g.CurrentTurnIndex >= len(g.PlayersInOrder) {
		g.CurrentTurnIndex = 0
		g.CurrentRound++
	}

	if g.IsFinished() {
		g.Stage = StageVoting
		g.StageStartTime = now.Unix()
		return
	}

	g.StartTurn(provider, now)
}

// SubmitVotes stores a voter's full ballot, replacing any prior one.
//
// Only players in the original turn order may vote. Self-votes and
// ratings above MaxStars are rejected without mutating state. Once every
// player in the original turn order has voted the stage advances to
// results. That completion check deliberately counts against the
// turn-order snapshot, so a player who disconnected without voting holds
// the stage open.
func (g *GameState) SubmitVotes(voter PlayerID, votes map[PlayerID]int, now time.Time) error {
	if g.Stage != StageVoting {
		return ErrWrongStage
	}

	if !g.HasPlayer(voter) {
		return ErrVoterNotInGame
	}

	for target, stars := range votes {
		if target == voter {
			return ErrSelfVote
		}
		if stars < 0 || stars > MaxStars {
			return ErrStarsOutOfRange
		}
	}

	ballot := make(map[PlayerID]int, len(votes))
	for target, stars := range votes {
		ballot[target] = stars
	}
	g.Votes[voter] = ballot
	g.PlayersVoted[voter] = true

	if len(g.PlayersVoted) >= len(g.PlayersInOrder) {
		g.Stage = StageResults
		g.StageStartTime = now.Unix()
	}
	return nil
}

// CalculateScores returns each player's mean received rating, 0.0 for a
// player nobody rated. Pure read, safe to call on every poll.
func (g *GameState) CalculateScores() map[PlayerID]float64 {
	scores := make(map[PlayerID]float64, len(g.PlayersInOrder))
	for _, player := range g.PlayersInOrder {
		var sum, count int
		for _, ballot := range g.Votes {
			if stars, ok := ballot[player]; ok {
				sum += stars
				count++
			}
		}

		if count == 0 {
			scores[player] = 0.0
			continue
		}
		scores[player] = float64(sum) / float64(count)
	}
	return scores
}
