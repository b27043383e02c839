package game

import (
	"github.com/KirkDiggler/strikeout/internal/announce"
	"github.com/KirkDiggler/strikeout/internal/common/clock"
	"github.com/KirkDiggler/strikeout/internal/common/uuid"
	"github.com/KirkDiggler/strikeout/internal/models"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the game service
type Config struct {
	// Announcer renders the next-throw strings, French when nil
	Announcer announce.Announcer

	// Logger receives structured game events, the standard logger when nil
	Logger logrus.FieldLogger

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartNewGameInput contains parameters for starting a game
type StartNewGameInput struct {
	// PlayerNames is the roster in rotation order
	PlayerNames []string
}

// StartNewGameOutput contains the result of starting a game
type StartNewGameOutput struct {
	// GameID is the unique identifier for the started game
	GameID string

	// NextThrow announces the first ball
	NextThrow string
}

// RecordThrowInput contains parameters for recording a ball
type RecordThrowInput struct {
	// Pins is the number of pins knocked down
	Pins int
}

// RecordThrowOutput contains the result of recording a ball
type RecordThrowOutput struct {
	// PlayerName is who threw, empty when the game was already over
	PlayerName string

	// NextThrow announces the next ball, or the game-over string
	NextThrow string

	// GameOver indicates every player has finished
	GameOver bool
}

// ScoreForInput contains parameters for reading a score
type ScoreForInput struct {
	PlayerName string
}

// ScoreForOutput contains a player's score so far
type ScoreForOutput struct {
	PlayerName string
	Score      int
}

// GetScorecardInput contains parameters for reading a scorecard
type GetScorecardInput struct {
	PlayerName string
}

// GetScorecardOutput contains a player's frames
type GetScorecardOutput struct {
	PlayerName string
	Frames     []models.Frame

	// Total is the running total of the last frame
	Total int
}

// GetLeaderboardInput defines the input for retrieving the leaderboard
type GetLeaderboardInput struct{}

// GetLeaderboardOutput defines the output for retrieving the leaderboard
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetGameInput defines the input for retrieving the game
type GetGameInput struct{}

// GetGameOutput contains a snapshot of the game
type GetGameOutput struct {
	Game *models.Game
}
