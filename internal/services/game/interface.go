package game

import "context"

// Service defines the interface for bowling game operations.
// Implementations serialize calls so a ball is recorded and the lane
// rotated as one step.
type Service interface {
	// StartNewGame starts a new game for an ordered roster
	StartNewGame(ctx context.Context, input *StartNewGameInput) (*StartNewGameOutput, error)

	// RecordThrow records the pins knocked down by the current player
	RecordThrow(ctx context.Context, input *RecordThrowInput) (*RecordThrowOutput, error)

	// ScoreFor returns a player's score so far
	ScoreFor(ctx context.Context, input *ScoreForInput) (*ScoreForOutput, error)

	// GetScorecard returns a player's frames
	GetScorecard(ctx context.Context, input *GetScorecardInput) (*GetScorecardOutput, error)

	// GetLeaderboard returns the current standings
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetGame returns a snapshot of the game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
}
