package models

// PlayerScore pairs a player with their score so far
type PlayerScore struct {
	// PlayerName is the display name of the player
	PlayerName string

	// Score is the player's score, with unplayed balls counted as zero
	Score int

	// Finished indicates the player has completed their tenth turn
	Finished bool
}

// LeaderboardEntry is one ranked line of a leaderboard
type LeaderboardEntry struct {
	PlayerScore

	// Rank starts at 1; tied players share a rank
	Rank int
}

// Leaderboard represents the current standings in a game
type Leaderboard struct {
	// GameID is the unique identifier for the game
	GameID string

	// Entries are ordered by score, highest first
	Entries []*LeaderboardEntry
}
