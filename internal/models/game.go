package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusWaiting indicates no game has been started yet
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates every player has finished their tenth turn
	GameStatusCompleted GameStatus = "completed"
)

// IsActive returns true if balls can still be thrown
func (s GameStatus) IsActive() bool {
	return s == GameStatusActive
}

// IsCompleted returns true if the game is over
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// Game is a snapshot of a multi-player bowling game
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current state of the game
	Status GameStatus

	// PlayerNames is the roster in rotation order
	PlayerNames []string

	// CurrentPlayer is the player due to throw next, empty once completed
	CurrentPlayer string

	// CurrentTurn is the current player's turn number, 0 once completed
	CurrentTurn int

	// CurrentBall is the current player's ball number in the turn, 0 once completed
	CurrentBall int

	// Throws is the global log in chronological order
	Throws []Throw

	// StartedAt is when the game was started
	StartedAt time.Time

	// UpdatedAt is when the last ball was recorded
	UpdatedAt time.Time
}
