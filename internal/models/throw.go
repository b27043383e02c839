package models

// Throw is one ball recorded in a game's global log
type Throw struct {
	// Player is the name of the player who threw the ball
	Player string

	// Pins is the number of pins knocked down
	Pins int
}
