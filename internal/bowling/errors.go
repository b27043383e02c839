package bowling

import "fmt"

// GameError is a custom error type for bowling rule violations
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Error classes. Every error returned by this package wraps exactly one of them.
const (
	// ErrInvalidArgument is caller input that is malformed at call time
	ErrInvalidArgument GameError = "invalid argument"

	// ErrIllegalState is an operation the game's lifecycle forbids
	ErrIllegalState GameError = "illegal state"
)

var (
	ErrNoPlayers          = fmt.Errorf("%w: player list cannot be empty", ErrInvalidArgument)
	ErrEmptyPlayerName    = fmt.Errorf("%w: player name cannot be empty", ErrInvalidArgument)
	ErrDuplicatePlayer    = fmt.Errorf("%w: player names must be distinct", ErrInvalidArgument)
	ErrUnknownPlayer      = fmt.Errorf("%w: unknown player", ErrInvalidArgument)
	ErrInvalidPins        = fmt.Errorf("%w: invalid pin count", ErrInvalidArgument)
	ErrSingleGameFinished = fmt.Errorf("%w: game already finished for this player", ErrIllegalState)
	ErrGameNotStarted     = fmt.Errorf("%w: game has not been started", ErrIllegalState)
	ErrGameInProgress     = fmt.Errorf("%w: game is still in progress", ErrIllegalState)
)
