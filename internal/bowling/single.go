package bowling

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/strikeout/internal/models"
)

// SingleGame records the balls of one player and tracks their turn and ball
type SingleGame struct {
	throws   []int
	turn     int
	ball     int
	finished bool
}

// NewSingleGame creates a game positioned on turn 1, ball 1
func NewSingleGame() *SingleGame {
	return &SingleGame{
		turn: 1,
		ball: 1,
	}
}

// RecordThrow records a ball and reports whether the player owes another
// ball in the same turn
func (g *SingleGame) RecordThrow(pins int) (bool, error) {
	if g.finished {
		return false, ErrSingleGameFinished
	}

	standing := g.standing()
	if pins < 0 || pins > standing {
		return false, fmt.Errorf("%w: %d with %d pins standing", ErrInvalidPins, pins, standing)
	}

	g.throws = append(g.throws, pins)

	if g.turn < maxTurns {
		switch {
		case g.ball == 1 && pins == allPins:
			g.turn++
			return false, nil
		case g.ball == 1:
			g.ball = 2
			return true, nil
		default:
			g.turn++
			g.ball = 1
			return false, nil
		}
	}

	switch g.ball {
	case 1:
		g.ball = 2
		return true, nil
	case 2:
		first := g.throws[len(g.throws)-2]
		if first == allPins || first+pins == allPins {
			g.ball = 3
			return true, nil
		}
	}

	g.finished = true
	g.turn = 0
	g.ball = 0
	return false, nil
}

// standing is the number of pins up for the next ball
func (g *SingleGame) standing() int {
	if g.ball == 1 {
		return allPins
	}

	last := g.throws[len(g.throws)-1]
	if g.turn < maxTurns {
		return allPins - last
	}

	if g.ball == 2 {
		if last == allPins {
			return allPins
		}
		return allPins - last
	}

	// third ball: pins are reset after a spare or a second strike
	first := g.throws[len(g.throws)-2]
	if first < allPins || last == allPins {
		return allPins
	}
	return allPins - last
}

// Score returns the score so far. Balls not yet thrown count as zero, so
// pending strike and spare bonuses are not anticipated.
func (g *SingleGame) Score() int {
	return totalOf(g.Frames())
}

// FinalScore returns the score of a finished game
func (g *SingleGame) FinalScore() (int, error) {
	if !g.finished {
		return 0, ErrGameInProgress
	}
	return g.Score(), nil
}

// Frames returns the scorecard so far
func (g *SingleGame) Frames() []models.Frame {
	return scoreFrames(g.throws, func(index, n int) int {
		bonus := 0
		for i := index + 1; i <= index+n && i < len(g.throws); i++ {
			bonus += g.throws[i]
		}
		return bonus
	})
}

// Finished returns true once the tenth turn is closed
func (g *SingleGame) Finished() bool {
	return g.finished
}

// CurrentTurn returns the turn in progress, 1 to 10, or 0 once finished
func (g *SingleGame) CurrentTurn() int {
	return g.turn
}

// CurrentBall returns the next ball of the turn, 1 to 3, or 0 once finished
func (g *SingleGame) CurrentBall() int {
	return g.ball
}

// Throws returns a copy of the recorded balls
func (g *SingleGame) Throws() []int {
	return slices.Clone(g.throws)
}
