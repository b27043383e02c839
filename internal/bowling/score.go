package bowling

import (
	"slices"

	"github.com/KirkDiggler/strikeout/internal/models"
)

const (
	allPins  = 10
	maxTurns = 10
)

// bonusFunc returns the pins of the n balls thrown right after a player's
// ball at index, counting missing balls as zero
type bonusFunc func(index, n int) int

// scoreFrames walks a player's own balls frame by frame. Bonus lookahead is
// delegated so the same walk serves solo and interleaved play.
func scoreFrames(throws []int, bonus bonusFunc) []models.Frame {
	frames := make([]models.Frame, 0, maxTurns)
	total := 0
	i := 0

	for turn := 1; turn <= maxTurns && i < len(throws); turn++ {
		start := i
		frame := models.Frame{Number: turn}

		switch {
		case throws[i] == allPins:
			frame.Kind = models.FrameKindStrike
			frame.Score = allPins + bonus(i, 2)
			i++
		case i+1 < len(throws) && throws[i]+throws[i+1] == allPins:
			frame.Kind = models.FrameKindSpare
			frame.Score = allPins + bonus(i+1, 1)
			i += 2
		default:
			frame.Kind = models.FrameKindOpen
			frame.Score = throws[i]
			if i+1 < len(throws) {
				frame.Score += throws[i+1]
			}
			i += 2
		}

		end := min(i, len(throws))
		if turn == maxTurns {
			// the tenth line also shows its bonus balls
			end = len(throws)
		}
		frame.Throws = slices.Clone(throws[start:end])

		total += frame.Score
		frame.Total = total
		frames = append(frames, frame)
	}

	return frames
}

func totalOf(frames []models.Frame) int {
	if len(frames) == 0 {
		return 0
	}
	return frames[len(frames)-1].Total
}
