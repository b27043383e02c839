package models

// FrameKind describes how a frame was closed
type FrameKind string

const (
	// FrameKindStrike indicates all pins fell on the first ball
	FrameKindStrike FrameKind = "strike"

	// FrameKindSpare indicates all pins fell across the first two balls
	FrameKindSpare FrameKind = "spare"

	// FrameKindOpen indicates pins were left standing
	FrameKindOpen FrameKind = "open"
)

// Frame is one line of a player's scorecard
type Frame struct {
	// Number is the turn number, 1 to 10
	Number int

	// Throws are the player's own balls counted in this frame
	Throws []int

	// Kind is how the frame was closed
	Kind FrameKind

	// Score is the frame value including any bonus resolved so far
	Score int

	// Total is the running total up to and including this frame
	Total int
}
