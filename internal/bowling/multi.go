package bowling

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/strikeout/internal/announce"
	"github.com/KirkDiggler/strikeout/internal/models"
)

// Progress is where a player stands in their own game
type Progress struct {
	Turn     int
	Ball     int
	Finished bool
}

// MultiPlayerGame rotates players in roster order and scores them against
// the global log, so a strike or spare collects the next balls thrown by
// anyone.
//
// MultiPlayerGame is not safe for concurrent use.
type MultiPlayerGame struct {
	players   []string
	games     map[string]*SingleGame
	log       []models.Throw
	current   int
	started   bool
	over      bool
	announcer announce.Announcer
}

// Option configures a MultiPlayerGame
type Option func(*MultiPlayerGame)

// WithAnnouncer replaces the default French announcer
func WithAnnouncer(a announce.Announcer) Option {
	return func(g *MultiPlayerGame) {
		if a != nil {
			g.announcer = a
		}
	}
}

// NewMultiPlayerGame creates a game that must be started before balls are recorded
func NewMultiPlayerGame(opts ...Option) *MultiPlayerGame {
	g := &MultiPlayerGame{
		games:     map[string]*SingleGame{},
		announcer: announce.NewFrench(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// StartNewGame resets the game for the given roster and announces the first ball
func (g *MultiPlayerGame) StartNewGame(names []string) (string, error) {
	if len(names) == 0 {
		return "", ErrNoPlayers
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return "", ErrEmptyPlayerName
		}
		if _, ok := seen[name]; ok {
			return "", fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
		seen[name] = struct{}{}
	}

	g.players = slices.Clone(names)
	g.games = make(map[string]*SingleGame, len(names))
	for _, name := range names {
		g.games[name] = NewSingleGame()
	}
	g.log = nil
	g.current = 0
	g.over = false
	g.started = true

	return g.nextThrow(), nil
}

// RecordThrow records a ball for the current player and announces the next one.
// Once the game is over it keeps returning the game-over announcement.
func (g *MultiPlayerGame) RecordThrow(pins int) (string, error) {
	if !g.started {
		return "", ErrGameNotStarted
	}
	if g.over {
		return g.announcer.GameOver(), nil
	}

	player := g.players[g.current]
	game := g.games[player]

	again, err := game.RecordThrow(pins)
	if err != nil {
		return "", err
	}
	g.log = append(g.log, models.Throw{Player: player, Pins: pins})

	if game.Finished() && g.allFinished() {
		g.over = true
		return g.announcer.GameOver(), nil
	}

	if !again {
		g.current = (g.current + 1) % len(g.players)
	}

	return g.nextThrow(), nil
}

// ScoreFor returns a player's score so far
func (g *MultiPlayerGame) ScoreFor(name string) (int, error) {
	frames, err := g.ScorecardFor(name)
	if err != nil {
		return 0, err
	}
	return totalOf(frames), nil
}

// ScorecardFor returns a player's frames with bonuses taken from the global log
func (g *MultiPlayerGame) ScorecardFor(name string) ([]models.Frame, error) {
	if _, ok := g.games[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, name)
	}

	positions := g.positionsOf(name)
	throws := make([]int, len(positions))
	for i, p := range positions {
		throws[i] = g.log[p].Pins
	}

	return scoreFrames(throws, func(index, n int) int {
		from := positions[index]
		bonus := 0
		for p := from + 1; p <= from+n && p < len(g.log); p++ {
			bonus += g.log[p].Pins
		}
		return bonus
	}), nil
}

// positionsOf maps each of a player's balls, in order, to its index in the
// global log. It is derived on every call so it always matches the log.
func (g *MultiPlayerGame) positionsOf(name string) []int {
	var positions []int
	for p, t := range g.log {
		if t.Player == name {
			positions = append(positions, p)
		}
	}
	return positions
}

// Scores returns every player's score so far in roster order
func (g *MultiPlayerGame) Scores() []models.PlayerScore {
	scores := make([]models.PlayerScore, 0, len(g.players))
	for _, name := range g.players {
		// known player, cannot fail
		score, _ := g.ScoreFor(name)
		scores = append(scores, models.PlayerScore{
			PlayerName: name,
			Score:      score,
			Finished:   g.games[name].Finished(),
		})
	}
	return scores
}

// Winners returns the players sharing the highest final score
func (g *MultiPlayerGame) Winners() ([]string, error) {
	if !g.over {
		return nil, ErrGameInProgress
	}

	best := -1
	var winners []string
	for _, s := range g.Scores() {
		switch {
		case s.Score > best:
			best = s.Score
			winners = []string{s.PlayerName}
		case s.Score == best:
			winners = append(winners, s.PlayerName)
		}
	}
	return winners, nil
}

// Progress returns where a player stands in their own game
func (g *MultiPlayerGame) Progress(name string) (Progress, error) {
	game, ok := g.games[name]
	if !ok {
		return Progress{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, name)
	}
	return Progress{
		Turn:     game.CurrentTurn(),
		Ball:     game.CurrentBall(),
		Finished: game.Finished(),
	}, nil
}

// CurrentPlayer returns the player due to throw, if any
func (g *MultiPlayerGame) CurrentPlayer() (string, bool) {
	if !g.started || g.over {
		return "", false
	}
	return g.players[g.current], true
}

// Started returns true once StartNewGame has succeeded
func (g *MultiPlayerGame) Started() bool {
	return g.started
}

// Over returns true once every player has finished
func (g *MultiPlayerGame) Over() bool {
	return g.over
}

// Players returns the roster in rotation order
func (g *MultiPlayerGame) Players() []string {
	return slices.Clone(g.players)
}

// Log returns a copy of the global log
func (g *MultiPlayerGame) Log() []models.Throw {
	return slices.Clone(g.log)
}

func (g *MultiPlayerGame) allFinished() bool {
	for _, name := range g.players {
		if !g.games[name].Finished() {
			return false
		}
	}
	return true
}

func (g *MultiPlayerGame) nextThrow() string {
	if g.over {
		return g.announcer.GameOver()
	}
	player := g.players[g.current]
	game := g.games[player]
	return g.announcer.NextThrow(player, game.CurrentTurn(), game.CurrentBall())
}
