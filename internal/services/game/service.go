package game

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/strikeout/internal/bowling"
	"github.com/KirkDiggler/strikeout/internal/common/clock"
	"github.com/KirkDiggler/strikeout/internal/common/uuid"
	"github.com/KirkDiggler/strikeout/internal/models"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface around a single lane
type service struct {
	mu sync.Mutex

	game      *bowling.MultiPlayerGame
	gameID    string
	startedAt time.Time
	updatedAt time.Time

	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        logrus.FieldLogger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		game:          bowling.NewMultiPlayerGame(bowling.WithAnnouncer(cfg.Announcer)),
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}, nil
}

// StartNewGame starts a new game for an ordered roster
func (s *service) StartNewGame(ctx context.Context, input *StartNewGameInput) (*StartNewGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.game.StartNewGame(input.PlayerNames)
	if err != nil {
		s.logger.WithError(err).WithField("players", input.PlayerNames).Warn("Rejected new game")
		return nil, err
	}

	now := s.clock.Now()
	s.gameID = s.uuidGenerator.NewUUID()
	s.startedAt = now
	s.updatedAt = now

	s.logger.WithFields(logrus.Fields{
		"game_id": s.gameID,
		"players": input.PlayerNames,
	}).Info("Game started")

	return &StartNewGameOutput{
		GameID:    s.gameID,
		NextThrow: next,
	}, nil
}

// RecordThrow records the pins knocked down by the current player
func (s *service) RecordThrow(ctx context.Context, input *RecordThrowInput) (*RecordThrowOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player, _ := s.game.CurrentPlayer()
	fields := logrus.Fields{
		"game_id": s.gameID,
		"player":  player,
		"pins":    input.Pins,
	}
	if player != "" {
		// known player, cannot fail
		progress, _ := s.game.Progress(player)
		fields["turn"] = progress.Turn
		fields["ball"] = progress.Ball
	}

	wasOver := s.game.Over()
	next, err := s.game.RecordThrow(input.Pins)
	if err != nil {
		s.logger.WithError(err).WithFields(fields).Warn("Rejected throw")
		return nil, err
	}

	if wasOver {
		s.logger.WithFields(fields).Debug("Throw ignored, game is over")
		return &RecordThrowOutput{
			NextThrow: next,
			GameOver:  true,
		}, nil
	}

	s.updatedAt = s.clock.Now()
	s.logger.WithFields(fields).Debug("Throw recorded")

	if s.game.Over() {
		s.logger.WithFields(logrus.Fields{
			"game_id": s.gameID,
			"scores":  s.game.Scores(),
		}).Info("Game over")
	}

	return &RecordThrowOutput{
		PlayerName: player,
		NextThrow:  next,
		GameOver:   s.game.Over(),
	}, nil
}

// ScoreFor returns a player's score so far
func (s *service) ScoreFor(ctx context.Context, input *ScoreForInput) (*ScoreForOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	score, err := s.game.ScoreFor(input.PlayerName)
	if err != nil {
		return nil, err
	}

	return &ScoreForOutput{
		PlayerName: input.PlayerName,
		Score:      score,
	}, nil
}

// GetScorecard returns a player's frames
func (s *service) GetScorecard(ctx context.Context, input *GetScorecardInput) (*GetScorecardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	frames, err := s.game.ScorecardFor(input.PlayerName)
	if err != nil {
		return nil, err
	}

	total := 0
	if len(frames) > 0 {
		total = frames[len(frames)-1].Total
	}

	return &GetScorecardOutput{
		PlayerName: input.PlayerName,
		Frames:     frames,
		Total:      total,
	}, nil
}

// GetLeaderboard returns the standings, highest score first. Ties keep
// roster order and share a rank.
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scores := s.game.Scores()
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	entries := make([]*models.LeaderboardEntry, 0, len(scores))
	for i, score := range scores {
		rank := i + 1
		if i > 0 && score.Score == scores[i-1].Score {
			rank = entries[i-1].Rank
		}
		entries = append(entries, &models.LeaderboardEntry{
			PlayerScore: score,
			Rank:        rank,
		})
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			GameID:  s.gameID,
			Entries: entries,
		},
	}, nil
}

// GetGame returns a snapshot of the game
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := &models.Game{
		ID:          s.gameID,
		Status:      models.GameStatusWaiting,
		PlayerNames: s.game.Players(),
		Throws:      s.game.Log(),
		StartedAt:   s.startedAt,
		UpdatedAt:   s.updatedAt,
	}

	switch {
	case s.game.Over():
		game.Status = models.GameStatusCompleted
	case s.game.Started():
		game.Status = models.GameStatusActive
		player, _ := s.game.CurrentPlayer()
		progress, _ := s.game.Progress(player)
		game.CurrentPlayer = player
		game.CurrentTurn = progress.Turn
		game.CurrentBall = progress.Ball
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}
