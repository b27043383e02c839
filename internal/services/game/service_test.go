package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/strikeout/internal/announce"
	"github.com/KirkDiggler/strikeout/internal/bowling"
	"github.com/KirkDiggler/strikeout/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/strikeout/internal/common/uuid/mocks"
	"github.com/KirkDiggler/strikeout/internal/models"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockClock   *mocks.MockClock
	mockUUID    *uuidMocks.MockUUID
	logHook     *logrustest.Hook
	gameService Service
	ctx         context.Context

	// Test data
	testTime    time.Time
	testGameID  string
	testPlayers []string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testPlayers = []string{"Pierre", "Paul"}

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s.logHook = hook

	svc, err := New(&Config{
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Logger:        logger,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) startGame() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	_, err := s.gameService.StartNewGame(s.ctx, &StartNewGameInput{
		PlayerNames: s.testPlayers,
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) roll(pins ...int) *RecordThrowOutput {
	var output *RecordThrowOutput
	for _, p := range pins {
		var err error
		output, err = s.gameService.RecordThrow(s.ctx, &RecordThrowInput{Pins: p})
		s.Require().NoError(err)
	}
	return output
}

func (s *GameServiceTestSuite) TestNewValidatesConfig() {
	testCases := []struct {
		name     string
		cfg      *Config
		expected error
	}{
		{name: "nil config", cfg: nil, expected: ErrNilConfig},
		{name: "nil clock", cfg: &Config{UUIDGenerator: s.mockUUID}, expected: ErrNilClock},
		{name: "nil uuid", cfg: &Config{Clock: s.mockClock}, expected: ErrNilUUIDGenerator},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := New(tc.cfg)
			s.ErrorIs(err, tc.expected)
			s.Nil(svc)
		})
	}
}

func (s *GameServiceTestSuite) TestStartNewGame() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	output, err := s.gameService.StartNewGame(s.ctx, &StartNewGameInput{
		PlayerNames: s.testPlayers,
	})
	s.Require().NoError(err)
	s.Equal(s.testGameID, output.GameID)
	s.Equal("Prochain tir : joueur Pierre, tour n° 1, boule n° 1", output.NextThrow)

	entry := s.logHook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal("Game started", entry.Message)
	s.Equal(s.testGameID, entry.Data["game_id"])
}

func (s *GameServiceTestSuite) TestStartNewGameRejectsEmptyRoster() {
	// no UUID is drawn for a rejected roster
	output, err := s.gameService.StartNewGame(s.ctx, &StartNewGameInput{})
	s.ErrorIs(err, bowling.ErrInvalidArgument)
	s.Nil(output)

	entry := s.logHook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(logrus.WarnLevel, entry.Level)
}

func (s *GameServiceTestSuite) TestNilInputs() {
	_, err := s.gameService.StartNewGame(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.gameService.RecordThrow(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.gameService.ScoreFor(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.gameService.GetScorecard(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *GameServiceTestSuite) TestRecordThrowBeforeStart() {
	_, err := s.gameService.RecordThrow(s.ctx, &RecordThrowInput{Pins: 5})
	s.ErrorIs(err, bowling.ErrIllegalState)
}

func (s *GameServiceTestSuite) TestRecordThrowAndScores() {
	s.startGame()

	output := s.roll(5)
	s.Equal("Pierre", output.PlayerName)
	s.Equal("Prochain tir : joueur Pierre, tour n° 1, boule n° 2", output.NextThrow)
	s.False(output.GameOver)

	s.roll(3, 10, 7, 3, 5, 2)

	pierre, err := s.gameService.ScoreFor(s.ctx, &ScoreForInput{PlayerName: "Pierre"})
	s.Require().NoError(err)
	s.Equal(23, pierre.Score)

	paul, err := s.gameService.ScoreFor(s.ctx, &ScoreForInput{PlayerName: "Paul"})
	s.Require().NoError(err)
	s.Equal(27, paul.Score)

	scorecard, err := s.gameService.GetScorecard(s.ctx, &GetScorecardInput{PlayerName: "Pierre"})
	s.Require().NoError(err)
	s.Len(scorecard.Frames, 2)
	s.Equal(models.FrameKindSpare, scorecard.Frames[1].Kind)
	s.Equal(23, scorecard.Total)
}

func (s *GameServiceTestSuite) TestRecordThrowRejectsInvalidPins() {
	s.startGame()

	_, err := s.gameService.RecordThrow(s.ctx, &RecordThrowInput{Pins: 11})
	s.ErrorIs(err, bowling.ErrInvalidArgument)

	entry := s.logHook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal("Rejected throw", entry.Message)
	s.Equal("Pierre", entry.Data["player"])
}

func (s *GameServiceTestSuite) TestScoreForUnknownPlayer() {
	_, err := s.gameService.ScoreFor(s.ctx, &ScoreForInput{PlayerName: "Jacques"})
	s.ErrorIs(err, bowling.ErrUnknownPlayer)

	s.startGame()
	_, err = s.gameService.ScoreFor(s.ctx, &ScoreForInput{PlayerName: "Jacques"})
	s.ErrorIs(err, bowling.ErrInvalidArgument)
}

func (s *GameServiceTestSuite) TestGameOver() {
	s.startGame()

	for turn := 1; turn <= 9; turn++ {
		s.roll(10, 3, 4)
	}
	s.roll(10, 10, 10)
	output := s.roll(0, 0)
	s.True(output.GameOver)
	s.Equal("Partie terminée", output.NextThrow)

	again := s.roll(5)
	s.True(again.GameOver)
	s.Empty(again.PlayerName)
	s.Equal("Partie terminée", again.NextThrow)

	got, err := s.gameService.GetGame(s.ctx, &GetGameInput{})
	s.Require().NoError(err)
	s.Equal(models.GameStatusCompleted, got.Game.Status)
	s.Empty(got.Game.CurrentPlayer)
	s.Len(got.Game.Throws, 9*3+5)
}

func (s *GameServiceTestSuite) TestGetLeaderboard() {
	s.startGame()
	s.roll(3, 4, 10)

	output, err := s.gameService.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Equal(s.testGameID, output.Leaderboard.GameID)
	s.Require().Len(output.Leaderboard.Entries, 2)

	s.Equal("Paul", output.Leaderboard.Entries[0].PlayerName)
	s.Equal(10, output.Leaderboard.Entries[0].Score)
	s.Equal(1, output.Leaderboard.Entries[0].Rank)
	s.Equal("Pierre", output.Leaderboard.Entries[1].PlayerName)
	s.Equal(2, output.Leaderboard.Entries[1].Rank)
}

func (s *GameServiceTestSuite) TestGetLeaderboardTiesShareRank() {
	s.startGame()
	s.roll(3, 4, 4, 3)

	output, err := s.gameService.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Leaderboard.Entries, 2)
	s.Equal("Pierre", output.Leaderboard.Entries[0].PlayerName)
	s.Equal(1, output.Leaderboard.Entries[0].Rank)
	s.Equal(1, output.Leaderboard.Entries[1].Rank)
}

func (s *GameServiceTestSuite) TestGetGame() {
	got, err := s.gameService.GetGame(s.ctx, &GetGameInput{})
	s.Require().NoError(err)
	s.Equal(models.GameStatusWaiting, got.Game.Status)
	s.Empty(got.Game.ID)

	s.startGame()
	s.roll(10)

	got, err = s.gameService.GetGame(s.ctx, &GetGameInput{})
	s.Require().NoError(err)
	s.Equal(&models.Game{
		ID:            s.testGameID,
		Status:        models.GameStatusActive,
		PlayerNames:   []string{"Pierre", "Paul"},
		CurrentPlayer: "Paul",
		CurrentTurn:   1,
		CurrentBall:   1,
		Throws:        []models.Throw{{Player: "Pierre", Pins: 10}},
		StartedAt:     s.testTime,
		UpdatedAt:     s.testTime,
	}, got.Game)
}

func (s *GameServiceTestSuite) TestEnglishAnnouncer() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	svc, err := New(&Config{
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Announcer:     announce.NewEnglish(),
	})
	s.Require().NoError(err)

	output, err := svc.StartNewGame(s.ctx, &StartNewGameInput{PlayerNames: []string{"Pierre"}})
	s.Require().NoError(err)
	s.Equal("Next throw: player Pierre, frame 1, ball 1", output.NextThrow)
}

func (s *GameServiceTestSuite) TestConcurrentThrowsKeepRotationConsistent() {
	s.testPlayers = []string{"A", "B", "C"}
	s.startGame()

	// every ball is a 1, so each player throws exactly two per turn
	var wg sync.WaitGroup
	for i := 0; i < 18; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.gameService.RecordThrow(s.ctx, &RecordThrowInput{Pins: 1})
			s.NoError(err)
		}()
	}
	wg.Wait()

	got, err := s.gameService.GetGame(s.ctx, &GetGameInput{})
	s.Require().NoError(err)
	s.Len(got.Game.Throws, 18)
	for i, t := range got.Game.Throws {
		s.Equal(s.testPlayers[(i/2)%3], t.Player)
	}
	s.Equal("A", got.Game.CurrentPlayer)
	s.Equal(4, got.Game.CurrentTurn)
}
