package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/strikeout/internal/announce"
	"github.com/KirkDiggler/strikeout/internal/common/clock"
	"github.com/KirkDiggler/strikeout/internal/common/uuid"
	gameService "github.com/KirkDiggler/strikeout/internal/services/game"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// A missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		logger.Fatalf("Invalid LOG_LEVEL: %v", err)
	}
	logger.SetLevel(level)

	announcer, err := announce.ForLocale(getEnv("BOWLING_LOCALE", ""))
	if err != nil {
		logger.Fatalf("Invalid BOWLING_LOCALE: %v", err)
	}

	players := splitList(getEnv("BOWLING_PLAYERS", ""))
	throws, err := parseThrows(getEnv("BOWLING_THROWS", ""))
	if err != nil {
		logger.Fatalf("Invalid BOWLING_THROWS: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		Announcer:     announcer,
		Logger:        logger,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatalf("Failed to create game service: %v", err)
	}

	if err := replay(context.Background(), gameSvc, logger, players, throws); err != nil {
		logger.Fatalf("Replay failed: %v", err)
	}
}

// replay starts a game for players and records every throw in order
func replay(ctx context.Context, svc gameService.Service, logger logrus.FieldLogger, players []string, throws []int) error {
	started, err := svc.StartNewGame(ctx, &gameService.StartNewGameInput{
		PlayerNames: players,
	})
	if err != nil {
		return err
	}
	logger.Info(started.NextThrow)

	for _, pins := range throws {
		output, err := svc.RecordThrow(ctx, &gameService.RecordThrowInput{Pins: pins})
		if err != nil {
			return fmt.Errorf("throw of %d pins: %w", pins, err)
		}
		logger.Info(output.NextThrow)
	}

	board, err := svc.GetLeaderboard(ctx, &gameService.GetLeaderboardInput{})
	if err != nil {
		return err
	}
	for _, entry := range board.Leaderboard.Entries {
		logger.WithFields(logrus.Fields{
			"rank":     entry.Rank,
			"player":   entry.PlayerName,
			"score":    entry.Score,
			"finished": entry.Finished,
		}).Info("Standing")
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseThrows(value string) ([]int, error) {
	items := splitList(value)
	throws := make([]int, 0, len(items))
	for _, item := range items {
		pins, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("%q is not a pin count", item)
		}
		throws = append(throws, pins)
	}
	return throws, nil
}
