package stats

import (
	"context"
	"errors"
	"log/slog"

	"arcade/internal/model"
	"arcade/internal/storage"
)

// Service computes read-only derivations over the identity store and
// the score ledger. It never writes.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new stats service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Global derives service-wide statistics. Every ledger entry counts as
// a game played, including repeats by the same user. With an empty
// ledger the highest score is 0 and there is no most-active player.
func (s *Service) Global(ctx context.Context) (*model.GlobalStats, error) {
	totalUsers, err := s.storage.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	totalGames, err := s.storage.CountScores(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.storage.ListScores(ctx)
	if err != nil {
		return nil, err
	}

	highest := 0
	gamesByUser := make(map[model.UserID]int)
	for _, entry := range entries {
		if entry.Score > highest {
			highest = entry.Score
		}
		gamesByUser[entry.UserID]++
	}

	result := &model.GlobalStats{
		TotalUsers:       totalUsers,
		TotalGamesPlayed: totalGames,
		HighestScore:     highest,
	}

	mostActive, err := s.mostActivePlayer(ctx, gamesByUser)
	if err != nil {
		return nil, err
	}
	result.MostActivePlayer = mostActive

	return result, nil
}

// mostActivePlayer picks the user with the most ledger entries, ties
// broken deterministically by lowest user id. Returns nil when the
// ledger is empty or the user record no longer resolves.
func (s *Service) mostActivePlayer(ctx context.Context, gamesByUser map[model.UserID]int) (*model.MostActivePlayer, error) {
	var topID model.UserID
	topCount := 0
	for id, count := range gamesByUser {
		if count > topCount || (count == topCount && id < topID) {
			topID = id
			topCount = count
		}
	}
	if topCount == 0 {
		return nil, nil
	}

	user, err := s.storage.GetUser(ctx, topID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.logger.Warn("most active player no longer resolves",
				slog.String("user_id", string(topID)))
			return nil, nil
		}
		return nil, err
	}

	return &model.MostActivePlayer{
		UserID:      user.ID,
		Username:    user.Username,
		GamesPlayed: topCount,
	}, nil
}
