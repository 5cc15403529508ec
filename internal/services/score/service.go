package score

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"arcade/internal/dependencies/clock"
	"arcade/internal/model"
	"arcade/internal/storage"
)

// DefaultLimit is the number of entries returned by leaderboard and
// per-user score queries when the caller does not specify a limit.
const DefaultLimit = 10

// aggregateRetries bounds the optimistic-conflict retry loop for the
// aggregate fold. Conflicts only arise from concurrent submissions for
// the same user, so a handful of attempts is plenty.
const aggregateRetries = 5

// Service owns the append-only score ledger and the per-user aggregate
// fold applied on every submission.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new score service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Submit appends a score entry to the ledger and folds it into the
// owning user's aggregates.
//
// The two steps are deliberately not transactional. The ledger is
// authoritative and aggregates are re-derivable from it, so if the fold
// fails the already-appended entry stands (partial success) and the
// fold failure is reported to the caller. Transient optimistic
// conflicts are retried up to aggregateRetries before surfacing
// model.ErrAggregateConflict.
func (s *Service) Submit(ctx context.Context, userID model.UserID, username string, score, levelReached, coinsCollected, gameDuration int) (*model.ScoreEntry, error) {
	if _, err := s.storage.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	entry := &model.ScoreEntry{
		ID:             model.ScoreID(uuid.NewString()),
		UserID:         userID,
		Username:       username,
		Score:          score,
		LevelReached:   levelReached,
		CoinsCollected: coinsCollected,
		GameDuration:   gameDuration,
		CreatedAt:      s.clock.Now().UTC(),
	}

	if err := s.storage.AppendScore(ctx, entry); err != nil {
		return nil, err
	}

	var foldErr error
	for attempt := 0; attempt < aggregateRetries; attempt++ {
		_, foldErr = s.storage.ApplyScoreAggregates(ctx, userID, score, coinsCollected, levelReached)
		if !errors.Is(foldErr, model.ErrAggregateConflict) {
			break
		}
	}
	if foldErr != nil {
		s.logger.Warn("aggregate fold failed after ledger append",
			slog.String("user_id", string(userID)),
			slog.String("score_id", string(entry.ID)),
			slog.String("error", foldErr.Error()),
		)
		return nil, foldErr
	}

	return entry, nil
}

// TopScores returns up to limit ledger entries ordered strictly
// descending by score. Equal scores keep insertion order (stable).
// A non-positive limit falls back to DefaultLimit.
func (s *Service) TopScores(ctx context.Context, limit int) ([]*model.ScoreEntry, error) {
	entries, err := s.storage.ListScores(ctx)
	if err != nil {
		return nil, err
	}
	return rankEntries(entries, limit), nil
}

// UserScores returns up to limit of one user's entries, same ordering
// rule as TopScores.
func (s *Service) UserScores(ctx context.Context, userID model.UserID, limit int) ([]*model.ScoreEntry, error) {
	entries, err := s.storage.ListScoresForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return rankEntries(entries, limit), nil
}

// rankEntries sorts descending by score (stable, so ledger insertion
// order breaks ties) and trims to limit
func rankEntries(entries []*model.ScoreEntry, limit int) []*model.ScoreEntry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]*model.ScoreEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
