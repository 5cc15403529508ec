package storage

import (
	"context"

	"arcade/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations. SaveUser is only called for newly registered
	// users and returns model.ErrUsernameExists when the username is
	// already claimed by another id; the claim is a store-level
	// check-and-set, so concurrent registrations of one name cannot
	// both succeed. Aggregate mutation goes through
	// ApplyScoreAggregates.
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CountUsers(ctx context.Context) (int, error)

	// ApplyScoreAggregates atomically folds one score submission into a
	// user's aggregates and returns the updated user:
	//
	//	HighScore       = max(HighScore, score)
	//	TotalCoins      = TotalCoins + coins
	//	LevelsCompleted = max(LevelsCompleted, level)
	//
	// Implementations must guarantee that concurrent folds for the same
	// user never lose a contribution. A transient loss of an optimistic
	// race is reported as model.ErrAggregateConflict and may be retried
	// by the caller.
	ApplyScoreAggregates(ctx context.Context, id model.UserID, score, coins, level int) (*model.User, error)

	// Score ledger operations. The ledger is append-only; listings
	// return entries in insertion order.
	AppendScore(ctx context.Context, entry *model.ScoreEntry) error
	ListScores(ctx context.Context) ([]*model.ScoreEntry, error)
	ListScoresForUser(ctx context.Context, userID model.UserID) ([]*model.ScoreEntry, error)
	CountScores(ctx context.Context) (int, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSessionByToken(ctx context.Context, token string) (*model.Session, error)

	// Progress operations. At most one checkpoint exists per user;
	// SaveProgress overwrites wholesale.
	SaveProgress(ctx context.Context, cp *model.ProgressCheckpoint) error
	GetProgress(ctx context.Context, userID model.UserID) (*model.ProgressCheckpoint, error)
	DeleteProgress(ctx context.Context, userID model.UserID) error
}
