package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"arcade/internal/model"
	"arcade/internal/storage"
)

// Aggregates hash field names
const (
	fieldHighScore       = "high_score"
	fieldTotalCoins      = "total_coins"
	fieldLevelsCompleted = "levels_completed"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Claim the username index first with SETNX; a lost claim means
	// another user id already owns the name.
	claimed, err := s.client.SetNX(ctx, usernameIndexKey(user.Username), string(user.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		existing, err := s.client.Get(ctx, usernameIndexKey(user.Username)).Result()
		if err != nil {
			return err
		}
		if existing != string(user.ID) {
			return model.ErrUsernameExists
		}
	}

	// Use pipeline for atomic save + index + aggregates hash
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.SAdd(ctx, usersIndexKey(), string(user.ID))
	pipe.HSet(ctx, userAggregatesKey(user.ID),
		fieldHighScore, user.HighScore,
		fieldTotalCoins, user.TotalCoins,
		fieldLevelsCompleted, user.LevelsCompleted,
	)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}

	// The aggregates hash is authoritative; the blob only carries the
	// values at registration time.
	vals, err := s.client.HGetAll(ctx, userAggregatesKey(id)).Result()
	if err != nil {
		return nil, err
	}
	applyAggregateFields(&user, vals)

	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(idStr))
}

func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	n, err := s.client.SCard(ctx, usersIndexKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ApplyScoreAggregates folds a submission into the user's aggregates
// using an optimistic transaction: the aggregates hash is WATCHed, the
// fold is computed from the watched read, and the conditional write
// aborts if another fold touched the hash in between. The abort is
// surfaced as model.ErrAggregateConflict for the caller to retry.
func (s *Storage) ApplyScoreAggregates(ctx context.Context, id model.UserID, score, coins, level int) (*model.User, error) {
	aggrKey := userAggregatesKey(id)

	exists, err := s.client.Exists(ctx, userKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrUserNotFound
	}

	var highScore, totalCoins, levelsCompleted int

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		vals, err := tx.HGetAll(ctx, aggrKey).Result()
		if err != nil {
			return err
		}

		highScore = parseAggregateField(vals, fieldHighScore)
		totalCoins = parseAggregateField(vals, fieldTotalCoins)
		levelsCompleted = parseAggregateField(vals, fieldLevelsCompleted)

		if score > highScore {
			highScore = score
		}
		totalCoins += coins
		if level > levelsCompleted {
			levelsCompleted = level
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, aggrKey,
				fieldHighScore, highScore,
				fieldTotalCoins, totalCoins,
				fieldLevelsCompleted, levelsCompleted,
			)
			return nil
		})
		return err
	}, aggrKey)

	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return nil, model.ErrAggregateConflict
		}
		return nil, err
	}

	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	user.HighScore = highScore
	user.TotalCoins = totalCoins
	user.LevelsCompleted = levelsCompleted

	return &user, nil
}

// applyAggregateFields overlays hash values onto a user record
func applyAggregateFields(user *model.User, vals map[string]string) {
	user.HighScore = parseAggregateField(vals, fieldHighScore)
	user.TotalCoins = parseAggregateField(vals, fieldTotalCoins)
	user.LevelsCompleted = parseAggregateField(vals, fieldLevelsCompleted)
}

func parseAggregateField(vals map[string]string, field string) int {
	n, _ := strconv.Atoi(vals[field])
	return n
}

// Score ledger operations

func (s *Storage) AppendScore(ctx context.Context, entry *model.ScoreEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index updates. RPUSH preserves
	// insertion order for stable leaderboard tie-breaking.
	pipe := s.client.Pipeline()
	pipe.Set(ctx, scoreKey(entry.ID), data, 0)
	pipe.RPush(ctx, scoresIndexKey(), string(entry.ID))
	pipe.RPush(ctx, userScoresIndexKey(entry.UserID), string(entry.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListScores(ctx context.Context) ([]*model.ScoreEntry, error) {
	return s.listScoresByIndex(ctx, scoresIndexKey())
}

func (s *Storage) ListScoresForUser(ctx context.Context, userID model.UserID) ([]*model.ScoreEntry, error) {
	return s.listScoresByIndex(ctx, userScoresIndexKey(userID))
}

func (s *Storage) listScoresByIndex(ctx context.Context, indexKey string) ([]*model.ScoreEntry, error) {
	ids, err := s.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = scoreKey(model.ScoreID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*model.ScoreEntry, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var entry model.ScoreEntry
		if err := json.Unmarshal([]byte(val.(string)), &entry); err != nil {
			continue // Skip invalid data
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (s *Storage) CountScores(ctx context.Context) (int, error) {
	n, err := s.client.LLen(ctx, scoresIndexKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(session.Token), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Progress operations

func (s *Storage) SaveProgress(ctx context.Context, cp *model.ProgressCheckpoint) error {
	data, err := json.Marshal(cp)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, progressKey(cp.UserID), data, 0).Err()
}

func (s *Storage) GetProgress(ctx context.Context, userID model.UserID) (*model.ProgressCheckpoint, error) {
	data, err := s.client.Get(ctx, progressKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProgressNotFound
		}
		return nil, err
	}

	var cp model.ProgressCheckpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *Storage) DeleteProgress(ctx context.Context, userID model.UserID) error {
	deleted, err := s.client.Del(ctx, progressKey(userID)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return model.ErrProgressNotFound
	}
	return nil
}
