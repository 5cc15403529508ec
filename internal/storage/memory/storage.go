package memory

import (
	"context"
	"sync"

	"arcade/internal/model"
	"arcade/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Entities are stored by value and copied on the way in and out, so
// callers never share mutable state with the store.
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]model.User
	usernameIndex map[string]model.UserID
	scores        []model.ScoreEntry
	sessions      map[string]model.Session
	progress      map[model.UserID]model.ProgressCheckpoint
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]model.User),
		usernameIndex: make(map[string]model.UserID),
		sessions:      make(map[string]model.Session),
		progress:      make(map[model.UserID]model.ProgressCheckpoint),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The username claim happens under the same lock as the write, so
	// concurrent registrations of one name cannot both succeed.
	if existing, ok := s.usernameIndex[user.Username]; ok && existing != user.ID {
		return model.ErrUsernameExists
	}

	s.users[user.ID] = *user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &user, nil
}

func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// ApplyScoreAggregates folds a submission into the user's aggregates.
// The whole read-modify-write happens under the write lock, so
// concurrent folds for the same user serialize and none is lost.
func (s *Storage) ApplyScoreAggregates(ctx context.Context, id model.UserID, score, coins, level int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	if score > user.HighScore {
		user.HighScore = score
	}
	user.TotalCoins += coins
	if level > user.LevelsCompleted {
		user.LevelsCompleted = level
	}

	s.users[id] = user
	return &user, nil
}

// Score ledger operations

func (s *Storage) AppendScore(ctx context.Context, entry *model.ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, *entry)
	return nil
}

func (s *Storage) ListScores(ctx context.Context) ([]*model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]*model.ScoreEntry, len(s.scores))
	for i := range s.scores {
		entry := s.scores[i]
		entries[i] = &entry
	}
	return entries, nil
}

func (s *Storage) ListScoresForUser(ctx context.Context, userID model.UserID) ([]*model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []*model.ScoreEntry
	for i := range s.scores {
		if s.scores[i].UserID != userID {
			continue
		}
		entry := s.scores[i]
		entries = append(entries, &entry)
	}
	return entries, nil
}

func (s *Storage) CountScores(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scores), nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = *session
	return nil
}

func (s *Storage) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return &session, nil
}

// Progress operations

func (s *Storage) SaveProgress(ctx context.Context, cp *model.ProgressCheckpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A value copy still shares the PowerUps backing array; clone it so
	// the stored record is detached from the caller's slice.
	stored := *cp
	stored.PowerUps = clonePowerUps(cp.PowerUps)
	s.progress[cp.UserID] = stored
	return nil
}

func (s *Storage) GetProgress(ctx context.Context, userID model.UserID) (*model.ProgressCheckpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp, ok := s.progress[userID]
	if !ok {
		return nil, model.ErrProgressNotFound
	}
	cp.PowerUps = clonePowerUps(cp.PowerUps)
	return &cp, nil
}

func clonePowerUps(powerUps []model.PowerUp) []model.PowerUp {
	if powerUps == nil {
		return nil
	}
	return append([]model.PowerUp(nil), powerUps...)
}

func (s *Storage) DeleteProgress(ctx context.Context, userID model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.progress[userID]; !ok {
		return model.ErrProgressNotFound
	}
	delete(s.progress, userID)
	return nil
}
