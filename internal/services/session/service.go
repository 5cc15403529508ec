package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"arcade/internal/dependencies/clock"
	"arcade/internal/model"
	"arcade/internal/storage"
)

// Service issues opaque, time-bounded session tokens on successful
// authentication. Issuance is purely additive: a user may hold any
// number of concurrent sessions, and no operation validates or revokes
// a token (the user id alone is the capability on user-scoped routes).
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new session service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Issue creates and persists a session for the user. The token expires
// at the end of the current calendar day in server-local time; expiry
// is advisory and not enforced on any read path.
func (s *Service) Issue(ctx context.Context, userID model.UserID) (*model.Session, error) {
	now := s.clock.Now()

	session := &model.Session{
		ID:        model.SessionID(uuid.NewString()),
		UserID:    userID,
		Token:     generateToken(),
		CreatedAt: now.UTC(),
		ExpiresAt: endOfDay(now),
		Active:    true,
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session issued", slog.String("user_id", string(userID)))

	return session, nil
}

// endOfDay returns 23:59:59 of t's calendar day, in t's location
func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, t.Location())
}

// generateToken generates a cryptographically-unguessable bearer token
func generateToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
