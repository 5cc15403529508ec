package progress

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"arcade/internal/dependencies/clock"
	"arcade/internal/model"
	"arcade/internal/storage"
)

// Service owns the single mutable "continue game" checkpoint per user
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new progress service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Save upserts the user's checkpoint. An existing checkpoint keeps its
// id but every other field is overwritten wholesale and UpdatedAt is
// bumped; concurrent saves resolve last-writer-wins with no merge.
// Fails with model.ErrUserNotFound if the user does not exist.
func (s *Service) Save(ctx context.Context, cp *model.ProgressCheckpoint) (*model.ProgressCheckpoint, error) {
	if _, err := s.storage.GetUser(ctx, cp.UserID); err != nil {
		return nil, err
	}

	existing, err := s.storage.GetProgress(ctx, cp.UserID)
	switch {
	case err == nil:
		cp.ID = existing.ID
	case errors.Is(err, model.ErrProgressNotFound):
		cp.ID = model.ProgressID(uuid.NewString())
	default:
		return nil, err
	}

	cp.UpdatedAt = s.clock.Now().UTC()

	if err := s.storage.SaveProgress(ctx, cp); err != nil {
		return nil, err
	}

	return cp, nil
}

// Load returns the user's checkpoint, or model.ErrProgressNotFound
func (s *Service) Load(ctx context.Context, userID model.UserID) (*model.ProgressCheckpoint, error) {
	return s.storage.GetProgress(ctx, userID)
}

// Delete removes the user's checkpoint; model.ErrProgressNotFound if
// none existed
func (s *Service) Delete(ctx context.Context, userID model.UserID) error {
	if err := s.storage.DeleteProgress(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("progress deleted", slog.String("user_id", string(userID)))
	return nil
}
