package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"arcade/internal/dependencies/mocks"
	"arcade/internal/model"
	"arcade/internal/storage/memory"
	"arcade/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	storage *memory.Storage
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{ID: "user-1", Username: "mario"}))
}

func (s *ServiceSuite) TestSave() {
	saved, err := s.service.Save(s.ctx, &model.ProgressCheckpoint{
		UserID:         "user-1",
		CurrentLevel:   4,
		LivesRemaining: 2,
		Score:          1200,
		Coins:          37,
		PowerUps:       []model.PowerUp{model.PowerUpFireFlower},
		LastCheckpoint: model.Checkpoint{Level: 4, Zone: "4-2", X: 128, Y: 64},
	})
	s.Require().NoError(err)

	s.NotEmpty(saved.ID)
	s.Equal(s.clock.CurrentTime, saved.UpdatedAt)
}

func (s *ServiceSuite) TestSaveUnknownUser() {
	_, err := s.service.Save(s.ctx, &model.ProgressCheckpoint{UserID: "nonexistent"})
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestSaveKeepsIDOnUpsert() {
	first, err := s.service.Save(s.ctx, &model.ProgressCheckpoint{UserID: "user-1", CurrentLevel: 1})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)

	second, err := s.service.Save(s.ctx, &model.ProgressCheckpoint{UserID: "user-1", CurrentLevel: 5})
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal(5, second.CurrentLevel)
	s.Equal(first.UpdatedAt.Add(time.Hour), second.UpdatedAt)
}

func (s *ServiceSuite) TestSaveOverwritesWholesale() {
	_, err := s.service.Save(s.ctx, &model.ProgressCheckpoint{
		UserID:   "user-1",
		PowerUps: []model.PowerUp{model.PowerUpMushroom, model.PowerUpStar},
		Coins:    50,
	})
	s.Require().NoError(err)

	_, err = s.service.Save(s.ctx, &model.ProgressCheckpoint{UserID: "user-1", CurrentLevel: 2})
	s.Require().NoError(err)

	loaded, err := s.service.Load(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(2, loaded.CurrentLevel)
	s.Equal(0, loaded.Coins)
	s.Empty(loaded.PowerUps)
}

func (s *ServiceSuite) TestLoad() {
	saved, err := s.service.Save(s.ctx, &model.ProgressCheckpoint{UserID: "user-1", CurrentLevel: 7})
	s.Require().NoError(err)

	loaded, err := s.service.Load(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(saved.ID, loaded.ID)
	s.Equal(7, loaded.CurrentLevel)

	// Load does not mutate anything
	again, err := s.service.Load(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(loaded.UpdatedAt, again.UpdatedAt)
}

func (s *ServiceSuite) TestLoadNotFound() {
	_, err := s.service.Load(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrProgressNotFound)
}

func (s *ServiceSuite) TestDelete() {
	_, err := s.service.Save(s.ctx, &model.ProgressCheckpoint{UserID: "user-1"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, "user-1"))

	_, err = s.service.Load(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrProgressNotFound)

	err = s.service.Delete(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrProgressNotFound)
}
