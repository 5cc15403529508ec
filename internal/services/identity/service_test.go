package identity

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
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	s.service = New(memory.New(), s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRegister() {
	user, err := s.service.Register(s.ctx, "mario", "mario@example.com", "itsame!")
	s.Require().NoError(err)

	s.NotEmpty(user.ID)
	s.Equal("mario", user.Username)
	s.Equal("mario@example.com", user.Email)
	s.Equal(s.clock.CurrentTime, user.CreatedAt)
	s.Equal(0, user.HighScore)
	s.Equal(0, user.TotalCoins)

	// Hash is stored, never the password itself
	s.NotEmpty(user.PasswordHash)
	s.NotEqual("itsame!", user.PasswordHash)
}

func (s *ServiceSuite) TestRegisterDuplicateUsername() {
	_, err := s.service.Register(s.ctx, "mario", "mario@example.com", "itsame!")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "mario", "other@example.com", "different")
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *ServiceSuite) TestRegisterDistinctIDs() {
	first, err := s.service.Register(s.ctx, "mario", "mario@example.com", "itsame!")
	s.Require().NoError(err)
	second, err := s.service.Register(s.ctx, "luigi", "luigi@example.com", "itsame!")
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
}

func (s *ServiceSuite) TestAuthenticate() {
	registered, err := s.service.Register(s.ctx, "mario", "mario@example.com", "itsame!")
	s.Require().NoError(err)

	user, err := s.service.Authenticate(s.ctx, "mario", "itsame!")
	s.Require().NoError(err)
	s.Equal(registered.ID, user.ID)
}

func (s *ServiceSuite) TestAuthenticateWrongPassword() {
	_, err := s.service.Register(s.ctx, "mario", "mario@example.com", "itsame!")
	s.Require().NoError(err)

	_, err = s.service.Authenticate(s.ctx, "mario", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestAuthenticateUnknownUsername() {
	// Unknown username and wrong password are indistinguishable
	_, err := s.service.Authenticate(s.ctx, "waluigi", "anything")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestGetUser() {
	registered, err := s.service.Register(s.ctx, "mario", "mario@example.com", "itsame!")
	s.Require().NoError(err)

	user, err := s.service.GetUser(s.ctx, registered.ID)
	s.Require().NoError(err)
	s.Equal("mario", user.Username)

	_, err = s.service.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}
