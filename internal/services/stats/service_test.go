package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"arcade/internal/model"
	"arcade/internal/storage/memory"
	"arcade/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	storage *memory.Storage
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) addUser(id model.UserID, username string) {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{ID: id, Username: username}))
}

func (s *ServiceSuite) addScore(id model.ScoreID, userID model.UserID, score int) {
	s.Require().NoError(s.storage.AppendScore(s.ctx, &model.ScoreEntry{ID: id, UserID: userID, Score: score}))
}

func (s *ServiceSuite) TestGlobalEmpty() {
	stats, err := s.service.Global(s.ctx)
	s.Require().NoError(err)

	s.Equal(0, stats.TotalUsers)
	s.Equal(0, stats.TotalGamesPlayed)
	s.Equal(0, stats.HighestScore)
	s.Nil(stats.MostActivePlayer)
}

func (s *ServiceSuite) TestGlobalUsersButNoScores() {
	s.addUser("user-1", "mario")
	s.addUser("user-2", "luigi")

	stats, err := s.service.Global(s.ctx)
	s.Require().NoError(err)

	s.Equal(2, stats.TotalUsers)
	s.Equal(0, stats.TotalGamesPlayed)
	s.Nil(stats.MostActivePlayer)
}

func (s *ServiceSuite) TestGlobal() {
	s.addUser("user-1", "mario")
	s.addUser("user-2", "luigi")
	s.addScore("score-1", "user-1", 500)
	s.addScore("score-2", "user-1", 9000)
	s.addScore("score-3", "user-2", 700)

	stats, err := s.service.Global(s.ctx)
	s.Require().NoError(err)

	s.Equal(2, stats.TotalUsers)
	s.Equal(3, stats.TotalGamesPlayed)
	s.Equal(9000, stats.HighestScore)
	s.Require().NotNil(stats.MostActivePlayer)
	s.Equal(model.UserID("user-1"), stats.MostActivePlayer.UserID)
	s.Equal("mario", stats.MostActivePlayer.Username)
	s.Equal(2, stats.MostActivePlayer.GamesPlayed)
}

func (s *ServiceSuite) TestGlobalMostActiveTieBrokenByLowestID() {
	s.addUser("user-a", "mario")
	s.addUser("user-b", "luigi")
	s.addScore("score-1", "user-b", 100)
	s.addScore("score-2", "user-a", 200)

	stats, err := s.service.Global(s.ctx)
	s.Require().NoError(err)

	s.Require().NotNil(stats.MostActivePlayer)
	s.Equal(model.UserID("user-a"), stats.MostActivePlayer.UserID)
	s.Equal(1, stats.MostActivePlayer.GamesPlayed)
}

func (s *ServiceSuite) TestGlobalMostActiveUnresolvableUser() {
	s.addUser("user-1", "mario")
	s.addScore("score-1", "user-ghost", 300)

	stats, err := s.service.Global(s.ctx)
	s.Require().NoError(err)

	s.Equal(1, stats.TotalGamesPlayed)
	s.Equal(300, stats.HighestScore)
	s.Nil(stats.MostActivePlayer)
}

func (s *ServiceSuite) TestGlobalCountsRepeatGames() {
	s.addUser("user-1", "mario")
	s.addScore("score-1", "user-1", 100)
	s.addScore("score-2", "user-1", 100)
	s.addScore("score-3", "user-1", 100)

	stats, err := s.service.Global(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, stats.TotalGamesPlayed)
	s.Equal(3, stats.MostActivePlayer.GamesPlayed)
}
