package score

import (
	"context"
	"fmt"
	"sync"
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
}

func (s *ServiceSuite) addUser(id model.UserID, username string) {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{ID: id, Username: username}))
}

func (s *ServiceSuite) TestSubmit() {
	s.addUser("user-1", "mario")

	entry, err := s.service.Submit(s.ctx, "user-1", "mario", 500, 3, 25, 180)
	s.Require().NoError(err)

	s.NotEmpty(entry.ID)
	s.Equal(model.UserID("user-1"), entry.UserID)
	s.Equal("mario", entry.Username)
	s.Equal(500, entry.Score)
	s.Equal(s.clock.CurrentTime, entry.CreatedAt)

	user, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(500, user.HighScore)
	s.Equal(25, user.TotalCoins)
	s.Equal(3, user.LevelsCompleted)
}

func (s *ServiceSuite) TestSubmitUnknownUser() {
	_, err := s.service.Submit(s.ctx, "nonexistent", "ghost", 100, 1, 0, 10)
	s.ErrorIs(err, model.ErrUserNotFound)

	// Nothing lands in the ledger for a rejected submission
	n, err := s.storage.CountScores(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, n)
}

func (s *ServiceSuite) TestSubmitAggregateSequence() {
	s.addUser("user-1", "mario")

	_, err := s.service.Submit(s.ctx, "user-1", "mario", 500, 3, 10, 120)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, "user-1", "mario", 9000, 8, 40, 300)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, "user-1", "mario", 200, 1, 5, 60)
	s.Require().NoError(err)

	user, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)

	// High score and levels never regress, coins always accumulate
	s.Equal(9000, user.HighScore)
	s.Equal(55, user.TotalCoins)
	s.Equal(8, user.LevelsCompleted)
}

func (s *ServiceSuite) TestSubmitConcurrentCoinConservation() {
	s.addUser("user-1", "mario")

	const workers = 20
	const submissions = 10

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < submissions; i++ {
				_, err := s.service.Submit(s.ctx, "user-1", "mario", 100, 1, 4, 30)
				s.NoError(err)
			}
		}()
	}
	wg.Wait()

	user, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(workers*submissions*4, user.TotalCoins)

	n, err := s.storage.CountScores(s.ctx)
	s.Require().NoError(err)
	s.Equal(workers*submissions, n)
}

// conflictingStorage injects aggregate-fold conflicts before letting
// the fold through
type conflictingStorage struct {
	*memory.Storage
	conflicts int
	attempts  int
}

func (c *conflictingStorage) ApplyScoreAggregates(ctx context.Context, id model.UserID, score, coins, level int) (*model.User, error) {
	c.attempts++
	if c.attempts <= c.conflicts {
		return nil, model.ErrAggregateConflict
	}
	return c.Storage.ApplyScoreAggregates(ctx, id, score, coins, level)
}

func (s *ServiceSuite) TestSubmitRetriesTransientConflicts() {
	s.addUser("user-1", "mario")

	store := &conflictingStorage{Storage: s.storage, conflicts: aggregateRetries - 1}
	service := New(store, s.clock, testutil.NopLogger())

	entry, err := service.Submit(s.ctx, "user-1", "mario", 500, 3, 25, 180)
	s.Require().NoError(err)
	s.NotEmpty(entry.ID)
	s.Equal(aggregateRetries, store.attempts)

	user, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(500, user.HighScore)
	s.Equal(25, user.TotalCoins)
}

func (s *ServiceSuite) TestSubmitSurfacesExhaustedConflict() {
	s.addUser("user-1", "mario")

	store := &conflictingStorage{Storage: s.storage, conflicts: aggregateRetries + 1}
	service := New(store, s.clock, testutil.NopLogger())

	_, err := service.Submit(s.ctx, "user-1", "mario", 500, 3, 25, 180)
	s.ErrorIs(err, model.ErrAggregateConflict)
	s.Equal(aggregateRetries, store.attempts)

	// The appended ledger entry stands even though the fold failed
	n, err := s.storage.CountScores(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)

	// Aggregates are untouched; they stay re-derivable from the ledger
	user, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(0, user.HighScore)
	s.Equal(0, user.TotalCoins)
}

func (s *ServiceSuite) TestTopScores() {
	s.addUser("user-1", "mario")
	s.addUser("user-2", "luigi")

	_, _ = s.service.Submit(s.ctx, "user-1", "mario", 500, 3, 0, 0)
	_, _ = s.service.Submit(s.ctx, "user-2", "luigi", 900, 5, 0, 0)
	_, _ = s.service.Submit(s.ctx, "user-1", "mario", 700, 4, 0, 0)

	top, err := s.service.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal(900, top[0].Score)
	s.Equal(700, top[1].Score)
	s.Equal(500, top[2].Score)
}

func (s *ServiceSuite) TestTopScoresTiesKeepSubmissionOrder() {
	s.addUser("user-1", "mario")
	s.addUser("user-2", "luigi")
	s.addUser("user-3", "peach")

	first, _ := s.service.Submit(s.ctx, "user-1", "mario", 500, 1, 0, 0)
	second, _ := s.service.Submit(s.ctx, "user-2", "luigi", 500, 1, 0, 0)
	third, _ := s.service.Submit(s.ctx, "user-3", "peach", 500, 1, 0, 0)

	top, err := s.service.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal(first.ID, top[0].ID)
	s.Equal(second.ID, top[1].ID)
	s.Equal(third.ID, top[2].ID)
}

func (s *ServiceSuite) TestTopScoresDefaultLimit() {
	s.addUser("user-1", "mario")

	for i := 0; i < DefaultLimit+5; i++ {
		_, err := s.service.Submit(s.ctx, "user-1", "mario", 100+i, 1, 0, 0)
		s.Require().NoError(err)
	}

	top, err := s.service.TopScores(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(top, DefaultLimit)
}

func (s *ServiceSuite) TestTopScoresLimitTrims() {
	s.addUser("user-1", "mario")

	for i := 0; i < 5; i++ {
		_, err := s.service.Submit(s.ctx, "user-1", "mario", 100*i, 1, 0, 0)
		s.Require().NoError(err)
	}

	top, err := s.service.TopScores(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(400, top[0].Score)
	s.Equal(300, top[1].Score)
}

func (s *ServiceSuite) TestUserScores() {
	s.addUser("user-1", "mario")
	s.addUser("user-2", "luigi")

	_, _ = s.service.Submit(s.ctx, "user-1", "mario", 500, 3, 0, 0)
	_, _ = s.service.Submit(s.ctx, "user-2", "luigi", 900, 5, 0, 0)
	_, _ = s.service.Submit(s.ctx, "user-1", "mario", 700, 4, 0, 0)

	scores, err := s.service.UserScores(s.ctx, "user-1", 10)
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	for _, entry := range scores {
		s.Equal(model.UserID("user-1"), entry.UserID)
	}
	s.Equal(700, scores[0].Score)
	s.Equal(500, scores[1].Score)
}

func (s *ServiceSuite) TestUserScoresEmpty() {
	s.addUser("user-1", "mario")

	scores, err := s.service.UserScores(s.ctx, "user-1", 10)
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *ServiceSuite) TestSubmitEntriesHaveDistinctIDs() {
	s.addUser("user-1", "mario")

	seen := map[model.ScoreID]bool{}
	for i := 0; i < 10; i++ {
		entry, err := s.service.Submit(s.ctx, "user-1", "mario", i, 1, 0, 0)
		s.Require().NoError(err, fmt.Sprintf("submission %d", i))
		s.False(seen[entry.ID])
		seen[entry.ID] = true
	}
}
