package session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	useRedis bool
	mr       *miniredis.Miniredis
	client   *redis.Client
	repo     Repository
	testNow  time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	if !s.useRedis {
		s.repo = NewMemory()
		return
	}

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	repo, err := NewRedis(&Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.client != nil {
		s.client.Close()
		s.client = nil
	}
	if s.mr != nil {
		s.mr.Close()
		s.mr = nil
	}
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{useRedis: true})
}

func (s *RepositoryTestSuite) TestSaveAndGetState() {
	state := &models.ViewState{
		SessionID: "channel-1",
		Mode:      models.ModeResults,
		Result: models.NewSessionResult([]models.Player{
			{ID: "1", Name: "A", Falls: 2},
			{ID: "2", Name: "B", Falls: 1},
		}, 120),
		UpdatedAt: s.testNow,
	}

	s.Require().NoError(s.repo.SaveState(context.Background(), &SaveStateInput{State: state}))

	got, err := s.repo.GetState(context.Background(), &GetStateInput{SessionID: "channel-1"})
	s.Require().NoError(err)
	s.Equal(models.ModeResults, got.Mode)
	s.Require().NotNil(got.Result)
	s.Equal(3, got.Result.TotalFalls)
	s.Equal(120, got.Result.MatchDuration)
	s.Equal("A", got.Result.Players[0].Name)
	s.Equal(s.testNow.Unix(), got.UpdatedAt.Unix())
}

func (s *RepositoryTestSuite) TestSaveState_WithoutResult() {
	state := &models.ViewState{SessionID: "channel-1", Mode: models.ModeManual}
	s.Require().NoError(s.repo.SaveState(context.Background(), &SaveStateInput{State: state}))

	got, err := s.repo.GetState(context.Background(), &GetStateInput{SessionID: "channel-1"})
	s.Require().NoError(err)
	s.Equal(models.ModeManual, got.Mode)
	s.Nil(got.Result)
}

func (s *RepositoryTestSuite) TestGetState_NotFound() {
	_, err := s.repo.GetState(context.Background(), &GetStateInput{SessionID: "missing"})
	s.ErrorIs(err, ErrStateNotFound)
}

func (s *RepositoryTestSuite) TestDeleteState() {
	state := &models.ViewState{SessionID: "channel-1", Mode: models.ModeAutomatic}
	s.Require().NoError(s.repo.SaveState(context.Background(), &SaveStateInput{State: state}))
	s.Require().NoError(s.repo.DeleteState(context.Background(), &DeleteStateInput{SessionID: "channel-1"}))

	_, err := s.repo.GetState(context.Background(), &GetStateInput{SessionID: "channel-1"})
	s.ErrorIs(err, ErrStateNotFound)
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.SaveState(context.Background(), &SaveStateInput{}))
	s.Error(s.repo.SaveState(context.Background(), &SaveStateInput{State: &models.ViewState{}}))
	_, err := s.repo.GetState(context.Background(), nil)
	s.Error(err)
	s.Error(s.repo.DeleteState(context.Background(), &DeleteStateInput{}))
}
