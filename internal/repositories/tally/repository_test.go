package tally

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

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Hour,
	})
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

func (s *RepositoryTestSuite) TestSaveAndGetSession() {
	lastFall := s.testNow.Add(-time.Minute)
	session := &models.ManualSession{
		ID: "channel-1",
		Players: []models.Player{
			{ID: "p1", Name: "Alice", Falls: 2, LastFallAt: &lastFall},
			{ID: "p2", Name: "Bob", Falls: 0},
		},
		Active:         true,
		StartedAt:      &s.testNow,
		BankedSeconds:  30,
		ElapsedSeconds: 42,
		UpdatedAt:      s.testNow,
	}

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session})
	s.Require().NoError(err)

	got, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "channel-1"})
	s.Require().NoError(err)
	s.Require().Len(got.Players, 2)

	s.Equal("Alice", got.Players[0].Name)
	s.Equal(2, got.Players[0].Falls)
	s.Require().NotNil(got.Players[0].LastFallAt)
	s.Equal(lastFall.Unix(), got.Players[0].LastFallAt.Unix())
	s.Equal("Bob", got.Players[1].Name)
	s.Nil(got.Players[1].LastFallAt)
	s.True(got.Active)
	s.Equal(30, got.BankedSeconds)
	s.Equal(42, got.ElapsedSeconds)
	s.Require().NotNil(got.StartedAt)
	s.Equal(s.testNow.Unix(), got.StartedAt.Unix())
}

func (s *RepositoryTestSuite) TestGetSession_ReturnsCopy() {
	session := models.NewManualSession("channel-1")
	session.Players = append(session.Players, models.Player{ID: "p1", Name: "Alice"})
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session}))

	session.Players[0].Falls = 9

	got, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "channel-1"})
	s.Require().NoError(err)
	s.Equal(0, got.Players[0].Falls)
}

func (s *RepositoryTestSuite) TestGetSession_NotFound() {
	got, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
	s.Nil(got)
}

func (s *RepositoryTestSuite) TestDeleteSession() {
	session := models.NewManualSession("channel-1")
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session}))

	s.Require().NoError(s.repo.DeleteSession(context.Background(), &DeleteSessionInput{SessionID: "channel-1"}))

	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "channel-1"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RepositoryTestSuite) TestEmptyRosterRoundTrips() {
	session := models.NewManualSession("channel-1")
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session}))

	got, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "channel-1"})
	s.Require().NoError(err)
	s.NotNil(got.Players)
	s.Empty(got.Players)
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.SaveSession(context.Background(), nil))
	s.Error(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: &models.ManualSession{}}))

	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{})
	s.Error(err)
	s.Error(s.repo.DeleteSession(context.Background(), &DeleteSessionInput{}))
}

func (s *RepositoryTestSuite) TestRedisTTL() {
	if !s.useRedis {
		s.T().Skip("TTL only applies to the Redis backend")
	}

	session := models.NewManualSession("channel-1")
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session}))
	s.Equal(time.Hour, s.mr.TTL(sessionKeyPrefix+"channel-1"))

	s.mr.FastForward(2 * time.Hour)
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "channel-1"})
	s.ErrorIs(err, ErrSessionNotFound)
}
