package analysis

import (
	"context"
	"testing"

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
}

func (s *RepositoryTestSuite) SetupTest() {
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

func (s *RepositoryTestSuite) TestSaveAndGetAnalysis() {
	a := &models.Analysis{
		ID: "channel-1",
		File: &models.VideoFile{
			Name:        "match.mp4",
			ContentType: "video/mp4",
			Size:        1 << 20,
		},
		Status:   models.AnalysisStatusProcessing,
		Progress: 45,
		Step:     "Detecting players...",
	}
	s.Require().NoError(s.repo.SaveAnalysis(context.Background(), &SaveAnalysisInput{Analysis: a}))

	got, err := s.repo.GetAnalysis(context.Background(), &GetAnalysisInput{SessionID: "channel-1"})
	s.Require().NoError(err)
	s.Require().NotNil(got.File)
	s.Equal("match.mp4", got.File.Name)
	s.Equal("video/mp4", got.File.ContentType)
	s.Equal(int64(1<<20), got.File.Size)
	s.Equal(models.AnalysisStatusProcessing, got.Status)
	s.Equal(45, got.Progress)
	s.Equal("Detecting players...", got.Step)
	s.Nil(got.Result)
}

func (s *RepositoryTestSuite) TestSaveAnalysis_WithResult() {
	a := models.NewAnalysis("channel-1")
	a.Status = models.AnalysisStatusComplete
	a.Result = models.NewSessionResult([]models.Player{{ID: "1", Name: "Player #10", Falls: 3}}, 5400)
	s.Require().NoError(s.repo.SaveAnalysis(context.Background(), &SaveAnalysisInput{Analysis: a}))

	got, err := s.repo.GetAnalysis(context.Background(), &GetAnalysisInput{SessionID: "channel-1"})
	s.Require().NoError(err)
	s.Require().NotNil(got.Result)
	s.Equal(3, got.Result.TotalFalls)
	s.Equal(5400, got.Result.MatchDuration)
}

func (s *RepositoryTestSuite) TestGetAnalysis_NotFound() {
	_, err := s.repo.GetAnalysis(context.Background(), &GetAnalysisInput{SessionID: "missing"})
	s.ErrorIs(err, ErrAnalysisNotFound)
}

func (s *RepositoryTestSuite) TestDeleteAnalysis() {
	s.Require().NoError(s.repo.SaveAnalysis(context.Background(), &SaveAnalysisInput{Analysis: models.NewAnalysis("channel-1")}))
	s.Require().NoError(s.repo.DeleteAnalysis(context.Background(), &DeleteAnalysisInput{SessionID: "channel-1"}))

	_, err := s.repo.GetAnalysis(context.Background(), &GetAnalysisInput{SessionID: "channel-1"})
	s.ErrorIs(err, ErrAnalysisNotFound)
}
