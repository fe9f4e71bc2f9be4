package results

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
)

type ResultsServiceTestSuite struct {
	suite.Suite
	clock          *clockwork.FakeClock
	resultsService Service
	ctx            context.Context

	// Test data
	testTime   time.Time
	mockResult *models.SessionResult
}

func (s *ResultsServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 6, 14, 17, 0, 0, 123000000, time.FixedZone("CEST", 2*60*60))
	s.clock = clockwork.NewFakeClockAt(s.testTime)
	s.mockResult = models.NewSessionResult([]models.Player{
		{ID: "1", Name: "Player #10", Falls: 3},
		{ID: "2", Name: "Player #7", Falls: 1},
		{ID: "3", Name: "Player #23", Falls: 2},
		{ID: "4", Name: "Player #15", Falls: 0},
		{ID: "5", Name: "Player #9", Falls: 4},
	}, 5400)

	svc, err := New(&Config{Clock: s.clock})
	s.Require().NoError(err)
	s.resultsService = svc
}

func TestResultsServiceSuite(t *testing.T) {
	suite.Run(t, new(ResultsServiceTestSuite))
}

func (s *ResultsServiceTestSuite) report(result *models.SessionResult) *models.Report {
	output, err := s.resultsService.GetReport(s.ctx, &GetReportInput{Result: result})
	s.Require().NoError(err)
	return output.Report
}

func (s *ResultsServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilClock)
}

func (s *ResultsServiceTestSuite) TestGetReport_MockMatch() {
	report := s.report(s.mockResult)

	s.Equal(10, report.TotalFalls)
	s.Equal(5, report.PlayerCount)
	s.Equal(4, report.MaxFalls)
	s.Equal(4, report.PeakFalls)
	s.Equal("2.0", report.AverageFalls)
	s.Equal("1h 30m 0s", report.Duration)
	s.Equal("0.11", report.FallRate)
	s.Equal(1, report.CleanPlayers)
	s.Equal(models.ContactModerate, report.Contact)

	s.Require().NotNil(report.TopPlayer)
	s.Equal("Player #9", report.TopPlayer.Name)

	s.Require().Len(report.Ranking, 5)
	names := make([]string, 0, len(report.Ranking))
	for i, row := range report.Ranking {
		s.Equal(i+1, row.Rank)
		names = append(names, row.Player.Name)
	}
	s.Equal([]string{"Player #9", "Player #10", "Player #23", "Player #7", "Player #15"}, names)
	s.InDelta(1.0, report.Ranking[0].Share, 1e-9)
	s.InDelta(0.75, report.Ranking[1].Share, 1e-9)
	s.InDelta(0.0, report.Ranking[4].Share, 1e-9)
}

func (s *ResultsServiceTestSuite) TestGetReport_TwoPlayers() {
	result := models.NewSessionResult([]models.Player{
		{ID: "a", Name: "A", Falls: 2},
		{ID: "b", Name: "B", Falls: 1},
	}, 90)

	report := s.report(result)
	s.Equal(3, report.TotalFalls)
	s.Equal("1.5", report.AverageFalls)
	s.Equal("1m 30s", report.Duration)
	s.Equal("2.00", report.FallRate)
	s.Equal(models.ContactModerate, report.Contact)
}

func (s *ResultsServiceTestSuite) TestGetReport_TiesKeepRosterOrder() {
	result := models.NewSessionResult([]models.Player{
		{ID: "a", Name: "A", Falls: 1},
		{ID: "b", Name: "B", Falls: 2},
		{ID: "c", Name: "C", Falls: 1},
		{ID: "d", Name: "D", Falls: 2},
	}, 60)

	report := s.report(result)
	s.Equal("B", report.Ranking[0].Player.Name)
	s.Equal("D", report.Ranking[1].Player.Name)
	s.Equal("A", report.Ranking[2].Player.Name)
	s.Equal("C", report.Ranking[3].Player.Name)
	s.Equal("A", result.Players[0].Name, "input order is untouched")
}

func (s *ResultsServiceTestSuite) TestGetReport_NobodyFell() {
	result := models.NewSessionResult([]models.Player{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	}, 0)

	report := s.report(result)
	s.Equal(1, report.MaxFalls)
	s.Equal(0, report.PeakFalls)
	s.Nil(report.TopPlayer)
	s.Equal("0", report.FallRate)
	s.Equal("0.0", report.AverageFalls)
	s.Equal(2, report.CleanPlayers)
	s.Equal(models.ContactLow, report.Contact)
	s.InDelta(0.0, report.Ranking[0].Share, 1e-9)
}

func (s *ResultsServiceTestSuite) TestGetReport_NoPlayers() {
	report := s.report(models.NewSessionResult(nil, 120))
	s.Equal("0", report.AverageFalls)
	s.Equal(0, report.PlayerCount)
	s.Empty(report.Ranking)
	s.Nil(report.TopPlayer)
	s.Equal(models.ContactModerate, report.Contact)
}

func (s *ResultsServiceTestSuite) TestGetReport_ContactLevels() {
	testCases := []struct {
		name     string
		falls    []int
		expected models.ContactLevel
	}{
		{name: "fewer falls than players", falls: []int{0, 1, 0}, expected: models.ContactLow},
		{name: "one fall each", falls: []int{1, 1, 1}, expected: models.ContactModerate},
		{name: "two falls each", falls: []int{2, 2, 2}, expected: models.ContactModerate},
		{name: "more than two each", falls: []int{3, 2, 2}, expected: models.ContactHigh},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			players := make([]models.Player, 0, len(tc.falls))
			for i, f := range tc.falls {
				players = append(players, models.Player{ID: string(rune('a' + i)), Name: "P", Falls: f})
			}
			s.Equal(tc.expected, s.report(models.NewSessionResult(players, 60)).Contact)
		})
	}
}

func (s *ResultsServiceTestSuite) TestGetReport_AverageRoundsTiesUp() {
	result := models.NewSessionResult([]models.Player{
		{ID: "a", Name: "A", Falls: 1},
		{ID: "b", Name: "B", Falls: 0},
		{ID: "c", Name: "C", Falls: 0},
		{ID: "d", Name: "D", Falls: 0},
	}, 60)

	s.Equal("0.3", s.report(result).AverageFalls)
}

func (s *ResultsServiceTestSuite) TestGetReport_NilResult() {
	_, err := s.resultsService.GetReport(s.ctx, &GetReportInput{})
	s.ErrorIs(err, ErrNilResult)
}

func (s *ResultsServiceTestSuite) TestExport_Document() {
	output, err := s.resultsService.Export(s.ctx, &ExportInput{Result: s.mockResult})
	s.Require().NoError(err)

	expected := `{
  "matchDuration": "1h 30m 0s",
  "totalFalls": 10,
  "averageFalls": "2.0",
  "players": [
    {
      "name": "Player #10",
      "falls": 3
    },
    {
      "name": "Player #7",
      "falls": 1
    },
    {
      "name": "Player #23",
      "falls": 2
    },
    {
      "name": "Player #15",
      "falls": 0
    },
    {
      "name": "Player #9",
      "falls": 4
    }
  ],
  "generatedAt": "2025-06-14T15:00:00.123Z"
}`
	s.Equal(expected, string(output.Data))
	s.Equal("footslip-results-1749913200123.json", output.FileName)
	s.Equal(10, output.Summary.TotalFalls)
}

func (s *ResultsServiceTestSuite) TestExport_EmptyRoster() {
	output, err := s.resultsService.Export(s.ctx, &ExportInput{Result: &models.SessionResult{MatchDuration: 30}})
	s.Require().NoError(err)

	expected := `{
  "matchDuration": "0m 30s",
  "totalFalls": 0,
  "averageFalls": "0",
  "players": [],
  "generatedAt": "2025-06-14T15:00:00.123Z"
}`
	s.Equal(expected, string(output.Data))
}

func (s *ResultsServiceTestSuite) TestExport_TotalFromPlayers() {
	result := &models.SessionResult{
		Players:       []models.Player{{ID: "a", Name: "A & <B>", Falls: 2}},
		MatchDuration: 60,
		TotalFalls:    7,
	}

	output, err := s.resultsService.Export(s.ctx, &ExportInput{Result: result})
	s.Require().NoError(err)
	s.Equal(2, output.Summary.TotalFalls)
	s.Contains(string(output.Data), `"name": "A & <B>"`)
}

func (s *ResultsServiceTestSuite) TestSaveExport() {
	dir := filepath.Join(s.T().TempDir(), "exports")

	output, err := s.resultsService.SaveExport(s.ctx, &SaveExportInput{
		Result: s.mockResult,
		Dir:    dir,
	})
	s.Require().NoError(err)
	s.Equal(filepath.Join(dir, "footslip-results-1749913200123.json"), output.Path)

	data, err := os.ReadFile(output.Path)
	s.Require().NoError(err)
	s.Contains(string(data), `"totalFalls": 10`)
}

func (s *ResultsServiceTestSuite) TestSaveExport_EmptyDir() {
	_, err := s.resultsService.SaveExport(s.ctx, &SaveExportInput{Result: s.mockResult})
	s.ErrorIs(err, ErrEmptyDir)
}
