package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/KirkDiggler/footslip/internal/services/detection"
	"github.com/KirkDiggler/footslip/internal/services/mode"
	"github.com/KirkDiggler/footslip/internal/services/results"
	"github.com/KirkDiggler/footslip/internal/services/tally"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	messagingService Service
	ctx              context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := New(&Config{Seed: 42})
	s.Require().NoError(err)
	s.messagingService = svc
	s.ctx = context.Background()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGetFallMessage_MentionsPlayer() {
	for _, falls := range []int{1, 2, 5} {
		output, err := s.messagingService.GetFallMessage(s.ctx, &GetFallMessageInput{
			PlayerName: "Marta",
			Falls:      falls,
		})
		s.Require().NoError(err)
		s.Contains(output.Message, "Marta")
		s.Equal(ToneFunny, output.Tone)
	}
}

func (s *MessagingServiceTestSuite) TestGetFallMessage_Neutral() {
	output, err := s.messagingService.GetFallMessage(s.ctx, &GetFallMessageInput{
		PlayerName: "Marta",
		Falls:      3,
		Tone:       ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("Fall recorded for Marta (3 total).", output.Message)
}

func (s *MessagingServiceTestSuite) TestGetFallMessage_SameSeedSameMessages() {
	other, err := New(&Config{Seed: 42})
	s.Require().NoError(err)

	for i := 0; i < 5; i++ {
		input := &GetFallMessageInput{PlayerName: "Jo", Falls: i + 1}
		a, err := s.messagingService.GetFallMessage(s.ctx, input)
		s.Require().NoError(err)
		b, err := other.GetFallMessage(s.ctx, input)
		s.Require().NoError(err)
		s.Equal(a.Message, b.Message)
	}
}

func (s *MessagingServiceTestSuite) TestGetStatusMessage() {
	testCases := []struct {
		input    *GetStatusMessageInput
		contains string
	}{
		{input: &GetStatusMessageInput{Mode: models.ModeLanding}, contains: "Track every tumble"},
		{input: &GetStatusMessageInput{Mode: models.ModeManual}, contains: "start the match clock"},
		{input: &GetStatusMessageInput{Mode: models.ModeManual, Active: true}, contains: "Match is live"},
		{input: &GetStatusMessageInput{Mode: models.ModeAutomatic, AnalysisStatus: models.AnalysisStatusProcessing}, contains: "Analyzing"},
		{input: &GetStatusMessageInput{Mode: models.ModeResults}, contains: "how the match went"},
	}

	for _, tc := range testCases {
		output, err := s.messagingService.GetStatusMessage(s.ctx, tc.input)
		s.Require().NoError(err)
		s.Contains(output.Message, tc.contains)
	}
}

func (s *MessagingServiceTestSuite) TestGetResultsMessage() {
	output, err := s.messagingService.GetResultsMessage(s.ctx, &GetResultsMessageInput{
		Contact:       models.ContactHigh,
		TotalFalls:    12,
		TopPlayerName: "Player #9",
	})
	s.Require().NoError(err)
	s.Equal("High-contact match", output.Title)
	s.Contains(output.Message, "Player #9")

	output, err = s.messagingService.GetResultsMessage(s.ctx, &GetResultsMessageInput{
		Contact: models.ContactLow,
	})
	s.Require().NoError(err)
	s.Equal("Low-contact match", output.Title)
	s.Contains(output.Message, "Nobody went down")
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	testCases := []struct {
		err      error
		expected string
	}{
		{err: tally.ErrNoPlayers, expected: "Add at least one player before starting the match."},
		{err: fmt.Errorf("wrapped: %w", detection.ErrNoFile), expected: "Select a video file first."},
		{err: mode.ErrInvalidTransition, expected: "That isn't available from this screen. Go back home and try again."},
		{err: fmt.Errorf("failed to export results: %w", results.ErrNilResult), expected: "There are no results to show yet."},
		{err: errors.New("boom"), expected: "Something went wrong. Please try again."},
	}

	for _, tc := range testCases {
		output, err := s.messagingService.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tc.err})
		s.Require().NoError(err)
		s.Equal(tc.expected, output.Message)
	}

	_, err := s.messagingService.GetErrorMessage(s.ctx, &GetErrorMessageInput{})
	s.Error(err)
}
