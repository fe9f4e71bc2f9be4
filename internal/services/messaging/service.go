package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/KirkDiggler/footslip/internal/services/detection"
	"github.com/KirkDiggler/footslip/internal/services/mode"
	"github.com/KirkDiggler/footslip/internal/services/results"
	"github.com/KirkDiggler/footslip/internal/services/tally"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetFallMessage returns a line for a freshly recorded fall
func (s *service) GetFallMessage(ctx context.Context, input *GetFallMessageInput) (*GetFallMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneFunny
	}

	name := input.PlayerName
	if tone == ToneNeutral {
		return &GetFallMessageOutput{
			Message: fmt.Sprintf("Fall recorded for %s (%d total).", name, input.Falls),
			Tone:    tone,
		}, nil
	}

	var messages []string
	switch {
	case input.Falls <= 1:
		messages = []string{
			fmt.Sprintf("%s hits the turf. First one of the day!", name),
			fmt.Sprintf("Down goes %s! The grass looked comfy.", name),
			fmt.Sprintf("%s takes a tumble. The referee is unimpressed.", name),
		}
	case input.Falls < 4:
		messages = []string{
			fmt.Sprintf("%s is down again. That's %d.", name, input.Falls),
			fmt.Sprintf("Someone check the studs on %s's boots. Fall number %d.", name, input.Falls),
			fmt.Sprintf("%s and gravity are getting acquainted: %d falls.", name, input.Falls),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s has fallen %d times. Award-worthy commitment.", name, input.Falls),
			fmt.Sprintf("%d falls for %s. The physio has stopped running on.", input.Falls, name),
			fmt.Sprintf("%s again! %d falls and counting.", name, input.Falls),
		}
	}

	return &GetFallMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetStatusMessage returns a line describing the current view
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch input.Mode {
	case models.ModeLanding:
		message = "Track every tumble. Count falls live or upload a match video."
	case models.ModeManual:
		if input.Active {
			message = "Match is live. Record falls as they happen."
		} else {
			message = "Add the players, then start the match clock."
		}
	case models.ModeAutomatic:
		switch input.AnalysisStatus {
		case models.AnalysisStatusProcessing:
			message = "Analyzing the match video..."
		case models.AnalysisStatusComplete:
			message = "Analysis complete! Preparing the results..."
		default:
			message = "Upload a football match video and we'll count the falls."
		}
	case models.ModeResults:
		message = "Here's how the match went."
	default:
		message = "FootSlip is ready."
	}

	return &GetStatusMessageOutput{Message: message}, nil
}

// GetResultsMessage returns the headline for a finished match
func (s *service) GetResultsMessage(ctx context.Context, input *GetResultsMessageInput) (*GetResultsMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title := input.Contact.Label()
	if input.TopPlayerName == "" {
		return &GetResultsMessageOutput{
			Title:   title,
			Message: "Nobody went down. Everyone stayed on their feet!",
		}, nil
	}

	var messages []string
	switch input.Contact {
	case models.ContactHigh:
		messages = []string{
			fmt.Sprintf("%d falls in total. %s led the way to the ground.", input.TotalFalls, input.TopPlayerName),
			fmt.Sprintf("A bruising affair. %s spent more time on the grass than anyone.", input.TopPlayerName),
		}
	case models.ContactLow:
		messages = []string{
			fmt.Sprintf("A tidy match with %d falls. %s still found a way down.", input.TotalFalls, input.TopPlayerName),
			fmt.Sprintf("Mostly upright football. %s tops the tally.", input.TopPlayerName),
		}
	default:
		messages = []string{
			fmt.Sprintf("%d falls all told. %s tops the tally.", input.TotalFalls, input.TopPlayerName),
			fmt.Sprintf("A fair share of tumbles, and %s took the most.", input.TopPlayerName),
		}
	}

	return &GetResultsMessageOutput{
		Title:   title,
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var message string
	switch {
	case errors.Is(input.Err, tally.ErrNoPlayers):
		message = "Add at least one player before starting the match."
	case errors.Is(input.Err, tally.ErrPlayerNotFound):
		message = "That player is no longer on the roster."
	case errors.Is(input.Err, detection.ErrNoFile):
		message = "Select a video file first."
	case errors.Is(input.Err, detection.ErrAnalysisInProgress):
		message = "The analysis is already running. Hang tight!"
	case errors.Is(input.Err, mode.ErrInvalidTransition):
		message = "That isn't available from this screen. Go back home and try again."
	case errors.Is(input.Err, mode.ErrNilResult), errors.Is(input.Err, results.ErrNilResult):
		message = "There are no results to show yet."
	default:
		message = "Something went wrong. Please try again."
	}

	return &GetErrorMessageOutput{Message: message}, nil
}
