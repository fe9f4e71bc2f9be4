package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMode_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from     Mode
		to       Mode
		expected bool
	}{
		{from: ModeLanding, to: ModeManual, expected: true},
		{from: ModeLanding, to: ModeAutomatic, expected: true},
		{from: ModeLanding, to: ModeResults, expected: false},
		{from: ModeManual, to: ModeResults, expected: true},
		{from: ModeManual, to: ModeAutomatic, expected: false},
		{from: ModeAutomatic, to: ModeResults, expected: true},
		{from: ModeAutomatic, to: ModeLanding, expected: true},
		{from: ModeResults, to: ModeLanding, expected: true},
		{from: ModeResults, to: ModeManual, expected: false},
		{from: Mode("bogus"), to: ModeLanding, expected: false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestMode_IsCounting(t *testing.T) {
	assert.True(t, ModeManual.IsCounting())
	assert.True(t, ModeAutomatic.IsCounting())
	assert.False(t, ModeLanding.IsCounting())
	assert.False(t, ModeResults.IsCounting())
	assert.False(t, Mode("bogus").IsValid())
}

func TestManualSession_ElapsedAt(t *testing.T) {
	start := time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)
	session := NewManualSession("s")
	session.BankedSeconds = 30

	assert.Equal(t, 30, session.ElapsedAt(start.Add(time.Hour)), "paused clock does not run")

	session.Active = true
	session.StartedAt = &start
	assert.Equal(t, 95, session.ElapsedAt(start.Add(65*time.Second+900*time.Millisecond)))
	assert.Equal(t, 30, session.ElapsedAt(start.Add(-time.Second)))
}

func TestSessionResult_CloneIsDeep(t *testing.T) {
	at := time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)
	result := NewSessionResult([]Player{{ID: "a", Name: "A", Falls: 2, LastFallAt: &at}}, -5)

	assert.Equal(t, 0, result.MatchDuration)
	assert.Equal(t, 2, result.TotalFalls)

	clone := result.Clone()
	clone.Players[0].Falls = 9
	*clone.Players[0].LastFallAt = at.Add(time.Hour)

	assert.Equal(t, 2, result.Players[0].Falls)
	assert.Equal(t, at, *result.Players[0].LastFallAt)
}

func TestContactLevel_Label(t *testing.T) {
	assert.Equal(t, "Low-contact match", ContactLow.Label())
	assert.Equal(t, "Moderate-contact match", ContactModerate.Label())
	assert.Equal(t, "High-contact match", ContactHigh.Label())
}

func TestIsVideo(t *testing.T) {
	assert.True(t, IsVideo("video/mp4"))
	assert.False(t, IsVideo("image/png"))
	assert.False(t, IsVideo(""))
}
