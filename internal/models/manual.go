package models

import (
	"time"
)

// ManualSession is the live state of the tap-to-count view
type ManualSession struct {
	// ID is the session key
	ID string `json:"id"`

	// Players is the roster in the order players were added
	Players []Player `json:"players"`

	// Active is true while the match clock is running
	Active bool `json:"active"`

	// StartedAt is the start instant of the current run, nil while paused
	StartedAt *time.Time `json:"startedAt,omitempty"`

	// BankedSeconds holds the time accumulated by earlier runs
	BankedSeconds int `json:"bankedSeconds"`

	// ElapsedSeconds is the match time as of the last tick
	ElapsedSeconds int `json:"elapsedSeconds"`

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewManualSession returns an empty session for the given key
func NewManualSession(id string) *ManualSession {
	return &ManualSession{
		ID:      id,
		Players: []Player{},
	}
}

// Started reports whether the match clock has ever run since the last reset
func (s *ManualSession) Started() bool {
	return s.Active || s.ElapsedSeconds > 0 || s.BankedSeconds > 0
}

// TotalFalls returns the sum of falls across the roster
func (s *ManualSession) TotalFalls() int {
	return SumFalls(s.Players)
}

// ElapsedAt computes the match time at the given instant
func (s *ManualSession) ElapsedAt(now time.Time) int {
	elapsed := s.BankedSeconds
	if s.Active && s.StartedAt != nil {
		if run := now.Sub(*s.StartedAt); run > 0 {
			elapsed += int(run / time.Second)
		}
	}
	return elapsed
}

// FindPlayer returns the index of the player with the given ID, or -1
func (s *ManualSession) FindPlayer(id string) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the session
func (s *ManualSession) Clone() *ManualSession {
	if s == nil {
		return nil
	}
	out := *s
	out.Players = ClonePlayers(s.Players)
	if s.StartedAt != nil {
		at := *s.StartedAt
		out.StartedAt = &at
	}
	return &out
}
