package models

import (
	"time"
)

// Player is one tracked player and their fall tally
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Falls is the number of recorded falls, never negative
	Falls int `json:"falls"`

	// LastFallAt is when the player last went down, nil if never or after a reset
	LastFallAt *time.Time `json:"lastFallAt,omitempty"`
}

// Clone returns a copy of the player that shares no memory with the original
func (p Player) Clone() Player {
	if p.LastFallAt != nil {
		at := *p.LastFallAt
		p.LastFallAt = &at
	}
	return p
}

// ClonePlayers copies a roster, keeping its order
func ClonePlayers(players []Player) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		out = append(out, p.Clone())
	}
	return out
}

// SumFalls returns the total number of falls across a roster
func SumFalls(players []Player) int {
	total := 0
	for _, p := range players {
		total += p.Falls
	}
	return total
}
