package models

// ContactLevel is the categorical commentary on how often players went down
type ContactLevel string

const (
	ContactLow      ContactLevel = "low"
	ContactModerate ContactLevel = "moderate"
	ContactHigh     ContactLevel = "high"
)

// Label returns the phrase shown on the results screen
func (c ContactLevel) Label() string {
	switch c {
	case ContactLow:
		return "Low-contact match"
	case ContactHigh:
		return "High-contact match"
	default:
		return "Moderate-contact match"
	}
}

// RankedPlayer is one row of the results ranking
type RankedPlayer struct {
	// Rank is the 1-based position
	Rank int

	// Player is the player snapshot
	Player Player

	// Share is falls relative to the most falls, between 0 and 1
	Share float64
}

// Report holds everything the results view derives from a session result
type Report struct {
	// TotalFalls is the sum of the players' falls
	TotalFalls int

	// PlayerCount is the number of players
	PlayerCount int

	// MaxFalls is the highest individual falls with a floor of 1, used for scaling
	MaxFalls int

	// PeakFalls is the highest individual falls, 0 when nobody fell
	PeakFalls int

	// AverageFalls is falls per player with one decimal, "0" without players
	AverageFalls string

	// Duration is the match duration formatted as "Xh Ym Zs" or "Ym Zs"
	Duration string

	// Ranking lists players by falls, most first
	Ranking []RankedPlayer

	// TopPlayer is the player with the most falls, nil when nobody fell
	TopPlayer *Player

	// FallRate is falls per minute with two decimals, "0" for a zero duration
	FallRate string

	// CleanPlayers is the number of players who never fell
	CleanPlayers int

	// Contact is the match quality commentary
	Contact ContactLevel
}

// Summary is the exported JSON document. Field order is part of the format.
type Summary struct {
	MatchDuration string          `json:"matchDuration"`
	TotalFalls    int             `json:"totalFalls"`
	AverageFalls  string          `json:"averageFalls"`
	Players       []SummaryPlayer `json:"players"`
	GeneratedAt   string          `json:"generatedAt"`
}

// SummaryPlayer is one exported player entry
type SummaryPlayer struct {
	Name  string `json:"name"`
	Falls int    `json:"falls"`
}
