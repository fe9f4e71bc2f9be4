package models

import (
	"time"
)

// SessionResult is the finalized record handed to the results view
type SessionResult struct {
	// Players is the roster in the order it was built
	Players []Player `json:"players"`

	// MatchDuration is the elapsed match time in seconds
	MatchDuration int `json:"matchDuration"`

	// TotalFalls is the sum of the players' falls
	TotalFalls int `json:"totalFalls"`
}

// NewSessionResult builds a result from a roster, computing the total
func NewSessionResult(players []Player, duration int) *SessionResult {
	if duration < 0 {
		duration = 0
	}
	roster := ClonePlayers(players)
	return &SessionResult{
		Players:       roster,
		MatchDuration: duration,
		TotalFalls:    SumFalls(roster),
	}
}

// Clone returns a deep copy of the result
func (r *SessionResult) Clone() *SessionResult {
	if r == nil {
		return nil
	}
	return &SessionResult{
		Players:       ClonePlayers(r.Players),
		MatchDuration: r.MatchDuration,
		TotalFalls:    r.TotalFalls,
	}
}

// ViewState is the mode controller's state for one session key
type ViewState struct {
	// SessionID is the key the state belongs to (a channel, or the local terminal)
	SessionID string `json:"sessionId"`

	// Mode is the view currently shown
	Mode Mode `json:"mode"`

	// Result is the last submitted session result, only set in results mode
	Result *SessionResult `json:"result,omitempty"`

	// UpdatedAt is when the state last changed
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the state
func (v *ViewState) Clone() *ViewState {
	if v == nil {
		return nil
	}
	out := *v
	out.Result = v.Result.Clone()
	return &out
}
