package models

// Mode is one of the four mutually exclusive views
type Mode string

const (
	// ModeLanding is the initial screen
	ModeLanding Mode = "landing"

	// ModeManual is the tap-to-count screen
	ModeManual Mode = "manual"

	// ModeAutomatic is the video upload screen
	ModeAutomatic Mode = "automatic"

	// ModeResults is the results and export screen
	ModeResults Mode = "results"
)

var transitions = map[Mode][]Mode{
	ModeLanding:   {ModeLanding, ModeManual, ModeAutomatic},
	ModeManual:    {ModeLanding, ModeResults},
	ModeAutomatic: {ModeLanding, ModeResults},
	ModeResults:   {ModeLanding},
}

// IsValid reports whether m is a known mode
func (m Mode) IsValid() bool {
	_, ok := transitions[m]
	return ok
}

// IsCounting reports whether the mode produces a session result
func (m Mode) IsCounting() bool {
	return m == ModeManual || m == ModeAutomatic
}

// CanTransitionTo reports whether the controller may move from m to next
func (m Mode) CanTransitionTo(next Mode) bool {
	for _, allowed := range transitions[m] {
		if allowed == next {
			return true
		}
	}
	return false
}
