package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the time source for services. In production it is clockwork's real
// clock, in tests a clockwork.FakeClock.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) clockwork.Ticker
	NewTimer(d time.Duration) clockwork.Timer
}

// New returns the system clock
func New() Clock {
	return clockwork.NewRealClock()
}

// StopTimer stops a timer and drains its channel if it already fired
func StopTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
