package ports

import "time"

// Clock supplies "now" so time-dependent rules (timelocks, poll stages) are
// testable. Production wiring uses SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
