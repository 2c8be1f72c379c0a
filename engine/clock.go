package engine

import "time"

// Clock abstracts the loop's time source so scheduling is testable
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real monotonic clock
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for the given duration
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
