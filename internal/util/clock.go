package util

import "time"

// Clock abstracts wall-clock time so views can be tested with fixed
// timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
