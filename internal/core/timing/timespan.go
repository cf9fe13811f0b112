package timing

import "time"

// TimeSpan is a length of time with nanosecond resolution. Stored run data
// only carries millisecond granularity; the extra resolution exists so that
// intermediate arithmetic never loses precision.
type TimeSpan time.Duration

// FromMilliseconds builds a TimeSpan from a millisecond count.
func FromMilliseconds(ms int64) TimeSpan {
	return TimeSpan(time.Duration(ms) * time.Millisecond)
}

// FromDuration converts a standard library duration.
func FromDuration(d time.Duration) TimeSpan {
	return TimeSpan(d)
}

func (ts TimeSpan) Duration() time.Duration {
	return time.Duration(ts)
}

// Milliseconds reports the span truncated to whole milliseconds.
func (ts TimeSpan) Milliseconds() int64 {
	return time.Duration(ts).Milliseconds()
}

func (ts TimeSpan) Seconds() float64 {
	return time.Duration(ts).Seconds()
}

func (ts TimeSpan) IsZero() bool {
	return ts == 0
}

func (ts TimeSpan) IsNegative() bool {
	return ts < 0
}

// SaturatingSub subtracts other from ts, flooring the result at zero. Deltas
// against a reference that lies ahead of the value must display as zero, not
// as negative time.
func (ts TimeSpan) SaturatingSub(other TimeSpan) TimeSpan {
	if d := ts - other; d > 0 {
		return d
	}
	return 0
}

// Ptr returns a pointer to a copy of ts, for the optional-time fields on
// segments where nil means "no recorded time".
func (ts TimeSpan) Ptr() *TimeSpan {
	v := ts
	return &v
}
