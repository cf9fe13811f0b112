package timing

// Time pairs an optional real-time and game-time value for one logical time
// point. A nil entry means no time was recorded under that method; it is not
// the same value as an explicit zero span, and both states survive copying.
type Time struct {
	RealTime *TimeSpan
	GameTime *TimeSpan
}

// Get returns the span recorded under the given method, or nil.
func (t Time) Get(m Method) *TimeSpan {
	if m == GameTime {
		return t.GameTime
	}
	return t.RealTime
}

// WithMethod returns a copy of t with the given method's entry replaced.
// The stored pointer never aliases the argument.
func (t Time) WithMethod(m Method, ts *TimeSpan) Time {
	out := t.Clone()
	var v *TimeSpan
	if ts != nil {
		v = (*ts).Ptr()
	}
	if m == GameTime {
		out.GameTime = v
	} else {
		out.RealTime = v
	}
	return out
}

// Clone deep-copies both entries so that mutating the copy cannot touch the
// original's storage.
func (t Time) Clone() Time {
	var out Time
	if t.RealTime != nil {
		out.RealTime = (*t.RealTime).Ptr()
	}
	if t.GameTime != nil {
		out.GameTime = (*t.GameTime).Ptr()
	}
	return out
}

// IsEmpty reports whether no time is recorded under either method.
func (t Time) IsEmpty() bool {
	return t.RealTime == nil && t.GameTime == nil
}
