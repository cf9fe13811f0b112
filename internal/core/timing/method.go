package timing

import (
	"fmt"
	"strings"
)

// Method selects which of the two parallel timebases a time value refers to.
// Every comparison and attempt time is tracked once per method.
type Method int

const (
	RealTime Method = iota
	GameTime
)

func (m Method) String() string {
	if m == GameTime {
		return "game"
	}
	return "real"
}

// ParseMethod parses a user-facing timing method name such as "real" or
// "game". It is lenient about the common long forms.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "real", "realtime", "real-time":
		return RealTime, nil
	case "game", "gametime", "game-time":
		return GameTime, nil
	}
	return RealTime, fmt.Errorf("unknown timing method %q (expected real or game)", s)
}
