package timing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultPrecision is the fractional-second digit count used when none is
// configured.
const DefaultPrecision = 3

// Parse errors distinguish bad syntax from negative values so callers can
// flag offending input precisely. Neither ever mutates anything.
var (
	ErrMalformedTime = errors.New("malformed time literal")
	ErrNegativeTime  = errors.New("negative time literal")
)

// maxSeconds keeps the parsed total well inside the nanosecond range of a
// TimeSpan.
const maxSeconds = int64(time.Duration(1<<63-1) / time.Second)

// Parse reads an H:MM:SS.mmm style literal into a TimeSpan. Accepted shapes
// are "SS", "SS.fff", "M:SS", "M:SS.fff", "H:MM:SS" and "H:MM:SS.fff"; the
// leading component may exceed its usual range ("90" is ninety seconds) but
// later components must stay below 60. Negative input is rejected, never
// normalized.
func Parse(text string) (TimeSpan, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrMalformedTime)
	}
	if strings.HasPrefix(trimmed, "-") {
		return 0, fmt.Errorf("%w: %q", ErrNegativeTime, text)
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q has too many components", ErrMalformedTime, text)
	}

	secPart := parts[len(parts)-1]
	secStr, fracStr, hasFrac := strings.Cut(secPart, ".")

	var total int64
	for i, p := range parts[:len(parts)-1] {
		v, err := parseComponent(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTime, text)
		}
		if i > 0 && v >= 60 {
			return 0, fmt.Errorf("%w: %q component out of range", ErrMalformedTime, text)
		}
		total = total*60 + v
	}

	sec, err := parseComponent(secStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, text)
	}
	if len(parts) > 1 && sec >= 60 {
		return 0, fmt.Errorf("%w: %q seconds out of range", ErrMalformedTime, text)
	}
	total = total*60 + sec
	if total > maxSeconds {
		return 0, fmt.Errorf("%w: %q exceeds the representable range", ErrMalformedTime, text)
	}

	var nanos int64
	if hasFrac {
		nanos, err = parseFraction(fracStr)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTime, text)
		}
	}

	return TimeSpan(time.Duration(total)*time.Second + time.Duration(nanos)), nil
}

func parseComponent(s string) (int64, error) {
	if s == "" || len(s) > 9 {
		return 0, ErrMalformedTime
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrMalformedTime
		}
	}
	return strconv.ParseInt(s, 10, 64)
}

// parseFraction converts the digits after the decimal point to nanoseconds,
// truncating anything finer.
func parseFraction(s string) (int64, error) {
	if s == "" {
		return 0, ErrMalformedTime
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrMalformedTime
		}
	}
	if len(s) > 9 {
		s = s[:9]
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	for i := len(s); i < 9; i++ {
		v *= 10
	}
	return v, nil
}

// Formatter renders TimeSpans deterministically with a fixed fractional
// precision. Formatting and Parse round-trip exactly at millisecond
// granularity for the default precision.
type Formatter struct {
	precision int
}

// NewFormatter builds a formatter writing the given number of fractional
// digits, clamped to [0, 9].
func NewFormatter(precision int) *Formatter {
	if precision < 0 {
		precision = 0
	}
	if precision > 9 {
		precision = 9
	}
	return &Formatter{precision: precision}
}

// FormatTimeSpan renders a point in the run. Minutes are always present so
// split columns line up: "4:05.200", "1:02:03.000".
func (f *Formatter) FormatTimeSpan(ts TimeSpan) string {
	return f.format(ts, true)
}

// FormatDuration renders a length of time compactly, dropping leading units
// that are zero: "15.000", "1:05.250", "1:00:00.000".
func (f *Formatter) FormatDuration(ts TimeSpan) string {
	return f.format(ts, false)
}

func (f *Formatter) format(ts TimeSpan, forceMinutes bool) string {
	var sb strings.Builder
	d := time.Duration(ts)
	if d < 0 {
		sb.WriteByte('-')
		d = -d
	}

	totalSec := int64(d / time.Second)
	hours := totalSec / 3600
	minutes := (totalSec % 3600) / 60
	seconds := totalSec % 60

	switch {
	case hours > 0:
		fmt.Fprintf(&sb, "%d:%02d:%02d", hours, minutes, seconds)
	case minutes > 0 || forceMinutes:
		fmt.Fprintf(&sb, "%d:%02d", minutes, seconds)
	default:
		fmt.Fprintf(&sb, "%d", seconds)
	}

	if f.precision > 0 {
		frac := fmt.Sprintf("%09d", int64(d%time.Second))
		sb.WriteByte('.')
		sb.WriteString(frac[:f.precision])
	}
	return sb.String()
}
