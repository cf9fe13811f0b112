package layout

import (
	"os"

	"golang.org/x/term"

	"github.com/penwyp/go-tuxsplit/internal/logger"
	"github.com/penwyp/go-tuxsplit/internal/util"
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

// Frame width bounds. Below the minimum the split table cannot show its
// fixed columns; above the cap extra terminal width is left unused.
const (
	minFrameWidth     = 58
	maxFrameWidth     = 100
	fallbackTermWidth = 74
)

type Sizer struct {
}

// PadString pads a string to a specific display width, handling colored
// and wide text correctly.
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	if leftAlign {
		return util.PadRight(s, width)
	}
	return util.PadLeft(s, width)
}

// GetMaxWidth reports the frame width the live view renders at, derived
// from the terminal size with a fallback for non-tty stdout.
func (i Sizer) GetMaxWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < minFrameWidth {
		termWidth = fallbackTermWidth
	}

	maxWidth := termWidth - 2 // keep off the right edge
	if maxWidth > maxFrameWidth {
		maxWidth = maxFrameWidth
	}
	if maxWidth < minFrameWidth {
		maxWidth = minFrameWidth
	}

	logger.Debug().Int("width", maxWidth).Msg("resolved frame width")
	return maxWidth
}
