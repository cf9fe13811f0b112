// Package display owns the terminal while the live view runs: the
// alternate screen lifecycle and differential repainting of rendered
// frames. Repainting only the lines that changed keeps the view from
// flickering at refresh rates above the terminal's redraw comfort.
package display

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-tuxsplit/internal/util"
)

type TerminalDisplay struct {
	inAlternateScreen  bool
	smartRenderEnabled bool     // repaint only changed lines between frames
	previousScreen     []string // previous frame for differential updates
	isFirstRender      bool     // force a full paint on the next frame
}

func NewTerminalDisplay() *TerminalDisplay {
	return &TerminalDisplay{
		smartRenderEnabled: true,
		previousScreen:     make([]string, 0),
		isFirstRender:      true,
	}
}

// EnterAlternateScreen switches to the alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Print(util.EnterAltScreen)
	fmt.Print(util.ClearScreen)
	fmt.Print(util.ClearScrollback)
	fmt.Print(util.MoveCursorHome)
	fmt.Print(util.HideCursor)
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen returns to the normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Print(util.ClearScreen)
	fmt.Print(util.MoveCursorHome)
	fmt.Print(util.ShowCursor)
	fmt.Print(util.ExitAltScreen)
	td.inAlternateScreen = false
}

// Render paints the frame. The first frame and any frame after
// Invalidate repaint fully; later frames repaint only lines that
// differ from the previous frame.
func (td *TerminalDisplay) Render(lines []string) {
	if td.isFirstRender || !td.smartRenderEnabled {
		td.renderFull(lines)
	} else {
		td.renderDiff(lines)
	}

	td.previousScreen = append(td.previousScreen[:0], lines...)
}

// Invalidate forces the next Render to repaint the whole screen.
func (td *TerminalDisplay) Invalidate() {
	td.isFirstRender = true
}

func (td *TerminalDisplay) renderFull(lines []string) {
	var sb strings.Builder
	sb.WriteString(util.ClearScreen)
	sb.WriteString(util.MoveCursorHome)
	for i, line := range lines {
		sb.WriteString(util.MoveCursor(i+1, 1))
		sb.WriteString(line)
	}
	fmt.Print(sb.String())
	td.isFirstRender = false
}

func (td *TerminalDisplay) renderDiff(lines []string) {
	var sb strings.Builder

	rows := len(lines)
	if len(td.previousScreen) > rows {
		rows = len(td.previousScreen)
	}
	for i := 0; i < rows; i++ {
		switch {
		case i >= len(lines):
			// Frame shrank; blank the leftover line.
			sb.WriteString(util.MoveCursor(i+1, 1))
			sb.WriteString(util.ClearLine)
		case i < len(td.previousScreen) && td.previousScreen[i] == lines[i]:
			continue
		default:
			sb.WriteString(util.MoveCursor(i+1, 1))
			sb.WriteString(util.ClearLine)
			sb.WriteString(lines[i])
		}
	}

	if sb.Len() > 0 {
		fmt.Print(sb.String())
	}
}
