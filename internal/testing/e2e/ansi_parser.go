package e2e

import (
	"regexp"
	"strings"
)

// Matches CSI sequences including private-mode ones such as the
// alternate screen switch (ESC[?1049h) and cursor visibility toggles.
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// VirtualScreen reconstructs what a terminal would show after playing
// back the live view's output. The view repaints differentially with
// cursor moves and line clears, so the raw capture interleaves stale
// and current cells; only a replay recovers the visible state.
type VirtualScreen struct {
	rows    int
	cols    int
	buffer  [][]rune
	cursorX int
	cursorY int
}

// NewVirtualScreen creates a blank screen of the given size.
func NewVirtualScreen(rows, cols int) *VirtualScreen {
	buffer := make([][]rune, rows)
	for i := range buffer {
		buffer[i] = blankRow(cols)
	}
	return &VirtualScreen{
		rows:   rows,
		cols:   cols,
		buffer: buffer,
	}
}

func blankRow(cols int) []rune {
	row := make([]rune, cols)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// PlayBack replays terminal output onto a screen of the given size and
// returns the resulting state.
func PlayBack(output string, rows, cols int) *VirtualScreen {
	screen := NewVirtualScreen(rows, cols)

	runes := []rune(output)
	i := 0
	for i < len(runes) {
		switch {
		case runes[i] == '\x1b' && i+1 < len(runes) && runes[i+1] == '[':
			i = screen.applySequence(runes, i)
		case runes[i] == '\r':
			screen.cursorX = 0
			i++
		case runes[i] == '\n':
			screen.lineFeed()
			i++
		case runes[i] == '\b':
			screen.cursorX = max(0, screen.cursorX-1)
			i++
		default:
			screen.putChar(runes[i])
			i++
		}
	}
	return screen
}

// applySequence consumes one CSI sequence starting at start and applies
// its effect. Returns the index just past the sequence.
func (s *VirtualScreen) applySequence(runes []rune, start int) int {
	i := start + 2 // skip ESC [

	private := false
	if i < len(runes) && runes[i] == '?' {
		private = true
		i++
	}

	var params []int
	current := 0
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch >= '0' && ch <= '9':
			current = current*10 + int(ch-'0')
		case ch == ';':
			params = append(params, current)
			current = 0
		default:
			params = append(params, current)
			if private {
				s.applyPrivateMode(ch, params)
			} else {
				s.applyCommand(ch, params)
			}
			return i + 1
		}
		i++
	}
	return i
}

// applyPrivateMode handles DEC private sequences. Entering the
// alternate screen buffer presents a blank screen; everything else the
// view emits (cursor visibility, leaving the buffer) has no effect on
// cell contents.
func (s *VirtualScreen) applyPrivateMode(cmd rune, params []int) {
	if cmd == 'h' && len(params) > 0 && params[0] == 1049 {
		s.clear()
		s.cursorX, s.cursorY = 0, 0
	}
}

func (s *VirtualScreen) applyCommand(cmd rune, params []int) {
	arg := func(idx, fallback int) int {
		if idx < len(params) && params[idx] > 0 {
			return params[idx]
		}
		return fallback
	}

	switch cmd {
	case 'H', 'f': // cursor position, 1-based
		s.cursorY = min(s.rows-1, arg(0, 1)-1)
		s.cursorX = min(s.cols-1, arg(1, 1)-1)

	case 'J': // clear screen region
		switch arg(0, 0) {
		case 0:
			s.clearBelow()
		case 1:
			s.clearAbove()
		case 2:
			s.clear()
		case 3:
			// Scrollback clear; nothing visible changes.
		}

	case 'K': // clear line region
		switch arg(0, 0) {
		case 0:
			s.clearLineRight()
		case 1:
			s.clearLineLeft()
		case 2:
			s.clearLine()
		}

	case 'A':
		s.cursorY = max(0, s.cursorY-arg(0, 1))
	case 'B':
		s.cursorY = min(s.rows-1, s.cursorY+arg(0, 1))
	case 'C':
		s.cursorX = min(s.cols-1, s.cursorX+arg(0, 1))
	case 'D':
		s.cursorX = max(0, s.cursorX-arg(0, 1))
	}
}

func (s *VirtualScreen) putChar(ch rune) {
	if s.cursorY < 0 || s.cursorY >= s.rows || s.cursorX < 0 || s.cursorX >= s.cols {
		return
	}
	s.buffer[s.cursorY][s.cursorX] = ch
	s.cursorX++
	if s.cursorX >= s.cols {
		s.cursorX = 0
		s.lineFeed()
	}
}

func (s *VirtualScreen) lineFeed() {
	s.cursorY++
	s.cursorX = 0
	if s.cursorY >= s.rows {
		s.scrollUp()
	}
}

func (s *VirtualScreen) clear() {
	for i := range s.buffer {
		s.buffer[i] = blankRow(s.cols)
	}
}

func (s *VirtualScreen) clearBelow() {
	s.clearLineRight()
	for i := s.cursorY + 1; i < s.rows; i++ {
		s.buffer[i] = blankRow(s.cols)
	}
}

func (s *VirtualScreen) clearAbove() {
	for i := 0; i < s.cursorY; i++ {
		s.buffer[i] = blankRow(s.cols)
	}
	s.clearLineLeft()
}

func (s *VirtualScreen) clearLine() {
	s.buffer[s.cursorY] = blankRow(s.cols)
}

func (s *VirtualScreen) clearLineRight() {
	for j := s.cursorX; j < s.cols; j++ {
		s.buffer[s.cursorY][j] = ' '
	}
}

func (s *VirtualScreen) clearLineLeft() {
	for j := 0; j <= s.cursorX && j < s.cols; j++ {
		s.buffer[s.cursorY][j] = ' '
	}
}

func (s *VirtualScreen) scrollUp() {
	copy(s.buffer, s.buffer[1:])
	s.buffer[s.rows-1] = blankRow(s.cols)
	s.cursorY = s.rows - 1
}

// Render returns the screen content with trailing blanks trimmed.
func (s *VirtualScreen) Render() string {
	var result strings.Builder
	for i, row := range s.buffer {
		result.WriteString(strings.TrimRight(string(row), " "))
		if i < len(s.buffer)-1 {
			result.WriteRune('\n')
		}
	}
	return result.String()
}

// Line returns one screen line with trailing blanks trimmed.
func (s *VirtualScreen) Line(n int) string {
	if n < 0 || n >= s.rows {
		return ""
	}
	return strings.TrimRight(string(s.buffer[n]), " ")
}

// Contains reports whether text appears anywhere on the screen.
func (s *VirtualScreen) Contains(text string) bool {
	return strings.Contains(s.Render(), text)
}
