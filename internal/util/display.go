package util

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset   = "\033[0m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorBold    = "\033[1m"

	ClearScreen         = "\033[2J"     // Clear entire screen
	ClearLine           = "\033[2K"     // Clear entire line
	ClearLineFromCursor = "\033[0K"     // Clear from cursor to end of line
	ClearScrollback     = "\033[3J"     // Clear scrollback buffer
	MoveCursorHome      = "\033[H"      // Move cursor to home position
	HideCursor          = "\033[?25l"   // Hide cursor
	ShowCursor          = "\033[?25h"   // Show cursor
	EnterAltScreen      = "\033[?1049h" // Switch to alternate screen buffer
	ExitAltScreen       = "\033[?1049l" // Return to main screen buffer
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;?]*[a-zA-Z]")

// StripANSI removes terminal escape sequences from text.
func StripANSI(text string) string {
	return ansiPattern.ReplaceAllString(text, "")
}

// GetDisplayWidth measures the rendered width of text, ignoring escape
// sequences and counting wide runes as two cells.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(StripANSI(text))
}

// PadRight pads text with trailing spaces up to the given display width.
func PadRight(text string, width int) string {
	gap := width - GetDisplayWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

// PadLeft pads text with leading spaces up to the given display width.
func PadLeft(text string, width int) string {
	gap := width - GetDisplayWidth(text)
	if gap <= 0 {
		return text
	}
	return strings.Repeat(" ", gap) + text
}

// CenterText centers text within width, truncating when it does not fit.
func CenterText(text string, width int) string {
	w := GetDisplayWidth(text)
	if w >= width {
		return runewidth.Truncate(StripANSI(text), width, "")
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-padding-w)
}

// MoveCursor returns the sequence placing the cursor at row, col (1-based).
func MoveCursor(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// FormatHeaderTitle renders the view title (magenta, bold).
func FormatHeaderTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorMagenta, title, ColorReset)
}

// FormatAhead colors delta text for running ahead of the comparison.
func FormatAhead(text string) string {
	return ColorGreen + text + ColorReset
}

// FormatBehind colors delta text for running behind the comparison.
func FormatBehind(text string) string {
	return ColorRed + text + ColorReset
}

// FormatGold colors a best-ever segment time.
func FormatGold(text string) string {
	return ColorYellow + text + ColorReset
}
