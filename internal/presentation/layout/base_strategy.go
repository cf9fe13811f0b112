package layout

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/penwyp/go-tuxsplit/internal/util"
)

// BaseStrategy provides common functionality for all layout strategies
type BaseStrategy struct {
}

// GetSizer returns the shared sizer instance
func (b *BaseStrategy) GetSizer() *Sizer {
	return sharedSizer
}

// TopBorder creates the top frame line
func (b *BaseStrategy) TopBorder(width int) string {
	return "╭" + strings.Repeat("─", width-2) + "╮"
}

// BottomBorder creates the bottom frame line
func (b *BaseStrategy) BottomBorder(width int) string {
	return "╰" + strings.Repeat("─", width-2) + "╯"
}

// Separator creates a horizontal divider line
func (b *BaseStrategy) Separator(width int) string {
	return "├" + strings.Repeat("─", width-2) + "┤"
}

// BoxLine wraps content in side borders, padded to the frame width.
func (b *BaseStrategy) BoxLine(content string, width int) string {
	return "│ " + util.PadRight(content, width-4) + " │"
}

// SpreadLine pins left content against the left border and right
// content against the right border, padded to the frame width.
func (b *BaseStrategy) SpreadLine(left, right string, width int) string {
	gap := width - 4 - util.GetDisplayWidth(left) - util.GetDisplayWidth(right)
	if gap < 2 {
		gap = 2
	}
	return fmt.Sprintf("│ %s%s%s │", left, strings.Repeat(" ", gap), right)
}

// TruncateName shortens a segment name to the given display width,
// marking the cut with an ellipsis.
func (b *BaseStrategy) TruncateName(name string, width int) string {
	if util.GetDisplayWidth(name) <= width {
		return name
	}
	return runewidth.Truncate(name, width, "…")
}
