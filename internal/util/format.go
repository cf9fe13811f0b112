package util

import "fmt"

// FormatNumber renders a count compactly for fixed-width surfaces:
// plain below a thousand, then K and M with one fractional digit.
func FormatNumber(n int) string {
	switch {
	case n < 1000:
		return fmt.Sprintf("%d", n)
	case n < 1000000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
}
