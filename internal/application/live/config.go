package live

import (
	"fmt"

	"github.com/penwyp/go-tuxsplit/internal/core/comparison"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

// Config carries everything the live view needs for one watch session.
type Config struct {
	// Run document being watched.
	RunFile string

	// Comparison and timebase the rows are derived against.
	Comparison string
	Method     timing.Method

	// Display settings.
	Precision        int
	RefreshPerSecond float64
	LayoutStyle      int
}

// Validate fills unset fields with defaults and rejects values the
// view cannot run with.
func (c *Config) Validate() error {
	if c.RunFile == "" {
		return fmt.Errorf("live view requires a run file path")
	}
	if c.Comparison == "" {
		c.Comparison = comparison.PersonalBest
	}
	if c.Precision == 0 {
		c.Precision = timing.DefaultPrecision
	}
	if c.Precision < 0 || c.Precision > 9 {
		return fmt.Errorf("display precision %d out of range (0-9)", c.Precision)
	}
	if c.RefreshPerSecond == 0 {
		c.RefreshPerSecond = 1.0
	}
	if c.RefreshPerSecond < 0.1 || c.RefreshPerSecond > 20 {
		return fmt.Errorf("refresh-per-second must be between 0.1 and 20, got %v", c.RefreshPerSecond)
	}
	return nil
}
