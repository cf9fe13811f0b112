package layout

// LayoutStrategy defines the interface for different live view layouts.
// Render returns the frame as terminal lines; it never writes output
// itself, so the display layer can repaint differentially.
type LayoutStrategy interface {
	Render(frame *Frame, width int) []string
	GetName() string
}

// GetLayoutStrategy returns the appropriate layout strategy based on the style
func GetLayoutStrategy(layoutStyle int) LayoutStrategy {
	strategies := map[int]LayoutStrategy{
		0: &FullLayoutStrategy{},
		1: &CompactLayoutStrategy{},
	}

	if strategy, exists := strategies[layoutStyle]; exists {
		return strategy
	}

	// Default to the full view if invalid style
	return &FullLayoutStrategy{}
}
