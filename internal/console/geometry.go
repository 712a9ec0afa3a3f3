package console

// Position is the target of an explicit scroll command.
type Position int

const (
	Top Position = iota
	Bottom
)

func (p Position) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Geometry describes the viewport and its content at one instant.
// All values are in display rows.
type Geometry struct {
	ViewportHeight int // total height of the scrolling region
	TopInset       int // rows reserved above the content (border, padding)
	BottomInset    int // rows reserved below the content
	ContentHeight  int // rows of content
	ScrollOffset   int // index of the first visible content row
}

// UsableHeight is the number of content rows the viewport can show.
// Misconfigured insets clamp to zero.
func (g Geometry) UsableHeight() int {
	return max(0, g.ViewportHeight-g.TopInset-g.BottomInset)
}

// MaxScroll is the largest offset that still fills the viewport.
// It is zero when the content fits entirely.
func (g Geometry) MaxScroll() int {
	return max(0, g.ContentHeight-g.UsableHeight())
}

// IsAtBottom reports whether the visible bottom reaches the content bottom.
func IsAtBottom(g Geometry) bool {
	return g.ScrollOffset >= g.MaxScroll()
}
