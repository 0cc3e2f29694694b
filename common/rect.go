package common

// Rect is an axis-aligned box. Y grows upward in world space, so (X, Y) is
// the bottom-left corner there.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// CenteredRect returns a w x h rect centered on c.
func CenteredRect(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Corners returns the four corners counter-clockwise from (X, Y).
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}
