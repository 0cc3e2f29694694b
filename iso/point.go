package iso

import "strconv"

// Point is an integer grid coordinate. It is comparable and used directly as
// a map key.
type Point struct {
	X, Y int
}

// Depth is the isometric distance from the viewer. Larger depth is further
// back and must be painted first.
func (p Point) Depth() int {
	return p.X + p.Y
}

func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Bounds is an inclusive grid-space rectangle.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Pad grows b by n cells on every side.
func (b Bounds) Pad(n int) Bounds {
	return Bounds{MinX: b.MinX - n, MinY: b.MinY - n, MaxX: b.MaxX + n, MaxY: b.MaxY + n}
}
