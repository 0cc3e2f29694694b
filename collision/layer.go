// Package collision provides the object layer the actor checks its steps
// against. Obstacles are static boxes in a chipmunk space.
package collision

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/isowalk/common"
)

// Layer is a set of solid rectangles in grid units.
type Layer struct {
	space  *cp.Space
	shapes map[*cp.Shape]common.Rect
	order  []*cp.Shape
}

func NewLayer() *Layer {
	return &Layer{
		space:  cp.NewSpace(),
		shapes: make(map[*cp.Shape]common.Rect),
	}
}

// AddRect adds a solid box. Empty rects are ignored.
func (l *Layer) AddRect(r common.Rect) {
	if l == nil || r.Empty() {
		return
	}
	bb := cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
	shape := cp.NewBox2(l.space.StaticBody, bb, 0)
	l.space.AddShape(shape)
	l.shapes[shape] = r
	l.order = append(l.order, shape)
}

// Clear removes every obstacle.
func (l *Layer) Clear() {
	if l == nil {
		return
	}
	for _, shape := range l.order {
		l.space.RemoveShape(shape)
	}
	l.shapes = make(map[*cp.Shape]common.Rect)
	l.order = nil
}

func (l *Layer) Len() int {
	if l == nil {
		return 0
	}
	return len(l.order)
}

// Rects returns the obstacles in insertion order.
func (l *Layer) Rects() []common.Rect {
	if l == nil {
		return nil
	}
	out := make([]common.Rect, 0, len(l.order))
	for _, shape := range l.order {
		out = append(out, l.shapes[shape])
	}
	return out
}

// Blocked reports whether box overlaps any obstacle. Touching edges do not
// count as overlap.
func (l *Layer) Blocked(box common.Rect) bool {
	if l == nil || box.Empty() || len(l.order) == 0 {
		return false
	}
	bb := cp.BB{L: box.X, B: box.Y, R: box.X + box.Width, T: box.Y + box.Height}
	hit := false
	l.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if hit {
			return
		}
		if r, ok := l.shapes[shape]; ok && r.Intersects(box) {
			hit = true
		}
	}, nil)
	return hit
}
