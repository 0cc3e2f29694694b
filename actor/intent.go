package actor

import "github.com/milk9111/isowalk/common"

// Intent is the raw held state of the four movement keys for one frame.
type Intent struct {
	Up, Down, Left, Right bool
}

func (in Intent) Idle() bool {
	return !in.Up && !in.Down && !in.Left && !in.Right
}

// Vector maps the keys onto isometric world axes and sums them. Opposing
// keys cancel.
func (in Intent) Vector() common.Vec2 {
	var v common.Vec2
	if in.Up {
		v = v.Add(common.Vec2{X: 1, Y: 1})
	}
	if in.Down {
		v = v.Add(common.Vec2{X: -1, Y: -1})
	}
	if in.Left {
		v = v.Add(common.Vec2{X: -1, Y: 1})
	}
	if in.Right {
		v = v.Add(common.Vec2{X: 1, Y: -1})
	}
	return v
}
