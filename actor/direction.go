package actor

// Direction is one of the eight facings an actor can show.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	DownRight
	DownLeft
	UpLeft
	UpRight
)

// Frame addresses a cell of the 2x4 actor sprite sheet.
type Frame struct {
	Row, Col int
}

// row 0 holds the cardinal facings, row 1 the diagonals
var frameTable = [...]Frame{
	Up:        {Row: 0, Col: 0},
	Down:      {Row: 0, Col: 1},
	Left:      {Row: 0, Col: 2},
	Right:     {Row: 0, Col: 3},
	DownRight: {Row: 1, Col: 0},
	DownLeft:  {Row: 1, Col: 1},
	UpLeft:    {Row: 1, Col: 2},
	UpRight:   {Row: 1, Col: 3},
}

var directionNames = [...]string{
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	DownRight: "down-right",
	DownLeft:  "down-left",
	UpLeft:    "up-left",
	UpRight:   "up-right",
}

// Directions lists every facing in frame-table order.
var Directions = []Direction{Up, Down, Left, Right, DownRight, DownLeft, UpLeft, UpRight}

func (d Direction) Valid() bool {
	return d >= 0 && int(d) < len(frameTable)
}

// Frame returns the sprite-sheet cell for d.
func (d Direction) Frame() Frame {
	if !d.Valid() {
		return frameTable[Down]
	}
	return frameTable[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return directionNames[d]
}

// ResolveFacing picks a facing from the held keys. Diagonal pairs win over
// single keys; with nothing held prev is kept.
func ResolveFacing(in Intent, prev Direction) Direction {
	switch {
	case in.Up && in.Right:
		return UpRight
	case in.Up && in.Left:
		return UpLeft
	case in.Down && in.Right:
		return DownRight
	case in.Down && in.Left:
		return DownLeft
	case in.Up:
		return Up
	case in.Down:
		return Down
	case in.Left:
		return Left
	case in.Right:
		return Right
	}
	return prev
}
