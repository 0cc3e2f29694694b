// Package iso holds the single grid-to-screen projection shared by the tile
// grid and the actor.
package iso

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/isowalk/common"
)

// DefaultVerticalFactor compresses the vertical step so adjacent grass tiles
// meet without gaps or diagonal striping.
const DefaultVerticalFactor = 0.25

var ErrInvalidProjection = errors.New("iso: invalid projection")

// Projection maps grid/world coordinates to screen coordinates:
//
//	screenX = (x - y) * TileWidth/2
//	screenY = (x + y) * TileHeight*VerticalFactor
//
// Screen Y grows upward; the camera flips it for ebiten.
type Projection struct {
	TileWidth      float64
	TileHeight     float64
	VerticalFactor float64
}

func NewProjection(tileWidth, tileHeight, verticalFactor float64) (Projection, error) {
	p := Projection{TileWidth: tileWidth, TileHeight: tileHeight, VerticalFactor: verticalFactor}
	if err := p.Validate(); err != nil {
		return Projection{}, err
	}
	return p, nil
}

func (p Projection) Validate() error {
	switch {
	case !(p.TileWidth > 0) || math.IsInf(p.TileWidth, 0):
		return fmt.Errorf("%w: tile width %v", ErrInvalidProjection, p.TileWidth)
	case !(p.TileHeight > 0) || math.IsInf(p.TileHeight, 0):
		return fmt.Errorf("%w: tile height %v", ErrInvalidProjection, p.TileHeight)
	case !(p.VerticalFactor > 0) || math.IsInf(p.VerticalFactor, 0):
		return fmt.Errorf("%w: vertical factor %v", ErrInvalidProjection, p.VerticalFactor)
	}
	return nil
}

// StepX is the horizontal screen distance covered by one grid step.
func (p Projection) StepX() float64 {
	return p.TileWidth / 2
}

// StepY is the vertical screen distance covered by one grid step.
func (p Projection) StepY() float64 {
	return p.TileHeight * p.VerticalFactor
}

// Project converts a continuous grid position into screen space.
func (p Projection) Project(world common.Vec2) common.Vec2 {
	return common.Vec2{
		X: (world.X - world.Y) * p.StepX(),
		Y: (world.X + world.Y) * p.StepY(),
	}
}

// ProjectPoint projects the origin of a grid cell.
func (p Projection) ProjectPoint(pt Point) common.Vec2 {
	return p.Project(common.Vec2{X: float64(pt.X), Y: float64(pt.Y)})
}

// Unproject is the exact inverse of Project.
func (p Projection) Unproject(screen common.Vec2) common.Vec2 {
	diff := screen.X / p.StepX()
	sum := screen.Y / p.StepY()
	return common.Vec2{
		X: (sum + diff) / 2,
		Y: (sum - diff) / 2,
	}
}

// GridBounds returns the smallest cell rectangle whose projection covers the
// screen-space rect r.
func (p Projection) GridBounds(r common.Rect) Bounds {
	corners := r.Corners()
	first := p.Unproject(corners[0])
	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y
	for _, c := range corners[1:] {
		g := p.Unproject(c)
		minX = math.Min(minX, g.X)
		maxX = math.Max(maxX, g.X)
		minY = math.Min(minY, g.Y)
		maxY = math.Max(maxY, g.Y)
	}
	return Bounds{
		MinX: int(math.Floor(minX)),
		MinY: int(math.Floor(minY)),
		MaxX: int(math.Ceil(maxX)),
		MaxY: int(math.Ceil(maxY)),
	}
}
