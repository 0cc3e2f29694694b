package render

import (
	"math"

	"github.com/milk9111/isowalk/common"
)

// Camera centers the view on a point in projected screen space. Projected
// space has Y growing upward; ToScreen flips it for ebiten.
type Camera struct {
	X, Y float64

	viewW float64
	viewH float64
	zoom  float64
}

// NewCamera creates a camera for a logical screen of viewW x viewH pixels.
func NewCamera(viewW, viewH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{viewW: float64(viewW), viewH: float64(viewH), zoom: zoom}
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetZoom updates the camera zoom. Non-positive values are ignored.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// SetViewSize updates the logical screen size.
func (c *Camera) SetViewSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.viewW = float64(w)
	c.viewH = float64(h)
}

// Follow centers the camera on target immediately, snapped to the 1/zoom
// grid so source texels land on whole screen pixels.
func (c *Camera) Follow(target common.Vec2) {
	c.X = math.Round(target.X*c.zoom) / c.zoom
	c.Y = math.Round(target.Y*c.zoom) / c.zoom
}

// ToScreen converts a projected point to ebiten screen pixels.
func (c *Camera) ToScreen(p common.Vec2) (float64, float64) {
	sx := (p.X-c.X)*c.zoom + c.viewW/2
	sy := c.viewH/2 - (p.Y-c.Y)*c.zoom
	return sx, sy
}

// FromScreen is the inverse of ToScreen.
func (c *Camera) FromScreen(sx, sy float64) common.Vec2 {
	return common.Vec2{
		X: (sx-c.viewW/2)/c.zoom + c.X,
		Y: (c.viewH/2-sy)/c.zoom + c.Y,
	}
}

// ViewRect returns the visible area in projected space.
func (c *Camera) ViewRect() common.Rect {
	w := c.viewW / c.zoom
	h := c.viewH / c.zoom
	return common.Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}
