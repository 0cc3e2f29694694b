package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isowalk/common"
)

// Context carries the per-frame draw target and view transform. It is passed
// explicitly to every Draw call.
type Context struct {
	Screen *ebiten.Image
	Camera *Camera
}

// DrawImage draws img with its top-left corner at the projected point
// (left, top), stretched to w x h projected pixels.
func (ctx *Context) DrawImage(img *ebiten.Image, left, top, w, h float64) {
	if ctx == nil || ctx.Screen == nil || ctx.Camera == nil || img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	zoom := ctx.Camera.Zoom()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx())*zoom, h/float64(b.Dy())*zoom)
	sx, sy := ctx.Camera.ToScreen(common.Vec2{X: left, Y: top})
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterNearest
	ctx.Screen.DrawImage(img, op)
}
