package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/isowalk/common"
	"github.com/milk9111/isowalk/iso"
	"github.com/milk9111/isowalk/render"
	"golang.org/x/image/colornames"
)

func (g *Game) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, g.status())

	for _, r := range g.obstacles.Rects() {
		strokeOutline(screen, outline(r, g.proj, g.camera), colornames.Red)
	}
	strokeOutline(screen, outline(g.actor.CollisionBox(), g.proj, g.camera), colornames.Yellow)
}

// outline projects the corners of a grid-space rect to screen pixels. The
// result is a diamond on screen.
func outline(r common.Rect, proj iso.Projection, cam *render.Camera) [4][2]float32 {
	var out [4][2]float32
	for i, c := range r.Corners() {
		sx, sy := cam.ToScreen(proj.Project(c))
		out[i] = [2]float32{float32(sx), float32(sy)}
	}
	return out
}

func strokeOutline(screen *ebiten.Image, pts [4][2]float32, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 1, clr, false)
	}
}
