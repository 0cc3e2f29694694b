package tilemap

import (
	"testing"

	"github.com/milk9111/isowalk/common"
	"github.com/milk9111/isowalk/iso"
	"github.com/milk9111/isowalk/render"
)

func TestTileRectAnchorsBottomCenter(t *testing.T) {
	proj := iso.Projection{TileWidth: 128, TileHeight: 128, VerticalFactor: 0.25}

	tests := []struct {
		name string
		p    iso.Point
		want common.Rect
	}{
		{"origin", iso.Point{X: 0, Y: 0}, common.Rect{X: -64, Y: 0, Width: 128, Height: 128}},
		{"east", iso.Point{X: 1, Y: 0}, common.Rect{X: 0, Y: 32, Width: 128, Height: 128}},
		{"mixed_negative", iso.Point{X: -2, Y: 1}, common.Rect{X: -256, Y: -32, Width: 128, Height: 128}},
		{"both_negative", iso.Point{X: -3, Y: -3}, common.Rect{X: -64, Y: -192, Width: 128, Height: 128}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TileRect(proj, tc.p)
			if got != tc.want {
				t.Fatalf("TileRect(%v) = %+v, want %+v", tc.p, got, tc.want)
			}
			c := proj.ProjectPoint(tc.p)
			if got.X+got.Width/2 != c.X {
				t.Fatalf("tile not centered on projected x %v", c.X)
			}
			if got.Y != c.Y {
				t.Fatalf("tile bottom %v, want projected y %v", got.Y, c.Y)
			}
		})
	}
}

func TestTileRectOnScreen(t *testing.T) {
	proj := iso.Projection{TileWidth: 128, TileHeight: 128, VerticalFactor: 0.25}
	cam := render.NewCamera(800, 600, 1)

	p := iso.Point{X: 2, Y: -1}
	r := TileRect(proj, p)
	left, top := cam.ToScreen(common.Vec2{X: r.X, Y: r.Y + r.Height})
	cx, cy := cam.ToScreen(proj.ProjectPoint(p))

	if left+r.Width/2 != cx {
		t.Fatalf("screen center x = %v, want %v", left+r.Width/2, cx)
	}
	if top+r.Height != cy {
		t.Fatalf("screen bottom = %v, want %v", top+r.Height, cy)
	}
}
