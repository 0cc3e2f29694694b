package main

import (
	"testing"

	"github.com/milk9111/isowalk/common"
	"github.com/milk9111/isowalk/tilemap"
)

func TestPaintFrontCellsLast(t *testing.T) {
	g := tilemap.NewGrid()
	g.Set(0, 0, 0)
	g.Set(1, 1, 1)
	g.Set(-1, -1, 2)

	v := view{width: 40, height: 20}
	glyphs := paint(v, g, nil, common.Vec2{X: 0, Y: 0})

	// center glyph of each tile: (1,1) back, (0,0) middle, (-1,-1) front
	var centers []rune
	for _, gl := range glyphs {
		if gl.x == 20 && gl.r != '@' {
			centers = append(centers, gl.r)
		}
	}
	want := []rune{',', '.', ':'}
	if len(centers) != len(want) {
		t.Fatalf("centers = %q, want %q", string(centers), string(want))
	}
	for i := range want {
		if centers[i] != want[i] {
			t.Fatalf("centers = %q, want %q", string(centers), string(want))
		}
	}

	last := glyphs[len(glyphs)-1]
	if last.r != '@' || last.x != 20 || last.y != 10 {
		t.Fatalf("spawn glyph = %+v", last)
	}
}

func TestPaintClipsToView(t *testing.T) {
	g := tilemap.NewGrid()
	g.FillCheckerboard(-50, -50, 100, 100)
	v := view{width: 10, height: 6}
	for _, gl := range paint(v, g, []common.Rect{{X: 100, Y: 100, Width: 1, Height: 1}}, common.Vec2{X: 99, Y: 0}) {
		if !v.inside(gl.x, gl.y) {
			t.Fatalf("glyph %+v outside %dx%d view", gl, v.width, v.height)
		}
	}
}
