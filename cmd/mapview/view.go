package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/isowalk/common"
	"github.com/milk9111/isowalk/iso"
	"github.com/milk9111/isowalk/tilemap"
)

// Terminal cells are about twice as tall as wide, so a 4x2 tile with a 0.5
// vertical factor gives two columns and one row per grid step.
var termProj = iso.Projection{TileWidth: 4, TileHeight: 2, VerticalFactor: 0.5}

var variantGlyphs = []struct {
	r     rune
	color tcell.Color
}{
	{'.', tcell.ColorGreen},
	{',', tcell.ColorLime},
	{':', tcell.ColorOlive},
	{'"', tcell.ColorDarkGreen},
}

// glyph is one painted terminal cell.
type glyph struct {
	x, y  int
	r     rune
	style tcell.Style
}

// view is a pan offset in terminal cells over a centered map.
type view struct {
	width, height int
	panX, panY    int
}

func (v view) toTerm(p common.Vec2) (int, int) {
	return v.width/2 + int(p.X) + v.panX, v.height/2 - int(p.Y) + v.panY
}

func (v view) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.width && y < v.height
}

// paint lays out the grid back to front followed by obstacle and spawn
// markers. Later glyphs overwrite earlier ones at the same cell.
func paint(v view, g *tilemap.Grid, obstacles []common.Rect, spawn common.Vec2) []glyph {
	var out []glyph
	for _, c := range g.DrawOrder() {
		x, y := v.toTerm(termProj.ProjectPoint(c.Point))
		r, style := '?', tcell.StyleDefault.Foreground(tcell.ColorRed)
		if c.Variant >= 0 && int(c.Variant) < len(variantGlyphs) {
			vg := variantGlyphs[c.Variant]
			r, style = vg.r, tcell.StyleDefault.Foreground(vg.color)
		}
		for dx := -1; dx <= 1; dx++ {
			if v.inside(x+dx, y) {
				out = append(out, glyph{x: x + dx, y: y, r: r, style: style})
			}
		}
	}

	rock := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, o := range obstacles {
		center := common.Vec2{X: o.X + o.Width/2, Y: o.Y + o.Height/2}
		x, y := v.toTerm(termProj.Project(center))
		if v.inside(x, y) {
			out = append(out, glyph{x: x, y: y, r: '#', style: rock})
		}
	}

	x, y := v.toTerm(termProj.Project(spawn))
	if v.inside(x, y) {
		out = append(out, glyph{x: x, y: y, r: '@', style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)})
	}
	return out
}
