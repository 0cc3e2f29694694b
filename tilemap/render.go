package tilemap

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isowalk/common"
	"github.com/milk9111/isowalk/iso"
	"github.com/milk9111/isowalk/render"
)

// SheetLayout describes how a tile sheet is cut into square variant slots.
type SheetLayout struct {
	SlotSize int
	Columns  int
	Rows     int
}

// Variants is the size of the palette the layout yields.
func (l SheetLayout) Variants() int {
	return l.Columns * l.Rows
}

// SliceSheet cuts sheet into Columns x Rows slots, row-major, so variant i is
// at column i%Columns, row i/Columns.
func SliceSheet(sheet *ebiten.Image, l SheetLayout) ([]*ebiten.Image, error) {
	if sheet == nil {
		return nil, fmt.Errorf("tilemap: nil tile sheet")
	}
	if l.SlotSize <= 0 || l.Columns <= 0 || l.Rows <= 0 {
		return nil, fmt.Errorf("%w: sheet layout %+v", ErrInvalidArgument, l)
	}
	b := sheet.Bounds()
	if b.Dx() < l.SlotSize*l.Columns || b.Dy() < l.SlotSize*l.Rows {
		return nil, fmt.Errorf("tilemap: sheet %dx%d too small for %dx%d slots of %d",
			b.Dx(), b.Dy(), l.Columns, l.Rows, l.SlotSize)
	}
	tiles := make([]*ebiten.Image, 0, l.Variants())
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Columns; col++ {
			x0 := b.Min.X + col*l.SlotSize
			y0 := b.Min.Y + row*l.SlotSize
			r := image.Rect(x0, y0, x0+l.SlotSize, y0+l.SlotSize)
			tiles = append(tiles, sheet.SubImage(r).(*ebiten.Image))
		}
	}
	return tiles, nil
}

// Renderer draws a Grid with a fixed display tile size.
type Renderer struct {
	grid     *Grid
	proj     iso.Projection
	sheetKey string
	tiles    []*ebiten.Image
	// CullMargin pads the culled view in cells.
	CullMargin int
}

// NewRenderer loads the tile sheet named sheetKey, slices it and binds it to
// grid. The renderer owns the sheet and releases it in Dispose.
func NewRenderer(grid *Grid, proj iso.Projection, sheetKey string, layout SheetLayout) (*Renderer, error) {
	if err := proj.Validate(); err != nil {
		return nil, err
	}
	sheet, err := render.LoadImage(sheetKey)
	if err != nil {
		return nil, fmt.Errorf("tilemap: load sheet: %w", err)
	}
	tiles, err := SliceSheet(sheet, layout)
	if err != nil {
		render.ReleaseImage(sheetKey)
		return nil, err
	}
	return &Renderer{grid: grid, proj: proj, sheetKey: sheetKey, tiles: tiles, CullMargin: 5}, nil
}

// Draw paints every tile back to front.
func (r *Renderer) Draw(ctx *render.Context) {
	if r == nil || r.grid == nil {
		return
	}
	for _, c := range r.grid.DrawOrder() {
		r.drawCell(ctx, c)
	}
}

// DrawInView paints only tiles near the camera view, in storage order.
func (r *Renderer) DrawInView(ctx *render.Context) {
	if r == nil || r.grid == nil || ctx == nil || ctx.Camera == nil {
		return
	}
	for _, c := range r.grid.CellsIn(r.ViewBounds(ctx.Camera)) {
		r.drawCell(ctx, c)
	}
}

// ViewBounds is the padded grid rectangle covering the camera view.
func (r *Renderer) ViewBounds(cam *render.Camera) iso.Bounds {
	return r.proj.GridBounds(cam.ViewRect()).Pad(r.CullMargin)
}

// TileRect is the projected-space box a tile at p covers: centered
// horizontally on the projected cell with its bottom edge on it. Y grows
// upward, so the rect's Y is the bottom edge.
func TileRect(proj iso.Projection, p iso.Point) common.Rect {
	c := proj.ProjectPoint(p)
	w, h := proj.TileWidth, proj.TileHeight
	return common.Rect{X: c.X - w/2, Y: c.Y, Width: w, Height: h}
}

func (r *Renderer) drawCell(ctx *render.Context, c Cell) {
	if c.Variant < 0 || int(c.Variant) >= len(r.tiles) {
		return
	}
	dst := TileRect(r.proj, c.Point)
	ctx.DrawImage(r.tiles[c.Variant], dst.X, dst.Y+dst.Height, dst.Width, dst.Height)
}

// Dispose releases the tile sheet. Calling it again is a no-op.
func (r *Renderer) Dispose() {
	if r == nil || r.sheetKey == "" {
		return
	}
	r.tiles = nil
	render.ReleaseImage(r.sheetKey)
	r.sheetKey = ""
}
