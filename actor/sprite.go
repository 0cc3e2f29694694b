package actor

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isowalk/common"
	"github.com/milk9111/isowalk/render"
)

const (
	sheetRows = 2
	sheetCols = 4
)

// SpriteSheet holds the eight facing frames cut from one image.
type SpriteSheet struct {
	key         string
	frames      [sheetRows][sheetCols]*ebiten.Image
	frameWidth  int
	frameHeight int
	scale       float64
}

// LoadSpriteSheet loads the image named key and cuts it into a 2x4 grid of
// frameWidth x frameHeight frames. Frames are drawn at scale times their
// pixel size.
func LoadSpriteSheet(key string, frameWidth, frameHeight int, scale float64) (*SpriteSheet, error) {
	if frameWidth <= 0 || frameHeight <= 0 {
		return nil, fmt.Errorf("actor: invalid frame size %dx%d", frameWidth, frameHeight)
	}
	if scale <= 0 {
		scale = 1
	}
	img, err := render.LoadImage(key)
	if err != nil {
		return nil, fmt.Errorf("actor: load sheet: %w", err)
	}
	b := img.Bounds()
	if b.Dx() < frameWidth*sheetCols || b.Dy() < frameHeight*sheetRows {
		render.ReleaseImage(key)
		return nil, fmt.Errorf("actor: sheet %dx%d too small for %dx%d frames", b.Dx(), b.Dy(), frameWidth, frameHeight)
	}

	s := &SpriteSheet{key: key, frameWidth: frameWidth, frameHeight: frameHeight, scale: scale}
	for row := 0; row < sheetRows; row++ {
		for col := 0; col < sheetCols; col++ {
			x0 := b.Min.X + col*frameWidth
			y0 := b.Min.Y + row*frameHeight
			r := image.Rect(x0, y0, x0+frameWidth, y0+frameHeight)
			s.frames[row][col] = img.SubImage(r).(*ebiten.Image)
		}
	}
	return s, nil
}

// Image returns the frame image for f, or nil once disposed.
func (s *SpriteSheet) Image(f Frame) *ebiten.Image {
	if s == nil || f.Row < 0 || f.Row >= sheetRows || f.Col < 0 || f.Col >= sheetCols {
		return nil
	}
	return s.frames[f.Row][f.Col]
}

// DisplaySize is the on-screen frame size.
func (s *SpriteSheet) DisplaySize() (float64, float64) {
	return float64(s.frameWidth) * s.scale, float64(s.frameHeight) * s.scale
}

func (s *SpriteSheet) dispose() {
	if s == nil || s.key == "" {
		return
	}
	s.frames = [sheetRows][sheetCols]*ebiten.Image{}
	render.ReleaseImage(s.key)
	s.key = ""
}

// SetSpriteSheet hands ownership of s to the actor.
func (a *Actor) SetSpriteSheet(s *SpriteSheet) {
	if a.sheet != nil && a.sheet != s {
		a.sheet.dispose()
	}
	a.sheet = s
}

// Draw paints the current frame centered on the render position.
func (a *Actor) Draw(ctx *render.Context) {
	img := a.sheet.Image(a.frame)
	if img == nil {
		return
	}
	dst := a.sheet.destRect(a.renderPosition)
	ctx.DrawImage(img, dst.X, dst.Y+dst.Height, dst.Width, dst.Height)
}

// destRect is the display-size box centered on center, Y growing upward.
func (s *SpriteSheet) destRect(center common.Vec2) common.Rect {
	w, h := s.DisplaySize()
	return common.CenteredRect(center, w, h)
}

// Dispose releases the sprite sheet. Calling it again is a no-op.
func (a *Actor) Dispose() {
	a.sheet.dispose()
	a.sheet = nil
}
