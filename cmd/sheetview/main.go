package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/isowalk/actor"
	"github.com/milk9111/isowalk/config"
)

const viewSize = 256

type sheetGame struct {
	sheet       *actor.SpriteSheet
	current     int
	tick        int
	ticksPerDir int
	paused      bool
}

func (g *sheetGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.step(-1)
	}
	if g.paused {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerDir {
		g.tick = 0
		g.step(1)
	}
	return nil
}

func (g *sheetGame) step(n int) {
	g.current = (g.current + n + len(actor.Directions)) % len(actor.Directions)
}

func (g *sheetGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	d := actor.Directions[g.current]
	f := d.Frame()
	img := g.sheet.Image(f)
	if img != nil {
		w, h := g.sheet.DisplaySize()
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		op.GeoM.Translate((viewSize-w)/2, (viewSize-h)/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  row %d col %d", d, f.Row, f.Col))
}

func (g *sheetGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	configPath := flag.String("config", "", "YAML config file (embedded defaults if empty)")
	fps := flag.Int("fps", 2, "facings shown per second")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sheet, err := actor.LoadSpriteSheet(cfg.Actor.Sheet, cfg.Actor.FrameWidth, cfg.Actor.FrameHeight, cfg.Actor.Scale)
	if err != nil {
		log.Fatalf("sheetview: %v", err)
	}

	ticks := 60
	if *fps > 0 {
		ticks = max(60 / *fps, 1)
	}

	g := &sheetGame{sheet: sheet, ticksPerDir: ticks}
	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetWindowTitle("isowalk facings")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
