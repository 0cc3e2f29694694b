package main

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isowalk/actor"
	"github.com/milk9111/isowalk/collision"
	"github.com/milk9111/isowalk/config"
	"github.com/milk9111/isowalk/input"
	"github.com/milk9111/isowalk/iso"
	"github.com/milk9111/isowalk/maps"
	"github.com/milk9111/isowalk/render"
	"github.com/milk9111/isowalk/tilemap"
)

var clearColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}

type Options struct {
	Debug bool
	Watch bool
	Cull  bool
}

type Game struct {
	frames int

	cfg  config.Config
	opts Options
	proj iso.Projection

	grid      *tilemap.Grid
	tiles     *tilemap.Renderer
	actor     *actor.Actor
	obstacles *collision.Layer
	camera    *render.Camera
	input     *input.Reader

	current *maps.Map
	watcher *maps.Watcher

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(cfg config.Config, opts Options) (*Game, error) {
	proj, err := cfg.Projection.Projection()
	if err != nil {
		return nil, err
	}

	grid := tilemap.NewGrid()
	tiles, err := tilemap.NewRenderer(grid, proj, cfg.Tiles.Sheet, cfg.Tiles.Layout())
	if err != nil {
		return nil, err
	}
	tiles.CullMargin = cfg.Tiles.CullMargin

	sheet, err := actor.LoadSpriteSheet(cfg.Actor.Sheet, cfg.Actor.FrameWidth, cfg.Actor.FrameHeight, cfg.Actor.Scale)
	if err != nil {
		tiles.Dispose()
		return nil, err
	}

	obstacles := collision.NewLayer()
	a := actor.New(0, 0, proj, cfg.Actor.Speed)
	a.SetSpriteSheet(sheet)
	a.SetCollisionLayer(obstacles)
	a.SetCollisionBox(cfg.Actor.CollisionWidth, cfg.Actor.CollisionHeight)

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		proj:      proj,
		grid:      grid,
		tiles:     tiles,
		actor:     a,
		obstacles: obstacles,
		camera:    render.NewCamera(cfg.Window.Width, cfg.Window.Height, cfg.Camera.Zoom),
		input:     input.NewReader(),
	}
	g.pauseUI = NewPauseUI(g)

	if err := g.loadMap(cfg.Map, true); err != nil {
		g.Close()
		return nil, err
	}

	if opts.Watch {
		w, err := maps.NewWatcher(maps.DefaultDirs()...)
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.camera.Follow(g.actor.RenderPosition())
	return g, nil
}

// loadMap swaps in the named map. The actor is moved to the spawn point
// only when respawn is set.
func (g *Game) loadMap(name string, respawn bool) error {
	m, err := maps.LoadMap(name)
	if err != nil {
		return err
	}
	if err := m.Apply(context.Background(), g.grid); err != nil {
		return err
	}

	g.obstacles.Clear()
	for _, r := range m.Rects() {
		g.obstacles.AddRect(r)
	}
	g.current = m
	if respawn {
		g.actor.SetPosition(m.SpawnPoint())
	}
	return nil
}

func (g *Game) reloadMap(respawn bool) {
	if g.current == nil {
		return
	}
	if err := g.loadMap(g.cfg.Map, respawn); err != nil {
		log.Printf("maps: reload %s: %v", g.cfg.Map, err)
		return
	}
	log.Printf("maps: reloaded %s (%d tiles)", g.current.Name, g.grid.Len())
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for _, path := range g.watcher.Poll() {
		if g.current != nil && g.current.Uses(path) {
			changed = true
		}
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("watch: %v", err)
		}
	default:
	}
	if changed {
		g.reloadMap(false)
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.quit {
		return ebiten.Termination
	}

	g.pollWatcher()

	if input.PausePressed() {
		g.paused = !g.paused
		g.input.Enabled = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if input.DebugTogglePressed() {
		g.opts.Debug = !g.opts.Debug
	}
	if input.CullTogglePressed() {
		g.opts.Cull = !g.opts.Cull
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.actor.Update(dt, g.input.Intent())
	g.camera.Follow(g.actor.RenderPosition())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)

	ctx := &render.Context{Screen: screen, Camera: g.camera}
	if g.opts.Cull {
		g.tiles.DrawInView(ctx)
	} else {
		g.tiles.Draw(ctx)
	}
	g.actor.Draw(ctx)

	if g.opts.Debug {
		g.drawDebug(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) resume() {
	g.paused = false
	g.input.Enabled = true
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases images and stops the watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watch: close: %v", err)
		}
		g.watcher = nil
	}
	g.tiles.Dispose()
	g.actor.Dispose()
}

func (g *Game) status() string {
	name := ""
	if g.current != nil {
		name = g.current.Name
	}
	pos := g.actor.Position()
	rp := g.actor.RenderPosition()
	return fmt.Sprintf("Frames: %d    FPS: %.2f\nmap: %s  tiles: %d  cull: %v\npos: (%.2f, %.2f)  render: (%.1f, %.1f)\nfacing: %s",
		g.frames, ebiten.ActualFPS(), name, g.grid.Len(), g.opts.Cull, pos.X, pos.Y, rp.X, rp.Y, g.actor.Facing())
}
