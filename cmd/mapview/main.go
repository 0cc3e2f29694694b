// Command mapview previews an isowalk map in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/isowalk/maps"
	"github.com/milk9111/isowalk/tilemap"
)

type previewer struct {
	screen tcell.Screen
	name   string
	grid   *tilemap.Grid
	m      *maps.Map
	view   view
	status string
}

func (p *previewer) load() {
	m, err := maps.LoadMap(p.name)
	if err != nil {
		p.status = err.Error()
		return
	}
	if err := m.Apply(context.Background(), p.grid); err != nil {
		p.status = err.Error()
		return
	}
	p.m = m
	p.status = fmt.Sprintf("%s: %d tiles, %d obstacles  [arrows] pan  [r] reload  [q] quit", m.Name, p.grid.Len(), len(m.Obstacles))
}

func (p *previewer) draw() {
	p.screen.Clear()
	p.view.width, p.view.height = p.screen.Size()
	if p.m != nil {
		for _, gl := range paint(p.view, p.grid, p.m.Rects(), p.m.SpawnPoint()) {
			p.screen.SetContent(gl.x, gl.y, gl.r, nil, gl.style)
		}
	}
	for i, r := range p.status {
		p.screen.SetContent(i, p.view.height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	p.screen.Show()
}

// handle returns false when the previewer should exit.
func (p *previewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			p.view.panX += 4
		case tcell.KeyRight:
			p.view.panX -= 4
		case tcell.KeyUp:
			p.view.panY += 2
		case tcell.KeyDown:
			p.view.panY -= 2
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				p.load()
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func main() {
	name := flag.String("map", "meadow.yaml", "map file in maps/")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("mapview: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("mapview: %v", err)
	}
	defer screen.Fini()

	p := &previewer{screen: screen, name: *name, grid: tilemap.NewGrid()}
	p.load()
	for {
		p.draw()
		if !p.handle(screen.PollEvent()) {
			return
		}
	}
}
