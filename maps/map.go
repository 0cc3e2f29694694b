// Package maps loads tile maps from YAML and optional tengo generation
// scripts.
package maps

import (
	"context"
	"fmt"
	"time"

	"github.com/milk9111/isowalk/common"
	"github.com/milk9111/isowalk/tilemap"
	"gopkg.in/yaml.v3"
)

// ScriptTimeout bounds a single generation script run.
const ScriptTimeout = 2 * time.Second

type Map struct {
	Name      string       `yaml:"name"`
	Tiles     [][]int      `yaml:"tiles"`
	Script    string       `yaml:"script"`
	Obstacles []RectSpec   `yaml:"obstacles"`
	Spawn     *common.Vec2 `yaml:"spawn"`

	file string
}

// RectSpec is an obstacle in grid units. X, Y is the corner nearest the
// origin.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoadMap reads and decodes the map file name.
func LoadMap(name string) (*Map, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("maps: load %s: %w", name, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("maps: %s: %w", name, err)
	}
	m.file = cleanMapPath(name)
	if m.Name == "" {
		m.Name = m.file
	}
	return m, nil
}

func Parse(data []byte) (*Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	for i, o := range m.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return nil, fmt.Errorf("obstacle %d has size %vx%v", i, o.Width, o.Height)
		}
	}
	return &m, nil
}

// Build produces a fresh grid: the tile array first, then the script on
// top of it.
func (m *Map) Build(ctx context.Context) (*tilemap.Grid, error) {
	g := tilemap.NewGrid()
	if len(m.Tiles) > 0 {
		if err := g.LoadFromArray(m.Tiles); err != nil {
			return nil, fmt.Errorf("maps: %s tiles: %w", m.Name, err)
		}
	}
	if m.Script != "" {
		src, err := LoadScript(m.Script)
		if err != nil {
			return nil, fmt.Errorf("maps: %s script %s: %w", m.Name, m.Script, err)
		}
		ctx, cancel := context.WithTimeout(ctx, ScriptTimeout)
		defer cancel()
		if err := RunScript(ctx, m.Script, src, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Apply builds the map and swaps the result into g. On error g is left as
// it was.
func (m *Map) Apply(ctx context.Context, g *tilemap.Grid) error {
	built, err := m.Build(ctx)
	if err != nil {
		return err
	}
	g.ReplaceWith(built)
	return nil
}

func (m *Map) Rects() []common.Rect {
	out := make([]common.Rect, 0, len(m.Obstacles))
	for _, o := range m.Obstacles {
		out = append(out, common.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}
	return out
}

// SpawnPoint is where the actor starts, the origin unless set.
func (m *Map) SpawnPoint() common.Vec2 {
	if m.Spawn == nil {
		return common.Vec2{}
	}
	return *m.Spawn
}

// Uses reports whether a change to the file at path affects this map.
func (m *Map) Uses(path string) bool {
	clean := cleanMapPath(relToDir(path))
	if clean == m.file {
		return true
	}
	return m.Script != "" && clean == cleanScriptPath(m.Script)
}
