// Package config loads the game settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/isowalk/iso"
	"github.com/milk9111/isowalk/tilemap"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Window     WindowSpec     `yaml:"window"`
	Projection ProjectionSpec `yaml:"projection"`
	Tiles      TilesSpec      `yaml:"tiles"`
	Actor      ActorSpec      `yaml:"actor"`
	Camera     CameraSpec     `yaml:"camera"`
	Map        string         `yaml:"map"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type ProjectionSpec struct {
	TileWidth      float64 `yaml:"tile_width"`
	TileHeight     float64 `yaml:"tile_height"`
	VerticalFactor float64 `yaml:"vertical_factor"`
}

type TilesSpec struct {
	Sheet      string `yaml:"sheet"`
	SlotSize   int    `yaml:"slot_size"`
	Columns    int    `yaml:"columns"`
	Rows       int    `yaml:"rows"`
	CullMargin int    `yaml:"cull_margin"`
}

type ActorSpec struct {
	Sheet           string  `yaml:"sheet"`
	FrameWidth      int     `yaml:"frame_width"`
	FrameHeight     int     `yaml:"frame_height"`
	Scale           float64 `yaml:"scale"`
	Speed           float64 `yaml:"speed"`
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

type CameraSpec struct {
	Zoom float64 `yaml:"zoom"`
}

// Default returns the embedded configuration.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal default.yaml: %w", err)
	}
	return cfg, nil
}

// Load reads path over the embedded defaults. An empty path yields the
// defaults alone.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
		if err := Parse(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes data into cfg. Keys missing from data keep cfg's values.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Window.TPS)
	case c.Tiles.Sheet == "":
		return fmt.Errorf("%w: missing tile sheet", ErrInvalidConfig)
	case c.Tiles.SlotSize <= 0 || c.Tiles.Columns <= 0 || c.Tiles.Rows <= 0:
		return fmt.Errorf("%w: tile layout %d slots of %d", ErrInvalidConfig, c.Tiles.Columns*c.Tiles.Rows, c.Tiles.SlotSize)
	case c.Tiles.CullMargin < 0:
		return fmt.Errorf("%w: cull margin %d", ErrInvalidConfig, c.Tiles.CullMargin)
	case c.Actor.Sheet == "":
		return fmt.Errorf("%w: missing actor sheet", ErrInvalidConfig)
	case c.Actor.FrameWidth <= 0 || c.Actor.FrameHeight <= 0:
		return fmt.Errorf("%w: actor frame %dx%d", ErrInvalidConfig, c.Actor.FrameWidth, c.Actor.FrameHeight)
	case c.Actor.Scale <= 0 || c.Actor.Speed <= 0:
		return fmt.Errorf("%w: actor scale %v speed %v", ErrInvalidConfig, c.Actor.Scale, c.Actor.Speed)
	case c.Actor.CollisionWidth < 0 || c.Actor.CollisionHeight < 0:
		return fmt.Errorf("%w: actor collision box %vx%v", ErrInvalidConfig, c.Actor.CollisionWidth, c.Actor.CollisionHeight)
	case c.Camera.Zoom <= 0:
		return fmt.Errorf("%w: zoom %v", ErrInvalidConfig, c.Camera.Zoom)
	}
	if _, err := c.Projection.Projection(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (p ProjectionSpec) Projection() (iso.Projection, error) {
	return iso.NewProjection(p.TileWidth, p.TileHeight, p.VerticalFactor)
}

func (t TilesSpec) Layout() tilemap.SheetLayout {
	return tilemap.SheetLayout{SlotSize: t.SlotSize, Columns: t.Columns, Rows: t.Rows}
}
