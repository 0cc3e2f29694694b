package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/isowalk/iso"
)

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.TPS != 60 {
		t.Fatalf("window = %+v", cfg.Window)
	}
	p, err := cfg.Projection.Projection()
	if err != nil {
		t.Fatalf("projection: %v", err)
	}
	if p.VerticalFactor != iso.DefaultVerticalFactor {
		t.Fatalf("vertical factor = %v, want %v", p.VerticalFactor, iso.DefaultVerticalFactor)
	}
	if l := cfg.Tiles.Layout(); l.Variants() != 4 || l.SlotSize != 64 {
		t.Fatalf("tile layout = %+v", l)
	}
	if cfg.Actor.FrameWidth != 32 || cfg.Actor.FrameHeight != 48 || cfg.Actor.Scale != 2 {
		t.Fatalf("actor = %+v", cfg.Actor)
	}
	if cfg.Map != "meadow.yaml" {
		t.Fatalf("map = %q", cfg.Map)
	}
}

func TestLoadOverridesKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := []byte("camera:\n  zoom: 2\nmap: island.yaml\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Camera.Zoom != 2 || cfg.Map != "island.yaml" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Tiles.Sheet != "tileset.png" || cfg.Window.Title != "isowalk" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	base, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero_width", func(c *Config) { c.Window.Width = 0 }},
		{"zero_tps", func(c *Config) { c.Window.TPS = 0 }},
		{"no_columns", func(c *Config) { c.Tiles.Columns = 0 }},
		{"negative_margin", func(c *Config) { c.Tiles.CullMargin = -1 }},
		{"no_actor_sheet", func(c *Config) { c.Actor.Sheet = "" }},
		{"zero_speed", func(c *Config) { c.Actor.Speed = 0 }},
		{"zero_zoom", func(c *Config) { c.Camera.Zoom = 0 }},
		{"zero_factor", func(c *Config) { c.Projection.VerticalFactor = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
