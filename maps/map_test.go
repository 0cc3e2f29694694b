package maps

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/isowalk/common"
	"github.com/milk9111/isowalk/tilemap"
)

func TestMeadowMatchesArrayLayout(t *testing.T) {
	m, err := LoadMap("meadow.yaml")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	g, err := m.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", g.Len())
	}

	tests := []struct {
		x, y int
		want tilemap.Variant
	}{
		{-5, 5, 0},
		{-3, 5, 2},
		{0, 2, 3},
		{3, -4, 0},
		{3, 4, 1},
	}
	for _, tc := range tests {
		v, ok := g.Get(tc.x, tc.y)
		if !ok || v != tc.want {
			t.Fatalf("Get(%d,%d) = (%v,%v), want (%v,true)", tc.x, tc.y, v, ok, tc.want)
		}
	}
	if _, ok := g.Get(5, 0); ok {
		t.Fatalf("cell (5,0) should be outside the meadow")
	}
	if m.SpawnPoint() != (common.Vec2{}) {
		t.Fatalf("spawn = %v", m.SpawnPoint())
	}
}

func TestIslandScript(t *testing.T) {
	m, err := LoadMap("maps/island.yaml")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if m.Name != "island" {
		t.Fatalf("Name = %q", m.Name)
	}
	g, err := m.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tests := []struct {
		name  string
		x, y  int
		want  tilemap.Variant
		exist bool
	}{
		{"clearing_even", 0, 0, 0, true},
		{"clearing_odd", 1, 0, 1, true},
		{"path_start", 3, 0, 2, true},
		{"path_next", 4, 0, 3, true},
		{"path_cycles", 5, 0, 2, true},
		{"north_shore", 0, 7, 0, true},
		{"cove", 0, -7, 0, false},
		{"sea", 7, 7, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := g.Get(tc.x, tc.y)
			if ok != tc.exist {
				t.Fatalf("Get(%d,%d) present=%v, want %v", tc.x, tc.y, ok, tc.exist)
			}
			if tc.exist && tc.name != "north_shore" && v != tc.want {
				t.Fatalf("Get(%d,%d) = %v, want %v", tc.x, tc.y, v, tc.want)
			}
		})
	}

	if got := len(m.Rects()); got != 3 {
		t.Fatalf("Rects() len = %d, want 3", got)
	}
}

func TestRunScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", "set_tile(1, 2"},
		{"wrong_args", "set_tile(1, 2)"},
		{"bad_type", `set_tile("a", 0, 0)`},
		{"empty_pattern", "fill_area(0, 0, 2, 2, [])"},
		{"negative_variant", "set_tile(0, 0, -1)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := RunScript(context.Background(), "broken.tengo", []byte(tc.src), tilemap.NewGrid())
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), "broken.tengo") {
				t.Fatalf("error %q does not name the script", err)
			}
		})
	}
}

func TestRunScriptTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := RunScript(ctx, "spin.tengo", []byte("for {}"), tilemap.NewGrid())
	if err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestRunScriptGridOps(t *testing.T) {
	src := `
fill_area(0, 0, 2, 2, [0, 1])
set_tile(5, 5, 3)
v := get_tile(5, 5)
set_tile(6, 6, v)
remove_tile(0, 0)
if get_tile(0, 0) == undefined {
	set_tile(9, 9, 2)
}
`
	g := tilemap.NewGrid()
	if err := RunScript(context.Background(), "ops.tengo", []byte(src), g); err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	want := map[[2]int]tilemap.Variant{{1, 0}: 1, {0, 1}: 0, {1, 1}: 1, {5, 5}: 3, {6, 6}: 3, {9, 9}: 2}
	if g.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", g.Len(), len(want))
	}
	for p, v := range want {
		if got, ok := g.Get(p[0], p[1]); !ok || got != v {
			t.Fatalf("Get(%d,%d) = (%v,%v), want %v", p[0], p[1], got, ok, v)
		}
	}

	if err := RunScript(context.Background(), "clear.tengo", []byte("clear()"), g); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if g.Len() != 0 {
		t.Fatalf("clear() left %d cells", g.Len())
	}
}

func TestApplyKeepsGridOnError(t *testing.T) {
	g := tilemap.NewGrid()
	g.Set(1, 1, 2)
	m := &Map{Name: "ragged", Tiles: [][]int{{0, 1}, {0}}}
	err := m.Apply(context.Background(), g)
	if !errors.Is(err, tilemap.ErrInvalidArgument) {
		t.Fatalf("Apply() = %v, want ErrInvalidArgument", err)
	}
	if v, ok := g.Get(1, 1); !ok || v != 2 || g.Len() != 1 {
		t.Fatalf("grid changed after failed Apply")
	}
}

func TestBuildRejectsNegativeTile(t *testing.T) {
	m, err := Parse([]byte("name: bad\ntiles:\n  - [0, -3]\n  - [7, 1]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g := tilemap.NewGrid()
	g.Set(2, 2, 1)
	if err := m.Apply(context.Background(), g); !errors.Is(err, tilemap.ErrInvalidArgument) {
		t.Fatalf("Apply() = %v, want ErrInvalidArgument", err)
	}
	if v, ok := g.Get(2, 2); !ok || v != 1 || g.Len() != 1 {
		t.Fatalf("grid changed after rejected map")
	}
}

func TestParseRejectsEmptyObstacle(t *testing.T) {
	if _, err := Parse([]byte("obstacles:\n  - {x: 0, y: 0, width: 0, height: 1}\n")); err == nil {
		t.Fatalf("expected error for zero-width obstacle")
	}
}

func TestMapUses(t *testing.T) {
	m, err := LoadMap("island.yaml")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	tests := []struct {
		path string
		want bool
	}{
		{"maps/island.yaml", true},
		{"/home/me/game/maps/island.yaml", true},
		{"maps/scripts/island.tengo", true},
		{"maps/meadow.yaml", false},
		{"maps/scripts/other.tengo", false},
	}
	for _, tc := range tests {
		if got := m.Uses(tc.path); got != tc.want {
			t.Fatalf("Uses(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["meadow.yaml"] || !found["island.yaml"] {
		t.Fatalf("Names() = %v", names)
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	path := filepath.Join(dir, "test.yaml")
	if err := os.WriteFile(path, []byte("name: test\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event for %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", path)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
