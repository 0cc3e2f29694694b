package maps

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Dir is the on-disk directory whose files override the embedded maps.
const Dir = "maps"

//go:embed *.yaml
var mapsFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load returns the raw map file, preferring a disk copy under Dir.
func Load(name string) ([]byte, error) {
	clean := cleanMapPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return mapsFS.ReadFile(clean)
}

// LoadScript returns a generation script, preferring a disk copy.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

// ModTime reports the modification time of the disk copy of name, if any.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanMapPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Names lists the embedded map files.
func Names() []string {
	entries, err := mapsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && isMapFile(e.Name()) {
			out = append(out, e.Name())
		}
	}
	return out
}

func cleanMapPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := cleanMapPath(path)
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return "scripts/" + s
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
