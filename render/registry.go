package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isowalk/assets"
)

// Sheets is a keyed cache of sprite sheets shared by the tile renderer and
// the actor. Every successful Acquire must be paired with one Release; the
// texture is freed when the last holder releases it.
type Sheets struct {
	entries map[string]*sheetEntry
	load    func(key string) (*ebiten.Image, error)
	free    func(img *ebiten.Image)
}

type sheetEntry struct {
	img  *ebiten.Image
	refs int
}

func NewSheets() *Sheets {
	return &Sheets{
		entries: make(map[string]*sheetEntry),
		load:    loadImageFromAssetsOrFS,
		free:    (*ebiten.Image).Deallocate,
	}
}

var sheets = NewSheets()

// Acquire returns the sheet named key, loading it on first use.
func (s *Sheets) Acquire(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if e, ok := s.entries[key]; ok {
		e.refs++
		return e.img, nil
	}
	img, err := s.load(key)
	if err != nil {
		return nil, err
	}
	s.entries[key] = &sheetEntry{img: img, refs: 1}
	return img, nil
}

// Release drops one hold on key. Releasing an unknown key is a no-op.
func (s *Sheets) Release(key string) {
	e, ok := s.entries[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	delete(s.entries, key)
	s.free(e.img)
}

// Refs reports how many holders key currently has.
func (s *Sheets) Refs(key string) int {
	if e, ok := s.entries[key]; ok {
		return e.refs
	}
	return 0
}

// LoadImage acquires key from the shared cache.
func LoadImage(key string) (*ebiten.Image, error) {
	return sheets.Acquire(key)
}

// ReleaseImage releases one hold on key in the shared cache.
func ReleaseImage(key string) {
	sheets.Release(key)
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	for _, p := range []string{path, filepath.Join("assets", path)} {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("render: image %s not found in assets or on disk", path)
}
