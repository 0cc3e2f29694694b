package collision

import (
	"testing"

	"github.com/milk9111/isowalk/common"
)

func TestLayerBlocked(t *testing.T) {
	l := NewLayer()
	l.AddRect(common.Rect{X: 2, Y: 2, Width: 2, Height: 1})
	l.AddRect(common.Rect{X: -5, Y: -1, Width: 1, Height: 3})
	l.AddRect(common.Rect{X: 9, Y: 9, Width: 0, Height: 4})

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (empty rect ignored)", l.Len())
	}

	tests := []struct {
		name string
		box  common.Rect
		want bool
	}{
		{"clear", common.Rect{X: 0, Y: 0, Width: 1, Height: 1}, false},
		{"overlap_first", common.Rect{X: 3.5, Y: 2.5, Width: 1, Height: 1}, true},
		{"inside_second", common.Rect{X: -4.8, Y: 0, Width: 0.5, Height: 0.5}, true},
		{"touching_edge", common.Rect{X: 4, Y: 2, Width: 1, Height: 1}, false},
		{"between", common.Rect{X: -3, Y: 0, Width: 4, Height: 1}, false},
		{"empty_box", common.Rect{X: 3, Y: 2.5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.Blocked(tc.box); got != tc.want {
				t.Fatalf("Blocked(%+v) = %v, want %v", tc.box, got, tc.want)
			}
		})
	}
}

func TestLayerClear(t *testing.T) {
	l := NewLayer()
	r := common.Rect{X: 0, Y: 0, Width: 1, Height: 1}
	l.AddRect(r)
	if got := l.Rects(); len(got) != 1 || got[0] != r {
		t.Fatalf("Rects() = %+v", got)
	}
	l.Clear()
	if l.Len() != 0 || l.Blocked(common.Rect{X: 0.2, Y: 0.2, Width: 0.5, Height: 0.5}) {
		t.Fatalf("Clear left obstacles behind")
	}
	l.AddRect(r)
	if !l.Blocked(common.Rect{X: 0.2, Y: 0.2, Width: 0.5, Height: 0.5}) {
		t.Fatalf("re-added obstacle not blocking")
	}
}

func TestNilLayer(t *testing.T) {
	var l *Layer
	if l.Blocked(common.Rect{Width: 1, Height: 1}) {
		t.Fatalf("nil layer blocked")
	}
	l.Clear()
	if l.Rects() != nil {
		t.Fatalf("nil layer returned rects")
	}
}
