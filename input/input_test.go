package input

import (
	"testing"

	"github.com/milk9111/isowalk/actor"
)

func TestStickIntent(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want actor.Intent
	}{
		{"centered", 0, 0, actor.Intent{}},
		{"inside_deadzone", 0.15, -0.19, actor.Intent{}},
		{"left", -0.8, 0, actor.Intent{Left: true}},
		{"right", 0.5, 0.1, actor.Intent{Right: true}},
		{"up", 0, -1, actor.Intent{Up: true}},
		{"down_right", 0.7, 0.7, actor.Intent{Down: true, Right: true}},
		{"up_left", -0.3, -0.3, actor.Intent{Up: true, Left: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StickIntent(tc.x, tc.y); got != tc.want {
				t.Fatalf("StickIntent(%v,%v) = %+v, want %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	got := Merge(actor.Intent{Up: true}, actor.Intent{Right: true})
	if got != (actor.Intent{Up: true, Right: true}) {
		t.Fatalf("Merge = %+v", got)
	}
}

func TestDisabledReaderIsIdle(t *testing.T) {
	r := &Reader{}
	if !r.Intent().Idle() {
		t.Fatalf("disabled reader returned %+v", r.Intent())
	}
	var nilReader *Reader
	if !nilReader.Intent().Idle() {
		t.Fatalf("nil reader should be idle")
	}
}
