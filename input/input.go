// Package input turns keyboard and gamepad state into actor intents.
package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/isowalk/actor"
)

const stickDeadzone = 0.2

// Reader samples held movement keys each frame.
type Reader struct {
	// Enabled gates movement; a paused game reads an idle intent.
	Enabled bool
}

func NewReader() *Reader {
	return &Reader{Enabled: true}
}

// Intent returns the movement keys held this frame.
func (r *Reader) Intent() actor.Intent {
	if r == nil || !r.Enabled {
		return actor.Intent{}
	}

	in := actor.Intent{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		in = Merge(in, StickIntent(lx, ly))

		in.Up = in.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
		in.Down = in.Down || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		in.Left = in.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
	}
	return in
}

// StickIntent converts analog stick axes into held keys. Axes inside the
// dead zone count as released. Stick Y is positive downward.
func StickIntent(x, y float64) actor.Intent {
	var in actor.Intent
	if math.Abs(x) > stickDeadzone {
		in.Left = x < 0
		in.Right = x > 0
	}
	if math.Abs(y) > stickDeadzone {
		in.Up = y < 0
		in.Down = y > 0
	}
	return in
}

// Merge ORs two intents.
func Merge(a, b actor.Intent) actor.Intent {
	return actor.Intent{
		Up:    a.Up || b.Up,
		Down:  a.Down || b.Down,
		Left:  a.Left || b.Left,
		Right: a.Right || b.Right,
	}
}

// PausePressed reports Escape or the gamepad start button this frame.
func PausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		return inpututil.IsStandardGamepadButtonJustPressed(gamepads[0], ebiten.StandardGamepadButtonCenterRight)
	}
	return false
}

// DebugTogglePressed reports F3 this frame.
func DebugTogglePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// CullTogglePressed reports F4 this frame.
func CullTogglePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF4)
}
