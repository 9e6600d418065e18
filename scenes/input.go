package scenes

import (
	"github.com/automoto/thornrun/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/features/math"
)

var gamepadIDs []ebiten.GamepadID

// pressed reports whether any binding of the action is held.
func (k *KeyMap) pressed(id ActionID) bool {
	b := &k.Bindings[id]
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range b.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
				return true
			}
		}
	}
	return false
}

// justPressed reports whether any binding of the action went down this frame.
func (k *KeyMap) justPressed(id ActionID) bool {
	b := &k.Bindings[id]
	for _, key := range b.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, btn := range b.MouseButtons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			return true
		}
	}
	for _, gp := range gamepadIDs {
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gp, btn) {
				return true
			}
		}
	}
	return false
}

// moveAxis combines digital directions with the left analog stick.
func (k *KeyMap) moveAxis() math.Vec2 {
	var v math.Vec2
	if k.pressed(ActionMoveLeft) {
		v.X--
	}
	if k.pressed(ActionMoveRight) {
		v.X++
	}
	if k.pressed(ActionMoveUp) {
		v.Y--
	}
	if k.pressed(ActionMoveDown) {
		v.Y++
	}
	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vert := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)
		if h*h+vert*vert > k.AnalogDeadzone*k.AnalogDeadzone {
			v.X += h
			v.Y += vert
		}
	}
	return v
}

// readInput fills the player's input slot for this frame. The cursor is in
// screen space, which equals world space for a single-screen arena.
func (k *KeyMap) readInput(in *components.PlayerInputData) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	in.Move = k.moveAxis()
	cx, cy := ebiten.CursorPosition()
	in.Aim = math.NewVec2(float64(cx), float64(cy))
	in.AttackHeld = k.pressed(ActionAttack)
	in.Dash = k.justPressed(ActionDash)
	in.SelectSlot = -1
	for i, id := range []ActionID{ActionSlot1, ActionSlot2, ActionSlot3, ActionSlot4, ActionSlot5} {
		if k.justPressed(id) {
			in.SelectSlot = i
		}
	}
}
