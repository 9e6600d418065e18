package scenes

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionDash
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// KeyMap holds all input mappings
type KeyMap struct {
	Bindings [ActionCount]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// DefaultKeyMap is the keyboard, mouse and gamepad layout used by the arena.
var DefaultKeyMap = KeyMap{
	AnalogDeadzone: 0.25,
	Bindings: [ActionCount]InputBinding{
		ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		ActionMoveUp: {
			Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		ActionMoveDown: {
			Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		ActionAttack: {
			Keys:         []ebiten.Key{ebiten.KeyJ},
			MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		ActionDash: {
			Keys:         []ebiten.Key{ebiten.KeySpace, ebiten.KeyShiftLeft},
			MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		ActionSlot1: {Keys: []ebiten.Key{ebiten.Key1}},
		ActionSlot2: {Keys: []ebiten.Key{ebiten.Key2}},
		ActionSlot3: {Keys: []ebiten.Key{ebiten.Key3}},
		ActionSlot4: {Keys: []ebiten.Key{ebiten.Key4}},
		ActionSlot5: {Keys: []ebiten.Key{ebiten.Key5}},
		ActionRestart: {
			Keys:                   []ebiten.Key{ebiten.KeyR},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
	},
}
