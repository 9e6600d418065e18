package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Dashing    bool
	DashReady  bool
	Multiplier float64 // applied to move speed, >1 while dashing
	Slot       int     // selected inventory slot
}

var Player = donburi.NewComponentType[PlayerData]()

// PlayerInputData is written by the host once per frame.
type PlayerInputData struct {
	Move       math.Vec2
	Aim        math.Vec2 // world position of the cursor
	AttackHeld bool
	Dash       bool
	SelectSlot int // -1 when no slot key was pressed
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
