package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is a rigid body moved by the fixed-rate physics tick.
type BodyData struct {
	Velocity math.Vec2 // px/s, only integrated while knocked back
	Intent   math.Vec2 // voluntary direction, unit length or zero
	Speed    float64   // px/s applied to Intent
	Mass     float64
	Drag     float64

	// LastVoluntary is the displacement the intent produced in the last step.
	LastVoluntary math.Vec2
}

var Body = donburi.NewComponentType[BodyData]()

type FacingData struct {
	Left bool
	Dir  math.Vec2
}

var Facing = donburi.NewComponentType[FacingData]()
