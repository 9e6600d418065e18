package systems

import (
	"log/slog"

	"github.com/automoto/thornrun/components"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ApplyKnockback pushes e away from source and locks its voluntary movement
// until the knockback duration elapses. A second knockback restarts the timer.
func ApplyKnockback(w donburi.World, e *donburi.Entry, source dmath.Vec2, thrust float64) {
	if !e.Valid() || !e.HasComponent(components.Knockback) || !e.HasComponent(components.Body) {
		return
	}
	kb := components.Knockback.Get(e)
	body := components.Body.Get(e)
	obj := components.Object.Get(e)

	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}
	impulse := unit(obj.Center().Sub(source)).MulScalar(thrust * mass)
	body.Velocity = body.Velocity.Add(impulse.MulScalar(1 / mass))
	body.Intent = dmath.Vec2{}

	d := Settings(w).Knockback.Duration
	kb.Locked = true
	kb.Until = Now(w) + d
	Cancel(w, kb.Clear)
	kb.Clear = Schedule(w, e, d, func(w donburi.World) {
		clearKnockback(e)
	})
	slog.Debug("knockback", "entity", e.Entity(), "velocity", body.Velocity)
}

func clearKnockback(e *donburi.Entry) {
	kb := components.Knockback.Get(e)
	body := components.Body.Get(e)
	body.Velocity = dmath.Vec2{}
	kb.Locked = false
	kb.Clear = 0
}

// KnockedBack reports whether e's voluntary movement is currently locked.
func KnockedBack(e *donburi.Entry) bool {
	return e.HasComponent(components.Knockback) && components.Knockback.Get(e).Locked
}
