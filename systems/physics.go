package systems

import (
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePhysics advances every body by one fixed step. A knocked back body is
// moved only by its velocity; otherwise only by its voluntary intent.
func UpdatePhysics(w donburi.World, step time.Duration) {
	dt := step.Seconds()
	for e := range components.Body.Iter(w) {
		body := components.Body.Get(e)
		obj := components.Object.Get(e)
		body.LastVoluntary = dmath.Vec2{}

		var delta dmath.Vec2
		switch {
		case KnockedBack(e):
			delta = body.Velocity.MulScalar(dt)
			body.Velocity = body.Velocity.MulScalar(max(0, 1-body.Drag*dt))
		case alive(e):
			delta = body.Intent.MulScalar(body.Speed * dt)
			body.LastVoluntary = delta
		}
		if delta.X == 0 && delta.Y == 0 {
			continue
		}
		moveAndCollide(obj, delta.X, delta.Y)
	}
}
