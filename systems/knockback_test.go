package systems

import (
	"testing"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestKnockback_LocksVoluntaryMovement(t *testing.T) {
	w := newTestWorld(t, nopServices())
	p := factory.CreatePlayer(w, 200, 150)
	body := components.Body.Get(p)
	start := center(p)

	ApplyKnockback(w, p, start.Sub(dmath.NewVec2(10, 0)), 160)
	require.True(t, KnockedBack(p))
	assert.InDelta(t, 160, body.Velocity.X, 1e-9)
	assert.InDelta(t, 0, body.Velocity.Y, 1e-9)

	step := 20 * time.Millisecond
	for range 9 {
		body.Intent = dmath.NewVec2(-1, 0)
		tick(w, step)
		UpdatePhysics(w, step)
		assert.Equal(t, dmath.Vec2{}, body.LastVoluntary, "no voluntary displacement while locked")
	}
	assert.Greater(t, center(p).X, start.X, "pushed away from the source")

	tick(w, step)
	assert.False(t, KnockedBack(p))
	assert.Equal(t, dmath.Vec2{}, body.Velocity, "velocity is zeroed when the lock clears")

	body.Intent = dmath.NewVec2(-1, 0)
	UpdatePhysics(w, step)
	assert.Less(t, body.LastVoluntary.X, 0.0)
}

func TestKnockback_SecondHitRestartsTimer(t *testing.T) {
	w := newTestWorld(t, nopServices())
	e := SpawnEnemy(w, 200, 150, "Slime", false)

	ApplyKnockback(w, e, dmath.NewVec2(0, 150), 100)
	advance(w, 150*time.Millisecond)
	ApplyKnockback(w, e, dmath.NewVec2(0, 150), 100)

	advance(w, 150*time.Millisecond)
	assert.True(t, KnockedBack(e), "the first clear task was cancelled")

	advance(w, 50*time.Millisecond)
	assert.False(t, KnockedBack(e))
}

func TestUpdatePlayer_NoIntentWhileKnockedBack(t *testing.T) {
	w := newTestWorld(t, nopServices())
	p := factory.CreatePlayer(w, 200, 150)
	in := components.PlayerInput.Get(p)

	in.Move = dmath.NewVec2(1, 0)
	UpdatePlayer(w)
	assert.Equal(t, dmath.NewVec2(1, 0), components.Body.Get(p).Intent)

	ApplyKnockback(w, p, dmath.NewVec2(0, 0), 100)
	UpdatePlayer(w)
	assert.Equal(t, dmath.Vec2{}, components.Body.Get(p).Intent)
}
