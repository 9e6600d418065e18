package systems

import (
	"testing"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// runLaser ticks the beam in 10ms frames.
func runLaser(w donburi.World, frames int) {
	for range frames {
		tick(w, 10*time.Millisecond)
		UpdateLasers(w)
	}
}

func TestLaser_GrowsToFullLengthThenFades(t *testing.T) {
	w := newTestWorld(t, nopServices())
	e := factory.CreateLaser(w, dmath.NewVec2(100, 100), dmath.NewVec2(1, 0), 112, time.Second, 2)
	l := components.Laser.Get(e)

	runLaser(w, 50)
	assert.InDelta(t, 56.5, l.Length, 1.5)
	assert.False(t, l.Done)
	assert.False(t, e.HasComponent(components.Fade))

	runLaser(w, 60)
	assert.InDelta(t, 112, l.Length, 1e-3)
	assert.True(t, l.Done)
	assert.False(t, l.Blocked)
	assert.True(t, e.HasComponent(components.Fade), "fading starts when growth ends")
}

func TestLaser_StopsAtWall(t *testing.T) {
	w := newTestWorld(t, nopServices())
	factory.CreateWall(w, 170, 80, 16, 40)
	beyond := SpawnEnemy(w, 200, 94, "Brute", false)
	e := factory.CreateLaser(w, dmath.NewVec2(100, 100), dmath.NewVec2(1, 0), 112, time.Second, 2)
	l := components.Laser.Get(e)

	runLaser(w, 120)
	require.True(t, l.Done)
	assert.True(t, l.Blocked)
	assert.InDelta(t, 70, l.Length, 1e-9)
	assert.True(t, e.HasComponent(components.Fade))
	assert.Equal(t, 5, components.Health.Get(beyond).Current, "nothing past the wall is hit")
}

func TestLaser_HitsEachEnemyOnce(t *testing.T) {
	w := newTestWorld(t, nopServices())
	near := SpawnEnemy(w, 130, 94, "Brute", false)
	far := SpawnEnemy(w, 180, 92, "Brute", false)
	e := factory.CreateLaser(w, dmath.NewVec2(100, 100), dmath.NewVec2(1, 0), 112, time.Second, 2)

	runLaser(w, 40)
	assert.Equal(t, 3, components.Health.Get(near).Current)
	assert.Equal(t, 5, components.Health.Get(far).Current, "the beam has not reached it yet")

	runLaser(w, 80)
	assert.Equal(t, 3, components.Health.Get(near).Current, "the beam stays on the enemy but hits once")
	assert.Equal(t, 3, components.Health.Get(far).Current)
	assert.Len(t, components.Laser.Get(e).Hit, 2)
}

func TestLaser_BreaksCratesAndPassesThrough(t *testing.T) {
	w := newTestWorld(t, nopServices())
	crate := factory.CreateDestructible(w, 120, 94, 12, 12)
	e := factory.CreateLaser(w, dmath.NewVec2(100, 100), dmath.NewVec2(1, 0), 112, time.Second, 2)
	l := components.Laser.Get(e)

	runLaser(w, 30)
	assert.False(t, crate.Valid())

	runLaser(w, 80)
	assert.False(t, l.Blocked)
	assert.InDelta(t, 112, l.Length, 1e-3)
}
