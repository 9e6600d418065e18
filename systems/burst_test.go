package systems

import (
	"math"
	"sort"
	"testing"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestBurstAngles(t *testing.T) {
	tests := []struct {
		name    string
		bearing float64
		spread  float64
		n       int
		want    []float64
	}{
		{"five over forty", 0, 40, 5, []float64{-20, -10, 0, 10, 20}},
		{"offset bearing", 90, 40, 5, []float64{70, 80, 90, 100, 110}},
		{"single shot", 45, 40, 1, []float64{45}},
		{"no spread", 30, 0, 3, []float64{30, 30, 30}},
		{"two shots", 0, 90, 2, []float64{-45, 45}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BurstAngles(tt.bearing, tt.spread, tt.n)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestConeOfInfluence(t *testing.T) {
	start, step, end := ConeOfInfluence(10, 40, 5)
	assert.InDelta(t, -10, start, 1e-9)
	assert.InDelta(t, 10, step, 1e-9)
	assert.InDelta(t, 30, end, 1e-9)

	start, step, end = ConeOfInfluence(10, 40, 1)
	assert.Equal(t, 10.0, start)
	assert.Zero(t, step)
	assert.Equal(t, 10.0, end)
}

// shooterWorld places a shooter west of the player so the bearing is 0.
func shooterWorld(t *testing.T, sc config.ShooterConfig) (donburi.World, *donburi.Entry) {
	t.Helper()
	w := newTestWorld(t, nopServices())
	cfg := Settings(w)
	st := cfg.Enemy.Types["Shooter"]
	st.Shooter = sc
	st.Validate()
	cfg.Enemy.Types["Shooter"] = st

	factory.CreatePlayer(w, 294, 143)
	e := SpawnEnemy(w, 194, 145, "Shooter", false)
	return w, e
}

func shotAngles(w donburi.World) []float64 {
	var angles []float64
	for e := range components.Projectile.Iter(w) {
		v := components.Projectile.Get(e).Velocity
		angles = append(angles, math.Atan2(v.Y, v.X)*180/math.Pi)
	}
	sort.Float64s(angles)
	return angles
}

func TestShooter_SimultaneousBurst(t *testing.T) {
	w, e := shooterWorld(t, config.ShooterConfig{
		BulletSpeed:         100,
		BulletDamage:        1,
		BulletSize:          4,
		BurstCount:          1,
		ProjectilesPerBurst: 5,
		AngleSpread:         40,
		StartingDistance:    10,
		TimeBetweenBursts:   300 * time.Millisecond,
		RestTime:            time.Second,
	})
	enemy := components.Enemy.Get(e)

	enemy.Behavior.Attack(w, e, center(e))
	require.True(t, enemy.Shooting)

	angles := shotAngles(w)
	require.Len(t, angles, 5)
	for i, want := range []float64{-20, -10, 0, 10, 20} {
		assert.InDelta(t, want, angles[i], 1e-6)
	}

	enemy.Behavior.Attack(w, e, center(e))
	assert.Equal(t, 5, projectiles(w), "attacks are ignored while a sequence runs")

	advance(w, 1300*time.Millisecond)
	assert.False(t, enemy.Shooting, "rest ends the sequence")
}

func TestShooter_StaggeredBurstSpacing(t *testing.T) {
	w, e := shooterWorld(t, config.ShooterConfig{
		BulletSpeed:         100,
		BurstCount:          2,
		ProjectilesPerBurst: 3,
		AngleSpread:         20,
		StartingDistance:    10,
		TimeBetweenBursts:   300 * time.Millisecond,
		RestTime:            time.Second,
		Stagger:             true,
	})
	enemy := components.Enemy.Get(e)

	enemy.Behavior.Attack(w, e, center(e))
	assert.Equal(t, 1, projectiles(w))

	advance(w, 100*time.Millisecond)
	assert.Equal(t, 2, projectiles(w))

	advance(w, 100*time.Millisecond)
	assert.Equal(t, 3, projectiles(w))

	// last shot of a burst waits its own gap plus the time between bursts
	advance(w, 300*time.Millisecond)
	assert.Equal(t, 3, projectiles(w))
	advance(w, 100*time.Millisecond)
	assert.Equal(t, 4, projectiles(w))
}

func TestShooter_OscillatingBurstsSweepBack(t *testing.T) {
	w, e := shooterWorld(t, config.ShooterConfig{
		BulletSpeed:         100,
		BurstCount:          2,
		ProjectilesPerBurst: 3,
		AngleSpread:         20,
		StartingDistance:    10,
		TimeBetweenBursts:   300 * time.Millisecond,
		RestTime:            time.Second,
		Oscillate:           true,
	})
	enemy := components.Enemy.Get(e)

	var order []float64
	seen := map[donburi.Entity]bool{}
	record := func() {
		for p := range components.Projectile.Iter(w) {
			if seen[p.Entity()] {
				continue
			}
			seen[p.Entity()] = true
			v := components.Projectile.Get(p).Velocity
			order = append(order, math.Round(math.Atan2(v.Y, v.X)*180/math.Pi))
		}
	}

	enemy.Behavior.Attack(w, e, center(e))
	record()
	for range 100 {
		tick(w, 10*time.Millisecond)
		record()
	}

	assert.Equal(t, []float64{-10, 0, 10, 10, 0, -10}, order)
}
