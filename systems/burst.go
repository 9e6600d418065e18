package systems

import (
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ConeOfInfluence spreads n shots evenly over spread degrees centered on
// bearing. One shot, or no spread, fires straight at the bearing.
func ConeOfInfluence(bearing, spread float64, n int) (start, step, end float64) {
	start, end = bearing, bearing
	if n > 1 && spread > 0 {
		half := spread / 2
		start = bearing - half
		end = bearing + half
		step = spread / float64(n-1)
	}
	return start, step, end
}

// BurstAngles lists the firing angles of one burst.
func BurstAngles(bearing, spread float64, n int) []float64 {
	start, step, _ := ConeOfInfluence(bearing, spread, n)
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = start + step*float64(i)
	}
	return angles
}

// burstRun is a shooter's firing sequence, resumed by the scheduler.
type burstRun struct {
	enemy  *donburi.Entry
	cfg    config.ShooterConfig
	target dmath.Vec2

	burst, shot             int
	start, step, end, angle float64
}

func (r *burstRun) fire(w donburi.World) {
	if !alive(r.enemy) {
		return
	}
	if r.shot == 0 {
		r.aim(w)
	}

	n := r.cfg.ProjectilesPerBurst
	var wait time.Duration
	if r.cfg.Stagger {
		r.shoot(w)
		wait = r.cfg.TimeBetweenBursts / time.Duration(max(1, n))
		if r.shot < n {
			Schedule(w, r.enemy, wait, r.fire)
			return
		}
		wait += r.cfg.TimeBetweenBursts
	} else {
		for r.shot < n {
			r.shoot(w)
		}
	}

	r.shot = 0
	r.burst++
	if r.burst < r.cfg.BurstCount {
		if !r.cfg.Stagger {
			wait = r.cfg.TimeBetweenBursts
		}
		Schedule(w, r.enemy, wait, r.fire)
		return
	}
	Schedule(w, r.enemy, wait+r.cfg.RestTime, func(w donburi.World) {
		components.Enemy.Get(r.enemy).Shooting = false
	})
}

// aim sets up the cone for the next burst. Oscillating shooters sweep odd
// bursts back the way the previous one came.
func (r *burstRun) aim(w donburi.World) {
	if r.cfg.Oscillate && r.burst%2 == 1 {
		r.start, r.end = r.end, r.start
		r.step = -r.step
	} else {
		if p, ok := livingPlayer(w); ok {
			r.target = components.Object.Get(p).Center()
		}
		from := components.Object.Get(r.enemy).Center()
		r.start, r.step, r.end = ConeOfInfluence(bearing(from, r.target), r.cfg.AngleSpread, r.cfg.ProjectilesPerBurst)
	}
	r.angle = r.start
}

func (r *burstRun) shoot(w donburi.World) {
	dir := fromAngle(r.angle)
	origin := components.Object.Get(r.enemy).Center()
	factory.CreateProjectile(w, factory.ProjectileSpec{
		Side:     components.SideEnemy,
		Center:   origin.Add(dir.MulScalar(r.cfg.StartingDistance)),
		Velocity: dir.MulScalar(r.cfg.BulletSpeed),
		Range:    r.cfg.BulletRange,
		Damage:   r.cfg.BulletDamage,
		Size:     r.cfg.BulletSize,
	})
	r.angle += r.step
	r.shot++
}
