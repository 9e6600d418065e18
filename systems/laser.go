package systems

import (
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
)

// UpdateLasers grows staff beams until they reach full range or a wall, hits
// every enemy the beam touches once, and starts the fade when growth ends.
func UpdateLasers(w donburi.World) {
	dt := float32(Delta(w).Seconds())
	for _, e := range collect(components.Laser.Iter(w)) {
		if !e.Valid() {
			continue
		}
		l := components.Laser.Get(e)

		if !l.Done {
			length, finished := l.Grow.Update(dt)
			l.Length = float64(length)
			if d, ok := beamBlocked(w, l); ok {
				l.Length = d
				l.Blocked = true
			}
			if finished || l.Blocked {
				l.Done = true
				fade := factory.NewFade(Settings(w).Laser.FadeDuration)
				donburi.Add(e, components.Fade, &fade)
			}
		}

		beamHits(w, e, l)
	}
}

// beamBlocked returns the distance to the nearest wall along the beam.
func beamBlocked(w donburi.World, l *components.LaserData) (float64, bool) {
	nearest, blocked := l.Length, false
	for wall := range tags.Wall.Iter(w) {
		o := components.Object.Get(wall)
		if d, ok := segmentHitsRect(l.Origin, l.Dir, l.Length, o.X, o.Y, o.W, o.H); ok && d < nearest {
			nearest, blocked = d, true
		}
	}
	return nearest, blocked
}

func beamHits(w donburi.World, e *donburi.Entry, l *components.LaserData) {
	var enemies, crates []*donburi.Entry
	for t := range tags.Enemy.Iter(w) {
		if l.Hit[t.Entity()] || !alive(t) {
			continue
		}
		if beamTouches(l, components.Object.Get(t)) {
			enemies = append(enemies, t)
		}
	}
	for t := range tags.Destructible.Iter(w) {
		if beamTouches(l, components.Object.Get(t)) {
			crates = append(crates, t)
		}
	}
	for _, t := range enemies {
		l.Hit[t.Entity()] = true
		ApplyDamage(w, t, l.Damage, l.Origin)
	}
	for _, t := range crates {
		BreakDestructible(w, t)
	}
}

func beamTouches(l *components.LaserData, o *components.ObjectData) bool {
	_, ok := segmentHitsRect(l.Origin, l.Dir, l.Length, o.X, o.Y, o.W, o.H)
	return ok
}
