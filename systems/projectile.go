package systems

import (
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
)

// UpdateProjectiles moves straight shots and resolves what they hit. A shot
// that has used up its range disappears without effect.
func UpdateProjectiles(w donburi.World) {
	dt := Delta(w).Seconds()
	for _, e := range collect(components.Projectile.Iter(w)) {
		if !e.Valid() || e.HasComponent(components.Arc) {
			continue
		}
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		step := p.Velocity.MulScalar(dt)
		obj.X += step.X
		obj.Y += step.Y
		obj.Update()
		p.Traveled += step.Magnitude()

		if p.Range > 0 && p.Traveled >= p.Range {
			destroyEntity(w, e)
			continue
		}
		if projectileHit(w, e, p, obj) {
			destroyEntity(w, e)
		}
	}
}

// projectileHit applies the first hit the projectile makes this tick and
// reports whether the projectile is spent.
func projectileHit(w donburi.World, e *donburi.Entry, p *components.ProjectileData, obj *components.ObjectData) bool {
	hits := overlapping(obj, tags.ResolvSolid, tags.ResolvPlayer, tags.ResolvEnemy)
	pos := obj.Center()
	out := Services(w)

	for _, target := range hits {
		if !opposes(p.Side, target) || !alive(target) {
			continue
		}
		ApplyDamage(w, target, p.Damage, pos)
		out.Presenter.SpawnEffect(config.EffectImpact, pos)
		return true
	}
	for _, target := range hits {
		if target.HasComponent(tags.Destructible) {
			if p.Side == components.SidePlayer {
				BreakDestructible(w, target)
			}
			continue
		}
		if target.HasComponent(tags.Wall) {
			out.Presenter.SpawnEffect(config.EffectImpact, pos)
			return true
		}
	}
	return false
}

// UpdateArcs advances every arcing entity. Landing is exact: on the final
// step the entity sits on its target.
func UpdateArcs(w donburi.World) {
	dt := float32(Delta(w).Seconds())
	for _, e := range collect(components.Arc.Iter(w)) {
		if !e.Valid() {
			continue
		}
		a := components.Arc.Get(e)
		if a.Landed {
			continue
		}
		t, done := a.Progress.Update(dt)
		a.T = float64(t)
		ground := a.Start.Add(a.Target.Sub(a.Start).MulScalar(a.T))
		a.Lift = a.Height * ArcCurve(a.T)
		if done {
			a.T, a.Lift, ground = 1, 0, a.Target
			a.Landed = true
		}
		components.Object.Get(e).SetCenter(ground)
		if a.Landed {
			land(w, e)
		}
	}
}

func land(w donburi.World, e *donburi.Entry) {
	switch {
	case e.HasComponent(components.Projectile):
		cfg := Settings(w)
		p := components.Projectile.Get(e)
		at := components.Arc.Get(e).Target
		factory.CreateSplatter(w, at, cfg.Lob.SplatterSize, max(p.Damage, cfg.Lob.SplatterDamage), Now(w)+cfg.Lob.SplatterActive, cfg.Lob.SplatterFade)
		destroyEntity(w, e)
	case e.HasComponent(components.Pickup):
		donburi.Remove[components.ArcData](e, components.Arc)
	}
}

// UpdateSplatters damages the player while a fresh splatter touches it.
func UpdateSplatters(w donburi.World) {
	now := Now(w)
	for _, e := range collect(components.Splatter.Iter(w)) {
		s := components.Splatter.Get(e)
		if now >= s.ActiveUntil {
			continue
		}
		obj := components.Object.Get(e)
		for _, target := range overlapping(obj, tags.ResolvPlayer) {
			ApplyDamage(w, target, s.Damage, obj.Center())
		}
	}
}
