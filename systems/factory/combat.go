package factory

import (
	"time"

	"github.com/automoto/thornrun/archetypes"
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateHitbox spawns a melee hitbox centered at center.
func CreateHitbox(w donburi.World, owner *donburi.Entry, side components.Side, center math.Vec2, width, height float64, damage int, expiresAt time.Duration) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(w)
	addToSpace(w, hitbox, newRect(center.X-width/2, center.Y-height/2, width, height))
	components.Hitbox.SetValue(hitbox, components.HitboxData{
		Owner:     owner.Entity(),
		Side:      side,
		Damage:    damage,
		ExpiresAt: expiresAt,
		Hit:       map[donburi.Entity]bool{},
	})
	return hitbox
}

// ProjectileSpec describes a straight shot.
type ProjectileSpec struct {
	Side     components.Side
	Center   math.Vec2
	Velocity math.Vec2
	Range    float64
	Damage   int
	Size     float64
}

func CreateProjectile(w donburi.World, spec ProjectileSpec) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)
	half := spec.Size / 2
	addToSpace(w, p, newRect(spec.Center.X-half, spec.Center.Y-half, spec.Size, spec.Size, tags.ResolvProjectile))
	components.Projectile.SetValue(p, components.ProjectileData{
		Side:     spec.Side,
		Damage:   spec.Damage,
		Velocity: spec.Velocity,
		Range:    spec.Range,
	})
	return p
}

// NewArc builds the motion state for a flight from start to target.
func NewArc(start, target math.Vec2, height float64, duration time.Duration) components.ArcData {
	return components.ArcData{
		Start:    start,
		Target:   target,
		Height:   height,
		Progress: gween.New(0, 1, float32(duration.Seconds()), ease.Linear),
	}
}

// CreateLob spawns an arcing projectile that lands at target.
func CreateLob(w donburi.World, side components.Side, start, target math.Vec2, height float64, duration time.Duration, damage int, size float64) *donburi.Entry {
	lob := archetypes.Projectile.Spawn(w, components.Arc)
	half := size / 2
	addToSpace(w, lob, newRect(start.X-half, start.Y-half, size, size, tags.ResolvProjectile))
	components.Projectile.SetValue(lob, components.ProjectileData{
		Side:   side,
		Damage: damage,
	})
	components.Arc.SetValue(lob, NewArc(start, target, height, duration))
	return lob
}

// CreateSplatter spawns the damaging puddle a lob leaves behind.
func CreateSplatter(w donburi.World, center math.Vec2, size float64, damage int, activeUntil, fade time.Duration) *donburi.Entry {
	s := archetypes.Splatter.Spawn(w)
	half := size / 2
	addToSpace(w, s, newRect(center.X-half, center.Y-half, size, size))
	components.Splatter.SetValue(s, components.SplatterData{
		Damage:      damage,
		ActiveUntil: activeUntil,
	})
	components.Fade.SetValue(s, NewFade(fade))
	return s
}

// NewFade builds a fade from opaque to transparent.
func NewFade(d time.Duration) components.FadeData {
	return components.FadeData{
		Tween: gween.New(1, 0, float32(d.Seconds()), ease.OutQuad),
		Alpha: 1,
	}
}

// CreateLaser spawns a beam that grows from origin along dir.
func CreateLaser(w donburi.World, origin, dir math.Vec2, maxLength float64, grow time.Duration, damage int) *donburi.Entry {
	l := archetypes.Laser.Spawn(w)
	components.Laser.SetValue(l, components.LaserData{
		Origin:    origin,
		Dir:       dir,
		Length:    1,
		MaxLength: maxLength,
		Grow:      gween.New(1, float32(maxLength), float32(grow.Seconds()), ease.Linear),
		Damage:    damage,
		Hit:       map[donburi.Entity]bool{},
	})
	return l
}

// CreatePickup spawns a collectible that pops out along arc.
func CreatePickup(w donburi.World, kind components.PickupKind, arc components.ArcData) *donburi.Entry {
	size := settings(w).Pickup.Size
	p := archetypes.Pickup.Spawn(w, components.Arc)
	half := size / 2
	addToSpace(w, p, newRect(arc.Start.X-half, arc.Start.Y-half, size, size, tags.ResolvPickup))
	components.Pickup.SetValue(p, components.PickupData{Kind: kind})
	components.Arc.SetValue(p, arc)
	return p
}
