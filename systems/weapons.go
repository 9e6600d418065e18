package systems

import (
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Sword swings a short-lived hitbox in front of the wielder.
type Sword struct{ info config.WeaponInfo }

func (s *Sword) Info() config.WeaponInfo { return s.info }

func (s *Sword) Attack(w donburi.World, wielder *donburi.Entry) {
	Services(w).Presenter.Cue(wielder.Entity(), config.CueAttack)
	swing(w, wielder, components.SidePlayer, s.info.Damage)
}

// Bow fires a straight arrow limited to the weapon range.
type Bow struct{ info config.WeaponInfo }

func (b *Bow) Info() config.WeaponInfo { return b.info }

func (b *Bow) Attack(w donburi.World, wielder *donburi.Entry) {
	cfg := Settings(w)
	Services(w).Presenter.Cue(wielder.Entity(), config.CueFire)
	dir := aim(wielder)
	factory.CreateProjectile(w, factory.ProjectileSpec{
		Side:     components.SidePlayer,
		Center:   muzzle(wielder, dir, cfg.Player.WeaponOffset),
		Velocity: dir.MulScalar(cfg.Arrow.Speed),
		Range:    b.info.Range,
		Damage:   b.info.Damage,
		Size:     cfg.Arrow.Size,
	})
}

// Staff casts a growing laser after a short wind-up.
type Staff struct{ info config.WeaponInfo }

func (s *Staff) Info() config.WeaponInfo { return s.info }

func (s *Staff) Attack(w donburi.World, wielder *donburi.Entry) {
	cfg := Settings(w)
	Services(w).Presenter.Cue(wielder.Entity(), config.CueAttack)
	info := s.info
	Schedule(w, wielder, cfg.Laser.CastDelay, func(w donburi.World) {
		if !alive(wielder) {
			return
		}
		dir := aim(wielder)
		factory.CreateLaser(w, muzzle(wielder, dir, cfg.Player.WeaponOffset), dir, info.Range, cfg.Laser.GrowTime, info.Damage)
	})
}

// swing spawns a melee hitbox. The damage is fixed when the swing starts.
func swing(w donburi.World, wielder *donburi.Entry, side components.Side, damage int) {
	cfg := Settings(w)
	center := muzzle(wielder, aim(wielder), cfg.Melee.Reach)
	factory.CreateHitbox(w, wielder, side, center, cfg.Melee.Width, cfg.Melee.Height, damage, Now(w)+cfg.Melee.SwingDuration)
	Services(w).Presenter.SpawnEffect(config.EffectSlash, center)
}

func aim(e *donburi.Entry) dmath.Vec2 {
	if e.HasComponent(components.Facing) {
		if d := components.Facing.Get(e).Dir; d.X != 0 || d.Y != 0 {
			return d
		}
	}
	return dmath.NewVec2(1, 0)
}

func muzzle(e *donburi.Entry, dir dmath.Vec2, offset float64) dmath.Vec2 {
	return components.Object.Get(e).Center().Add(dir.MulScalar(offset))
}
