package systems

import (
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// NewEnemyBehavior returns the attack behavior for an enemy type.
func NewEnemyBehavior(t config.EnemyTypeConfig) components.EnemyBehavior {
	switch t.Behavior {
	case config.BehaviorBrute:
		return &Brute{info: t}
	case config.BehaviorShooter:
		return &Shooter{info: t}
	case config.BehaviorLobber:
		return &Lobber{info: t}
	default:
		return &Roamer{info: t}
	}
}

// Roamer only wanders; it hurts the player by touch.
type Roamer struct{ info config.EnemyTypeConfig }

func (r *Roamer) Info() config.EnemyTypeConfig { return r.info }

func (r *Roamer) Attack(donburi.World, *donburi.Entry, dmath.Vec2) {}

// Brute swings a melee hitbox toward the target.
type Brute struct{ info config.EnemyTypeConfig }

func (b *Brute) Info() config.EnemyTypeConfig { return b.info }

func (b *Brute) Attack(w donburi.World, enemy *donburi.Entry, _ dmath.Vec2) {
	Services(w).Presenter.Cue(enemy.Entity(), config.CueAttack)
	swing(w, enemy, components.SideEnemy, b.info.MeleeDamage)
}

// Shooter fires cone bursts. A new attack is ignored while a sequence is
// still running.
type Shooter struct{ info config.EnemyTypeConfig }

func (s *Shooter) Info() config.EnemyTypeConfig { return s.info }

func (s *Shooter) Attack(w donburi.World, enemy *donburi.Entry, target dmath.Vec2) {
	data := components.Enemy.Get(enemy)
	if data.Shooting {
		return
	}
	data.Shooting = true
	r := &burstRun{enemy: enemy, cfg: s.info.Shooter, target: target}
	r.fire(w)
}

// Lobber throws an arcing projectile at where the target stands when the
// throw is released.
type Lobber struct{ info config.EnemyTypeConfig }

func (l *Lobber) Info() config.EnemyTypeConfig { return l.info }

func (l *Lobber) Attack(w donburi.World, enemy *donburi.Entry, target dmath.Vec2) {
	cfg := Settings(w)
	Services(w).Presenter.Cue(enemy.Entity(), config.CueAttack)
	Schedule(w, enemy, cfg.Lob.ReleaseDelay, func(w donburi.World) {
		if !alive(enemy) {
			return
		}
		at := target
		if p, ok := livingPlayer(w); ok {
			at = components.Object.Get(p).Center()
		}
		start := components.Object.Get(enemy).Center()
		factory.CreateLob(w, components.SideEnemy, start, at, cfg.Lob.Height, cfg.Lob.Duration, cfg.Lob.SplatterDamage, cfg.Lob.Size)
	})
}
