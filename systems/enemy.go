package systems

import (
	"log/slog"
	"math"

	"github.com/automoto/thornrun/components"
	cfg "github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnEnemy creates an enemy with its attack behavior and a first roaming
// direction.
func SpawnEnemy(w donburi.World, x, y float64, typeName string, anchored bool) *donburi.Entry {
	e := factory.CreateEnemy(w, x, y, typeName, anchored)
	enemy := components.Enemy.Get(e)
	enemy.Behavior = NewEnemyBehavior(Settings(w).EnemyType(typeName))
	enemy.RoamDir = roamDirection(w)
	return e
}

// UpdateEnemies runs the roaming/attacking state machine. An enemy that is
// knocked back neither moves on its own nor re-evaluates its state.
func UpdateEnemies(w donburi.World) {
	dt := Delta(w)
	player, hasPlayer := livingPlayer(w)
	var target dmath.Vec2
	if hasPlayer {
		target = components.Object.Get(player).Center()
	}

	for _, e := range collect(components.Enemy.Iter(w)) {
		if !e.Valid() {
			continue
		}
		body := components.Body.Get(e)
		if !alive(e) || KnockedBack(e) {
			body.Intent = dmath.Vec2{}
			continue
		}

		enemy := components.Enemy.Get(e)
		info := enemy.Behavior.Info()
		pos := components.Object.Get(e).Center()
		distance := math.Inf(1)
		if hasPlayer {
			distance = dist(pos, target)
		}

		switch enemy.State {
		case cfg.Roaming:
			enemy.RoamElapsed += dt
			if enemy.RoamElapsed >= info.RoamInterval {
				enemy.RoamElapsed = 0
				enemy.RoamDir = roamDirection(w)
			}
			if enemy.Anchored && info.RoamRadius > 0 && dist(pos, enemy.Home) > info.RoamRadius {
				enemy.RoamDir = steer(w, pos, enemy.Home)
			}
			body.Intent = enemy.RoamDir
			if info.AttackRange > 0 && distance < info.AttackRange {
				setEnemyState(e, enemy, cfg.Attacking)
			}
		case cfg.Attacking:
			if distance > info.AttackRange {
				setEnemyState(e, enemy, cfg.Roaming)
				break
			}
			if info.StopMovingWhileAttacking {
				body.Intent = dmath.Vec2{}
			} else {
				body.Intent = steer(w, pos, target)
			}
			if enemy.CanAttack {
				enemyAttack(w, e, enemy, info, pos, target)
			}
		}

		updateFacing(e, body.Intent)
	}
}

func enemyAttack(w donburi.World, e *donburi.Entry, enemy *components.EnemyData, info cfg.EnemyTypeConfig, pos, target dmath.Vec2) {
	enemy.CanAttack = false
	components.Facing.Get(e).Dir = unit(target.Sub(pos))
	enemy.Behavior.Attack(w, e, target)

	enemy.Cooldown = Schedule(w, e, info.AttackCooldown, func(w donburi.World) {
		components.Enemy.Get(e).CanAttack = true
	})
}

func setEnemyState(e *donburi.Entry, enemy *components.EnemyData, state cfg.StateID) {
	slog.Debug("enemy state", "entity", e.Entity(), "from", enemy.State, "to", state)
	enemy.State = state
}

func roamDirection(w donburi.World) dmath.Vec2 {
	r := random(w)
	for {
		v := dmath.NewVec2(r.Float64()*2-1, r.Float64()*2-1)
		if m := v.Magnitude(); m > 0.01 {
			return v.MulScalar(1 / m)
		}
	}
}

func updateFacing(e *donburi.Entry, move dmath.Vec2) {
	f := components.Facing.Get(e)
	switch {
	case move.X < 0:
		f.Left = true
	case move.X > 0:
		f.Left = false
	}
	if move.X != 0 || move.Y != 0 {
		f.Dir = unit(move)
	}
}
