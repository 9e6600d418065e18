package factory

import (
	"github.com/automoto/thornrun/archetypes"
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy of the named type, falling back to the
// configured default type. The caller attaches the attack behavior.
func CreateEnemy(w donburi.World, x, y float64, enemyTypeName string, anchored bool) *donburi.Entry {
	cfg := settings(w)
	enemyType := cfg.EnemyType(enemyTypeName)

	enemy := archetypes.Enemy.Spawn(w)
	addToSpace(w, enemy, newRect(x, y, enemyType.Width, enemyType.Height, "character", tags.ResolvEnemy))

	home := math.NewVec2(x+enemyType.Width/2, y+enemyType.Height/2)
	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:  enemyType.Name,
		State:     config.Roaming,
		CanAttack: true,
		Anchored:  anchored,
		Home:      home,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current:         enemyType.Health,
		Max:             enemyType.Health,
		KnockbackThrust: enemyType.KnockbackThrust,
		DeathCheckDelay: enemyType.DeathCheckDelay,
		DeathDelay:      enemyType.DeathDelay,
	})
	components.Body.SetValue(enemy, components.BodyData{
		Speed: enemyType.MoveSpeed,
		Mass:  enemyType.Mass,
		Drag:  enemyType.Drag,
	})
	components.Facing.SetValue(enemy, components.FacingData{Dir: math.NewVec2(-1, 0), Left: true})

	return enemy
}
