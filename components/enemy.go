package components

import (
	"time"

	"github.com/automoto/thornrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// EnemyBehavior is the attack an enemy variant performs.
type EnemyBehavior interface {
	Attack(w donburi.World, enemy *donburi.Entry, target math.Vec2)
	Info() config.EnemyTypeConfig
}

type EnemyData struct {
	TypeName string
	Behavior EnemyBehavior

	State       config.StateID
	RoamDir     math.Vec2
	RoamElapsed time.Duration
	CanAttack   bool
	Cooldown    TaskID

	Anchored bool
	Home     math.Vec2

	// Shooting is set while a burst sequence is running.
	Shooting bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
