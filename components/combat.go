package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Side is the team a damage source belongs to.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

type HitboxData struct {
	Owner     donburi.Entity
	Side      Side
	Damage    int // snapshot of the weapon damage when the swing started
	ExpiresAt time.Duration
	Hit       map[donburi.Entity]bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()

type ProjectileData struct {
	Side     Side
	Damage   int
	Velocity math.Vec2
	Range    float64
	Traveled float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// ArcData moves an entity along a parabola-like path from Start to Target.
type ArcData struct {
	Start, Target math.Vec2
	Height        float64
	Progress      *gween.Tween
	T             float64 // normalized flight time, 0..1
	Lift          float64 // current height above the ground track
	Landed        bool
}

var Arc = donburi.NewComponentType[ArcData]()

type LaserData struct {
	Origin    math.Vec2
	Dir       math.Vec2
	Length    float64
	MaxLength float64
	Grow      *gween.Tween
	Blocked   bool
	Done      bool
	Damage    int
	Hit       map[donburi.Entity]bool
}

var Laser = donburi.NewComponentType[LaserData]()

// SplatterData is a short-lived damaging area left by a lobbed projectile.
type SplatterData struct {
	Damage      int
	ActiveUntil time.Duration
}

var Splatter = donburi.NewComponentType[SplatterData]()
