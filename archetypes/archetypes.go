package archetypes

import (
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Health,
		components.Knockback,
		components.Body,
		components.Facing,
		components.EquippedWeapon,
		components.Stamina,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Knockback,
		components.Body,
		components.Facing,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.WeaponInstance,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Laser = newArchetype(
		tags.Laser,
		components.Laser,
	)
	Splatter = newArchetype(
		tags.Splatter,
		components.Splatter,
		components.Object,
		components.Fade,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Destructible = newArchetype(
		tags.Destructible,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	NavGrid = newArchetype(
		components.NavGrid,
	)
	// Game holds the world singletons.
	Game = newArchetype(
		components.Clock,
		components.Scheduler,
		components.Settings,
		components.Random,
		components.Services,
		components.Economy,
		components.KillCounter,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
