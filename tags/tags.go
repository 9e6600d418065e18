package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Wall         = donburi.NewTag().SetName("Wall")
	Destructible = donburi.NewTag().SetName("Destructible")
	Hitbox       = donburi.NewTag().SetName("Hitbox")
	Projectile   = donburi.NewTag().SetName("Projectile")
	Laser        = donburi.NewTag().SetName("Laser")
	Splatter     = donburi.NewTag().SetName("Splatter")
	Pickup       = donburi.NewTag().SetName("Pickup")
	Weapon       = donburi.NewTag().SetName("Weapon")
)

// Resolv tags for physics collision
const (
	ResolvSolid        = "solid"
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvDestructible = "destructible"
	ResolvPickup       = "pickup"
	ResolvProjectile   = "projectile"
)
