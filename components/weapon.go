package components

import (
	"time"

	"github.com/automoto/thornrun/config"
	"github.com/yohamta/donburi"
)

// Weapon is an attack behavior the player can wield.
type Weapon interface {
	Attack(w donburi.World, wielder *donburi.Entry)
	Info() config.WeaponInfo
}

// EquippedWeaponData tracks the active weapon and its cooldown.
type EquippedWeaponData struct {
	Weapon        Weapon // nil when unarmed
	Instance      donburi.Entity
	AttackHeld    bool
	Attacking     bool // cooldown running
	CooldownUntil time.Duration
	Cooldown      TaskID
	Attacks       int
}

var EquippedWeapon = donburi.NewComponentType[EquippedWeaponData]()

// WeaponData lives on the weapon instance entity.
type WeaponData struct {
	Info  config.WeaponInfo
	Owner donburi.Entity
}

var WeaponInstance = donburi.NewComponentType[WeaponData]()
