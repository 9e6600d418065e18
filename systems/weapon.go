package systems

import (
	"log/slog"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/yohamta/donburi"
)

// NewWeapon returns the attack behavior for a weapon description.
func NewWeapon(info config.WeaponInfo) components.Weapon {
	switch info.Kind {
	case config.WeaponBow:
		return &Bow{info: info}
	case config.WeaponStaff:
		return &Staff{info: info}
	default:
		return &Sword{info: info}
	}
}

// EquipSlot swaps to the weapon in an inventory slot. Empty or unknown slots
// unequip.
func EquipSlot(w donburi.World, player *donburi.Entry, slot int) {
	cfg := Settings(w)
	if slot < 0 || slot >= len(cfg.Inventory) {
		return
	}
	components.Player.Get(player).Slot = slot
	info, ok := cfg.Weapon(cfg.Inventory[slot])
	if !ok {
		Unequip(w, player)
		return
	}
	Swap(w, player, NewWeapon(info))
}

// Swap destroys the current weapon instance, binds the new weapon and
// re-arms the cooldown with its timing. A nil weapon unequips.
func Swap(w donburi.World, player *donburi.Entry, weapon components.Weapon) {
	if !player.Valid() || !player.HasComponent(components.EquippedWeapon) {
		return
	}
	eq := components.EquippedWeapon.Get(player)
	Cancel(w, eq.Cooldown)
	eq.Cooldown = 0
	eq.Attacking = false
	if eq.Instance != donburi.Null && w.Valid(eq.Instance) {
		destroyEntity(w, w.Entry(eq.Instance))
	}
	eq.Instance = donburi.Null
	eq.Weapon = weapon
	if weapon == nil {
		eq.CooldownUntil = 0
		slog.Debug("weapon unequipped")
		return
	}

	eq.Instance = factory.CreateWeaponInstance(w, player, weapon.Info()).Entity()
	startCooldown(w, player)
	slog.Debug("weapon equipped", "weapon", weapon.Info().Name)
}

// Unequip leaves the player unarmed.
func Unequip(w donburi.World, player *donburi.Entry) {
	Swap(w, player, nil)
}

// RequestAttack marks the attack as held and attacks when the cooldown has
// elapsed. It reports whether an attack started.
func RequestAttack(w donburi.World, player *donburi.Entry) bool {
	if !alive(player) {
		return false
	}
	eq := components.EquippedWeapon.Get(player)
	eq.AttackHeld = true
	if eq.Attacking || eq.Weapon == nil {
		return false
	}
	eq.Weapon.Attack(w, player)
	eq.Attacks++
	startCooldown(w, player)
	return true
}

// ReleaseAttack clears the held flag. A running cooldown keeps running.
func ReleaseAttack(player *donburi.Entry) {
	components.EquippedWeapon.Get(player).AttackHeld = false
}

func startCooldown(w donburi.World, player *donburi.Entry) {
	eq := components.EquippedWeapon.Get(player)
	d := eq.Weapon.Info().Cooldown
	eq.Attacking = true
	eq.CooldownUntil = Now(w) + d
	eq.Cooldown = Schedule(w, player, d, func(w donburi.World) {
		eq := components.EquippedWeapon.Get(player)
		eq.Attacking = false
		eq.Cooldown = 0
	})
}

// EquippedName returns the name of the player's weapon, or "" when unarmed.
func EquippedName(player *donburi.Entry) string {
	if !player.Valid() || !player.HasComponent(components.EquippedWeapon) {
		return ""
	}
	if wpn := components.EquippedWeapon.Get(player).Weapon; wpn != nil {
		return wpn.Info().Name
	}
	return ""
}
