package factory

import (
	"github.com/automoto/thornrun/archetypes"
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/yohamta/donburi"
)

// CreateWeaponInstance creates the entity representing a wielded weapon.
func CreateWeaponInstance(w donburi.World, owner *donburi.Entry, info config.WeaponInfo) *donburi.Entry {
	weapon := archetypes.Weapon.Spawn(w)
	components.WeaponInstance.SetValue(weapon, components.WeaponData{
		Info:  info,
		Owner: owner.Entity(),
	})
	return weapon
}
