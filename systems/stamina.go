package systems

import (
	"github.com/automoto/thornrun/components"
	"github.com/yohamta/donburi"
)

// UseStamina spends one point. It reports false when there is none left.
func UseStamina(w donburi.World, player *donburi.Entry) bool {
	s := components.Stamina.Get(player)
	if s.Current <= 0 {
		return false
	}
	s.Current--
	staminaChanged(w, player)
	return true
}

// RefreshStamina restores one point up to the maximum.
func RefreshStamina(w donburi.World, player *donburi.Entry) {
	s := components.Stamina.Get(player)
	if s.Current < s.Max {
		s.Current++
	}
	staminaChanged(w, player)
}

// staminaChanged pushes the new value to the display and restarts
// regeneration. At most one regeneration task is pending, and none once
// stamina is full.
func staminaChanged(w donburi.World, player *donburi.Entry) {
	s := components.Stamina.Get(player)
	Services(w).Display.SetStamina(s.Current, s.Max)

	Cancel(w, s.Regen)
	s.Regen = 0
	if s.Current >= s.Max {
		return
	}
	s.Regen = Schedule(w, player, s.Interval, func(w donburi.World) {
		components.Stamina.Get(player).Regen = 0
		RefreshStamina(w, player)
	})
}

// StartStaminaRegen shows the player's stamina and starts regenerating it
// when it is below the maximum.
func StartStaminaRegen(w donburi.World, player *donburi.Entry) {
	staminaChanged(w, player)
}
