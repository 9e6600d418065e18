package factory

import (
	"github.com/automoto/thornrun/archetypes"
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	cfg := settings(w)
	player := archetypes.Player.Spawn(w)

	addToSpace(w, player, newRect(x, y, cfg.Player.Width, cfg.Player.Height, "character", tags.ResolvPlayer))

	components.Player.SetValue(player, components.PlayerData{
		DashReady:  true,
		Multiplier: 1,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{SelectSlot: -1})
	components.Health.SetValue(player, components.HealthData{
		Current:         cfg.Player.Health,
		Max:             cfg.Player.Health,
		RecoveryWindow:  cfg.Player.RecoveryWindow,
		KnockbackThrust: cfg.Player.KnockbackThrust,
		DeathCheckDelay: cfg.Player.DeathCheckDelay,
		DeathDelay:      cfg.Player.DeathDelay,
	})
	components.Body.SetValue(player, components.BodyData{
		Speed: cfg.Player.MoveSpeed,
		Mass:  cfg.Player.Mass,
		Drag:  cfg.Player.Drag,
	})
	components.Facing.SetValue(player, components.FacingData{Dir: math.NewVec2(1, 0)})
	components.EquippedWeapon.SetValue(player, components.EquippedWeaponData{Instance: donburi.Null})
	components.Stamina.SetValue(player, components.StaminaData{
		Current:  cfg.Stamina.Start,
		Max:      cfg.Stamina.Max,
		Interval: cfg.Stamina.RegenInterval,
	})

	return player
}
