package systems

import (
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer turns the frame's input into facing, movement intent, dashes,
// weapon swaps and attack requests.
func UpdatePlayer(w donburi.World) {
	p, ok := tags.Player.First(w)
	if !ok {
		return
	}
	body := components.Body.Get(p)
	if !alive(p) {
		body.Intent = dmath.Vec2{}
		return
	}

	cfg := Settings(w)
	in := components.PlayerInput.Get(p)
	player := components.Player.Get(p)

	facing := components.Facing.Get(p)
	toAim := in.Aim.Sub(components.Object.Get(p).Center())
	if toAim.X != 0 || toAim.Y != 0 {
		facing.Dir = unit(toAim)
		facing.Left = toAim.X < 0
	}

	if in.SelectSlot >= 0 {
		EquipSlot(w, p, in.SelectSlot)
		in.SelectSlot = -1
	}

	if in.Dash {
		in.Dash = false
		tryDash(w, p, player)
	}

	if KnockedBack(p) {
		body.Intent = dmath.Vec2{}
	} else {
		body.Intent = unit(in.Move)
	}
	body.Speed = cfg.Player.MoveSpeed * player.Multiplier

	if in.AttackHeld {
		RequestAttack(w, p)
	} else {
		ReleaseAttack(p)
	}
}

func tryDash(w donburi.World, p *donburi.Entry, player *components.PlayerData) {
	if player.Dashing || !player.DashReady || !UseStamina(w, p) {
		return
	}
	cfg := Settings(w).Player
	player.Dashing = true
	player.DashReady = false
	player.Multiplier = cfg.DashMultiplier
	Services(w).Presenter.Cue(p.Entity(), config.CueDashTrail)

	Schedule(w, p, cfg.DashDuration, func(w donburi.World) {
		pl := components.Player.Get(p)
		pl.Dashing = false
		pl.Multiplier = 1
		Schedule(w, p, cfg.DashCooldown, func(w donburi.World) {
			components.Player.Get(p).DashReady = true
		})
	})
}
