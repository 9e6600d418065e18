package systems

import (
	"log/slog"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ApplyDamage is the single entry point for hurting an actor. It reports
// whether the hit landed; hits on dead, invulnerable or unknown targets are
// silently ignored. A zero-damage hit still flashes and knocks back.
func ApplyDamage(w donburi.World, target *donburi.Entry, amount int, source dmath.Vec2) bool {
	if amount < 0 || target == nil || !target.Valid() || !target.HasComponent(components.Health) {
		return false
	}
	hp := components.Health.Get(target)
	now := Now(w)
	if hp.Dead || now < hp.InvulnerableUntil {
		return false
	}

	hp.Current = max(hp.Current-amount, 0)

	out := Services(w)
	isPlayer := target.HasComponent(tags.Player)
	if isPlayer {
		out.Presenter.ShakeScreen()
		hp.InvulnerableUntil = now + hp.RecoveryWindow
		out.Display.SetHealth(hp.Current, hp.Max)
	}
	ApplyKnockback(w, target, source, hp.KnockbackThrust)
	out.Presenter.Flash(target.Entity(), Settings(w).Combat.FlashDuration)

	slog.Debug("damage applied",
		"entity", target.Entity(),
		"player", isPlayer,
		"amount", amount,
		"health", hp.Current,
	)

	scheduleDeathCheck(w, target, hp.DeathCheckDelay)
	return true
}

func scheduleDeathCheck(w donburi.World, e *donburi.Entry, delay time.Duration) {
	if delay <= 0 {
		evaluateDeath(w, e)
		return
	}
	Schedule(w, e, delay, func(w donburi.World) {
		evaluateDeath(w, e)
	})
}

// evaluateDeath starts the death sequence once. Repeated checks after the
// actor is dead do nothing.
func evaluateDeath(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	hp := components.Health.Get(e)
	if hp.Dead || hp.Current > 0 {
		return
	}
	hp.Dead = true
	hp.Current = 0
	if e.HasComponent(components.Body) {
		components.Body.Get(e).Intent = dmath.Vec2{}
	}

	if e.HasComponent(tags.Player) {
		killPlayer(w, e)
		return
	}
	killEnemy(w, e)
}

func killEnemy(w donburi.World, e *donburi.Entry) {
	pos := components.Object.Get(e).Center()
	typeName := ""
	if e.HasComponent(components.Enemy) {
		typeName = components.Enemy.Get(e).TypeName
	}

	Services(w).Presenter.SpawnEffect(config.EffectDeath, pos)
	KillNotifications.Publish(w, KillNotification{
		Entry:    e,
		Type:     typeName,
		Position: pos,
	})
	slog.Debug("enemy killed", "entity", e.Entity(), "type", typeName)

	Schedule(w, e, components.Health.Get(e).DeathDelay, func(w donburi.World) {
		destroyEntity(w, e)
	})
}

func killPlayer(w donburi.World, e *donburi.Entry) {
	out := Services(w)
	Unequip(w, e)
	out.Presenter.Cue(e.Entity(), config.CueDeath)
	out.Display.SetHealth(0, components.Health.Get(e).Max)

	cfg := Settings(w)
	slog.Info("player died", "reload", cfg.Scene.Respawn, "after", cfg.Player.DeathDelay)

	Schedule(w, e, components.Health.Get(e).DeathDelay, func(w donburi.World) {
		destroyEntity(w, e)
		Services(w).Scenes.LoadScene(cfg.Scene.Respawn)
	})
}

// HealPlayer restores one point of health unless the player is already at
// full health. It reports whether health changed.
func HealPlayer(w donburi.World) bool {
	p, ok := livingPlayer(w)
	if !ok {
		return false
	}
	hp := components.Health.Get(p)
	if hp.Current >= hp.Max {
		return false
	}
	hp.Current++
	Services(w).Display.SetHealth(hp.Current, hp.Max)
	return true
}

// UpdateContactDamage hurts the player while a living enemy touches it.
func UpdateContactDamage(w donburi.World) {
	p, ok := livingPlayer(w)
	if !ok {
		return
	}
	obj := components.Object.Get(p)
	for _, e := range overlapping(obj, tags.ResolvEnemy) {
		if !alive(e) || !e.HasComponent(components.Enemy) {
			continue
		}
		dmg := components.Enemy.Get(e).Behavior.Info().ContactDamage
		if dmg <= 0 {
			continue
		}
		if ApplyDamage(w, p, dmg, components.Object.Get(e).Center()) {
			return
		}
	}
}
