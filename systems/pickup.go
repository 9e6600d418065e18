package systems

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Drop is the outcome of a loot roll. Coins is only set for coin drops.
type Drop struct {
	Kind  components.PickupKind
	None  bool
	Coins int
}

// RollDrop picks one of four equally likely outcomes: nothing, a health
// pickup, a stamina pickup, or between one and maxCoins coins.
func RollDrop(r *rand.Rand, maxCoins int) Drop {
	switch r.IntN(4) {
	case 0:
		return Drop{Kind: components.PickupHealth}
	case 1:
		return Drop{Kind: components.PickupStamina}
	case 2:
		return Drop{Kind: components.PickupCoin, Coins: 1 + r.IntN(max(1, maxCoins))}
	default:
		return Drop{None: true}
	}
}

// DropLoot rolls a drop and spawns the resulting pickups at pos.
func DropLoot(w donburi.World, pos dmath.Vec2) {
	cfg := Settings(w)
	r := random(w)
	drop := RollDrop(r, cfg.Pickup.MaxCoins)
	if drop.None {
		return
	}
	count := 1
	if drop.Kind == components.PickupCoin {
		count = drop.Coins
	}
	for range count {
		landing := pos.Add(dmath.NewVec2(
			(r.Float64()*2-1)*cfg.Pickup.ScatterX,
			(r.Float64()*2-1)*cfg.Pickup.ScatterY,
		))
		factory.CreatePickup(w, drop.Kind, factory.NewArc(pos, landing, cfg.Pickup.PopHeight, cfg.Pickup.PopDuration))
	}
	slog.Debug("loot dropped", "kind", drop.Kind, "count", count)
}

func SubscribeLootDrops(w donburi.World) {
	KillNotifications.Subscribe(w, dropLootOnKill)
}

func UnsubscribeLootDrops(w donburi.World) {
	KillNotifications.Unsubscribe(w, dropLootOnKill)
}

func dropLootOnKill(w donburi.World, n KillNotification) {
	DropLoot(w, n.Position)
}

// UpdatePickups homes landed pickups toward a nearby player and applies
// them on contact.
func UpdatePickups(w donburi.World) {
	player, ok := livingPlayer(w)
	if !ok {
		return
	}
	cfg := Settings(w).Pickup
	dt := Delta(w).Seconds()
	target := components.Object.Get(player).Center()

	for _, e := range collect(tags.Pickup.Iter(w)) {
		if !e.Valid() || e.HasComponent(components.Arc) {
			continue
		}
		p := components.Pickup.Get(e)
		obj := components.Object.Get(e)
		pos := obj.Center()

		if dist(pos, target) < cfg.CaptureRadius {
			p.Speed = max(p.Speed, cfg.BaseSpeed) + cfg.Accel*dt
			step := min(p.Speed*dt, dist(pos, target))
			obj.SetCenter(pos.Add(unit(target.Sub(pos)).MulScalar(step)))
		} else {
			p.Speed = 0
		}

		if !p.Collected && obj.Overlaps(components.Object.Get(player).Object) {
			collectPickup(w, e, p)
		}
	}
}

func collectPickup(w donburi.World, e *donburi.Entry, p *components.PickupData) {
	p.Collected = true
	switch p.Kind {
	case components.PickupHealth:
		HealPlayer(w)
	case components.PickupStamina:
		if player, ok := livingPlayer(w); ok {
			RefreshStamina(w, player)
		}
	case components.PickupCoin:
		AddCurrency(w, 1)
	}
	Services(w).Presenter.SpawnEffect(config.EffectPickup, components.Object.Get(e).Center())
	slog.Debug("pickup collected", "kind", p.Kind)
	destroyEntity(w, e)
}

// AddCurrency adds gold and refreshes the display.
func AddCurrency(w donburi.World, amount int) {
	e, ok := components.Economy.First(w)
	if !ok {
		return
	}
	eco := components.Economy.Get(e)
	eco.Gold += amount
	Services(w).Display.SetCurrency(FormatCurrency(eco.Gold))
}

// Gold returns the current currency total.
func Gold(w donburi.World) int {
	if e, ok := components.Economy.First(w); ok {
		return components.Economy.Get(e).Gold
	}
	return 0
}

// FormatCurrency renders gold zero-padded to three digits.
func FormatCurrency(gold int) string {
	return fmt.Sprintf("%03d", gold)
}
