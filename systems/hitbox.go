package systems

import (
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
)

// UpdateHitboxes resolves melee hits and removes expired hitboxes. Each
// target is hit at most once per swing.
func UpdateHitboxes(w donburi.World) {
	now := Now(w)
	for _, e := range collect(components.Hitbox.Iter(w)) {
		if !e.Valid() {
			continue
		}
		hb := components.Hitbox.Get(e)
		obj := components.Object.Get(e)

		source := obj.Center()
		if w.Valid(hb.Owner) {
			if owner := w.Entry(hb.Owner); owner.HasComponent(components.Object) {
				source = components.Object.Get(owner).Center()
			}
		}

		for _, target := range overlapping(obj, opponentTags(hb.Side)...) {
			if hb.Hit[target.Entity()] {
				continue
			}
			if target.HasComponent(tags.Destructible) {
				hb.Hit[target.Entity()] = true
				BreakDestructible(w, target)
				continue
			}
			if !alive(target) || target.Entity() == hb.Owner {
				continue
			}
			hb.Hit[target.Entity()] = true
			ApplyDamage(w, target, hb.Damage, source)
		}

		if now >= hb.ExpiresAt {
			destroyEntity(w, e)
		}
	}
}

// opponentTags lists what a damage source of the given side can hit.
func opponentTags(side components.Side) []string {
	if side == components.SidePlayer {
		return []string{tags.ResolvEnemy, tags.ResolvDestructible}
	}
	return []string{tags.ResolvPlayer}
}

func opposes(side components.Side, target *donburi.Entry) bool {
	if side == components.SidePlayer {
		return target.HasComponent(tags.Enemy)
	}
	return target.HasComponent(tags.Player)
}
