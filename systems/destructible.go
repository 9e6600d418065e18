package systems

import (
	"log/slog"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
)

// BreakDestructible destroys a breakable obstacle and rolls a drop at its
// position. Breaking does not count as a kill.
func BreakDestructible(w donburi.World, e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(tags.Destructible) {
		return
	}
	pos := components.Object.Get(e).Center()
	Services(w).Presenter.SpawnEffect(config.EffectDestroy, pos)
	DropLoot(w, pos)
	destroyEntity(w, e)
	slog.Debug("destructible broken", "pos", pos)
}
