package factory

import (
	"math/rand/v2"

	"github.com/automoto/thornrun/archetypes"
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/yohamta/donburi"
)

// CreateGame creates the entity that carries the world singletons.
func CreateGame(w donburi.World, cfg *config.Config, svc components.ServicesData, seed uint64) *donburi.Entry {
	game := archetypes.Game.Spawn(w)
	components.Settings.Set(game, cfg)
	components.Random.SetValue(game, components.RandomData{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))})
	components.Services.SetValue(game, svc)
	components.Scheduler.SetValue(game, components.SchedulerData{
		Live: map[components.TaskID]struct{}{},
	})
	components.KillCounter.SetValue(game, components.KillCounterData{ByType: map[string]int{}})
	return game
}
