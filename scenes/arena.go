package scenes

import (
	"log/slog"
	"sync"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/leveldata"
	"github.com/automoto/thornrun/services"
	"github.com/automoto/thornrun/sim"
	"github.com/automoto/thornrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerOverlay
)

// ArenaScene hosts one simulation: it feeds it input, steps it once per
// ebiten tick and draws it.
type ArenaScene struct {
	ecs   *ecs.ECS
	sim   *sim.Simulation
	cfg   *config.Config
	arena *leveldata.Arena
	seed  uint64
	keys  *KeyMap
	view  *presenter
	once  sync.Once

	pending string // scene requested by the simulation, loaded next tick
	runs    uint64
	shakeX  float64
	shakeY  float64
}

// NewArenaScene creates a scene for the arena. A nil arena uses an empty
// walled room.
func NewArenaScene(cfg *config.Config, arena *leveldata.Arena, seed uint64) *ArenaScene {
	if cfg == nil {
		cfg = config.New()
	}
	return &ArenaScene{
		cfg:   cfg,
		arena: arena,
		seed:  seed,
		keys:  &DefaultKeyMap,
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	if as.pending != "" || as.keys.justPressed(ActionRestart) {
		as.reload()
	}
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// LoadScene is called by the simulation when the player has died. The arena
// is the only scene, so every name restarts it.
func (as *ArenaScene) LoadScene(name string) {
	as.pending = name
}

func (as *ArenaScene) configure() {
	as.view = newPresenter(func() time.Duration {
		if as.sim == nil {
			return 0
		}
		return systems.Now(as.sim.World)
	})
	as.start()
}

func (as *ArenaScene) start() {
	as.runs++
	as.sim = sim.New(sim.Options{
		Config: as.cfg,
		Arena:  as.arena,
		Seed:   as.seed + as.runs - 1,
		Services: components.ServicesData{
			Presenter: as.view,
			Display:   as.view,
			Scenes:    as,
		},
	})

	e := ecs.NewECS(as.sim.World)
	e.AddSystem(as.updateInput)
	e.AddSystem(as.step)

	e.AddRenderer(layerWorld, as.drawArena)
	e.AddRenderer(layerWorld, as.drawGround)
	e.AddRenderer(layerWorld, as.drawActors)
	e.AddRenderer(layerWorld, as.drawShots)
	e.AddRenderer(layerOverlay, as.drawEffects)
	e.AddRenderer(layerOverlay, as.drawHUD)
	as.ecs = e
}

func (as *ArenaScene) reload() {
	slog.Info("reloading arena", "scene", as.pending, "previous", as.sim.ID)
	as.pending = ""
	as.sim.Close()
	as.view.reset()
	as.start()
}

func (as *ArenaScene) updateInput(*ecs.ECS) {
	as.keys.readInput(as.sim.Input())
}

func (as *ArenaScene) step(*ecs.ECS) {
	as.sim.Step(time.Second / time.Duration(as.cfg.TPS))
	as.view.prune()
	as.shakeX, as.shakeY = as.view.shakeOffset()
}

var _ services.SceneLoader = (*ArenaScene)(nil)
