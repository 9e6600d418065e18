// Package sim runs the combat simulation headless: it builds a world from an
// arena and steps its systems in a fixed order.
package sim

import (
	"log/slog"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/leveldata"
	"github.com/automoto/thornrun/systems"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/automoto/thornrun/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// Options configures a new simulation. Zero values select defaults.
type Options struct {
	Config   *config.Config
	Services components.ServicesData
	Arena    *leveldata.Arena
	Seed     uint64
}

type system struct {
	name string
	fn   func(w donburi.World)
}

type Simulation struct {
	World donburi.World
	ID    string

	cfg      *config.Config
	log      *slog.Logger
	systems  []system
	physStep time.Duration
	physAcc  time.Duration
}

// New builds a world with the arena's walls, obstacles, player and enemies.
func New(opts Options) *Simulation {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	arena := opts.Arena
	if arena == nil {
		arena = EmptyArena(cfg)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Seed
	}

	s := &Simulation{
		World:    donburi.NewWorld(),
		ID:       uuid.NewString(),
		cfg:      cfg,
		physStep: time.Second / time.Duration(max(1, cfg.PhysicsRate)),
	}
	s.log = slog.Default().With("run", s.ID)

	w := s.World
	factory.CreateGame(w, cfg, opts.Services, seed)
	factory.CreateSpace(w, arena.Width, arena.Height, cfg.CellSize, cfg.CellSize)
	for _, r := range arena.Walls {
		factory.CreateWall(w, r.X, r.Y, r.W, r.H)
	}
	systems.BuildNavGrid(w, arena.Width, arena.Height, float64(cfg.CellSize))
	for _, r := range arena.Destructibles {
		factory.CreateDestructible(w, r.X, r.Y, r.W, r.H)
	}
	spawn := leveldata.Point{X: float64(arena.Width) / 2, Y: float64(arena.Height) / 2}
	if len(arena.PlayerSpawns) > 0 {
		spawn = arena.PlayerSpawns[0]
	} else {
		s.log.Warn("arena has no player spawn, using its centre", "arena", arena.Name)
	}
	player := factory.CreatePlayer(w, spawn.X, spawn.Y)
	for _, e := range arena.EnemySpawns {
		systems.SpawnEnemy(w, e.X, e.Y, e.Type, e.Anchored)
	}

	systems.SubscribeLootDrops(w)
	systems.SubscribeKillCounter(w)
	systems.EquipSlot(w, player, 0)
	s.pushDisplay(player)

	s.systems = []system{
		{"scheduler", systems.UpdateScheduler},
		{"player", systems.UpdatePlayer},
		{"physics", s.updatePhysics},
		{"projectiles", systems.UpdateProjectiles},
		{"arcs", systems.UpdateArcs},
		{"lasers", systems.UpdateLasers},
		{"hitboxes", systems.UpdateHitboxes},
		{"splatters", systems.UpdateSplatters},
		{"contact", systems.UpdateContactDamage},
		{"enemies", systems.UpdateEnemies},
		{"pickups", systems.UpdatePickups},
		{"fades", systems.UpdateFades},
		{"killfeed", systems.UpdateKillFeed},
	}

	s.log.Info("simulation started",
		"arena", arena.Name,
		"enemies", len(arena.EnemySpawns),
		"seed", seed,
	)
	return s
}

// Step advances the simulation by one frame of length dt. Damage resolves
// before enemy AI, so an enemy hit this frame is already knocked back when
// its state machine runs.
func (s *Simulation) Step(dt time.Duration) {
	systems.AdvanceClock(s.World, dt)
	s.physAcc += dt
	for _, sys := range s.systems {
		sys.fn(s.World)
	}
}

// updatePhysics runs as many fixed physics steps as the frame time covers.
func (s *Simulation) updatePhysics(w donburi.World) {
	for s.physAcc >= s.physStep {
		systems.UpdatePhysics(w, s.physStep)
		s.physAcc -= s.physStep
	}
}

// Player returns the player entry while it exists.
func (s *Simulation) Player() (*donburi.Entry, bool) {
	return tags.Player.First(s.World)
}

// Input returns the player's input slot for the host to fill in.
func (s *Simulation) Input() *components.PlayerInputData {
	p, ok := s.Player()
	if !ok {
		return &components.PlayerInputData{SelectSlot: -1}
	}
	return components.PlayerInput.Get(p)
}

// Close detaches the kill listeners.
func (s *Simulation) Close() {
	systems.UnsubscribeLootDrops(s.World)
	systems.UnsubscribeKillCounter(s.World)
	s.log.Info("simulation closed", "kills", systems.Kills(s.World), "gold", systems.Gold(s.World))
}

func (s *Simulation) pushDisplay(player *donburi.Entry) {
	out := systems.Services(s.World)
	hp := components.Health.Get(player)
	out.Display.SetHealth(hp.Current, hp.Max)
	out.Display.SetCurrency(systems.FormatCurrency(systems.Gold(s.World)))
	systems.StartStaminaRegen(s.World, player)
}

// EmptyArena is a walled room with the player in the middle and no enemies.
func EmptyArena(cfg *config.Config) *leveldata.Arena {
	w, h := float64(cfg.Width), float64(cfg.Height)
	const t = 16
	return &leveldata.Arena{
		Name:   "empty",
		Width:  cfg.Width,
		Height: cfg.Height,
		Walls: []leveldata.Rect{
			{X: 0, Y: 0, W: w, H: t},
			{X: 0, Y: h - t, W: w, H: t},
			{X: 0, Y: t, W: t, H: h - 2*t},
			{X: w - t, Y: t, W: t, H: h - 2*t},
		},
		PlayerSpawns: []leveldata.Point{{X: w / 2, Y: h / 2}},
	}
}
