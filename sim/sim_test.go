package sim

import (
	"testing"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/leveldata"
	"github.com/automoto/thornrun/services"
	"github.com/automoto/thornrun/services/mocks"
	"github.com/automoto/thornrun/systems"
	"github.com/automoto/thornrun/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/mock/gomock"
)

const frame = 10 * time.Millisecond

func nop() components.ServicesData {
	return components.ServicesData{Presenter: services.Nop{}, Display: services.Nop{}, Scenes: services.Nop{}}
}

func count(s *Simulation, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(s.World)
}

func run(s *Simulation, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		s.Step(frame)
	}
}

func TestNew_EmptyArena(t *testing.T) {
	s := New(Options{Services: nop()})
	t.Cleanup(s.Close)

	p, ok := s.Player()
	require.True(t, ok)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Sword", systems.EquippedName(p))
	obj := components.Object.Get(p)
	assert.Equal(t, 240.0, obj.X)
	assert.Equal(t, 160.0, obj.Y)
	assert.Equal(t, 0, count(s, tags.Enemy))
	assert.Equal(t, 4, count(s, tags.Wall))
}

func TestNew_PushesInitialDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	display := mocks.NewMockDisplay(ctrl)
	display.EXPECT().SetHealth(3, 3)
	display.EXPECT().SetCurrency("000")
	display.EXPECT().SetStamina(3, 3)

	New(Options{Services: components.ServicesData{
		Presenter: services.Nop{},
		Display:   display,
		Scenes:    services.Nop{},
	}})
}

func TestStep_MovesPlayerOnFixedPhysicsSteps(t *testing.T) {
	s := New(Options{Services: nop()})
	p, _ := s.Player()
	start := components.Object.Get(p).X
	s.Input().Move = dmath.NewVec2(1, 0)

	s.Step(frame)
	assert.Equal(t, start, components.Object.Get(p).X, "half a physics step has not elapsed")

	s.Step(frame)
	moved := components.Object.Get(p).X - start
	assert.InDelta(t, 72*0.02, moved, 1e-9)

	run(s, 980*time.Millisecond)
	assert.InDelta(t, 72, components.Object.Get(p).X-start, 1e-6)
}

func TestStep_EnemyKillIsCounted(t *testing.T) {
	cfg := config.New()
	arena := EmptyArena(cfg)
	arena.EnemySpawns = []leveldata.EnemySpawn{{X: 40, Y: 40, Type: "Slime"}}
	s := New(Options{Config: cfg, Arena: arena, Services: nop()})

	e, ok := tags.Enemy.First(s.World)
	require.True(t, ok)
	require.True(t, systems.ApplyDamage(s.World, e, 3, dmath.NewVec2(0, 0)))

	run(s, 300*time.Millisecond)
	assert.Equal(t, 1, systems.Kills(s.World))
	assert.False(t, e.Valid(), "removed once the notification went out")
}

func TestStep_PlayerDeathLoadsRespawnScene(t *testing.T) {
	ctrl := gomock.NewController(t)
	scenes := mocks.NewMockSceneLoader(ctrl)
	scenes.EXPECT().LoadScene("town").Times(1)

	s := New(Options{Services: components.ServicesData{
		Presenter: services.Nop{},
		Display:   services.Nop{},
		Scenes:    scenes,
	}})
	p, _ := s.Player()
	require.True(t, systems.ApplyDamage(s.World, p, 3, dmath.NewVec2(0, 0)))

	run(s, 2*time.Second+frame)
	_, ok := s.Player()
	assert.False(t, ok)
	assert.Equal(t, -1, s.Input().SelectSlot)
}

func TestNew_SeedDefaultsToConfig(t *testing.T) {
	a := New(Options{Services: nop()})
	b := New(Options{Services: nop(), Seed: 1})
	ra, _ := components.Random.First(a.World)
	rb, _ := components.Random.First(b.World)
	assert.Equal(t, components.Random.Get(ra).Uint64(), components.Random.Get(rb).Uint64())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNew_ArenaWithoutPlayerSpawnUsesCentre(t *testing.T) {
	cfg := config.New()
	arena := EmptyArena(cfg)
	arena.PlayerSpawns = nil

	s := New(Options{Config: cfg, Arena: arena, Services: nop()})
	p, ok := s.Player()
	require.True(t, ok)
	obj := components.Object.Get(p)
	assert.Equal(t, 240.0, obj.X)
	assert.Equal(t, 160.0, obj.Y)
}
