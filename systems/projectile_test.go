package systems

import (
	"testing"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/services"
	"github.com/automoto/thornrun/services/mocks"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/automoto/thornrun/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/mock/gomock"
)

func shoot(w donburi.World, side components.Side, at, velocity dmath.Vec2, rng float64) *donburi.Entry {
	return factory.CreateProjectile(w, factory.ProjectileSpec{
		Side:     side,
		Center:   at,
		Velocity: velocity,
		Range:    rng,
		Damage:   1,
		Size:     4,
	})
}

func stepProjectiles(w donburi.World, dt time.Duration) {
	AdvanceClock(w, dt)
	UpdateProjectiles(w)
}

func TestProjectile_DespawnsAtRangeWithoutEffect(t *testing.T) {
	w := newTestWorld(t, nopServices())
	e := SpawnEnemy(w, 300, 45, "Slime", false)
	shot := shoot(w, components.SidePlayer, dmath.NewVec2(100, 50), dmath.NewVec2(100, 0), 50)

	for range 4 {
		stepProjectiles(w, 100*time.Millisecond)
	}
	require.True(t, shot.Valid())
	assert.InDelta(t, 40, components.Projectile.Get(shot).Traveled, 1e-6)

	for range 2 {
		stepProjectiles(w, 100*time.Millisecond)
	}
	assert.False(t, shot.Valid())
	assert.Equal(t, 3, components.Health.Get(e).Current)
}

func TestProjectile_HitsOpposingActor(t *testing.T) {
	w := newTestWorld(t, nopServices())
	e := SpawnEnemy(w, 145, 145, "Slime", false)
	shot := shoot(w, components.SidePlayer, dmath.NewVec2(150, 150), dmath.Vec2{}, 0)

	stepProjectiles(w, 10*time.Millisecond)

	assert.False(t, shot.Valid())
	assert.Equal(t, 2, components.Health.Get(e).Current)
}

func TestProjectile_IgnoresSameSide(t *testing.T) {
	w := newTestWorld(t, nopServices())
	e := SpawnEnemy(w, 145, 145, "Slime", false)
	shot := shoot(w, components.SideEnemy, dmath.NewVec2(150, 150), dmath.Vec2{}, 0)

	stepProjectiles(w, 10*time.Millisecond)

	assert.True(t, shot.Valid())
	assert.Equal(t, 3, components.Health.Get(e).Current)
}

func TestProjectile_DestroyedByWall(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockPresenter(ctrl)
	w := newTestWorld(t, components.ServicesData{
		Presenter: presenter,
		Display:   services.Nop{},
		Scenes:    services.Nop{},
	})
	factory.CreateWall(w, 160, 128, 16, 48)
	shot := shoot(w, components.SideEnemy, dmath.NewVec2(150, 150), dmath.NewVec2(200, 0), 0)

	presenter.EXPECT().SpawnEffect(config.EffectImpact, gomock.Any()).Times(1)
	for range 10 {
		stepProjectiles(w, 10*time.Millisecond)
	}
	assert.False(t, shot.Valid())
}

func TestProjectile_CratesBreakUnderArrowsOnly(t *testing.T) {
	w := newTestWorld(t, nopServices())
	crate := factory.CreateDestructible(w, 144, 144, 16, 16)

	bullet := shoot(w, components.SideEnemy, dmath.NewVec2(150, 150), dmath.Vec2{}, 0)
	stepProjectiles(w, 10*time.Millisecond)
	assert.True(t, crate.Valid(), "enemy shots pass over crates")
	assert.True(t, bullet.Valid())

	arrow := shoot(w, components.SidePlayer, dmath.NewVec2(152, 152), dmath.Vec2{}, 0)
	stepProjectiles(w, 10*time.Millisecond)
	assert.False(t, crate.Valid())
	assert.True(t, arrow.Valid(), "arrows continue through broken crates")
	assert.Zero(t, count(w, tags.Destructible))
}
