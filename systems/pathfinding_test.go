package systems

import (
	"testing"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// wallWorld has a wall at x 160..176 running from the top down to y 240,
// leaving a gap along the bottom of the arena.
func wallWorld(t *testing.T) donburi.World {
	t.Helper()
	w := newTestWorld(t, nopServices())
	factory.CreateWall(w, 160, 0, 16, 240)
	factory.CreateDestructible(w, 300, 100, 16, 16)
	BuildNavGrid(w, 480, 320, 16)
	return w
}

func TestBuildNavGrid_BlocksWallsOnly(t *testing.T) {
	w := wallWorld(t)
	g := navGrid(w)
	require.NotNil(t, g)

	assert.Equal(t, 30, g.Width)
	assert.Equal(t, 20, g.Height)
	assert.False(t, g.Walkable(10, 0))
	assert.False(t, g.Walkable(10, 14))
	assert.True(t, g.Walkable(10, 15))
	assert.True(t, g.Walkable(9, 5))
	assert.True(t, g.Walkable(18, 6), "crates can be broken")
	assert.False(t, g.Walkable(-1, 0))
}

func TestFindPath_RoutesAroundWall(t *testing.T) {
	w := wallWorld(t)

	path, ok := FindPath(w, dmath.NewVec2(100, 100), dmath.NewVec2(260, 100))
	require.True(t, ok)
	require.NotEmpty(t, path)

	g := navGrid(w)
	lowest := 0.0
	for _, p := range path {
		c := cellOf(g, p)
		assert.True(t, g.Walkable(c.x, c.y), "waypoint %v", p)
		lowest = max(lowest, p.Y)
	}
	assert.GreaterOrEqual(t, lowest, 240.0, "the route passes through the gap")
}

func TestFindPath_SameCell(t *testing.T) {
	w := wallWorld(t)
	path, ok := FindPath(w, dmath.NewVec2(100, 100), dmath.NewVec2(102, 103))
	assert.True(t, ok)
	assert.Empty(t, path)
}

func TestFindPath_Unreachable(t *testing.T) {
	w := newTestWorld(t, nopServices())
	// box the goal in
	factory.CreateWall(w, 320, 64, 96, 16)
	factory.CreateWall(w, 320, 144, 96, 16)
	factory.CreateWall(w, 320, 80, 16, 64)
	factory.CreateWall(w, 400, 80, 16, 64)
	BuildNavGrid(w, 480, 320, 16)

	_, ok := FindPath(w, dmath.NewVec2(40, 40), dmath.NewVec2(368, 112))
	assert.False(t, ok)
}

func TestFindPath_WithoutGrid(t *testing.T) {
	w := newTestWorld(t, nopServices())
	_, ok := FindPath(w, dmath.NewVec2(0, 0), dmath.NewVec2(100, 100))
	assert.False(t, ok)
}

func TestSteer(t *testing.T) {
	w := wallWorld(t)

	direct := steer(w, dmath.NewVec2(100, 280), dmath.NewVec2(260, 280))
	assert.InDelta(t, 1, direct.X, 1e-9)
	assert.InDelta(t, 0, direct.Y, 1e-9)

	around := steer(w, dmath.NewVec2(100, 100), dmath.NewVec2(260, 100))
	assert.Greater(t, around.Y, 0.0, "heads down toward the gap")

	bare := newTestWorld(t, nopServices())
	assert.Equal(t, dmath.NewVec2(1, 0), steer(bare, dmath.NewVec2(0, 0), dmath.NewVec2(50, 0)))
}

func TestEnemy_AnchoredReturnsAroundWall(t *testing.T) {
	w := wallWorld(t)
	e := SpawnEnemy(w, 250, 90, "Slime", true)
	enemy := components.Enemy.Get(e)
	enemy.Home = dmath.NewVec2(100, 100)

	tick(w, 10*time.Millisecond)
	UpdateEnemies(w)
	assert.Greater(t, enemy.RoamDir.Y, 0.0)
}
