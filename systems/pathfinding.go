package systems

import (
	"math"

	"github.com/automoto/thornrun/archetypes"
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/tags"
	astar "github.com/beefsack/go-astar"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// navNode is one grid cell. It is a value so go-astar can key its open set
// on it directly.
type navNode struct {
	grid *components.NavGridData
	x, y int
}

var navDirs = [8]struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

func (n navNode) PathNeighbors() []astar.Pather {
	var out []astar.Pather
	g := n.grid
	for _, d := range navDirs {
		nx, ny := n.x+d.dx, n.y+d.dy
		if !g.Walkable(nx, ny) {
			continue
		}
		// no cutting past the corner of a wall
		if d.dx != 0 && d.dy != 0 && (!g.Walkable(n.x+d.dx, n.y) || !g.Walkable(n.x, n.y+d.dy)) {
			continue
		}
		out = append(out, navNode{grid: g, x: nx, y: ny})
	}
	return out
}

func (n navNode) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

func (n navNode) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(navNode)
	return math.Hypot(float64(t.x-n.x), float64(t.y-n.y))
}

// BuildNavGrid rasterizes the arena's walls into a walkable grid. Call it
// once after the walls are placed. Destructibles are left walkable since
// they can be broken.
func BuildNavGrid(w donburi.World, width, height int, cellSize float64) *donburi.Entry {
	gw := int(math.Ceil(float64(width) / cellSize))
	gh := int(math.Ceil(float64(height) / cellSize))
	grid := components.NavGridData{
		Width:    gw,
		Height:   gh,
		CellSize: cellSize,
		Blocked:  make([]bool, gw*gh),
	}

	for wall := range tags.Wall.Iter(w) {
		if wall.HasComponent(tags.Destructible) || !wall.HasComponent(components.Object) {
			continue
		}
		obj := components.Object.Get(wall)
		x0 := clampInt(int(obj.X/cellSize), 0, gw-1)
		y0 := clampInt(int(obj.Y/cellSize), 0, gh-1)
		x1 := clampInt(int(math.Ceil((obj.X+obj.W)/cellSize))-1, 0, gw-1)
		y1 := clampInt(int(math.Ceil((obj.Y+obj.H)/cellSize))-1, 0, gh-1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				grid.Blocked[y*gw+x] = true
			}
		}
	}

	e := archetypes.NavGrid.Spawn(w)
	components.NavGrid.SetValue(e, grid)
	return e
}

func navGrid(w donburi.World) *components.NavGridData {
	if e, ok := components.NavGrid.First(w); ok {
		return components.NavGrid.Get(e)
	}
	return nil
}

// FindPath returns the cell centers from start to goal, both excluded, or
// false when no route exists. Points inside a wall snap to the nearest open
// cell.
func FindPath(w donburi.World, start, goal dmath.Vec2) ([]dmath.Vec2, bool) {
	g := navGrid(w)
	if g == nil {
		return nil, false
	}
	from, ok := nearestWalkable(g, cellOf(g, start))
	if !ok {
		return nil, false
	}
	to, ok := nearestWalkable(g, cellOf(g, goal))
	if !ok {
		return nil, false
	}
	if from == to {
		return nil, true
	}

	path, _, found := astar.Path(from, to)
	if !found {
		return nil, false
	}
	// go-astar returns the route goal first
	out := make([]dmath.Vec2, 0, len(path))
	for i := len(path) - 2; i >= 1; i-- {
		out = append(out, cellCenter(g, path[i].(navNode)))
	}
	return out, true
}

// steer returns the unit direction an actor at pos should walk to reach
// target: straight at it when nothing solid is in between, otherwise
// toward the next cell of a grid path.
func steer(w donburi.World, pos, target dmath.Vec2) dmath.Vec2 {
	g := navGrid(w)
	if g == nil || clearLine(g, pos, target) {
		return unit(target.Sub(pos))
	}
	path, ok := FindPath(w, pos, target)
	if !ok || len(path) == 0 {
		return unit(target.Sub(pos))
	}
	return unit(path[0].Sub(pos))
}

// clearLine samples the segment at half-cell steps.
func clearLine(g *components.NavGridData, a, b dmath.Vec2) bool {
	d := dist(a, b)
	steps := int(d/(g.CellSize/2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c := cellOf(g, a.Add(b.Sub(a).MulScalar(t)))
		if !g.Walkable(c.x, c.y) {
			return false
		}
	}
	return true
}

func cellOf(g *components.NavGridData, p dmath.Vec2) navNode {
	return navNode{
		grid: g,
		x:    clampInt(int(math.Floor(p.X/g.CellSize)), 0, g.Width-1),
		y:    clampInt(int(math.Floor(p.Y/g.CellSize)), 0, g.Height-1),
	}
}

func cellCenter(g *components.NavGridData, n navNode) dmath.Vec2 {
	return dmath.NewVec2((float64(n.x)+0.5)*g.CellSize, (float64(n.y)+0.5)*g.CellSize)
}

// nearestWalkable searches outward in growing squares.
func nearestWalkable(g *components.NavGridData, n navNode) (navNode, bool) {
	if g.Walkable(n.x, n.y) {
		return n, true
	}
	for r := 1; r < max(g.Width, g.Height); r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if g.Walkable(n.x+dx, n.y+dy) {
					return navNode{grid: g, x: n.x + dx, y: n.y + dy}, true
				}
			}
		}
	}
	return navNode{}, false
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
