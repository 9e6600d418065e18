package factory

import (
	"github.com/automoto/thornrun/archetypes"
	"github.com/automoto/thornrun/tags"
	"github.com/yohamta/donburi"
)

// CreateWall creates an indestructible obstacle.
func CreateWall(w donburi.World, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	addToSpace(w, wall, newRect(x, y, width, height, tags.ResolvSolid))
	return wall
}

// CreateDestructible creates an obstacle that breaks when hit by the player.
// It blocks movement like a wall.
func CreateDestructible(w donburi.World, x, y, width, height float64) *donburi.Entry {
	d := archetypes.Destructible.Spawn(w)
	addToSpace(w, d, newRect(x, y, width, height, tags.ResolvSolid, tags.ResolvDestructible))
	return d
}
