// Package leveldata parses arena layouts from Tiled TMX files. It has no
// dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// Arena holds everything the simulation needs to build an arena.
type Arena struct {
	Name          string
	Width         int // pixels
	Height        int
	Walls         []Rect
	Destructibles []Rect
	EnemySpawns   []EnemySpawn
	PlayerSpawns  []Point
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// EnemySpawn places one enemy. Anchored enemies roam around their spawn.
type EnemySpawn struct {
	X, Y     float64
	Type     string
	Anchored bool
}
