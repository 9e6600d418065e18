package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group and layer names read from TMX files.
const (
	LayerWalls         = "walls"
	GroupWalls         = "Walls"
	GroupDestructibles = "Destructibles"
	GroupEnemySpawn    = "EnemySpawn"
	GroupPlayerSpawn   = "PlayerSpawn"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	// Solid tiles from the walls layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerWalls {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
					continue
				}
				arena.Walls = append(arena.Walls, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				arena.Walls = append(arena.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupDestructibles:
			for _, o := range og.Objects {
				arena.Destructibles = append(arena.Destructibles, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupEnemySpawn:
			for _, o := range og.Objects {
				enemyType := o.Properties.GetString("enemyType")
				if enemyType == "" {
					enemyType = o.Class
				}
				arena.EnemySpawns = append(arena.EnemySpawns, EnemySpawn{
					X:        o.X,
					Y:        o.Y,
					Type:     enemyType,
					Anchored: o.Properties.GetBool("anchored"),
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				arena.PlayerSpawns = append(arena.PlayerSpawns, Point{X: o.X, Y: o.Y})
			}
		}
	}

	if len(arena.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: no %s objects", tmxPath, GroupPlayerSpawn)
	}

	// Sort spawns left-to-right for a stable spawn order
	sort.SliceStable(arena.EnemySpawns, func(i, j int) bool {
		return arena.EnemySpawns[i].X < arena.EnemySpawns[j].X
	})

	return arena, nil
}
