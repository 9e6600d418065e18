package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var levelFS embed.FS

// DefaultArena is the arena loaded when no other is requested.
const DefaultArena = "levels/arena.tmx"

// Levels exposes the embedded level files.
func Levels() fs.FS {
	return levelFS
}
