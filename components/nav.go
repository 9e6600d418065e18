package components

import "github.com/yohamta/donburi"

// NavGridData is the arena rasterized into cells; Blocked is row-major.
type NavGridData struct {
	Width, Height int
	CellSize      float64
	Blocked       []bool
}

func (g *NavGridData) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func (g *NavGridData) Walkable(x, y int) bool {
	return g.InBounds(x, y) && !g.Blocked[y*g.Width+x]
}

var NavGrid = donburi.NewComponentType[NavGridData]()
