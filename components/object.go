package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the midpoint of the collision rectangle.
func (o *ObjectData) Center() math.Vec2 {
	return math.NewVec2(o.X+o.W/2, o.Y+o.H/2)
}

// SetCenter moves the object so its midpoint is at p and re-registers it in
// its space.
func (o *ObjectData) SetCenter(p math.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}

// Overlaps reports whether two rectangles intersect with positive area.
func (o *ObjectData) Overlaps(other *resolv.Object) bool {
	return o.X < other.X+other.W && other.X < o.X+o.W &&
		o.Y < other.Y+other.H && other.Y < o.Y+o.H
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the collision space of the arena.
var Space = donburi.NewComponentType[resolv.Space]()
