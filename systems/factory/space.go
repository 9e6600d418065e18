package factory

import (
	"github.com/automoto/thornrun/archetypes"
	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace links obj to its entry and registers it with the arena space.
func addToSpace(w donburi.World, e *donburi.Entry, obj *resolv.Object) {
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func newRect(x, y, w, h float64, resolvTags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

func settings(w donburi.World) *config.Config {
	if e, ok := components.Settings.First(w); ok {
		return components.Settings.Get(e)
	}
	return config.New()
}
