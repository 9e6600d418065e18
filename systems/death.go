package systems

import (
	"github.com/automoto/thornrun/components"
	"github.com/yohamta/donburi"
)

// destroyEntity removes e from the collision space and the world.
func destroyEntity(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
