package systems

import (
	"github.com/automoto/thornrun/components"
	"github.com/yohamta/donburi"
)

// UpdateFades advances fade-outs and removes entities that have vanished.
func UpdateFades(w donburi.World) {
	dt := float32(Delta(w).Seconds())
	for _, e := range collect(components.Fade.Iter(w)) {
		if !e.Valid() {
			continue
		}
		f := components.Fade.Get(e)
		if f.Tween == nil {
			continue
		}
		alpha, done := f.Tween.Update(dt)
		f.Alpha = alpha
		if done {
			destroyEntity(w, e)
		}
	}
}
