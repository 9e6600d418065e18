package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData fades an entity out; it is removed once the tween finishes.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
}

var Fade = donburi.NewComponentType[FadeData]()
