package config

import (
	"image/color"
	"time"
)

// EffectDef describes how the renderer draws a transient effect.
type EffectDef struct {
	Duration time.Duration
	Radius   float32
	Color    color.RGBA
}

// Effects maps effect kinds to their visuals.
var Effects = map[string]EffectDef{
	EffectSlash:   {Duration: 120 * time.Millisecond, Radius: 10, Color: White},
	EffectImpact:  {Duration: 150 * time.Millisecond, Radius: 5, Color: Yellow},
	EffectDeath:   {Duration: 400 * time.Millisecond, Radius: 14, Color: Red},
	EffectDestroy: {Duration: 300 * time.Millisecond, Radius: 10, Color: Wood},
	EffectPickup:  {Duration: 200 * time.Millisecond, Radius: 6, Color: Yellow},
}

// ScreenShake contains the camera shake applied when the player is hurt.
var ScreenShake = struct {
	Intensity float64 // pixels
	Duration  time.Duration
}{
	Intensity: 3,
	Duration:  150 * time.Millisecond,
}
