// Package services declares the collaborators the combat simulation talks to
// but does not own: presentation, HUD display and scene loading.
package services

//go:generate go tool mockgen -destination=mocks/services_mock.go -package=mocks . Presenter,Display,SceneLoader

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Presenter plays animation cues and transient visual effects.
type Presenter interface {
	Cue(e donburi.Entity, cue string)
	Flash(e donburi.Entity, d time.Duration)
	ShakeScreen()
	SpawnEffect(kind string, pos math.Vec2)
}

// Display shows player resources on the HUD.
type Display interface {
	SetHealth(current, max int)
	SetStamina(current, max int)
	SetCurrency(text string)
}

// SceneLoader switches to a named scene.
type SceneLoader interface {
	LoadScene(name string)
}

// Nop implements every collaborator and does nothing.
type Nop struct{}

func (Nop) Cue(donburi.Entity, string) {}
func (Nop) Flash(donburi.Entity, time.Duration) {}
func (Nop) ShakeScreen() {}
func (Nop) SpawnEffect(string, math.Vec2) {}
func (Nop) SetHealth(int, int) {}
func (Nop) SetStamina(int, int) {}
func (Nop) SetCurrency(string) {}
func (Nop) LoadScene(string) {}

var (
	_ Presenter   = Nop{}
	_ Display     = Nop{}
	_ SceneLoader = Nop{}
)
