package scenes

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/services"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type effect struct {
	def   config.EffectDef
	pos   math.Vec2
	start time.Duration
}

type hudState struct {
	health, maxHealth   int
	stamina, maxStamina int
	currency            string
}

// presenter keeps the visual state the simulation reports and draws it on
// top of the world. Times are simulation time.
type presenter struct {
	now        func() time.Duration
	flashes    map[donburi.Entity]time.Duration
	cues       map[donburi.Entity]string
	effects    []effect
	shakeUntil time.Duration
	hud        hudState
}

func newPresenter(now func() time.Duration) *presenter {
	return &presenter{
		now:     now,
		flashes: map[donburi.Entity]time.Duration{},
		cues:    map[donburi.Entity]string{},
	}
}

func (p *presenter) Cue(e donburi.Entity, cue string) {
	p.cues[e] = cue
}

func (p *presenter) Flash(e donburi.Entity, d time.Duration) {
	p.flashes[e] = p.now() + d
}

func (p *presenter) ShakeScreen() {
	p.shakeUntil = p.now() + config.ScreenShake.Duration
}

func (p *presenter) SpawnEffect(kind string, pos math.Vec2) {
	def, ok := config.Effects[kind]
	if !ok {
		return
	}
	p.effects = append(p.effects, effect{def: def, pos: pos, start: p.now()})
}

func (p *presenter) SetHealth(current, max int) {
	p.hud.health, p.hud.maxHealth = current, max
}

func (p *presenter) SetStamina(current, max int) {
	p.hud.stamina, p.hud.maxStamina = current, max
}

func (p *presenter) SetCurrency(text string) {
	p.hud.currency = text
}

func (p *presenter) flashing(e donburi.Entity) bool {
	return p.now() < p.flashes[e]
}

// shakeOffset returns the camera offset for the current frame.
func (p *presenter) shakeOffset() (float64, float64) {
	if p.now() >= p.shakeUntil {
		return 0, 0
	}
	n := config.ScreenShake.Intensity
	return (rand.Float64()*2 - 1) * n, (rand.Float64()*2 - 1) * n
}

// prune drops expired effects and flashes.
func (p *presenter) prune() {
	now := p.now()
	live := p.effects[:0]
	for _, fx := range p.effects {
		if now-fx.start < fx.def.Duration {
			live = append(live, fx)
		}
	}
	p.effects = live
	for e, until := range p.flashes {
		if now >= until {
			delete(p.flashes, e)
		}
	}
}

func (p *presenter) reset() {
	clear(p.flashes)
	clear(p.cues)
	p.effects = p.effects[:0]
	p.shakeUntil = 0
}

var (
	_ services.Presenter = (*presenter)(nil)
	_ services.Display   = (*presenter)(nil)
)
