package systems

import (
	"iter"
	"math/rand/v2"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/services"
	"github.com/automoto/thornrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var defaultSettings = config.New()

// Settings returns the configuration the world was built with.
func Settings(w donburi.World) *config.Config {
	if e, ok := components.Settings.First(w); ok {
		return components.Settings.Get(e)
	}
	return defaultSettings
}

// Now returns the current simulation time.
func Now(w donburi.World) time.Duration {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e).Now
	}
	return 0
}

// Delta returns the length of the current frame.
func Delta(w donburi.World) time.Duration {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e).Delta
	}
	return 0
}

// AdvanceClock moves simulation time forward by dt.
func AdvanceClock(w donburi.World, dt time.Duration) {
	e, ok := components.Clock.First(w)
	if !ok {
		return
	}
	c := components.Clock.Get(e)
	c.Delta = dt
	c.Now += dt
	c.Frame++
}

// Services returns the world's collaborators, substituting no-ops for any
// that were never wired.
func Services(w donburi.World) components.ServicesData {
	var s components.ServicesData
	if e, ok := components.Services.First(w); ok {
		s = *components.Services.Get(e)
	}
	if s.Presenter == nil {
		s.Presenter = services.Nop{}
	}
	if s.Display == nil {
		s.Display = services.Nop{}
	}
	if s.Scenes == nil {
		s.Scenes = services.Nop{}
	}
	return s
}

// fallbackRand serves worlds built without CreateGame.
var fallbackRand = rand.New(rand.NewPCG(1, 1))

func random(w donburi.World) *rand.Rand {
	if e, ok := components.Random.First(w); ok {
		if r := components.Random.Get(e); r.Rand != nil {
			return r.Rand
		}
	}
	return fallbackRand
}

func space(w donburi.World) *resolv.Space {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e)
	}
	return nil
}

// livingPlayer returns the player while it can still be targeted.
func livingPlayer(w donburi.World) (*donburi.Entry, bool) {
	p, ok := tags.Player.First(w)
	if !ok || !alive(p) {
		return nil, false
	}
	return p, true
}

func alive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	if !e.HasComponent(components.Health) {
		return true
	}
	return components.Health.Get(e).Alive()
}

// collect drains a query so systems can create and remove entities while
// walking the result.
func collect(seq iter.Seq[*donburi.Entry]) []*donburi.Entry {
	var out []*donburi.Entry
	for e := range seq {
		out = append(out, e)
	}
	return out
}
