package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
	Dead    bool

	// Player-only: damage is ignored while the clock is before this time.
	InvulnerableUntil time.Duration
	RecoveryWindow    time.Duration

	KnockbackThrust float64
	DeathCheckDelay time.Duration
	DeathDelay      time.Duration
}

// Alive reports whether the actor can still take part in combat.
func (h *HealthData) Alive() bool {
	return !h.Dead
}

var Health = donburi.NewComponentType[HealthData]()
