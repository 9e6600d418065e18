package config

// StateID identifies an enemy behavior state.
type StateID int

const (
	StateNone StateID = iota
	Roaming
	Attacking
)

func (s StateID) String() string {
	switch s {
	case Roaming:
		return "roaming"
	case Attacking:
		return "attacking"
	default:
		return "none"
	}
}

// Animation cues sent to the presenter.
const (
	CueAttack    = "Attack"
	CueFire      = "Fire"
	CueDeath     = "Death"
	CueDashTrail = "DashTrail"
)

// Transient effect kinds sent to the presenter.
const (
	EffectSlash   = "slash"
	EffectImpact  = "impact"
	EffectDeath   = "death"
	EffectDestroy = "destroy"
	EffectPickup  = "pickup"
)
