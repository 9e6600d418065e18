package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// KnockbackData locks voluntary movement while an impulse plays out.
type KnockbackData struct {
	Locked bool
	Until  time.Duration
	Clear  TaskID
}

var Knockback = donburi.NewComponentType[KnockbackData]()
