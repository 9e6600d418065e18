package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock. Now only advances through the frame tick.
type ClockData struct {
	Now   time.Duration
	Delta time.Duration
	Frame uint64
}

var Clock = donburi.NewComponentType[ClockData]()
