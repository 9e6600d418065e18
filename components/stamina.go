package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type StaminaData struct {
	Current  int
	Max      int
	Interval time.Duration
	Regen    TaskID // pending regeneration, 0 when idle
}

var Stamina = donburi.NewComponentType[StaminaData]()

type EconomyData struct {
	Gold int
}

var Economy = donburi.NewComponentType[EconomyData]()

type KillCounterData struct {
	Total  int
	ByType map[string]int
}

var KillCounter = donburi.NewComponentType[KillCounterData]()
