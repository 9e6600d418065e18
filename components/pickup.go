package components

import (
	"github.com/yohamta/donburi"
)

type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupStamina
	PickupCoin
)

func (k PickupKind) String() string {
	switch k {
	case PickupHealth:
		return "health"
	case PickupStamina:
		return "stamina"
	default:
		return "coin"
	}
}

type PickupData struct {
	Kind      PickupKind
	Speed     float64 // current homing speed
	Collected bool
}

var Pickup = donburi.NewComponentType[PickupData]()
