package components

import (
	"math/rand/v2"

	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/services"
	"github.com/yohamta/donburi"
)

// Settings holds the configuration the world was built with.
var Settings = donburi.NewComponentType[config.Config]()

type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()

// ServicesData holds the collaborators outside the simulation.
type ServicesData struct {
	Presenter services.Presenter
	Display   services.Display
	Scenes    services.SceneLoader
}

var Services = donburi.NewComponentType[ServicesData]()
