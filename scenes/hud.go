package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin  = 6
	hudPip     = 8
	hudPipGap  = 3
	hudRowStep = hudPip + 4
)

var hudFace = basicfont.Face7x13

// drawHUD renders health and stamina pips, gold and the equipped weapon.
func (as *ArenaScene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := as.view.hud
	drawPips(screen, hudMargin, hudMargin, hud.health, hud.maxHealth, config.Red)
	drawPips(screen, hudMargin, hudMargin+hudRowStep, hud.stamina, hud.maxStamina, config.Green)

	gold := "$" + hud.currency
	text.Draw(screen, gold, hudFace, as.cfg.Width-hudMargin-len(gold)*7, hudMargin+11, config.Yellow)

	if p, ok := as.sim.Player(); ok {
		if name := systems.EquippedName(p); name != "" {
			text.Draw(screen, name, hudFace, hudMargin, as.cfg.Height-hudMargin, config.White)
		}
	}
	kills := fmt.Sprintf("kills %d", systems.Kills(e.World))
	text.Draw(screen, kills, hudFace, as.cfg.Width-hudMargin-len(kills)*7, as.cfg.Height-hudMargin, config.White)
}

func drawPips(screen *ebiten.Image, x, y, current, max int, clr color.RGBA) {
	for i := range max {
		px := float32(x + i*(hudPip+hudPipGap))
		vector.DrawFilledRect(screen, px, float32(y), hudPip, hudPip, color.RGBA{40, 40, 40, 255}, false)
		if i < current {
			vector.DrawFilledRect(screen, px+1, float32(y+1), hudPip-2, hudPip-2, clr, false)
		}
	}
}
