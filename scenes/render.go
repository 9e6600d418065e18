package scenes

import (
	"image/color"

	"github.com/automoto/thornrun/components"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var pickupColors = map[components.PickupKind]color.RGBA{
	components.PickupHealth:  config.Red,
	components.PickupStamina: config.Green,
	components.PickupCoin:    config.Yellow,
}

func (as *ArenaScene) rect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(screen,
		float32(x+as.shakeX), float32(y+as.shakeY),
		float32(w), float32(h),
		clr, false)
}

// object draws an entry's collision rectangle lifted by lift pixels.
func (as *ArenaScene) object(screen *ebiten.Image, e *donburi.Entry, lift float64, clr color.Color) {
	o := components.Object.Get(e)
	as.rect(screen, o.X, o.Y-lift, o.W, o.H, clr)
}

// shadow marks the ground track of something in the air.
func (as *ArenaScene) shadow(screen *ebiten.Image, e *donburi.Entry) {
	o := components.Object.Get(e)
	c := o.Center()
	vector.DrawFilledCircle(screen,
		float32(c.X+as.shakeX), float32(o.Y+o.H+as.shakeY),
		float32(o.W/2), config.ShadowColor, true)
}

func withAlpha(c color.RGBA, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

func fadeAlpha(e *donburi.Entry) float32 {
	if e.HasComponent(components.Fade) {
		if f := components.Fade.Get(e); f.Tween != nil {
			return f.Alpha
		}
	}
	return 1
}

func (as *ArenaScene) drawArena(e *ecs.ECS, screen *ebiten.Image) {
	for wall := range tags.Wall.Iter(e.World) {
		as.object(screen, wall, 0, config.Stone)
	}
	for crate := range tags.Destructible.Iter(e.World) {
		as.object(screen, crate, 0, config.Wood)
	}
}

// drawGround draws splatters and pickups, which sit under the actors.
func (as *ArenaScene) drawGround(e *ecs.ECS, screen *ebiten.Image) {
	for s := range tags.Splatter.Iter(e.World) {
		as.object(screen, s, 0, withAlpha(config.Purple, 0.6*fadeAlpha(s)))
	}
	for p := range tags.Pickup.Iter(e.World) {
		lift := 0.0
		if p.HasComponent(components.Arc) {
			lift = components.Arc.Get(p).Lift
			as.shadow(screen, p)
		}
		as.object(screen, p, lift, pickupColors[components.Pickup.Get(p).Kind])
	}
}

func (as *ArenaScene) drawActors(e *ecs.ECS, screen *ebiten.Image) {
	for en := range tags.Enemy.Iter(e.World) {
		clr := components.Enemy.Get(en).Behavior.Info().Tint
		if components.Health.Get(en).Dead {
			clr = withAlpha(clr, 0.4)
		}
		as.actor(screen, en, clr)
	}
	if p, ok := tags.Player.First(e.World); ok {
		clr := config.Orange
		if components.Player.Get(p).Dashing {
			clr = config.Yellow
		}
		as.actor(screen, p, clr)
	}
}

func (as *ArenaScene) actor(screen *ebiten.Image, e *donburi.Entry, clr color.RGBA) {
	if as.view.flashing(e.Entity()) {
		clr = config.White
	}
	as.object(screen, e, 0, clr)

	// Facing tick on the leading edge.
	o := components.Object.Get(e)
	c := o.Center()
	dir := components.Facing.Get(e).Dir
	vector.StrokeLine(screen,
		float32(c.X+as.shakeX), float32(c.Y+as.shakeY),
		float32(c.X+dir.X*o.W*0.75+as.shakeX), float32(c.Y+dir.Y*o.H*0.75+as.shakeY),
		2, config.White, false)
}

// drawShots draws hitboxes, projectiles and lasers.
func (as *ArenaScene) drawShots(e *ecs.ECS, screen *ebiten.Image) {
	for h := range tags.Hitbox.Iter(e.World) {
		o := components.Object.Get(h)
		vector.StrokeRect(screen,
			float32(o.X+as.shakeX), float32(o.Y+as.shakeY),
			float32(o.W), float32(o.H),
			1, withAlpha(config.White, 0.7), false)
	}
	for p := range tags.Projectile.Iter(e.World) {
		clr := config.Yellow
		if components.Projectile.Get(p).Side == components.SideEnemy {
			clr = config.Red
		}
		lift := 0.0
		if p.HasComponent(components.Arc) {
			lift = components.Arc.Get(p).Lift
			as.shadow(screen, p)
			clr = config.Purple
		}
		as.object(screen, p, lift, clr)
	}
	for l := range tags.Laser.Iter(e.World) {
		beam := components.Laser.Get(l)
		end := beam.Origin.Add(beam.Dir.MulScalar(beam.Length))
		vector.StrokeLine(screen,
			float32(beam.Origin.X+as.shakeX), float32(beam.Origin.Y+as.shakeY),
			float32(end.X+as.shakeX), float32(end.Y+as.shakeY),
			float32(as.cfg.Laser.Thickness), withAlpha(config.Blue, fadeAlpha(l)), true)
	}
}

// drawEffects draws transient effects as rings that grow and fade.
func (as *ArenaScene) drawEffects(_ *ecs.ECS, screen *ebiten.Image) {
	now := as.view.now()
	for _, fx := range as.view.effects {
		t := float32(now-fx.start) / float32(fx.def.Duration)
		if t > 1 {
			t = 1
		}
		vector.StrokeCircle(screen,
			float32(fx.pos.X+as.shakeX), float32(fx.pos.Y+as.shakeY),
			fx.def.Radius*(0.5+t/2), 2, withAlpha(fx.def.Color, 1-t), true)
	}
}
