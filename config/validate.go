package config

import "time"

const (
	minShooterInterval = 100 * time.Millisecond
	minStartDistance   = 0.1
	minSpeed           = 0.1
	maxAngleSpread     = 359
)

// Validate clamps out-of-range values to safe minimums. It runs once at load
// time so systems never re-check configuration on the hot path.
func (c *Config) Validate() {
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.PhysicsRate <= 0 {
		c.PhysicsRate = 50
	}
	if c.CellSize <= 0 {
		c.CellSize = 16
	}

	p := &c.Player
	p.Health = atLeast(p.Health, 1)
	p.MoveSpeed = positive(p.MoveSpeed)
	p.Mass = positive(p.Mass)
	p.Drag = nonNegative(p.Drag)
	clampDurations(&p.DashDuration, &p.DashCooldown, &p.RecoveryWindow, &p.DeathCheckDelay, &p.DeathDelay)

	clampDurations(&c.Knockback.Duration, &c.Combat.FlashDuration)
	clampDurations(&c.Melee.SwingDuration, &c.Laser.CastDelay, &c.Laser.GrowTime, &c.Laser.FadeDuration)
	clampDurations(&c.Lob.Duration, &c.Lob.ReleaseDelay, &c.Lob.SplatterActive, &c.Lob.SplatterFade)
	clampDurations(&c.Pickup.PopDuration, &c.Stamina.RegenInterval)
	c.Arrow.Speed = positive(c.Arrow.Speed)

	for name, w := range c.Weapons {
		clampDurations(&w.Cooldown)
		w.Damage = atLeast(w.Damage, 0)
		w.Range = nonNegative(w.Range)
		if w.Name == "" {
			w.Name = name
		}
		c.Weapons[name] = w
	}
	for i, slot := range c.Inventory {
		if _, ok := c.Weapons[slot]; !ok {
			c.Inventory[i] = ""
		}
	}

	for name, t := range c.Enemy.Types {
		t.Validate()
		if t.Name == "" {
			t.Name = name
		}
		c.Enemy.Types[name] = t
	}
	if _, ok := c.Enemy.Types[c.Enemy.DefaultType]; !ok {
		for name := range c.Enemy.Types {
			c.Enemy.DefaultType = name
			break
		}
	}

	c.Stamina.Max = atLeast(c.Stamina.Max, 0)
	c.Stamina.Start = min(atLeast(c.Stamina.Start, 0), c.Stamina.Max)
	c.Pickup.MaxCoins = atLeast(c.Pickup.MaxCoins, 1)
}

// Validate clamps the values of a single enemy type.
func (t *EnemyTypeConfig) Validate() {
	t.Health = atLeast(t.Health, 1)
	t.MoveSpeed = nonNegative(t.MoveSpeed)
	t.AttackRange = nonNegative(t.AttackRange)
	t.RoamRadius = nonNegative(t.RoamRadius)
	t.Mass = positive(t.Mass)
	t.Drag = nonNegative(t.Drag)
	clampDurations(&t.AttackCooldown, &t.RoamInterval, &t.DeathCheckDelay, &t.DeathDelay)

	s := &t.Shooter
	if s.Oscillate {
		s.Stagger = true
	}
	s.ProjectilesPerBurst = atLeast(s.ProjectilesPerBurst, 1)
	s.BurstCount = atLeast(s.BurstCount, 1)
	s.TimeBetweenBursts = max(s.TimeBetweenBursts, minShooterInterval)
	s.RestTime = max(s.RestTime, minShooterInterval)
	s.StartingDistance = max(s.StartingDistance, minStartDistance)
	s.AngleSpread = min(nonNegative(s.AngleSpread), maxAngleSpread)
	s.BulletSpeed = positive(s.BulletSpeed)
	s.BulletRange = nonNegative(s.BulletRange)
}

func clampDurations(ds ...*time.Duration) {
	for _, d := range ds {
		if *d < 0 {
			*d = 0
		}
	}
}

func atLeast(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func positive(v float64) float64 {
	if v <= 0 {
		return minSpeed
	}
	return v
}
