package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed      float64       `yaml:"moveSpeed"` // px/s
	DashMultiplier float64       `yaml:"dashMultiplier"`
	DashDuration   time.Duration `yaml:"dashDuration"`
	DashCooldown   time.Duration `yaml:"dashCooldown"`

	// Combat
	Health          int           `yaml:"health"`
	RecoveryWindow  time.Duration `yaml:"recoveryWindow"` // invulnerability after a hit
	KnockbackThrust float64       `yaml:"knockbackThrust"`
	DeathCheckDelay time.Duration `yaml:"deathCheckDelay"`
	DeathDelay      time.Duration `yaml:"deathDelay"` // before the scene reloads
	WeaponOffset    float64       `yaml:"weaponOffset"`

	// Physics
	Mass float64 `yaml:"mass"`
	Drag float64 `yaml:"drag"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// KnockbackConfig contains knockback timing shared by every actor.
type KnockbackConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// CombatConfig contains feedback timing for hits.
type CombatConfig struct {
	FlashDuration time.Duration `yaml:"flashDuration"`
}

// WeaponKind selects the attack behavior of a weapon.
type WeaponKind string

const (
	WeaponMelee WeaponKind = "melee"
	WeaponBow   WeaponKind = "bow"
	WeaponStaff WeaponKind = "staff"
)

// WeaponInfo is the immutable description of a weapon.
type WeaponInfo struct {
	Name     string        `yaml:"name"`
	Kind     WeaponKind    `yaml:"kind"`
	Cooldown time.Duration `yaml:"cooldown"`
	Damage   int           `yaml:"damage"`
	Range    float64       `yaml:"range"` // px, projectiles and lasers only
}

// MeleeConfig contains swing hitbox values shared by sword and brute swings.
type MeleeConfig struct {
	SwingDuration time.Duration `yaml:"swingDuration"`
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	Reach         float64       `yaml:"reach"` // distance from wielder center to hitbox center
}

// ArrowConfig contains straight player projectile values.
type ArrowConfig struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// LaserConfig contains staff laser values.
type LaserConfig struct {
	CastDelay    time.Duration `yaml:"castDelay"` // wind-up before the beam appears
	GrowTime     time.Duration `yaml:"growTime"`
	FadeDuration time.Duration `yaml:"fadeDuration"`
	Thickness    float64       `yaml:"thickness"`
}

// LobConfig contains arcing projectile and splatter values.
type LobConfig struct {
	Duration       time.Duration `yaml:"duration"`
	Height         float64       `yaml:"height"`
	ReleaseDelay   time.Duration `yaml:"releaseDelay"`
	Size           float64       `yaml:"size"`
	SplatterSize   float64       `yaml:"splatterSize"`
	SplatterActive time.Duration `yaml:"splatterActive"`
	SplatterFade   time.Duration `yaml:"splatterFade"`
	SplatterDamage int           `yaml:"splatterDamage"`
}

// ShooterConfig contains burst fire values for shooter enemies.
type ShooterConfig struct {
	BulletSpeed         float64       `yaml:"bulletSpeed"`
	BulletRange         float64       `yaml:"bulletRange"`
	BulletDamage        int           `yaml:"bulletDamage"`
	BulletSize          float64       `yaml:"bulletSize"`
	BurstCount          int           `yaml:"burstCount"`
	ProjectilesPerBurst int           `yaml:"projectilesPerBurst"`
	AngleSpread         float64       `yaml:"angleSpread"` // degrees
	StartingDistance    float64       `yaml:"startingDistance"`
	TimeBetweenBursts   time.Duration `yaml:"timeBetweenBursts"`
	RestTime            time.Duration `yaml:"restTime"`
	Stagger             bool          `yaml:"stagger"`
	Oscillate           bool          `yaml:"oscillate"`
}

// EnemyBehaviorKind selects the attack behavior of an enemy type.
type EnemyBehaviorKind string

const (
	BehaviorRoamer  EnemyBehaviorKind = "roamer"
	BehaviorBrute   EnemyBehaviorKind = "brute"
	BehaviorShooter EnemyBehaviorKind = "shooter"
	BehaviorLobber  EnemyBehaviorKind = "lobber"
)

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name     string            `yaml:"name"`
	Behavior EnemyBehaviorKind `yaml:"behavior"`

	// Combat
	Health          int           `yaml:"health"`
	ContactDamage   int           `yaml:"contactDamage"`
	MeleeDamage     int           `yaml:"meleeDamage"`
	KnockbackThrust float64       `yaml:"knockbackThrust"`
	DeathCheckDelay time.Duration `yaml:"deathCheckDelay"`
	DeathDelay      time.Duration `yaml:"deathDelay"`

	// AI
	MoveSpeed                float64       `yaml:"moveSpeed"`
	AttackRange              float64       `yaml:"attackRange"` // 0 disables the attacking state
	AttackCooldown           time.Duration `yaml:"attackCooldown"`
	StopMovingWhileAttacking bool          `yaml:"stopMovingWhileAttacking"`
	RoamInterval             time.Duration `yaml:"roamInterval"`
	RoamRadius               float64       `yaml:"roamRadius"` // anchored spawns only

	// Physics
	Mass float64 `yaml:"mass"`
	Drag float64 `yaml:"drag"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Shooter ShooterConfig `yaml:"shooter"`
	Tint    color.RGBA    `yaml:"-"`
}

// EnemyConfig contains enemy-related configuration values
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig `yaml:"types"`
	DefaultType string                     `yaml:"defaultType"`
}

// PickupConfig contains drop motion and collection values.
type PickupConfig struct {
	Size          float64       `yaml:"size"`
	PopDuration   time.Duration `yaml:"popDuration"`
	PopHeight     float64       `yaml:"popHeight"`
	ScatterX      float64       `yaml:"scatterX"`
	ScatterY      float64       `yaml:"scatterY"`
	CaptureRadius float64       `yaml:"captureRadius"`
	BaseSpeed     float64       `yaml:"baseSpeed"`
	Accel         float64       `yaml:"accel"` // px/s^2 while homing
	MaxCoins      int           `yaml:"maxCoins"`
}

// StaminaConfig contains dash resource values.
type StaminaConfig struct {
	Max           int           `yaml:"max"`
	Start         int           `yaml:"start"`
	RegenInterval time.Duration `yaml:"regenInterval"`
}

// SceneConfig names the scenes the game can load.
type SceneConfig struct {
	Respawn string `yaml:"respawn"`
}

// Config holds the full game configuration.
type Config struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	TPS         int    `yaml:"tps"`
	PhysicsRate int    `yaml:"physicsRate"` // fixed physics steps per second
	CellSize    int    `yaml:"cellSize"`
	Seed        uint64 `yaml:"seed"`

	Player    PlayerConfig          `yaml:"player"`
	Knockback KnockbackConfig       `yaml:"knockback"`
	Combat    CombatConfig          `yaml:"combat"`
	Weapons   map[string]WeaponInfo `yaml:"weapons"`
	Inventory []string              `yaml:"inventory"` // weapon names per slot, "" = empty
	Melee     MeleeConfig           `yaml:"melee"`
	Arrow     ArrowConfig           `yaml:"arrow"`
	Laser     LaserConfig           `yaml:"laser"`
	Lob       LobConfig             `yaml:"lob"`
	Enemy     EnemyConfig           `yaml:"enemy"`
	Pickup    PickupConfig          `yaml:"pickup"`
	Stamina   StaminaConfig         `yaml:"stamina"`
	Scene     SceneConfig           `yaml:"scene"`
}

// Palette
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	Green       = color.RGBA{R: 40, G: 200, B: 80, A: 255}
	Blue        = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple      = color.RGBA{R: 150, G: 60, B: 220, A: 255}
	Stone       = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	Wood        = color.RGBA{R: 130, G: 90, B: 50, A: 255}
	Background  = color.RGBA{R: 30, G: 40, B: 35, A: 255}
	ShadowColor = color.RGBA{R: 0, G: 0, B: 0, A: 90}
)

// Weapon names used by the default inventory.
const (
	Sword = "Sword"
	Bow   = "Bow"
	Staff = "Staff"
)

// New returns the default configuration.
func New() *Config {
	c := &Config{
		Width:       480,
		Height:      320,
		TPS:         60,
		PhysicsRate: 50,
		CellSize:    16,
		Seed:        1,
	}

	// Player Config
	c.Player = PlayerConfig{
		MoveSpeed:      72,
		DashMultiplier: 4,
		DashDuration:   200 * time.Millisecond,
		DashCooldown:   250 * time.Millisecond,

		Health:          3,
		RecoveryWindow:  time.Second,
		KnockbackThrust: 160,
		DeathCheckDelay: 0,
		DeathDelay:      2 * time.Second,
		WeaponOffset:    10,

		Mass: 1,
		Drag: 4,

		Width:  12,
		Height: 14,
	}

	c.Knockback = KnockbackConfig{Duration: 200 * time.Millisecond}
	c.Combat = CombatConfig{FlashDuration: 200 * time.Millisecond}

	// Weapons
	c.Weapons = map[string]WeaponInfo{
		Sword: {Name: Sword, Kind: WeaponMelee, Cooldown: 500 * time.Millisecond, Damage: 1},
		Bow:   {Name: Bow, Kind: WeaponBow, Cooldown: 500 * time.Millisecond, Damage: 1, Range: 160},
		Staff: {Name: Staff, Kind: WeaponStaff, Cooldown: time.Second, Damage: 2, Range: 112},
	}
	c.Inventory = []string{Sword, Bow, Staff, "", ""}

	c.Melee = MeleeConfig{
		SwingDuration: 200 * time.Millisecond,
		Width:         18,
		Height:        18,
		Reach:         14,
	}
	c.Arrow = ArrowConfig{Speed: 352, Size: 4}
	c.Laser = LaserConfig{
		CastDelay:    250 * time.Millisecond,
		GrowTime:     2 * time.Second,
		FadeDuration: 400 * time.Millisecond,
		Thickness:    4,
	}
	c.Lob = LobConfig{
		Duration:       time.Second,
		Height:         48,
		ReleaseDelay:   400 * time.Millisecond,
		Size:           6,
		SplatterSize:   24,
		SplatterActive: 200 * time.Millisecond,
		SplatterFade:   400 * time.Millisecond,
		SplatterDamage: 1,
	}

	slime := EnemyTypeConfig{
		Name:            "Slime",
		Behavior:        BehaviorRoamer,
		Health:          3,
		ContactDamage:   1,
		KnockbackThrust: 240,
		DeathCheckDelay: 200 * time.Millisecond, // matches the hit flash
		MoveSpeed:       32,
		RoamInterval:    2 * time.Second,
		RoamRadius:      48,
		Mass:            1,
		Drag:            4,
		Width:           12,
		Height:          10,
		Tint:            Green,
	}

	brute := slime
	brute.Name = "Brute"
	brute.Behavior = BehaviorBrute
	brute.Health = 5
	brute.MeleeDamage = 1
	brute.AttackRange = 24
	brute.AttackCooldown = 1500 * time.Millisecond
	brute.StopMovingWhileAttacking = true
	brute.Mass = 2
	brute.Width, brute.Height = 14, 16
	brute.Tint = Red

	shooter := slime
	shooter.Name = "Shooter"
	shooter.Behavior = BehaviorShooter
	shooter.AttackRange = 128
	shooter.AttackCooldown = 2 * time.Second
	shooter.StopMovingWhileAttacking = true
	shooter.Tint = Blue
	shooter.Shooter = ShooterConfig{
		BulletSpeed:         120,
		BulletRange:         200,
		BulletDamage:        1,
		BulletSize:          4,
		BurstCount:          3,
		ProjectilesPerBurst: 5,
		AngleSpread:         40,
		StartingDistance:    10,
		TimeBetweenBursts:   300 * time.Millisecond,
		RestTime:            time.Second,
		Stagger:             true,
		Oscillate:           true,
	}

	grape := slime
	grape.Name = "Grape"
	grape.Behavior = BehaviorLobber
	grape.AttackRange = 112
	grape.AttackCooldown = 2 * time.Second
	grape.StopMovingWhileAttacking = true
	grape.Tint = Purple

	c.Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			slime.Name:   slime,
			brute.Name:   brute,
			shooter.Name: shooter,
			grape.Name:   grape,
		},
		DefaultType: slime.Name,
	}

	c.Pickup = PickupConfig{
		Size:          8,
		PopDuration:   time.Second,
		PopHeight:     24,
		ScatterX:      32,
		ScatterY:      16,
		CaptureRadius: 80,
		BaseSpeed:     48,
		Accel:         240,
		MaxCoins:      3,
	}
	c.Stamina = StaminaConfig{Max: 3, Start: 3, RegenInterval: 3 * time.Second}
	c.Scene = SceneConfig{Respawn: "town"}

	return c
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	c := New()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Validate()
	return c, nil
}

// EnemyType looks up an enemy type, falling back to the default type.
func (c *Config) EnemyType(name string) EnemyTypeConfig {
	if t, ok := c.Enemy.Types[name]; ok {
		return t
	}
	return c.Enemy.Types[c.Enemy.DefaultType]
}

// Weapon looks up a weapon by name.
func (c *Config) Weapon(name string) (WeaponInfo, bool) {
	if name == "" {
		return WeaponInfo{}, false
	}
	w, ok := c.Weapons[name]
	return w, ok
}
