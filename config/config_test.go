package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
seed: 42
player:
  health: 5
  recoveryWindow: 1500ms
stamina:
  regenInterval: 2s
scene:
  respawn: arena
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, 5, c.Player.Health)
	assert.Equal(t, 1500*time.Millisecond, c.Player.RecoveryWindow)
	assert.Equal(t, 2*time.Second, c.Stamina.RegenInterval)
	assert.Equal(t, "arena", c.Scene.Respawn)

	assert.Equal(t, 72.0, c.Player.MoveSpeed, "unset values keep their defaults")
	assert.Len(t, c.Enemy.Types, 4)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "player: [not, a, map]"))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, New(), c)
}

func TestValidate_ClampsOutOfRangeValues(t *testing.T) {
	c := New()
	c.Player.Health = 0
	c.Player.DashCooldown = -time.Second
	c.Arrow.Speed = -5
	c.Stamina.Start = 10
	c.Inventory = []string{Sword, "Trident"}

	w := c.Weapons[Bow]
	w.Cooldown = -time.Millisecond
	w.Damage = -3
	c.Weapons[Bow] = w

	c.Validate()

	assert.Equal(t, 1, c.Player.Health)
	assert.Zero(t, c.Player.DashCooldown)
	assert.Equal(t, minSpeed, c.Arrow.Speed)
	assert.Equal(t, c.Stamina.Max, c.Stamina.Start)
	assert.Equal(t, []string{Sword, ""}, c.Inventory)
	assert.Zero(t, c.Weapons[Bow].Cooldown)
	assert.Zero(t, c.Weapons[Bow].Damage)
}

func TestValidate_ShooterLimits(t *testing.T) {
	tests := []struct {
		name  string
		in    ShooterConfig
		check func(t *testing.T, s ShooterConfig)
	}{
		{
			name: "counts at least one",
			in:   ShooterConfig{ProjectilesPerBurst: 0, BurstCount: -2},
			check: func(t *testing.T, s ShooterConfig) {
				assert.Equal(t, 1, s.ProjectilesPerBurst)
				assert.Equal(t, 1, s.BurstCount)
			},
		},
		{
			name: "intervals at least 100ms",
			in:   ShooterConfig{TimeBetweenBursts: 10 * time.Millisecond, RestTime: -time.Second},
			check: func(t *testing.T, s ShooterConfig) {
				assert.Equal(t, 100*time.Millisecond, s.TimeBetweenBursts)
				assert.Equal(t, 100*time.Millisecond, s.RestTime)
			},
		},
		{
			name: "spread within a circle",
			in:   ShooterConfig{AngleSpread: 400},
			check: func(t *testing.T, s ShooterConfig) {
				assert.Equal(t, 359.0, s.AngleSpread)
			},
		},
		{
			name: "negative spread",
			in:   ShooterConfig{AngleSpread: -10},
			check: func(t *testing.T, s ShooterConfig) {
				assert.Zero(t, s.AngleSpread)
			},
		},
		{
			name: "oscillate implies stagger",
			in:   ShooterConfig{Oscillate: true},
			check: func(t *testing.T, s ShooterConfig) {
				assert.True(t, s.Stagger)
			},
		},
		{
			name: "starting distance",
			in:   ShooterConfig{StartingDistance: 0},
			check: func(t *testing.T, s ShooterConfig) {
				assert.Equal(t, minStartDistance, s.StartingDistance)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			et := EnemyTypeConfig{Shooter: tt.in}
			et.Validate()
			tt.check(t, et.Shooter)
		})
	}
}

func TestEnemyType_FallsBackToDefault(t *testing.T) {
	c := New()
	assert.Equal(t, "Brute", c.EnemyType("Brute").Name)
	assert.Equal(t, c.Enemy.DefaultType, c.EnemyType("Dragon").Name)
}

func TestWeapon(t *testing.T) {
	c := New()
	w, ok := c.Weapon(Staff)
	require.True(t, ok)
	assert.Equal(t, WeaponStaff, w.Kind)

	_, ok = c.Weapon("")
	assert.False(t, ok)
}
