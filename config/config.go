// Package config loads game tuning from YAML.
package config

import (
	_ "embed"

	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/milk9111/phaseshift/physics"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

type Config struct {
	Window  Window  `yaml:"window"`
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	Tongue  Tongue  `yaml:"tongue"`
	Audio   Audio   `yaml:"audio"`
	Storage Storage `yaml:"storage"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Physics struct {
	Gravity float64 `yaml:"gravity"`
}

// Player holds defaults a level may override.
type Player struct {
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpForce      float64 `yaml:"jump_force"`
	CoyoteMs       int64   `yaml:"coyote_ms"`
	MaxHealth      int     `yaml:"max_health"`
	InvulnerableMs int64   `yaml:"invulnerable_ms"`
}

type Tongue struct {
	Speed  float64 `yaml:"speed"`
	TTLMs  int64   `yaml:"ttl_ms"`
	Damage int     `yaml:"damage"`
}

type Audio struct {
	Volume float64 `yaml:"volume"`
}

type Storage struct {
	// Path is the sqlite file; empty disables run statistics.
	Path string `yaml:"path"`
}

// Default returns the hard-coded configuration.
func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "phaseshift"},
		Physics: Physics{
			Gravity: physics.DefaultGravity,
		},
		Player: Player{
			MoveSpeed:      component.DefaultMoveSpeed,
			JumpForce:      component.DefaultJumpForce,
			CoyoteMs:       component.DefaultCoyoteWindowMs,
			MaxHealth:      component.DefaultMaxHealth,
			InvulnerableMs: component.DefaultInvulnerableMs,
		},
		Tongue:  Tongue{Speed: 12, TTLMs: 250, Damage: 1},
		Audio:   Audio{Volume: 0.5},
		Storage: Storage{Path: "~/.phaseshift/stats.db"},
	}
}

// Validate replaces out-of-range values with defaults. A zero coyote window
// is kept: it disables the grace period.
func (c *Config) Validate() {
	def := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Physics.Gravity <= 0 {
		c.Physics.Gravity = def.Physics.Gravity
	}
	if c.Player.MoveSpeed <= 0 {
		c.Player.MoveSpeed = def.Player.MoveSpeed
	}
	if c.Player.JumpForce <= 0 {
		c.Player.JumpForce = def.Player.JumpForce
	}
	if c.Player.CoyoteMs < 0 {
		c.Player.CoyoteMs = def.Player.CoyoteMs
	}
	if c.Player.MaxHealth <= 0 {
		c.Player.MaxHealth = def.Player.MaxHealth
	}
	if c.Player.InvulnerableMs < 0 {
		c.Player.InvulnerableMs = def.Player.InvulnerableMs
	}
	if c.Tongue.Speed <= 0 {
		c.Tongue.Speed = def.Tongue.Speed
	}
	if c.Tongue.TTLMs <= 0 {
		c.Tongue.TTLMs = def.Tongue.TTLMs
	}
	if c.Tongue.Damage <= 0 {
		c.Tongue.Damage = def.Tongue.Damage
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		c.Audio.Volume = def.Audio.Volume
	}
}
