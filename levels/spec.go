package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrUnknownLevel = errors.New("levels: unknown level")

// Coord is a point relative to the screen: Ratio*dimension + offset.
type Coord struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	XRatio float64 `yaml:"x_ratio"`
	YRatio float64 `yaml:"y_ratio"`
}

func (c Coord) Resolve(screenW, screenH float64) (float64, float64) {
	return c.XRatio*screenW + c.X, c.YRatio*screenH + c.Y
}

type Level struct {
	Name                 string         `yaml:"name"`
	Next                 string         `yaml:"next"`
	Player               PlayerSpec     `yaml:"player"`
	HealthBar            HealthBarSpec  `yaml:"health_bar"`
	Indicator            IndicatorSpec  `yaml:"indicator"`
	Ground               *GroundSpec    `yaml:"ground"`
	StaticPlatforms      []PlatformSpec `yaml:"static_platforms"`
	TeleportingPlatforms []TeleportSpec `yaml:"teleporting_platforms"`
	Enemies              []EnemySpec    `yaml:"enemies"`
	Instructions         []string       `yaml:"instructions"`
}

// PlayerSpec overrides the configured player defaults when non-zero.
type PlayerSpec struct {
	Spawn      Coord   `yaml:"spawn"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Appearance string  `yaml:"appearance"`
	MoveSpeed  float64 `yaml:"move_speed"`
	JumpForce  float64 `yaml:"jump_force"`
	CoyoteMs   *int64  `yaml:"coyote_ms"`
}

type HealthBarSpec struct {
	MaxHealth int     `yaml:"max_health"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	HeartSize float64 `yaml:"heart_size"`
}

type IndicatorSpec struct {
	Position Coord   `yaml:"position"`
	Radius   float64 `yaml:"radius"`
}

type GroundSpec struct {
	Appearance string  `yaml:"appearance"`
	Height     float64 `yaml:"height"`
}

type PlatformSpec struct {
	Position   Coord   `yaml:"position"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Appearance string  `yaml:"appearance"`
}

type TeleportSpec struct {
	A PlatformSpec `yaml:"a"`
	B PlatformSpec `yaml:"b"`
	// Cues rotate on each toggle; empty uses the default pair.
	Cues []string `yaml:"cues"`
}

type EnemySpec struct {
	Position        Coord   `yaml:"position"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Appearance      string  `yaml:"appearance"`
	MaxHealth       int     `yaml:"max_health"`
	IntervalMs      int64   `yaml:"interval_ms"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileColor string  `yaml:"projectile_color"`
	HasShield       bool    `yaml:"has_shield"`
	ShieldHealth    int     `yaml:"shield_health"`
	Range           float64 `yaml:"range"`
	Script          string  `yaml:"script"`
}

// Parse decodes a level document and fills defaults.
func Parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = name
	}
	lvl.applyDefaults()
	return &lvl, nil
}

func (l *Level) applyDefaults() {
	if l.Player.Width <= 0 {
		l.Player.Width = 40
	}
	if l.Player.Height <= 0 {
		l.Player.Height = 40
	}
	if l.Player.Appearance == "" {
		l.Player.Appearance = "green"
	}
	if l.HealthBar.HeartSize <= 0 {
		l.HealthBar.HeartSize = 30
	}
	if l.HealthBar.X == 0 && l.HealthBar.Y == 0 {
		l.HealthBar.X, l.HealthBar.Y = 30, 30
	}
	if l.Indicator.Radius <= 0 {
		l.Indicator.Radius = 24
	}
	if l.Ground != nil && l.Ground.Height <= 0 {
		l.Ground.Height = 50
	}
	for i := range l.Enemies {
		e := &l.Enemies[i]
		if e.Width <= 0 {
			e.Width = 40
		}
		if e.Height <= 0 {
			e.Height = 40
		}
		if e.MaxHealth <= 0 {
			e.MaxHealth = 1
		}
		if e.HasShield && e.ShieldHealth <= 0 {
			e.ShieldHealth = 3
		}
		if e.ProjectileColor == "" {
			e.ProjectileColor = "darkred"
		}
	}
}
