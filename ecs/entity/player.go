package entity

import (
	"github.com/milk9111/phaseshift/config"
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/milk9111/phaseshift/levels"
	"github.com/milk9111/phaseshift/physics"
)

const indicatorInset = 60.0

// NewPlayerAt adds the player at the level's spawn point with its HUD
// components.
func NewPlayerAt(w *ecs.World, phys BodySpawner, lvl *levels.Level, cfg config.Config, screenW, screenH float64) (ecs.Entity, error) {
	spec := lvl.Player
	x, y := spec.Spawn.Resolve(screenW, screenH)
	body := phys.Spawn(physics.BodySpec{
		Kind:       physics.Dynamic,
		Group:      component.GroupPlayer,
		X:          x,
		Y:          y,
		W:          spec.Width,
		H:          spec.Height,
		Appearance: spec.Appearance,
	})
	e, err := attachBody(w, body, component.GroupPlayer, &component.Renderable{Layer: layerActor})
	if err != nil {
		return 0, err
	}

	player := &component.Player{
		MoveSpeed:      pick(spec.MoveSpeed, cfg.Player.MoveSpeed),
		JumpForce:      pick(spec.JumpForce, cfg.Player.JumpForce),
		CoyoteWindowMs: cfg.Player.CoyoteMs,
		Facing:         1,
		TongueSpeed:    cfg.Tongue.Speed,
		TongueTTLMs:    cfg.Tongue.TTLMs,
		TongueDamage:   cfg.Tongue.Damage,
	}
	if spec.CoyoteMs != nil {
		player.CoyoteWindowMs = *spec.CoyoteMs
	}

	maxHealth := lvl.HealthBar.MaxHealth
	if maxHealth <= 0 {
		maxHealth = cfg.Player.MaxHealth
	}

	ix, iy := lvl.Indicator.Position.Resolve(screenW, screenH)
	if lvl.Indicator.Position == (levels.Coord{}) {
		ix, iy = screenW-indicatorInset, indicatorInset
	}

	adds := []func() error{
		func() error { return ecs.Add(w, e, component.PlayerComponent.Kind(), player) },
		func() error { return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}) },
		func() error { return ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(maxHealth)) },
		func() error {
			return ecs.Add(w, e, component.HealthBarComponent.Kind(), &component.HealthBar{
				X:         lvl.HealthBar.X,
				Y:         lvl.HealthBar.Y,
				HeartSize: lvl.HealthBar.HeartSize,
			})
		},
		func() error {
			return ecs.Add(w, e, component.AbilityIndicatorComponent.Kind(), component.NewAbilityIndicator(ix, iy, lvl.Indicator.Radius))
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			destroy(w, e)
			return 0, err
		}
	}
	return e, nil
}

func pick(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
