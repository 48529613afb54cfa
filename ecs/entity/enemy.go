package entity

import (
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/milk9111/phaseshift/levels"
	"github.com/milk9111/phaseshift/physics"
)

// NewEnemy adds an enemy whose first shot comes one interval after now.
func NewEnemy(w *ecs.World, phys BodySpawner, spec levels.EnemySpec, screenW, screenH float64, now int64) (ecs.Entity, error) {
	x, y := spec.Position.Resolve(screenW, screenH)
	appearance := spec.Appearance
	if appearance == "" {
		appearance = "firebrick"
	}
	body := phys.Spawn(physics.BodySpec{
		Kind:       physics.Dynamic,
		Group:      component.GroupEnemy,
		X:          x,
		Y:          y,
		W:          spec.Width,
		H:          spec.Height,
		Appearance: appearance,
	})
	e, err := attachBody(w, body, component.GroupEnemy, &component.Renderable{Layer: layerActor})
	if err != nil {
		return 0, err
	}

	enemy := &component.Enemy{
		HasShield:       spec.HasShield,
		ShieldHealth:    spec.ShieldHealth,
		IntervalMs:      spec.IntervalMs,
		ProjectileSpeed: spec.ProjectileSpeed,
		ProjectileColor: spec.ProjectileColor,
		Range:           spec.Range,
		Script:          spec.Script,
	}
	if !enemy.HasShield {
		enemy.ShieldHealth = 0
	}
	enemy.Arm(now)

	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), enemy); err != nil {
		destroy(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(spec.MaxHealth)); err != nil {
		destroy(w, e)
		return 0, err
	}
	return e, nil
}
