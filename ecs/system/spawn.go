package system

import (
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/milk9111/phaseshift/physics"
)

// Spawner creates bodies in the physics collaborator.
type Spawner interface {
	Spawn(spec physics.BodySpec) component.Body
}

type projectileSpec struct {
	owner      component.Faction
	x, y       float64
	w, h       float64
	vx, vy     float64
	damage     int
	expiresAt  int64
	appearance string
}

func spawnProjectile(w *ecs.World, spawner Spawner, spec projectileSpec) (ecs.Entity, error) {
	body := spawner.Spawn(physics.BodySpec{
		Kind:       physics.Dynamic,
		Group:      component.GroupProjectile,
		X:          spec.x,
		Y:          spec.y,
		W:          spec.w,
		H:          spec.h,
		Appearance: spec.appearance,
		Sensor:     true,
		NoGravity:  true,
	})
	body.SetVelocity(spec.vx, spec.vy)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Group: component.GroupProjectile}); err != nil {
		body.Remove()
		return 0, err
	}
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{Owner: spec.owner, Damage: spec.damage}); err != nil {
		destroyWithBody(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{ExpiresAtMs: spec.expiresAt}); err != nil {
		destroyWithBody(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderableComponent.Kind(), &component.Renderable{Layer: 2}); err != nil {
		destroyWithBody(w, e)
		return 0, err
	}
	return e, nil
}
