package entity

import (
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
	"github.com/milk9111/phaseshift/levels"
	"github.com/milk9111/phaseshift/physics"
)

// NewPlatform adds a static platform centred on (x, y).
func NewPlatform(w *ecs.World, phys BodySpawner, x, y, width, height float64, appearance string) (ecs.Entity, error) {
	body := phys.Spawn(physics.BodySpec{
		Kind:       physics.Static,
		Group:      component.GroupPlatform,
		X:          x,
		Y:          y,
		W:          width,
		H:          height,
		Appearance: appearance,
	})
	return attachBody(w, body, component.GroupPlatform, &component.Renderable{Layer: layerPlatform, Outline: true})
}

func teleportConfig(p levels.PlatformSpec, screenW, screenH float64) component.TeleportConfig {
	x, y := p.Position.Resolve(screenW, screenH)
	return component.TeleportConfig{X: x, Y: y, W: p.Width, H: p.Height, Appearance: p.Appearance}
}

// NewTeleportingPlatform adds a platform that starts in its A placement.
func NewTeleportingPlatform(w *ecs.World, phys BodySpawner, spec levels.TeleportSpec, screenW, screenH float64) (ecs.Entity, error) {
	cues := spec.Cues
	if len(cues) == 0 {
		cues = defaultTeleportCues
	}
	tp := component.NewTeleport(teleportConfig(spec.A, screenW, screenH), teleportConfig(spec.B, screenW, screenH), cues...)

	active := tp.Active()
	e, err := NewPlatform(w, phys, active.X, active.Y, active.W, active.H, active.Appearance)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TeleportComponent.Kind(), tp); err != nil {
		destroy(w, e)
		return 0, err
	}
	return e, nil
}

func attachBody(w *ecs.World, body component.Body, group component.CollisionGroup, r *component.Renderable) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Group: group}); err != nil {
		body.Remove()
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderableComponent.Kind(), r); err != nil {
		destroy(w, e)
		return 0, err
	}
	return e, nil
}

func destroy(w *ecs.World, e ecs.Entity) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		pb.Body.Remove()
	}
	ecs.DestroyEntity(w, e)
}
