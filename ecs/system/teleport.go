package system

import (
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

// TeleportSystem flips every teleporting platform on a teleport press. All
// platforms share the one edge from the player's input.
type TeleportSystem struct{}

func NewTeleportSystem() *TeleportSystem {
	return &TeleportSystem{}
}

func (s *TeleportSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if _, running := activeLevel(w); !running {
		return
	}

	edge := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		if in.JustPressed(component.ActionTeleport) {
			edge = true
		}
	})
	if !edge {
		return
	}

	toggled := false
	ecs.ForEach2(w, component.TeleportComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, t *component.Teleport, pb *component.PhysicsBody) {
			cue, ok := t.Update(edge, pb.Body)
			if !ok {
				return
			}
			toggled = true
			emitCue(w, cue)
		})

	if toggled {
		ecs.Emit(w, component.EventAbilityUsed, component.AbilityEvent{Ability: component.AbilityTeleport})
	}
}
