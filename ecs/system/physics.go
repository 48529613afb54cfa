package system

import "github.com/milk9111/phaseshift/ecs"

// Stepper advances the physics collaborator by one frame.
type Stepper interface {
	Step()
}

// PhysicsSystem steps the simulation. Nothing moves once the game is over.
type PhysicsSystem struct {
	stepper Stepper
}

func NewPhysicsSystem(stepper Stepper) *PhysicsSystem {
	return &PhysicsSystem{stepper: stepper}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || s.stepper == nil {
		return
	}
	if _, running := activeLevel(w); !running {
		return
	}
	s.stepper.Step()
}
