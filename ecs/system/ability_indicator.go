package system

import (
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

// AbilityIndicatorSystem retargets the dial on this frame's ability events
// and eases it every frame.
type AbilityIndicatorSystem struct{}

func NewAbilityIndicatorSystem() *AbilityIndicatorSystem {
	return &AbilityIndicatorSystem{}
}

func (s *AbilityIndicatorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	used := ecs.EventsOf[component.AbilityEvent](w)
	ecs.ForEach(w, component.AbilityIndicatorComponent.Kind(), func(e ecs.Entity, ind *component.AbilityIndicator) {
		for _, evt := range used {
			switch evt.Ability {
			case component.AbilityTongue:
				ind.OnTongueUsed()
			case component.AbilityTeleport:
				ind.OnTeleportUsed()
			}
		}
		ind.Advance()
	})
}
