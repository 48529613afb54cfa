package system

import (
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

// activeLevel returns the level singleton and whether gameplay should run
// this frame.
func activeLevel(w *ecs.World) (*component.LevelState, bool) {
	e, ok := ecs.First(w, component.LevelStateComponent.Kind())
	if !ok {
		return nil, false
	}
	state, ok := ecs.Get(w, e, component.LevelStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return state, !state.GameOver
}

// LevelState returns the running level's state, if any.
func LevelState(w *ecs.World) *component.LevelState {
	state, _ := activeLevel(w)
	return state
}

type playerRefs struct {
	entity ecs.Entity
	player *component.Player
	body   component.Body
	health *component.Health
}

func findPlayer(w *ecs.World) (playerRefs, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return playerRefs{}, false
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return playerRefs{}, false
	}
	h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	return playerRefs{entity: e, player: p, body: pb.Body, health: h}, true
}

// destroyWithBody releases an entity's physics body before destroying it.
func destroyWithBody(w *ecs.World, e ecs.Entity) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		pb.Body.Remove()
	}
	ecs.DestroyEntity(w, e)
}

func emitCue(w *ecs.World, name string) {
	if name == "" {
		return
	}
	ecs.Emit(w, component.EventCue, component.CueRequest{Name: name})
}

func emitLevel(w *ecs.World, kind component.LevelEventKind, level string) {
	ecs.Emit(w, component.EventLevel, component.LevelEvent{Kind: kind, Level: level})
}
