package system

import (
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

// GameOverSystem freezes the level once the player's health runs out.
type GameOverSystem struct{}

func NewGameOverSystem() *GameOverSystem {
	return &GameOverSystem{}
}

func (s *GameOverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, running := activeLevel(w)
	if !running {
		return
	}
	player, ok := findPlayer(w)
	if !ok || player.health == nil || !player.health.IsDead() {
		return
	}

	state.GameOver = true
	player.body.SetVelocity(0, 0)
	emitLevel(w, component.LevelEventGameOver, state.Name)
}
