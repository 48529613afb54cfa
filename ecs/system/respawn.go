package system

import (
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

// RespawnSystem returns a player who fell below the screen to the level's
// spawn point. Falling costs no health.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem {
	return &RespawnSystem{}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, running := activeLevel(w)
	if !running {
		return
	}
	player, ok := findPlayer(w)
	if !ok {
		return
	}

	margin := state.FallMargin
	if margin <= 0 {
		margin = component.DefaultFallMargin
	}
	if _, y := player.body.Position(); y <= state.ScreenH+margin {
		return
	}

	ResetPlayer(player.player, player.body, state.SpawnX, state.SpawnY)
	emitLevel(w, component.LevelEventFell, state.Name)
}
