package system

import (
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

// CuePlayer plays named one-shot sounds. Failures stay inside the player.
type CuePlayer interface {
	Play(name string)
}

// AudioSystem plays every cue requested this frame. It runs after the
// systems that emit cues.
type AudioSystem struct {
	player CuePlayer
}

func NewAudioSystem(player CuePlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (s *AudioSystem) Update(w *ecs.World) {
	if w == nil || s.player == nil {
		return
	}
	for _, req := range ecs.EventsOf[component.CueRequest](w) {
		s.player.Play(req.Name)
	}
}
