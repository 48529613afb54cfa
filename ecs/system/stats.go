package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

// Recorder persists per-level outcomes.
type Recorder interface {
	RecordFall(level string) error
	RecordDeath(level string) error
	RecordClear(level string, elapsedMs int64) error
}

// StatsSystem forwards this frame's level events to a Recorder. Storage
// errors are logged and never reach gameplay.
type StatsSystem struct {
	recorder Recorder
	logger   *log.Logger
}

func NewStatsSystem(recorder Recorder, logger *log.Logger) *StatsSystem {
	return &StatsSystem{recorder: recorder, logger: logger}
}

func (s *StatsSystem) Update(w *ecs.World) {
	if w == nil || s.recorder == nil {
		return
	}
	state := LevelState(w)
	for _, evt := range ecs.EventsOf[component.LevelEvent](w) {
		var err error
		switch evt.Kind {
		case component.LevelEventFell:
			err = s.recorder.RecordFall(evt.Level)
		case component.LevelEventGameOver:
			err = s.recorder.RecordDeath(evt.Level)
		case component.LevelEventCleared:
			var elapsed int64
			if state != nil {
				elapsed = state.NowMs - state.StartedMs
			}
			err = s.recorder.RecordClear(evt.Level, elapsed)
		default:
			continue
		}
		if err != nil && s.logger != nil {
			s.logger.Error("record stats", "level", evt.Level, "event", evt.Kind, "err", err)
		}
	}
}
