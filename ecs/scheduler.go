package ecs

// System advances one concern of the world by a frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler is the frame pipeline. Systems run in the order they were added
// and all of them see events emitted earlier in the same frame; the queue is
// emptied after the last one.
type Scheduler struct {
	pipeline []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{pipeline: make([]System, 0, len(systems))}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

// Add appends sys to the end of the pipeline. Nil systems are skipped.
func (s *Scheduler) Add(sys System) {
	if sys != nil {
		s.pipeline = append(s.pipeline, sys)
	}
}

// Len is the number of systems in the pipeline.
func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pipeline)
}

// Update runs one frame.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	defer w.events.flush()
	for _, sys := range s.pipeline {
		sys.Update(w)
	}
}
