package ecs

import "github.com/milk9111/phaseshift/ecs/component"

// World owns entities, their components and the per-frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if w.stores == nil {
		if !create {
			return nil
		}
		w.stores = make(map[component.ComponentID]componentStore)
	}
	raw, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil
		}
		set := newSparseSet[T]()
		w.stores[kind.ID()] = set
		return set
	}
	set, _ := raw.(*SparseSet[T])
	return set
}
