package ecs

import "github.com/milk9111/phaseshift/ecs/component"

// ForEach visits every live entity owning kind. Entities created or
// destroyed by fn during the walk do not disturb it.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	store := storeFor(w, kind, false)
	if store == nil || fn == nil {
		return
	}
	for _, e := range store.Entities() {
		if v := store.Get(e); v != nil && w.entities.isAlive(e) {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, e := range smallest(sa, sb) {
		a, b := sa.Get(e), sb.Get(e)
		if a == nil || b == nil || !w.entities.isAlive(e) {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, e := range smallest(sa, sb, sc) {
		a, b, c := sa.Get(e), sb.Get(e), sc.Get(e)
		if a == nil || b == nil || c == nil || !w.entities.isAlive(e) {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	sd := storeFor(w, kd, false)
	if sa == nil || sb == nil || sc == nil || sd == nil || fn == nil {
		return
	}
	for _, e := range smallest(sa, sb, sc, sd) {
		a, b, c, d := sa.Get(e), sb.Get(e), sc.Get(e), sd.Get(e)
		if a == nil || b == nil || c == nil || d == nil || !w.entities.isAlive(e) {
			continue
		}
		fn(e, a, b, c, d)
	}
}

// First returns the first live entity owning kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	store := storeFor(w, kind, false)
	if store == nil {
		return 0, false
	}
	for _, e := range store.dense {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many entities own kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return storeFor(w, kind, false).len()
}

type entityLister interface {
	Entities() []Entity
	len() int
}

// smallest iterates the smaller set.
func smallest(stores ...entityLister) []Entity {
	best := stores[0]
	for _, s := range stores[1:] {
		if s.len() < best.len() {
			best = s
		}
	}
	return best.Entities()
}
