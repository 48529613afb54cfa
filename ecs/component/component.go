package component

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
)

// Errors returned when attaching a component.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes a world's stores. Zero is never issued, so the zero
// ComponentKind is invalid.
type ComponentID uint32

var lastComponentID atomic.Uint32

func issueComponentID() ComponentID {
	return ComponentID(lastComponentID.Add(1))
}

// ComponentKind names one store of T values. Kinds are compared by ID, so
// two kinds over the same T are separate stores.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: issueComponentID()}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// String renders the kind as "<type>#<id>" for debug output.
func (k ComponentKind[T]) String() string {
	return fmt.Sprintf("%s#%d", reflect.TypeOf((*T)(nil)).Elem(), k.id)
}

// ComponentHandle is the package-level declaration of a gameplay component;
// systems pass Kind() to the ecs helpers.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
