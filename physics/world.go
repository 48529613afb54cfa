package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/phaseshift/ecs/component"
)

const (
	DefaultGravity   = 0.35
	solverIterations = 20
	platformFriction = 0.8
)

type BodyKind uint8

const (
	// Static bodies never move on their own; SetBounds rebuilds their shape.
	Static BodyKind = iota
	// Dynamic bodies fall, collide and keep a fixed rotation.
	Dynamic
)

type BodySpec struct {
	Kind       BodyKind
	Group      component.CollisionGroup
	X          float64
	Y          float64
	W          float64
	H          float64
	Appearance string
	// Sensor bodies report contacts but never push anything.
	Sensor    bool
	NoGravity bool
}

// World owns the Chipmunk space for one level. It is built fresh for every
// level start and closed on teardown.
type World struct {
	space  *cp.Space
	shapes map[*cp.Shape]*Body
	bodies []*Body
}

// pairs lists which groups report contacts. Player and enemy bodies pass
// through each other.
var pairs = []struct {
	a, b  component.CollisionGroup
	solid bool
}{
	{component.GroupPlayer, component.GroupPlatform, true},
	{component.GroupEnemy, component.GroupPlatform, true},
	{component.GroupPlayer, component.GroupEnemy, false},
	{component.GroupProjectile, component.GroupPlatform, true},
	{component.GroupProjectile, component.GroupPlayer, true},
	{component.GroupProjectile, component.GroupEnemy, true},
}

func NewWorld(gravity float64) *World {
	space := cp.NewSpace()
	space.Iterations = solverIterations
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	w := &World{
		space:  space,
		shapes: make(map[*cp.Shape]*Body),
	}
	w.setupHandlers()
	return w
}

func (w *World) setupHandlers() {
	for _, p := range pairs {
		solid := p.solid
		h := w.space.NewCollisionHandler(cp.CollisionType(p.a), cp.CollisionType(p.b))
		h.UserData = w
		h.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			world, ok := userData.(*World)
			if !ok || world == nil {
				return solid
			}
			shapeA, shapeB := arb.Shapes()
			a, okA := world.shapes[shapeA]
			b, okB := world.shapes[shapeB]
			if okA && okB {
				a.contacts[b.group] = true
				b.contacts[a.group] = true
			}
			return solid
		}
	}
}

// NewBody creates a body from spec and adds it to the space.
func (w *World) NewBody(spec BodySpec) *Body {
	b := &Body{
		world:      w,
		kind:       spec.Kind,
		group:      spec.Group,
		sensor:     spec.Sensor,
		cx:         spec.X,
		cy:         spec.Y,
		w:          spec.W,
		h:          spec.H,
		appearance: spec.Appearance,
		contacts:   make(map[component.CollisionGroup]bool),
	}

	if spec.Kind == Dynamic {
		body := cp.NewBody(1, math.Inf(1))
		body.SetAngle(0)
		body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
		if spec.NoGravity {
			body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
				cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
			})
		}
		w.space.AddBody(body)
		b.body = body
	}

	b.rebuildShape()
	w.bodies = append(w.bodies, b)
	return b
}

// Spawn is NewBody behind the component.Body interface.
func (w *World) Spawn(spec BodySpec) component.Body {
	return w.NewBody(spec)
}

// Step clears last frame's contacts and advances the simulation one frame.
func (w *World) Step() {
	if w == nil || w.space == nil {
		return
	}
	for _, b := range w.bodies {
		clear(b.contacts)
	}
	w.space.Step(1.0)
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.bodies)
}

// Close removes every body from the space.
func (w *World) Close() {
	if w == nil {
		return
	}
	for len(w.bodies) > 0 {
		w.bodies[len(w.bodies)-1].Remove()
	}
	w.space = nil
}

func (w *World) forget(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}
