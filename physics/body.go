package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/phaseshift/ecs/component"
)

// Body is a cp-backed component.Body. Static bodies hang their shape off the
// space's static body and keep their own centre.
type Body struct {
	world *World
	body  *cp.Body
	shape *cp.Shape

	kind   BodyKind
	group  component.CollisionGroup
	sensor bool

	cx, cy     float64
	w, h       float64
	appearance string

	contacts map[component.CollisionGroup]bool
	removed  bool
}

var _ component.Body = (*Body)(nil)

func (b *Body) rebuildShape() {
	space := b.world.space
	if space == nil {
		return
	}
	if b.shape != nil {
		space.RemoveShape(b.shape)
		delete(b.world.shapes, b.shape)
		b.shape = nil
	}

	var shape *cp.Shape
	if b.kind == Dynamic {
		shape = cp.NewBox(b.body, b.w, b.h, 0)
		shape.SetFriction(0)
	} else {
		bb := cp.BB{L: b.cx - b.w/2, B: b.cy - b.h/2, R: b.cx + b.w/2, T: b.cy + b.h/2}
		shape = cp.NewBox2(space.StaticBody, bb, 0)
		shape.SetFriction(platformFriction)
	}
	shape.SetElasticity(0)
	shape.SetSensor(b.sensor)
	shape.SetCollisionType(cp.CollisionType(b.group))
	space.AddShape(shape)

	b.shape = shape
	b.world.shapes[shape] = b
}

func (b *Body) Position() (float64, float64) {
	if b.body != nil {
		p := b.body.Position()
		return p.X, p.Y
	}
	return b.cx, b.cy
}

func (b *Body) SetPosition(x, y float64) {
	if b.removed {
		return
	}
	if b.body != nil {
		b.body.SetPosition(cp.Vector{X: x, Y: y})
		return
	}
	b.cx, b.cy = x, y
	b.rebuildShape()
}

func (b *Body) Size() (float64, float64) {
	return b.w, b.h
}

func (b *Body) Velocity() (float64, float64) {
	if b.body == nil {
		return 0, 0
	}
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *Body) SetVelocity(vx, vy float64) {
	if b.removed || b.body == nil {
		return
	}
	b.body.SetVelocity(vx, vy)
}

// SetBounds swaps in a shape of the new size at the new centre before the
// next step, so the solver never sees a half-applied change.
func (b *Body) SetBounds(x, y, w, h float64) {
	if b.removed {
		return
	}
	b.w, b.h = w, h
	if b.body != nil {
		b.body.SetPosition(cp.Vector{X: x, Y: y})
	} else {
		b.cx, b.cy = x, y
	}
	b.rebuildShape()
}

func (b *Body) Appearance() string {
	return b.appearance
}

func (b *Body) SetAppearance(token string) {
	b.appearance = token
}

func (b *Body) CollidingWith(group component.CollisionGroup) bool {
	return !b.removed && b.contacts[group]
}

func (b *Body) Group() component.CollisionGroup {
	return b.group
}

// Remove releases the body's shape and body from the space. It is safe to
// call more than once.
func (b *Body) Remove() {
	if b == nil || b.removed {
		return
	}
	b.removed = true
	if space := b.world.space; space != nil {
		if b.shape != nil {
			space.RemoveShape(b.shape)
		}
		if b.body != nil {
			space.RemoveBody(b.body)
		}
	}
	delete(b.world.shapes, b.shape)
	b.world.forget(b)
}
