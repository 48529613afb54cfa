package component

// CollisionGroup names a set of bodies that collision queries can target.
type CollisionGroup uint8

const (
	GroupNone CollisionGroup = iota
	GroupPlayer
	GroupPlatform
	GroupEnemy
	GroupProjectile
)

func (g CollisionGroup) String() string {
	switch g {
	case GroupPlayer:
		return "player"
	case GroupPlatform:
		return "platform"
	case GroupEnemy:
		return "enemy"
	case GroupProjectile:
		return "projectile"
	default:
		return "none"
	}
}

// Body is the sprite/body capability handed to gameplay code by the physics
// collaborator. Positions are body centres in screen pixels; velocities are
// pixels per frame.
type Body interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Size() (w, h float64)
	Velocity() (vx, vy float64)
	SetVelocity(vx, vy float64)
	// SetBounds moves and resizes the body in one step.
	SetBounds(x, y, w, h float64)
	Appearance() string
	SetAppearance(token string)
	// CollidingWith reports contact with any body of group during the last
	// physics step.
	CollidingWith(group CollisionGroup) bool
	Remove()
}

type PhysicsBody struct {
	Body  Body
	Group CollisionGroup
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
