package component

const (
	DefaultMoveSpeed      = 5.0
	DefaultJumpForce      = 8.0
	DefaultCoyoteWindowMs = 150
)

type Player struct {
	MoveSpeed      float64
	JumpForce      float64
	CoyoteWindowMs int64

	// LastGroundedMs is only meaningful while HasGrounded is set; a cleared
	// window is the distant past.
	LastGroundedMs int64
	HasGrounded    bool

	// Facing is -1 or +1.
	Facing float64

	TongueSpeed  float64
	TongueTTLMs  int64
	TongueDamage int
}

// MarkGrounded opens a fresh grace window at now.
func (p *Player) MarkGrounded(now int64) {
	p.LastGroundedMs = now
	p.HasGrounded = true
}

// CanJump reports whether a jump requested at now is allowed.
func (p *Player) CanJump(grounded bool, now int64) bool {
	if grounded {
		return true
	}
	return p.HasGrounded && now-p.LastGroundedMs < p.CoyoteWindowMs
}

// ClearGrace forgets the last grounding so the window cannot be reused.
func (p *Player) ClearGrace() {
	p.LastGroundedMs = 0
	p.HasGrounded = false
}

var PlayerComponent = NewComponent[Player]()
