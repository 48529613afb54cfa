package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/phaseshift/common"
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

const (
	tongueWidth  = 28.0
	tongueHeight = 8.0
)

// ControlPlayer applies one frame of input to the player's body and reports
// whether a jump fired. Grounding reads the contacts of the last physics
// step.
func ControlPlayer(p *component.Player, in *component.Input, body component.Body, now int64, screenW float64) bool {
	if p == nil || in == nil || body == nil {
		return false
	}

	grounded := body.CollidingWith(component.GroupPlatform)
	if grounded {
		p.MarkGrounded(now)
	}

	_, vy := body.Velocity()
	vx := 0.0
	left, right := in.IsHeld(component.ActionLeft), in.IsHeld(component.ActionRight)
	switch {
	case left && !right:
		vx = -p.MoveSpeed
		p.Facing = -1
	case right && !left:
		vx = p.MoveSpeed
		p.Facing = 1
	}

	jumped := false
	if in.JustPressed(component.ActionJump) && p.CanJump(grounded, now) {
		vy = -p.JumpForce
		p.ClearGrace()
		jumped = true
	}
	body.SetVelocity(vx, vy)

	x, y := body.Position()
	if clamped := common.Clamp(x, 0, screenW); clamped != x {
		body.SetPosition(clamped, y)
	}
	return jumped
}

// ResetPlayer puts the player back at (x, y) at rest with no grace window.
func ResetPlayer(p *component.Player, body component.Body, x, y float64) {
	if body != nil {
		body.SetVelocity(0, 0)
		body.SetPosition(x, y)
	}
	if p != nil {
		p.ClearGrace()
	}
}

type PlayerControllerSystem struct {
	spawner Spawner
	logger  *log.Logger
}

func NewPlayerControllerSystem(spawner Spawner, logger *log.Logger) *PlayerControllerSystem {
	return &PlayerControllerSystem{spawner: spawner, logger: logger}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, running := activeLevel(w)
	if !running {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, pb *component.PhysicsBody) {
			if ControlPlayer(p, in, pb.Body, state.NowMs, state.ScreenW) {
				emitCue(w, "jump")
			}
			if in.JustPressed(component.ActionTongue) {
				s.fireTongue(w, p, pb.Body, state.NowMs)
			}
		})
}

func (s *PlayerControllerSystem) fireTongue(w *ecs.World, p *component.Player, body component.Body, now int64) {
	if s.spawner == nil {
		return
	}
	facing := p.Facing
	if facing == 0 {
		facing = 1
	}
	x, y := body.Position()
	bw, _ := body.Size()

	_, err := spawnProjectile(w, s.spawner, projectileSpec{
		owner:      component.FactionPlayer,
		x:          x + facing*(bw+tongueWidth)/2,
		y:          y,
		w:          tongueWidth,
		h:          tongueHeight,
		vx:         facing * p.TongueSpeed,
		damage:     p.TongueDamage,
		expiresAt:  now + p.TongueTTLMs,
		appearance: "hotpink",
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Error("spawn tongue", "err", err)
		}
		return
	}
	emitCue(w, "tongue")
	ecs.Emit(w, component.EventAbilityUsed, component.AbilityEvent{Ability: component.AbilityTongue})
}
