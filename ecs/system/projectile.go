package system

import (
	"github.com/milk9111/phaseshift/common"
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

const offscreenMargin = 50.0

// ProjectileSystem resolves projectile hits. Overlap is tested on bounding
// boxes so sensor projectiles never depend on solver contacts with their
// target.
type ProjectileSystem struct {
	invulnerableMs int64
}

func NewProjectileSystem(invulnerableMs int64) *ProjectileSystem {
	if invulnerableMs <= 0 {
		invulnerableMs = component.DefaultInvulnerableMs
	}
	return &ProjectileSystem{invulnerableMs: invulnerableMs}
}

type target struct {
	entity ecs.Entity
	bounds common.Rect
	enemy  *component.Enemy
	health *component.Health
}

func bodyRect(b component.Body) common.Rect {
	x, y := b.Position()
	w, h := b.Size()
	return common.CenteredRect(x, y, w, h)
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, running := activeLevel(w)
	if !running {
		return
	}

	var enemies []target
	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.HealthComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, health *component.Health, pb *component.PhysicsBody) {
			if pb.Body == nil {
				return
			}
			enemies = append(enemies, target{entity: e, bounds: bodyRect(pb.Body), enemy: enemy, health: health})
		})
	player, hasPlayer := findPlayer(w)
	screen := common.Rect{X: -offscreenMargin, Y: -offscreenMargin, Width: state.ScreenW + 2*offscreenMargin, Height: state.ScreenH + 2*offscreenMargin}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, proj *component.Projectile, pb *component.PhysicsBody) {
			if pb.Body == nil {
				ecs.DestroyEntity(w, e)
				return
			}
			bounds := bodyRect(pb.Body)
			if !screen.Contains(bounds.Center()) {
				destroyWithBody(w, e)
				return
			}

			hit := false
			switch proj.Owner {
			case component.FactionPlayer:
				for i := range enemies {
					t := &enemies[i]
					if !ecs.IsAlive(w, t.entity) || !bounds.Intersects(t.bounds) {
						continue
					}
					s.hitEnemy(w, state, t, proj.Damage)
					hit = true
					break
				}
			case component.FactionEnemy:
				if hasPlayer && bounds.Intersects(bodyRect(player.body)) {
					s.hitPlayer(w, state, player, proj.Damage)
					hit = true
				}
			}

			if hit || pb.Body.CollidingWith(component.GroupPlatform) {
				destroyWithBody(w, e)
			}
		})
}

func (s *ProjectileSystem) hitEnemy(w *ecs.World, state *component.LevelState, t *target, damage int) {
	switch t.enemy.TakeHit(damage, t.health) {
	case component.HitShield, component.HitShieldBroken:
		emitCue(w, "shield")
	case component.HitCore:
		emitCue(w, "hit")
	case component.HitKilled:
		emitCue(w, "hit")
		destroyWithBody(w, t.entity)
		emitLevel(w, component.LevelEventEnemyKilled, state.Name)
		if ecs.Count(w, component.EnemyComponent.Kind()) == 0 && !state.Cleared {
			state.Cleared = true
			emitLevel(w, component.LevelEventCleared, state.Name)
		}
	}
}

func (s *ProjectileSystem) hitPlayer(w *ecs.World, state *component.LevelState, player playerRefs, damage int) {
	if player.health == nil || player.health.IsDead() {
		return
	}
	inv, ok := ecs.Get(w, player.entity, component.InvulnerableComponent.Kind())
	if ok && inv.Active(state.NowMs) {
		return
	}
	player.health.Damage(damage)
	until := state.NowMs + s.invulnerableMs
	if ok {
		inv.UntilMs = until
	} else {
		_ = ecs.Add(w, player.entity, component.InvulnerableComponent.Kind(), &component.Invulnerable{UntilMs: until})
	}
	emitCue(w, "hit")
}
