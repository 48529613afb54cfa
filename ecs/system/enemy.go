package system

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/milk9111/phaseshift/common"
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

const (
	enemyShotSize  = 12.0
	enemyShotTTLMs = 4000
	enemyShotDmg   = 1
)

// FireCondition decides whether a ready enemy shoots this frame.
type FireCondition interface {
	Fire(script string, env FireEnv) (bool, error)
}

// EnemySystem runs each enemy's attack cooldown and fires at the player.
type EnemySystem struct {
	spawner Spawner
	scripts FireCondition
	logger  *log.Logger
	failed  map[string]bool
}

func NewEnemySystem(spawner Spawner, scripts FireCondition, logger *log.Logger) *EnemySystem {
	return &EnemySystem{
		spawner: spawner,
		scripts: scripts,
		logger:  logger,
		failed:  map[string]bool{},
	}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil || s.spawner == nil {
		return
	}
	state, running := activeLevel(w)
	if !running {
		return
	}
	player, ok := findPlayer(w)
	if !ok {
		return
	}
	px, py := player.body.Position()
	now := state.NowMs

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.HealthComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, health *component.Health, pb *component.PhysicsBody) {
			if health.IsDead() || pb.Body == nil || !enemy.Ready(now) {
				return
			}
			ex, ey := pb.Body.Position()
			env := FireEnv{
				DX:       px - ex,
				DY:       py - ey,
				Distance: math.Hypot(px-ex, py-ey),
				NowMs:    now,
				Shield:   enemy.ShieldHealth,
				Health:   health.Current,
			}
			if !s.shouldFire(enemy, env) {
				return
			}

			speed := enemy.ProjectileSpeed
			if speed <= 0 {
				speed = component.DefaultProjectileSpeed
			}
			vx, vy := common.VelocityToward(ex, ey, px, py, speed)
			_, err := spawnProjectile(w, s.spawner, projectileSpec{
				owner:      component.FactionEnemy,
				x:          ex,
				y:          ey,
				w:          enemyShotSize,
				h:          enemyShotSize,
				vx:         vx,
				vy:         vy,
				damage:     enemyShotDmg,
				expiresAt:  now + enemyShotTTLMs,
				appearance: enemy.ProjectileColor,
			})
			if err != nil {
				s.logOnce("spawn", "spawn enemy projectile", err)
				return
			}
			enemy.Arm(now)
			emitCue(w, "shoot")
		})
}

func (s *EnemySystem) shouldFire(enemy *component.Enemy, env FireEnv) bool {
	if enemy.Script != "" && s.scripts != nil && !s.failed[enemy.Script] {
		fire, err := s.scripts.Fire(enemy.Script, env)
		if err == nil {
			return fire
		}
		s.logOnce(enemy.Script, "fire script failed, using range", err)
	}
	return InRange(enemy.Range, env.Distance)
}

func (s *EnemySystem) logOnce(key, msg string, err error) {
	if s.failed[key] {
		return
	}
	s.failed[key] = true
	if s.logger != nil {
		s.logger.Warn(msg, "key", key, "err", err)
	}
}

// InRange reports whether distance is within limit; zero or less is no limit.
func InRange(limit, distance float64) bool {
	return limit <= 0 || distance <= limit
}
