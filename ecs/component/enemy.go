package component

const (
	DefaultEnemyIntervalMs   = 1500
	DefaultProjectileSpeed   = 6.0
	DefaultEnemyShieldHealth = 3
)

// HitResult reports what a landed hit did to an enemy.
type HitResult uint8

const (
	HitIgnored HitResult = iota
	HitShield
	HitShieldBroken
	HitCore
	HitKilled
)

func (r HitResult) String() string {
	switch r {
	case HitShield:
		return "shield"
	case HitShieldBroken:
		return "shield_broken"
	case HitCore:
		return "core"
	case HitKilled:
		return "killed"
	default:
		return "ignored"
	}
}

type Enemy struct {
	HasShield    bool
	ShieldHealth int

	IntervalMs      int64
	CooldownUntil   int64
	ProjectileSpeed float64
	ProjectileColor string
	// Range limits firing to players within this distance; zero is unlimited.
	Range float64
	// Script names a fire-condition script; empty uses Range.
	Script string
}

func (e *Enemy) Shielded() bool {
	return e.HasShield && e.ShieldHealth > 0
}

// Ready reports whether the cooldown has elapsed at now.
func (e *Enemy) Ready(now int64) bool {
	return now >= e.CooldownUntil
}

// Arm starts the next cooldown from now.
func (e *Enemy) Arm(now int64) {
	interval := e.IntervalMs
	if interval <= 0 {
		interval = DefaultEnemyIntervalMs
	}
	e.CooldownUntil = now + interval
}

// TakeHit applies a player hit. While shielded the shield absorbs it and
// core health is left alone; once the shield is gone the core takes damage.
func (e *Enemy) TakeHit(damage int, core *Health) HitResult {
	if core == nil || core.IsDead() {
		return HitIgnored
	}
	if e.Shielded() {
		e.ShieldHealth--
		if e.ShieldHealth == 0 {
			return HitShieldBroken
		}
		return HitShield
	}
	core.Damage(damage)
	if core.IsDead() {
		return HitKilled
	}
	return HitCore
}

var EnemyComponent = NewComponent[Enemy]()
